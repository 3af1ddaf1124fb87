package recommend

import "strings"

// Type is the kind of entertainment item. The upstream model is asked to
// stick to the four known values but is not trusted to: anything else
// normalizes to TypeUnknown at the client boundary.
type Type string

const (
	TypeMovie   Type = "Movie"
	TypeTVShow  Type = "TV Show"
	TypeBook    Type = "Book"
	TypeGame    Type = "Game"
	TypeUnknown Type = "Unknown"
)

func (t Type) String() string {
	return string(t)
}

// HasTrailer reports whether a trailer affordance makes sense for this type.
func (t Type) HasTrailer() bool {
	return t == TypeMovie || t == TypeTVShow
}

// ParseType normalizes untrusted free text to one of the known types.
func ParseType(s string) Type {
	switch strings.ToLower(strings.Join(strings.Fields(s), " ")) {
	case "movie", "film":
		return TypeMovie
	case "tv show", "tvshow", "tv series", "series", "show":
		return TypeTVShow
	case "book", "novel":
		return TypeBook
	case "game", "video game", "videogame":
		return TypeGame
	}
	return TypeUnknown
}

// Recommendation is one entertainment item of a batch. Title acts as the
// natural key everywhere (watchlist membership, ratings, rendering); two
// distinct items sharing a title are not disambiguated.
type Recommendation struct {
	Title                 string   `json:"title"`
	Type                  Type     `json:"type"`
	Year                  int      `json:"year"`
	Genres                []string `json:"genres"`
	Rating                float64  `json:"rating"`
	ShortDescription      string   `json:"short_description"`
	PersonalizationReason string   `json:"personalization_reason"`
	PosterURL             string   `json:"poster_url,omitempty"`
	TrailerURL            string   `json:"trailer_url,omitempty"`
}

// Preferences is the free-text tuple collected from the user. Every field
// may be empty; an all-empty tuple is rejected by the caller, not here.
type Preferences struct {
	Mood     string `json:"mood"`
	Genres   string `json:"genres"`
	LikeThis string `json:"like_this"`
}

func (p Preferences) Empty() bool {
	return strings.TrimSpace(p.Mood) == "" &&
		strings.TrimSpace(p.Genres) == "" &&
		strings.TrimSpace(p.LikeThis) == ""
}
