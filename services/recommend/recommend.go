package recommend

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/vibeflow-io/web-api/services/gemini"
)

// TextGenerator is the slice of the gemini api the client needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, schema *gemini.Schema) (string, error)
}

// Client turns a preference tuple into one batch of recommendations.
// One call is one upstream request: no retry, no caching, no partial results.
type Client struct {
	g TextGenerator
}

func New(g TextGenerator) *Client {
	if g == nil {
		return nil
	}
	return &Client{g: g}
}

// GetRecommendations requests a batch for the given preferences.
func (s *Client) GetRecommendations(ctx context.Context, prefs Preferences) ([]*Recommendation, error) {
	return s.generate(ctx, buildPrompt(prefs))
}

// GetSurprise requests a broad, diverse batch ignoring all preference text.
func (s *Client) GetSurprise(ctx context.Context) ([]*Recommendation, error) {
	return s.generate(ctx, buildSurprisePrompt())
}

func (s *Client) generate(ctx context.Context, prompt string) ([]*Recommendation, error) {
	text, err := s.g.GenerateText(ctx, prompt, responseSchema)
	if err != nil {
		log.WithError(err).Error("recommendation request failed")
		return nil, &UpstreamError{Err: err}
	}
	recs, err := parseBatch(text)
	if err != nil {
		log.WithError(err).Error("recommendation response rejected")
		return nil, err
	}
	return recs, nil
}

type wireRecommendation struct {
	Title                 string   `json:"title"`
	Type                  string   `json:"type"`
	Year                  int      `json:"year"`
	Genres                []string `json:"genres"`
	Rating                float64  `json:"rating"`
	ShortDescription      string   `json:"short_description"`
	PersonalizationReason string   `json:"personalization_reason"`
	PosterURL             string   `json:"poster_url"`
	TrailerURL            string   `json:"trailer_url"`
}

// parseBatch validates the raw model output and normalizes the untrusted
// type field. Malformed JSON counts as an upstream failure, valid JSON of
// the wrong shape as an invalid response.
func parseBatch(text string) ([]*Recommendation, error) {
	text = strings.TrimSpace(text)

	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &UpstreamError{Err: errors.Wrap(err, "malformed json")}
	}
	if _, ok := raw.([]any); !ok {
		return nil, ErrInvalidResponseShape
	}

	var items []wireRecommendation
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, ErrInvalidResponseShape
	}

	recs := make([]*Recommendation, 0, len(items))
	for _, it := range items {
		r := &Recommendation{
			Title:                 it.Title,
			Type:                  ParseType(it.Type),
			Year:                  it.Year,
			Genres:                it.Genres,
			Rating:                it.Rating,
			ShortDescription:      it.ShortDescription,
			PersonalizationReason: it.PersonalizationReason,
			PosterURL:             it.PosterURL,
		}
		// a trailer only makes sense for movies and tv shows
		if r.Type.HasTrailer() {
			r.TrailerURL = it.TrailerURL
		}
		recs = append(recs, r)
	}
	return recs, nil
}
