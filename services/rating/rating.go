package rating

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/vibeflow-io/web-api/services/kv"
)

const storageKey = "entertainmentConciergeRatings"

const maxStars = 5

// Store persists the user's 1-5 star opinion per title as one JSON object.
// 0 means "no rating" and is indistinguishable from never having rated.
// Like the watchlist it fails open on any medium or decode error.
type Store struct {
	kv kv.Store
}

func New(s kv.Store) *Store {
	return &Store{kv: s}
}

// All returns the full title -> stars mapping.
func (s *Store) All(ctx context.Context) map[string]int {
	b, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		log.WithError(err).Warn("failed to read ratings")
		return map[string]int{}
	}
	if b == nil {
		return map[string]int{}
	}
	var ratings map[string]int
	if err := json.Unmarshal(b, &ratings); err != nil {
		log.WithError(err).Warn("corrupt ratings blob")
		return map[string]int{}
	}
	return ratings
}

// ForTitle returns the stored stars for the title, 0 when unset.
func (s *Store) ForTitle(ctx context.Context, title string) int {
	return s.All(ctx)[title]
}

// Save stores the given stars for the title, clamped to [0, 5]. The
// "same value unsets" rule belongs to the caller; the store just writes.
func (s *Store) Save(ctx context.Context, title string, stars int) {
	if stars < 0 {
		stars = 0
	}
	if stars > maxStars {
		stars = maxStars
	}
	ratings := s.All(ctx)
	ratings[title] = stars
	b, err := json.Marshal(ratings)
	if err != nil {
		log.WithError(err).Warn("failed to marshal ratings")
		return
	}
	if err := s.kv.Set(ctx, storageKey, b); err != nil {
		log.WithError(err).Warn("failed to save ratings")
	}
}
