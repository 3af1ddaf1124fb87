package watchlist

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/vibeflow-io/web-api/services/kv"
	"github.com/vibeflow-io/web-api/services/recommend"
)

const storageKey = "vibeFlowWatchlist"

// Store keeps a user-curated list of full recommendation records so the
// watchlist can be redrawn after the source batch is gone. Entries are
// keyed by title and persisted wholesale as one JSON array.
//
// The store fails open: a broken medium or corrupt blob degrades to an
// empty list or a dropped write, reported only through the log.
type Store struct {
	kv kv.Store
}

func New(s kv.Store) *Store {
	return &Store{kv: s}
}

// List returns all persisted entries. Every call re-reads the medium.
func (s *Store) List(ctx context.Context) []*recommend.Recommendation {
	b, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		log.WithError(err).Warn("failed to read watchlist")
		return nil
	}
	if b == nil {
		return nil
	}
	var items []*recommend.Recommendation
	if err := json.Unmarshal(b, &items); err != nil {
		log.WithError(err).Warn("corrupt watchlist blob")
		return nil
	}
	return items
}

// Get returns the entry with the given title or nil.
func (s *Store) Get(ctx context.Context, title string) *recommend.Recommendation {
	for _, it := range s.List(ctx) {
		if it.Title == title {
			return it
		}
	}
	return nil
}

// Has reports membership by title.
func (s *Store) Has(ctx context.Context, title string) bool {
	return s.Get(ctx, title) != nil
}

// Add appends the record unless its title is already present.
func (s *Store) Add(ctx context.Context, r *recommend.Recommendation) {
	items := s.List(ctx)
	for _, it := range items {
		if it.Title == r.Title {
			return
		}
	}
	s.save(ctx, append(items, r))
}

// Remove drops the entry with the given title, keeping the rest in order.
func (s *Store) Remove(ctx context.Context, title string) {
	items := s.List(ctx)
	out := items[:0]
	for _, it := range items {
		if it.Title != title {
			out = append(out, it)
		}
	}
	s.save(ctx, out)
}

// Toggle flips membership and reports whether the record was added.
func (s *Store) Toggle(ctx context.Context, r *recommend.Recommendation) bool {
	if s.Has(ctx, r.Title) {
		s.Remove(ctx, r.Title)
		return false
	}
	s.Add(ctx, r)
	return true
}

func (s *Store) save(ctx context.Context, items []*recommend.Recommendation) {
	if items == nil {
		items = []*recommend.Recommendation{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		log.WithError(err).Warn("failed to marshal watchlist")
		return
	}
	if err := s.kv.Set(ctx, storageKey, b); err != nil {
		log.WithError(err).Warn("failed to save watchlist")
	}
}
