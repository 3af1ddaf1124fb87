package view

import (
	"context"
	"strings"
	"sync"

	"github.com/vibeflow-io/web-api/services/recommend"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// FilterAll matches every item.
const FilterAll = "All"

// PosterPlaceholder is served for items whose poster url is absent.
const PosterPlaceholder = "/static/poster-placeholder.svg"

// WatchlistChecker and RatingReader are the slices of the two stores the
// view needs to annotate items.
type WatchlistChecker interface {
	Has(ctx context.Context, title string) bool
}

type RatingReader interface {
	ForTitle(ctx context.Context, title string) int
}

// State holds one session's batch plus the active filter and search text.
// A batch lives until the next request replaces it wholesale.
type State struct {
	mux    sync.Mutex
	status Status
	batch  []*recommend.Recommendation
	errMsg string
	filter string
	search string
	seq    uint64
}

func NewState() *State {
	return &State{
		status: StatusIdle,
		filter: FilterAll,
	}
}

// Begin enters Loading, clearing the previous batch, error, filter and
// search. It returns the sequence number of the new request: only the
// most recently issued request may publish its outcome.
func (s *State) Begin() uint64 {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.status = StatusLoading
	s.batch = nil
	s.errMsg = ""
	s.filter = FilterAll
	s.search = ""
	s.seq++
	return s.seq
}

// Complete publishes a batch. A stale sequence number is discarded.
func (s *State) Complete(seq uint64, batch []*recommend.Recommendation) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	if seq != s.seq {
		return false
	}
	s.status = StatusReady
	s.batch = batch
	return true
}

// Fail publishes an error message. A stale sequence number is discarded.
func (s *State) Fail(seq uint64, msg string) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	if seq != s.seq {
		return false
	}
	s.status = StatusFailed
	s.errMsg = msg
	return true
}

func (s *State) Loading() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.status == StatusLoading
}

// SetFilter activates a type filter. Anything that is not "All" or a type
// present in the current batch resets to "All".
func (s *State) SetFilter(filter string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if filter == FilterAll {
		s.filter = FilterAll
		return
	}
	for _, r := range s.batch {
		if r.Type.String() == filter {
			s.filter = filter
			return
		}
	}
	s.filter = FilterAll
}

// SetSearch sets the free-text title query. Empty matches everything.
func (s *State) SetSearch(query string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.search = query
}

// Item is one visible recommendation annotated with store-derived state.
type Item struct {
	recommend.Recommendation
	InWatchlist bool `json:"in_watchlist"`
	UserRating  int  `json:"user_rating"`
}

// Snapshot is what one render of the grid needs.
type Snapshot struct {
	Status Status  `json:"status"`
	Error  string  `json:"error,omitempty"`
	Total  int     `json:"total"`
	Items  []*Item `json:"items"`
	// Filters is nil when the batch spans one or zero distinct types.
	Filters      []string `json:"filters,omitempty"`
	ActiveFilter string   `json:"active_filter,omitempty"`
	Search       string   `json:"search,omitempty"`
	// EmptyBatch marks a completed request that returned no items at all;
	// NoResultsQuery names the query that filtered a non-empty batch to zero.
	EmptyBatch     bool   `json:"empty_batch,omitempty"`
	NoResultsQuery string `json:"no_results_query,omitempty"`
}

// Snapshot derives the displayed subset: batch items satisfying both the
// type filter and the case-insensitive title search, in batch order.
func (s *State) Snapshot(ctx context.Context, wl WatchlistChecker, rr RatingReader) *Snapshot {
	s.mux.Lock()
	status := s.status
	errMsg := s.errMsg
	filter := s.filter
	search := s.search
	batch := s.batch
	s.mux.Unlock()

	snap := &Snapshot{
		Status: status,
		Error:  errMsg,
		Total:  len(batch),
		Items:  []*Item{},
	}
	if status != StatusReady {
		return snap
	}

	snap.ActiveFilter = filter
	snap.Search = search
	snap.Filters = filterOptions(batch)

	query := strings.ToLower(search)
	for _, r := range batch {
		if filter != FilterAll && r.Type.String() != filter {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(r.Title), query) {
			continue
		}
		item := &Item{
			Recommendation: *r,
			UserRating:     rr.ForTitle(ctx, r.Title),
			InWatchlist:    wl.Has(ctx, r.Title),
		}
		if item.PosterURL == "" {
			item.PosterURL = PosterPlaceholder
		}
		snap.Items = append(snap.Items, item)
	}

	if len(batch) == 0 {
		snap.EmptyBatch = true
	} else if len(snap.Items) == 0 {
		snap.NoResultsQuery = search
	}
	return snap
}

// filterOptions returns the distinct batch types in first-appearance
// order behind "All", or nil when there is nothing to choose between.
func filterOptions(batch []*recommend.Recommendation) []string {
	opts := []string{FilterAll}
	seen := map[string]bool{}
	for _, r := range batch {
		t := r.Type.String()
		if !seen[t] {
			seen[t] = true
			opts = append(opts, t)
		}
	}
	if len(opts) <= 2 {
		return nil
	}
	return opts
}
