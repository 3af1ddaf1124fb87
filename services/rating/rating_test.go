package rating

import (
	"context"
	"errors"
	"testing"

	"github.com/vibeflow-io/web-api/services/kv"
)

func TestSaveAndForTitle(t *testing.T) {
	ctx := context.Background()
	s := New(kv.NewMemory())

	s.Save(ctx, "Inception", 4)

	if got := s.ForTitle(ctx, "Inception"); got != 4 {
		t.Errorf("ForTitle() = %d, want 4", got)
	}
	if got := s.ForTitle(ctx, "Dune"); got != 0 {
		t.Errorf("ForTitle() for unrated title = %d, want 0", got)
	}
}

func TestSave_ZeroUnsets(t *testing.T) {
	ctx := context.Background()
	s := New(kv.NewMemory())

	s.Save(ctx, "Inception", 3)
	s.Save(ctx, "Inception", 0)

	if got := s.ForTitle(ctx, "Inception"); got != 0 {
		t.Errorf("ForTitle() after unset = %d, want 0", got)
	}
}

func TestSave_ClampsStars(t *testing.T) {
	ctx := context.Background()
	s := New(kv.NewMemory())

	s.Save(ctx, "a", 17)
	s.Save(ctx, "b", -2)

	if got := s.ForTitle(ctx, "a"); got != 5 {
		t.Errorf("stars above range clamped to %d, want 5", got)
	}
	if got := s.ForTitle(ctx, "b"); got != 0 {
		t.Errorf("stars below range clamped to %d, want 0", got)
	}
}

func TestSave_IndependentTitles(t *testing.T) {
	ctx := context.Background()
	s := New(kv.NewMemory())

	s.Save(ctx, "Inception", 5)
	s.Save(ctx, "Dune", 2)

	all := s.All(ctx)
	if all["Inception"] != 5 || all["Dune"] != 2 {
		t.Errorf("All() = %v", all)
	}
}

func TestAll_FailsOpenOnCorruptBlob(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemory()
	_ = m.Set(ctx, "entertainmentConciergeRatings", []byte(`[1,2,3]`))
	s := New(m)

	if all := s.All(ctx); len(all) != 0 {
		t.Errorf("expected empty map from corrupt blob, got %v", all)
	}
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("medium unavailable")
}

func (failingKV) Set(context.Context, string, []byte) error {
	return errors.New("medium unavailable")
}

func TestStore_FailsOpenOnBrokenMedium(t *testing.T) {
	ctx := context.Background()
	s := New(failingKV{})

	s.Save(ctx, "Inception", 3)
	if got := s.ForTitle(ctx, "Inception"); got != 0 {
		t.Errorf("ForTitle() = %d on broken medium, want 0", got)
	}
}
