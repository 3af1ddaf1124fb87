package kv

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	cs "github.com/webtor-io/common-services"
)

// Blob is one whole-document record of the pg backend.
type Blob struct {
	tableName struct{} `pg:"kv_blob"`

	Key       string          `pg:"key,pk"`
	Value     json.RawMessage `pg:"value,type:jsonb"`
	UpdatedAt time.Time       `pg:"updated_at"`
}

// PG is a Store over a kv_blob table.
type PG struct {
	pg *cs.PG
}

func NewPG(p *cs.PG) *PG {
	if p == nil {
		return nil
	}
	return &PG{pg: p}
}

func (s *PG) Get(ctx context.Context, key string) ([]byte, error) {
	db := s.pg.Get()
	if db == nil {
		return nil, errors.New("no db")
	}
	b := &Blob{Key: key}
	err := db.ModelContext(ctx, b).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %v", key)
	}
	return b.Value, nil
}

func (s *PG) Set(ctx context.Context, key string, value []byte) error {
	db := s.pg.Get()
	if db == nil {
		return errors.New("no db")
	}
	b := &Blob{
		Key:       key,
		Value:     json.RawMessage(value),
		UpdatedAt: time.Now(),
	}
	_, err := db.ModelContext(ctx, b).
		OnConflict("(key) DO UPDATE").
		Set("value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		Insert()
	if err != nil {
		return errors.Wrapf(err, "set %v", key)
	}
	return nil
}
