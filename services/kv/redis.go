package kv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	cs "github.com/webtor-io/common-services"
)

// Redis is a Store over a shared redis instance.
type Redis struct {
	cl *cs.RedisClient
}

func NewRedis(cl *cs.RedisClient) *Redis {
	if cl == nil {
		return nil
	}
	return &Redis{cl: cl}
}

func (s *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.cl.Get().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %v", key)
	}
	return v, nil
}

func (s *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := s.cl.Get().Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "set %v", key)
	}
	return nil
}
