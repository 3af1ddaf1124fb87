package kv

import (
	"context"

	"github.com/urfave/cli"
)

// Store is a durable key-value medium holding whole-document JSON blobs
// under fixed string keys. Every write replaces the blob atomically.
type Store interface {
	// Get returns the stored blob or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

const (
	backendFlag = "store-backend"
	dirFlag     = "store-dir"
)

const (
	BackendBadger = "badger"
	BackendRedis  = "redis"
	BackendPG     = "pg"
	BackendMemory = "memory"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   backendFlag,
			Usage:  "store backend (badger, redis, pg, memory)",
			Value:  BackendBadger,
			EnvVar: "STORE_BACKEND",
		},
		cli.StringFlag{
			Name:   dirFlag,
			Usage:  "badger store directory",
			Value:  "data",
			EnvVar: "STORE_DIR",
		},
	)
}

func Backend(c *cli.Context) string {
	return c.String(backendFlag)
}

func Dir(c *cli.Context) string {
	return c.String(dirFlag)
}
