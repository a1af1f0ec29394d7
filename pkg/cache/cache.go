// Package cache stores computed results keyed by a hash of their inputs.
//
// Three backends implement [Cache]:
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one JSON file per entry under a directory, for CLI use
//   - [RedisCache]: a shared Redis instance
//
// Keys are produced by a [Keyer]. [DefaultKeyer] hashes the raw input with
// the evaluation mode; [ScopedKeyer] adds a namespace prefix so several
// tools can share one Redis database.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
//
// Get reports a miss with (nil, false, nil); an error means the backend
// failed, not that the key is absent.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ResultKey returns the key for an evaluation result of input in mode.
	ResultKey(input []byte, mode string) string
}

// DefaultKeyer produces "result:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey hashes the input together with the mode, so the same input
// evaluated in two modes never shares an entry.
func (DefaultKeyer) ResultKey(input []byte, mode string) string {
	return hashKey("result", mode, Hash(input))
}
