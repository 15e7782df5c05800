// Package cache stores rendered artifacts between CLI runs.
//
// Laying out a containment graph with Graphviz or drawing a PDF preview is
// the slowest thing the CLI does, and the output depends only on its inputs.
// Entries are keyed by [Key], a hash of everything that went into them.
//
//	c, _ := cache.NewFileCache(dir, cache.DefaultTTL)
//	key := cache.Key("tree", dot, "svg")
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data
//	}
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// DefaultTTL is how long a file cache entry stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store. A miss is not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key derives a cache key from a namespace and the inputs of the cached
// computation. Inputs are JSON encoded before hashing, so any serialisable
// value works.
func Key(namespace string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return namespace + ":" + Hash(data)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
