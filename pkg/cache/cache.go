// Package cache stores HTTP responses on disk between repopulse runs.
//
// GitHub's API answers rarely change within an analysis session, so
// repeating an identical GET is wasted traffic. FileCache keeps each
// response in its own JSON file under the user's cache directory with an
// expiry stamp checked on read; NullCache satisfies the same interface
// while storing nothing, backing --no-cache runs and tests.
//
// Keys must be filesystem-safe; [Key] derives one from an HTTP request.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry stored under key. The bool reports whether a
	// fresh entry was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key for ttl. A zero ttl keeps the entry forever.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete drops the entry under key. Unknown keys are ignored.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Key derives the cache key for an HTTP request. Method and URL are hashed
// together so GET and HEAD of the same URL never share an entry, and raw
// URLs never reach the filesystem.
func Key(method, url string) string {
	sum := sha256.Sum256([]byte(method + " " + url))
	return hex.EncodeToString(sum[:])
}
