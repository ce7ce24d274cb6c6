package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache keeps one JSON file per entry in a single flat directory.
// File names are the (already hashed) keys, so listing the directory is
// enough to enumerate every entry.
type FileCache struct {
	dir string
}

// record is the on-disk entry shape. Expires is a Unix timestamp in
// seconds; zero means the entry never expires.
type record struct {
	Expires int64  `json:"expires,omitempty"`
	Payload []byte `json:"payload"`
}

// NewFileCache opens a cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) file(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Get returns the payload stored under key. Expired and unreadable entries
// are removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.file(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if rec.Expires != 0 && time.Now().Unix() > rec.Expires {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return rec.Payload, true, nil
}

// Set stores payload under key. The write goes through a temp file and a
// rename so an interrupted run never leaves a half-written entry behind.
func (c *FileCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	rec := record{Payload: payload}
	if ttl > 0 {
		rec.Expires = time.Now().Add(ttl).Unix()
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, "entry-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.file(key))
}

// Delete drops the entry under key. Unknown keys are ignored.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.file(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Purge removes every entry and reports how many were removed.
func (c *FileCache) Purge() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}

// Close is a no-op; every operation leaves the directory consistent.
func (c *FileCache) Close() error {
	return nil
}

var _ Cache = (*FileCache)(nil)
