package document

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type cacheEntry struct {
	Hash      string
	CreatedAt time.Time
}

// Cache remembers the content of documents it has seen, so that writes which
// leave a document unchanged can be skipped.
type Cache struct {
	mutex   sync.Mutex
	entries map[string]cacheEntry
	maxAge  time.Duration
}

// NewCache returns an empty cache. Entries older than maxAge are treated as
// changed; zero keeps them forever.
func NewCache(maxAge time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		maxAge:  maxAge,
	}
}

// Changed reports whether the content of path differs from the last call
// for the same path, and records the current content.
func (c *Cache) Changed(path string) (bool, error) {
	hash, err := fileHash(path)
	if err != nil {
		c.Invalidate(path)
		return true, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[path]
	if exists && entry.Hash == hash && !c.expired(entry) {
		return false, nil
	}
	c.entries[path] = cacheEntry{Hash: hash, CreatedAt: time.Now()}
	return true, nil
}

// Invalidate forgets path.
func (c *Cache) Invalidate(path string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.entries, path)
}

func (c *Cache) expired(entry cacheEntry) bool {
	return c.maxAge > 0 && time.Since(entry.CreatedAt) > c.maxAge
}

func fileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
