package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/erraggy/oastables/extract"
	"github.com/erraggy/oastables/internal/options"
	"github.com/erraggy/oastables/loader"
)

// inlineSourceName names inline content in loader results and export file names.
const inlineSourceName = "inline.json"

// specInput represents the two ways an OAS document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS JSON file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS JSON document content"`
	Lenient bool   `json:"lenient,omitempty" jsonschema:"Retry parsing on the text between the first { and the last } when strict parsing fails"`
}

// specResult is a loaded document together with its extracted tables.
type specResult struct {
	Loaded *loader.Result
	Tables *extract.Result
}

// cacheEntry holds a cached result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result     *specResult
	lastAccess time.Time
	expiresAt  time.Time
}

// specCacheStore provides a session-scoped cache of loaded and extracted specs.
// File inputs are keyed by (absolutePath, modTime), content inputs by a SHA-256 hash.
type specCacheStore struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	maxSize int
}

var specCache = &specCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *specCacheStore) get(key string) *specResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		e.lastAccess = time.Now()
		return e.result
	}
	return nil
}

// put stores a result, evicting the least recently used entry if at capacity.
func (c *specCacheStore) put(key string, result *specResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, lastAccess: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var lruKey string
		var lruTime time.Time
		for k, e := range c.entries {
			if lruKey == "" || e.lastAccess.Before(lruTime) {
				lruKey = k
				lruTime = e.lastAccess
			}
		}
		delete(c.entries, lruKey)
	}

	c.entries[key] = entry
}

// reset clears all cached entries. Used in tests.
func (c *specCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *specCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given spec input, or "" when the
// input cannot be cached.
func makeCacheKey(s specInput) string {
	lenient := 0
	if s.Lenient || cfg.Lenient {
		lenient = 1
	}
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%d:%s:%d", lenient, absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return fmt.Sprintf("content:%d:%s", lenient, hex.EncodeToString(h[:]))
	default:
		return ""
	}
}

// sourcePath returns the path export file names are derived from.
func (s specInput) sourcePath() string {
	if s.File != "" {
		return s.File
	}
	return inlineSourceName
}

// resolve loads and extracts the spec from whichever input was provided,
// using the cache when enabled.
func (s specInput) resolve() (*specResult, error) {
	if err := options.ValidateSingleInputSource(
		"exactly one of file or content must be provided (got none)",
		"exactly one of file or content must be provided (got both)",
		s.File != "", s.Content != "",
	); err != nil {
		return nil, err
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASTABLES_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	if cfg.CacheEnabled {
		key = makeCacheKey(s)
	}
	if key != "" {
		if cached := specCache.get(key); cached != nil {
			return cached, nil
		}
	}

	opts := []loader.Option{loader.WithLenient(s.Lenient || cfg.Lenient)}
	if s.File != "" {
		opts = append(opts, loader.WithFilePath(s.File))
	} else {
		opts = append(opts, loader.WithBytes([]byte(s.Content)), loader.WithSourceName(inlineSourceName))
	}
	loaded, err := loader.LoadWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	result := &specResult{Loaded: loaded, Tables: extract.Extract(loaded.Document)}
	if key != "" {
		specCache.put(key, result, cfg.CacheTTL)
	}
	return result, nil
}
