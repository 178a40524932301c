package langdata

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes syllable counts keyed by normalized word.
// Implementations must be safe for concurrent use. Two writers racing on
// the same key always store the same value, so last write wins.
type Cache interface {
	Get(word string) (int, bool)
	Add(word string, count int)
	Len() int
}

// memoryCache is an unbounded map that only grows.
type memoryCache struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewMemoryCache returns an unbounded, monotonically growing Cache.
// This is the default for a Registry.
func NewMemoryCache() Cache {
	return &memoryCache{counts: make(map[string]int)}
}

func (c *memoryCache) Get(word string) (int, bool) {
	c.mu.RLock()
	n, ok := c.counts[word]
	c.mu.RUnlock()
	return n, ok
}

func (c *memoryCache) Add(word string, count int) {
	c.mu.Lock()
	c.counts[word] = count
	c.mu.Unlock()
}

func (c *memoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.counts)
}

// lruCache bounds memory for long-running processes. An evicted word is
// simply recomputed to the same value on its next lookup.
type lruCache struct {
	c *lru.Cache[string, int]
}

// NewLRUCache returns a Cache holding at most size words.
func NewLRUCache(size int) (Cache, error) {
	c, err := lru.New[string, int](size)
	if err != nil {
		return nil, fmt.Errorf("syllable cache: %w", err)
	}
	return &lruCache{c: c}, nil
}

func (c *lruCache) Get(word string) (int, bool) { return c.c.Get(word) }

func (c *lruCache) Add(word string, count int) { c.c.Add(word, count) }

func (c *lruCache) Len() int { return c.c.Len() }
