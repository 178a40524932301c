package langdata

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	_, ok := c.Get("hello")
	assert.False(t, ok)

	c.Add("hello", 2)
	c.Add("hello", 2)
	n, ok := c.Get("hello")
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCacheConcurrent(t *testing.T) {
	c := NewMemoryCache()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				w := fmt.Sprintf("w%d", i)
				c.Add(w, i)
				n, ok := c.Get(w)
				assert.True(t, ok)
				assert.Equal(t, i, n)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, c.Len())
}

func TestLRUCache(t *testing.T) {
	_, err := NewLRUCache(0)
	assert.Error(t, err)

	c, err := NewLRUCache(2)
	require.NoError(t, err)
	c.Add("a", 1)
	c.Add("b", 1)
	c.Add("c", 1)
	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry is evicted")
	n, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestLRUCacheKeepsExceptions(t *testing.T) {
	c, err := NewLRUCache(1)
	require.NoError(t, err)
	r := newTestRegistry(t, WithCache(c))

	for _, w := range []string{"hello", "readability", "nation"} {
		_, err := r.CountSyllables(w, "en")
		require.NoError(t, err)
	}
	n, err := r.CountSyllables("chummed", "en")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = r.CountSyllables("hello", "en")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "evicted words are recomputed to the same value")
}
