package langdata

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	r, err := New(opts...)
	require.NoError(t, err)
	return r
}

func TestEnglishExceptions(t *testing.T) {
	r := newTestRegistry(t)
	exceptions := EnglishExceptions()
	require.Len(t, exceptions, 61)

	for word, want := range exceptions {
		got, err := r.CountSyllables(word, "en")
		require.NoError(t, err, word)
		assert.Equal(t, want, got, word)
	}
}

func TestEnglishExceptionsNormalized(t *testing.T) {
	r := newTestRegistry(t)
	tests := []struct {
		in   string
		want int
	}{
		{"Tottered ", 2},
		{"MRS", 2},
		{"  sombre\t", 2},
		{"Chummed", 1},
		{"ETC", 4},
		{"h'm", 1},
		{"60", 2},
		{"Unostentatious", 5},
	}
	for _, tt := range tests {
		got, err := r.CountSyllables(tt.in, "en")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%q", tt.in)
	}
}

func TestEnglishHeuristic(t *testing.T) {
	r := newTestRegistry(t)
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"e", 0},
		{"cat", 1},
		{"fire", 1},
		{"hello", 2},
		{"readability", 5},
		{"table", 2},      // [aeiouy]bl$
		{"syllable", 3},   // [aeiouy]bl$
		{"nation", 2},     // io, ion
		{"union", 2},      // io, ion
		{"special", 2},    // ia, cial
		{"stadium", 3},    // iu
		{"realism", 3},    // ism$
		{"couldnt", 2},    // dnt$
		{"coalesce", 3},   // ^coal.
		{"lovely", 2},     // .ely$
		{"language", 2},   // gua not followed by a vowel
		{"pool", 2},       // (.)(?!\1)([aeiouy])\2l$
		{"Caf\u00e9", 2},  // precomposed
		{"Cafe\u0301", 2}, // combining acute
		{"tokenized", 4},
		{"another", 3},
	}
	for _, tt := range tests {
		got, err := r.CountSyllables(tt.in, "en")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%q", tt.in)
	}
}

func TestEnglishMemoization(t *testing.T) {
	cache := NewMemoryCache()
	c := newEnglishCounter(EnglishExceptions(), cache)

	first, err := c.CountSyllables("Readability")
	require.NoError(t, err)
	assert.Equal(t, 5, first)

	got, ok := cache.Get("readability")
	require.True(t, ok, "result must be cached under the normalized word")
	assert.Equal(t, first, got)

	// The second call must come from the cache, not the rules.
	c.add, c.subtract = nil, nil
	second, err := c.CountSyllables("readability ")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// An uncached word now sees the altered rules.
	n, err := c.CountSyllables("nation")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "two vowel groups, no corrections")
}

func TestEnglishCacheDoesNotHoldExceptions(t *testing.T) {
	cache := NewMemoryCache()
	r := newTestRegistry(t, WithCache(cache))

	_, err := r.CountSyllables("tottered", "en")
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())

	_, err = r.CountSyllables("hello", "en")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())
}

func TestRegistriesDoNotShareCache(t *testing.T) {
	a := NewMemoryCache()
	b := NewMemoryCache()
	ra := newTestRegistry(t, WithCache(a))
	newTestRegistry(t, WithCache(b))

	_, err := ra.CountSyllables("hello", "en")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestWithExceptions(t *testing.T) {
	r := newTestRegistry(t, WithExceptions(map[string]int{
		"Fire":     2,
		"tottered": 3,
	}))
	tests := map[string]int{"fire": 2, "tottered": 3, "mrs": 2}
	for word, want := range tests {
		got, err := r.CountSyllables(word, "en")
		require.NoError(t, err)
		assert.Equal(t, want, got, word)
	}

	_, err := New(WithExceptions(map[string]int{"x": -1}))
	assert.Error(t, err)
}

func TestEnglishConcurrent(t *testing.T) {
	r := newTestRegistry(t)
	words := []string{"readability", "nation", "syllable", "hello", "tottered", "coalesce"}
	want := make(map[string]int)
	for _, w := range words {
		n, err := countFresh(w)
		require.NoError(t, err)
		want[w] = n
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, w := range words {
				n, err := r.CountSyllables(w, "en")
				assert.NoError(t, err)
				assert.Equal(t, want[w], n, w)
			}
		}()
	}
	wg.Wait()
}

// countFresh counts with a throwaway English counter.
func countFresh(word string) (int, error) {
	return newEnglishCounter(EnglishExceptions(), NewMemoryCache()).CountSyllables(word)
}

func TestStructural(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"lopen", 2},
		{"de", 1},
		{"a", 1},
		{"ade", 2},    // trailing schwa rule
		{"eerste", 2}, // trailing schwa rule
		{"appel", 2},
		{"boek", 1},
		{"arbeiten", 3},
		{"über", 2},
		{"Über", 2},
		{" Lopen ", 2},
		{"xyz", 1},
	}
	r := newTestRegistry(t)
	for _, tt := range tests {
		for _, lang := range []string{"nl", "de"} {
			got, err := r.CountSyllables(tt.in, lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "%s %q", lang, tt.in)
			assert.GreaterOrEqual(t, got, 1)
		}
	}
}

func TestStructuralEmpty(t *testing.T) {
	r := newTestRegistry(t)
	for _, lang := range []string{"nl", "de"} {
		_, err := r.CountSyllables("", lang)
		assert.ErrorIs(t, err, ErrInvalidInput, lang)
		_, err = r.CountSyllables("  ", lang)
		assert.ErrorIs(t, err, ErrInvalidInput, lang)
	}
}

func TestCountSyllablesUnsupported(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.CountSyllables("bonjour", "fr")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	_, err = r.CountSyllables("", "")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}
