package langdata

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// SyllableCounter estimates the number of syllables in a single word.
type SyllableCounter interface {
	CountSyllables(word string) (int, error)
}

// SyllableFunc adapts a plain function to SyllableCounter.
type SyllableFunc func(word string) (int, error)

// CountSyllables implements SyllableCounter.
func (f SyllableFunc) CountSyllables(word string) (int, error) { return f(word) }

// Correction patterns for the English vowel-group heuristic, applied to
// the lower-cased word after silent-e elision. Each matching pattern
// moves the count by one; a word may match several.
// Based on Greg Fast's Lingua::EN::Syllable.
var (
	englishSubtract = []string{
		"cial", "tia", "cius", "cious", "gui", "ion", "iou",
		"sia$", ".ely$",
	}
	englishAdd = []string{
		"ia", "riet", "dien", "iu", "io", "ii",
		"[aeiouy]bl$", "mbl$",
		"[aeiou]{3}",
		"^mc", "ism$",
		`(.)(?!\1)([aeiouy])\2l$`,
		"[^l]llien",
		"^coad.", "^coag.", "^coal.", "^coax.",
		`(.)(?!\1)[gq]ua(.)(?!\2)[aeiou]`,
		"dnt$",
	}
)

// compileRules compiles correction patterns. The patterns use
// backreferences and lookahead, hence regexp2 rather than regexp.
func compileRules(patterns []string) []*regexp2.Regexp {
	out := make([]*regexp2.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp2.MustCompile(p, regexp2.None)
	}
	return out
}

// matches reports whether re matches anywhere in s. Errors from regexp2
// only signal an exceeded MatchTimeout, which is never set here.
func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// englishCounter is the exception-list + vowel-group heuristic for
// English. Results are memoized in cache.
type englishCounter struct {
	exceptions map[string]int
	cache      Cache
	subtract   []*regexp2.Regexp
	add        []*regexp2.Regexp
}

func newEnglishCounter(exceptions map[string]int, cache Cache) *englishCounter {
	return &englishCounter{
		exceptions: exceptions,
		cache:      cache,
		subtract:   compileRules(englishSubtract),
		add:        compileRules(englishAdd),
	}
}

// CountSyllables implements SyllableCounter. The empty word has 0
// syllables; it never returns an error.
func (c *englishCounter) CountSyllables(word string) (int, error) {
	key := NormalizeWord(word)
	if key == "" {
		return 0, nil
	}
	if n, ok := c.exceptions[key]; ok {
		return n, nil
	}
	if n, ok := c.cache.Get(key); ok {
		return n, nil
	}

	n := c.estimate(key)
	c.cache.Add(key, n)
	return n, nil
}

// estimate runs the heuristic on a normalized, non-empty word.
func (c *englishCounter) estimate(w string) int {
	w = strings.TrimSuffix(w, "e")

	n := 0
	prevVowel := false
	for _, r := range w {
		v := IsVowel(r) || r == 'y'
		if v && !prevVowel {
			n++
		}
		prevVowel = v
	}

	for _, re := range c.add {
		if matches(re, w) {
			n++
		}
	}
	for _, re := range c.subtract {
		if matches(re, w) {
			n--
		}
	}
	return max(n, 0)
}

// CountSyllablesStructural counts syllables for Dutch and German by
// counting vowel-to-consonant transitions. A word that starts with a vowel
// and ends in a consonant followed by "e" gets one extra syllable for the
// trailing schwa. Every non-empty word has at least one syllable; the
// empty word is ErrInvalidInput.
func CountSyllablesStructural(word string) (int, error) {
	runes := []rune(NormalizeWord(word))
	if len(runes) == 0 {
		return 0, fmt.Errorf("count syllables: empty word: %w", ErrInvalidInput)
	}

	n := 0
	prevVowel := IsVowel(runes[0])
	for _, r := range runes[1:] {
		v := IsVowel(r)
		if prevVowel && !v {
			n++
		}
		prevVowel = v
	}

	last := len(runes) - 1
	if len(runes) > 1 && IsVowel(runes[0]) && runes[last] == 'e' && !IsVowel(runes[last-1]) {
		n++
	}
	return max(n, 1), nil
}
