package langdata

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Span is a half-open byte range [Start, End) of a match in the text.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Matcher is a compiled category rule.
type Matcher interface {
	// MatchString reports whether the rule matches anywhere in text.
	MatchString(text string) bool
	// FindAll returns the non-overlapping matches in text, left to right.
	FindAll(text string) []Span
	// Count returns len(FindAll(text)) without building the spans.
	Count(text string) int
	// String returns the underlying pattern.
	String() string
}

// patternMatcher is a Matcher backed by regexp2, which gives Unicode
// word boundaries (\b around "für" or "über" behaves as expected).
// group selects the capture reported by FindAll; 0 is the whole match.
type patternMatcher struct {
	re    *regexp2.Regexp
	group int
}

// WordRule matches any of words as a whole word, case-insensitively.
// Alternatives are tried in the given order.
func WordRule(words ...string) Matcher {
	return mustCompile(`\b(?:`+alternation(words)+`)\b`, 0)
}

// SentenceStartRule matches any of words at the start of the text or
// right after a line break, case-insensitively. FindAll reports the word
// itself, not the preceding line break.
func SentenceStartRule(words ...string) Matcher {
	return mustCompile(`(?:^|\n)(`+alternation(words)+`)\b`, 1)
}

// SuffixRule matches single words that carry one of suffixes after a
// stem of at least minStem word characters, case-insensitively.
func SuffixRule(minStem int, suffixes ...string) Matcher {
	stem := `\w+`
	if minStem > 1 {
		stem = fmt.Sprintf(`\w{%d,}`, minStem)
	}
	return mustCompile(`\b`+stem+`(?:`+alternation(suffixes)+`)\b`, 0)
}

// PatternRule compiles a raw case-insensitive pattern. Use it to extend
// tables with rules that are not plain word lists.
func PatternRule(pattern string) (Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase)
	if err != nil {
		return nil, fmt.Errorf("compile rule %q: %w", pattern, err)
	}
	return &patternMatcher{re: re}, nil
}

func mustCompile(pattern string, group int) Matcher {
	return &patternMatcher{
		re:    regexp2.MustCompile(pattern, regexp2.IgnoreCase),
		group: group,
	}
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp2.Escape(w)
	}
	return strings.Join(quoted, "|")
}

func (m *patternMatcher) String() string { return m.re.String() }

func (m *patternMatcher) MatchString(text string) bool {
	return matches(m.re, text)
}

func (m *patternMatcher) Count(text string) int {
	n := 0
	mt, err := m.re.FindStringMatch(text)
	for err == nil && mt != nil {
		n++
		mt, err = m.re.FindNextMatch(mt)
	}
	return n
}

func (m *patternMatcher) FindAll(text string) []Span {
	var (
		spans   []Span
		offsets []int
	)
	mt, err := m.re.FindStringMatch(text)
	for err == nil && mt != nil {
		if offsets == nil {
			offsets = runeOffsets(text)
		}
		g := &mt.Group
		if m.group > 0 {
			g = mt.GroupByNumber(m.group)
		}
		spans = append(spans, Span{
			Start: offsets[g.Index],
			End:   offsets[g.Index+g.Length],
		})
		mt, err = m.re.FindNextMatch(mt)
	}
	return spans
}

// runeOffsets maps rune indices (as reported by regexp2) to byte offsets.
// The extra final entry is len(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
