package langdata

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

var (
	// reToken matches a word token; \w is Unicode-aware in regexp2.
	reToken     = regexp2.MustCompile(`\b[-\w]+\b`, regexp2.None)
	reParagraph = regexp.MustCompile(`\n\n+`)
	reSentence  = regexp.MustCompile(`[^\n]+(\n|$)`)
)

// SentenceInfo holds the surface counts of a text and the ratios derived
// from them.
type SentenceInfo struct {
	CharactersPerWord     float64 `json:"characters_per_word" yaml:"characters_per_word"`
	SyllablesPerWord      float64 `json:"syll_per_word" yaml:"syll_per_word"`
	WordsPerSentence      float64 `json:"words_per_sentence" yaml:"words_per_sentence"`
	SentencesPerParagraph float64 `json:"sentences_per_paragraph" yaml:"sentences_per_paragraph"`
	TypeTokenRatio        float64 `json:"type_token_ratio" yaml:"type_token_ratio"`
	Characters            int     `json:"characters" yaml:"characters"`
	Syllables             int     `json:"syllables" yaml:"syllables"`
	Words                 int     `json:"words" yaml:"words"`
	WordTypes             int     `json:"wordtypes" yaml:"wordtypes"`
	Sentences             int     `json:"sentences" yaml:"sentences"`
	Paragraphs            int     `json:"paragraphs" yaml:"paragraphs"`
	LongWords             int     `json:"long_words" yaml:"long_words"`
	ComplexWords          int     `json:"complex_words" yaml:"complex_words"`
}

// Measures is the full surface analysis of a text.
type Measures struct {
	Grades     Grades          `json:"readability_grades" yaml:"readability grades"`
	Info       SentenceInfo    `json:"sentence_info" yaml:"sentence info"`
	WordUsage  []CategoryCount `json:"word_usage" yaml:"word usage"`
	Beginnings []CategoryCount `json:"sentence_beginnings" yaml:"sentence beginnings"`
}

// Word length from which a token counts as long, and syllable count from
// which a token counts as complex.
const (
	longWordRunes    = 7
	complexSyllables = 3
)

// tally accumulates per-token counts.
type tally struct {
	lang       *Language
	characters int
	words      int
	syllables  int
	long       int
	complex    int
	vocabulary map[string]struct{}
}

func newTally(lang *Language) *tally {
	return &tally{lang: lang, vocabulary: make(map[string]struct{})}
}

func (t *tally) addTokens(text string) error {
	m, err := reToken.FindStringMatch(text)
	for err == nil && m != nil {
		token := m.String()
		t.vocabulary[token] = struct{}{}
		t.words++
		n := utf8.RuneCountInString(token)
		t.characters += n
		syll, cerr := t.lang.Syllables.CountSyllables(token)
		if cerr != nil {
			return fmt.Errorf("token %q: %w", token, cerr)
		}
		t.syllables += syll
		if n >= longWordRunes {
			t.long++
		}
		// Capitalized words are assumed to be proper nouns.
		first, _ := utf8.DecodeRuneInString(token)
		if syll >= complexSyllables && !unicode.IsUpper(first) {
			t.complex++
		}
		m, err = reToken.FindNextMatch(m)
	}
	return err
}

func (t *tally) info(sentences, paragraphs int) SentenceInfo {
	return SentenceInfo{
		CharactersPerWord:     ratio(t.characters, t.words),
		SyllablesPerWord:      ratio(t.syllables, t.words),
		WordsPerSentence:      ratio(t.words, sentences),
		SentencesPerParagraph: ratio(sentences, paragraphs),
		TypeTokenRatio:        ratio(len(t.vocabulary), t.words),
		Characters:            t.characters,
		Syllables:             t.syllables,
		Words:                 t.words,
		WordTypes:             len(t.vocabulary),
		Sentences:             sentences,
		Paragraphs:            paragraphs,
		LongWords:             t.long,
		ComplexWords:          t.complex,
	}
}

// Measure analyzes text given as a single string, one sentence per line
// with space-separated tokens. Paragraphs are separated by blank lines.
// Only "\n" is recognized as a line break.
func (l *Language) Measure(text string) (*Measures, error) {
	t := newTally(l)
	if err := t.addTokens(text); err != nil {
		return nil, err
	}
	if t.words == 0 {
		return nil, ErrNoWords
	}

	paragraphs := len(reParagraph.FindAllStringIndex(text, -1)) + 1
	sentences := len(reSentence.FindAllStringIndex(text, -1))
	info := t.info(sentences, paragraphs)
	return &Measures{
		Grades:     computeGrades(info),
		Info:       info,
		WordUsage:  l.Words.CountAll(text),
		Beginnings: l.Beginnings.CountAll(text),
	}, nil
}

// MeasureLines analyzes a text given as lines, one sentence per line.
// Blank lines separate paragraphs. A sentence-start category is counted
// at most once per line.
func (l *Language) MeasureLines(lines []string) (*Measures, error) {
	t := newTally(l)
	usage := zeroCounts(l.Words)
	beginnings := zeroCounts(l.Beginnings)
	sentences, paragraphs := 0, 0

	prevEmpty := true
	for _, sent := range lines {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			prevEmpty = true
			continue
		}
		if prevEmpty {
			paragraphs++
		}
		prevEmpty = false
		sentences++

		if err := t.addTokens(sent); err != nil {
			return nil, err
		}
		for i, r := range l.Words.rules {
			usage[i].Count += r.Matcher.Count(sent)
		}
		for i, r := range l.Beginnings.rules {
			if r.Matcher.MatchString(sent) {
				beginnings[i].Count++
			}
		}
	}
	if t.words == 0 {
		return nil, ErrNoWords
	}

	info := t.info(sentences, paragraphs)
	return &Measures{
		Grades:     computeGrades(info),
		Info:       info,
		WordUsage:  usage,
		Beginnings: beginnings,
	}, nil
}

func zeroCounts(t *RuleTable) []CategoryCount {
	out := make([]CategoryCount, len(t.rules))
	for i, r := range t.rules {
		out[i].Name = r.Name
	}
	return out
}
