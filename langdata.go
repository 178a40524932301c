// Package langdata provides the language-specific heuristics behind a
// readability and style checker: syllable estimation and tables of
// grammatical word categories (verb forms, pronouns, prepositions,
// conjunctions, nominalizations, and sentence openers) for English,
// Dutch and German.
//
// Results are approximations meant for readability scoring. This is not a
// morphological analyzer or a part-of-speech tagger.
package langdata

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Language bundles everything registered for one language code.
type Language struct {
	// Code is the language code, e.g. "en".
	Code string
	// Name is the English name of the language, e.g. "English".
	Name string
	// Syllables estimates syllables per word.
	Syllables SyllableCounter
	// Words matches category words anywhere in running text.
	Words *RuleTable
	// Beginnings matches category words at the start of a sentence
	// (start of text or right after a line break).
	Beginnings *RuleTable
}

// CountSyllables is shorthand for l.Syllables.CountSyllables.
func (l *Language) CountSyllables(word string) (int, error) {
	return l.Syllables.CountSyllables(word)
}

// Registry maps language codes to their Language. It is safe for
// concurrent use once built; Register must not race with lookups.
type Registry struct {
	languages map[string]*Language
	log       *zap.Logger
}

// New builds a Registry with the built-in languages (en, nl, de).
// The English syllable counter memoizes into the configured Cache, which
// is owned by this Registry alone.
func New(opts ...Option) (*Registry, error) {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.cache == nil {
		cfg.cache = NewMemoryCache()
	}
	for _, f := range cfg.files {
		cfg.logger.Debug("loaded syllable exceptions",
			zap.String("path", f.path), zap.Int("words", f.words))
	}

	exceptions := EnglishExceptions()
	for _, extra := range cfg.exceptions {
		for w, n := range extra {
			exceptions[w] = n
		}
	}

	r := &Registry{
		languages: make(map[string]*Language),
		log:       cfg.logger,
	}

	enWords, enBeginnings := englishTables()
	nlWords, nlBeginnings := dutchTables()
	deWords, deBeginnings := germanTables()
	builtin := []*Language{
		{
			Code:       "en",
			Name:       "English",
			Syllables:  newEnglishCounter(exceptions, cfg.cache),
			Words:      enWords,
			Beginnings: enBeginnings,
		},
		{
			Code:       "nl",
			Name:       "Dutch",
			Syllables:  SyllableFunc(CountSyllablesStructural),
			Words:      nlWords,
			Beginnings: nlBeginnings,
		},
		{
			Code:       "de",
			Name:       "German",
			Syllables:  SyllableFunc(CountSyllablesStructural),
			Words:      deWords,
			Beginnings: deBeginnings,
		},
	}
	for _, lang := range builtin {
		if err := r.Register(lang); err != nil {
			return nil, err
		}
	}
	r.log.Debug("language registry ready",
		zap.Strings("languages", r.Codes()),
		zap.Int("en_exceptions", len(exceptions)))
	return r, nil
}

// Register adds a language. The code must be new and the language must
// carry a syllable counter and both rule tables.
func (r *Registry) Register(lang *Language) error {
	if lang == nil || lang.Code == "" {
		return fmt.Errorf("register language: missing code")
	}
	if lang.Syllables == nil || lang.Words == nil || lang.Beginnings == nil {
		return fmt.Errorf("register language %q: incomplete", lang.Code)
	}
	if _, dup := r.languages[lang.Code]; dup {
		return fmt.Errorf("register language %q: already registered", lang.Code)
	}
	r.languages[lang.Code] = lang
	r.log.Debug("registered language",
		zap.String("code", lang.Code),
		zap.Strings("words", lang.Words.Names()),
		zap.Strings("beginnings", lang.Beginnings.Names()))
	return nil
}

// Language looks up a language by code.
func (r *Registry) Language(code string) (*Language, error) {
	lang, ok := r.languages[code]
	if !ok {
		return nil, fmt.Errorf("language %q: %w", code, ErrUnsupportedLanguage)
	}
	return lang, nil
}

// CountSyllables estimates the syllables of word in the given language.
func (r *Registry) CountSyllables(word, code string) (int, error) {
	lang, err := r.Language(code)
	if err != nil {
		return 0, err
	}
	return lang.Syllables.CountSyllables(word)
}

// Tables returns the in-text and sentence-start rule tables of a language.
func (r *Registry) Tables(code string) (words, beginnings *RuleTable, err error) {
	lang, err := r.Language(code)
	if err != nil {
		return nil, nil, err
	}
	return lang.Words, lang.Beginnings, nil
}

// Languages returns a map of language code → language name.
func (r *Registry) Languages() map[string]string {
	out := make(map[string]string, len(r.languages))
	for code, lang := range r.languages {
		out[code] = lang.Name
	}
	return out
}

// Codes returns the registered language codes, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.languages))
	for code := range r.languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
