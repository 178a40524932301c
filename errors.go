package langdata

import "errors"

var (
	// ErrUnsupportedLanguage is returned when no strategy or tables are
	// registered for a language code. There is no fallback language.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidInput is returned by strategies that cannot handle the
	// given word, e.g. the Dutch/German counter on an empty word.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoWords is returned by Measure when the text has no word tokens.
	ErrNoWords = errors.New("no words in text")
)
