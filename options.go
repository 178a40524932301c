package langdata

import (
	"fmt"

	"go.uber.org/zap"
)

type config struct {
	cache      Cache
	exceptions []map[string]int
	files      []loadedFile
	logger     *zap.Logger
}

// loadedFile records an exception file for logging once the logger is
// known.
type loadedFile struct {
	path  string
	words int
}

// Option configures New.
type Option func(*config) error

// WithCache sets the memo cache of the English syllable counter.
func WithCache(c Cache) Option {
	return func(cfg *config) error {
		if c == nil {
			return fmt.Errorf("WithCache: nil cache")
		}
		cfg.cache = c
		return nil
	}
}

// WithExceptions layers extra English syllable exceptions on top of the
// built-in list. Keys are normalized; later options win.
func WithExceptions(m map[string]int) Option {
	return func(cfg *config) error {
		norm := make(map[string]int, len(m))
		for w, n := range m {
			if n < 0 {
				return fmt.Errorf("WithExceptions: negative count for %q", w)
			}
			norm[NormalizeWord(w)] = n
		}
		cfg.exceptions = append(cfg.exceptions, norm)
		return nil
	}
}

// WithExceptionsFile is WithExceptions for a file in LoadExceptions format.
func WithExceptionsFile(path string) Option {
	return func(cfg *config) error {
		m, err := loadExceptionsFile(path)
		if err != nil {
			return err
		}
		cfg.files = append(cfg.files, loadedFile{path: path, words: len(m)})
		cfg.exceptions = append(cfg.exceptions, m)
		return nil
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}
