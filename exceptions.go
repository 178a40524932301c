package langdata

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//go:embed data/syllables_en.txt
var englishExceptionsFile string

// EnglishExceptions returns a fresh copy of the built-in English exception
// list: words whose vowel-group count is known to be wrong.
func EnglishExceptions() map[string]int {
	m, err := LoadExceptions(strings.NewReader(englishExceptionsFile))
	if err != nil {
		// the embedded file is part of the build
		panic(fmt.Errorf("data/syllables_en.txt: %w", err))
	}
	return m
}

// LoadExceptions parses a syllable exception list.
// Format: one "word count" pair per line; blank lines and lines starting
// with "!" are ignored. Words are stored under their normalized key.
func LoadExceptions(r io.Reader) (map[string]int, error) {
	out := make(map[string]int)
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		toks := strings.Fields(line)
		if len(toks) != 2 {
			return nil, fmt.Errorf("line %d: want \"word count\", got %q", lineNum, line)
		}
		n, err := strconv.Atoi(toks[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("line %d: bad syllable count %q", lineNum, toks[1])
		}
		out[NormalizeWord(toks[0])] = n
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// loadExceptionsFile reads an exception list from disk.
func loadExceptionsFile(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := LoadExceptions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
