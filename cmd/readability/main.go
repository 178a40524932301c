// Command readability prints readability grades and style measures of
// tokenized text, and exposes the syllable counter and category tables.
//
// Usage:
//
//	readability measure [--csv] [--format text|yaml|json] [--tokenizer CMD] [FILE...]
//	readability syllables WORD...
//	readability tables
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
