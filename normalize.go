package langdata

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Vowels is the vowel set used by the syllable heuristics: the unaccented
// Latin vowels followed by their accented forms. The letter y is not part
// of the set; the English strategy treats it as a vowel on its own.
const Vowels = "aoeui" +
	"\u00e4\u00e0\u00e2\u00e1\u00e5\u00e3" + // äàâáåã
	"\u00eb\u00e9\u00e8\u00ea" + // ëéèê
	"\u00f3\u00f2\u00f6\u00f4\u00f5\u00f0" + // óòöôõð
	"\u00f9\u00fa\u00fc" + // ùúü
	"\u00ec\u00ed\u00ef\u00ee" // ìíïî

var vowelSet = func() map[rune]bool {
	m := make(map[rune]bool, len(Vowels))
	for _, r := range Vowels {
		m[r] = true
	}
	return m
}()

// IsVowel reports whether r belongs to Vowels. Expects lowercase input.
func IsVowel(r rune) bool {
	return vowelSet[r]
}

// NormalizeWord returns the canonical lookup key for a word: composed
// (NFC) form, surrounding whitespace trimmed, lower-cased.
// Composition matters because the vowel set only lists precomposed
// characters; "é" must count as the vowel é.
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}
