package langdata

import "math"

// Grades holds the readability formulas computed from surface counts.
type Grades struct {
	Kincaid           float64 `json:"kincaid" yaml:"Kincaid"`
	ARI               float64 `json:"ari" yaml:"ARI"`
	ColemanLiau       float64 `json:"coleman_liau" yaml:"Coleman-Liau"`
	FleschReadingEase float64 `json:"flesch_reading_ease" yaml:"FleschReadingEase"`
	GunningFogIndex   float64 `json:"gunning_fog_index" yaml:"GunningFogIndex"`
	LIX               float64 `json:"lix" yaml:"LIX"`
	SMOGIndex         float64 `json:"smog_index" yaml:"SMOGIndex"`
	RIX               float64 `json:"rix" yaml:"RIX"`
}

func computeGrades(s SentenceInfo) Grades {
	return Grades{
		Kincaid:           KincaidGradeLevel(s.Syllables, s.Words, s.Sentences),
		ARI:               ARI(s.Characters, s.Words, s.Sentences),
		ColemanLiau:       ColemanLiauIndex(s.Characters, s.Words, s.Sentences),
		FleschReadingEase: FleschReadingEase(s.Syllables, s.Words, s.Sentences),
		GunningFogIndex:   GunningFogIndex(s.Words, s.ComplexWords, s.Sentences),
		LIX:               LIX(s.Words, s.LongWords, s.Sentences),
		SMOGIndex:         SMOGIndex(s.ComplexWords, s.Sentences),
		RIX:               RIX(s.LongWords, s.Sentences),
	}
}

// KincaidGradeLevel is the Flesch–Kincaid grade level.
func KincaidGradeLevel(syllables, words, sentences int) float64 {
	return 11.8*ratio(syllables, words) + 0.39*ratio(words, sentences) - 15.59
}

// ARI is the Automated Readability Index.
func ARI(characters, words, sentences int) float64 {
	return 4.71*ratio(characters, words) + 0.5*ratio(words, sentences) - 21.43
}

// ColemanLiauIndex is the Coleman–Liau index.
func ColemanLiauIndex(characters, words, sentences int) float64 {
	return 5.879851*ratio(characters, words) - 29.587280*ratio(sentences, words) - 15.800804
}

// FleschReadingEase is the Flesch reading-ease score.
func FleschReadingEase(syllables, words, sentences int) float64 {
	return 206.835 - 84.6*ratio(syllables, words) - 1.015*ratio(words, sentences)
}

// GunningFogIndex is the Gunning fog index.
func GunningFogIndex(words, complexWords, sentences int) float64 {
	return 0.4 * (ratio(words, sentences) + 100*ratio(complexWords, words))
}

// LIX is Björnsson's läsbarhetsindex.
func LIX(words, longWords, sentences int) float64 {
	return ratio(words, sentences) + 100*ratio(longWords, words)
}

// SMOGIndex is McLaughlin's SMOG grade without the 1.043 scaling.
func SMOGIndex(complexWords, sentences int) float64 {
	return math.Sqrt(float64(complexWords)*(30/float64(sentences))) + 3
}

// RIX is Anderson's readability index.
func RIX(longWords, sentences int) float64 {
	return ratio(longWords, sentences)
}

func ratio(a, b int) float64 {
	return float64(a) / float64(b)
}
