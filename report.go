package langdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Item is one named value of a report section.
type Item struct {
	Key   string
	Value float64
}

// Section is a titled, ordered group of report items.
type Section struct {
	Name  string
	Items []Item
}

// Sections returns the measures in report order: readability grades,
// sentence info, word usage, sentence beginnings.
func (m *Measures) Sections() []Section {
	g, s := m.Grades, m.Info
	return []Section{
		{Name: "readability grades", Items: []Item{
			{"Kincaid", g.Kincaid},
			{"ARI", g.ARI},
			{"Coleman-Liau", g.ColemanLiau},
			{"FleschReadingEase", g.FleschReadingEase},
			{"GunningFogIndex", g.GunningFogIndex},
			{"LIX", g.LIX},
			{"SMOGIndex", g.SMOGIndex},
			{"RIX", g.RIX},
		}},
		{Name: "sentence info", Items: []Item{
			{"characters_per_word", s.CharactersPerWord},
			{"syll_per_word", s.SyllablesPerWord},
			{"words_per_sentence", s.WordsPerSentence},
			{"sentences_per_paragraph", s.SentencesPerParagraph},
			{"type_token_ratio", s.TypeTokenRatio},
			{"characters", float64(s.Characters)},
			{"syllables", float64(s.Syllables)},
			{"words", float64(s.Words)},
			{"wordtypes", float64(s.WordTypes)},
			{"sentences", float64(s.Sentences)},
			{"paragraphs", float64(s.Paragraphs)},
			{"long_words", float64(s.LongWords)},
			{"complex_words", float64(s.ComplexWords)},
		}},
		{Name: "word usage", Items: countItems("", m.WordUsage)},
		{Name: "sentence beginnings", Items: countItems("", m.Beginnings)},
	}
}

// Flatten merges all sections into one ordered list. Sentence-beginning
// keys are prefixed with "beginning_" because several category names
// (pronoun, conjunction, preposition) also occur in word usage.
func (m *Measures) Flatten() []Item {
	sections := m.Sections()
	var out []Item
	for _, sec := range sections[:3] {
		out = append(out, sec.Items...)
	}
	return append(out, countItems("beginning_", m.Beginnings)...)
}

func countItems(prefix string, counts []CategoryCount) []Item {
	items := make([]Item, len(counts))
	for i, c := range counts {
		items[i] = Item{Key: prefix + c.Name, Value: float64(c.Count)}
	}
	return items
}

// WriteText writes the two-level report, values with up to two decimals
// and trailing zeros dropped.
func WriteText(w io.Writer, m *Measures) error {
	for _, sec := range m.Sections() {
		if _, err := fmt.Fprintf(w, "%s:\n", sec.Name); err != nil {
			return err
		}
		for _, it := range sec.Items {
			line := fmt.Sprintf("    %-20s %12.2f", it.Key+":", it.Value)
			line = strings.TrimRight(strings.TrimRight(line, "0 "), ".")
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteCSV writes one row per named result, columns in Flatten order.
// The first column holds the name (typically a file name).
func WriteCSV(w io.Writer, names []string, results []*Measures) error {
	if len(names) != len(results) {
		return fmt.Errorf("write csv: %d names for %d results", len(names), len(results))
	}
	cw := csv.NewWriter(w)
	for i, m := range results {
		items := m.Flatten()
		if i == 0 {
			header := make([]string, 0, len(items)+1)
			header = append(header, "")
			for _, it := range items {
				header = append(header, it.Key)
			}
			if err := cw.Write(header); err != nil {
				return err
			}
		}
		row := make([]string, 0, len(items)+1)
		row = append(row, names[i])
		for _, it := range items {
			row = append(row, strconv.FormatFloat(it.Value, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
