package langdata

import "fmt"

// In-text category names.
const (
	CategoryToBeVerb       = "tobeverb"
	CategoryAuxVerb        = "auxverb"
	CategoryConjunction    = "conjunction"
	CategoryPronoun        = "pronoun"
	CategoryPreposition    = "preposition"
	CategoryNominalization = "nominalization"
)

// Sentence-start category names. Pronoun, conjunction and preposition are
// shared with the in-text vocabulary.
const (
	CategoryInterrogative = "interrogative"
	CategoryArticle       = "article"
	CategorySubordination = "subordination"
)

// Rule pairs a category name with its matcher.
type Rule struct {
	Name    string
	Matcher Matcher
}

// RuleTable is an ordered, read-only mapping from category name to
// Matcher. The order only fixes iteration (stable report ordering);
// categories are matched independently of each other.
type RuleTable struct {
	rules []Rule
	index map[string]int
}

// NewRuleTable builds a table from rules in order. Names must be unique.
func NewRuleTable(rules ...Rule) (*RuleTable, error) {
	t := &RuleTable{
		rules: make([]Rule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}
	for _, r := range rules {
		if r.Name == "" || r.Matcher == nil {
			return nil, fmt.Errorf("rule table: incomplete rule %q", r.Name)
		}
		if _, dup := t.index[r.Name]; dup {
			return nil, fmt.Errorf("rule table: duplicate category %q", r.Name)
		}
		t.index[r.Name] = len(t.rules)
		t.rules = append(t.rules, r)
	}
	return t, nil
}

func mustRuleTable(rules ...Rule) *RuleTable {
	t, err := NewRuleTable(rules...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of categories.
func (t *RuleTable) Len() int { return len(t.rules) }

// Names returns the category names in table order.
func (t *RuleTable) Names() []string {
	names := make([]string, len(t.rules))
	for i, r := range t.rules {
		names[i] = r.Name
	}
	return names
}

// Rule returns the matcher for a category.
func (t *RuleTable) Rule(name string) (Matcher, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.rules[i].Matcher, true
}

// Each calls fn for every category in order until fn returns false.
func (t *RuleTable) Each(fn func(name string, m Matcher) bool) {
	for _, r := range t.rules {
		if !fn(r.Name, r.Matcher) {
			return
		}
	}
}

// CategoryCount is the number of matches of one category.
type CategoryCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// CountAll counts the matches of every category in text, in table order.
func (t *RuleTable) CountAll(text string) []CategoryCount {
	out := make([]CategoryCount, len(t.rules))
	for i, r := range t.rules {
		out[i] = CategoryCount{Name: r.Name, Count: r.Matcher.Count(text)}
	}
	return out
}

// Classify returns the names of all categories that match text, in table
// order.
func (t *RuleTable) Classify(text string) []string {
	var names []string
	for _, r := range t.rules {
		if r.Matcher.MatchString(text) {
			names = append(names, r.Name)
		}
	}
	return names
}
