package langdata

var englishConjunctions = []string{"and", "but", "or", "yet", "nor"}

var englishPrepositions = []string{
	"board", "about", "above", "according to", "across from",
	"after", "against", "alongside", "alongside of", "along with",
	"amid", "among", "apart from", "around", "aside from", "at", "away from",
	"back of", "because of", "before", "behind", "below", "beneath", "beside",
	"besides", "between", "beyond", "but", "by means of",
	"concerning", "considering", "despite", "down", "down from", "during",
	"except", "except for", "excepting for", "from among",
	"from between", "from under", "in addition to", "in behalf of",
	"in front of", "in place of", "in regard to", "inside of", "inside",
	"in spite of", "instead of", "into", "like", "near to", "off",
	"on account of", "on behalf of", "onto", "on top of", "on", "opposite",
	"out of", "out", "outside", "outside of", "over to", "over", "owing to",
	"past", "prior to", "regarding", "round about", "round",
	"since", "subsequent to", "together", "with", "throughout", "through",
	"till", "toward", "under", "underneath", "until", "unto", "up",
	"up to", "upon", "with", "within", "without", "across", "along",
	"by", "of", "in", "to", "near", "of", "from",
}

var englishPronouns = []string{
	"i", "me", "we", "us", "you", "he", "him", "she", "her", "it", "they",
	"them", "thou", "thee", "ye", "myself", "yourself", "himself",
	"herself", "itself", "ourselves", "yourselves", "themselves",
	"oneself", "my", "mine", "his", "hers", "yours", "ours", "theirs", "its",
	"our", "that", "their", "these", "this", "those", "your",
}

// Style(1) only looked at these four suffixes.
var englishNominalizationSuffixes = []string{"tion", "ment", "ence", "ance"}

func englishTables() (words, beginnings *RuleTable) {
	words = mustRuleTable(
		Rule{CategoryToBeVerb, WordRule(
			"be", "being", "was", "were", "been", "are", "is")},
		Rule{CategoryAuxVerb, WordRule(
			"will", "shall", "cannot", "may", "need to", "would", "should",
			"could", "might", "must", "ought", "ought to", "can't", "can")},
		Rule{CategoryConjunction, WordRule(englishConjunctions...)},
		Rule{CategoryPronoun, WordRule(englishPronouns...)},
		Rule{CategoryPreposition, WordRule(englishPrepositions...)},
		Rule{CategoryNominalization, SuffixRule(1, englishNominalizationSuffixes...)},
	)
	beginnings = mustRuleTable(
		Rule{CategoryPronoun, SentenceStartRule(englishPronouns...)},
		Rule{CategoryInterrogative, SentenceStartRule(
			"why", "who", "what", "whom", "when", "where", "how")},
		Rule{CategoryArticle, SentenceStartRule("the", "a", "an")},
		Rule{CategorySubordination, SentenceStartRule(
			"after", "because", "lest", "till", "'til", "although",
			"before", "now that", "unless", "as", "even if", "provided that", "provided",
			"until", "as if", "even though", "since", "as long as", "so that",
			"whenever", "as much as", "if", "than", "as soon as", "inasmuch",
			"in order that", "though", "while")},
		Rule{CategoryConjunction, SentenceStartRule(englishConjunctions...)},
		Rule{CategoryPreposition, SentenceStartRule(englishPrepositions...)},
	)
	return words, beginnings
}
