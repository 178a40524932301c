package langdata

var dutchConjunctions = []string{"en", "maar", "of", "want", "dus", "noch"}

var dutchPrepositions = []string{
	"à", "aan", "ad", "achter", "behalve", "beneden", "betreffende", "bij",
	"binnen", "blijkens", "boven", "buiten", "circa", "conform", "contra",
	"cum", "dankzij", "door", "gedurende", "gezien", "hangende", "in",
	"ingevolge", "inzake", "jegens", "krachtens", "langs", "met", "middels",
	"mits", "na", "naar", "naast", "nabij", "namens", "niettegenstaande",
	"nopens", "om", "omstreeks", "omtrent", "ondanks", "onder", "ongeacht",
	"onverminderd", "op", "over", "overeenkomstig", "per", "plus", "richting",
	"qua", "rond", "rondom", "sedert", "staande", "te", "tegen", "tegenover",
	"ten", "ter", "tijdens", "tot", "tussen", "uit", "uitgezonderd", "van",
	"vanaf", "vanuit", "vanwege", "versus", "via", "volgens", "voor",
	"voorbij", "wegens", "zonder",
}

var dutchPronouns = []string{
	// persoonlijk voornaamwoord
	"ik", "jij", "je", "u", "hij", "hem", "zij", "ze", "haar", "het",
	"wij", "we", "ons", "jullie", "hen", "hun",
	// wederkerend voornaamwoord
	"mij", "me", "mijzelf", "mezelf", "je", "jezelf", "uzelf",
	"zich", "zichzelf", "haarzelf", "onszelf",
	"elkaar", "elkaars", "elkander", "elkanders", "mekaar", "mekaars",
	// archaïsch
	"gij", "ge",
	"mijnen", "deinen", "zijnen", "haren", "onzen", "uwen", "hunnen", "haren",
	"mijner", "deiner", "zijner", "harer", "onzer", "uwer", "hunner", "harer",
	"mijnes", "deines", "zijnes", "hares", "onzes", "uwes", "hunnes", "hares",
}

func dutchTables() (words, beginnings *RuleTable) {
	words = mustRuleTable(
		Rule{CategoryToBeVerb, WordRule(
			"ben", "bent", "is", "zijn", "was", "waren")},
		// Past participles (gehad, geweest, geworden) are not auxiliary.
		Rule{CategoryAuxVerb, WordRule(
			// with past participle
			"heb", "hebt", "heeft", "hebben", "had", "hadden",
			"word", "wordt", "worden", "werd", "werden",
			// with infinitive
			"zal", "zult", "zullen", "zou", "zouden",
			"kan", "kan", "kunt", "kunnen", "kon", "konden",
			"wil", "wilt", "willen", "wilde", "wilden", "wou", "wouden",
			"moet", "moeten", "moest", "moesten")},
		Rule{CategoryConjunction, WordRule(dutchConjunctions...)},
		Rule{CategoryPronoun, WordRule(dutchPronouns...)},
		Rule{CategoryPreposition, WordRule(dutchPrepositions...)},
		Rule{CategoryNominalization, SuffixRule(3, "tie", "heid", "ing", "end", "ende")},
	)
	beginnings = mustRuleTable(
		Rule{CategoryPronoun, SentenceStartRule(dutchPronouns...)},
		Rule{CategoryInterrogative, SentenceStartRule(
			"wie", "wat", "waar", "waarom", "wanneer", "hoe", "welk", "welke")},
		Rule{CategoryArticle, SentenceStartRule("de", "het", "een", "'t")},
		Rule{CategorySubordination, SentenceStartRule(
			// onderschikkende voegwoorden
			"aangezien", "als", "alsof", "behalve", "daar", "daarom", "dat",
			"derhalve", "doch", "doordat", "hoewel", "indien", "mits", "nadat",
			"noch", "ofschoon", "omdat", "ondanks", "opdat", "sedert", "sinds",
			"tenzij", "terwijl", "toen", "totdat", "voordat", "wanneer",
			"zoals", "zodat", "zodra", "zonder dat",
			// infinitiefconstructies
			"om te")},
		Rule{CategoryConjunction, SentenceStartRule(dutchConjunctions...)},
		Rule{CategoryPreposition, SentenceStartRule(dutchPrepositions...)},
	)
	return words, beginnings
}
