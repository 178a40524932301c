package langdata

var germanConjunctions = []string{
	"und", "oder", "aber", "sondern", "doch", "nur", "bloß", "denn",
	"weder", "noch", "sowie",
}

var germanPrepositions = []string{
	"aus", "außer", "bei", "mit", "nach", "seit", "von", "zu",
	"bis", "durch", "für", "gegen", "ohne", "um", "an", "auf",
	"hinter", "in", "neben", "über", "unter", "vor", "zwischen",
	"anstatt", "statt", "trotz", "während", "wegen",
}

var germanPronouns = []string{
	"ich", "du", "er", "sie", "es", "wir", "ihr", // Nominativ
	"mich", "dich", "ihn", "uns", "euch", // Akkusativ
	"mir", "dir", "ihm", "ihnen", // Dativ
	"mein", "dein", "sein", "unser", "euer", // Genitiv
	"meiner", "deiner", "seiner", "unserer", "eurer", "ihrer",
	"meine", "deine", "seine", "unsere", "eure", "ihre",
	"meines", "deines", "seines", "unseres", "eures", "ihres",
	"meinem", "deinem", "seinem", "unserem", "eurem", "ihrem",
	"meinen", "deinen", "seinen", "unseren", "euren", "ihren",
}

func germanTables() (words, beginnings *RuleTable) {
	words = mustRuleTable(
		Rule{CategoryToBeVerb, WordRule(
			"sein", "bin", "bist", "ist", "sind", "seid", "war", "warst", "wart",
			"waren", "gewesen", "wäre", "wärst", "wär", "wären", "wärt", "wäret")},
		Rule{CategoryAuxVerb, WordRule(
			"haben", "habe", "hast", "hat", "habt", "gehabt", "hätte", "hättest",
			"hätten", "hättet",
			"werden", "werde", "wirst", "wird", "werdet", "geworden", "würde",
			"würdest", "würden", "würdet",
			"können", "kann", "kannst", "könnt", "konnte", "konntest", "konnten",
			"konntet", "gekonnt", "könnte", "könntest", "könnten", "könntet",
			"müssen", "muss", "muß", "musst", "müsst", "musste", "musstest", "mussten",
			"gemusst", "müsste", "müsstest", "müssten", "müsstet",
			"sollen", "soll", "sollst", "sollt", "sollte", "solltest", "solltet",
			"sollten", "gesollt")},
		Rule{CategoryConjunction, WordRule(germanConjunctions...)},
		Rule{CategoryPronoun, WordRule(germanPronouns...)},
		Rule{CategoryPreposition, WordRule(germanPrepositions...)},
		Rule{CategoryNominalization, SuffixRule(3, "ung", "heit", "keit", "nis", "tum")},
	)
	beginnings = mustRuleTable(
		Rule{CategoryPronoun, SentenceStartRule(germanPronouns...)},
		Rule{CategoryInterrogative, SentenceStartRule(
			"wer", "was", "wem", "wen", "wessen", "wo", "wie", "warum", "weshalb", "wann",
			"wieso", "weswegen")},
		Rule{CategoryArticle, SentenceStartRule(
			"der", "die", "das", "des", "dem", "den", "ein", "eine", "einer", "eines", "einem", "einen")},
		Rule{CategorySubordination, SentenceStartRule(
			// bei Nebensätzen
			"als", "als dass", "als daß", "als ob", "anstatt dass", "anstatt daß",
			"ausser dass", "ausser daß", "ausser wenn", "bevor", "bis", "da", "damit",
			"dass", "daß", "ehe", "falls", "indem", "je", "nachdem", "ob", "obgleich",
			"obschon", "obwohl", "ohne dass", "ohne daß", "seit", "so daß", "sodass",
			"sobald", "sofern", "solange", "so oft", "statt dass", "statt daß",
			"während", "weil", "wenn", "wenn auch", "wenngleich", "wie", "wie wenn",
			"wiewohl", "wobei", "wohingegen", "zumal",
			// bei Infinitivgruppen
			"als zu", "anstatt zu", "ausser zu", "ohne zu", "statt zu", "um zu")},
		Rule{CategoryConjunction, SentenceStartRule(germanConjunctions...)},
		Rule{CategoryPreposition, SentenceStartRule(germanPrepositions...)},
	)
	return words, beginnings
}
