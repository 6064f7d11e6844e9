// Package lexicon is the morphological engine: Latin stem/ending
// decomposition for nouns and verbs, plus the case-insensitive
// keyword and builtin-type tables the tokenizer and parser consult.
//
// Grounded on fons/nanus-go/lexer.go's `keywords` map (case-insensitive,
// canonical-lowercase keyword set) generalized into a lookup that
// returns the canonical spelling rather than a bare membership test,
// per spec.md §4.1 ("pre-lowercase the key on insertion and on lookup;
// keep the canonical display form in the entry" — design note §9).
package lexicon

import "strings"

// Keyword describes one reserved word of the surface language.
type Keyword struct {
	Canonical string // lowercase canonical spelling
	Family    string // declaration, modifier, control, action, expression, operator, conversion, literal, entry, test, annotation
}

var keywordTable = buildKeywordTable()

func buildKeywordTable() map[string]Keyword {
	families := map[string][]string{
		"declaration": {"varia", "fixum", "figendum", "variandum", "functio", "genus", "pactum", "ordo", "discretio", "typus", "ex", "importa", "ut", "prae"},
		"modifier":    {"publica", "privata", "protecta", "generis", "implet", "sub", "abstractus"},
		"control":     {"si", "sin", "secus", "aliter", "ergo", "dum", "fac", "elige", "casu", "ceterum", "discerne", "custodi", "de", "in", "pro", "omnia", "usque"},
		"action":      {"redde", "reddit", "rumpe", "perge", "iace", "mori", "tempta", "cape", "demum", "scribe", "vide", "mone", "adfirma", "tacet", "cura", "ante", "post"},
		"expression":  {"cede", "novum", "clausura", "qua", "innatum", "finge", "sic", "scriptum"},
		"operator":    {"et", "aut", "vel", "inter", "intra", "non", "nihil", "nonnihil", "positivum", "negativum", "nulla", "nonnulla"},
		"conversion":  {"numeratum", "fractatum", "textatum", "bivalentum"},
		"literal":     {"verum", "falsum", "ego"},
		"entry":       {"incipit", "incipiet", "fit", "fiet", "fiunt", "fient", "futura", "cursor"},
		"test":        {"probandum", "proba"},
		"annotation":  {"publicum", "externa"},
	}

	table := make(map[string]Keyword)
	for family, words := range families {
		for _, w := range words {
			table[strings.ToLower(w)] = Keyword{Canonical: strings.ToLower(w), Family: family}
		}
	}
	return table
}

// IsKeyword reports whether word (case-insensitively) is a reserved word.
func IsKeyword(word string) bool {
	_, ok := keywordTable[strings.ToLower(word)]
	return ok
}

// GetKeyword returns the canonical Keyword entry for word, or ok=false.
func GetKeyword(word string) (Keyword, bool) {
	kw, ok := keywordTable[strings.ToLower(word)]
	return kw, ok
}
