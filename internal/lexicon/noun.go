package lexicon

import "strings"

// Gender and grammatical Case/Number closed enumerations, per spec.md §3.
type Gender string
type Case string
type Number string

const (
	Masc Gender = "masc"
	Fem  Gender = "fem"
	Neut Gender = "neut"
)

const (
	Nom Case = "nom"
	Acc Case = "acc"
	Gen Case = "gen"
	Dat Case = "dat"
	Abl Case = "abl"
)

const (
	Sg Number = "sg"
	Pl Number = "pl"
)

// NounAnalysis is one possible morphological reading of a noun surface form.
type NounAnalysis struct {
	Stem       string
	Declension int
	Gender     Gender
	Case       Case
	Number     Number
}

// nounEnding maps one declension's surface suffix to case/number. Several
// endings legitimately collide within a declension (syncretism); callers
// get every analysis that applies.
type nounEnding struct {
	Suffix string
	Case   Case
	Number Number
}

// declensionTable holds every ending for one declension, longest suffix
// first so the greedy search in ParseNoun tries the most specific match.
type declensionTable struct {
	Declension int
	Endings    []nounEnding
}

var nounDeclensions = []declensionTable{
	{ // 1st declension, feminine: stem + a/ae/am/as/arum/is
		Declension: 1,
		Endings: []nounEnding{
			{"arum", Gen, Pl},
			{"abus", Dat, Pl}, // also Abl Pl, handled as separate entry below
			{"ae", Gen, Sg},
			{"as", Acc, Pl},
			{"is", Dat, Pl},
			{"am", Acc, Sg},
			{"a", Nom, Sg},
		},
	},
	{ // 2nd declension, masculine: stem + us/i/o/um/os/orum/is
		Declension: 2,
		Endings: []nounEnding{
			{"orum", Gen, Pl},
			{"ibus", Dat, Pl},
			{"us", Nom, Sg},
			{"os", Acc, Pl},
			{"um", Acc, Sg},
			{"is", Dat, Pl},
			{"i", Gen, Sg}, // also Nom Pl, added as separate entry below
			{"o", Dat, Sg}, // also Abl Sg, added as separate entry below
		},
	},
	{ // 3rd declension (consonant stem; nominative often irregular, see StemInfo.Nominative)
		Declension: 3,
		Endings: []nounEnding{
			{"ibus", Dat, Pl},
			{"is", Gen, Sg},
			{"es", Nom, Pl}, // also Acc Pl
			{"em", Acc, Sg},
			{"um", Gen, Pl},
			{"i", Dat, Sg},
			{"e", Abl, Sg},
		},
	},
	{ // 4th declension, masculine: stem + us/us/ui/um/u
		Declension: 4,
		Endings: []nounEnding{
			{"ibus", Dat, Pl},
			{"uum", Gen, Pl},
			{"us", Nom, Sg}, // also Gen Sg, added as separate entry below
			{"ui", Dat, Sg},
			{"um", Acc, Sg},
			{"u", Abl, Sg},
		},
	},
	{ // 5th declension: stem + es/ei/em/e
		Declension: 5,
		Endings: []nounEnding{
			{"erum", Gen, Pl},
			{"ebus", Dat, Pl},
			{"ei", Gen, Sg}, // also Dat Sg
			{"es", Nom, Sg}, // also Nom/Acc Pl
			{"em", Acc, Sg},
			{"e", Abl, Sg},
		},
	},
}

// syncreticAdditions records the additional (case, number) readings that
// attach to an already-matched suffix — the ambiguous endings called out
// in spec.md §3: "-ae" is gen-sg, dat-sg, or nom-pl; "-i" is 2nd-decl-masc
// genitive-sg or nominative-pl.
var syncreticAdditions = map[int]map[string][]nounEnding{
	1: {
		"ae": {{"ae", Dat, Sg}, {"ae", Nom, Pl}},
		"a":    {{"a", Abl, Sg}},
		"is":   {{"is", Abl, Pl}},
		"abus": {{"abus", Abl, Pl}},
	},
	2: {
		"i":    {{"i", Nom, Pl}},
		"o":    {{"o", Abl, Sg}},
		"is":   {{"is", Abl, Pl}},
		"um_n": nil, // neuter nom/acc sg is handled by the neuter check in ParseNoun
	},
	3: {
		"es": {{"es", Acc, Pl}},
	},
	4: {
		"us": {{"us", Gen, Sg}},
	},
	5: {
		"ei": {{"ei", Dat, Sg}},
		"es": {{"es", Nom, Pl}, {"es", Acc, Pl}},
	},
}

// StemInfo is a registered known noun stem.
type StemInfo struct {
	Declension  int
	Gender      Gender
	Nominative  string // explicit override for 3rd-declension divergence; "" if regular
}

// nounStems is the known-word registry the lexicon recognizes. Faber's
// builtin vocabulary (collections, structural keywords) doubles as the
// noun lexicon's seed data.
var nounStems = map[string]StemInfo{
	"list":   {1, Fem, ""},   // lista, listae... (ordered sequence)
	"tabul":  {1, Fem, ""},   // tabula (table/map)
	"copi":   {1, Fem, ""},   // copia (set/abundance)
	"form":   {1, Fem, ""},   // forma (shape)
	"lingu":  {1, Fem, ""},   // lingua (language)
	"numer":  {2, Masc, ""},  // numerus (number)
	"modul":  {2, Masc, ""},  // modulus (module)
	"typ":    {2, Masc, ""},  // typus (type)
	"verb":   {2, Neut, ""},  // verbum (word)
	"tempor": {3, Neut, "tempus"}, // tempus, temporis (time) - explicit divergent nominative
	"nomin":  {3, Neut, "nomen"},  // nomen, nominis (name)
	"gener":  {3, Neut, "genus"},  // genus, generis (kind) - matches Faber's "genus" keyword
	"fruct":  {4, Masc, ""},  // fructus (result/fruit)
	"gradu":  {4, Masc, ""},  // gradus (step)
	"r":      {5, Fem, "res"}, // res, rei (thing) - monoconsonantal stem, explicit nominative
	"di":     {5, Masc, "dies"}, // dies, diei (day)
}

// ParseNoun decomposes word into every valid (stem, declension, gender,
// case, number) reading. Greedy longest-suffix-first search; a known
// ending on an unknown stem, or vice versa, is reported via MorphError.
func ParseNoun(word string) ([]NounAnalysis, error) {
	lw := strings.ToLower(word)

	type candidate struct {
		stem    string
		ending  nounEnding
		decl    int
	}
	var candidates []candidate

	for _, table := range nounDeclensions {
		endings := append([]nounEnding{}, table.Endings...)
		sortEndingsLongestFirst(endings)
		for _, e := range endings {
			if !strings.HasSuffix(lw, e.Suffix) {
				continue
			}
			stem := lw[:len(lw)-len(e.Suffix)]
			if stem == "" {
				continue
			}
			candidates = append(candidates, candidate{stem, e, table.Declension})
		}
	}

	var analyses []NounAnalysis
	var matchedEnding, matchedStem string

	for _, c := range candidates {
		info, ok := nounStems[c.stem]
		if !ok {
			continue
		}
		if info.Declension != c.decl {
			// Known stem, but this suffix belongs to a different
			// declension's paradigm: a genuine invalid-ending case.
			matchedEnding = c.ending.Suffix
			matchedStem = c.stem
			continue
		}
		matchedEnding = c.ending.Suffix
		matchedStem = c.stem
		analyses = append(analyses, NounAnalysis{
			Stem: c.stem, Declension: c.decl, Gender: info.Gender,
			Case: c.ending.Case, Number: c.ending.Number,
		})
		for _, extra := range syncreticAdditions[c.decl][c.ending.Suffix] {
			analyses = append(analyses, NounAnalysis{
				Stem: c.stem, Declension: c.decl, Gender: info.Gender,
				Case: extra.Case, Number: extra.Number,
			})
		}
		// Neuter syncretism: nominative and accusative always coincide.
		if info.Gender == Neut && c.decl == 2 && c.ending.Suffix == "um" {
			analyses = append(analyses, NounAnalysis{Stem: c.stem, Declension: c.decl, Gender: info.Gender, Case: Nom, Number: Sg})
		}
	}

	if len(analyses) > 0 {
		return dedupeNounAnalyses(analyses), nil
	}

	// No stem+ending pair matched. Distinguish "known stem, bad ending"
	// from "unknown stem entirely" to pick the right error kind.
	if matchedStem != "" {
		return nil, &MorphError{Kind: InvalidEnding, Word: word, Stem: matchedStem, Ending: matchedEnding}
	}

	var stems []string
	for s := range nounStems {
		stems = append(stems, s)
	}
	suggestion := closestStem(lw, stems)
	return nil, &MorphError{Kind: UnknownStem, Word: word, Suggestion: suggestion}
}

func sortEndingsLongestFirst(endings []nounEnding) {
	for i := 1; i < len(endings); i++ {
		for j := i; j > 0 && len(endings[j].Suffix) > len(endings[j-1].Suffix); j-- {
			endings[j], endings[j-1] = endings[j-1], endings[j]
		}
	}
}

func dedupeNounAnalyses(in []NounAnalysis) []NounAnalysis {
	seen := make(map[NounAnalysis]bool)
	var out []NounAnalysis
	for _, a := range in {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}
