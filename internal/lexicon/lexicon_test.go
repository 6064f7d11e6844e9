package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKeywordCaseInsensitive(t *testing.T) {
	assert.True(t, IsKeyword("si"))
	assert.True(t, IsKeyword("SI"))
	assert.True(t, IsKeyword("Si"))
	assert.False(t, IsKeyword("nonexistens"))
}

func TestGetKeywordCanonicalForm(t *testing.T) {
	kw, ok := GetKeyword("DUM")
	require.True(t, ok)
	assert.Equal(t, "dum", kw.Canonical)
	assert.Equal(t, "control", kw.Family)
}

func TestIsBuiltinType(t *testing.T) {
	assert.True(t, IsBuiltinType("lista"))
	assert.True(t, IsBuiltinType("TABULA"))
	bt, ok := GetBuiltinType("numerus")
	require.True(t, ok)
	assert.Equal(t, CategoryPrimitive, bt.Category)
}

func TestParseNounRegularEndings(t *testing.T) {
	analyses, err := ParseNoun("tabula")
	require.NoError(t, err)
	require.Contains(t, analyses, NounAnalysis{Stem: "tabul", Declension: 1, Gender: Fem, Case: Nom, Number: Sg})
}

func TestParseNounSyncreticAeEnding(t *testing.T) {
	// spec.md §3: -ae is gen-sg, dat-sg, or nom-pl.
	analyses, err := ParseNoun("tabulae")
	require.NoError(t, err)
	var cases []Case
	for _, a := range analyses {
		cases = append(cases, a.Case)
	}
	assert.Contains(t, cases, Gen)
	assert.Contains(t, cases, Dat)

	var hasNomPl bool
	for _, a := range analyses {
		if a.Case == Nom && a.Number == Pl {
			hasNomPl = true
		}
	}
	assert.True(t, hasNomPl, "expected a nominative-plural reading among %v", analyses)
}

func TestParseNounSyncretic2ndDeclI(t *testing.T) {
	// spec.md §3: -i is 2nd-decl-masc genitive-sg or nominative-pl.
	analyses, err := ParseNoun("numeri")
	require.NoError(t, err)
	var hasGenSg, hasNomPl bool
	for _, a := range analyses {
		if a.Case == Gen && a.Number == Sg {
			hasGenSg = true
		}
		if a.Case == Nom && a.Number == Pl {
			hasNomPl = true
		}
	}
	assert.True(t, hasGenSg)
	assert.True(t, hasNomPl)
}

func TestParseNounThirdDeclensionDivergentNominative(t *testing.T) {
	analyses, err := ParseNoun("temporis")
	require.NoError(t, err)
	require.NotEmpty(t, analyses)
	assert.Equal(t, "tempor", analyses[0].Stem)
	assert.Equal(t, 3, analyses[0].Declension)
}

func TestParseNounInvalidEndingForStem(t *testing.T) {
	// "tabul" is a registered 1st-declension stem; "-us" belongs to the
	// 2nd-declension paradigm, so "tabulus" is a known stem with a
	// wrong-declension ending rather than a wholly unknown word.
	_, err := ParseNoun("tabulus")
	require.Error(t, err)
	var me *MorphError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, InvalidEnding, me.Kind)
	assert.Equal(t, "tabul", me.Stem)
}

func TestParseNounCompletelyUnknownWord(t *testing.T) {
	_, err := ParseNoun("xyzzyplugh")
	require.Error(t, err)
	var me *MorphError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, UnknownStem, me.Kind)
	assert.NotEmpty(t, me.Suggestion)
}

func TestParseVerbImperativeVsFuture(t *testing.T) {
	analyses, err := ParseVerb("addet")
	require.NoError(t, err)
	require.NotEmpty(t, analyses)
	assert.Equal(t, Future, analyses[0].Tense)
	assert.True(t, analyses[0].Async)

	analyses, err = ParseVerb("adde")
	require.NoError(t, err)
	require.NotEmpty(t, analyses)
	assert.Equal(t, Imperative, analyses[0].Tense)
	assert.False(t, analyses[0].Async)
}

func TestParseVerbPerfectParticipleGreediness(t *testing.T) {
	// regression: "-ta" (perfect participle) must beat "-a" (imperative).
	result, err := ValidateMorphology("tabula", "selecta")
	require.NoError(t, err)
	assert.Equal(t, Perfectum, result.Tense)
	assert.Equal(t, "select", result.Stem)
}

func TestParseVerbLinkingVowelParticiple(t *testing.T) {
	analyses, err := ParseVerb("addita")
	require.NoError(t, err)
	require.NotEmpty(t, analyses)
	assert.Equal(t, "add", analyses[0].Stem)
	assert.Equal(t, Perfectum, analyses[0].Tense)
}

func TestParseVerbUnknownStem(t *testing.T) {
	_, err := ParseVerb("zzzare")
	require.Error(t, err)
}
