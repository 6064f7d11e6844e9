package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianzepp/faber/internal/token"
)

func TestTokenizeEndsWithEOF(t *testing.T) {
	res := Tokenize("varia numerus x = 5", "<test>")
	require.NotEmpty(t, res.Tokens)
	assert.Equal(t, token.EOF, res.Tokens[len(res.Tokens)-1].Tag)
	assert.Empty(t, res.Errors)
}

func TestTokenizePositionMonotonicity(t *testing.T) {
	res := Tokenize("varia numerus x = 5\nx = 10", "<test>")
	for i := 0; i < len(res.Tokens)-1; i++ {
		a, b := res.Tokens[i], res.Tokens[i+1]
		if b.Tag == token.EOF {
			continue
		}
		assert.Less(t, a.Locus.Index, b.Locus.Index, "token %d (%q) not before %d (%q)", i, a.Valor, i+1, b.Valor)
	}
}

func TestTokenizeNeverPanics(t *testing.T) {
	inputs := []string{
		"", "   ", "&", "\"unterminated", "`unterminated", "/* unterminated",
		"0xZZ", "0xFFn", "...", "§unicode§", "\x00\x01",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Tokenize(in, "<test>") })
	}
}

func TestTokenizeErrorPositionsWithinInput(t *testing.T) {
	res := Tokenize("varia x = &", "<test>")
	for _, e := range res.Errors {
		assert.GreaterOrEqual(t, e.Position.Index, 0)
		assert.LessOrEqual(t, e.Position.Index, len("varia x = &"))
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	res := Tokenize("\"unterminated\n", "<test>")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "L001", res.Errors[0].Code)
}

func TestTokenizeBigintHex(t *testing.T) {
	res := Tokenize("0xFFn", "<test>")
	require.GreaterOrEqual(t, len(res.Tokens), 2)
	assert.Equal(t, token.Magnus, res.Tokens[0].Tag)
	assert.Equal(t, "0xFF", res.Tokens[0].Valor)
}

func TestTokenizeKeywordCarriesCanonicalForm(t *testing.T) {
	res := Tokenize("SI x", "<test>")
	require.NotEmpty(t, res.Tokens)
	assert.Equal(t, token.Keyword, res.Tokens[0].Tag)
	assert.Equal(t, "si", res.Tokens[0].Valor)
}

func TestTokenizeOperatorLongestMatch(t *testing.T) {
	res := Tokenize("a === b", "<test>")
	var opVals []string
	for _, tok := range res.Tokens {
		if tok.Tag == token.Operator {
			opVals = append(opVals, tok.Valor)
		}
	}
	require.Len(t, opVals, 1)
	assert.Equal(t, "===", opVals[0])
}

func TestTokenizeBareAmpersandErrorsButContinues(t *testing.T) {
	res := Tokenize("a & b", "<test>")
	require.Len(t, res.Errors, 1)
	// scanning continues: "b" identifier still appears after the error
	var foundB bool
	for _, tok := range res.Tokens {
		if tok.Tag == token.Identifier && tok.Valor == "b" {
			foundB = true
		}
	}
	assert.True(t, foundB)
}

func TestTokenizeTemplateStringInterpolation(t *testing.T) {
	res := Tokenize("`hello ${name}`", "<test>")
	require.NotEmpty(t, res.Tokens)
	assert.Equal(t, token.Scriptum, res.Tokens[0].Tag)
	assert.Contains(t, res.Tokens[0].Valor, "${name}")
}

func TestTokenizeNestedBracesInInterpolation(t *testing.T) {
	res := Tokenize("`x = ${ { a: 1 } }`", "<test>")
	require.NotEmpty(t, res.Tokens)
	assert.Empty(t, res.Errors)
	assert.Equal(t, token.Scriptum, res.Tokens[0].Tag)
}
