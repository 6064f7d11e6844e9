package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ianzepp/faber/internal/locus"
	"github.com/ianzepp/faber/internal/token"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Keyword", token.Keyword.String())
	assert.Equal(t, "EOF", token.EOF.String())
	assert.Equal(t, "Ignotum", token.Kind(999).String())
}

func TestTokenIsMatchesTagOnly(t *testing.T) {
	tok := token.Token{Tag: token.Identifier, Valor: "x", Locus: locus.Nulla}
	assert.True(t, tok.Is(token.Identifier))
	assert.False(t, tok.Is(token.Keyword))
}

func TestTokenIsMatchesTagAndValor(t *testing.T) {
	tok := token.Token{Tag: token.Keyword, Valor: "varia", Locus: locus.Nulla}
	assert.True(t, tok.Is(token.Keyword, "varia"))
	assert.False(t, tok.Is(token.Keyword, "fixum"))
}

func TestErrorImplementsError(t *testing.T) {
	var err error = token.Error{Code: "L001", Text: "unexpected character"}
	assert.Equal(t, "unexpected character", err.Error())
}
