package ferrors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ianzepp/faber/internal/ferrors"
	"github.com/ianzepp/faber/internal/locus"
)

func TestFabErrorError(t *testing.T) {
	e := ferrors.Semantic(ferrors.SUndefinedVariable, "'x' is not defined", "", locus.Nova(2, 3, 5))
	assert.Equal(t, "S001:2:3: 'x' is not defined", e.Error())
}

func TestLexicalParseSemanticConstructors(t *testing.T) {
	l := ferrors.Lexical(ferrors.LUnterminatedString, "unterminated string", "", locus.Nulla)
	assert.Equal(t, "L001", l.Code)

	p := ferrors.Parse(ferrors.PUnexpectedToken, "unexpected token", "", locus.Nulla)
	assert.Equal(t, "P001", p.Code)

	s := ferrors.Semantic(ferrors.STypeMismatch, "type mismatch", "", locus.Nulla)
	assert.Equal(t, "S003", s.Code)
}

func TestCompileErrorError(t *testing.T) {
	var err error = &ferrors.CompileError{Message: "missing child node", Locus: locus.Nova(1, 1, 0), Filename: "<test>"}
	assert.Equal(t, "<test>:1:1: missing child node", err.Error())
}

func TestFormatRendersSourcePointer(t *testing.T) {
	src := "varia numerus x = \nvaria numerus y = 2"
	err := &ferrors.CompileError{Message: "unexpected token ')'", Locus: locus.Nova(1, 20, 19), Filename: "<test>"}
	out := ferrors.Format(err, src, "<test>")
	assert.Contains(t, out, "<test>:1:20: error: unexpected token ')'")
	assert.Contains(t, out, "varia numerus x = ")
}

func TestFormatFallsBackForNonCompileError(t *testing.T) {
	err := ferrors.FabError{Code: "S001", Text: "'x' is not defined", Position: locus.Nulla}
	out := ferrors.Format(err, "source", "<test>")
	assert.Equal(t, "S001:1:1: 'x' is not defined", out)
}
