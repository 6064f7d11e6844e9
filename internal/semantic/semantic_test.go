package semantic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianzepp/faber/internal/lexer"
	"github.com/ianzepp/faber/internal/parser"
	"github.com/ianzepp/faber/internal/semantic"
)

func check(t *testing.T, source string) semantic.Result {
	t.Helper()
	lexResult := lexer.Tokenize(source, "<test>")
	require.Empty(t, lexResult.Errors)
	parseResult := parser.Parse(lexResult.Tokens, "<test>")
	require.NotNil(t, parseResult.Tree)
	require.Empty(t, parseResult.Errors)
	return semantic.Analyze(parseResult.Tree, nil)
}

func TestVariableDeclarationNoErrors(t *testing.T) {
	result := check(t, `varia numerus x = 5`)
	assert.Empty(t, result.Errors)
}

func TestImmutableReassignmentErrors(t *testing.T) {
	result := check(t, "fixum x = 5\nx = 10")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "S002", result.Errors[0].Code)
}

func TestAssignmentTypeMismatch(t *testing.T) {
	result := check(t, "varia numerus x = 5\nx = \"hello\"")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "S003", result.Errors[0].Code)
	assert.Contains(t, result.Errors[0].Text, "not assignable")
}

func TestDiscerneBindingTypeMismatch(t *testing.T) {
	source := `
discretio Event {
	Click { numerus x, numerus y }
	Quit
}

functio maneia(Event e) {
	discerne e {
		casu Click pro a, b {
			varia textus wrong = a
		}
		casu Quit {
			redde
		}
	}
}
`
	result := check(t, source)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "S003", result.Errors[0].Code)
	assert.Contains(t, result.Errors[0].Text, "numerus")
}

func TestUnionAssignmentRejectsIncompatibleMember(t *testing.T) {
	result := check(t, "varia numerus n = 1\nn = n > 0 sic 5 secus \"neg\"")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "S003", result.Errors[0].Code)
}

func TestUnionToUnionAssignmentAllowedWhenEveryMemberFits(t *testing.T) {
	result := check(t, "varia x = 1 > 0 sic 5 secus \"neg\"\nx = 1 > 0 sic 5 secus \"neg\"")
	assert.Empty(t, result.Errors)
}

func TestInBlockRewritesBareAssignmentAsPropertyWrite(t *testing.T) {
	source := `
genus Point {
	numerus x
	numerus y
}

functio muta(Point p) {
	in p {
		x = 5
	}
}
`
	result := check(t, source)
	assert.Empty(t, result.Errors)
}

func TestInBlockRejectsUnknownField(t *testing.T) {
	source := `
genus Point {
	numerus x
	numerus y
}

functio muta(Point p) {
	in p {
		z = 5
	}
}
`
	result := check(t, source)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "S001", result.Errors[0].Code)
}

func TestInBlockRejectsFieldTypeMismatch(t *testing.T) {
	source := `
genus Point {
	numerus x
	numerus y
}

functio muta(Point p) {
	in p {
		x = "hello"
	}
}
`
	result := check(t, source)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "S003", result.Errors[0].Code)
}

func TestUndefinedVariableReported(t *testing.T) {
	result := check(t, `varia numerus x = inexsistens`)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "S001", result.Errors[0].Code)
}

func TestDuplicateDeclarationReported(t *testing.T) {
	result := check(t, "varia numerus x = 1\nvaria numerus x = 2")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "S008", result.Errors[0].Code)
}

func TestUnknownVariantReported(t *testing.T) {
	source := `
discretio Event {
	Click { numerus x, numerus y }
	Quit
}

functio maneia(Event e) {
	discerne e {
		casu Resize pro w, h {
			redde
		}
	}
}
`
	result := check(t, source)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "S009", result.Errors[0].Code)
}

func TestScopeShadowingDoesNotAlterOuterBinding(t *testing.T) {
	source := `
varia numerus x = 1
{
	varia textus x = "inner"
}
x = 2
`
	result := check(t, source)
	assert.Empty(t, result.Errors)
}
