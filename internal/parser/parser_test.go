package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianzepp/faber/internal/ast"
	"github.com/ianzepp/faber/internal/lexer"
	"github.com/ianzepp/faber/internal/parser"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	lexResult := lexer.Tokenize(source, "<test>")
	require.Empty(t, lexResult.Errors)
	result := parser.Parse(lexResult.Tokens, "<test>")
	require.Empty(t, result.Errors)
	require.NotNil(t, result.Tree)
	return result.Tree
}

func TestParseVariableDeclaration(t *testing.T) {
	prog := mustParse(t, `varia numerus x = 5`)
	require.Len(t, prog.Statements, 1)
	decl, ok := prog.Statements[0].(*ast.VariableDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Nomen)
	assert.True(t, decl.Mutable)
}

func TestParseFunctionDeclaration(t *testing.T) {
	prog := mustParse(t, `
@publica functio adde(numerus a, numerus b) -> numerus {
	redde a + b
}
`)
	require.Len(t, prog.Statements, 1)
	decl, ok := prog.Statements[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "adde", decl.Nomen)
	assert.True(t, decl.Public)
	require.Len(t, decl.Params, 2)
	require.Len(t, decl.Corpus.Statements, 1)
}

func TestParseDiscretioWithVariantFields(t *testing.T) {
	prog := mustParse(t, `
discretio Event {
	Click { numerus x, numerus y }
	Quit
}
`)
	require.Len(t, prog.Statements, 1)
	decl, ok := prog.Statements[0].(*ast.DiscretioDecl)
	require.True(t, ok)
	require.Len(t, decl.Variants, 2)
	assert.Equal(t, "Click", decl.Variants[0].Nomen)
	require.Len(t, decl.Variants[0].Fields, 2)
	assert.Equal(t, "Quit", decl.Variants[1].Nomen)
	assert.Empty(t, decl.Variants[1].Fields)
}

func TestParseDiscerneStatement(t *testing.T) {
	prog := mustParse(t, `
discerne evento {
	casu Click pro a, b {
		scribe(a)
	}
	ceterum {
		scribe("other")
	}
}
`)
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ast.DiscerneStmt)
	require.True(t, ok)
	require.Len(t, stmt.Arms, 2)
	assert.Equal(t, "Click", stmt.Arms[0].Variant)
	assert.Equal(t, []string{"a", "b"}, stmt.Arms[0].Bindings)
	assert.True(t, stmt.Arms[1].Wildcard)
}

func TestParseImportLocal(t *testing.T) {
	prog := mustParse(t, `importa ex "./utils.fab" privata adde`)
	decl, ok := prog.Statements[0].(*ast.ImportDecl)
	require.True(t, ok)
	assert.Equal(t, "./utils.fab", decl.Path)
	require.Len(t, decl.Specifiers, 1)
	assert.Equal(t, "adde", decl.Specifiers[0].Nomen)
}

func TestParseIfElseChain(t *testing.T) {
	prog := mustParse(t, `
si x > 0 {
	scribe("pos")
} secus si x < 0 {
	scribe("neg")
} secus {
	scribe("zero")
}
`)
	stmt, ok := prog.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
	elseIf, ok := stmt.Else.(*ast.IfStmt)
	require.True(t, ok)
	_, ok = elseIf.Else.(*ast.BlockStmt)
	require.True(t, ok)
}

func TestParseIfChainMixesSinAndAliterFamilies(t *testing.T) {
	prog := mustParse(t, `
si x > 0 {
	scribe("pos")
} sin x < 0 {
	scribe("neg")
} aliter {
	scribe("zero")
}
`)
	stmt, ok := prog.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
	elseIf, ok := stmt.Else.(*ast.IfStmt)
	require.True(t, ok)
	_, ok = elseIf.Else.(*ast.BlockStmt)
	require.True(t, ok)
}

func TestParseIfChainAliterSi(t *testing.T) {
	prog := mustParse(t, `
si x > 0 {
	scribe("pos")
} aliter si x < 0 {
	scribe("neg")
} secus {
	scribe("zero")
}
`)
	stmt, ok := prog.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
	elseIf, ok := stmt.Else.(*ast.IfStmt)
	require.True(t, ok)
	_, ok = elseIf.Else.(*ast.BlockStmt)
	require.True(t, ok)
}

func TestParseRecoversFromUnexpectedToken(t *testing.T) {
	lexResult := lexer.Tokenize("varia numerus x = )\nvaria numerus y = 2", "<test>")
	result := parser.Parse(lexResult.Tokens, "<test>")
	require.NotNil(t, result.Tree)
	require.NotEmpty(t, result.Errors)
	require.Len(t, result.Tree.Statements, 1)
	decl, ok := result.Tree.Statements[0].(*ast.VariableDecl)
	require.True(t, ok)
	assert.Equal(t, "y", decl.Nomen)
}
