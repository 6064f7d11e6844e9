package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ianzepp/faber/internal/ast"
	"github.com/ianzepp/faber/internal/locus"
)

func TestExprNodesSatisfyExprInterface(t *testing.T) {
	loc := locus.Nova(1, 1, 0)
	var exprs = []ast.Expr{
		&ast.LitteraExpr{Locus: loc, Species: ast.LitteraNumerus, Valor: "1"},
		&ast.NomenExpr{Locus: loc, Valor: "x"},
		&ast.BinariaExpr{Locus: loc, Signum: "+"},
		&ast.AssignatioExpr{Locus: loc},
	}
	for _, e := range exprs {
		assert.Equal(t, loc, e.Pos())
	}
}

func TestStmtNodesSatisfyStmtInterface(t *testing.T) {
	loc := locus.Nova(2, 1, 10)
	decl := &ast.VariableDecl{Locus: loc, Nomen: "x", Mutable: true, Public: true}
	var stmt ast.Stmt = decl
	assert.Equal(t, loc, stmt.Pos())
	assert.True(t, decl.Public)
}

func TestDiscretioDeclVariants(t *testing.T) {
	decl := &ast.DiscretioDecl{
		Nomen: "Event",
		Variants: []ast.DiscretioVariant{
			{Nomen: "Click", Fields: []ast.Param{{Nomen: "x"}, {Nomen: "y"}}},
			{Nomen: "Quit"},
		},
	}
	assert.Len(t, decl.Variants, 2)
	assert.Len(t, decl.Variants[0].Fields, 2)
	assert.Empty(t, decl.Variants[1].Fields)
}

func TestFunctionDeclPublicDefaultsFalse(t *testing.T) {
	decl := &ast.FunctionDecl{Nomen: "adde"}
	assert.False(t, decl.Public)
}
