package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianzepp/faber/internal/scope"
	"github.com/ianzepp/faber/internal/semtype"
)

func TestDefineAndLookup(t *testing.T) {
	s := scope.New(nil, scope.Global, "")
	s.Define(&scope.Symbol{Nomen: "x", Typus: semtype.Numerus, Species: scope.SymbolVariabilis})

	sym := s.Lookup("x")
	require.NotNil(t, sym)
	assert.Equal(t, semtype.Numerus, sym.Typus)
}

func TestLookupWalksParentChain(t *testing.T) {
	outer := scope.New(nil, scope.Global, "")
	outer.Define(&scope.Symbol{Nomen: "x", Typus: semtype.Numerus, Species: scope.SymbolVariabilis})
	inner := scope.New(outer, scope.Massa, "")

	sym := inner.Lookup("x")
	require.NotNil(t, sym)
	assert.Equal(t, semtype.Numerus, sym.Typus)
}

func TestShadowingDoesNotAlterOuterBinding(t *testing.T) {
	outer := scope.New(nil, scope.Global, "")
	outer.Define(&scope.Symbol{Nomen: "x", Typus: semtype.Numerus, Species: scope.SymbolVariabilis})
	inner := scope.New(outer, scope.Massa, "")
	inner.Define(&scope.Symbol{Nomen: "x", Typus: semtype.Textus, Species: scope.SymbolVariabilis})

	assert.Equal(t, semtype.Textus, inner.Lookup("x").Typus)
	assert.Equal(t, semtype.Numerus, outer.Lookup("x").Typus)
}

func TestLookupLocalDoesNotSeeParent(t *testing.T) {
	outer := scope.New(nil, scope.Global, "")
	outer.Define(&scope.Symbol{Nomen: "x", Typus: semtype.Numerus, Species: scope.SymbolVariabilis})
	inner := scope.New(outer, scope.Massa, "")

	assert.Nil(t, inner.LookupLocal("x"))
	assert.NotNil(t, inner.Lookup("x"))
}

func TestContextEnterExitRestoresScope(t *testing.T) {
	ctx := scope.NewContext()
	ctx.Define(&scope.Symbol{Nomen: "x", Typus: semtype.Numerus, Species: scope.SymbolVariabilis})

	ctx.Enter(scope.Functio, "f")
	ctx.Define(&scope.Symbol{Nomen: "y", Typus: semtype.Textus, Species: scope.SymbolParametrum})
	assert.NotNil(t, ctx.Lookup("y"))
	ctx.Exit()

	assert.Nil(t, ctx.Current.LookupLocal("y"))
	assert.NotNil(t, ctx.Lookup("x"))
}

func TestResolveTypeNamePrimitive(t *testing.T) {
	ctx := scope.NewContext()
	assert.Equal(t, semtype.Textus, ctx.ResolveTypeName("textus"))
}

func TestResolveTypeNameUnknownBecomesUser(t *testing.T) {
	ctx := scope.NewContext()
	typ := ctx.ResolveTypeName("Aliquid")
	user, ok := typ.(*semtype.User)
	require.True(t, ok)
	assert.Equal(t, "Aliquid", user.Name)
}
