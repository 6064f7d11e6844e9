// Package scope is the symbol table used during semantic analysis: a
// stack of lexical scopes chained to a global scope, plus the
// registries the analyzer consults to resolve type names.
//
// Grounded on fons/nanus-go/subsidia/scope.go's Scopus/SemanticContext,
// generalized so the type registries hold semtype.Type values and the
// per-expression type map is keyed by ast.Expr rather than a local Expr
// interface.
package scope

import (
	"github.com/ianzepp/faber/internal/ast"
	"github.com/ianzepp/faber/internal/ferrors"
	"github.com/ianzepp/faber/internal/locus"
	"github.com/ianzepp/faber/internal/semtype"
)

// SymbolSpecies indicates what kind of symbol this is.
type SymbolSpecies int

const (
	SymbolVariabilis SymbolSpecies = iota
	SymbolFunctio
	SymbolParametrum
	SymbolTypus
	SymbolGenus
	SymbolOrdo
	SymbolDiscretio
	SymbolPactum
	SymbolVarians
)

func (s SymbolSpecies) String() string {
	switch s {
	case SymbolVariabilis:
		return "variabilis"
	case SymbolFunctio:
		return "functio"
	case SymbolParametrum:
		return "parametrum"
	case SymbolTypus:
		return "typus"
	case SymbolGenus:
		return "genus"
	case SymbolOrdo:
		return "ordo"
	case SymbolDiscretio:
		return "discretio"
	case SymbolPactum:
		return "pactum"
	case SymbolVarians:
		return "varians"
	default:
		return "ignotum"
	}
}

// Kind indicates what kind of lexical scope this is.
type Kind int

const (
	Global Kind = iota
	Functio
	Massa // block scope
	Genus // class scope
)

// Symbol is a named entity recorded in a scope.
type Symbol struct {
	Nomen     string
	Typus     semtype.Type
	Species   SymbolSpecies
	Mutabilis bool
	Locus     locus.Locus
	Node      interface{}
}

// Scope is one lexical scope, chained to its parent.
type Scope struct {
	Parent  *Scope
	Symbola map[string]*Symbol
	Kind    Kind
	Nomen   string
}

func New(parent *Scope, kind Kind, nomen string) *Scope {
	return &Scope{
		Parent:  parent,
		Symbola: make(map[string]*Symbol),
		Kind:    kind,
		Nomen:   nomen,
	}
}

func (s *Scope) Define(sym *Symbol) {
	s.Symbola[sym.Nomen] = sym
}

func (s *Scope) Lookup(nomen string) *Symbol {
	if sym, ok := s.Symbola[nomen]; ok {
		return sym
	}
	if s.Parent != nil {
		return s.Parent.Lookup(nomen)
	}
	return nil
}

func (s *Scope) LookupLocal(nomen string) *Symbol {
	return s.Symbola[nomen]
}

// LookupType looks up a symbol that names a type (genus/ordo/discretio/pactum/typus).
func (s *Scope) LookupType(nomen string) *Symbol {
	sym := s.Lookup(nomen)
	if sym == nil {
		return nil
	}
	switch sym.Species {
	case SymbolGenus, SymbolOrdo, SymbolDiscretio, SymbolPactum, SymbolTypus:
		return sym
	default:
		return nil
	}
}

// Context holds all state threaded through a single analysis pass:
// the scope stack, the type registries, accumulated errors, and the
// per-expression resolved-type map.
type Context struct {
	Global  *Scope
	Current *Scope

	Types         map[string]semtype.Type
	OrdoRegistry  map[string]*semtype.Ordo
	DiscRegistry  map[string]*semtype.Discretio
	GenusRegistry map[string]*semtype.Genus
	PactumRegistry map[string]*semtype.Pactum

	Errors    []ferrors.FabError
	ExprTypes map[ast.Expr]semtype.Type

	// InSubject is the type of the innermost enclosing `in obj { ... }`
	// block's subject, nil outside of one. Set by analyzeStmt so bare-
	// identifier assignments in the block can be checked as property
	// writes on obj rather than ordinary local-variable assignments.
	InSubject semtype.Type
}

func NewContext() *Context {
	global := New(nil, Global, "")
	return &Context{
		Global:         global,
		Current:        global,
		Types:          make(map[string]semtype.Type),
		OrdoRegistry:   make(map[string]*semtype.Ordo),
		DiscRegistry:   make(map[string]*semtype.Discretio),
		GenusRegistry:  make(map[string]*semtype.Genus),
		PactumRegistry: make(map[string]*semtype.Pactum),
		ExprTypes:      make(map[ast.Expr]semtype.Type),
	}
}

func (ctx *Context) Enter(kind Kind, nomen string) {
	ctx.Current = New(ctx.Current, kind, nomen)
}

func (ctx *Context) Exit() {
	if ctx.Current.Parent != nil {
		ctx.Current = ctx.Current.Parent
	}
}

func (ctx *Context) Define(sym *Symbol) {
	ctx.Current.Define(sym)
}

func (ctx *Context) Lookup(nomen string) *Symbol {
	return ctx.Current.Lookup(nomen)
}

func (ctx *Context) Error(code, text, help string, loc locus.Locus) {
	ctx.Errors = append(ctx.Errors, ferrors.FabError{Code: code, Text: text, Help: help, Position: loc})
}

func (ctx *Context) RegisterType(nomen string, t semtype.Type) {
	ctx.Types[nomen] = t
}

// ResolveTypeName resolves a type name to its semantic type: primitives
// first, then registered aliases, then the genus/ordo/discretio/pactum
// registries, falling back to an unresolved semtype.User reference.
func (ctx *Context) ResolveTypeName(nomen string) semtype.Type {
	switch nomen {
	case "textus":
		return semtype.Textus
	case "numerus":
		return semtype.Numerus
	case "fractus":
		return semtype.Fractus
	case "decimus":
		return semtype.Decimus
	case "magnus":
		return semtype.Magnus
	case "bivalens":
		return semtype.Bivalens
	case "nihil":
		return semtype.Nihil
	case "vacuum":
		return semtype.Vacuum
	case "octeti":
		return semtype.Octeti
	}

	if t, ok := ctx.Types[nomen]; ok {
		return t
	}
	if t, ok := ctx.OrdoRegistry[nomen]; ok {
		return t
	}
	if t, ok := ctx.DiscRegistry[nomen]; ok {
		return t
	}
	if t, ok := ctx.GenusRegistry[nomen]; ok {
		return t
	}
	if t, ok := ctx.PactumRegistry[nomen]; ok {
		return t
	}

	return &semtype.User{Name: nomen}
}

func (ctx *Context) SetExprType(e ast.Expr, t semtype.Type) {
	ctx.ExprTypes[e] = t
	e.SetResolvedType(t)
}

func (ctx *Context) GetExprType(e ast.Expr) semtype.Type {
	if t, ok := ctx.ExprTypes[e]; ok {
		return t
	}
	return semtype.Unresolved
}
