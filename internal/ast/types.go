// Package ast is the uniform, position-tagged abstract syntax tree
// produced by the parser and annotated by the semantic analyzer.
//
// Grounded on fons/subsidia/go/ast.go's tag-based node shapes; per the
// design note in spec.md §9 ("closed sum with one variant per node
// kind ... exhaustive matching replaces the dispatch switch"), each
// syntactic category (Typus, Stmt, Expr) is an interface with an
// unexported marker method so the Go compiler enforces the closed set
// at the type-switch call sites in package parser/semantic.
package ast

import (
	"github.com/ianzepp/faber/internal/locus"
	"github.com/ianzepp/faber/internal/semtype"
)

// Typus is a syntactic type annotation as written in source - distinct
// from semtype.Type, which is the analyzer's resolved type.
type Typus interface {
	typusNode()
	Pos() locus.Locus
}

type TypusNomen struct {
	Locus locus.Locus
	Nomen string
}

type TypusNullabilis struct {
	Locus locus.Locus
	Inner Typus
}

type TypusGenericus struct {
	Locus locus.Locus
	Nomen string
	Args  []Typus
}

type TypusFunctio struct {
	Locus      locus.Locus
	TypeParams []string
	Params     []Typus
	Returns    Typus
}

type TypusUnio struct {
	Locus   locus.Locus
	Members []Typus
}

func (t *TypusNomen) typusNode()      {}
func (t *TypusNullabilis) typusNode() {}
func (t *TypusGenericus) typusNode()  {}
func (t *TypusFunctio) typusNode()    {}
func (t *TypusUnio) typusNode()       {}

func (t *TypusNomen) Pos() locus.Locus      { return t.Locus }
func (t *TypusNullabilis) Pos() locus.Locus { return t.Locus }
func (t *TypusGenericus) Pos() locus.Locus  { return t.Locus }
func (t *TypusFunctio) Pos() locus.Locus    { return t.Locus }
func (t *TypusUnio) Pos() locus.Locus       { return t.Locus }

// Param is a function/lambda parameter.
type Param struct {
	Nomen string
	Typus Typus // nil when unannotated (lambda-only)
}

// TypeParam is a `prae typus T` declaration; must precede value params.
type TypeParam struct {
	Nomen      string
	Constraint Typus // nil when unconstrained
}

// resolved carries the analyzer's output; embedded into every Expr node.
type resolved struct {
	ResolvedType semtype.Type
}

func (r *resolved) GetResolvedType() semtype.Type  { return r.ResolvedType }
func (r *resolved) SetResolvedType(t semtype.Type) { r.ResolvedType = t }
