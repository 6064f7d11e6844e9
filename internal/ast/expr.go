package ast

import (
	"github.com/ianzepp/faber/internal/locus"
	"github.com/ianzepp/faber/internal/semtype"
)

// Expr is the closed sum over expression node kinds. Every node carries
// a position and, once analyzed, an optional resolved semantic type.
type Expr interface {
	exprNode()
	Pos() locus.Locus
	GetResolvedType() semtype.Type
	SetResolvedType(semtype.Type)
}

// LitteraSpecies distinguishes literal kinds.
type LitteraSpecies string

const (
	LitteraNumerus LitteraSpecies = "numerus"
	LitteraMagnus  LitteraSpecies = "magnus"
	LitteraFractus LitteraSpecies = "fractus"
	LitteraTextus  LitteraSpecies = "textus"
	LitteraVerum   LitteraSpecies = "verum"
	LitteraFalsum  LitteraSpecies = "falsum"
	LitteraNihil   LitteraSpecies = "nihil"
)

type LitteraExpr struct {
	resolved
	Locus   locus.Locus
	Species LitteraSpecies
	Valor   string
}

type NomenExpr struct {
	resolved
	Locus locus.Locus
	Valor string
}

type EgoExpr struct {
	resolved
	Locus locus.Locus
}

type BinariaExpr struct {
	resolved
	Locus  locus.Locus
	Signum string
	Sin    Expr
	Dex    Expr
}

type UnariaExpr struct {
	resolved
	Locus  locus.Locus
	Signum string
	Arg    Expr
	Prefix bool
}

type AssignatioExpr struct {
	resolved
	Locus  locus.Locus
	Signum string
	Sin    Expr
	Dex    Expr
}

// CondicioExpr is the `sic`/`secus` ternary conditional expression.
type CondicioExpr struct {
	resolved
	Locus locus.Locus
	Cond  Expr
	Cons  Expr
	Alt   Expr
}

type VocatioExpr struct {
	resolved
	Locus      locus.Locus
	Callee     Expr
	TypeArgs   []Typus
	Args       []Expr
}

// MembrumExpr is member access: obj.prop, obj?.prop, obj!.prop, or obj[computed].
type MembrumExpr struct {
	resolved
	Locus     locus.Locus
	Obj       Expr
	Prop      Expr
	Computed  bool
	Optional  bool // ?.
	NonNull   bool // !.
}

type SeriesExpr struct {
	resolved
	Locus    locus.Locus
	Elementa []Expr
}

type ObiectumProp struct {
	Key      Expr
	Valor    Expr
	Computed bool
}

type ObiectumExpr struct {
	resolved
	Locus locus.Locus
	Props []ObiectumProp
}

// ClausuraExpr is a lambda/arrow expression. Corpus is either a Stmt
// (block body) or an Expr (expression body).
type ClausuraExpr struct {
	resolved
	Locus     locus.Locus
	Params    []Param
	Async     bool
	Generator bool
	Corpus    interface{}
}

type NovumExpr struct {
	resolved
	Locus  locus.Locus
	Callee Expr
	Args   []Expr
	Init   Expr // optional trailing object-literal initializer
}

// CedeExpr is `cede expr` - await.
type CedeExpr struct {
	resolved
	Locus locus.Locus
	Arg   Expr
}

// QuaExpr is a type assertion: `expr qua Typus`.
type QuaExpr struct {
	resolved
	Locus locus.Locus
	Expr  Expr
	Typus Typus
}

// InnatumExpr is a type cast: `expr innatum Typus`.
type InnatumExpr struct {
	resolved
	Locus locus.Locus
	Expr  Expr
	Typus Typus
}

// FingeExpr constructs a discretio variant: `finge Nomen { campi... }`.
type FingeCampus struct {
	Nomen string
	Valor Expr
}

type FingeExpr struct {
	resolved
	Locus   locus.Locus
	Variant string
	Campi   []FingeCampus
}

// ScriptumExpr is a resolved template-string literal: Partes are the
// literal text segments, Args are the interpolated sub-expressions
// ("${...}") in source order.
type ScriptumExpr struct {
	resolved
	Locus  locus.Locus
	Partes []string
	Args   []Expr
}

// AmbitusExpr is a range: `start..end` or `start usque end`.
type AmbitusExpr struct {
	resolved
	Locus     locus.Locus
	Start     Expr
	End       Expr
	Inclusive bool
}

// ConversioExpr is a postfix conversion operator application:
// `expr numeratum`, `expr fractatum`, `expr textatum`, `expr bivalentum`.
// numeratum and fractatum take an optional `vel fallback` value used on
// failure.
type ConversioExpr struct {
	resolved
	Locus    locus.Locus
	Species  string
	Expr     Expr
	Fallback Expr
}

func (*LitteraExpr) exprNode()    {}
func (*NomenExpr) exprNode()      {}
func (*EgoExpr) exprNode()        {}
func (*BinariaExpr) exprNode()    {}
func (*UnariaExpr) exprNode()     {}
func (*AssignatioExpr) exprNode() {}
func (*CondicioExpr) exprNode()   {}
func (*VocatioExpr) exprNode()    {}
func (*MembrumExpr) exprNode()    {}
func (*SeriesExpr) exprNode()     {}
func (*ObiectumExpr) exprNode()   {}
func (*ClausuraExpr) exprNode()   {}
func (*NovumExpr) exprNode()      {}
func (*CedeExpr) exprNode()       {}
func (*QuaExpr) exprNode()        {}
func (*InnatumExpr) exprNode()    {}
func (*FingeExpr) exprNode()      {}
func (*ScriptumExpr) exprNode()   {}
func (*AmbitusExpr) exprNode()    {}
func (*ConversioExpr) exprNode()  {}

func (e *LitteraExpr) Pos() locus.Locus    { return e.Locus }
func (e *NomenExpr) Pos() locus.Locus      { return e.Locus }
func (e *EgoExpr) Pos() locus.Locus        { return e.Locus }
func (e *BinariaExpr) Pos() locus.Locus    { return e.Locus }
func (e *UnariaExpr) Pos() locus.Locus     { return e.Locus }
func (e *AssignatioExpr) Pos() locus.Locus { return e.Locus }
func (e *CondicioExpr) Pos() locus.Locus   { return e.Locus }
func (e *VocatioExpr) Pos() locus.Locus    { return e.Locus }
func (e *MembrumExpr) Pos() locus.Locus    { return e.Locus }
func (e *SeriesExpr) Pos() locus.Locus     { return e.Locus }
func (e *ObiectumExpr) Pos() locus.Locus   { return e.Locus }
func (e *ClausuraExpr) Pos() locus.Locus   { return e.Locus }
func (e *NovumExpr) Pos() locus.Locus      { return e.Locus }
func (e *CedeExpr) Pos() locus.Locus       { return e.Locus }
func (e *QuaExpr) Pos() locus.Locus        { return e.Locus }
func (e *InnatumExpr) Pos() locus.Locus    { return e.Locus }
func (e *FingeExpr) Pos() locus.Locus      { return e.Locus }
func (e *ScriptumExpr) Pos() locus.Locus   { return e.Locus }
func (e *AmbitusExpr) Pos() locus.Locus    { return e.Locus }
func (e *ConversioExpr) Pos() locus.Locus  { return e.Locus }
