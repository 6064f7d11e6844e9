package semantic

import (
	"github.com/ianzepp/faber/internal/ast"
	"github.com/ianzepp/faber/internal/ferrors"
	"github.com/ianzepp/faber/internal/scope"
	"github.com/ianzepp/faber/internal/semtype"
)

func analyzeExpr(ctx *scope.Context, expr ast.Expr) semtype.Type {
	if expr == nil {
		return semtype.Unresolved
	}

	var result semtype.Type

	switch e := expr.(type) {
	case *ast.LitteraExpr:
		result = analyzeLittera(e)
	case *ast.NomenExpr:
		result = analyzeNomen(ctx, e)
	case *ast.EgoExpr:
		if sym := ctx.Lookup("ego"); sym != nil {
			result = sym.Typus
		} else {
			result = semtype.Unresolved
		}
	case *ast.BinariaExpr:
		result = analyzeBinaria(ctx, e)
	case *ast.UnariaExpr:
		result = analyzeUnaria(ctx, e)
	case *ast.AssignatioExpr:
		result = analyzeAssignatio(ctx, e)
	case *ast.CondicioExpr:
		analyzeExpr(ctx, e.Cond)
		consType := analyzeExpr(ctx, e.Cons)
		altType := analyzeExpr(ctx, e.Alt)
		result = unify(consType, altType)
	case *ast.VocatioExpr:
		result = analyzeVocatio(ctx, e)
	case *ast.MembrumExpr:
		result = analyzeMembrum(ctx, e)
	case *ast.SeriesExpr:
		result = analyzeSeries(ctx, e)
	case *ast.ObiectumExpr:
		result = analyzeObiectum(ctx, e)
	case *ast.ClausuraExpr:
		result = analyzeClausura(ctx, e)
	case *ast.NovumExpr:
		result = analyzeNovum(ctx, e)
	case *ast.FingeExpr:
		result = analyzeFinge(ctx, e)
	case *ast.CedeExpr:
		result = analyzeExpr(ctx, e.Arg)
	case *ast.QuaExpr:
		analyzeExpr(ctx, e.Expr)
		result = resolveTypus(ctx, e.Typus)
	case *ast.InnatumExpr:
		analyzeExpr(ctx, e.Expr)
		result = resolveTypus(ctx, e.Typus)
	case *ast.ScriptumExpr:
		for _, a := range e.Args {
			analyzeExpr(ctx, a)
		}
		result = semtype.Textus
	case *ast.AmbitusExpr:
		analyzeExpr(ctx, e.Start)
		analyzeExpr(ctx, e.End)
		result = &semtype.Generic{Head: "lista", Args: []semtype.Type{semtype.Numerus}}
	case *ast.ConversioExpr:
		analyzeExpr(ctx, e.Expr)
		if e.Fallback != nil {
			analyzeExpr(ctx, e.Fallback)
		}
		switch e.Species {
		case "numeratum":
			result = semtype.Numerus
		case "fractatum":
			result = semtype.Fractus
		case "textatum":
			result = semtype.Textus
		case "bivalentum":
			result = semtype.Bivalens
		default:
			result = semtype.Unresolved
		}
	default:
		result = semtype.Unresolved
	}

	ctx.SetExprType(expr, result)
	return result
}

func analyzeLittera(e *ast.LitteraExpr) semtype.Type {
	switch e.Species {
	case ast.LitteraTextus:
		return semtype.Textus
	case ast.LitteraNumerus:
		return semtype.Numerus
	case ast.LitteraFractus:
		return semtype.Fractus
	case ast.LitteraMagnus:
		return semtype.Magnus
	case ast.LitteraVerum, ast.LitteraFalsum:
		return semtype.Bivalens
	case ast.LitteraNihil:
		return semtype.Nihil
	default:
		return semtype.Unresolved
	}
}

func analyzeNomen(ctx *scope.Context, e *ast.NomenExpr) semtype.Type {
	if sym := ctx.Lookup(e.Valor); sym != nil {
		return sym.Typus
	}
	if t := ctx.ResolveTypeName(e.Valor); t != nil {
		if _, unresolved := t.(*semtype.User); !unresolved {
			return t
		}
	}
	ctx.Error(ferrors.SUndefinedVariable, "undefined identifier: "+e.Valor, "", e.Locus)
	return semtype.Unresolved
}

func analyzeBinaria(ctx *scope.Context, e *ast.BinariaExpr) semtype.Type {
	left := analyzeExpr(ctx, e.Sin)
	right := analyzeExpr(ctx, e.Dex)

	switch e.Signum {
	case "+", "-", "*", "/", "%":
		if isNumeric(left) && isNumeric(right) {
			if isFractus(left) || isFractus(right) {
				return semtype.Fractus
			}
			return semtype.Numerus
		}
		if e.Signum == "+" && isTextus(left) {
			return semtype.Textus
		}
		return semtype.Unresolved
	case "==", "!=", "===", "!==", "<", ">", "<=", ">=":
		return semtype.Bivalens
	case "et", "aut", "&&", "||":
		return semtype.Bivalens
	case "vel", "??":
		return left
	default:
		return semtype.Unresolved
	}
}

func analyzeUnaria(ctx *scope.Context, e *ast.UnariaExpr) semtype.Type {
	argType := analyzeExpr(ctx, e.Arg)
	switch e.Signum {
	case "non", "!", "nihil", "nonnihil", "nulla", "nonnulla":
		return semtype.Bivalens
	default:
		return argType
	}
}

// analyzeAssignatio type-checks an assignment expression. Inside an
// `in obj { ... }` block, spec.md §4.3 rewrites a bare-identifier
// target as a property write on obj rather than a local-variable
// assignment, so that path is checked against obj's fields instead of
// going through the ordinary scope lookup (which would otherwise
// report the name as undefined).
func analyzeAssignatio(ctx *scope.Context, e *ast.AssignatioExpr) semtype.Type {
	if ctx.InSubject != nil {
		if nomen, ok := e.Sin.(*ast.NomenExpr); ok {
			dexType := analyzeExpr(ctx, e.Dex)
			return checkInPropertyAssignment(ctx, nomen, e, dexType)
		}
	}
	sinType := analyzeExpr(ctx, e.Sin)
	dexType := analyzeExpr(ctx, e.Dex)
	checkAssignment(ctx, e, sinType, dexType)
	return sinType
}

// checkInPropertyAssignment validates a bare-identifier assignment
// rewritten as a write to obj.<name>: the name must be a declared field
// on the subject's genus, and the assigned value must be assignable to
// its declared type. A subject whose type isn't a known genus (e.g.
// still unresolved) is left unchecked rather than guessed at.
func checkInPropertyAssignment(ctx *scope.Context, nomen *ast.NomenExpr, e *ast.AssignatioExpr, dexType semtype.Type) semtype.Type {
	genus, ok := asGenus(ctx, ctx.InSubject)
	if !ok {
		return dexType
	}
	fieldType, ok := genus.Fields[nomen.Valor]
	if !ok {
		ctx.Error(ferrors.SUndefinedVariable, "'"+genus.Name+"' has no field '"+nomen.Valor+"'", "", e.Locus)
		return semtype.Unresolved
	}
	if !assignable(dexType, fieldType) {
		ctx.Error(ferrors.STypeMismatch, "value of type "+dexType.String()+" is not assignable to '"+nomen.Valor+"' of type "+fieldType.String(), "", e.Locus)
	}
	return fieldType
}

func asGenus(ctx *scope.Context, t semtype.Type) (*semtype.Genus, bool) {
	switch tt := t.(type) {
	case *semtype.Genus:
		return tt, true
	case *semtype.User:
		if g, ok := ctx.GenusRegistry[tt.Name]; ok {
			return g, true
		}
	}
	return nil, false
}

// checkAssignment enforces immutable (`fixum`)-reassignment rejection
// and assignment-compatibility: the analyzer looks up the symbol behind
// a bare-name assignment target, reports an error if it was declared
// immutable, and separately reports a type mismatch when the assigned
// value's type is not assignable to the target's declared type.
func checkAssignment(ctx *scope.Context, e *ast.AssignatioExpr, sinType, dexType semtype.Type) {
	nomen, ok := e.Sin.(*ast.NomenExpr)
	if !ok {
		return
	}
	sym := ctx.Lookup(nomen.Valor)
	if sym == nil {
		return
	}
	if sym.Species == scope.SymbolVariabilis && !sym.Mutabilis {
		ctx.Error(ferrors.SImmutableReassign, "cannot assign to '"+nomen.Valor+"': declared with 'fixum'", "declare it with 'varia' if it needs to change", e.Locus)
		return
	}
	if !assignable(dexType, sinType) {
		ctx.Error(ferrors.STypeMismatch, "value of type "+dexType.String()+" is not assignable to '"+nomen.Valor+"' of type "+sinType.String(), "", e.Locus)
	}
}

// assignable reports whether a value of type from may be assigned to a
// location of type to, per spec.md §8's assignability laws: unknown is
// bidirectionally assignable, nihil is assignable to any nullable type,
// numeric promotion is transitive within {numerus, fractus, decimus},
// and per spec.md §4.4, a union is assignable member-wise: a source is
// assignable to a union target if assignable to some member, and a
// source union is assignable to a target if every member is.
func assignable(from, to semtype.Type) bool {
	if from == nil || to == nil {
		return true
	}
	if _, ok := from.(*semtype.Unknown); ok {
		return true
	}
	if _, ok := to.(*semtype.Unknown); ok {
		return true
	}
	if fp, ok := from.(*semtype.Primitive); ok && fp.Name == "nihil" {
		return to.IsNullable()
	}
	if fromUnion, ok := from.(*semtype.Union); ok {
		for _, member := range fromUnion.Members {
			if !assignable(member, to) {
				return false
			}
		}
		return true
	}
	if toUnion, ok := to.(*semtype.Union); ok {
		for _, member := range toUnion.Members {
			if assignable(from, member) {
				return true
			}
		}
		return false
	}
	if isNumeric(from) && isNumeric(to) {
		return true
	}
	return stripNullable(from.String()) == stripNullable(to.String())
}

func stripNullable(s string) string {
	if len(s) > 0 && s[len(s)-1] == '?' {
		return s[:len(s)-1]
	}
	return s
}

func analyzeVocatio(ctx *scope.Context, e *ast.VocatioExpr) semtype.Type {
	for _, a := range e.Args {
		analyzeExpr(ctx, a)
	}
	calleeType := analyzeExpr(ctx, e.Callee)

	if fn, ok := calleeType.(*semtype.Function); ok {
		if fn.Returns != nil {
			return fn.Returns
		}
		return semtype.Vacuum
	}

	if membrum, ok := e.Callee.(*ast.MembrumExpr); ok {
		objType := ctx.GetExprType(membrum.Obj)
		if genus, ok := objType.(*semtype.Genus); ok {
			if lit, ok := membrum.Prop.(*ast.LitteraExpr); ok {
				if method, ok := genus.Methods[lit.Valor]; ok {
					if method.Returns != nil {
						return method.Returns
					}
					return semtype.Vacuum
				}
			}
		}
	}

	if nomen, ok := e.Callee.(*ast.NomenExpr); ok {
		if genus, ok := ctx.GenusRegistry[nomen.Valor]; ok {
			return genus
		}
	}

	return semtype.Unresolved
}

func analyzeMembrum(ctx *scope.Context, e *ast.MembrumExpr) semtype.Type {
	objType := analyzeExpr(ctx, e.Obj)

	if e.Computed {
		analyzeExpr(ctx, e.Prop)
		switch t := objType.(type) {
		case *semtype.Generic:
			switch t.Head {
			case "lista", "copia":
				if len(t.Args) > 0 {
					return t.Args[0]
				}
			case "tabula":
				if len(t.Args) > 1 {
					return t.Args[1]
				}
			}
		}
		return semtype.Unresolved
	}

	lit, ok := e.Prop.(*ast.LitteraExpr)
	if !ok {
		return semtype.Unresolved
	}
	propName := lit.Valor

	switch propName {
	case "longitudo":
		switch t := objType.(type) {
		case *semtype.Generic:
			if t.Head == "lista" || t.Head == "tabula" || t.Head == "copia" {
				return semtype.Numerus
			}
		case *semtype.Primitive:
			if t.Name == "textus" {
				return semtype.Numerus
			}
		}
	case "primus", "ultimus":
		if g, ok := objType.(*semtype.Generic); ok && g.Head == "lista" && len(g.Args) > 0 {
			return g.Args[0]
		}
	}

	switch t := objType.(type) {
	case *semtype.Genus:
		if ft, ok := t.Fields[propName]; ok {
			return ft
		}
		if m, ok := t.Methods[propName]; ok {
			return m
		}
	case *semtype.User:
		if genus, ok := ctx.GenusRegistry[t.Name]; ok {
			if ft, ok := genus.Fields[propName]; ok {
				return ft
			}
			if m, ok := genus.Methods[propName]; ok {
				return m
			}
		}
	case *semtype.Ordo:
		if _, ok := t.Members[propName]; ok {
			return t
		}
	case *semtype.Discretio:
		if _, ok := t.Variants[propName]; ok {
			return t
		}
	}

	return semtype.Unresolved
}

func analyzeSeries(ctx *scope.Context, e *ast.SeriesExpr) semtype.Type {
	var elemType semtype.Type = semtype.Unresolved
	for i, el := range e.Elementa {
		t := analyzeExpr(ctx, el)
		if i == 0 {
			elemType = t
		}
	}
	return &semtype.Generic{Head: "lista", Args: []semtype.Type{elemType}}
}

func analyzeObiectum(ctx *scope.Context, e *ast.ObiectumExpr) semtype.Type {
	fields := map[string]semtype.Type{}
	for _, p := range e.Props {
		valType := analyzeExpr(ctx, p.Valor)
		if lit, ok := p.Key.(*ast.LitteraExpr); ok {
			fields[lit.Valor] = valType
		}
	}
	return &semtype.Genus{Fields: fields, Methods: map[string]*semtype.Function{}, StaticFields: map[string]semtype.Type{}, StaticMethods: map[string]*semtype.Function{}}
}

func analyzeClausura(ctx *scope.Context, e *ast.ClausuraExpr) semtype.Type {
	params := make([]semtype.Type, len(e.Params))

	ctx.Enter(scope.Functio, "")
	defer ctx.Exit()

	for i, p := range e.Params {
		paramType := semtype.Type(semtype.Unresolved)
		if p.Typus != nil {
			paramType = resolveTypus(ctx, p.Typus)
		}
		params[i] = paramType
		ctx.Define(&scope.Symbol{Nomen: p.Nomen, Typus: paramType, Species: scope.SymbolParametrum, Mutabilis: true})
	}

	var returns semtype.Type
	switch body := e.Corpus.(type) {
	case *ast.BlockStmt:
		analyzeStmt(ctx, body)
	case ast.Expr:
		returns = analyzeExpr(ctx, body)
	}

	return &semtype.Function{Params: params, Returns: returns, Async: e.Async, Generator: e.Generator}
}

func analyzeNovum(ctx *scope.Context, e *ast.NovumExpr) semtype.Type {
	for _, a := range e.Args {
		analyzeExpr(ctx, a)
	}
	if e.Init != nil {
		analyzeExpr(ctx, e.Init)
	}

	if nomen, ok := e.Callee.(*ast.NomenExpr); ok {
		if genus, ok := ctx.GenusRegistry[nomen.Valor]; ok {
			return genus
		}
		if sym := ctx.Lookup(nomen.Valor); sym != nil && sym.Species == scope.SymbolVarians {
			return sym.Typus
		}
		return &semtype.User{Name: nomen.Valor}
	}
	return semtype.Unresolved
}

func analyzeFinge(ctx *scope.Context, e *ast.FingeExpr) semtype.Type {
	for _, c := range e.Campi {
		analyzeExpr(ctx, c.Valor)
	}
	for name, disc := range ctx.DiscRegistry {
		if _, ok := disc.Variants[e.Variant]; ok {
			return ctx.DiscRegistry[name]
		}
	}
	return &semtype.User{Name: e.Variant}
}

// unify returns a's type when a and b agree, else a best-effort common
// type; used for the ternary's branch-type merge.
func unify(a, b semtype.Type) semtype.Type {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.String() == b.String() {
		return a
	}
	return &semtype.Union{Members: []semtype.Type{a, b}}
}
