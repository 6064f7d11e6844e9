// Package semantic is the type-checking pass: it walks the ast.Program
// produced by package parser, resolves every expression's semtype.Type,
// and reports assignability, mutability, and declaration errors.
//
// Grounded on fons/nanus-go/subsidia/resolve.go's analyzeExpression
// dispatch, generalized to the closed ast.Expr/ast.Stmt sums and to
// semtype.Type registries, with statement-level checks (duplicate
// declaration, immutable reassignment, discerne pattern typing) added
// per spec.md §4.4 and §8's worked examples.
package semantic

import (
	"github.com/ianzepp/faber/internal/ast"
	"github.com/ianzepp/faber/internal/ferrors"
	"github.com/ianzepp/faber/internal/locus"
	"github.com/ianzepp/faber/internal/scope"
	"github.com/ianzepp/faber/internal/semtype"
)

// Result is the analyzer's output envelope.
type Result struct {
	Errors []ferrors.FabError
}

// Analyze type-checks prog in a fresh context seeded with the given
// cross-module exports (name -> type), and returns accumulated errors.
// A *ferrors.CompileError panic is recovered at this entry point and
// reported as an error; any other panic value is re-raised.
func Analyze(prog *ast.Program, imports map[string]semtype.Type) (result Result) {
	ctx := scope.NewContext()
	for name, t := range imports {
		ctx.Define(&scope.Symbol{Nomen: name, Typus: t, Species: scope.SymbolTypus})
	}

	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*ferrors.CompileError); ok {
				ctx.Errors = append(ctx.Errors, ferrors.Semantic(ferrors.SUnknownVariant, ce.Message, "", ce.Locus))
			} else {
				panic(r)
			}
		}
		result = Result{Errors: ctx.Errors}
	}()

	registerDeclarations(ctx, prog.Statements)
	for _, stmt := range prog.Statements {
		analyzeStmt(ctx, stmt)
	}
	return
}

// registerDeclarations does a first pass over top-level statements so
// forward references (a function calling another declared later) and
// type definitions referenced before their declaration both resolve.
func registerDeclarations(ctx *scope.Context, stmts []ast.Stmt) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.OrdoDecl:
			registerOrdo(ctx, s)
		case *ast.DiscretioDecl:
			registerDiscretio(ctx, s)
		case *ast.GenusDecl:
			registerGenus(ctx, s)
		case *ast.PactumDecl:
			registerPactum(ctx, s)
		case *ast.FunctionDecl:
			ctx.Define(&scope.Symbol{Nomen: s.Nomen, Typus: functionType(ctx, s), Species: scope.SymbolFunctio, Locus: s.Locus})
		}
	}
}

func registerOrdo(ctx *scope.Context, decl *ast.OrdoDecl) {
	ordo := &semtype.Ordo{Name: decl.Nomen, Members: map[string]int64{}}
	next := int64(0)
	for _, m := range decl.Members {
		if m.Valor != nil {
			next = *m.Valor
		}
		ordo.Members[m.Nomen] = next
		ordo.Order = append(ordo.Order, m.Nomen)
		next++
	}
	ctx.OrdoRegistry[decl.Nomen] = ordo
	ctx.RegisterType(decl.Nomen, ordo)
}

func registerDiscretio(ctx *scope.Context, decl *ast.DiscretioDecl) {
	disc := &semtype.Discretio{Name: decl.Nomen, Variants: map[string][]semtype.Field{}}
	for _, v := range decl.Variants {
		var fields []semtype.Field
		for _, f := range v.Fields {
			fields = append(fields, semtype.Field{Name: f.Nomen, Type: resolveTypus(ctx, f.Typus)})
		}
		disc.Variants[v.Nomen] = fields
		disc.Order = append(disc.Order, v.Nomen)
	}
	ctx.DiscRegistry[decl.Nomen] = disc
	ctx.RegisterType(decl.Nomen, disc)
}

func registerGenus(ctx *scope.Context, decl *ast.GenusDecl) {
	genus := &semtype.Genus{
		Name:          decl.Nomen,
		Fields:        map[string]semtype.Type{},
		Methods:       map[string]*semtype.Function{},
		StaticFields:  map[string]semtype.Type{},
		StaticMethods: map[string]*semtype.Function{},
		Implements:    decl.Implements,
	}
	for _, f := range decl.Fields {
		t := resolveTypus(ctx, f.Typus)
		if f.Static {
			genus.StaticFields[f.Nomen] = t
		} else {
			genus.Fields[f.Nomen] = t
		}
	}
	for _, m := range decl.Methods {
		fn := functionType(ctx, m.Function)
		if m.Static {
			genus.StaticMethods[m.Function.Nomen] = fn
		} else {
			genus.Methods[m.Function.Nomen] = fn
		}
	}
	ctx.GenusRegistry[decl.Nomen] = genus
	ctx.RegisterType(decl.Nomen, genus)
}

func registerPactum(ctx *scope.Context, decl *ast.PactumDecl) {
	pactum := &semtype.Pactum{Name: decl.Nomen, Methods: map[string]*semtype.Function{}}
	for _, m := range decl.Methods {
		var params []semtype.Type
		for _, p := range m.Params {
			params = append(params, resolveTypus(ctx, p.Typus))
		}
		pactum.Methods[m.Nomen] = &semtype.Function{Params: params, Returns: resolveTypus(ctx, m.Returns)}
	}
	ctx.PactumRegistry[decl.Nomen] = pactum
	ctx.RegisterType(decl.Nomen, pactum)
}

func functionType(ctx *scope.Context, decl *ast.FunctionDecl) *semtype.Function {
	var params []semtype.Type
	for _, p := range decl.Params {
		params = append(params, resolveTypus(ctx, p.Typus))
	}
	var typeParams []string
	for _, tp := range decl.TypeParams {
		typeParams = append(typeParams, tp.Nomen)
	}
	return &semtype.Function{
		Params:     params,
		TypeParams: typeParams,
		Returns:    resolveTypus(ctx, decl.Returns),
		Async:      decl.Async,
		Generator:  decl.Generator,
	}
}

// resolveTypus maps a syntactic ast.Typus to a resolved semtype.Type.
func resolveTypus(ctx *scope.Context, t ast.Typus) semtype.Type {
	if t == nil {
		return semtype.Vacuum
	}
	switch tt := t.(type) {
	case *ast.TypusNomen:
		return ctx.ResolveTypeName(tt.Nomen)
	case *ast.TypusNullabilis:
		return semtype.AsNullable(resolveTypus(ctx, tt.Inner))
	case *ast.TypusGenericus:
		var args []semtype.Type
		for _, a := range tt.Args {
			args = append(args, resolveTypus(ctx, a))
		}
		return &semtype.Generic{Head: tt.Nomen, Args: args}
	case *ast.TypusFunctio:
		var params []semtype.Type
		for _, p := range tt.Params {
			params = append(params, resolveTypus(ctx, p))
		}
		return &semtype.Function{Params: params, TypeParams: tt.TypeParams, Returns: resolveTypus(ctx, tt.Returns)}
	case *ast.TypusUnio:
		var members []semtype.Type
		for _, m := range tt.Members {
			members = append(members, resolveTypus(ctx, m))
		}
		return &semtype.Union{Members: members}
	default:
		return semtype.Unresolved
	}
}

func isNumeric(t semtype.Type) bool {
	p, ok := t.(*semtype.Primitive)
	return ok && (p.Name == "numerus" || p.Name == "fractus" || p.Name == "decimus")
}

func isFractus(t semtype.Type) bool {
	p, ok := t.(*semtype.Primitive)
	return ok && p.Name == "fractus"
}

func isTextus(t semtype.Type) bool {
	p, ok := t.(*semtype.Primitive)
	return ok && p.Name == "textus"
}

func errPos(n interface{ Pos() locus.Locus }) locus.Locus {
	return n.Pos()
}
