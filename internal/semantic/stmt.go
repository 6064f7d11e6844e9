package semantic

import (
	"github.com/ianzepp/faber/internal/ast"
	"github.com/ianzepp/faber/internal/ferrors"
	"github.com/ianzepp/faber/internal/scope"
	"github.com/ianzepp/faber/internal/semtype"
)

func analyzeStmt(ctx *scope.Context, stmt ast.Stmt) {
	if stmt == nil {
		return
	}

	switch s := stmt.(type) {
	case *ast.BlockStmt:
		ctx.Enter(scope.Massa, "")
		for _, inner := range s.Statements {
			analyzeStmt(ctx, inner)
		}
		ctx.Exit()

	case *ast.VariableDecl:
		analyzeVariableDecl(ctx, s)

	case *ast.FunctionDecl:
		analyzeFunctionDecl(ctx, s)

	case *ast.GenusDecl, *ast.PactumDecl, *ast.OrdoDecl, *ast.DiscretioDecl, *ast.TypeAliasDecl, *ast.ImportDecl:
		// registered in the declaration pre-pass; nothing further at
		// statement position.

	case *ast.IfStmt:
		analyzeExpr(ctx, s.Cond)
		analyzeStmt(ctx, s.Then)
		analyzeStmt(ctx, s.Else)

	case *ast.WhileStmt:
		analyzeExpr(ctx, s.Cond)
		analyzeStmt(ctx, s.Body)

	case *ast.ForStmt:
		analyzeForStmt(ctx, s)

	case *ast.InStmt:
		subjectType := analyzeExpr(ctx, s.Subject)
		prevSubject := ctx.InSubject
		ctx.InSubject = subjectType
		analyzeStmt(ctx, s.Body)
		ctx.InSubject = prevSubject

	case *ast.SwitchStmt:
		analyzeExpr(ctx, s.Subject)
		for _, arm := range s.Arms {
			if arm.Cond != nil {
				analyzeExpr(ctx, arm.Cond)
			}
			analyzeStmt(ctx, arm.Body)
		}

	case *ast.DiscerneStmt:
		analyzeDiscerne(ctx, s)

	case *ast.GuardStmt:
		analyzeExpr(ctx, s.Cond)
		analyzeStmt(ctx, s.Else)

	case *ast.TryStmt:
		analyzeStmt(ctx, s.Body)
		if s.CatchBody != nil {
			ctx.Enter(scope.Massa, "")
			if s.CatchName != "" {
				ctx.Define(&scope.Symbol{Nomen: s.CatchName, Typus: semtype.Unresolved, Species: scope.SymbolVariabilis, Mutabilis: false})
			}
			analyzeStmt(ctx, s.CatchBody)
			ctx.Exit()
		}
		if s.FinallyBody != nil {
			analyzeStmt(ctx, s.FinallyBody)
		}

	case *ast.ResourceStmt:
		analyzeExpr(ctx, s.Resource)
		ctx.Enter(scope.Massa, "")
		ctx.Define(&scope.Symbol{Nomen: s.Binding, Typus: semtype.Unresolved, Species: scope.SymbolVariabilis, Mutabilis: false})
		analyzeStmt(ctx, s.Body)
		ctx.Exit()
		if s.CatchBody != nil {
			analyzeStmt(ctx, s.CatchBody)
		}

	case *ast.FixtureStmt:
		analyzeStmt(ctx, s.Body)

	case *ast.ReturnStmt:
		if s.Value != nil {
			analyzeExpr(ctx, s.Value)
		}

	case *ast.ThrowStmt:
		analyzeExpr(ctx, s.Value)

	case *ast.PanicStmt:
		analyzeExpr(ctx, s.Value)

	case *ast.OutputStmt:
		for _, a := range s.Args {
			analyzeExpr(ctx, a)
		}

	case *ast.AssertStmt:
		analyzeExpr(ctx, s.Cond)
		if s.Message != nil {
			analyzeExpr(ctx, s.Message)
		}

	case *ast.EntryStmt:
		ctx.Enter(scope.Functio, "incipit")
		analyzeStmt(ctx, s.Body)
		ctx.Exit()

	case *ast.TestGroupStmt:
		analyzeStmt(ctx, s.Body)

	case *ast.TestStmt:
		analyzeStmt(ctx, s.Body)

	case *ast.ExprStmt:
		analyzeExpr(ctx, s.Expr)

	case *ast.BreakStmt, *ast.ContinueStmt:
		// no sub-expressions

	default:
		// unrecognized statement kinds degrade to a no-op rather than a
		// panic, per the pipeline's non-throwing guarantee.
	}
}

func analyzeVariableDecl(ctx *scope.Context, s *ast.VariableDecl) {
	if existing := ctx.Current.LookupLocal(s.Nomen); existing != nil {
		ctx.Error(ferrors.SDuplicateDeclaration, "'"+s.Nomen+"' is already declared in this scope", "", s.Locus)
	}

	var declared semtype.Type
	if s.Typus != nil {
		declared = resolveTypus(ctx, s.Typus)
	}

	var initType semtype.Type
	if s.Init != nil {
		initType = analyzeExpr(ctx, s.Init)
	}

	if declared != nil && initType != nil && !assignable(initType, declared) {
		ctx.Error(ferrors.STypeMismatch, "value of type "+initType.String()+" is not assignable to '"+s.Nomen+"' of type "+declared.String(), "", s.Locus)
	}

	final := declared
	if final == nil {
		final = initType
	}
	if final == nil {
		final = semtype.Unresolved
	}

	ctx.Define(&scope.Symbol{Nomen: s.Nomen, Typus: final, Species: scope.SymbolVariabilis, Mutabilis: s.Mutable, Locus: s.Locus})
}

func analyzeFunctionDecl(ctx *scope.Context, s *ast.FunctionDecl) {
	ctx.Enter(scope.Functio, s.Nomen)
	for i, p := range s.Params {
		var t semtype.Type = semtype.Unresolved
		if p.Typus != nil {
			t = resolveTypus(ctx, p.Typus)
		}
		ctx.Define(&scope.Symbol{Nomen: p.Nomen, Typus: t, Species: scope.SymbolParametrum, Mutabilis: true})
		_ = i
	}
	if s.Corpus != nil {
		analyzeStmt(ctx, s.Corpus)
	}
	ctx.Exit()
}

func analyzeForStmt(ctx *scope.Context, s *ast.ForStmt) {
	subjectType := analyzeExpr(ctx, s.Subject)

	ctx.Enter(scope.Massa, "")
	switch s.Mode {
	case ast.ForEach, ast.ForEachAwait:
		elemType := semtype.Type(semtype.Unresolved)
		if g, ok := subjectType.(*semtype.Generic); ok && len(g.Args) > 0 {
			elemType = g.Args[0]
		}
		ctx.Define(&scope.Symbol{Nomen: s.Binding, Typus: elemType, Species: scope.SymbolVariabilis, Mutabilis: false})
	case ast.ForKeys:
		ctx.Define(&scope.Symbol{Nomen: s.Binding, Typus: semtype.Textus, Species: scope.SymbolVariabilis, Mutabilis: false})
	case ast.ForDestructure:
		for _, name := range s.Pattern {
			fieldType := semtype.Type(semtype.Unresolved)
			if genus, ok := subjectType.(*semtype.Genus); ok {
				if ft, ok := genus.Fields[name]; ok {
					fieldType = ft
				}
			}
			ctx.Define(&scope.Symbol{Nomen: name, Typus: fieldType, Species: scope.SymbolVariabilis, Mutabilis: s.Mutable})
		}
	}
	analyzeStmt(ctx, s.Body)
	ctx.Exit()
}

// analyzeDiscerne type-checks a variant match: each arm's discretio
// variant must exist, positional bindings are typed from the variant's
// declared field list, matched by declaration order, and an alias
// binding takes the discretio type itself.
func analyzeDiscerne(ctx *scope.Context, s *ast.DiscerneStmt) {
	subjectType := analyzeExpr(ctx, s.Subject)
	disc, _ := subjectType.(*semtype.Discretio)

	for _, arm := range s.Arms {
		ctx.Enter(scope.Massa, "")

		if !arm.Wildcard && disc != nil {
			fields, ok := disc.Variants[arm.Variant]
			if !ok {
				ctx.Error(ferrors.SUnknownVariant, "'"+arm.Variant+"' is not a variant of "+disc.Name, "", s.Locus)
			} else {
				if arm.Alias != "" {
					ctx.Define(&scope.Symbol{Nomen: arm.Alias, Typus: disc, Species: scope.SymbolVariabilis, Mutabilis: false})
				}
				for i, bindName := range arm.Bindings {
					t := semtype.Type(semtype.Unresolved)
					if i < len(fields) {
						t = fields[i].Type
					}
					ctx.Define(&scope.Symbol{Nomen: bindName, Typus: t, Species: scope.SymbolVariabilis, Mutabilis: false})
				}
			}
		}

		analyzeStmt(ctx, arm.Body)
		ctx.Exit()
	}
}
