// Package resolver loads Faber modules from disk, resolves their
// imports transitively, and feeds the resulting import types into
// internal/semantic so cross-module references type-check.
//
// Grounded on fons/nanus-go/subsidia/scope.go's SemanticContext (the
// module cache / in-progress set shape carries over directly) and on
// fons/nanus-go/subsidia/resolve.go's forward-reference handling; the
// teacher itself has no module loader (it analyzes one already-parsed
// program), so the loading/caching/export-extraction logic here is
// built fresh on top of that shape, per spec.md §4.4.
package resolver

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ianzepp/faber/internal/ast"
	"github.com/ianzepp/faber/internal/config"
	"github.com/ianzepp/faber/internal/ferrors"
	"github.com/ianzepp/faber/internal/fsys"
	"github.com/ianzepp/faber/internal/intrinsics"
	"github.com/ianzepp/faber/internal/lexer"
	"github.com/ianzepp/faber/internal/locus"
	"github.com/ianzepp/faber/internal/parser"
	"github.com/ianzepp/faber/internal/semantic"
	"github.com/ianzepp/faber/internal/semtype"
)

// PathKind classifies a module path as written in an "importa" statement.
type PathKind int

const (
	// KindLocal paths start with "./" or "../"; ".fab" is implicit.
	KindLocal PathKind = iota
	// KindIntrinsic paths are "norma" or "norma/...".
	KindIntrinsic
	// KindExternal is any other path; its specifiers bind to
	// semtype.Unresolved (no filesystem resolution attempted here).
	KindExternal
)

// ClassifyPath reports the kind of an import path.
func ClassifyPath(path string) PathKind {
	if strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
		return KindLocal
	}
	if path == "norma" || strings.HasPrefix(path, "norma/") {
		return KindIntrinsic
	}
	return KindExternal
}

// ExportKind enumerates what a ModuleExport binds to.
type ExportKind string

const (
	ExportFunction ExportKind = "function"
	ExportVariable ExportKind = "variable"
	ExportType     ExportKind = "type"
	ExportGenus    ExportKind = "genus"
	ExportPactum   ExportKind = "pactum"
	ExportOrdo     ExportKind = "ordo"
	ExportDiscret  ExportKind = "discretio"
)

// ModuleExport is one name a module makes visible to its importers.
type ModuleExport struct {
	Name string
	Type semtype.Type
	Kind ExportKind
}

// Module is one loaded-and-analyzed file: its program, its errors, and
// the exports extracted from it.
type Module struct {
	FilePath   string
	AnalysisID uuid.UUID
	Program    *ast.Program
	Exports    map[string]ModuleExport
	Errors     []ferrors.FabError
}

// Context owns the module cache and in-progress set for one
// compilation. It is not safe to share across parallel analyses
// (spec.md §4.4's shared-resources rule).
type Context struct {
	cfg        *config.Config
	log        *zap.Logger
	cache      map[string]*Module
	inProgress map[string]bool
}

// NewContext builds a resolution context rooted at cfg. A nil log
// defaults to zap.NewNop() so resolution stays silent by default.
func NewContext(cfg *config.Config, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		cfg:        cfg,
		log:        log,
		cache:      map[string]*Module{},
		inProgress: map[string]bool{},
	}
}

// Load resolves, parses, and analyzes the module at absPath, recursing
// into its local imports first so their exports are available to this
// module's semantic pass. Already-cached modules are returned without
// re-reading the file (diamond caching, spec.md §8). A module already
// in progress (an import cycle) yields empty exports rather than an
// error, per spec.md §4.4.
func (ctx *Context) Load(absPath string) *Module {
	if cached, ok := ctx.cache[absPath]; ok {
		ctx.log.Debug("module cache hit", zap.String("path", absPath))
		return cached
	}

	if ctx.inProgress[absPath] {
		ctx.log.Debug("module cycle tolerated", zap.String("path", absPath))
		return &Module{FilePath: absPath, Exports: map[string]ModuleExport{}}
	}

	ctx.inProgress[absPath] = true
	defer delete(ctx.inProgress, absPath)

	analysisID := newAnalysisID()
	mod := &Module{FilePath: absPath, AnalysisID: analysisID, Exports: map[string]ModuleExport{}}

	source, err := fsys.ReadText(absPath)
	if err != nil {
		ctx.log.Warn("module read failed", zap.String("path", absPath), zap.Error(err))
		mod.Errors = append(mod.Errors, ferrors.Semantic(ferrors.SModuleNotFound, "module not found: "+absPath, "", locus.Nulla))
		ctx.cache[absPath] = mod
		return mod
	}

	lexResult := lexer.Tokenize(source, absPath)
	parseResult := parser.Parse(lexResult.Tokens, absPath)
	mod.Program = parseResult.Tree
	mod.Errors = append(mod.Errors, lexResult.Errors...)
	mod.Errors = append(mod.Errors, parseResult.Errors...)

	if parseResult.Tree == nil {
		ctx.log.Warn("module parse failed", zap.String("path", absPath))
		mod.Errors = append(mod.Errors, ferrors.Semantic(ferrors.SModuleParseError, "module failed to parse: "+absPath, "", locus.Nulla))
		ctx.cache[absPath] = mod
		return mod
	}

	imports := ctx.resolveImports(absPath, mod.Program)

	semResult := semantic.Analyze(mod.Program, imports)
	mod.Errors = append(mod.Errors, semResult.Errors...)

	extractExports(mod)

	ctx.log.Debug("module analyzed",
		zap.String("path", absPath),
		zap.String("analysisId", analysisID.String()),
		zap.Int("exports", len(mod.Exports)),
		zap.Int("errors", len(mod.Errors)),
	)

	ctx.cache[absPath] = mod
	return mod
}

// resolveImports loads every local import of importer (relative to its
// own directory) and flattens their exports into one name->type map fed
// to internal/semantic as the importer's ambient symbol table. Intrinsic
// imports take their types from the internal/intrinsics catalog, with
// semtype.Unresolved for names it lacks; external imports bind every
// specifier to semtype.Unresolved.
func (ctx *Context) resolveImports(importerPath string, prog *ast.Program) map[string]semtype.Type {
	imports := map[string]semtype.Type{}

	for _, stmt := range prog.Statements {
		decl, ok := stmt.(*ast.ImportDecl)
		if !ok {
			continue
		}

		switch ClassifyPath(decl.Path) {
		case KindLocal:
			target := localImportPath(importerPath, decl.Path)
			imported := ctx.Load(target)
			bindSpecifiers(imports, decl, imported.Exports)
		case KindIntrinsic:
			bindIntrinsicSpecifiers(imports, decl)
		default:
			for _, spec := range decl.Specifiers {
				name := spec.Alias
				if name == "" {
					name = spec.Nomen
				}
				imports[name] = semtype.Unresolved
			}
		}
	}

	return imports
}

// bindIntrinsicSpecifiers resolves "norma/<submodule>" imports against
// the intrinsics catalog, so a call to an intrinsic function type-checks
// against its real signature instead of an unresolved type.
func bindIntrinsicSpecifiers(imports map[string]semtype.Type, decl *ast.ImportDecl) {
	submodule := strings.TrimPrefix(decl.Path, "norma/")
	for _, spec := range decl.Specifiers {
		name := spec.Alias
		if name == "" {
			name = spec.Nomen
		}
		if f, ok := intrinsics.Lookup(submodule, spec.Nomen); ok {
			imports[name] = f
		} else {
			imports[name] = semtype.Unresolved
		}
	}
}

func bindSpecifiers(imports map[string]semtype.Type, decl *ast.ImportDecl, exports map[string]ModuleExport) {
	if decl.WildcardAll {
		for name, exp := range exports {
			imports[name] = exp.Type
		}
		return
	}
	for _, spec := range decl.Specifiers {
		name := spec.Alias
		if name == "" {
			name = spec.Nomen
		}
		if exp, ok := exports[spec.Nomen]; ok {
			imports[name] = exp.Type
		} else {
			imports[name] = semtype.Unresolved
		}
	}
}

// localImportPath resolves a "./foo" or "../bar" path relative to the
// importing file's own directory, adding the implicit ".fab" extension.
func localImportPath(importerPath, rawPath string) string {
	dir := fsys.Dir(importerPath)
	joined := fsys.Join(dir, rawPath)
	if fsys.Ext(joined) == "" {
		joined += ".fab"
	}
	return joined
}

// extractExports walks a module's top-level declarations in three
// passes, per spec.md §4.4: ordo/discretio/genus placeholders and
// discretio variants first, genus field types re-extracted once every
// in-module type name is known, then every exportable name's final
// ModuleExport.
func extractExports(mod *Module) {
	placeholders := map[string]semtype.Type{}

	for _, stmt := range mod.Program.Statements {
		switch s := stmt.(type) {
		case *ast.OrdoDecl:
			placeholders[s.Nomen] = &semtype.User{Name: s.Nomen}
		case *ast.DiscretioDecl:
			disc := &semtype.Discretio{Name: s.Nomen, Variants: map[string][]semtype.Field{}}
			for _, v := range s.Variants {
				var fields []semtype.Field
				for _, f := range v.Fields {
					fields = append(fields, semtype.Field{Name: f.Nomen, Type: typeNameOnly(f.Typus)})
				}
				disc.Variants[v.Nomen] = fields
				disc.Order = append(disc.Order, v.Nomen)
			}
			placeholders[s.Nomen] = disc
		case *ast.GenusDecl:
			placeholders[s.Nomen] = &semtype.User{Name: s.Nomen}
		case *ast.PactumDecl:
			placeholders[s.Nomen] = &semtype.User{Name: s.Nomen}
		}
	}

	for _, stmt := range mod.Program.Statements {
		genus, ok := stmt.(*ast.GenusDecl)
		if !ok {
			continue
		}
		g := &semtype.Genus{Name: genus.Nomen, Fields: map[string]semtype.Type{}, Methods: map[string]*semtype.Function{}, Implements: genus.Implements}
		for _, f := range genus.Fields {
			if t, ok := placeholders[typeHead(f.Typus)]; ok {
				g.Fields[f.Nomen] = t
			} else {
				g.Fields[f.Nomen] = typeNameOnly(f.Typus)
			}
		}
		placeholders[genus.Nomen] = g
	}

	for _, stmt := range mod.Program.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionDecl:
			if s.Public {
				mod.Exports[s.Nomen] = ModuleExport{Name: s.Nomen, Type: functionExportType(s), Kind: ExportFunction}
			}
		case *ast.VariableDecl:
			if s.Public {
				mod.Exports[s.Nomen] = ModuleExport{Name: s.Nomen, Type: typeNameOnly(s.Typus), Kind: ExportVariable}
			}
		case *ast.TypeAliasDecl:
			if s.Public {
				mod.Exports[s.Nomen] = ModuleExport{Name: s.Nomen, Type: typeNameOnly(s.Typus), Kind: ExportType}
			}
		case *ast.GenusDecl:
			if s.Public {
				t := placeholders[s.Nomen]
				mod.Exports[s.Nomen] = ModuleExport{Name: s.Nomen, Type: t, Kind: ExportGenus}
			}
		case *ast.PactumDecl:
			if s.Public {
				mod.Exports[s.Nomen] = ModuleExport{Name: s.Nomen, Type: placeholders[s.Nomen], Kind: ExportPactum}
			}
		case *ast.OrdoDecl:
			if s.Public {
				mod.Exports[s.Nomen] = ModuleExport{Name: s.Nomen, Type: placeholders[s.Nomen], Kind: ExportOrdo}
			}
		case *ast.DiscretioDecl:
			if s.Public {
				mod.Exports[s.Nomen] = ModuleExport{Name: s.Nomen, Type: placeholders[s.Nomen], Kind: ExportDiscret}
			}
		}
	}
}

func functionExportType(decl *ast.FunctionDecl) semtype.Type {
	var params []semtype.Type
	for _, p := range decl.Params {
		params = append(params, typeNameOnly(p.Typus))
	}
	return &semtype.Function{Params: params, Returns: typeNameOnly(decl.Returns), Async: decl.Async, Generator: decl.Generator}
}

// typeNameOnly resolves a syntactic ast.Typus using only primitive and
// user-placeholder names, since a standalone export pass has no access
// to the full scope.Context a single-file analysis builds.
func typeNameOnly(t ast.Typus) semtype.Type {
	if t == nil {
		return semtype.Vacuum
	}
	switch tt := t.(type) {
	case *ast.TypusNomen:
		if p := primitiveByName(tt.Nomen); p != nil {
			return p
		}
		return &semtype.User{Name: tt.Nomen}
	case *ast.TypusNullabilis:
		return semtype.AsNullable(typeNameOnly(tt.Inner))
	case *ast.TypusGenericus:
		var args []semtype.Type
		for _, a := range tt.Args {
			args = append(args, typeNameOnly(a))
		}
		return &semtype.Generic{Head: tt.Nomen, Args: args}
	case *ast.TypusFunctio:
		var params []semtype.Type
		for _, p := range tt.Params {
			params = append(params, typeNameOnly(p))
		}
		return &semtype.Function{Params: params, TypeParams: tt.TypeParams, Returns: typeNameOnly(tt.Returns)}
	case *ast.TypusUnio:
		var members []semtype.Type
		for _, m := range tt.Members {
			members = append(members, typeNameOnly(m))
		}
		return &semtype.Union{Members: members}
	default:
		return semtype.Unresolved
	}
}

func typeHead(t ast.Typus) string {
	switch tt := t.(type) {
	case *ast.TypusNomen:
		return tt.Nomen
	case *ast.TypusNullabilis:
		return typeHead(tt.Inner)
	case *ast.TypusGenericus:
		return tt.Nomen
	default:
		return ""
	}
}

func primitiveByName(name string) *semtype.Primitive {
	switch name {
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
	default:
		return nil
	}
}

func newAnalysisID() uuid.UUID {
	return uuid.New()
}
