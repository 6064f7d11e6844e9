package ast

import "github.com/ianzepp/faber/internal/locus"

// Stmt is the closed sum over statement node kinds.
type Stmt interface {
	stmtNode()
	Pos() locus.Locus
}

type Program struct {
	Locus      locus.Locus
	Statements []Stmt
}

func (p *Program) Pos() locus.Locus { return p.Locus }

type BlockStmt struct {
	Locus      locus.Locus
	Statements []Stmt
}

// ImportSpecifier is one named binding of an import clause.
type ImportSpecifier struct {
	Nomen string
	Alias string // "" when not aliased
}

type ImportDecl struct {
	Locus       locus.Locus
	Path        string
	Specifiers  []ImportSpecifier
	WildcardAll bool // `importa ex "path" privata * ut alias`
}

// VariableDecl covers both `varia` (mutable) and `fixum` (immutable).
type VariableDecl struct {
	Locus   locus.Locus
	Nomen   string
	Typus   Typus // nil when inferred from Init
	Init    Expr  // nil only for a bare `varia Typus name` with no initializer
	Mutable bool
	Public  bool // marked with @publica
}

type FunctionDecl struct {
	Locus      locus.Locus
	Nomen      string
	TypeParams []TypeParam
	Params     []Param
	Returns    Typus
	Async      bool
	Generator  bool
	Corpus     *BlockStmt
	Public     bool // marked with @publica
}

type TypeAliasDecl struct {
	Locus  locus.Locus
	Nomen  string
	Typus  Typus
	Public bool // marked with @publica
}

type FieldDecl struct {
	Nomen     string
	Typus     Typus
	Static    bool
	Visibility string // publica, privata, protecta, "" (default)
}

type MethodDecl struct {
	Function   *FunctionDecl
	Static     bool
	Visibility string
}

type GenusDecl struct {
	Locus      locus.Locus
	Nomen      string
	TypeParams []TypeParam
	Extends    string // "" when none
	Implements []string
	Abstract   bool
	Fields     []FieldDecl
	Methods    []MethodDecl
	Public     bool // marked with @publica
}

type PactumMethod struct {
	Nomen   string
	Params  []Param
	Returns Typus
}

type PactumDecl struct {
	Locus   locus.Locus
	Nomen   string
	Methods []PactumMethod
	Public  bool // marked with @publica
}

type OrdoMember struct {
	Nomen string
	Valor *int64 // nil when auto-numbered
}

type OrdoDecl struct {
	Locus   locus.Locus
	Nomen   string
	Members []OrdoMember
	Public  bool // marked with @publica
}

type DiscretioVariant struct {
	Nomen  string
	Fields []Param
}

type DiscretioDecl struct {
	Locus    locus.Locus
	Nomen    string
	Variants []DiscretioVariant
	Public   bool // marked with @publica
}

type IfStmt struct {
	Locus  locus.Locus
	Cond   Expr
	Then   *BlockStmt
	Else   Stmt // *BlockStmt or *IfStmt (else-if chain) or nil
}

type WhileStmt struct {
	Locus locus.Locus
	Cond  Expr
	Body  *BlockStmt
}

// ForMode distinguishes the `ex expr ...` iteration family.
type ForMode string

const (
	ForEach       ForMode = "foreach"       // ex items pro x { ... }
	ForEachAwait  ForMode = "foreach-await" // ex items fiet x { ... }
	ForDestructure ForMode = "destructure"  // ex obj fixum/varia pattern { ... }
	ForKeys       ForMode = "keys"          // de obj pro k { ... }
)

type ForStmt struct {
	Locus    locus.Locus
	Mode     ForMode
	Subject  Expr
	Binding  string
	Pattern  []string // destructured field names, when Mode == ForDestructure
	Mutable  bool     // fixum vs varia binding, when Mode == ForDestructure
	Body     *BlockStmt
}

// InStmt is `in obj { ... }`: bare-identifier assignments inside the
// block are rewritten as property assignments on obj.
type InStmt struct {
	Locus   locus.Locus
	Subject Expr
	Body    *BlockStmt
}

// MatchArm is one arm of `elige` (value match): `casu expr { ... }`, or a
// default arm introduced by `ceterum`, `aliter` or `secus`.
type MatchArm struct {
	Cond    Expr // nil for the default arm
	OneLine Expr // not set by the parser: an `ergo` arm body is parsed into Body
	Body    *BlockStmt
	Default bool
}

type SwitchStmt struct {
	Locus    locus.Locus
	Subject  Expr
	Arms     []MatchArm
}

// DiscerneArm is one arm of `discerne` (variant match).
type DiscerneArm struct {
	Variant  string // "_" for a `casu _` arm, "" for a `ceterum` arm; Wildcard is set for both
	Wildcard bool
	Bindings []string // positional bindings via `pro a, b`
	Alias    string   // whole-value binding via `ut name`; "" when unused
	Body     *BlockStmt
}

type DiscerneStmt struct {
	Locus   locus.Locus
	Subject Expr
	Arms    []DiscerneArm
}

// GuardStmt is `custodi cond secus { ... }`-style early exit.
type GuardStmt struct {
	Locus locus.Locus
	Cond  Expr
	Else  *BlockStmt
}

type TryStmt struct {
	Locus       locus.Locus
	Body        *BlockStmt
	CatchName   string // "" when no catch clause
	CatchBody   *BlockStmt
	FinallyBody *BlockStmt // nil when no `demum`
}

type ReturnStmt struct {
	Locus locus.Locus
	Value Expr // nil for bare `redde`
}

type BreakStmt struct{ Locus locus.Locus }
type ContinueStmt struct{ Locus locus.Locus }

type ThrowStmt struct {
	Locus locus.Locus
	Value Expr
}

// PanicStmt is `mori expr` - non-recoverable.
type PanicStmt struct {
	Locus locus.Locus
	Value Expr
}

// OutputKind distinguishes the output intrinsics.
type OutputKind string

const (
	OutputScribe OutputKind = "scribe" // stdout
	OutputVide   OutputKind = "vide"   // debug
	OutputMone   OutputKind = "mone"   // warn/stderr
)

type OutputStmt struct {
	Locus locus.Locus
	Kind  OutputKind
	Args  []Expr
}

// AssertStmt is `adfirma expr` (assertion).
type AssertStmt struct {
	Locus   locus.Locus
	Cond    Expr
	Message Expr // nil when no message supplied
}

// ResourceStmt is `cura [cede] expr fit name { body } cape err { ... }`.
type ResourceStmt struct {
	Locus     locus.Locus
	Await     bool // `cede`
	Resource  Expr
	Binding   string
	Body      *BlockStmt
	CatchName string
	CatchBody *BlockStmt
}

// FixtureKind distinguishes `cura ante|post [omnia]` test-only hooks.
type FixtureKind string

const (
	FixtureAnte     FixtureKind = "ante"
	FixturePost     FixtureKind = "post"
	FixtureAnteAll  FixtureKind = "ante-omnia"
	FixturePostAll  FixtureKind = "post-omnia"
)

type FixtureStmt struct {
	Locus locus.Locus
	Kind  FixtureKind
	Body  *BlockStmt
}

type TestGroupStmt struct {
	Locus locus.Locus
	Nomen string
	Body  *BlockStmt
}

type TestStmt struct {
	Locus    locus.Locus
	Nomen    string
	Modifier string // "", "tacet" (skip), etc.
	Reason   string
	Body     *BlockStmt
}

type ExprStmt struct {
	Locus locus.Locus
	Expr  Expr
}

// EntryStmt is the program entry point: `incipit { ... }` or the
// async form `incipiet { ... }`.
type EntryStmt struct {
	Locus locus.Locus
	Async bool
	Body  *BlockStmt
}

func (*BlockStmt) stmtNode()     {}
func (*ImportDecl) stmtNode()    {}
func (*VariableDecl) stmtNode()  {}
func (*FunctionDecl) stmtNode()  {}
func (*TypeAliasDecl) stmtNode() {}
func (*GenusDecl) stmtNode()     {}
func (*PactumDecl) stmtNode()    {}
func (*OrdoDecl) stmtNode()      {}
func (*DiscretioDecl) stmtNode() {}
func (*IfStmt) stmtNode()        {}
func (*WhileStmt) stmtNode()     {}
func (*ForStmt) stmtNode()       {}
func (*InStmt) stmtNode()        {}
func (*SwitchStmt) stmtNode()    {}
func (*DiscerneStmt) stmtNode()  {}
func (*GuardStmt) stmtNode()     {}
func (*TryStmt) stmtNode()       {}
func (*ReturnStmt) stmtNode()    {}
func (*BreakStmt) stmtNode()     {}
func (*ContinueStmt) stmtNode()  {}
func (*ThrowStmt) stmtNode()     {}
func (*PanicStmt) stmtNode()     {}
func (*OutputStmt) stmtNode()    {}
func (*AssertStmt) stmtNode()    {}
func (*ResourceStmt) stmtNode()  {}
func (*FixtureStmt) stmtNode()   {}
func (*TestGroupStmt) stmtNode() {}
func (*TestStmt) stmtNode()      {}
func (*ExprStmt) stmtNode()      {}
func (*EntryStmt) stmtNode()     {}

func (s *BlockStmt) Pos() locus.Locus     { return s.Locus }
func (s *ImportDecl) Pos() locus.Locus    { return s.Locus }
func (s *VariableDecl) Pos() locus.Locus  { return s.Locus }
func (s *FunctionDecl) Pos() locus.Locus  { return s.Locus }
func (s *TypeAliasDecl) Pos() locus.Locus { return s.Locus }
func (s *GenusDecl) Pos() locus.Locus     { return s.Locus }
func (s *PactumDecl) Pos() locus.Locus    { return s.Locus }
func (s *OrdoDecl) Pos() locus.Locus      { return s.Locus }
func (s *DiscretioDecl) Pos() locus.Locus { return s.Locus }
func (s *IfStmt) Pos() locus.Locus        { return s.Locus }
func (s *WhileStmt) Pos() locus.Locus     { return s.Locus }
func (s *ForStmt) Pos() locus.Locus       { return s.Locus }
func (s *InStmt) Pos() locus.Locus        { return s.Locus }
func (s *SwitchStmt) Pos() locus.Locus    { return s.Locus }
func (s *DiscerneStmt) Pos() locus.Locus  { return s.Locus }
func (s *GuardStmt) Pos() locus.Locus     { return s.Locus }
func (s *TryStmt) Pos() locus.Locus       { return s.Locus }
func (s *ReturnStmt) Pos() locus.Locus    { return s.Locus }
func (s *BreakStmt) Pos() locus.Locus     { return s.Locus }
func (s *ContinueStmt) Pos() locus.Locus  { return s.Locus }
func (s *ThrowStmt) Pos() locus.Locus     { return s.Locus }
func (s *PanicStmt) Pos() locus.Locus     { return s.Locus }
func (s *OutputStmt) Pos() locus.Locus    { return s.Locus }
func (s *AssertStmt) Pos() locus.Locus    { return s.Locus }
func (s *ResourceStmt) Pos() locus.Locus  { return s.Locus }
func (s *FixtureStmt) Pos() locus.Locus   { return s.Locus }
func (s *TestGroupStmt) Pos() locus.Locus { return s.Locus }
func (s *TestStmt) Pos() locus.Locus      { return s.Locus }
func (s *ExprStmt) Pos() locus.Locus      { return s.Locus }
func (s *EntryStmt) Pos() locus.Locus     { return s.Locus }
