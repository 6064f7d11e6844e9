// Package semtype is the resolved semantic type system the analyzer
// attaches to AST nodes. Distinct from the syntactic type annotations
// in package ast.
//
// Grounded on fons/subsidia/go/types.go's SemanticTypus sum
// (SemPrimitivus/SemLista/SemGenus/...), generalized per spec.md §3:
// every variant is Nullable, numeric primitives carry an optional bit
// size, and SemDiscretio's variants carry an ordered field list (not
// just a field map) so discerne's positional bindings can type by
// declaration order.
package semtype

// Type is the closed sum over resolved semantic types.
type Type interface {
	isType()
	String() string
	IsNullable() bool
}

// Primitive covers textus/numerus/fractus/decimus/magnus/bivalens/nihil/vacuum/octeti.
type Primitive struct {
	Name     string
	Bits     int // 0 when not a sized numeric (e.g. textus, bivalens)
	Nullable bool
}

func (t *Primitive) isType()          {}
func (t *Primitive) IsNullable() bool { return t.Nullable }
func (t *Primitive) String() string {
	s := t.Name
	if s == "" {
		s = "ignotum"
	}
	if t.Nullable {
		s += "?"
	}
	return s
}

// Generic covers lista<T>, tabula<K,V>, copia<T>, promissum<T>, and any
// other parameterized builtin collection.
type Generic struct {
	Head     string // lista, tabula, copia, promissum, iterator, ...
	Args     []Type
	Nullable bool
}

func (t *Generic) isType()          {}
func (t *Generic) IsNullable() bool { return t.Nullable }
func (t *Generic) String() string {
	s := t.Head + "<"
	for i, a := range t.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	s += ">"
	if t.Nullable {
		s += "?"
	}
	return s
}

// Function is a callable signature.
type Function struct {
	Params     []Type
	TypeParams []string
	Returns    Type // nil for vacuum
	Async      bool
	Generator  bool
	Nullable   bool
}

func (t *Function) isType()          {}
func (t *Function) IsNullable() bool { return t.Nullable }
func (t *Function) String() string {
	s := "functio("
	for i, p := range t.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	s += ")"
	if t.Returns != nil {
		s += " -> " + t.Returns.String()
	}
	if t.Nullable {
		s += "?"
	}
	return s
}

// Union is A | B | C.
type Union struct {
	Members  []Type
	Nullable bool
}

func (t *Union) isType()          {}
func (t *Union) IsNullable() bool { return t.Nullable }
func (t *Union) String() string {
	s := ""
	for i, m := range t.Members {
		if i > 0 {
			s += " | "
		}
		s += m.String()
	}
	if t.Nullable {
		s += "?"
	}
	return s
}

// Field is one named, typed member (class field or variant payload slot).
type Field struct {
	Name string
	Type Type
}

// Genus is a record/class: instance and static fields/methods.
type Genus struct {
	Name           string
	Fields         map[string]Type
	Methods        map[string]*Function
	StaticFields   map[string]Type
	StaticMethods  map[string]*Function
	Implements     []string // pactum names this genus declares implet
	Nullable       bool
}

func (t *Genus) isType()          {}
func (t *Genus) IsNullable() bool { return t.Nullable }
func (t *Genus) String() string {
	s := t.Name
	if t.Nullable {
		s += "?"
	}
	return s
}

// Pactum is an interface: declared method signatures only.
type Pactum struct {
	Name     string
	Methods  map[string]*Function
	Nullable bool
}

func (t *Pactum) isType()          {}
func (t *Pactum) IsNullable() bool { return t.Nullable }
func (t *Pactum) String() string {
	s := t.Name
	if t.Nullable {
		s += "?"
	}
	return s
}

// Ordo is an enumeration: member name -> ordinal/value.
type Ordo struct {
	Name     string
	Members  map[string]int64
	Order    []string // declaration order, for deterministic iteration
	Nullable bool
}

func (t *Ordo) isType()          {}
func (t *Ordo) IsNullable() bool { return t.Nullable }
func (t *Ordo) String() string   { return t.Name }

// Discretio is a tagged union: variant name -> ordered field list.
type Discretio struct {
	Name     string
	Variants map[string][]Field
	Order    []string
	Nullable bool
}

func (t *Discretio) isType()          {}
func (t *Discretio) IsNullable() bool { return t.Nullable }
func (t *Discretio) String() string   { return t.Name }

// User is a nominal placeholder used during cross-module annotation
// before the concrete kind (genus/pactum/ordo/discretio) is known.
// Equality with any concrete type of the same name is defined in the
// analyzer's assignability rules (spec.md §4.4).
type User struct {
	Name     string
	Nullable bool
}

func (t *User) isType()          {}
func (t *User) IsNullable() bool { return t.Nullable }
func (t *User) String() string {
	s := t.Name
	if t.Nullable {
		s += "?"
	}
	return s
}

// Unknown is returned whenever resolution could not determine a type;
// analysis continues rather than aborting (spec.md §7).
type Unknown struct {
	Reason string
}

func (t *Unknown) isType()          {}
func (t *Unknown) IsNullable() bool { return true }
func (t *Unknown) String() string   { return "ignotum" }

// Shared primitive singletons.
var (
	Textus   = &Primitive{Name: "textus"}
	Numerus  = &Primitive{Name: "numerus", Bits: 64}
	Fractus  = &Primitive{Name: "fractus", Bits: 64}
	Decimus  = &Primitive{Name: "decimus"}
	Magnus   = &Primitive{Name: "magnus"}
	Bivalens = &Primitive{Name: "bivalens"}
	Nihil    = &Primitive{Name: "nihil", Nullable: true}
	Vacuum   = &Primitive{Name: "vacuum"}
	Octeti   = &Primitive{Name: "octeti"}
	Unresolved = &Unknown{Reason: "unresolved"}
)

// AsNullable returns a copy of t with Nullable set, per spec.md §3.
func AsNullable(t Type) Type {
	switch v := t.(type) {
	case *Primitive:
		c := *v
		c.Nullable = true
		return &c
	case *Generic:
		c := *v
		c.Nullable = true
		return &c
	case *Function:
		c := *v
		c.Nullable = true
		return &c
	case *Genus:
		c := *v
		c.Nullable = true
		return &c
	case *Pactum:
		c := *v
		c.Nullable = true
		return &c
	case *Union:
		c := *v
		c.Nullable = true
		return &c
	case *Ordo:
		c := *v
		c.Nullable = true
		return &c
	case *Discretio:
		c := *v
		c.Nullable = true
		return &c
	case *User:
		c := *v
		c.Nullable = true
		return &c
	default:
		return t
	}
}
