// Package intrinsics is the static signature catalog for the "norma"
// module family: the resolver consults it so a call like
// `importa ex "norma/solum" privata Lege` type-checks against the real
// parameter/return types instead of binding every intrinsic import to
// an unresolved type.
//
// Grounded on fons/norma-go's HAL packages (hal/solum, hal/consolum,
// hal/processus) and its json/yaml/toml encoders: each exported Go
// function there becomes one catalog entry, by submodule name. The
// compiler never calls these functions itself - target code generation
// is out of scope (SPEC_FULL.md's AMBIENT STACK/DOMAIN STACK) - the
// catalog exists purely so "norma" imports resolve to real signatures
// during semantic analysis.
package intrinsics

import "github.com/ianzepp/faber/internal/semtype"

func fn(params []semtype.Type, returns semtype.Type) *semtype.Function {
	return &semtype.Function{Params: params, Returns: returns}
}

var textusLista = &semtype.Generic{Head: "lista", Args: []semtype.Type{semtype.Textus}}
var octetiLista = &semtype.Generic{Head: "lista", Args: []semtype.Type{semtype.Octeti}}

// Catalog maps a "norma" submodule name (the part after "norma/") to
// its exported functions' signatures.
var Catalog = map[string]map[string]*semtype.Function{
	"solum": {
		"Lege":         fn([]semtype.Type{semtype.Textus}, semtype.Textus),
		"Hauri":        fn([]semtype.Type{semtype.Textus}, octetiLista),
		"Carpe":        fn([]semtype.Type{semtype.Textus}, textusLista),
		"Scribe":       fn([]semtype.Type{semtype.Textus, semtype.Textus}, semtype.Vacuum),
		"Funde":        fn([]semtype.Type{semtype.Textus, octetiLista}, semtype.Vacuum),
		"Appone":       fn([]semtype.Type{semtype.Textus, semtype.Textus}, semtype.Vacuum),
		"Exstat":       fn([]semtype.Type{semtype.Textus}, semtype.Bivalens),
		"Dele":         fn([]semtype.Type{semtype.Textus}, semtype.Vacuum),
		"Exscribe":     fn([]semtype.Type{semtype.Textus, semtype.Textus}, semtype.Vacuum),
		"Renomina":     fn([]semtype.Type{semtype.Textus, semtype.Textus}, semtype.Vacuum),
		"Tange":        fn([]semtype.Type{semtype.Textus}, semtype.Vacuum),
		"Crea":         fn([]semtype.Type{semtype.Textus}, semtype.Vacuum),
		"Enumera":      fn([]semtype.Type{semtype.Textus}, textusLista),
		"Amputa":       fn([]semtype.Type{semtype.Textus}, semtype.Vacuum),
		"Directorium":  fn([]semtype.Type{semtype.Textus}, semtype.Textus),
		"Basis":        fn([]semtype.Type{semtype.Textus}, semtype.Textus),
		"Extensio":     fn([]semtype.Type{semtype.Textus}, semtype.Textus),
		"Absolve":      fn([]semtype.Type{semtype.Textus}, semtype.Textus),
		"Domus":        fn(nil, semtype.Textus),
		"Temporarium":  fn(nil, semtype.Textus),
	},
	"consolum": {
		"Lege":             fn(nil, semtype.Textus),
		"Hauri":            fn([]semtype.Type{semtype.Numerus}, octetiLista),
		"Scribe":           fn([]semtype.Type{semtype.Textus}, semtype.Vacuum),
		"Dic":              fn([]semtype.Type{semtype.Textus}, semtype.Vacuum),
		"Mone":             fn([]semtype.Type{semtype.Textus}, semtype.Vacuum),
		"Vide":             fn([]semtype.Type{semtype.Textus}, semtype.Vacuum),
		"Funde":            fn([]semtype.Type{octetiLista}, semtype.Vacuum),
		"EstTerminale":     fn(nil, semtype.Bivalens),
		"EstTerminaleOutput": fn(nil, semtype.Bivalens),
	},
	"processus": {
		"Exsequi":    fn([]semtype.Type{semtype.Textus}, semtype.Textus),
		"Lege":       fn([]semtype.Type{semtype.Textus}, semtype.Textus),
		"Scribe":     fn([]semtype.Type{semtype.Textus, semtype.Textus}, semtype.Vacuum),
		"Sedes":      fn(nil, semtype.Textus),
		"Muta":       fn([]semtype.Type{semtype.Textus}, semtype.Vacuum),
		"Identitas":  fn(nil, semtype.Numerus),
		"Argumenta":  fn(nil, textusLista),
		"Exi":        fn([]semtype.Type{semtype.Numerus}, semtype.Vacuum),
	},
	"json": {
		"Pange":     fn([]semtype.Type{semtype.Unresolved, semtype.Numerus}, semtype.Textus),
		"Solve":     fn([]semtype.Type{semtype.Textus}, semtype.Unresolved),
		"Tempta":    fn([]semtype.Type{semtype.Textus}, semtype.Unresolved),
		"EstNihil":  fn([]semtype.Type{semtype.Unresolved}, semtype.Bivalens),
		"UtTextus":  fn([]semtype.Type{semtype.Unresolved, semtype.Textus}, semtype.Textus),
		"UtNumerus": fn([]semtype.Type{semtype.Unresolved, semtype.Numerus}, semtype.Numerus),
		"Cape":      fn([]semtype.Type{semtype.Unresolved, semtype.Textus}, semtype.Unresolved),
		"Inveni":    fn([]semtype.Type{semtype.Unresolved, semtype.Textus}, semtype.Unresolved),
	},
	"yaml": {
		"Pange":     fn([]semtype.Type{semtype.Unresolved}, semtype.Textus),
		"Solve":     fn([]semtype.Type{semtype.Textus}, semtype.Unresolved),
		"Tempta":    fn([]semtype.Type{semtype.Textus}, semtype.Unresolved),
		"Collige":   fn([]semtype.Type{semtype.Textus}, &semtype.Generic{Head: "lista", Args: []semtype.Type{semtype.Unresolved}}),
		"Cape":      fn([]semtype.Type{semtype.Unresolved, semtype.Textus}, semtype.Unresolved),
		"Inveni":    fn([]semtype.Type{semtype.Unresolved, semtype.Textus}, semtype.Unresolved),
	},
	"toml": {
		"Pange":     fn([]semtype.Type{semtype.Unresolved}, semtype.Textus),
		"Solve":     fn([]semtype.Type{semtype.Textus}, semtype.Unresolved),
		"Tempta":    fn([]semtype.Type{semtype.Textus}, semtype.Unresolved),
		"Cape":      fn([]semtype.Type{semtype.Unresolved, semtype.Textus}, semtype.Unresolved),
		"Inveni":    fn([]semtype.Type{semtype.Unresolved, semtype.Textus}, semtype.Unresolved),
	},
}

// Lookup reports the signature of an intrinsic function, and whether
// the submodule/name pair is known.
func Lookup(submodule, name string) (*semtype.Function, bool) {
	funcs, ok := Catalog[submodule]
	if !ok {
		return nil, false
	}
	f, ok := funcs[name]
	return f, ok
}
