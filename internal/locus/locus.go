// Package locus holds the source-position value threaded through every
// stage of the compiler.
//
// Etymology: "locus" - place. Every token, AST node, and diagnostic
// carries one.
package locus

import "fmt"

// Locus is an immutable source position. Line and Column are 1-based;
// Offset is a 0-based byte offset into the source text.
type Locus struct {
	Linea   int `json:"linea"`
	Columna int `json:"columna"`
	Index   int `json:"index"`
}

// Nova constructs a Locus. Panics if line or column are non-positive -
// that indicates a scanner bug, not a user-facing error.
func Nova(linea, columna, index int) Locus {
	if linea < 1 || columna < 1 || index < 0 {
		panic(fmt.Sprintf("locus: invalid position line=%d col=%d offset=%d", linea, columna, index))
	}
	return Locus{Linea: linea, Columna: columna, Index: index}
}

func (l Locus) String() string {
	return fmt.Sprintf("%d:%d", l.Linea, l.Columna)
}

// Ante reports whether l comes strictly before alter in the byte stream.
func (l Locus) Ante(alter Locus) bool {
	return l.Index < alter.Index
}

// Nulla is the zero position, used for synthesized nodes that have no
// real source location.
var Nulla = Locus{Linea: 1, Columna: 1, Index: 0}
