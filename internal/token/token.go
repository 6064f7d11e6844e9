// Package token defines the tagged token values produced by the lexer.
//
// Grounded on fons/nanus-go/subsidia/ast.go's Token/TokenTag constants;
// expanded into a closed Kind enumeration per spec (bigint, template
// strings, keyword identity carried on the token, EOF terminal).
package token

import "github.com/ianzepp/faber/internal/locus"

// Kind is a closed enumeration over every token shape the lexer emits.
type Kind int

const (
	EOF Kind = iota
	Identifier
	Numerus     // integer/decimal literal
	Magnus      // bigint literal (trailing 'n' suffix)
	Textus      // string literal
	Scriptum    // template string literal (may contain ${...} interpolation)
	Keyword     // canonical lowercase keyword; Valor carries which one
	Operator    // +, -, ==, =>, etc.
	Punctuator  // ( ) { } [ ] , . : ; etc.
	Comment     // // line or /* block */ comment
	Newline
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Identifier:
		return "Identifier"
	case Numerus:
		return "Numerus"
	case Magnus:
		return "Magnus"
	case Textus:
		return "Textus"
	case Scriptum:
		return "Scriptum"
	case Keyword:
		return "Keyword"
	case Operator:
		return "Operator"
	case Punctuator:
		return "Punctuator"
	case Comment:
		return "Comment"
	case Newline:
		return "Newline"
	default:
		return "Ignotum"
	}
}

// Token is a tagged lexical unit: kind, the original source slice, and
// its starting position. Identifiers that match a keyword are emitted
// as Kind Keyword carrying the canonical lowercase spelling in Valor.
type Token struct {
	Tag   Kind        `json:"tag"`
	Valor string      `json:"valor"`
	Locus locus.Locus `json:"locus"`
}

// Is reports whether the token has the given kind and, if valor is
// supplied, that exact text.
func (t Token) Is(tag Kind, valor ...string) bool {
	if t.Tag != tag {
		return false
	}
	if len(valor) > 0 {
		return t.Valor == valor[0]
	}
	return true
}

// Error carries a lexical diagnostic. Codes are prefixed "L" per spec §6/§7.
type Error struct {
	Code  string      `json:"code"`
	Text  string      `json:"text"`
	Help  string      `json:"help"`
	Locus locus.Locus `json:"position"`
}

func (e Error) Error() string {
	return e.Text
}
