// Package ferrors is the shared diagnostic envelope used across the
// lexer, parser, and semantic analyzer.
//
// Grounded on fons/subsidia/go/errors.go's CompileError/FormatError; the
// envelope shape is generalized from one internal-panic type into the
// public (value, []FabError) result pairs spec.md §6-4 requires, with
// codes prefixed L (lexical), P (parse), S (semantic).
package ferrors

import (
	"fmt"
	"strings"

	"github.com/ianzepp/faber/internal/locus"
)

// FabError is the shared diagnostic shape exposed to code-gen callers.
type FabError struct {
	Code     string      `json:"code"`
	Text     string      `json:"text"`
	Help     string      `json:"help"`
	Position locus.Locus `json:"position"`
}

func (e FabError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.Code, e.Position.String(), e.Text)
}

// Lexical error codes.
const (
	LUnterminatedString  = "L001"
	LUnterminatedComment = "L002"
	LUnexpectedChar      = "L003"
	LInvalidHex          = "L004"
	LInvalidEscape       = "L005"
)

// Parse error codes.
const (
	PUnexpectedToken  = "P001"
	PMissingKeyword   = "P002"
	PInvalidVariable  = "P003"
	PConflictingAsync = "P004"
)

// Semantic error codes.
const (
	SUndefinedVariable    = "S001"
	SImmutableReassign    = "S002"
	STypeMismatch         = "S003"
	SModuleNotFound       = "S004"
	SModuleCycle          = "S005"
	SModuleParseError     = "S006"
	SExportNotFound       = "S007"
	SDuplicateDeclaration = "S008"
	SUnknownVariant       = "S009"
)

// Lexical builds an "L"-coded error.
func Lexical(code, text, help string, pos locus.Locus) FabError {
	return FabError{Code: code, Text: text, Help: help, Position: pos}
}

// Parse builds a "P"-coded error.
func Parse(code, text, help string, pos locus.Locus) FabError {
	return FabError{Code: code, Text: text, Help: help, Position: pos}
}

// Semantic builds an "S"-coded error.
func Semantic(code, text, help string, pos locus.Locus) FabError {
	return FabError{Code: code, Text: text, Help: help, Position: pos}
}

// CompileError is an internal panic type for invariant violations only -
// a missing child node, a scanner state that cannot occur.
// semantic.Analyze recovers it at its boundary and reports it as a
// FabError; Tokenize and Parse do not recover it.
type CompileError struct {
	Message  string
	Locus    locus.Locus
	Filename string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.Filename, e.Locus.String(), e.Message)
}

// Format renders a human-friendly message with a source-line pointer,
// grounded on fons/subsidia/go/errors.go's FormatError.
func Format(err error, source string, filename string) string {
	var ce *CompileError
	var line, col int
	var msg string

	if asCompileError(err, &ce) {
		line, col, msg = ce.Locus.Linea, ce.Locus.Columna, ce.Message
	} else {
		msg = err.Error()
		return msg
	}

	lines := strings.Split(source, "\n")
	var srcLine string
	if line-1 >= 0 && line-1 < len(lines) {
		srcLine = lines[line-1]
	}
	pointer := strings.Repeat(" ", maxInt(0, col-1)) + "^"

	return strings.Join([]string{
		fmt.Sprintf("%s:%d:%d: error: %s", filename, line, col, msg),
		"",
		fmt.Sprintf("  %s", srcLine),
		fmt.Sprintf("  %s", pointer),
	}, "\n")
}

func asCompileError(err error, target **CompileError) bool {
	if ce, ok := err.(*CompileError); ok {
		*target = ce
		return true
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
