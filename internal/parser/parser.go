// Package parser is the recursive-descent, Pratt-style parser that
// turns a token stream into the package ast tree.
//
// Grounded on fons/nanus-go/subsidia/parser.go: the same peek/advance/
// match/expect primitives, the same precedence-climbing expression
// parser, and the same panic-based internal error signalling, recovered
// per statement inside Parse (recoverStmt) - the public API never panics to its
// caller, per spec.md §9's error-envelope design note.
package parser

import (
	"strconv"
	"strings"

	"github.com/ianzepp/faber/internal/ast"
	"github.com/ianzepp/faber/internal/ferrors"
	"github.com/ianzepp/faber/internal/locus"
	"github.com/ianzepp/faber/internal/token"
)

// Precedence is the binary-operator precedence table for the Pratt parser.
var Precedence = map[string]int{
	"=": 1, "+=": 1, "-=": 1, "*=": 1, "/=": 1,
	"vel": 2, "??": 2,
	"aut": 3, "||": 3,
	"et": 4, "&&": 4,
	"==": 5, "!=": 5, "===": 5, "!==": 5,
	"<": 6, ">": 6, "<=": 6, ">=": 6, "inter": 6, "intra": 6,
	"+": 7, "-": 7,
	"*": 8, "/": 8, "%": 8,
	"qua": 9, "innatum": 9, "numeratum": 9, "fractatum": 9, "textatum": 9, "bivalentum": 9,
}

var unaryOps = map[string]struct{}{
	"-": {}, "!": {}, "~": {}, "non": {}, "nihil": {}, "nonnihil": {},
	"positivum": {}, "negativum": {}, "nulla": {}, "nonnulla": {},
}

var assignOps = map[string]struct{}{
	"=": {}, "+=": {}, "-=": {}, "*=": {}, "/=": {},
}

// nonExprFollow lists keywords that cannot begin an expression; used to
// decide whether a token in unaryOps is acting as an operator or as an
// unrelated keyword (e.g. bare `si` starting a statement).
var nonExprFollow = map[string]struct{}{
	"qua": {}, "innatum": {}, "et": {}, "aut": {}, "vel": {}, "sic": {}, "secus": {}, "inter": {}, "intra": {},
	"perge": {}, "rumpe": {}, "redde": {}, "iace": {}, "mori": {},
	"si": {}, "dum": {}, "ex": {}, "de": {}, "elige": {}, "discerne": {}, "custodi": {}, "tempta": {},
	"functio": {}, "genus": {}, "pactum": {}, "ordo": {}, "discretio": {},
	"casu": {}, "ceterum": {}, "importa": {}, "incipit": {}, "incipiet": {}, "probandum": {}, "proba": {},
}

// statementKeywords marks tokens that terminate a bare expression list
// (e.g. after `redde` or `scribe` with no trailing argument).
var statementKeywords = map[string]struct{}{
	"si": {}, "secus": {}, "dum": {}, "fac": {}, "ex": {}, "de": {}, "in": {}, "elige": {}, "discerne": {}, "custodi": {},
	"tempta": {}, "cape": {}, "demum": {}, "redde": {}, "rumpe": {}, "perge": {}, "iace": {}, "mori": {},
	"scribe": {}, "vide": {}, "mone": {}, "adfirma": {}, "functio": {}, "genus": {}, "pactum": {}, "ordo": {},
	"discretio": {}, "varia": {}, "fixum": {}, "incipit": {}, "incipiet": {}, "probandum": {}, "proba": {},
	"casu": {}, "ceterum": {}, "typus": {}, "abstractus": {}, "cura": {},
}

// Result is the parser's output envelope: a partial tree plus any
// errors encountered. Tree is never nil even when Errors is non-empty.
type Result struct {
	Tree   *ast.Program
	Errors []ferrors.FabError
}

// Parse never panics: internal parse errors are recovered at statement
// boundaries and accumulated into Result.Errors.
func Parse(tokens []token.Token, filename string) Result {
	p := &parser{tokens: filterTrivia(tokens), filename: filename}
	return p.parseProgram()
}

func filterTrivia(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Tag == token.Comment || t.Tag == token.Newline {
			continue
		}
		out = append(out, t)
	}
	return out
}

// internalError is the panic payload used for control-flow unwinding
// to the nearest recovery point; it must never escape Parse.
type internalError struct {
	ferrors.FabError
}

type parser struct {
	tokens   []token.Token
	pos      int
	filename string
	errors   []ferrors.FabError
}

func (p *parser) parseProgram() (result Result) {
	prog := &ast.Program{Locus: locus.Nova(1, 1, 0)}

	defer func() {
		result = Result{Tree: prog, Errors: p.errors}
	}()

	for !p.check(token.EOF) {
		stmt := p.recoverStmt()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return
}

// recoverStmt parses one top-level or block statement, recovering from
// an internal panic by skipping to the next plausible statement start.
func (p *parser) recoverStmt() (stmt ast.Stmt) {
	start := p.pos
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(internalError)
			if !ok {
				panic(r)
			}
			p.errors = append(p.errors, ie.FabError)
			p.skipToRecoveryPoint()
			if p.pos == start {
				p.advance()
			}
			stmt = nil
		}
	}()
	return p.parseStmt()
}

func (p *parser) skipToRecoveryPoint() {
	for !p.check(token.EOF) && !p.check(token.Punctuator, "}") {
		if p.isDeclarationKeyword() || p.isStatementKeyword() {
			return
		}
		p.advance()
	}
}

func (p *parser) peek(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *parser) advance() token.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) check(tag token.Kind, valor ...string) bool {
	tok := p.peek(0)
	if tok.Tag != tag {
		return false
	}
	if len(valor) > 0 && tok.Valor != valor[0] {
		return false
	}
	return true
}

func (p *parser) match(tag token.Kind, valor ...string) *token.Token {
	if p.check(tag, valor...) {
		tok := p.advance()
		return &tok
	}
	return nil
}

func (p *parser) expect(tag token.Kind, valor ...string) token.Token {
	tok := p.match(tag, valor...)
	if tok == nil {
		got := p.peek(0)
		msg := tag.String()
		if len(valor) > 0 {
			msg = valor[0]
		}
		panic(p.err(ferrors.PUnexpectedToken, "expected "+msg+", got '"+got.Valor+"'", "", got.Locus))
	}
	return *tok
}

func (p *parser) err(code, text, help string, loc locus.Locus) internalError {
	return internalError{ferrors.FabError{Code: code, Text: text, Help: help, Position: loc}}
}

// expectName accepts an identifier or a keyword used as a name - many
// keywords double as ordinary identifiers in member/field position.
func (p *parser) expectName() token.Token {
	tok := p.peek(0)
	if tok.Tag == token.Identifier || tok.Tag == token.Keyword {
		return p.advance()
	}
	panic(p.err(ferrors.PUnexpectedToken, "expected identifier, got '"+tok.Valor+"'", "", tok.Locus))
}

func (p *parser) checkName() bool {
	tok := p.peek(0)
	return tok.Tag == token.Identifier || tok.Tag == token.Keyword
}

func (p *parser) isStatementKeyword() bool {
	if !p.check(token.Keyword) {
		return false
	}
	_, ok := statementKeywords[p.peek(0).Valor]
	return ok
}

func (p *parser) isDeclarationKeyword() bool {
	if !p.check(token.Keyword) {
		return false
	}
	switch p.peek(0).Valor {
	case "functio", "genus", "pactum", "ordo", "discretio", "typus",
		"varia", "fixum", "incipit", "incipiet", "probandum", "abstractus", "importa":
		return true
	}
	return false
}

func numberLooksFractional(valor string) bool {
	return strings.Contains(valor, ".")
}

func quoteOrRaw(tok token.Token) string {
	if tok.Tag == token.Textus {
		return strconv.Quote(tok.Valor)
	}
	return tok.Valor
}
