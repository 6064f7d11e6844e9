package parser

import (
	"github.com/ianzepp/faber/internal/ast"
	"github.com/ianzepp/faber/internal/ferrors"
	"github.com/ianzepp/faber/internal/lexer"
	"github.com/ianzepp/faber/internal/locus"
	"github.com/ianzepp/faber/internal/token"
)

func (p *parser) parseTypus() ast.Typus {
	nullable := p.match(token.Keyword, "si") != nil
	typus := p.parseTypusPrimary()
	if nullable {
		typus = &ast.TypusNullabilis{Inner: typus}
	}

	if p.match(token.Operator, "|") != nil {
		members := []ast.Typus{typus}
		for {
			members = append(members, p.parseTypusPrimary())
			if p.match(token.Operator, "|") == nil {
				break
			}
		}
		typus = &ast.TypusUnio{Members: members}
	}

	return typus
}

func (p *parser) parseTypusPrimary() ast.Typus {
	nomen := p.expect(token.Identifier).Valor
	if p.match(token.Operator, "<") != nil {
		var args []ast.Typus
		for {
			args = append(args, p.parseTypus())
			if p.match(token.Punctuator, ",") == nil {
				break
			}
		}
		p.expect(token.Operator, ">")
		return &ast.TypusGenericus{Nomen: nomen, Args: args}
	}
	return &ast.TypusNomen{Nomen: nomen}
}

func (p *parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseUnary()

	for {
		tok := p.peek(0)
		op := tok.Valor
		prec, ok := Precedence[op]
		if !ok || prec < minPrec {
			break
		}
		if tok.Tag != token.Operator && tok.Tag != token.Keyword {
			break
		}

		p.advance()

		switch op {
		case "qua":
			typus := p.parseTypus()
			left = &ast.QuaExpr{Locus: tok.Locus, Expr: left, Typus: typus}
			continue
		case "innatum":
			typus := p.parseTypus()
			left = &ast.InnatumExpr{Locus: tok.Locus, Expr: left, Typus: typus}
			continue
		case "numeratum", "fractatum", "textatum", "bivalentum":
			var fallback ast.Expr
			if (op == "numeratum" || op == "fractatum") && p.match(token.Keyword, "vel") != nil {
				fallback = p.parseUnary()
			}
			left = &ast.ConversioExpr{Locus: tok.Locus, Species: op, Expr: left, Fallback: fallback}
			continue
		}

		right := p.parseExpr(prec + 1)

		if _, isAssign := assignOps[op]; isAssign {
			left = &ast.AssignatioExpr{Locus: tok.Locus, Signum: op, Sin: left, Dex: right}
		} else {
			left = &ast.BinariaExpr{Locus: tok.Locus, Signum: op, Sin: left, Dex: right}
		}
	}

	if minPrec <= 2 && p.match(token.Keyword, "sic") != nil {
		cons := p.parseExpr(0)
		p.expect(token.Keyword, "secus")
		alt := p.parseExpr(0)
		left = &ast.CondicioExpr{Locus: left.Pos(), Cond: left, Cons: cons, Alt: alt}
	}

	if p.match(token.Operator, "..") != nil || p.check(token.Keyword, "usque") {
		inclusive := p.match(token.Keyword, "usque") != nil
		end := p.parseExpr(0)
		left = &ast.AmbitusExpr{Locus: left.Pos(), Start: left, End: end, Inclusive: inclusive}
	}

	return left
}

func (p *parser) parseUnary() ast.Expr {
	tok := p.peek(0)

	if tok.Tag == token.Operator || tok.Tag == token.Keyword {
		if _, ok := unaryOps[tok.Valor]; ok {
			next := p.peek(1)
			_, nextIsNonExpr := nonExprFollow[next.Valor]
			_, nextIsUnary := unaryOps[next.Valor]
			canBeUnary := next.Tag == token.Identifier ||
				(next.Tag == token.Keyword && !nextIsNonExpr) ||
				next.Tag == token.Numerus || next.Tag == token.Magnus || next.Tag == token.Textus || next.Tag == token.Scriptum ||
				next.Valor == "(" || next.Valor == "[" || next.Valor == "{" || nextIsUnary

			if canBeUnary {
				p.advance()
				arg := p.parseUnary()
				return &ast.UnariaExpr{Locus: tok.Locus, Signum: tok.Valor, Arg: arg, Prefix: true}
			}
		}
	}

	if p.match(token.Keyword, "cede") != nil {
		arg := p.parseUnary()
		return &ast.CedeExpr{Locus: tok.Locus, Arg: arg}
	}

	return p.parsePostfix()
}

func (p *parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()

	for {
		tok := p.peek(0)

		if p.match(token.Punctuator, "(") != nil {
			args := p.parseArgs()
			p.expect(token.Punctuator, ")")
			expr = &ast.VocatioExpr{Locus: tok.Locus, Callee: expr, Args: args}
			continue
		}

		if p.match(token.Punctuator, ".") != nil {
			name := p.expectName().Valor
			prop := &ast.LitteraExpr{Locus: p.peek(0).Locus, Species: ast.LitteraTextus, Valor: name}
			expr = &ast.MembrumExpr{Locus: tok.Locus, Obj: expr, Prop: prop}
			continue
		}

		if p.match(token.Operator, "?.") != nil {
			name := p.expectName().Valor
			prop := &ast.LitteraExpr{Locus: p.peek(0).Locus, Species: ast.LitteraTextus, Valor: name}
			expr = &ast.MembrumExpr{Locus: tok.Locus, Obj: expr, Prop: prop, Optional: true}
			continue
		}

		if p.match(token.Operator, "!.") != nil {
			name := p.expectName().Valor
			prop := &ast.LitteraExpr{Locus: p.peek(0).Locus, Species: ast.LitteraTextus, Valor: name}
			expr = &ast.MembrumExpr{Locus: tok.Locus, Obj: expr, Prop: prop, NonNull: true}
			continue
		}

		if tok.Valor == "!" && p.peek(1).Valor == "[" {
			p.advance()
			p.advance()
			prop := p.parseExpr(0)
			p.expect(token.Punctuator, "]")
			expr = &ast.MembrumExpr{Locus: tok.Locus, Obj: expr, Prop: prop, Computed: true, NonNull: true}
			continue
		}

		if p.match(token.Punctuator, "[") != nil {
			prop := p.parseExpr(0)
			p.expect(token.Punctuator, "]")
			expr = &ast.MembrumExpr{Locus: tok.Locus, Obj: expr, Prop: prop, Computed: true}
			continue
		}

		break
	}

	return expr
}

func (p *parser) parsePrimary() ast.Expr {
	tok := p.peek(0)

	if p.match(token.Punctuator, "(") != nil {
		expr := p.parseExpr(0)
		p.expect(token.Punctuator, ")")
		return expr
	}

	if p.match(token.Punctuator, "[") != nil {
		var elems []ast.Expr
		if !p.check(token.Punctuator, "]") {
			for {
				elems = append(elems, p.parseExpr(0))
				if p.match(token.Punctuator, ",") == nil {
					break
				}
			}
		}
		p.expect(token.Punctuator, "]")
		return &ast.SeriesExpr{Locus: tok.Locus, Elementa: elems}
	}

	if p.match(token.Punctuator, "{") != nil {
		var props []ast.ObiectumProp
		if !p.check(token.Punctuator, "}") {
			for {
				loc := p.peek(0).Locus
				var key ast.Expr
				computed := false

				if p.match(token.Punctuator, "[") != nil {
					key = p.parseExpr(0)
					p.expect(token.Punctuator, "]")
					computed = true
				} else if p.check(token.Textus) {
					key = &ast.LitteraExpr{Locus: loc, Species: ast.LitteraTextus, Valor: p.advance().Valor}
				} else {
					key = &ast.LitteraExpr{Locus: loc, Species: ast.LitteraTextus, Valor: p.expectName().Valor}
				}

				var valor ast.Expr
				if p.match(token.Punctuator, ":") != nil {
					valor = p.parseExpr(0)
				} else {
					if computed {
						panic(p.err(ferrors.PUnexpectedToken, "expected ':' after computed key", "", loc))
					}
					keyName := key.(*ast.LitteraExpr).Valor
					valor = &ast.NomenExpr{Locus: loc, Valor: keyName}
				}

				props = append(props, ast.ObiectumProp{Key: key, Valor: valor, Computed: computed})

				if p.match(token.Punctuator, ",") == nil {
					break
				}
			}
		}
		p.expect(token.Punctuator, "}")
		return &ast.ObiectumExpr{Locus: tok.Locus, Props: props}
	}

	if tok.Tag == token.Keyword {
		switch tok.Valor {
		case "verum":
			p.advance()
			return &ast.LitteraExpr{Locus: tok.Locus, Species: ast.LitteraVerum, Valor: "verum"}
		case "falsum":
			p.advance()
			return &ast.LitteraExpr{Locus: tok.Locus, Species: ast.LitteraFalsum, Valor: "falsum"}
		case "nihil":
			p.advance()
			return &ast.LitteraExpr{Locus: tok.Locus, Species: ast.LitteraNihil, Valor: "nihil"}
		case "ego":
			p.advance()
			return &ast.EgoExpr{Locus: tok.Locus}
		case "novum":
			return p.parseNovum()
		case "finge":
			return p.parseFinge()
		case "clausura":
			return p.parseClausura()
		default:
			p.advance()
			return &ast.NomenExpr{Locus: tok.Locus, Valor: tok.Valor}
		}
	}

	if tok.Tag == token.Numerus {
		p.advance()
		species := ast.LitteraNumerus
		if numberLooksFractional(tok.Valor) {
			species = ast.LitteraFractus
		}
		return &ast.LitteraExpr{Locus: tok.Locus, Species: species, Valor: tok.Valor}
	}

	if tok.Tag == token.Magnus {
		p.advance()
		return &ast.LitteraExpr{Locus: tok.Locus, Species: ast.LitteraMagnus, Valor: tok.Valor}
	}

	if tok.Tag == token.Textus {
		p.advance()
		return &ast.LitteraExpr{Locus: tok.Locus, Species: ast.LitteraTextus, Valor: tok.Valor}
	}

	if tok.Tag == token.Scriptum {
		p.advance()
		return parseTemplateLiteral(tok)
	}

	if tok.Tag == token.Identifier {
		p.advance()
		return &ast.NomenExpr{Locus: tok.Locus, Valor: tok.Valor}
	}

	panic(p.err(ferrors.PUnexpectedToken, "unexpected token '"+tok.Valor+"'", "", tok.Locus))
}

func (p *parser) parseArgs() []ast.Expr {
	var args []ast.Expr
	if p.check(token.Punctuator, ")") {
		return args
	}
	for {
		args = append(args, p.parseExpr(0))
		if p.match(token.Punctuator, ",") == nil {
			break
		}
	}
	return args
}

func (p *parser) parseNovum() ast.Expr {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "novum")
	callee := p.parsePrimary()
	var args []ast.Expr
	if p.match(token.Punctuator, "(") != nil {
		args = p.parseArgs()
		p.expect(token.Punctuator, ")")
	}
	var init ast.Expr
	if p.check(token.Punctuator, "{") {
		init = p.parsePrimary()
	}
	return &ast.NovumExpr{Locus: loc, Callee: callee, Args: args, Init: init}
}

func (p *parser) parseFinge() ast.Expr {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "finge")
	variant := p.expect(token.Identifier).Valor
	p.expect(token.Punctuator, "{")

	var campi []ast.FingeCampus
	if !p.check(token.Punctuator, "}") {
		for {
			name := p.expectName().Valor
			p.expect(token.Punctuator, ":")
			valor := p.parseExpr(0)
			campi = append(campi, ast.FingeCampus{Nomen: name, Valor: valor})
			if p.match(token.Punctuator, ",") == nil {
				break
			}
		}
	}
	p.expect(token.Punctuator, "}")
	return &ast.FingeExpr{Locus: loc, Variant: variant, Campi: campi}
}

func (p *parser) parseClausura() ast.Expr {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "clausura")

	var params []ast.Param
	if p.check(token.Identifier) {
		for {
			nomen := p.expect(token.Identifier).Valor
			var typus ast.Typus
			if p.match(token.Punctuator, ":") != nil {
				typus = p.parseTypus()
			}
			params = append(params, ast.Param{Nomen: nomen, Typus: typus})
			if p.match(token.Punctuator, ",") == nil {
				break
			}
		}
	}

	var corpus interface{}
	if p.check(token.Punctuator, "{") {
		corpus = p.parseBlock().(*ast.BlockStmt)
	} else {
		p.expect(token.Punctuator, ":")
		corpus = p.parseExpr(0)
	}

	return &ast.ClausuraExpr{Locus: loc, Params: params, Corpus: corpus}
}

// parseTemplateLiteral splits a raw `...${...}...` token.Scriptum value
// into literal text segments and interpolated sub-expressions, each
// re-lexed and re-parsed independently. Grounded on spec.md §4.2's
// template-string interpolation rule.
func parseTemplateLiteral(tok token.Token) ast.Expr {
	raw := tok.Valor
	var partes []string
	var args []ast.Expr

	var buf []byte
	i := 0
	for i < len(raw) {
		if raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{' {
			partes = append(partes, string(buf))
			buf = nil
			depth := 1
			j := i + 2
			start := j
			for j < len(raw) && depth > 0 {
				switch raw[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth == 0 {
					break
				}
				j++
			}
			exprSrc := raw[start:j]
			args = append(args, parseSubExpr(exprSrc, tok.Locus))
			i = j + 1
			continue
		}
		buf = append(buf, raw[i])
		i++
	}
	partes = append(partes, string(buf))

	return &ast.ScriptumExpr{Locus: tok.Locus, Partes: partes, Args: args}
}

// parseSubExpr parses one interpolated expression in isolation,
// reusing the tokenizer the top-level lexer already applied. A parse
// failure here yields a bare-name placeholder rather than aborting the
// whole template, consistent with the non-throwing pipeline.
func parseSubExpr(src string, fallback locus.Locus) (result ast.Expr) {
	defer func() {
		if recover() != nil {
			result = &ast.NomenExpr{Locus: fallback, Valor: src}
		}
	}()
	res := lexer.Tokenize(src, "<template>")
	p2 := &parser{tokens: filterTrivia(res.Tokens)}
	return p2.parseExpr(0)
}
