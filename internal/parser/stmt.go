package parser

import (
	"github.com/ianzepp/faber/internal/ast"
	"github.com/ianzepp/faber/internal/ferrors"
	"github.com/ianzepp/faber/internal/locus"
	"github.com/ianzepp/faber/internal/token"
)

func (p *parser) parseStmt() ast.Stmt {
	publica := false

	for p.match(token.Punctuator, "@") != nil {
		pub := p.parseAnnotation()
		if pub {
			publica = true
		}
	}

	if p.match(token.Punctuator, "§") != nil {
		return p.parseSection()
	}

	tok := p.peek(0)
	if tok.Tag == token.Keyword {
		switch tok.Valor {
		case "varia", "fixum":
			return p.parseVariableDecl(publica)
		case "ex":
			return p.parseForEx()
		case "de":
			return p.parseForDe()
		case "functio":
			return p.parseFunctionDecl(publica)
		case "abstractus":
			p.advance()
			if p.check(token.Keyword, "genus") {
				return p.parseGenusDecl(publica, true)
			}
			panic(p.err(ferrors.PMissingKeyword, "expected 'genus' after 'abstractus'", "", p.peek(0).Locus))
		case "genus":
			return p.parseGenusDecl(publica, false)
		case "pactum":
			return p.parsePactumDecl(publica)
		case "ordo":
			return p.parseOrdoDecl(publica)
		case "discretio":
			return p.parseDiscretioDecl(publica)
		case "typus":
			return p.parseTypeAliasDecl(publica)
		case "in":
			return p.parseInStmt()
		case "si":
			return p.parseIf()
		case "dum":
			return p.parseWhile()
		case "elige":
			return p.parseSwitch()
		case "discerne":
			return p.parseDiscerne()
		case "custodi":
			return p.parseGuard()
		case "tempta":
			return p.parseTry()
		case "cura":
			return p.parseCuraStmt()
		case "redde":
			return p.parseReturn()
		case "iace", "mori":
			return p.parseThrowOrPanic()
		case "scribe", "vide", "mone":
			return p.parseOutput()
		case "adfirma":
			return p.parseAssert()
		case "rumpe":
			loc := p.advance().Locus
			return &ast.BreakStmt{Locus: loc}
		case "perge":
			loc := p.advance().Locus
			return &ast.ContinueStmt{Locus: loc}
		case "incipit", "incipiet":
			return p.parseEntry()
		case "probandum":
			return p.parseTestGroup()
		case "proba":
			return p.parseTest()
		case "importa":
			return p.parseImport()
		}
	}

	if p.check(token.Punctuator, "{") {
		return p.parseBlock()
	}

	return p.parseExprStmt()
}

func (p *parser) parseSection() ast.Stmt {
	tok := p.peek(0)
	if tok.Tag != token.Identifier && tok.Tag != token.Keyword {
		panic(p.err(ferrors.PUnexpectedToken, "expected keyword after §", "", tok.Locus))
	}
	kw := p.advance().Valor
	if kw != "sectio" {
		panic(p.err(ferrors.PUnexpectedToken, "unknown § keyword: "+kw, "", tok.Locus))
	}
	loc := tok.Locus
	p.expect(token.Textus) // section name; consumed and discarded
	return &ast.ExprStmt{Locus: loc, Expr: &ast.LitteraExpr{Locus: loc, Species: ast.LitteraNihil, Valor: "nihil"}}
}

// parseAnnotation dispatches a single @name annotation, returning
// whether it marks the following declaration public.
func (p *parser) parseAnnotation() bool {
	tok := p.peek(0)
	if tok.Tag != token.Identifier && tok.Tag != token.Keyword {
		panic(p.err(ferrors.PUnexpectedToken, "expected keyword after @", "", tok.Locus))
	}
	kw := p.advance().Valor
	switch kw {
	case "publica", "publicum":
		return true
	case "privata":
		return false
	default:
		p.skipAnnotationArgs()
		return false
	}
}

func (p *parser) skipAnnotationArgs() {
	for !p.check(token.EOF) && !p.check(token.Punctuator, "@") && !p.check(token.Punctuator, "§") && !p.isDeclarationKeyword() {
		p.advance()
	}
}

func (p *parser) parseImport() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "importa")
	p.expect(token.Keyword, "ex")
	path := p.expect(token.Textus).Valor

	if p.match(token.Keyword, "publica") == nil {
		if p.match(token.Keyword, "privata") == nil {
			panic(p.err(ferrors.PMissingKeyword, "expected 'privata' or 'publica' after import path", "", p.peek(0).Locus))
		}
	}

	if p.match(token.Operator, "*") != nil {
		p.expect(token.Keyword, "ut")
		alias := p.expect(token.Identifier).Valor
		return &ast.ImportDecl{Locus: loc, Path: path, WildcardAll: true, Specifiers: []ast.ImportSpecifier{{Nomen: "*", Alias: alias}}}
	}

	imported := p.expect(token.Identifier).Valor
	local := ""
	if p.match(token.Keyword, "ut") != nil {
		local = p.expect(token.Identifier).Valor
	}
	return &ast.ImportDecl{Locus: loc, Path: path, Specifiers: []ast.ImportSpecifier{{Nomen: imported, Alias: local}}}
}

func (m *parser) matchPunct(valor string) bool {
	return m.match(token.Punctuator, valor) != nil
}

func (p *parser) parseVariableDecl(publica bool) ast.Stmt {
	loc := p.peek(0).Locus
	kw := p.advance().Valor
	mutable := kw == "varia"

	var typus ast.Typus
	var nomen string

	nullable := p.match(token.Keyword, "si") != nil
	first := p.expectName().Valor

	if p.check(token.Operator, "<") {
		typus = p.parseGenericTail(first)
		if nullable {
			typus = &ast.TypusNullabilis{Inner: typus}
		}
		nomen = p.expectName().Valor
	} else if p.checkName() {
		typus = &ast.TypusNomen{Nomen: first}
		if nullable {
			typus = &ast.TypusNullabilis{Inner: typus}
		}
		nomen = p.expectName().Valor
	} else {
		nomen = first
	}

	var init ast.Expr
	if p.match(token.Operator, "=") != nil {
		init = p.parseExpr(0)
	}
	if typus == nil && init == nil {
		panic(p.err(ferrors.PInvalidVariable, "variable '"+nomen+"' needs a type or an initializer", "", loc))
	}

	return &ast.VariableDecl{Locus: loc, Nomen: nomen, Typus: typus, Init: init, Mutable: mutable, Public: publica}
}

// parseGenericTail parses `<Args...>` after a name already consumed as head.
func (p *parser) parseGenericTail(head string) ast.Typus {
	p.expect(token.Operator, "<")
	var args []ast.Typus
	for {
		args = append(args, p.parseTypus())
		if p.match(token.Punctuator, ",") == nil {
			break
		}
	}
	p.expect(token.Operator, ">")
	return &ast.TypusGenericus{Nomen: head, Args: args}
}

func (p *parser) parseForEx() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "ex")
	subject := p.parseExpr(0)

	if p.check(token.Keyword, "pro") || p.check(token.Keyword, "fiet") {
		await := p.advance().Valor == "fiet"
		binding := p.expect(token.Identifier).Valor
		body := p.parseBlock().(*ast.BlockStmt)
		mode := ast.ForEach
		if await {
			mode = ast.ForEachAwait
		}
		return &ast.ForStmt{Locus: loc, Mode: mode, Subject: subject, Binding: binding, Body: body}
	}

	if p.check(token.Keyword, "fixum") || p.check(token.Keyword, "varia") {
		mutable := p.advance().Valor == "varia"
		p.expect(token.Punctuator, "{")
		var pattern []string
		for !p.check(token.Punctuator, "}") {
			pattern = append(pattern, p.expectName().Valor)
			if p.match(token.Punctuator, ",") == nil {
				break
			}
		}
		p.expect(token.Punctuator, "}")
		body := p.parseBlock().(*ast.BlockStmt)
		return &ast.ForStmt{Locus: loc, Mode: ast.ForDestructure, Subject: subject, Pattern: pattern, Mutable: mutable, Body: body}
	}

	panic(p.err(ferrors.PMissingKeyword, "expected 'pro', 'fiet', 'fixum', or 'varia' after iteration expression", "", p.peek(0).Locus))
}

func (p *parser) parseForDe() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "de")
	subject := p.parseExpr(0)
	p.expect(token.Keyword, "pro")
	binding := p.expect(token.Identifier).Valor
	body := p.parseBlock().(*ast.BlockStmt)
	return &ast.ForStmt{Locus: loc, Mode: ast.ForKeys, Subject: subject, Binding: binding, Body: body}
}

func (p *parser) parseFunctionDecl(publica bool) ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "functio")
	async := false

	nomen := p.expectName().Valor

	var typeParams []ast.TypeParam
	if p.match(token.Keyword, "prae") != nil {
		for {
			p.expect(token.Keyword, "typus")
			tp := ast.TypeParam{Nomen: p.expect(token.Identifier).Valor}
			if p.match(token.Keyword, "sub") != nil {
				c := p.parseTypus()
				tp.Constraint = c
			}
			typeParams = append(typeParams, tp)
			if p.match(token.Punctuator, ",") == nil {
				break
			}
		}
	}

	p.expect(token.Punctuator, "(")
	params := p.parseParams()
	p.expect(token.Punctuator, ")")

	var returns ast.Typus
	if p.match(token.Operator, "->") != nil {
		if p.match(token.Keyword, "fiet") != nil || p.match(token.Keyword, "fient") != nil {
			async = true
		} else {
			p.match(token.Keyword, "fit")
			p.match(token.Keyword, "fiunt")
		}
		returns = p.parseTypus()
	}

	var body *ast.BlockStmt
	if p.check(token.Punctuator, "{") {
		body = p.parseBlock().(*ast.BlockStmt)
	}

	return &ast.FunctionDecl{Locus: loc, Nomen: nomen, TypeParams: typeParams, Params: params, Returns: returns, Async: async, Corpus: body, Public: publica}
}

func (p *parser) parseParams() []ast.Param {
	var params []ast.Param
	if p.check(token.Punctuator, ")") {
		return params
	}
	for {
		optional := p.match(token.Keyword, "si") != nil
		var typus ast.Typus
		var nomen string

		if p.checkName() {
			first := p.expectName().Valor
			if p.check(token.Operator, "<") {
				typus = p.parseGenericTail(first)
				nomen = p.expectName().Valor
			} else if p.checkName() {
				typus = &ast.TypusNomen{Nomen: first}
				nomen = p.expectName().Valor
			} else {
				nomen = first
			}
		} else {
			panic(p.err(ferrors.PUnexpectedToken, "expected parameter name", "", p.peek(0).Locus))
		}

		if optional && typus != nil {
			typus = &ast.TypusNullabilis{Inner: typus}
		}

		params = append(params, ast.Param{Nomen: nomen, Typus: typus})

		if p.match(token.Punctuator, ",") == nil {
			break
		}
	}
	return params
}

func (p *parser) parseGenusDecl(publica, abstract bool) ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "genus")
	nomen := p.expect(token.Identifier).Valor

	var typeParams []ast.TypeParam
	if p.match(token.Operator, "<") != nil {
		for {
			typeParams = append(typeParams, ast.TypeParam{Nomen: p.expect(token.Identifier).Valor})
			if p.match(token.Punctuator, ",") == nil {
				break
			}
		}
		p.expect(token.Operator, ">")
	}

	var extends string
	if p.match(token.Keyword, "generis") != nil {
		extends = p.expect(token.Identifier).Valor
	}

	var implements []string
	if p.match(token.Keyword, "implet") != nil {
		for {
			implements = append(implements, p.expect(token.Identifier).Valor)
			if p.match(token.Punctuator, ",") == nil {
				break
			}
		}
	}

	p.expect(token.Punctuator, "{")

	var fields []ast.FieldDecl
	var methods []ast.MethodDecl

	for !p.check(token.Punctuator, "}") && !p.check(token.EOF) {
		for p.match(token.Punctuator, "@") != nil {
			p.parseAnnotation()
		}

		visibility := "publica"
		static := false
		if p.match(token.Keyword, "privata") != nil {
			visibility = "privata"
		} else if p.match(token.Keyword, "protecta") != nil {
			visibility = "protecta"
		}

		if p.check(token.Keyword, "functio") {
			fn := p.parseFunctionDecl(false).(*ast.FunctionDecl)
			methods = append(methods, ast.MethodDecl{Function: fn, Static: static, Visibility: visibility})
			continue
		}

		nullable := p.match(token.Keyword, "si") != nil
		first := p.expectName().Valor
		var fieldTypus ast.Typus
		var fieldNomen string

		if p.check(token.Operator, "<") {
			fieldTypus = p.parseGenericTail(first)
			if nullable {
				fieldTypus = &ast.TypusNullabilis{Inner: fieldTypus}
			}
			fieldNomen = p.expectName().Valor
		} else if p.checkName() {
			fieldTypus = &ast.TypusNomen{Nomen: first}
			if nullable {
				fieldTypus = &ast.TypusNullabilis{Inner: fieldTypus}
			}
			fieldNomen = p.expectName().Valor
		} else {
			panic(p.err(ferrors.PUnexpectedToken, "expected field type or name", "", p.peek(0).Locus))
		}

		if p.match(token.Operator, "=") != nil {
			p.parseExpr(0) // field initializer, evaluated per instance by the analyzer
		}

		fields = append(fields, ast.FieldDecl{Nomen: fieldNomen, Typus: fieldTypus, Static: static, Visibility: visibility})
	}

	p.expect(token.Punctuator, "}")
	return &ast.GenusDecl{Locus: loc, Nomen: nomen, TypeParams: typeParams, Extends: extends, Implements: implements, Abstract: abstract, Fields: fields, Methods: methods, Public: publica}
}

func (p *parser) parsePactumDecl(publica bool) ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "pactum")
	nomen := p.expect(token.Identifier).Valor

	if p.match(token.Operator, "<") != nil {
		for {
			p.expect(token.Identifier)
			if p.match(token.Punctuator, ",") == nil {
				break
			}
		}
		p.expect(token.Operator, ">")
	}

	p.expect(token.Punctuator, "{")
	var methods []ast.PactumMethod
	for !p.check(token.Punctuator, "}") && !p.check(token.EOF) {
		p.expect(token.Keyword, "functio")
		nomen := p.expect(token.Identifier).Valor
		p.expect(token.Punctuator, "(")
		params := p.parseParams()
		p.expect(token.Punctuator, ")")
		var returns ast.Typus
		if p.match(token.Operator, "->") != nil {
			returns = p.parseTypus()
		}
		methods = append(methods, ast.PactumMethod{Nomen: nomen, Params: params, Returns: returns})
	}
	p.expect(token.Punctuator, "}")
	return &ast.PactumDecl{Locus: loc, Nomen: nomen, Methods: methods, Public: publica}
}

func (p *parser) parseOrdoDecl(publica bool) ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "ordo")
	nomen := p.expect(token.Identifier).Valor
	p.expect(token.Punctuator, "{")

	var members []ast.OrdoMember
	for !p.check(token.Punctuator, "}") && !p.check(token.EOF) {
		name := p.expect(token.Identifier).Valor
		var valor *int64
		if p.match(token.Operator, "=") != nil {
			tok := p.advance()
			if n, ok := parseInt(tok.Valor); ok {
				valor = &n
			}
		}
		members = append(members, ast.OrdoMember{Nomen: name, Valor: valor})
		p.match(token.Punctuator, ",")
	}
	p.expect(token.Punctuator, "}")
	return &ast.OrdoDecl{Locus: loc, Nomen: nomen, Members: members, Public: publica}
}

func parseInt(s string) (int64, bool) {
	var n int64
	var any bool
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int64(c-'0')
		any = true
	}
	return n, any
}

func (p *parser) parseDiscretioDecl(publica bool) ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "discretio")
	nomen := p.expect(token.Identifier).Valor

	if p.match(token.Operator, "<") != nil {
		for {
			p.expect(token.Identifier)
			if p.match(token.Punctuator, ",") == nil {
				break
			}
		}
		p.expect(token.Operator, ">")
	}

	p.expect(token.Punctuator, "{")
	var variants []ast.DiscretioVariant
	for !p.check(token.Punctuator, "}") && !p.check(token.EOF) {
		name := p.expect(token.Identifier).Valor
		var fields []ast.Param

		if p.match(token.Punctuator, "{") != nil {
			for !p.check(token.Punctuator, "}") && !p.check(token.EOF) {
				nullable := p.match(token.Keyword, "si") != nil
				typNomen := p.expectName().Valor
				var fieldTypus ast.Typus
				if p.check(token.Operator, "<") {
					fieldTypus = p.parseGenericTail(typNomen)
				} else {
					fieldTypus = &ast.TypusNomen{Nomen: typNomen}
				}
				if nullable {
					fieldTypus = &ast.TypusNullabilis{Inner: fieldTypus}
				}
				fieldNomen := p.expectName().Valor
				fields = append(fields, ast.Param{Nomen: fieldNomen, Typus: fieldTypus})
				p.match(token.Punctuator, ",")
			}
			p.expect(token.Punctuator, "}")
		}

		variants = append(variants, ast.DiscretioVariant{Nomen: name, Fields: fields})
	}
	p.expect(token.Punctuator, "}")
	return &ast.DiscretioDecl{Locus: loc, Nomen: nomen, Variants: variants, Public: publica}
}

func (p *parser) parseTypeAliasDecl(publica bool) ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "typus")
	nomen := p.expect(token.Identifier).Valor
	p.expect(token.Operator, "=")
	typus := p.parseTypus()
	return &ast.TypeAliasDecl{Locus: loc, Nomen: nomen, Typus: typus, Public: publica}
}

func (p *parser) parseInStmt() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "in")
	subject := p.parseExpr(0)
	body := p.parseBlock().(*ast.BlockStmt)
	return &ast.InStmt{Locus: loc, Subject: subject, Body: body}
}

func (p *parser) parseBlock() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Punctuator, "{")
	block := &ast.BlockStmt{Locus: loc}
	for !p.check(token.Punctuator, "}") && !p.check(token.EOF) {
		stmt := p.recoverStmt()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.expect(token.Punctuator, "}")
	return block
}

// parseBody accepts a full block or a one-line `ergo stmt` form.
func (p *parser) parseBody() *ast.BlockStmt {
	loc := p.peek(0).Locus
	if p.check(token.Punctuator, "{") {
		return p.parseBlock().(*ast.BlockStmt)
	}
	if p.match(token.Keyword, "ergo") != nil {
		stmt := p.parseStmt()
		return &ast.BlockStmt{Locus: loc, Statements: []ast.Stmt{stmt}}
	}
	return p.parseBlock().(*ast.BlockStmt)
}

func (p *parser) parseIf() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "si")
	return p.parseIfTail(loc)
}

// parseIfTail handles the two interchangeable conditional chains spec.md
// §4.3 names - (aliter, aliter si) and (secus, sin) - which may mix
// within a single chain: bare `secus`/`aliter` introduce the final
// else block, `secus si`/`aliter si` introduce another conditional arm,
// and `sin` does the same without a trailing `si` (mirroring the
// teacher's `sin` handling, which recurses straight into the body).
func (p *parser) parseIfTail(loc locus.Locus) ast.Stmt {
	cond := p.parseExpr(0)
	then := p.parseBody()
	var alt ast.Stmt
	if p.match(token.Keyword, "sin") != nil {
		altLoc := p.peek(0).Locus
		alt = p.parseIfTail(altLoc)
	} else if p.match(token.Keyword, "secus") != nil {
		if p.check(token.Keyword, "si") {
			alt = p.parseIf()
		} else {
			alt = p.parseBody()
		}
	} else if p.match(token.Keyword, "aliter") != nil {
		if p.check(token.Keyword, "si") {
			alt = p.parseIf()
		} else {
			alt = p.parseBody()
		}
	}
	return &ast.IfStmt{Locus: loc, Cond: cond, Then: then, Else: alt}
}

func (p *parser) parseWhile() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "dum")
	cond := p.parseExpr(0)
	body := p.parseBody()
	return &ast.WhileStmt{Locus: loc, Cond: cond, Body: body}
}

func (p *parser) parseSwitch() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "elige")
	subject := p.parseExpr(0)
	p.expect(token.Punctuator, "{")

	var arms []ast.MatchArm
	for !p.check(token.Punctuator, "}") && !p.check(token.EOF) {
		if p.match(token.Keyword, "ceterum") != nil || p.match(token.Keyword, "aliter") != nil || p.match(token.Keyword, "secus") != nil {
			body := p.parseBody()
			arms = append(arms, ast.MatchArm{Body: body, Default: true})
			continue
		}
		p.expect(token.Keyword, "casu")
		cond := p.parseExpr(0)
		body := p.parseBody()
		arms = append(arms, ast.MatchArm{Cond: cond, Body: body})
	}
	p.expect(token.Punctuator, "}")
	return &ast.SwitchStmt{Locus: loc, Subject: subject, Arms: arms}
}

func (p *parser) parseDiscerne() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "discerne")
	subject := p.parseExpr(0)
	p.expect(token.Punctuator, "{")

	var arms []ast.DiscerneArm
	for !p.check(token.Punctuator, "}") && !p.check(token.EOF) {
		if p.match(token.Keyword, "ceterum") != nil {
			body := p.parseBody()
			arms = append(arms, ast.DiscerneArm{Wildcard: true, Body: body})
			continue
		}

		p.expect(token.Keyword, "casu")
		variant := p.expect(token.Identifier).Valor
		arm := ast.DiscerneArm{Variant: variant, Wildcard: variant == "_"}

		if p.match(token.Keyword, "ut") != nil {
			arm.Alias = p.expectName().Valor
		} else if p.match(token.Keyword, "pro") != nil {
			for {
				arm.Bindings = append(arm.Bindings, p.expectName().Valor)
				if p.match(token.Punctuator, ",") == nil {
					break
				}
			}
		}

		arm.Body = p.parseBody()
		arms = append(arms, arm)
	}
	p.expect(token.Punctuator, "}")
	return &ast.DiscerneStmt{Locus: loc, Subject: subject, Arms: arms}
}

func (p *parser) parseGuard() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "custodi")
	cond := p.parseExpr(0)
	p.expect(token.Keyword, "secus")
	elseBlock := p.parseBlock().(*ast.BlockStmt)
	return &ast.GuardStmt{Locus: loc, Cond: cond, Else: elseBlock}
}

func (p *parser) parseTry() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "tempta")
	body := p.parseBlock().(*ast.BlockStmt)

	var catchName string
	var catchBody *ast.BlockStmt
	if p.match(token.Keyword, "cape") != nil {
		catchName = p.expect(token.Identifier).Valor
		catchBody = p.parseBlock().(*ast.BlockStmt)
	}

	var finallyBody *ast.BlockStmt
	if p.match(token.Keyword, "demum") != nil {
		finallyBody = p.parseBlock().(*ast.BlockStmt)
	}

	return &ast.TryStmt{Locus: loc, Body: body, CatchName: catchName, CatchBody: catchBody, FinallyBody: finallyBody}
}

// parseCuraStmt dispatches `cura` between a test fixture hook
// (`cura ante|post [omnia] { ... }`) and a resource block
// (`cura [cede] expr fit name { ... } [cape err { ... }]`).
func (p *parser) parseCuraStmt() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "cura")

	if p.check(token.Keyword, "ante") || p.check(token.Keyword, "post") {
		kind := ast.FixtureAnte
		isPost := p.peek(0).Valor == "post"
		p.advance()
		all := p.match(token.Keyword, "omnia") != nil
		switch {
		case isPost && all:
			kind = ast.FixturePostAll
		case isPost:
			kind = ast.FixturePost
		case all:
			kind = ast.FixtureAnteAll
		default:
			kind = ast.FixtureAnte
		}
		body := p.parseBlock().(*ast.BlockStmt)
		return &ast.FixtureStmt{Locus: loc, Kind: kind, Body: body}
	}

	await := p.match(token.Keyword, "cede") != nil
	resource := p.parseExpr(0)
	p.expect(token.Keyword, "fit")
	binding := p.expect(token.Identifier).Valor
	body := p.parseBlock().(*ast.BlockStmt)

	var catchName string
	var catchBody *ast.BlockStmt
	if p.match(token.Keyword, "cape") != nil {
		catchName = p.expect(token.Identifier).Valor
		catchBody = p.parseBlock().(*ast.BlockStmt)
	}

	return &ast.ResourceStmt{Locus: loc, Await: await, Resource: resource, Binding: binding, Body: body, CatchName: catchName, CatchBody: catchBody}
}

func (p *parser) parseReturn() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "redde")
	var valor ast.Expr
	if !p.check(token.EOF) && !p.check(token.Punctuator, "}") && !p.isStatementKeyword() {
		valor = p.parseExpr(0)
	}
	return &ast.ReturnStmt{Locus: loc, Value: valor}
}

func (p *parser) parseThrowOrPanic() ast.Stmt {
	loc := p.peek(0).Locus
	isPanic := p.advance().Valor == "mori"
	arg := p.parseExpr(0)
	if isPanic {
		return &ast.PanicStmt{Locus: loc, Value: arg}
	}
	return &ast.ThrowStmt{Locus: loc, Value: arg}
}

func (p *parser) parseOutput() ast.Stmt {
	loc := p.peek(0).Locus
	kw := p.advance().Valor
	kind := ast.OutputScribe
	switch kw {
	case "vide":
		kind = ast.OutputVide
	case "mone":
		kind = ast.OutputMone
	}

	var args []ast.Expr
	if !p.check(token.EOF) && !p.check(token.Punctuator, "}") && !p.isStatementKeyword() {
		for {
			args = append(args, p.parseExpr(0))
			if p.match(token.Punctuator, ",") == nil {
				break
			}
		}
	}
	return &ast.OutputStmt{Locus: loc, Kind: kind, Args: args}
}

func (p *parser) parseAssert() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "adfirma")
	cond := p.parseExpr(0)
	var msg ast.Expr
	if p.match(token.Punctuator, ",") != nil {
		msg = p.parseExpr(0)
	}
	return &ast.AssertStmt{Locus: loc, Cond: cond, Message: msg}
}

func (p *parser) parseEntry() ast.Stmt {
	loc := p.peek(0).Locus
	async := p.advance().Valor == "incipiet"
	body := p.parseBlock().(*ast.BlockStmt)
	return &ast.EntryStmt{Locus: loc, Async: async, Body: body}
}

func (p *parser) parseTestGroup() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "probandum")
	nomen := p.expect(token.Textus).Valor
	p.expect(token.Punctuator, "{")
	group := &ast.TestGroupStmt{Locus: loc, Nomen: nomen}
	body := &ast.BlockStmt{Locus: loc}
	for !p.check(token.Punctuator, "}") && !p.check(token.EOF) {
		stmt := p.recoverStmt()
		if stmt != nil {
			body.Statements = append(body.Statements, stmt)
		}
	}
	p.expect(token.Punctuator, "}")
	group.Body = body
	return group
}

func (p *parser) parseTest() ast.Stmt {
	loc := p.peek(0).Locus
	p.expect(token.Keyword, "proba")
	nomen := p.expect(token.Textus).Valor

	var modifier, reason string
	if p.match(token.Keyword, "tacet") != nil {
		modifier = "tacet"
		if p.check(token.Textus) {
			reason = p.advance().Valor
		}
	}

	body := p.parseBlock().(*ast.BlockStmt)
	return &ast.TestStmt{Locus: loc, Nomen: nomen, Modifier: modifier, Reason: reason, Body: body}
}

func (p *parser) parseExprStmt() ast.Stmt {
	loc := p.peek(0).Locus
	expr := p.parseExpr(0)
	return &ast.ExprStmt{Locus: loc, Expr: expr}
}
