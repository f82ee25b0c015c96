package parser

import (
	"git.sr.ht/~vacu/quarter/ast"
	"git.sr.ht/~vacu/quarter/lexer"
)

func (p *parser) parseProgram() (ast.Program, error) {
	prog := ast.Program{}

	for {
		switch t := p.peek(); t.Kind {
		case lexer.TokEndStmt:
			p.next()
		case lexer.TokEof:
			return prog, nil
		case lexer.TokError:
			return nil, errLexical(t.Val)
		default:
			s, err := p.parseStmt(true)
			if err != nil {
				return nil, err
			}
			prog = append(prog, s)
		}
	}
}

func (p *parser) parseStmt(topLevel bool) (ast.Stmt, error) {
	switch t := p.peek(); t.Kind {
	case lexer.TokVal:
		return p.parseValDecl()
	case lexer.TokDerive:
		return p.parseDerive()
	case lexer.TokFunc:
		if !topLevel {
			return nil, errExpected{"statement (functions only nest at the top level)", t}
		}
		return p.parseFuncDef()
	case lexer.TokLoop:
		return p.parseLoop()
	case lexer.TokWhen:
		return p.parseWhen()
	case lexer.TokReturn:
		return p.parseReturn()
	case lexer.TokIdent:
		return p.parseCall()
	case lexer.TokError:
		return nil, errLexical(t.Val)
	}
	return nil, errExpected{"statement", p.peek()}
}

func (p *parser) parseValDecl() (ast.Stmt, error) {
	p.next() // Consume ‘val’

	name, err := p.expect(lexer.TokIdent, "value name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokColon, "‘:’ after value name"); err != nil {
		return nil, err
	}
	typ, err := p.expect(lexer.TokIdent, "type name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokAssign, "‘=’ after type"); err != nil {
		return nil, err
	}
	init, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return ast.ValDecl{Name: name.Val, Type: typ.Val, Init: init}, nil
}

func (p *parser) parseDerive() (ast.Stmt, error) {
	p.next() // Consume ‘derive’

	name, err := p.expect(lexer.TokIdent, "value name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokFrom, "‘from’ after value name"); err != nil {
		return nil, err
	}
	from, err := p.expect(lexer.TokIdent, "source value name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokBy, "‘by’ after source value"); err != nil {
		return nil, err
	}
	by, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	return ast.Derive{Name: name.Val, From: from.Val, By: by}, nil
}

func (p *parser) parseFuncDef() (ast.Stmt, error) {
	p.next() // Consume ‘func’

	name, err := p.expect(lexer.TokIdent, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokPOpen, "‘(’ after function name"); err != nil {
		return nil, err
	}

	params := []string{}
	for p.peek().Kind != lexer.TokPClose {
		t, err := p.expect(lexer.TokIdent, "parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, t.Val)

		if p.peek().Kind == lexer.TokComma {
			p.next()
		}
	}
	p.next() // Consume ‘)’

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return ast.FuncDef{Name: name.Val, Params: params, Body: body}, nil
}

func (p *parser) parseLoop() (ast.Stmt, error) {
	p.next() // Consume ‘loop’

	start, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokTo, "‘to’ after loop start"); err != nil {
		return nil, err
	}
	end, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return ast.Loop{Start: start, End: end, Body: body}, nil
}

func (p *parser) parseWhen() (ast.Stmt, error) {
	p.next() // Consume ‘when’

	lhs, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokIs, "‘is’ after operand"); err != nil {
		return nil, err
	}
	rhs, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return ast.When{Lhs: lhs, Rhs: rhs, Body: body}, nil
}

func (p *parser) parseReturn() (ast.Stmt, error) {
	p.next() // Consume ‘return’

	if !lexer.IsOperand(p.peek().Kind) {
		return ast.Return{}, nil
	}
	val, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	return ast.Return{Val: val}, nil
}

func (p *parser) parseCall() (ast.Stmt, error) {
	name := p.next()

	if _, err := p.expect(lexer.TokPOpen, "‘(’ after call target"); err != nil {
		return nil, err
	}

	args := []ast.Expr{}
	for p.peek().Kind != lexer.TokPClose {
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)

		if p.peek().Kind == lexer.TokComma {
			p.next()
		}
	}
	p.next() // Consume ‘)’

	return ast.Call{Target: name.Val, Args: args}, nil
}

// parseBlock parses a brace-delimited statement list.  Statements end at a
// newline, a semicolon, or the closing brace itself.
func (p *parser) parseBlock() ([]ast.Stmt, error) {
	if _, err := p.expect(lexer.TokBOpen, "‘{’"); err != nil {
		return nil, err
	}

	body := []ast.Stmt{}
	for {
		switch t := p.peek(); t.Kind {
		case lexer.TokEndStmt:
			p.next()
		case lexer.TokBClose:
			p.next()
			return body, nil
		case lexer.TokEof:
			return nil, errExpected{"‘}’", t}
		case lexer.TokError:
			return nil, errLexical(t.Val)
		default:
			s, err := p.parseStmt(false)
			if err != nil {
				return nil, err
			}
			body = append(body, s)
		}
	}
}

func (p *parser) parseExpr() (ast.Expr, error) {
	lhs, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	if !lexer.IsBinOp(p.peek().Kind) {
		return lhs, nil
	}
	op := p.next()
	rhs, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	bin := ast.Binary{Lhs: lhs, Rhs: rhs}
	switch op.Kind {
	case lexer.TokPlus:
		bin.Op = ast.Add
	case lexer.TokMinus:
		bin.Op = ast.Sub
	case lexer.TokStar:
		bin.Op = ast.Mul
	case lexer.TokSlash:
		bin.Op = ast.Div
	}
	return bin, nil
}

func (p *parser) parseOperand() (ast.Expr, error) {
	switch t := p.next(); t.Kind {
	case lexer.TokIdent:
		return ast.VarRef(t.Val), nil
	case lexer.TokNumber:
		return ast.Literal(t.Val), nil
	default:
		return nil, errExpected{"name or literal", t}
	}
}
