package parser

import (
	"git.sr.ht/~vacu/quarter/ast"
	"git.sr.ht/~vacu/quarter/lexer"
)

type parser struct {
	toks  <-chan lexer.Token
	cache *lexer.Token
}

// Parse consumes the token stream of one compilation unit and builds its
// program tree.  On error the stream is drained so the lexer goroutine can
// finish.
func Parse(toks <-chan lexer.Token) (ast.Program, error) {
	p := parser{toks: toks}
	prog, err := p.parseProgram()
	if err != nil {
		for range toks {
		}
		return nil, err
	}
	return prog, nil
}

func (p *parser) next() lexer.Token {
	var t lexer.Token
	if p.cache != nil {
		t, p.cache = *p.cache, nil
	} else {
		t = <-p.toks
	}
	return t
}

func (p *parser) peek() lexer.Token {
	if p.cache == nil {
		t := <-p.toks
		p.cache = &t
	}
	return *p.cache
}

func (p *parser) expect(kind lexer.TokenType, want string) (lexer.Token, error) {
	t := p.next()
	if t.Kind != kind {
		return t, errExpected{want, t}
	}
	return t, nil
}
