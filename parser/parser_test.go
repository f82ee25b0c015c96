package parser

import (
	"errors"
	"reflect"
	"testing"

	"git.sr.ht/~vacu/quarter/ast"
	"git.sr.ht/~vacu/quarter/lexer"
)

func parse(s string) (ast.Program, error) {
	l := lexer.New(s)
	go l.Run()
	return Parse(l.Out)
}

func mustParse(t *testing.T, s string) ast.Program {
	prog, err := parse(s)
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	return prog
}

func TestNext(t *testing.T) {
	xs := []lexer.Token{
		{Kind: lexer.TokIdent},
		{Kind: lexer.TokEndStmt},
		{Kind: lexer.TokEof},
		{Kind: lexer.TokError},
	}
	c := make(chan lexer.Token, len(xs))
	p := parser{toks: c}

	for _, x := range xs {
		c <- x
	}

	for i := range xs {
		x := p.next()
		if x != xs[i] {
			t.Errorf("Expected %v but got %v", xs[i], x)
		}
	}
}

func TestPeek(t *testing.T) {
	xs := []lexer.Token{
		{Kind: lexer.TokIdent},
		{Kind: lexer.TokEndStmt},
		{Kind: lexer.TokEof},
		{Kind: lexer.TokError},
	}
	c := make(chan lexer.Token, len(xs))
	p := parser{toks: c}

	for _, x := range xs {
		c <- x
	}

	f := func(x lexer.Token, i int) {
		if x != xs[i] {
			t.Errorf("Expected %v but got %v", xs[i], x)
		}
	}

	f(p.peek(), 0)
	f(p.peek(), 0)
	f(p.next(), 0)
	f(p.peek(), 1)
	f(p.peek(), 1)
	f(p.next(), 1)
}

func TestParseValDecl(t *testing.T) {
	want := ast.Program{
		ast.ValDecl{Name: "x", Type: "int", Init: ast.Literal("5")},
		ast.ValDecl{Name: "y", Type: "int", Init: ast.Binary{
			Lhs: ast.VarRef("x"),
			Rhs: ast.Literal("2"),
			Op:  ast.Add,
		}},
	}
	got := mustParse(t, "val x : int = 5\nval y : int = x + 2\n")

	if !reflect.DeepEqual(want, got) {
		t.Fatalf("Expected %v but got %v", want, got)
	}
}

func TestParseFuncDef(t *testing.T) {
	want := ast.Program{
		ast.FuncDef{
			Name:   "add",
			Params: []string{"a", "b"},
			Body: []ast.Stmt{
				ast.ValDecl{Name: "c", Type: "int", Init: ast.Binary{
					Lhs: ast.VarRef("a"),
					Rhs: ast.VarRef("b"),
					Op:  ast.Add,
				}},
				ast.Call{Target: "say", Args: []ast.Expr{ast.VarRef("c")}},
			},
		},
	}
	got := mustParse(t, "func add(a, b) {\n\tval c : int = a + b\n\tsay(c)\n}\n")

	if !reflect.DeepEqual(want, got) {
		t.Fatalf("Expected %v but got %v", want, got)
	}
}

func TestParseLoopWhenDerive(t *testing.T) {
	want := ast.Program{
		ast.Loop{
			Start: ast.Literal("0"),
			End:   ast.Literal("3"),
			Body: []ast.Stmt{
				ast.ValDecl{Name: "x", Type: "int", Init: ast.Literal("1")},
			},
		},
		ast.When{
			Lhs:  ast.VarRef("x"),
			Rhs:  ast.Literal("1"),
			Body: []ast.Stmt{ast.Return{Val: ast.VarRef("x")}},
		},
		ast.Derive{Name: "y", From: "x", By: ast.Literal("2")},
	}
	got := mustParse(t,
		"loop 0 to 3 { val x : int = 1 }\n"+
			"when x is 1 { return x }\n"+
			"derive y from x by 2\n")

	if !reflect.DeepEqual(want, got) {
		t.Fatalf("Expected %v but got %v", want, got)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"val x = 5\n",                 // Missing type
		"val x : int\n",               // Missing initializer
		"loop 0 3 { }\n",              // Missing ‘to’
		"when x { }\n",                // Missing ‘is’
		"func f() { func g() { } }\n", // Nested definition
		"say(1\n",                     // Unterminated call
		"5\n",                         // Not a statement
	}

	for _, s := range cases {
		if _, err := parse(s); err == nil {
			t.Errorf("Expected a parse error for %q", s)
		}
	}
}

func TestParseLexicalError(t *testing.T) {
	_, err := parse("@\n")

	var lexErr errLexical
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected a lexical error but got %v", err)
	}
}
