package ast

// Program is a complete compilation unit: every top-level statement of one
// source file or one REPL line.
type Program []Stmt

// Stmt is any statement in the program tree.
type Stmt interface {
	isStmt()
}

// Expr is anything that can initialize a value.  Binary operands are
// restricted to Literal and VarRef; nesting is not part of the tree.
type Expr interface {
	isExpr()
}

// Literal is a text-encoded integer, either decimal or a ‘0z’ dodecagram.
// It stays text until execution time.
type Literal string

// VarRef is a reference to a previously declared name.
type VarRef string

type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
)

// Binary is a single combining expression over two operands.
type Binary struct {
	Lhs, Rhs Expr // Literal or VarRef only
	Op       BinOp
}

// ValDecl declares a new local: ‘val x : int = expr’.
type ValDecl struct {
	Name string
	Type string
	Init Expr
}

// Derive declares a new local offset from an existing one:
// ‘derive y from x by 2’.
type Derive struct {
	Name string
	From string
	By   Expr // Literal or VarRef
}

// FuncDef defines a named function.  Only valid at the top level.
type FuncDef struct {
	Name   string
	Params []string
	Body   []Stmt
}

// Loop is a counted loop: ‘loop start to end { … }’.
type Loop struct {
	Start, End Expr // Literal or VarRef
	Body       []Stmt
}

// When guards its body on equality of the two operands:
// ‘when a is b { … }’.
type When struct {
	Lhs, Rhs Expr // Literal or VarRef
	Body     []Stmt
}

// Return ends the enclosing function.  Val may be nil.
type Return struct {
	Val Expr
}

// Call invokes a user function or a registered builtin.
type Call struct {
	Target string
	Args   []Expr
}

func (_ Literal) isExpr() {}
func (_ VarRef) isExpr()  {}
func (_ Binary) isExpr()  {}

func (_ ValDecl) isStmt() {}
func (_ Derive) isStmt()  {}
func (_ FuncDef) isStmt() {}
func (_ Loop) isStmt()    {}
func (_ When) isStmt()    {}
func (_ Return) isStmt()  {}
func (_ Call) isStmt()    {}
