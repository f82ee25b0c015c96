package ir

import (
	"fmt"
	"strings"
)

// EntryFunc is the synthesized function holding all top-level statements.
// The leading underscore keeps it clear of user function names.
const EntryFunc = "_main"

type Op int

const (
	// Alloc reserves a slot and zeroes it: args[0] is the slot name, and
	// args[1], when present, is the derive offset it was declared with.
	Alloc Op = iota

	Store // args: dst, src

	Add // args: dst, lhs, rhs
	Sub
	Mul
	Div

	Jump     // args: target block
	CondJump // args: lhs, rhs, target block; taken when lhs ≠ rhs

	Call // args: callee, call arguments…
	Ret  // args: optional result operand
)

// Instr is one typed instruction.  Operands stay text-encoded: a name or an
// integer literal, resolved at execution time and never during lowering.
type Instr struct {
	Op   Op
	Args []string
}

// Block is a named straight-line instruction sequence.  A block without a
// terminal jump falls through to the next block in emission order.
type Block struct {
	Name   string
	Instrs []Instr
}

// Function is one control-flow graph: parameters occupy the first slots in
// declaration order, locals take the next free slot as they are declared.
type Function struct {
	Name   string
	Params []string
	Slots  map[string]int
	Blocks []*Block
}

// Program maps function names to their graphs.  Order records emission
// order: user functions first, the entry function last.
type Program struct {
	Funcs map[string]*Function
	Order []string
}

func NewProgram() *Program {
	return &Program{Funcs: make(map[string]*Function, 8)}
}

func (p *Program) Add(fn *Function) {
	p.Funcs[fn.Name] = fn
	p.Order = append(p.Order, fn.Name)
}

func (i Instr) String() string {
	switch i.Op {
	case Alloc:
		return "alloc " + strings.Join(i.Args, ", ")
	case Store:
		return fmt.Sprintf("store %s, %s", i.Args[0], i.Args[1])
	case Add:
		return fmt.Sprintf("add %s, %s, %s", i.Args[0], i.Args[1], i.Args[2])
	case Sub:
		return fmt.Sprintf("sub %s, %s, %s", i.Args[0], i.Args[1], i.Args[2])
	case Mul:
		return fmt.Sprintf("mul %s, %s, %s", i.Args[0], i.Args[1], i.Args[2])
	case Div:
		return fmt.Sprintf("div %s, %s, %s", i.Args[0], i.Args[1], i.Args[2])
	case Jump:
		return "jump " + i.Args[0]
	case CondJump:
		return fmt.Sprintf("cjump %s, %s, %s", i.Args[0], i.Args[1], i.Args[2])
	case Call:
		return "call " + strings.Join(i.Args, ", ")
	case Ret:
		if len(i.Args) == 0 {
			return "ret"
		}
		return "ret " + i.Args[0]
	}

	panic("unreachable")
}
