// Package lower translates a program tree into its control-flow-graph form.
// The pass is deterministic and keeps no state between calls: lowering the
// same tree twice yields structurally identical programs.
package lower

import (
	"fmt"

	"git.sr.ht/~vacu/quarter/ast"
	"git.sr.ht/~vacu/quarter/ir"
)

type lowerer struct {
	fn     *ir.Function
	cur    *ir.Block
	labels int
}

// Lower builds one CFG function per function definition, in source order,
// then gathers every remaining top-level statement into the synthesized
// entry function appended last.
func Lower(prog ast.Program) (*ir.Program, error) {
	out := ir.NewProgram()
	top := make(ast.Program, 0, len(prog))

	for _, s := range prog {
		fd, ok := s.(ast.FuncDef)
		if !ok {
			top = append(top, s)
			continue
		}
		fn, err := lowerFunc(fd.Name, fd.Params, fd.Body)
		if err != nil {
			return nil, err
		}
		out.Add(fn)
	}

	entry, err := lowerFunc(ir.EntryFunc, nil, top)
	if err != nil {
		return nil, err
	}
	out.Add(entry)
	return out, nil
}

func lowerFunc(name string, params []string, body []ast.Stmt) (*ir.Function, error) {
	fn := &ir.Function{
		Name:   name,
		Params: params,
		Slots:  make(map[string]int, len(params)+4),
	}
	for _, p := range params {
		fn.Slots[p] = len(fn.Slots)
	}

	l := &lowerer{fn: fn}
	l.cur = l.newBlock("entry")

	for _, s := range body {
		if err := l.lowerStmt(s); err != nil {
			return nil, err
		}
	}

	// Every function returns, explicitly or not
	last := fn.Blocks[len(fn.Blocks)-1]
	if n := len(last.Instrs); n == 0 || last.Instrs[n-1].Op != ir.Ret {
		l.cur = last
		l.emit(ir.Ret)
	}

	return fn, nil
}

func (l *lowerer) lowerStmt(s ast.Stmt) error {
	switch s := s.(type) {
	case ast.ValDecl:
		return l.lowerValDecl(s)
	case ast.Derive:
		l.allot(s.Name)
		by := operand(s.By)
		l.emit(ir.Alloc, s.Name, by)
		l.emit(ir.Add, s.Name, s.From, by)
	case ast.Loop:
		return l.lowerLoop(s)
	case ast.When:
		return l.lowerWhen(s)
	case ast.Return:
		if s.Val == nil {
			l.emit(ir.Ret)
		} else {
			l.emit(ir.Ret, operand(s.Val))
		}
	case ast.Call:
		args := make([]string, 0, len(s.Args)+1)
		args = append(args, s.Target)
		for _, a := range s.Args {
			// Only resolvable operands survive lowering
			switch a := a.(type) {
			case ast.Literal:
				args = append(args, string(a))
			case ast.VarRef:
				args = append(args, string(a))
			}
		}
		l.emit(ir.Call, args...)
	case ast.FuncDef:
		// The parser rejects nested definitions and Lower strips
		// top-level ones before lowering bodies
		panic("unreachable")
	default:
		panic("unreachable")
	}
	return nil
}

func (l *lowerer) lowerValDecl(s ast.ValDecl) error {
	if s.Type != "int" {
		return errBadType(s.Type)
	}

	l.allot(s.Name)
	l.emit(ir.Alloc, s.Name)

	switch init := s.Init.(type) {
	case ast.Literal:
		l.emit(ir.Store, s.Name, string(init))
	case ast.VarRef:
		l.emit(ir.Store, s.Name, string(init))
	case ast.Binary:
		l.emit(binOp(init.Op), s.Name, operand(init.Lhs), operand(init.Rhs))
	}
	return nil
}

// lowerLoop expands ‘loop start to end’ into the condition/body/exit block
// triple.  The counter slot is named ‘i’ by convention and holds the start
// value before the first condition check.
func (l *lowerer) lowerLoop(s ast.Loop) error {
	n := l.labels
	l.labels++
	cond := fmt.Sprintf("cond_%d", n)
	body := fmt.Sprintf("body_%d", n)
	exit := fmt.Sprintf("exit_%d", n)

	l.allot("i")
	l.emit(ir.Alloc, "i")
	l.emit(ir.Store, "i", operand(s.Start))
	l.emit(ir.Jump, cond)

	l.cur = l.newBlock(cond)
	l.emit(ir.CondJump, "i", operand(s.End), exit)
	l.emit(ir.Jump, body)

	l.cur = l.newBlock(body)
	for _, inner := range s.Body {
		if err := l.lowerStmt(inner); err != nil {
			return err
		}
	}
	l.emit(ir.Add, "i", "i", "1")
	l.emit(ir.Jump, cond)

	l.cur = l.newBlock(exit)
	return nil
}

// lowerWhen guards its body behind a conditional jump to the continuation
// block: the jump is taken when the operands are unequal, so the body runs
// on equality.
func (l *lowerer) lowerWhen(s ast.When) error {
	n := l.labels
	l.labels++
	body := fmt.Sprintf("body_%d", n)
	cont := fmt.Sprintf("cont_%d", n)

	l.emit(ir.CondJump, operand(s.Lhs), operand(s.Rhs), cont)

	l.cur = l.newBlock(body)
	for _, inner := range s.Body {
		if err := l.lowerStmt(inner); err != nil {
			return err
		}
	}

	l.cur = l.newBlock(cont)
	return nil
}

func (l *lowerer) newBlock(name string) *ir.Block {
	b := &ir.Block{Name: name}
	l.fn.Blocks = append(l.fn.Blocks, b)
	return b
}

func (l *lowerer) emit(op ir.Op, args ...string) {
	l.cur.Instrs = append(l.cur.Instrs, ir.Instr{Op: op, Args: args})
}

// allot assigns the next free slot to name.  Slots are unique and never
// reused; re-declaring a name keeps its original slot.
func (l *lowerer) allot(name string) {
	if _, ok := l.fn.Slots[name]; !ok {
		l.fn.Slots[name] = len(l.fn.Slots)
	}
}

func operand(e ast.Expr) string {
	switch e := e.(type) {
	case ast.Literal:
		return string(e)
	case ast.VarRef:
		return string(e)
	}
	panic("unreachable")
}

func binOp(op ast.BinOp) ir.Op {
	switch op {
	case ast.Add:
		return ir.Add
	case ast.Sub:
		return ir.Sub
	case ast.Mul:
		return ir.Mul
	case ast.Div:
		return ir.Div
	}
	panic("unreachable")
}
