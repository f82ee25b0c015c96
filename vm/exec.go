package vm

import (
	"strconv"
	"strings"

	"git.sr.ht/~vacu/quarter/dg"
	"git.sr.ht/~vacu/quarter/ir"
)

// execFlat is the straight-line walk: every instruction of every block, in
// emission order.  Ret latches the result without stopping; a loop body as
// lowered therefore executes exactly once.
func (vm *Vm) execFlat(fn *ir.Function, fr *frame) (int, error) {
	for _, b := range fn.Blocks {
		for _, in := range b.Instrs {
			if err := vm.step(b, in, fr); err != nil {
				return 0, err
			}
		}
	}
	return fr.ret, nil
}

// execJump follows the graph: Jump and CondJump transfer to their target
// block, Ret ends the call, and a block without a taken transfer falls
// through to the next block in emission order.
func (vm *Vm) execJump(fn *ir.Function, fr *frame) (int, error) {
	bi := 0
	for bi < len(fn.Blocks) {
		b := fn.Blocks[bi]
		taken := false

		for _, in := range b.Instrs {
			if err := vm.step(b, in, fr); err != nil {
				return 0, err
			}

			switch in.Op {
			case ir.Jump:
				t, err := blockIndex(fn, in.Args[0])
				if err != nil {
					return 0, err
				}
				bi, taken = t, true
			case ir.CondJump:
				l, err := vm.resolve(in.Args[0])
				if err != nil {
					return 0, err
				}
				r, err := vm.resolve(in.Args[1])
				if err != nil {
					return 0, err
				}
				if l != r {
					t, err := blockIndex(fn, in.Args[2])
					if err != nil {
						return 0, err
					}
					bi, taken = t, true
				}
			case ir.Ret:
				return fr.ret, nil
			}

			if taken {
				break
			}
		}

		if !taken {
			bi++
		}
	}
	return fr.ret, nil
}

// step runs the instruction hook and dispatches one instruction.  Control
// transfer is the walker's business: Jump and CondJump do nothing here.
func (vm *Vm) step(b *ir.Block, in ir.Instr, fr *frame) error {
	if vm.hook != nil {
		if err := vm.hook(b, in, fr); err != nil {
			return err
		}
	}

	switch in.Op {
	case ir.Alloc:
		fr.vars[in.Args[0]] = 0
	case ir.Store:
		v, err := vm.resolve(in.Args[1])
		if err != nil {
			return err
		}
		fr.vars[in.Args[0]] = v
	case ir.Add, ir.Sub, ir.Mul, ir.Div:
		return vm.arith(in, fr)
	case ir.Call:
		return vm.dispatchCall(in)
	case ir.Jump, ir.CondJump:
	case ir.Ret:
		if len(in.Args) == 1 {
			v, err := vm.resolve(in.Args[0])
			if err != nil {
				return err
			}
			fr.ret = v
		}
	default:
		panic("unreachable")
	}
	return nil
}

func (vm *Vm) arith(in ir.Instr, fr *frame) error {
	l, err := vm.resolve(in.Args[1])
	if err != nil {
		return err
	}
	r, err := vm.resolve(in.Args[2])
	if err != nil {
		return err
	}

	switch in.Op {
	case ir.Add:
		fr.vars[in.Args[0]] = l + r
	case ir.Sub:
		fr.vars[in.Args[0]] = l - r
	case ir.Mul:
		fr.vars[in.Args[0]] = l * r
	case ir.Div:
		if r == 0 {
			return errDivZero{}
		}
		fr.vars[in.Args[0]] = l / r
	}
	return nil
}

// dispatchCall resolves the call arguments, then tries the builtin registry
// before user functions.  A user callee's result is discarded; no operand
// consumes it.
func (vm *Vm) dispatchCall(in ir.Instr) error {
	callee := in.Args[0]
	args := make([]int, len(in.Args)-1)
	for i, a := range in.Args[1:] {
		v, err := vm.resolve(a)
		if err != nil {
			return err
		}
		args[i] = v
	}

	if fn, ok := vm.reg.lookup(callee); ok {
		return fn(vm.out, args)
	}
	_, err := vm.Call(callee, args)
	return err
}

// resolve turns an operand into a value: innermost binding first, walking
// the frame stack outward, then literal fallback.  Many operands are raw
// literals, which is why the fallback exists at all.
func (vm *Vm) resolve(op string) (int, error) {
	for i := vm.frames.len() - 1; i >= 0; i-- {
		if v, ok := vm.frames.at(i).vars[op]; ok {
			return v, nil
		}
	}

	if strings.HasPrefix(op, dg.Prefix) {
		return dg.From(op)
	}
	if n, err := strconv.Atoi(op); err == nil {
		return n, nil
	}
	return 0, errBadOperand(op)
}

func blockIndex(fn *ir.Function, name string) (int, error) {
	for i, b := range fn.Blocks {
		if b.Name == name {
			return i, nil
		}
	}
	return 0, errNoBlock{fn.Name, name}
}
