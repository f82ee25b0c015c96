package vm

import (
	"io"

	"git.sr.ht/~vacu/quarter/ir"
)

// Vm executes a lowered program.  It owns the call-frame stack exclusively;
// the program itself is never mutated.
type Vm struct {
	prog   *ir.Program
	reg    *Registry
	out    io.Writer
	frames *stack[*frame]

	// JumpDriven selects real control transfer: Jump and CondJump move to
	// their target block and Ret ends the call.  The default is the
	// straight-line walk of the original runtime, which visits every
	// instruction of every block in emission order and treats jumps as
	// records only.
	JumpDriven bool

	// hook, when set, runs before each instruction is dispatched.  An
	// error from the hook aborts the call.  The debugger lives here.
	hook func(b *ir.Block, in ir.Instr, fr *frame) error
}

// frame is the variable bindings of one active call.  Only the top frame is
// written to; lookups walk the whole stack from the top outward.
type frame struct {
	fn   string
	vars map[string]int
	ret  int
}

func New(prog *ir.Program, reg *Registry, out io.Writer) *Vm {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Vm{
		prog:   prog,
		reg:    reg,
		out:    out,
		frames: newStack[*frame](8),
	}
}

// Run executes the synthesized entry function.
func (vm *Vm) Run() (int, error) {
	return vm.Call(ir.EntryFunc, nil)
}

// Call invokes a function by name with already-evaluated arguments and
// returns its result, 0 when no Ret instruction produced a value.  The
// argument list must match the parameter count exactly.
func (vm *Vm) Call(name string, args []int) (int, error) {
	fn, ok := vm.prog.Funcs[name]
	if !ok {
		return 0, errNoFunction(name)
	}
	if len(args) != len(fn.Params) {
		return 0, errArity{name, len(fn.Params), len(args)}
	}

	fr := &frame{fn: name, vars: make(map[string]int, len(fn.Slots))}
	for i, p := range fn.Params {
		fr.vars[p] = args[i]
	}

	vm.frames.push(fr)
	defer vm.frames.pop()

	if vm.JumpDriven {
		return vm.execJump(fn, fr)
	}
	return vm.execFlat(fn, fr)
}
