// Package codegen prints a lowered program as x86-64 mnemonics.  The output
// is text only: no instruction encoding, no register allocation, no fixups.
// It exists so a program's shape can be read; it carries no further
// contract.
package codegen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"git.sr.ht/~vacu/quarter/dg"
	"git.sr.ht/~vacu/quarter/ir"
)

// Emit writes every function in emission order, each with its own
// prologue and epilogue and one local label per basic block.
func Emit(w io.Writer, prog *ir.Program) error {
	for _, name := range prog.Order {
		if err := emitFunc(w, prog.Funcs[name]); err != nil {
			return err
		}
	}
	return nil
}

func emitFunc(w io.Writer, fn *ir.Function) error {
	if _, err := fmt.Fprintf(w, "%s:\n", fn.Name); err != nil {
		return err
	}
	fmt.Fprintln(w, "  push rbp")
	fmt.Fprintln(w, "  mov rbp, rsp")

	for _, b := range fn.Blocks {
		fmt.Fprintf(w, ".%s:\n", b.Name)
		for _, in := range b.Instrs {
			emitInstr(w, in)
		}
	}

	fmt.Fprintln(w, "  mov rsp, rbp")
	fmt.Fprintln(w, "  pop rbp")
	_, err := fmt.Fprintln(w, "  ret")
	return err
}

func emitInstr(w io.Writer, in ir.Instr) {
	switch in.Op {
	case ir.Alloc:
		fmt.Fprintf(w, "  sub rsp, 8\t; %s\n", in)
	case ir.Store:
		fmt.Fprintf(w, "  mov qword [rel %s], %s\n", in.Args[0], opnd(in.Args[1]))
	case ir.Add, ir.Sub, ir.Mul, ir.Div:
		emitArith(w, in)
	case ir.Jump:
		fmt.Fprintf(w, "  jmp .%s\n", in.Args[0])
	case ir.CondJump:
		fmt.Fprintf(w, "  cmp %s, %s\n", opnd(in.Args[0]), opnd(in.Args[1]))
		fmt.Fprintf(w, "  jne .%s\n", in.Args[2])
	case ir.Call:
		for i := len(in.Args) - 1; i >= 1; i-- {
			fmt.Fprintf(w, "  push %s\n", opnd(in.Args[i]))
		}
		fmt.Fprintf(w, "  call %s\n", in.Args[0])
		if n := len(in.Args) - 1; n > 0 {
			fmt.Fprintf(w, "  add rsp, %d\n", 8*n)
		}
	case ir.Ret:
		if len(in.Args) == 1 {
			fmt.Fprintf(w, "  mov rax, %s\n", opnd(in.Args[0]))
		}
		fmt.Fprintln(w, "  ret")
	default:
		fmt.Fprintln(w, "  ; unimplemented IR op")
	}
}

func emitArith(w io.Writer, in ir.Instr) {
	fmt.Fprintf(w, "  mov rax, %s\n", opnd(in.Args[1]))

	switch in.Op {
	case ir.Add:
		fmt.Fprintf(w, "  add rax, %s\n", opnd(in.Args[2]))
	case ir.Sub:
		fmt.Fprintf(w, "  sub rax, %s\n", opnd(in.Args[2]))
	case ir.Mul:
		fmt.Fprintf(w, "  imul rax, %s\n", opnd(in.Args[2]))
	case ir.Div:
		fmt.Fprintln(w, "  cqo")
		fmt.Fprintf(w, "  idiv qword %s\n", opnd(in.Args[2]))
	}

	fmt.Fprintf(w, "  mov qword [rel %s], rax\n", in.Args[0])
}

// opnd renders an operand: literals become immediates (dodecagrams in
// decimal), names become rip-relative loads.
func opnd(s string) string {
	if strings.HasPrefix(s, dg.Prefix) {
		if n, err := dg.From(s); err == nil {
			return strconv.Itoa(n)
		}
	}
	if _, err := strconv.Atoi(s); err == nil {
		return s
	}
	return "[rel " + s + "]"
}
