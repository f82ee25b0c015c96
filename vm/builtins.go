package vm

import (
	"fmt"
	"io"

	"git.sr.ht/~vacu/quarter/dg"
)

// Builtin is a named call target handled by the runtime instead of user
// code.  Arguments arrive already resolved; output goes to the Vm's program
// output stream.
type Builtin func(w io.Writer, args []int) error

// Registry maps call targets to builtins.  It is constructed explicitly and
// handed to the Vm; there is no process-wide registration.  Adding a builtin
// never changes the instruction format.
type Registry struct {
	m map[string]Builtin
}

func NewRegistry() *Registry {
	r := &Registry{m: make(map[string]Builtin, 8)}
	r.Register("say", builtinSay)
	r.Register("to_dg", builtinToDg)
	return r
}

func (r *Registry) Register(name string, fn Builtin) {
	r.m[name] = fn
}

func (r *Registry) lookup(name string) (Builtin, bool) {
	fn, ok := r.m[name]
	return fn, ok
}

func builtinSay(w io.Writer, args []int) error {
	for _, v := range args {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

func builtinToDg(w io.Writer, args []int) error {
	for _, v := range args {
		if _, err := fmt.Fprintln(w, dg.To(v)); err != nil {
			return err
		}
	}
	return nil
}
