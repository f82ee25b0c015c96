package vm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"git.sr.ht/~vacu/quarter/ir"
)

// ErrQuit is returned when the operator aborts a debug session.  The frame
// stack is left as it was; there is no rollback.
var ErrQuit = errors.New("debug session aborted")

// Debugger wraps a Vm's instruction dispatch with a pause-per-instruction
// prompt.  Each instruction is shown before it runs; the operator steps,
// inspects the current frame, or quits.
type Debugger struct {
	vm  *Vm
	in  *bufio.Reader
	out io.Writer
}

func NewDebugger(vm *Vm, in io.Reader, out io.Writer) *Debugger {
	d := &Debugger{vm, bufio.NewReader(in), out}
	vm.hook = d.pause
	return d
}

// Run executes the entry function under the debugger.
func (d *Debugger) Run() (int, error) {
	return d.vm.Run()
}

func (d *Debugger) pause(b *ir.Block, in ir.Instr, fr *frame) error {
	fmt.Fprintf(d.out, "%s.%s: %s\n", fr.fn, b.Name, in)

	for {
		fmt.Fprint(d.out, "(s)tep (i)nspect (q)uit? ")

		line, err := d.in.ReadString('\n')
		if err != nil && line == "" {
			// EOF on the prompt: same as quitting
			return ErrQuit
		}

		switch cmd := strings.TrimSpace(line); cmd {
		case "s", "":
			return nil
		case "i":
			d.inspect(fr)
		case "q":
			return ErrQuit
		default:
			fmt.Fprintf(d.out, "unknown command ‘%s’\n", cmd)
		}
	}
}

func (d *Debugger) inspect(fr *frame) {
	if len(fr.vars) == 0 {
		fmt.Fprintln(d.out, "  (no bindings)")
		return
	}

	names := make([]string, 0, len(fr.vars))
	for n := range fr.vars {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		fmt.Fprintf(d.out, "  %s = %d\n", n, fr.vars[n])
	}
}
