package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"git.sr.ht/~vacu/quarter/codegen"
	"git.sr.ht/~vacu/quarter/lexer"
	"git.sr.ht/~vacu/quarter/log"
	"git.sr.ht/~vacu/quarter/lower"
	"git.sr.ht/~vacu/quarter/parser"
	"git.sr.ht/~vacu/quarter/vm"
)

type options struct {
	debug bool // -d: run under the step debugger
	jumps bool // -j: jump-driven execution instead of the straight-line walk
	emit  bool // -S: print mnemonics instead of executing
}

func main() {
	var opts options

	flags, optind, err := getopt.Getopts(os.Args, "djS")
	if err != nil {
		usage()
	}
	for _, f := range flags {
		switch f.Option {
		case 'd':
			opts.debug = true
		case 'j':
			opts.jumps = true
		case 'S':
			opts.emit = true
		}
	}

	switch args := os.Args[optind:]; len(args) {
	case 0:
		repl(opts)
	case 1:
		log.CrashOnError = true
		runFile(args[0], opts)
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-djS] [file]\n", os.Args[0])
	os.Exit(1)
}

func repl(opts options) {
	r := bufio.NewReader(os.Stdin)

	for {
		fmt.Fprint(os.Stderr, "> ")
		line, err := r.ReadString('\n')

		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stderr, "^D")
			os.Exit(0)
		case err != nil:
			log.Err("%s", err)
			continue
		}

		// Each line is a complete program of its own; no bindings,
		// functions or slots survive to the next one.
		err = run(line, os.Stdout, opts)
		if err != nil && !errors.Is(err, vm.ErrQuit) {
			log.Err("%s", err)
		}
	}
}

func runFile(name string, opts options) {
	bytes, err := os.ReadFile(name)
	if err != nil {
		log.Err("%s", err)
	}

	if err := run(string(bytes), os.Stdout, opts); err != nil {
		if errors.Is(err, vm.ErrQuit) {
			return
		}
		log.Err("%s", err)
	}
}

// run takes one complete source unit through the whole pipeline: lex, parse,
// lower, then execute — or print mnemonics under -S.
func run(src string, out io.Writer, opts options) error {
	l := lexer.New(src)
	go l.Run()

	prog, err := parser.Parse(l.Out)
	if err != nil {
		return err
	}
	cfg, err := lower.Lower(prog)
	if err != nil {
		return err
	}

	if opts.emit {
		return codegen.Emit(out, cfg)
	}

	m := vm.New(cfg, vm.NewRegistry(), out)
	m.JumpDriven = opts.jumps

	if opts.debug {
		_, err = vm.NewDebugger(m, os.Stdin, os.Stderr).Run()
		return err
	}
	_, err = m.Run()
	return err
}
