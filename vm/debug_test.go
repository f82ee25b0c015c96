package vm

import (
	"errors"
	"strings"
	"testing"
)

func TestDebuggerStepsThrough(t *testing.T) {
	prog := lowerSrc(t, "val x : int = 5\nsay(x)\n")

	out := &strings.Builder{}
	sess := &strings.Builder{}
	// Step through alloc, store, call and the trailing ret
	d := NewDebugger(New(prog, nil, out), strings.NewReader("s\ns\ns\ns\n"), sess)

	if _, err := d.Run(); err != nil {
		t.Fatalf("Run failed: %s", err)
	}
	if out.String() != "5\n" {
		t.Fatalf("Expected program output ‘5’ but got %q", out.String())
	}
	if !strings.Contains(sess.String(), "_main.entry: alloc x") {
		t.Fatalf("Expected the session to show ‘alloc x’ but got %q",
			sess.String())
	}
}

func TestDebuggerInspect(t *testing.T) {
	prog := lowerSrc(t, "val x : int = 5\n")

	out := &strings.Builder{}
	sess := &strings.Builder{}
	// Inspect before the first instruction runs, then again after alloc
	d := NewDebugger(New(prog, nil, out), strings.NewReader("i\ns\ni\nq\n"), sess)

	if _, err := d.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Expected ErrQuit but got %v", err)
	}

	s := sess.String()
	if !strings.Contains(s, "(no bindings)") {
		t.Fatalf("Expected an empty first frame but got %q", s)
	}
	if !strings.Contains(s, "  x = 0\n") {
		t.Fatalf("Expected ‘x = 0’ after alloc but got %q", s)
	}
}

func TestDebuggerQuit(t *testing.T) {
	prog := lowerSrc(t, "say(5)\n")

	out := &strings.Builder{}
	d := NewDebugger(New(prog, nil, out), strings.NewReader("q\n"), &strings.Builder{})

	if _, err := d.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Expected ErrQuit but got %v", err)
	}
	if out.String() != "" {
		t.Fatalf("Expected no program output but got %q", out.String())
	}
}

func TestDebuggerEofQuits(t *testing.T) {
	prog := lowerSrc(t, "say(5)\n")

	d := NewDebugger(New(prog, nil, &strings.Builder{}),
		strings.NewReader(""), &strings.Builder{})

	if _, err := d.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Expected ErrQuit on EOF but got %v", err)
	}
}

func TestDebuggerUnknownCommand(t *testing.T) {
	prog := lowerSrc(t, "say(5)\n")

	sess := &strings.Builder{}
	d := NewDebugger(New(prog, nil, &strings.Builder{}),
		strings.NewReader("wat\nq\n"), sess)

	if _, err := d.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Expected ErrQuit but got %v", err)
	}
	if !strings.Contains(sess.String(), "unknown command ‘wat’") {
		t.Fatalf("Expected an unknown-command notice but got %q", sess.String())
	}
}
