package codegen

import (
	"strings"
	"testing"

	"git.sr.ht/~vacu/quarter/ir"
	"git.sr.ht/~vacu/quarter/lexer"
	"git.sr.ht/~vacu/quarter/lower"
	"git.sr.ht/~vacu/quarter/parser"
)

func emitSrc(t *testing.T, s string) string {
	l := lexer.New(s)
	go l.Run()

	tree, err := parser.Parse(l.Out)
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	prog, err := lower.Lower(tree)
	if err != nil {
		t.Fatalf("Lower failed: %s", err)
	}

	sb := &strings.Builder{}
	if err := Emit(sb, prog); err != nil {
		t.Fatalf("Emit failed: %s", err)
	}
	return sb.String()
}

func TestEmitFunctionAndCall(t *testing.T) {
	s := "func add(a, b) { val c : int = a + b\nreturn c }\n" +
		"add(1, 0z10)\n"
	want := `add:
  push rbp
  mov rbp, rsp
.entry:
  sub rsp, 8	; alloc c
  mov rax, [rel a]
  add rax, [rel b]
  mov qword [rel c], rax
  mov rax, [rel c]
  ret
  mov rsp, rbp
  pop rbp
  ret
` + ir.EntryFunc + `:
  push rbp
  mov rbp, rsp
.entry:
  push 12
  push 1
  call add
  add rsp, 16
  ret
  mov rsp, rbp
  pop rbp
  ret
`

	if got := emitSrc(t, s); got != want {
		t.Fatalf("Expected:\n%s\nbut got:\n%s", want, got)
	}
}

func TestEmitJumps(t *testing.T) {
	s := "when x is 5 { say(x) }\n"
	want := ir.EntryFunc + `:
  push rbp
  mov rbp, rsp
.entry:
  cmp [rel x], 5
  jne .cont_0
.body_0:
  push [rel x]
  call say
  add rsp, 8
.cont_0:
  ret
  mov rsp, rbp
  pop rbp
  ret
`

	if got := emitSrc(t, s); got != want {
		t.Fatalf("Expected:\n%s\nbut got:\n%s", want, got)
	}
}

func TestEmitLoop(t *testing.T) {
	got := emitSrc(t, "loop 0 to 3 { say(i) }\n")

	for _, frag := range []string{
		"  mov qword [rel i], 0\n",
		"  jmp .cond_0\n",
		"  cmp [rel i], 3\n",
		"  jne .exit_0\n",
		"  jmp .body_0\n",
		"  mov rax, [rel i]\n  add rax, 1\n  mov qword [rel i], rax\n",
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("Expected the output to contain %q:\n%s", frag, got)
		}
	}
}

func TestOperandRendering(t *testing.T) {
	cases := map[string]string{
		"5":    "5",
		"0z17": "19",
		"x":    "[rel x]",
		"0zR":  "[rel 0zR]", // Bad digits fall back to a name
	}

	for in, want := range cases {
		if got := opnd(in); got != want {
			t.Errorf("Expected %q for %q but got %q", want, in, got)
		}
	}
}

func TestEmitDivision(t *testing.T) {
	got := emitSrc(t, "val x : int = 8 / 2\n")

	frag := "  mov rax, 8\n  cqo\n  idiv qword 2\n  mov qword [rel x], rax\n"
	if !strings.Contains(got, frag) {
		t.Fatalf("Expected the output to contain %q:\n%s", frag, got)
	}
}
