package vm

import "fmt"

type errNoFunction string

func (e errNoFunction) Error() string {
	return fmt.Sprintf("call to undefined function ‘%s’", string(e))
}

type errArity struct {
	fn   string
	want int
	got  int
}

func (e errArity) Error() string {
	return fmt.Sprintf("function ‘%s’ takes %d arguments but was given %d",
		e.fn, e.want, e.got)
}

type errBadOperand string

func (e errBadOperand) Error() string {
	return fmt.Sprintf("operand ‘%s’ is neither a known binding nor a number",
		string(e))
}

type errNoBlock struct {
	fn    string
	block string
}

func (e errNoBlock) Error() string {
	return fmt.Sprintf("function ‘%s’ has no block ‘%s’", e.fn, e.block)
}

type errDivZero struct{}

func (_ errDivZero) Error() string {
	return "division by zero"
}
