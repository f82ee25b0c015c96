package lexer

import "unicode"

var keywords = map[string]TokenType{
	"val":    TokVal,
	"func":   TokFunc,
	"loop":   TokLoop,
	"to":     TokTo,
	"when":   TokWhen,
	"is":     TokIs,
	"derive": TokDerive,
	"from":   TokFrom,
	"by":     TokBy,
	"return": TokReturn,
}

func IsEol(r rune) bool {
	return r == ';' ||
		r == '\n'
}

func IsIdentStart(r rune) bool {
	return unicode.IsLetter(r) ||
		r == '_'
}

func IsIdentChar(r rune) bool {
	return IsIdentStart(r) ||
		unicode.IsDigit(r)
}

// IsOperand reports whether a token can stand alone as an operand.
func IsOperand(kind TokenType) bool {
	return kind == TokIdent ||
		kind == TokNumber
}

// IsBinOp reports whether a token is a binary combining operator.
func IsBinOp(kind TokenType) bool {
	return kind == TokPlus ||
		kind == TokMinus ||
		kind == TokStar ||
		kind == TokSlash
}
