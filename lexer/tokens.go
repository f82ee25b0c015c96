package lexer

import "fmt"

type TokenType int

const (
	// TokError is the token emitted during a lexing error.  It signals the
	// end of lexical analysis.
	TokError TokenType = iota

	TokEndStmt // End of statement, either a newline or semicolon
	TokEof     // End of file

	TokIdent  // An identifier
	TokNumber // An integer literal, decimal or ‘0z’ dodecagram

	TokVal    // The ‘val’ keyword
	TokFunc   // The ‘func’ keyword
	TokLoop   // The ‘loop’ keyword
	TokTo     // The ‘to’ keyword
	TokWhen   // The ‘when’ keyword
	TokIs     // The ‘is’ keyword
	TokDerive // The ‘derive’ keyword
	TokFrom   // The ‘from’ keyword
	TokBy     // The ‘by’ keyword
	TokReturn // The ‘return’ keyword

	TokColon  // The ‘:’ type separator
	TokAssign // The ‘=’ operator

	TokPlus  // The ‘+’ operator
	TokMinus // The ‘-’ operator
	TokStar  // The ‘*’ operator
	TokSlash // The ‘/’ operator

	TokPOpen  // The ‘(’ delimiter
	TokPClose // The ‘)’ delimiter
	TokBOpen  // The ‘{’ delimiter
	TokBClose // The ‘}’ delimiter
	TokComma  // The ‘,’ delimiter
)

type Token struct {
	Kind TokenType
	Val  string
}

// Maximum length of an identifier before truncation in diagnostics printing
const maxStrLen = 20

func (t Token) String() string {
	switch t.Kind {
	case TokError:
		return "Error: " + t.Val

	case TokEndStmt:
		return "end of statement"
	case TokEof:
		return "EOF"

	case TokIdent, TokNumber:
		if len(t.Val) > maxStrLen {
			return fmt.Sprintf("%.*s…", maxStrLen, t.Val)
		}
		return t.Val

	case TokVal, TokFunc, TokLoop, TokTo, TokWhen, TokIs, TokDerive,
		TokFrom, TokBy, TokReturn:
		return "keyword ‘" + t.Val + "’"

	case TokColon:
		return ":"
	case TokAssign:
		return "="
	case TokPlus:
		return "+"
	case TokMinus:
		return "-"
	case TokStar:
		return "*"
	case TokSlash:
		return "/"
	case TokPOpen:
		return "("
	case TokPClose:
		return ")"
	case TokBOpen:
		return "{"
	case TokBClose:
		return "}"
	case TokComma:
		return ","
	}

	panic("unreachable")
}
