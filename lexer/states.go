package lexer

import (
	"strings"
	"unicode"
)

type lexFn func(*lexer) lexFn

func lexDefault(l *lexer) lexFn {
	for {
		switch r := l.next(); {
		case IsEol(r):
			l.emit(TokEndStmt)
		case r == eof:
			l.emit(TokEof)
			return nil

		case r == '#':
			return skipComment
		case r == ':':
			l.emit(TokColon)
		case r == '=':
			l.emit(TokAssign)
		case r == '+':
			l.emit(TokPlus)
		case r == '-':
			l.emit(TokMinus)
		case r == '*':
			l.emit(TokStar)
		case r == '/':
			l.emit(TokSlash)
		case r == '(':
			l.emit(TokPOpen)
		case r == ')':
			l.emit(TokPClose)
		case r == '{':
			l.emit(TokBOpen)
		case r == '}':
			l.emit(TokBClose)
		case r == ',':
			l.emit(TokComma)

		case unicode.IsDigit(r):
			l.backup()
			return lexNumber
		case IsIdentStart(r):
			l.backup()
			return lexIdent
		case unicode.IsSpace(r):
			l.start = l.pos
		default:
			return l.errorf("unexpected character ‘%c’", r)
		}
	}
}

func skipComment(l *lexer) lexFn {
	if i := strings.IndexByte(l.input[l.pos:], '\n'); i != -1 {
		l.pos += i
	} else {
		l.pos = len(l.input)
	}
	l.start = l.pos
	return lexDefault
}

func lexNumber(l *lexer) lexFn {
	l.start = l.pos

	for unicode.IsDigit(l.peek()) {
		l.next()
	}

	// ‘0z17X’ is a dodecagram literal
	if l.input[l.start:l.pos] == "0" && l.peek() == 'z' {
		l.next()
		for {
			r := l.peek()
			if !unicode.IsDigit(r) && r != 'X' && r != 'E' {
				break
			}
			l.next()
		}
	}

	l.emit(TokNumber)
	return lexDefault
}

func lexIdent(l *lexer) lexFn {
	l.start = l.pos

	for IsIdentChar(l.peek()) {
		l.next()
	}

	if kind, ok := keywords[l.input[l.start:l.pos]]; ok {
		l.emit(kind)
	} else {
		l.emit(TokIdent)
	}
	return lexDefault
}
