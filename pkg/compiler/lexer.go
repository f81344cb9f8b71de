package compiler

import "fmt"

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"int":    INT,
	"return": RETURN,
	"void":   VOID,
}

// Lexer holds all mutable state for a single scanning pass over src.
// It borrows src and never mutates it; the source is assumed to be in a
// single-byte encoding, so bytes are indexed directly.
type Lexer struct {
	src    string
	pos    int // index of the next byte to consume
	line   int // current 1-based source line
	column int // current 1-based source column
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, column: 1}
}

// peek returns the byte at the current position without advancing.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the byte one position ahead of the current position.
func (l *Lexer) peek2() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one byte and returns it.
func (l *Lexer) advance() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return b
}

// skipWhitespace discards spaces, tabs, carriage returns, newlines and "//"
// line comments. Newlines consumed here still update line and column
// through advance. A lone '/' is left in place for the token scan.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '/':
			if l.peek2() != '/' {
				return
			}
			l.skipLineComment()
		default:
			return
		}
	}
}

// skipLineComment discards everything from the opening "//" to end-of-line.
// The newline itself stays for skipWhitespace so line accounting happens in
// one place.
func (l *Lexer) skipLineComment() {
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// scanIdent collects a full identifier or keyword token.
// The first character (letter or '_') must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	line, column := l.line, l.column
	start := l.pos
	for l.pos < len(l.src) && (isLetter(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}
	lexeme := l.src[start:l.pos]
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line, Column: column}
}

// scanInt collects a decimal integer literal. The token keeps the raw
// digits; numeric conversion is the parser's job.
func (l *Lexer) scanInt() Token {
	line, column := l.line, l.column
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	return Token{Type: INTEGER, Lexeme: l.src[start:l.pos], Line: line, Column: column}
}

// Next scans and returns the next token; the second result is false once
// the input is exhausted. A character that fits no token class comes back
// as an ERROR token whose Lexeme holds the diagnostic, and the cursor moves
// one byte past it, so the scan always makes progress and never fails.
func (l *Lexer) Next() (Token, bool) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{}, false
	}

	ch := l.peek()
	line, column := l.line, l.column

	if isLetter(ch) {
		return l.scanIdent(), true
	}
	if isDigit(ch) {
		return l.scanInt(), true
	}

	l.advance() // one byte is consumed even when no case matches
	switch ch {
	case '{':
		return Token{LBRACE, "{", line, column}, true
	case '}':
		return Token{RBRACE, "}", line, column}, true
	case '(':
		return Token{LPAREN, "(", line, column}, true
	case ')':
		return Token{RPAREN, ")", line, column}, true
	case ';':
		return Token{SEMICOLON, ";", line, column}, true
	case '!':
		return Token{BANG, "!", line, column}, true
	case '-':
		return Token{MINUS, "-", line, column}, true
	case '+':
		return Token{PLUS, "+", line, column}, true
	case '/':
		return Token{SLASH, "/", line, column}, true
	case '*':
		return Token{STAR, "*", line, column}, true
	case '~':
		return Token{TILDE, "~", line, column}, true
	default:
		msg := fmt.Sprintf("unrecognized character %q", ch)
		return Token{ERROR, msg, line, column}, true
	}
}

// Lex tokenizes src in full and returns every token in source order, ERROR
// tokens included.
func Lex(src string) []Token {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
