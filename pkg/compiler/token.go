package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	// Keywords
	INT    TokenType = iota // "int"
	RETURN                  // "return"
	VOID                    // "void"

	// Literals
	IDENTIFIER // function name
	INTEGER    // decimal integer literal

	// Paired delimiters
	LBRACE // {
	RBRACE // }
	LPAREN // (
	RPAREN // )

	// Punctuation
	SEMICOLON // ;

	// Operators
	BANG  // !
	MINUS // -
	PLUS  // +
	SLASH // /
	STAR  // *
	TILDE // ~

	// ERROR marks a character the lexer could not classify. The scan keeps
	// going past it; whether the mistake is fatal is the parser's decision.
	ERROR
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	INT:        "INT",
	RETURN:     "RETURN",
	VOID:       "VOID",
	IDENTIFIER: "IDENTIFIER",
	INTEGER:    "INTEGER",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	SEMICOLON:  "SEMICOLON",
	BANG:       "BANG",
	MINUS:      "MINUS",
	PLUS:       "PLUS",
	SLASH:      "SLASH",
	STAR:       "STAR",
	TILDE:      "TILDE",
	ERROR:      "ERROR",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer. For every type but
// ERROR the Lexeme is the exact source text that was matched; an ERROR
// token carries its diagnostic message there instead.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int // 1-based source line of the token's first character
	Column int // 1-based source column of the token's first character
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d, col %d", t.Type, t.Lexeme, t.Line, t.Column)
}
