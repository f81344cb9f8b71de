package compiler

import "strconv"

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program    = function EOF
//	function   = "int" IDENTIFIER "(" "void" ")" "{" statement "}"
//	statement  = returnStmt
//	returnStmt = "return" expression ";"
//	expression = INTEGER | ("!" | "-" | "~") expression
//
// One token of lookahead, no backtracking. The first deviation from the
// grammar aborts the parse; no partial tree escapes to the caller.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser returns a Parser positioned at the first of tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// peek returns the current token without consuming it; ok is false once
// the stream is exhausted.
func (p *Parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// advance consumes and returns the current token. Callers peek first.
func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// expect consumes the current token if it matches tt. An ERROR token is
// surfaced as the lexical mistake it records rather than as a mismatch.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok, ok := p.peek()
	if !ok {
		return Token{}, ErrUnexpectedEOF.New(tt)
	}
	if tok.Type == ERROR {
		return tok, ErrInvalidToken.New(tok.Lexeme, tok.Line, tok.Column)
	}
	if tok.Type != tt {
		return tok, ErrUnexpectedToken.New(tt, tok.Type, tok.Line, tok.Column)
	}
	return p.advance(), nil
}

// parseProgram parses the single function and then checks the stream is
// fully consumed.
func (p *Parser) parseProgram() (*Program, error) {
	fn, err := p.parseFunction()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		if tok.Type == ERROR {
			return nil, ErrInvalidToken.New(tok.Lexeme, tok.Line, tok.Column)
		}
		return nil, ErrTrailingTokens.New(tok.Type, tok.Line, tok.Column)
	}
	return &Program{Function: *fn}, nil
}

// parseFunction parses  "int" IDENTIFIER "(" "void" ")" "{" statement "}".
func (p *Parser) parseFunction() (*Function, error) {
	if _, err := p.expect(INT); err != nil {
		return nil, err
	}
	name, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(VOID); err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	return &Function{Name: Identifier{Name: name.Lexeme}, Body: []Stmt{stmt}}, nil
}

// parseStatement dispatches on the token that can begin a statement. The
// subset has exactly one statement form.
func (p *Parser) parseStatement() (Stmt, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, ErrUnexpectedEOF.New("statement")
	}
	switch tok.Type {
	case RETURN:
		return p.parseReturn()
	case ERROR:
		return nil, ErrInvalidToken.New(tok.Lexeme, tok.Line, tok.Column)
	default:
		return nil, ErrExpectedStatement.New(tok.Type, tok.Line, tok.Column)
	}
}

// parseReturn parses  "return" expression ";".
func (p *Parser) parseReturn() (Stmt, error) {
	if _, err := p.expect(RETURN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &ReturnStmt{Value: value}, nil
}

// parseExpression parses  INTEGER | ("!" | "-" | "~") expression.
// Prefix operators nest to the right: -~0 is (- (~ 0)). An identifier is
// not an expression in this subset and is reported, never accepted.
func (p *Parser) parseExpression() (Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, ErrUnexpectedEOF.New("expression")
	}
	switch tok.Type {
	case INTEGER:
		return p.parseIntegerLiteral()
	case BANG, MINUS, TILDE:
		op := p.advance()
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op.Type, Operand: operand}, nil
	case ERROR:
		return nil, ErrInvalidToken.New(tok.Lexeme, tok.Line, tok.Column)
	default:
		return nil, ErrExpectedExpression.New(tok.Type, tok.Line, tok.Column)
	}
}

// parseIntegerLiteral converts the raw digits to the target's 32-bit int.
// An out-of-range literal is an error here, never a wrapped or truncated
// value. A leading minus is a separate token, so "-2147483648" converts the
// bare literal and fails the range check.
func (p *Parser) parseIntegerLiteral() (Expr, error) {
	tok, err := p.expect(INTEGER)
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseInt(tok.Lexeme, 10, 32)
	if err != nil {
		return nil, ErrIntegerOutOfRange.New(tok.Lexeme, tok.Line, tok.Column)
	}
	return &IntegerLiteral{Value: int32(v)}, nil
}

// Parse builds the AST for tokens. Re-parsing the same tokens yields an
// equivalent tree; the first grammar deviation is returned as the error.
func Parse(tokens []Token) (*Program, error) {
	p := NewParser(tokens)
	return p.parseProgram()
}
