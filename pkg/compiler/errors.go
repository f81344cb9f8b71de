package compiler

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnexpectedToken is returned when the grammar requires one token
	// type and the stream holds another.
	ErrUnexpectedToken = errors.NewKind("expected %s, found %s at line %d, column %d")

	// ErrUnexpectedEOF is returned when the token stream ends while the
	// grammar still requires more input.
	ErrUnexpectedEOF = errors.NewKind("expected %s, found end of input")

	// ErrTrailingTokens is returned when tokens remain after the single
	// function that forms a complete program.
	ErrTrailingTokens = errors.NewKind("expected end of input, found %s at line %d, column %d")

	// ErrExpectedStatement is returned when a statement position holds a
	// token no statement can start with.
	ErrExpectedStatement = errors.NewKind("expected statement, found %s at line %d, column %d")

	// ErrExpectedExpression is returned when an expression position holds a
	// token no expression can start with.
	ErrExpectedExpression = errors.NewKind("expected expression, found %s at line %d, column %d")

	// ErrInvalidToken surfaces a lexical mistake the lexer recorded as an
	// ERROR token; the token's lexeme carries the diagnostic.
	ErrInvalidToken = errors.NewKind("%s at line %d, column %d")

	// ErrIntegerOutOfRange is returned when an integer literal does not fit
	// the target's 32-bit int.
	ErrIntegerOutOfRange = errors.NewKind("integer literal %q out of 32-bit range at line %d, column %d")

	// ErrUnsupportedExpression is returned when the code generator meets an
	// expression it has no emission strategy for, identifiers included.
	// Nothing is emitted for such a node.
	ErrUnsupportedExpression = errors.NewKind("cannot generate code for expression %T")

	// ErrUnsupportedStatement is the statement-level counterpart of
	// ErrUnsupportedExpression.
	ErrUnsupportedStatement = errors.NewKind("cannot generate code for statement %T")

	// ErrGeneratorFinalized is returned when a CodeGen is asked to emit
	// after its output has been taken.
	ErrGeneratorFinalized = errors.NewKind("code generator already finalized")
)
