package compiler

import "fmt"

//  Expression nodes

// Expr is implemented by every node that produces a value.
// Code generation always leaves the result in %eax.
type Expr interface {
	exprNode()
	String() string
}

// IntegerLiteral is a compile-time integer constant, already range-checked
// to the target's 32-bit int.
//
//	return 2;
//	       ^  IntegerLiteral{Value: 2}
type IntegerLiteral struct {
	Value int32
}

func (*IntegerLiteral) exprNode()        {}
func (l *IntegerLiteral) String() string { return fmt.Sprintf("%d", l.Value) }

// Identifier is a name, either a function's or a would-be variable's. The
// grammar never places one in expression position, but the tree can hold
// one there; the code generator rejects it.
type Identifier struct {
	Name string
}

func (*Identifier) exprNode()        {}
func (i *Identifier) String() string { return i.Name }

// UnaryExpr represents Op Operand.
//
//	return -5;
//	       ^^
//	       |Operand
//	       Op
type UnaryExpr struct {
	Op      TokenType // BANG, MINUS or TILDE
	Operand Expr
}

func (*UnaryExpr) exprNode()        {}
func (u *UnaryExpr) String() string { return fmt.Sprintf("(%s %s)", u.Op, u.Operand) }

//  Statement nodes

// Stmt is implemented by every node that does not produce a value.
type Stmt interface {
	stmtNode()
	String() string
}

// ReturnStmt represents  return expr;
type ReturnStmt struct {
	Value Expr
}

func (*ReturnStmt) stmtNode() {}
func (r *ReturnStmt) String() string {
	return fmt.Sprintf("ReturnStmt(%s)", r.Value)
}

//  Top-level nodes

// Function represents  int name(void) { body }
// The body holds at least one statement; the parser never builds an empty
// one.
type Function struct {
	Name Identifier
	Body []Stmt
}

func (f *Function) String() string {
	return fmt.Sprintf("Function(int %s, stmts=%d)", f.Name.Name, len(f.Body))
}

// Program is the root of the tree: exactly one function definition.
// Each parse builds a fresh tree; nodes are never shared between programs.
type Program struct {
	Function Function
}

func (p *Program) String() string {
	return fmt.Sprintf("Program(%s)", p.Function.Name.Name)
}
