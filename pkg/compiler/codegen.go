package compiler

import (
	"fmt"
	"strings"
)

// CodeGen walks an AST and emits x86-64 assembly source text in AT&T
// syntax. A generator is single-use: it accumulates text while
// CompileProgram walks the tree, then Output finalizes it. Emission after
// finalization is an error, so one translation's text can never bleed into
// another.
type CodeGen struct {
	out       strings.Builder
	finalized bool
}

// NewCodeGen returns an empty, accumulating CodeGen.
func NewCodeGen() *CodeGen {
	return &CodeGen{}
}

// line appends one line of assembly to the output.
func (cg *CodeGen) line(format string, args ...any) {
	fmt.Fprintf(&cg.out, format+"\n", args...)
}

// CompileProgram emits code for the whole tree in one depth-first pass.
// The first failing node aborts the pass; nothing is emitted for it.
func (cg *CodeGen) CompileProgram(prog *Program) error {
	if cg.finalized {
		return ErrGeneratorFinalized.New()
	}
	return cg.genFunction(&prog.Function)
}

// genFunction emits the symbol directive and the label, then the body in
// source order.
func (cg *CodeGen) genFunction(fn *Function) error {
	cg.line("\t.globl %s", fn.Name.Name)
	cg.line("%s:", fn.Name.Name)
	for _, s := range fn.Body {
		if err := cg.genStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// genStmt emits the instructions that carry out stmt. The expression's
// value is left in %eax and ret follows at once; no other statement's
// output comes between the two.
func (cg *CodeGen) genStmt(s Stmt) error {
	switch n := s.(type) {
	case *ReturnStmt:
		if err := cg.genExpr(n.Value); err != nil {
			return err
		}
		cg.line("\tret")
		return nil
	default:
		return ErrUnsupportedStatement.New(s)
	}
}

// genExpr emits code that leaves the value of e in %eax.
func (cg *CodeGen) genExpr(e Expr) error {
	switch n := e.(type) {
	case *IntegerLiteral:
		cg.line("\tmovl\t$%d, %%eax", n.Value)
		return nil
	case *UnaryExpr:
		return cg.genUnary(n)
	default:
		// Identifiers land here: the subset has no variables, so there is
		// nothing to load them from.
		return ErrUnsupportedExpression.New(e)
	}
}

// genUnary emits the operand first, then the operation on %eax in place.
func (cg *CodeGen) genUnary(u *UnaryExpr) error {
	if err := cg.genExpr(u.Operand); err != nil {
		return err
	}
	switch u.Op {
	case TILDE:
		cg.line("\tnot\t%%eax")
	case MINUS:
		cg.line("\tneg\t%%eax")
	case BANG:
		cg.line("\tcmpl\t$0, %%eax")
		cg.line("\tmovl\t$0, %%eax")
		cg.line("\tsete\t%%al")
	default:
		return ErrUnsupportedExpression.New(u)
	}
	return nil
}

// Output finalizes the generator and returns everything emitted so far.
// Later CompileProgram calls fail with ErrGeneratorFinalized.
func (cg *CodeGen) Output() string {
	cg.finalized = true
	return cg.out.String()
}

// Generate translates prog to assembly text with a fresh generator.
func Generate(prog *Program) (string, error) {
	cg := NewCodeGen()
	if err := cg.CompileProgram(prog); err != nil {
		return "", err
	}
	return cg.Output(), nil
}
