package compiler

import (
	"fmt"
	"strings"
)

// FormatAST renders prog for human inspection, one node per line with tab
// indentation. The layout is stable, but nothing in the pipeline consumes
// it back; code generation works from the tree alone.
//
//	FUN INT main:
//		params: ()
//		body:
//			RETURN Int<2>
func FormatAST(prog *Program) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FUN INT %s:\n", prog.Function.Name.Name)
	b.WriteString("\tparams: ()\n")
	b.WriteString("\tbody:\n")
	for _, s := range prog.Function.Body {
		fmt.Fprintf(&b, "\t\t%s\n", formatStmt(s))
	}
	return b.String()
}

func formatStmt(s Stmt) string {
	switch n := s.(type) {
	case *ReturnStmt:
		return "RETURN " + formatExpr(n.Value)
	default:
		return s.String()
	}
}

func formatExpr(e Expr) string {
	switch n := e.(type) {
	case *IntegerLiteral:
		return fmt.Sprintf("Int<%d>", n.Value)
	case *Identifier:
		return fmt.Sprintf("Ident<%q>", n.Name)
	case *UnaryExpr:
		return fmt.Sprintf("Unary<%s %s>", opGlyph(n.Op), formatExpr(n.Operand))
	default:
		return e.String()
	}
}

// opGlyph maps a prefix operator token back to its source character.
func opGlyph(tt TokenType) string {
	switch tt {
	case BANG:
		return "!"
	case MINUS:
		return "-"
	case TILDE:
		return "~"
	default:
		return tt.String()
	}
}
