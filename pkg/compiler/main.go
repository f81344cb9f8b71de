// Package compiler provides a lexer, parser, and code generator for a tiny
// C subset that targets x86-64 assembly text in AT&T syntax.
//
// Pipeline: C source → Lex → Parse → Generate → assembly text
package compiler
