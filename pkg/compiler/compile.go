package compiler

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Compile runs the full pipeline on src and returns the assembly text.
// Stages run strictly in order: the parser starts only on the complete
// token sequence, the generator only on the complete tree. The first
// failing stage aborts the pipeline and no partial output is returned.
//
// Compile keeps no state between calls; distinct calls share nothing and
// may run concurrently.
func Compile(ctx *Context, src string) (string, error) {
	span, ctx := ctx.Span("compile")
	defer span.Finish()

	logrus.WithFields(logrus.Fields{
		"bytes": len(src),
		"lines": strings.Count(src, "\n") + 1,
	}).Debug("compile: source accepted")

	lexSpan, _ := ctx.Span("lex")
	tokens := Lex(src)
	lexSpan.Finish()
	logrus.WithField("tokens", len(tokens)).Debug("compile: lexing finished")

	parseSpan, _ := ctx.Span("parse")
	prog, err := Parse(tokens)
	parseSpan.Finish()
	if err != nil {
		logrus.WithField("err", err).Debug("compile: parse failed")
		return "", err
	}
	logrus.WithField("function", prog.Function.Name.Name).Debug("compile: parsing finished")

	genSpan, _ := ctx.Span("codegen")
	asm, err := Generate(prog)
	genSpan.Finish()
	if err != nil {
		logrus.WithField("err", err).Debug("compile: codegen failed")
		return "", err
	}
	logrus.WithField("bytes", len(asm)).Debug("compile: code generation finished")

	return asm, nil
}
