package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"goecc/pkg/compiler"
	"goecc/pkg/utils"
)

func main() {
	outPath := flag.String("o", "", `output assembly file path (default: input with .s extension, "-" for stdout)`)
	dumpTokens := flag.Bool("tokens", false, "print the token stream to stderr")
	dumpAST := flag.Bool("ast", false, "print the parsed tree to stderr")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "ecc: fatal error: no input files")
		fmt.Fprintln(os.Stderr, "compilation terminated.")
		os.Exit(2)
	}
	inPath := flag.Arg(0)

	src, err := utils.ReadSource(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecc: fatal error: %v\n", err)
		fmt.Fprintln(os.Stderr, "compilation terminated.")
		os.Exit(1)
	}

	// Diagnostic dumps go to stderr so they compose with the assembly
	// output on stdout.
	if *dumpTokens || *dumpAST {
		tokens := compiler.Lex(src)
		if *dumpTokens {
			fmt.Fprintf(os.Stderr, "Tokens (%d)\n", len(tokens))
			for _, tok := range tokens {
				fmt.Fprintln(os.Stderr, " ", tok)
			}
		}
		if *dumpAST {
			if prog, perr := compiler.Parse(tokens); perr == nil {
				fmt.Fprint(os.Stderr, compiler.FormatAST(prog))
			}
		}
	}

	asm, err := compiler.Compile(compiler.NewEmptyContext(), src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecc: error: %v\n", err)
		os.Exit(1)
	}

	output := *outPath
	if output == "" {
		output = utils.OutputPath(inPath)
	}
	if output == "-" {
		fmt.Print(asm)
		return
	}

	if err := os.WriteFile(output, []byte(asm), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "ecc: fatal error: cannot write %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("compiled %d bytes -> %s\n", len(asm), output)
}
