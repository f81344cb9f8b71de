package compiler

import "testing"

// plainSource is the smallest accepted program.
const plainSource = "int main(void){return 2;}"

// unarySource leans on the prefix-operator chain, the deepest tree the
// subset can produce.
const unarySource = `// stress the prefix chain
int main(void)
{
	return !~-!~-!~-!~-2;
}
`

// --- Lex benchmarks ---

func BenchmarkLex_Plain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Lex(plainSource)
	}
}

func BenchmarkLex_Unary(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Lex(unarySource)
	}
}

// --- Parse benchmarks ---
// Tokens are pre-computed outside the timed region.

func BenchmarkParse_Plain(b *testing.B) {
	tokens := Lex(plainSource)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(tokens); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Unary(b *testing.B) {
	tokens := Lex(unarySource)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(tokens); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Generate benchmarks ---
// The tree is pre-computed outside the timed region.

func BenchmarkGenerate_Plain(b *testing.B) {
	prog, err := Parse(Lex(plainSource))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(prog); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_Unary(b *testing.B) {
	prog, err := Parse(Lex(unarySource))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(prog); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Full pipeline benchmarks ---

func BenchmarkCompile_Plain(b *testing.B) {
	ctx := NewEmptyContext()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(ctx, plainSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompile_Unary(b *testing.B) {
	ctx := NewEmptyContext()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(ctx, unarySource); err != nil {
			b.Fatal(err)
		}
	}
}
