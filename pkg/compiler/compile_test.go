package compiler

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errors "gopkg.in/src-d/go-errors.v1"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "Minimal Program",
			input: "int main(void){return 2;}",
			expected: "\t.globl main\n" +
				"main:\n" +
				"\tmovl\t$2, %eax\n" +
				"\tret\n",
		},
		{
			name:  "Formatted Source",
			input: "int main(void)\n{\n\treturn 0;\n}\n",
			expected: "\t.globl main\n" +
				"main:\n" +
				"\tmovl\t$0, %eax\n" +
				"\tret\n",
		},
		{
			name:  "Comments Ignored",
			input: "// exit code for the shell\nint main(void){return 3;} // done\n",
			expected: "\t.globl main\n" +
				"main:\n" +
				"\tmovl\t$3, %eax\n" +
				"\tret\n",
		},
		{
			name:  "Unary Operators",
			input: "int main(void){return !~-1;}",
			expected: "\t.globl main\n" +
				"main:\n" +
				"\tmovl\t$1, %eax\n" +
				"\tneg\t%eax\n" +
				"\tnot\t%eax\n" +
				"\tcmpl\t$0, %eax\n" +
				"\tmovl\t$0, %eax\n" +
				"\tsete\t%al\n" +
				"\tret\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(NewEmptyContext(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestCompileErrors verifies the pipeline aborts on the first failing stage
// and returns no partial output.
func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  *errors.Kind
	}{
		{
			name:  "Missing Closing Brace",
			input: "int main(void){return 2;",
			kind:  ErrUnexpectedEOF,
		},
		{
			name:  "Unrecognized Character",
			input: "int main(void){return 2#;}",
			kind:  ErrInvalidToken,
		},
		{
			name:  "Integer Out Of Range",
			input: "int main(void){return 4294967296;}",
			kind:  ErrIntegerOutOfRange,
		},
		{
			name:  "Identifier Expression",
			input: "int main(void){return x;}",
			kind:  ErrExpectedExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Compile(NewEmptyContext(), tt.input)
			require.Error(t, err)
			assert.True(t, tt.kind.Is(err), "got error %v", err)
			assert.Empty(t, out)
		})
	}
}

func TestCompileSpans(t *testing.T) {
	tracer := mocktracer.New()
	ctx := NewContext(context.Background(), WithTracer(tracer))

	_, err := Compile(ctx, "int main(void){return 2;}")
	require.NoError(t, err)

	spans := tracer.FinishedSpans()
	var names []string
	for _, span := range spans {
		names = append(names, span.OperationName)
	}
	assert.Equal(t, []string{"lex", "parse", "codegen", "compile"}, names)

	// The stage spans are children of the compile span, which is the root.
	for _, span := range spans {
		if span.OperationName == "compile" {
			assert.Zero(t, span.ParentID)
		} else {
			assert.NotZero(t, span.ParentID)
		}
	}
}

// A failed parse still finishes the spans of the stages that ran; the
// codegen span never starts.
func TestCompileSpansOnError(t *testing.T) {
	tracer := mocktracer.New()
	ctx := NewContext(context.Background(), WithTracer(tracer))

	_, err := Compile(ctx, "int main(void){return 2;")
	require.Error(t, err)

	var names []string
	for _, span := range tracer.FinishedSpans() {
		names = append(names, span.OperationName)
	}
	assert.Equal(t, []string{"lex", "parse", "compile"}, names)
}

func TestCompileDeterministic(t *testing.T) {
	src := "int main(void){return 42;}"

	first, err := Compile(NewEmptyContext(), src)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		got, err := Compile(NewEmptyContext(), src)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

// Distinct compiles share no state and may run concurrently.
func TestCompileConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			src := fmt.Sprintf("int main(void){return %d;}", n)
			want := fmt.Sprintf("\t.globl main\nmain:\n\tmovl\t$%d, %%eax\n\tret\n", n)
			for j := 0; j < 10; j++ {
				got, err := Compile(NewEmptyContext(), src)
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}(i)
	}
	wg.Wait()
}
