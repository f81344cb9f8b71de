package compiler

import (
	"context"
	"testing"

	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextSpanParentage(t *testing.T) {
	tracer := mocktracer.New()
	ctx := NewContext(context.Background(), WithTracer(tracer))

	outer, ctx := ctx.Span("outer")
	inner, _ := ctx.Span("inner")
	inner.Finish()
	outer.Finish()

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "inner", spans[0].OperationName)
	assert.Equal(t, "outer", spans[1].OperationName)
	assert.Equal(t, spans[1].SpanContext.SpanID, spans[0].ParentID)
	assert.Zero(t, spans[1].ParentID)
}

// Without an explicit tracer, spans still work; they just go nowhere.
func TestNewEmptyContextSpan(t *testing.T) {
	ctx := NewEmptyContext()
	span, child := ctx.Span("anything")
	require.NotNil(t, child)
	span.Finish()
}
