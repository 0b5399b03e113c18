package atrace

import (
	"context"
	"encoding/binary"
	"sync"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// SpanProcessor mirrors OpenTelemetry spans as atrace async sections. The
// cookie is derived from the span ID and the section keeps the name the span
// had when it started, since async begin and end must match.
type SpanProcessor struct {
	b     *Binding
	names sync.Map // trace.SpanID -> string
}

var _ sdktrace.SpanProcessor = (*SpanProcessor)(nil)

// NewSpanProcessor creates a processor writing to b, or to the default binding
// when b is nil.
func NewSpanProcessor(b *Binding) *SpanProcessor {
	if b == nil {
		b = Default()
	}
	return &SpanProcessor{b: b}
}

// OnStart implements sdktrace.SpanProcessor.
func (p *SpanProcessor) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	id := s.SpanContext().SpanID()
	name := s.Name()
	p.names.Store(id, name)
	p.b.AsyncBegin(name, spanCookie(id))
}

// OnEnd implements sdktrace.SpanProcessor.
func (p *SpanProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	id := s.SpanContext().SpanID()
	name := s.Name()
	if started, ok := p.names.LoadAndDelete(id); ok {
		name = started.(string)
	}
	p.b.AsyncEnd(name, spanCookie(id))
}

// Shutdown implements sdktrace.SpanProcessor.
func (p *SpanProcessor) Shutdown(context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (p *SpanProcessor) ForceFlush(context.Context) error { return nil }

func spanCookie(id trace.SpanID) int32 {
	return int32(binary.BigEndian.Uint32(id[4:]))
}
