package telemetry

import (
	"context"

	"github.com/zachlewis/colorconfig/internal/core/ports"
)

// Noop is a Tracer that records nothing. It is the default when no tracer
// is supplied.
type Noop struct{}

var _ ports.Tracer = Noop{}

// NewNoop returns a tracer that discards all spans.
func NewNoop() Noop { return Noop{} }

// Start returns the context unchanged and a span that does nothing.
func (Noop) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
