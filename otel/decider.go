// Package otel instruments a decider with OpenTelemetry tracing for
// hosting runtimes. One internal-kind span is produced per decision or
// evolution; the wrapped decider stays pure.
package otel

import (
	"context"
	"fmt"

	"github.com/fold-labs/decider"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/fold-labs/decider/otel"

var tracer = otel.Tracer(scopeName)

var (
	AttrCommandType = attribute.Key("decider.command.type")
	AttrEventType   = attribute.Key("decider.event.type")
	AttrEventCount  = attribute.Key("decider.event.count")
	AttrRejected    = attribute.Key("decider.rejected")
)

// Traced is a context-aware view of a decider that records a span for
// every decision and evolution before delegating to the wrapped
// instance.
type Traced[C decider.Command, Si decider.State, So decider.State, Ei decider.Event, Eo decider.Event] struct {
	d decider.IDecider[C, Si, So, Ei, Eo]
}

// Trace instruments a decider with the globally registered tracer
// provider.
func Trace[C decider.Command, Si decider.State, So decider.State, Ei decider.Event, Eo decider.Event](
	d decider.IDecider[C, Si, So, Ei, Eo],
) *Traced[C, Si, So, Ei, Eo] {
	return &Traced[C, Si, So, Ei, Eo]{d: d}
}

// Decide delegates to the wrapped decider inside a span carrying the
// command type, the number of events produced, and whether the command
// was rejected.
func (t *Traced[C, Si, So, Ei, Eo]) Decide(ctx context.Context, command C, state Si) []Eo {
	commandType := fmt.Sprintf("%T", command)

	_, span := tracer.Start(ctx, "decider.decide "+commandType,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(AttrCommandType.String(commandType)),
	)
	defer span.End()

	events := t.d.Decide(command, state)

	span.SetAttributes(
		AttrEventCount.Int(len(events)),
		AttrRejected.Bool(len(events) == 0),
	)

	return events
}

// Evolve delegates to the wrapped decider inside a span carrying the
// event type.
func (t *Traced[C, Si, So, Ei, Eo]) Evolve(ctx context.Context, state Si, event Ei) So {
	eventType := fmt.Sprintf("%T", event)

	_, span := tracer.Start(ctx, "decider.evolve "+eventType,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(AttrEventType.String(eventType)),
	)
	defer span.End()

	return t.d.Evolve(state, event)
}

// InitialState returns the wrapped decider's initial state.
func (t *Traced[C, Si, So, Ei, Eo]) InitialState() So {
	return t.d.InitialState()
}
