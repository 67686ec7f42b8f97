// Package logging instruments a decider with slog for hosting
// runtimes. The wrapped decider stays pure; all logging happens in the
// wrapper.
package logging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fold-labs/decider"
)

// Option configures a Logged decider.
type Option func(*options)

type options struct {
	level slog.Level
}

// WithLevel sets the level operations are logged at. Default is
// slog.LevelDebug.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// Logged is a context-aware view of a decider that records every
// decision and evolution before delegating to the wrapped instance.
type Logged[C decider.Command, Si decider.State, So decider.State, Ei decider.Event, Eo decider.Event] struct {
	d      decider.IDecider[C, Si, So, Ei, Eo]
	logger *slog.Logger
	level  slog.Level
}

// Wrap instruments a decider with the given logger. A nil logger
// falls back to slog.Default.
func Wrap[C decider.Command, Si decider.State, So decider.State, Ei decider.Event, Eo decider.Event](
	logger *slog.Logger,
	d decider.IDecider[C, Si, So, Ei, Eo],
	opts ...Option,
) *Logged[C, Si, So, Ei, Eo] {
	if logger == nil {
		logger = slog.Default()
	}

	o := options{level: slog.LevelDebug}
	for _, opt := range opts {
		opt(&o)
	}

	return &Logged[C, Si, So, Ei, Eo]{
		d:      d,
		logger: logger,
		level:  o.level,
	}
}

// Decide delegates to the wrapped decider and logs the command type,
// the number of events produced, and whether the command was rejected.
func (l *Logged[C, Si, So, Ei, Eo]) Decide(ctx context.Context, command C, state Si) []Eo {
	events := l.d.Decide(command, state)

	l.logger.LogAttrs(ctx, l.level, "decide",
		slog.String("command", fmt.Sprintf("%T", command)),
		slog.Int("events", len(events)),
		slog.Bool("rejected", len(events) == 0),
	)

	return events
}

// Evolve delegates to the wrapped decider and logs the event type.
func (l *Logged[C, Si, So, Ei, Eo]) Evolve(ctx context.Context, state Si, event Ei) So {
	next := l.d.Evolve(state, event)

	l.logger.LogAttrs(ctx, l.level, "evolve",
		slog.String("event", fmt.Sprintf("%T", event)),
	)

	return next
}

// InitialState returns the wrapped decider's initial state.
func (l *Logged[C, Si, So, Ei, Eo]) InitialState() So {
	return l.d.InitialState()
}
