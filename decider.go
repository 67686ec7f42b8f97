// Package decider provides the functional core of an event-sourced
// state transition: a pure separation between deciding which events
// follow from a command given the current state, and evolving state by
// folding events that have occurred. Persistence, transport, and
// concurrency control are the responsibility of the hosting runtime.
package decider

// Command marks a type as representing externally requested intent.
// A domain declares one command variant per distinct intent; commands
// are immutable and consumed exactly once by Decide.
type Command interface {
	CommandTag()
}

// Event marks a type as a fact that has already happened. Events are
// immutable, produced by Decide, and consumed one at a time by Evolve.
type Event interface {
	EventTag()
}

// State marks a type as an aggregate snapshot derived by folding
// events. State values are never mutated in place; every transition
// yields a new value.
type State interface {
	StateTag()
}

// IDecider is the general decision and evolution algebra. The input
// and output state and event types are independent, which admits state
// shape migration and event upcasting across versions. Implementations
// must be stateless: all state flows through arguments and results.
type IDecider[C Command, Si State, So State, Ei Event, Eo Event] interface {
	// Decide returns the ordered events that follow from accepting the
	// command under the given state. It must be a pure function of its
	// arguments. An empty slice means the command is not valid for
	// that state; there is no error channel.
	Decide(command C, state Si) []Eo

	// Evolve returns the state after applying one event. It must be
	// pure and total over the declared state and event types.
	Evolve(state Si, event Ei) So

	// InitialState returns the canonical starting state, before any
	// event has been folded. The value is returned by copy, so callers
	// cannot mutate the instance's stored initial state.
	InitialState() So
}

// Decider is the common refinement of IDecider where the input and
// output state and event types coincide. An instance binds a decision
// function, an evolution function, and an initial state value at
// construction and delegates to exactly those components for its
// lifetime.
type Decider[C Command, S State, E Event] struct {
	decide  func(command C, state S) []E
	evolve  func(state S, event E) S
	initial S
}

// New builds a Decider from a decision function, an evolution
// function, and an initial state value.
func New[C Command, S State, E Event](
	decide func(command C, state S) []E,
	evolve func(state S, event E) S,
	initial S,
) *Decider[C, S, E] {
	return &Decider[C, S, E]{
		decide:  decide,
		evolve:  evolve,
		initial: initial,
	}
}

// Decide returns the ordered events that follow from accepting the
// command under the given state. An empty slice indicates the command
// is not valid for that state.
func (d *Decider[C, S, E]) Decide(command C, state S) []E {
	return d.decide(command, state)
}

// Evolve returns the state after applying one event to the given
// state.
func (d *Decider[C, S, E]) Evolve(state S, event E) S {
	return d.evolve(state, event)
}

// InitialState returns the state the instance was constructed with.
func (d *Decider[C, S, E]) InitialState() S {
	return d.initial
}
