package decider

// Fold applies events to the state in order, one Evolve call per
// event, and returns the resulting state.
func (d *Decider[C, S, E]) Fold(state S, events ...E) S {
	for _, event := range events {
		state = d.evolve(state, event)
	}
	return state
}

// Reconstitute folds events in order starting from the initial state.
// A hosting runtime uses it to rebuild current state from a stored
// event sequence.
func (d *Decider[C, S, E]) Reconstitute(events ...E) S {
	return d.Fold(d.initial, events...)
}

// Step performs one transition of the state machine a host runs on top
// of the decider: decide on the command, fold the resulting events,
// and return the new state together with the events. When the command
// is rejected the event slice is empty and the returned state is the
// input state.
func (d *Decider[C, S, E]) Step(state S, command C) (S, []E) {
	events := d.decide(command, state)
	return d.Fold(state, events...), events
}
