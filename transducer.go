package automata

import "github.com/aretw0/automata/pkg/domain"

// Transducer is a Mealy machine: it tracks a current state across calls and
// emits one output symbol per input symbol consumed, based on the
// (state, input) pair.
//
// A transducer remains steppable indefinitely; there is no terminal
// lifecycle state. An UndefinedTransitionError does not destroy it, the
// caller may continue from the unchanged position.
//
// Access from concurrent goroutines must be serialized by the caller.
type Transducer struct {
	initial *domain.State
	current *domain.State
}

// NewTransducer creates a transducer positioned at its initial state.
func NewTransducer(initial *domain.State) *Transducer {
	return &Transducer{
		initial: initial,
		current: initial,
	}
}

// Step consumes one symbol: it follows the current state's edge for symbol,
// advances to the edge's target, and returns the edge's output symbol.
//
// On an undefined transition it returns *UndefinedTransitionError and
// leaves the current position unchanged (no partial mutation on error).
func (t *Transducer) Step(symbol domain.Symbol) (domain.Symbol, error) {
	edge, err := t.current.Transition(symbol)
	if err != nil {
		return "", err
	}
	t.current = edge.Target
	return edge.Output, nil
}

// Process steps through the sequence in order and returns the emitted
// outputs, one per consumed symbol. On error the outputs consumed so far
// are returned alongside it and the position stays at the last good state.
func (t *Transducer) Process(sequence []domain.Symbol) ([]domain.Symbol, error) {
	outputs := make([]domain.Symbol, 0, len(sequence))
	for _, symbol := range sequence {
		output, err := t.Step(symbol)
		if err != nil {
			return outputs, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// Reset moves the current position back to the initial state.
func (t *Transducer) Reset() {
	t.current = t.initial
}

// Initial returns the machine's initial state (the graph root, fixed for
// the machine's identity).
func (t *Transducer) Initial() *domain.State {
	return t.initial
}

// Current returns the state reached after all symbols consumed so far.
func (t *Transducer) Current() *domain.State {
	return t.current
}

// States returns every state reachable from the initial state, in
// deterministic traversal order.
func (t *Transducer) States() []*domain.State {
	return domain.Walk(t.initial)
}

// Snapshot captures the full reachable graph and the current position.
// The snapshot is self-contained; see Restore for the inverse.
func (t *Transducer) Snapshot() *domain.Snapshot {
	return capture(t.initial, t.current)
}
