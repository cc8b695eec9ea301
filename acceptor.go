package automata

import "github.com/aretw0/automata/pkg/domain"

// Acceptor is a deterministic finite acceptor (DFA) over a declared
// alphabet. Accept is stateless: every call starts fresh from the initial
// state, so one Acceptor value can evaluate any number of sequences.
type Acceptor struct {
	initial  *domain.State
	alphabet []domain.Symbol
}

// NewAcceptor creates an acceptor rooted at initial.
//
// Totality (an edge for every alphabet symbol from every reachable state)
// is not validated eagerly; use IsComplete for an advisory check. A hole
// surfaces as an UndefinedTransitionError at the point of use.
func NewAcceptor(initial *domain.State, alphabet []domain.Symbol) *Acceptor {
	return &Acceptor{
		initial:  initial,
		alphabet: append([]domain.Symbol(nil), alphabet...),
	}
}

// Accept reports whether the machine accepts the sequence.
//
// Symbols are consumed left to right from the initial state; the result is
// the accepting flag of the state reached after the whole sequence. The
// empty sequence is accepted iff the initial state is accepting.
//
// A symbol with no defined transition fails with *UndefinedTransitionError
// rather than rejecting: a DFA with a transition hole is a configuration
// bug, not an input-rejection event. Callers wanting reject-on-unknown
// semantics must treat that error as a rejection themselves.
func (a *Acceptor) Accept(sequence []domain.Symbol) (bool, error) {
	state := a.initial
	for _, symbol := range sequence {
		edge, err := state.Transition(symbol)
		if err != nil {
			return false, err
		}
		state = edge.Target
	}
	return state.Accepting, nil
}

// Initial returns the machine's initial state.
func (a *Acceptor) Initial() *domain.State {
	return a.initial
}

// Alphabet returns a copy of the machine's alphabet.
func (a *Acceptor) Alphabet() []domain.Symbol {
	return append([]domain.Symbol(nil), a.alphabet...)
}

// States returns every state reachable from the initial state, in
// deterministic traversal order.
func (a *Acceptor) States() []*domain.State {
	return domain.Walk(a.initial)
}

// IsComplete reports whether every reachable state defines a transition for
// every alphabet symbol (totality). The check is advisory; incomplete
// machines still run and fail per-symbol.
func (a *Acceptor) IsComplete() bool {
	for _, state := range a.States() {
		for _, symbol := range a.alphabet {
			if !state.Defined(symbol) {
				return false
			}
		}
	}
	return true
}

// Snapshot captures the acceptor's graph for introspection or rendering.
// Accept is stateless, so the snapshot carries no current position.
func (a *Acceptor) Snapshot() *domain.Snapshot {
	return capture(a.initial, nil)
}
