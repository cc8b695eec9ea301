package automata

import "github.com/aretw0/automata/pkg/domain"

// Moore is a Moore machine: a transducer whose output is attached to
// states rather than edges. Each step advances to the target state and
// returns that state's output.
type Moore struct {
	initial *domain.State
	current *domain.State
}

// NewMoore creates a Moore machine positioned at its initial state.
func NewMoore(initial *domain.State) *Moore {
	return &Moore{
		initial: initial,
		current: initial,
	}
}

// Step consumes one symbol and returns the output of the state entered.
// On an undefined transition the position is left unchanged.
func (m *Moore) Step(symbol domain.Symbol) (domain.Symbol, error) {
	edge, err := m.current.Transition(symbol)
	if err != nil {
		return "", err
	}
	m.current = edge.Target
	return m.current.Output, nil
}

// Process steps through the sequence in order and returns the outputs of
// the states entered, one per consumed symbol.
func (m *Moore) Process(sequence []domain.Symbol) ([]domain.Symbol, error) {
	outputs := make([]domain.Symbol, 0, len(sequence))
	for _, symbol := range sequence {
		output, err := m.Step(symbol)
		if err != nil {
			return outputs, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// Reset moves the current position back to the initial state.
func (m *Moore) Reset() {
	m.current = m.initial
}

// Initial returns the machine's initial state.
func (m *Moore) Initial() *domain.State {
	return m.initial
}

// Current returns the state reached after all symbols consumed so far.
func (m *Moore) Current() *domain.State {
	return m.current
}

// Snapshot captures the full reachable graph and the current position.
// State outputs are recorded per state; see RestoreMoore for the inverse.
func (m *Moore) Snapshot() *domain.Snapshot {
	return capture(m.initial, m.current)
}
