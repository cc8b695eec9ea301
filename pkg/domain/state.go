package domain

import "sort"

// Symbol is a single input or output unit of a machine's alphabet.
// Numeric alphabets are represented by their decimal strings ("0", "1").
type Symbol string

// Symbols splits a plain string into one Symbol per rune.
// It is a convenience for rune-based alphabets ("sls" -> ["s" "l" "s"]).
func Symbols(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}

// Edge is the target of a single transition.
// Output is only meaningful for Mealy-style machines and is empty otherwise.
type Edge struct {
	Target *State
	Output Symbol
}

// State represents a node in a machine's transition graph.
//
// States reference each other directly (self-loops and cycles are valid),
// so a machine's graph is identified by its initial State. The topology is
// assembled before execution and not mutated by it.
type State struct {
	// Name uniquely identifies the state within one machine's graph.
	Name string

	// Initial marks the machine's entry state. Exactly one state per
	// machine must carry this flag.
	Initial bool

	// Accepting is the classification flag used by acceptors.
	Accepting bool

	// Output is the state-level output used by Moore machines.
	Output Symbol

	edges map[Symbol]Edge
}

// NewState creates a state with an empty transition table.
// Flags (Initial, Accepting, Output) are set directly on the returned value.
func NewState(name string) *State {
	return &State{
		Name:  name,
		edges: make(map[Symbol]Edge),
	}
}

// AddTransition registers the outgoing edge for symbol.
// Re-registering the same symbol replaces the prior edge (last write wins),
// which permits iterative machine construction.
func (s *State) AddTransition(symbol Symbol, target *State) {
	s.AddOutputTransition(symbol, target, "")
}

// AddOutputTransition registers an edge that emits output when followed.
func (s *State) AddOutputTransition(symbol Symbol, target *State, output Symbol) {
	if s.edges == nil {
		s.edges = make(map[Symbol]Edge)
	}
	s.edges[symbol] = Edge{Target: target, Output: output}
}

// Transition returns the edge for symbol, or *UndefinedTransitionError
// when no edge is registered. This is the only execution-time error surface
// of the state model.
func (s *State) Transition(symbol Symbol) (Edge, error) {
	edge, ok := s.edges[symbol]
	if !ok {
		return Edge{}, &UndefinedTransitionError{State: s.Name, Symbol: symbol}
	}
	return edge, nil
}

// Defined reports whether an edge exists for symbol.
func (s *State) Defined(symbol Symbol) bool {
	_, ok := s.edges[symbol]
	return ok
}

// Symbols returns the state's outgoing symbols in sorted order.
// Sorted iteration keeps traversal and rendering deterministic.
func (s *State) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(s.edges))
	for symbol := range s.edges {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}
