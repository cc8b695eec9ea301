package dsl

import "github.com/aretw0/automata/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	state   *domain.State
	builder *Builder
}

// Initial marks the state as the machine's entry state.
func (s *StateBuilder) Initial() *StateBuilder {
	s.state.Initial = true
	return s
}

// Accepting marks the state as accepting (acceptor semantics).
func (s *StateBuilder) Accepting() *StateBuilder {
	s.state.Accepting = true
	return s
}

// Output sets the state-level output used by Moore machines.
func (s *StateBuilder) Output(output domain.Symbol) *StateBuilder {
	s.state.Output = output
	return s
}

// On adds a transition to the target state, creating the target if it does
// not exist yet.
func (s *StateBuilder) On(symbol domain.Symbol, target string) *StateBuilder {
	return s.Emit(symbol, target, "")
}

// Emit adds a transition that emits output when followed (Mealy semantics).
func (s *StateBuilder) Emit(symbol domain.Symbol, target string, output domain.Symbol) *StateBuilder {
	if s.builder.strict && s.state.Defined(symbol) {
		s.builder.errs = append(s.builder.errs, &domain.DuplicateTransitionError{
			State:  s.state.Name,
			Symbol: symbol,
		})
		return s
	}
	s.state.AddOutputTransition(symbol, s.builder.state(target), output)
	return s
}

// Build returns the underlying domain.State.
// This is primarily used by the Builder, but exposed for advanced usage.
func (s *StateBuilder) Build() *domain.State {
	return s.state
}
