package dsl

import (
	"fmt"

	"github.com/aretw0/automata/pkg/domain"
)

// Builder manages graph construction. States are created on first
// reference, so transitions may point at states declared later.
type Builder struct {
	states map[string]*domain.State
	strict bool
	errs   []error
}

// Option configures a Builder.
type Option func(*Builder)

// WithStrict makes registering the same symbol twice on one state a
// *domain.DuplicateTransitionError at Build time, instead of the default
// last-write-wins behavior.
func WithStrict() Option {
	return func(b *Builder) {
		b.strict = true
	}
}

// New creates a new graph builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		states: make(map[string]*domain.State),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State creates a new state in the graph, or returns the builder for an
// existing one.
func (b *Builder) State(name string) *StateBuilder {
	return &StateBuilder{state: b.state(name), builder: b}
}

func (b *Builder) state(name string) *domain.State {
	if s, ok := b.states[name]; ok {
		return s
	}
	s := domain.NewState(name)
	b.states[name] = s
	return s
}

// Build finalizes the graph and returns its initial state.
// It fails if no state (or more than one) is marked initial, or, in strict
// mode, if any symbol was registered twice on the same state.
func (b *Builder) Build() (*domain.State, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}

	var initial *domain.State
	for _, s := range b.states {
		if !s.Initial {
			continue
		}
		if initial != nil {
			return nil, fmt.Errorf("states %q and %q are both marked initial", initial.Name, s.Name)
		}
		initial = s
	}
	if initial == nil {
		return nil, fmt.Errorf("no state marked initial")
	}

	return initial, nil
}
