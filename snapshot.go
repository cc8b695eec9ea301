package automata

import "github.com/aretw0/automata/pkg/domain"

// capture walks the reachable graph from initial and emits one record per
// state. The traversal is identity-keyed (via domain.Walk), so each state
// is recorded exactly once regardless of cycles. current may be nil for
// machines with no execution position (acceptors).
func capture(initial, current *domain.State) *domain.Snapshot {
	snap := &domain.Snapshot{}
	if current != nil {
		snap.Current = current.Name
	}

	for _, state := range domain.Walk(initial) {
		record := domain.StateRecord{
			Name:        state.Name,
			Initial:     state.Initial,
			Accepting:   state.Accepting,
			Output:      state.Output,
			Transitions: make([]domain.TransitionRecord, 0, len(state.Symbols())),
		}
		for _, symbol := range state.Symbols() {
			edge, _ := state.Transition(symbol)
			record.Transitions = append(record.Transitions, domain.TransitionRecord{
				Symbol: symbol,
				Target: edge.Target.Name,
				Output: edge.Output,
			})
		}
		snap.States = append(snap.States, record)
	}

	return snap
}

// build reconstructs a state graph from snapshot records in two phases:
// first every state is created so names resolve to identities, then edges
// are wired, so forward references and cycles resolve regardless of record
// order. It returns the initial and current states of the new graph.
//
// The snapshot is validated first; nothing is constructed on failure.
func build(snap *domain.Snapshot) (initial, current *domain.State, err error) {
	if err := snap.Validate(); err != nil {
		return nil, nil, err
	}

	states := make(map[string]*domain.State, len(snap.States))
	for _, record := range snap.States {
		state := domain.NewState(record.Name)
		state.Initial = record.Initial
		state.Accepting = record.Accepting
		state.Output = record.Output
		states[record.Name] = state
		if record.Initial {
			initial = state
		}
	}

	for _, record := range snap.States {
		source := states[record.Name]
		for _, t := range record.Transitions {
			source.AddOutputTransition(t.Symbol, states[t.Target], t.Output)
		}
	}

	current = initial
	if snap.Current != "" {
		current = states[snap.Current]
	}

	return initial, current, nil
}

// Restore reconstructs a Transducer from a snapshot.
//
// The result is structurally equivalent to the captured machine (same
// names, transitions, outputs) with the current position set to the
// recorded state, so execution resumes as if it had never paused. A
// structurally inconsistent snapshot fails with *MalformedSnapshotError
// and constructs no machine.
func Restore(snap *domain.Snapshot) (*Transducer, error) {
	initial, current, err := build(snap)
	if err != nil {
		return nil, err
	}
	return &Transducer{initial: initial, current: current}, nil
}

// RestoreMoore reconstructs a Moore machine from a snapshot.
func RestoreMoore(snap *domain.Snapshot) (*Moore, error) {
	initial, current, err := build(snap)
	if err != nil {
		return nil, err
	}
	return &Moore{initial: initial, current: current}, nil
}

// RestoreAcceptor reconstructs an Acceptor from a snapshot. The alphabet is
// not part of the persisted form and is supplied by the caller.
func RestoreAcceptor(snap *domain.Snapshot, alphabet []domain.Symbol) (*Acceptor, error) {
	initial, _, err := build(snap)
	if err != nil {
		return nil, err
	}
	return NewAcceptor(initial, alphabet), nil
}
