package domain

import (
	"errors"
	"fmt"
)

// ErrSnapshotNotFound is returned when a machine ID cannot be found in a store.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// UndefinedTransitionError is returned when execution reaches a state that
// has no transition for the current symbol. It is never swallowed as a
// rejection: a transition hole is a configuration bug, not an input event.
type UndefinedTransitionError struct {
	State  string
	Symbol Symbol
}

func (e *UndefinedTransitionError) Error() string {
	return fmt.Sprintf("state %q has no transition for symbol %q", e.State, e.Symbol)
}

// MalformedSnapshotError is returned when a snapshot is structurally
// inconsistent: a dangling target reference, a missing or duplicate initial
// marker, or an unresolvable current pointer. It is always fatal to the
// load; no machine is partially reconstructed.
type MalformedSnapshotError struct {
	Reason string
}

func (e *MalformedSnapshotError) Error() string {
	return "malformed snapshot: " + e.Reason
}

// DuplicateTransitionError is returned by strict-mode construction when a
// symbol is registered twice on the same state.
type DuplicateTransitionError struct {
	State  string
	Symbol Symbol
}

func (e *DuplicateTransitionError) Error() string {
	return fmt.Sprintf("state %q already has a transition for symbol %q", e.State, e.Symbol)
}
