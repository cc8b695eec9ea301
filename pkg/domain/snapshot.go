package domain

import "fmt"

// Snapshot is the durable, self-contained representation of a machine's
// full state graph plus its current execution position.
//
// Targets are referenced by name, never by memory identity, so a snapshot
// resolves entirely against its own records. Cyclic graphs and self-loops
// round-trip exactly.
type Snapshot struct {
	States  []StateRecord `json:"states" yaml:"states"`
	Current string        `json:"current,omitempty" yaml:"current,omitempty"`
}

// StateRecord captures one state's flags and full outgoing transition list.
type StateRecord struct {
	Name        string             `json:"name" yaml:"name"`
	Initial     bool               `json:"initial" yaml:"initial"`
	Accepting   bool               `json:"accepting,omitempty" yaml:"accepting,omitempty"`
	Output      Symbol             `json:"output,omitempty" yaml:"output,omitempty"`
	Transitions []TransitionRecord `json:"transitions" yaml:"transitions"`
}

// TransitionRecord captures one edge. Output is empty for machines whose
// edges carry no output symbol.
type TransitionRecord struct {
	Symbol Symbol `json:"symbol" yaml:"symbol"`
	Target string `json:"target" yaml:"target"`
	Output Symbol `json:"output,omitempty" yaml:"output,omitempty"`
}

// Validate checks the snapshot's structural invariants and returns a
// *MalformedSnapshotError on the first violation:
//
//   - every transition target must name a declared state
//   - exactly one state must be marked initial
//   - Current, when set, must name a declared state
func (s *Snapshot) Validate() error {
	if len(s.States) == 0 {
		return &MalformedSnapshotError{Reason: "no states declared"}
	}

	declared := make(map[string]bool, len(s.States))
	initials := 0
	for _, record := range s.States {
		if declared[record.Name] {
			return &MalformedSnapshotError{Reason: fmt.Sprintf("state %q declared twice", record.Name)}
		}
		declared[record.Name] = true
		if record.Initial {
			initials++
		}
	}

	if initials == 0 {
		return &MalformedSnapshotError{Reason: "no state marked initial"}
	}
	if initials > 1 {
		return &MalformedSnapshotError{Reason: fmt.Sprintf("%d states marked initial", initials)}
	}

	for _, record := range s.States {
		for _, t := range record.Transitions {
			if !declared[t.Target] {
				return &MalformedSnapshotError{
					Reason: fmt.Sprintf("state %q references undeclared target %q", record.Name, t.Target),
				}
			}
		}
	}

	if s.Current != "" && !declared[s.Current] {
		return &MalformedSnapshotError{Reason: fmt.Sprintf("current state %q is not declared", s.Current)}
	}

	return nil
}
