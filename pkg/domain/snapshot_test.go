package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
)

func validSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		States: []domain.StateRecord{
			{Name: "p", Initial: true, Transitions: []domain.TransitionRecord{
				{Symbol: "0", Target: "p"},
				{Symbol: "1", Target: "q"},
			}},
			{Name: "q", Transitions: []domain.TransitionRecord{
				{Symbol: "0", Target: "q"},
				{Symbol: "1", Target: "p"},
			}},
		},
		Current: "q",
	}
}

func TestSnapshot_ValidateOK(t *testing.T) {
	if err := validSnapshot().Validate(); err != nil {
		t.Fatalf("valid snapshot rejected: %v", err)
	}
}

func TestSnapshot_ValidateNoCurrent(t *testing.T) {
	snap := validSnapshot()
	snap.Current = ""
	if err := snap.Validate(); err != nil {
		t.Fatalf("snapshot without current (acceptor form) rejected: %v", err)
	}
}

func TestSnapshot_ValidateFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Snapshot)
		reason string
	}{
		{"empty", func(s *domain.Snapshot) { s.States = nil }, "no states"},
		{"dangling target", func(s *domain.Snapshot) { s.States[1].Transitions[1].Target = "ghost" }, "undeclared target"},
		{"no initial", func(s *domain.Snapshot) { s.States[0].Initial = false }, "no state marked initial"},
		{"two initials", func(s *domain.Snapshot) { s.States[1].Initial = true }, "2 states marked initial"},
		{"unknown current", func(s *domain.Snapshot) { s.Current = "ghost" }, "not declared"},
		{"duplicate name", func(s *domain.Snapshot) { s.States[1].Name = "p" }, "declared twice"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := validSnapshot()
			tc.mutate(snap)

			err := snap.Validate()
			var malformed *domain.MalformedSnapshotError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedSnapshotError, got %v", err)
			}
			if !strings.Contains(malformed.Reason, tc.reason) {
				t.Errorf("reason %q does not mention %q", malformed.Reason, tc.reason)
			}
		})
	}
}
