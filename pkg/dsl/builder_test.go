package dsl_test

import (
	"errors"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/dsl"
)

func TestBuilder_Build(t *testing.T) {
	b := dsl.New()
	b.State("p").Initial().Accepting().
		On("0", "p").
		On("1", "q")
	b.State("q").
		On("0", "q").
		On("1", "p")

	initial, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if initial.Name != "p" || !initial.Initial || !initial.Accepting {
		t.Errorf("initial = %+v, want accepting initial state p", initial)
	}

	edge, err := initial.Transition("1")
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if edge.Target.Name != "q" {
		t.Errorf("p --1--> %q, want q", edge.Target.Name)
	}

	// Forward reference resolved to the same identity.
	back, err := edge.Target.Transition("1")
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if back.Target != initial {
		t.Error("q --1--> should resolve to the same p identity")
	}
}

func TestBuilder_Emit(t *testing.T) {
	b := dsl.New()
	b.State("p").Initial().Emit("x", "q", "ping")
	b.State("q").On("y", "p")

	initial, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	edge, err := initial.Transition("x")
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if edge.Output != "ping" {
		t.Errorf("edge output = %q, want ping", edge.Output)
	}
}

func TestBuilder_Output(t *testing.T) {
	b := dsl.New()
	b.State("p").Initial().Output("locked").On("x", "p")

	initial, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if initial.Output != "locked" {
		t.Errorf("state output = %q, want locked", initial.Output)
	}
}

func TestBuilder_NoInitial(t *testing.T) {
	b := dsl.New()
	b.State("p").On("0", "p")

	if _, err := b.Build(); err == nil {
		t.Fatal("Build should fail without an initial state")
	}
}

func TestBuilder_TwoInitials(t *testing.T) {
	b := dsl.New()
	b.State("p").Initial()
	b.State("q").Initial()

	if _, err := b.Build(); err == nil {
		t.Fatal("Build should fail with two initial states")
	}
}

func TestBuilder_StrictDuplicate(t *testing.T) {
	b := dsl.New(dsl.WithStrict())
	b.State("p").Initial().
		On("0", "p").
		On("0", "q")

	_, err := b.Build()
	var duplicate *domain.DuplicateTransitionError
	if !errors.As(err, &duplicate) {
		t.Fatalf("expected DuplicateTransitionError, got %v", err)
	}
	if duplicate.State != "p" || duplicate.Symbol != "0" {
		t.Errorf("error carries %q / %q, want p / 0", duplicate.State, duplicate.Symbol)
	}
}

func TestBuilder_LaxDuplicateOverwrites(t *testing.T) {
	b := dsl.New()
	b.State("p").Initial().
		On("0", "p").
		On("0", "q")
	b.State("q")

	initial, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	edge, err := initial.Transition("0")
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if edge.Target.Name != "q" {
		t.Errorf("last write should win; target = %q", edge.Target.Name)
	}
}
