package automata_test

import (
	"errors"
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
)

// flipFlop builds a two-state Mealy machine: "a" keeps the position and
// emits "stay", "b" crosses over and emits "move".
func flipFlop() *automata.Transducer {
	p := domain.NewState("p")
	p.Initial = true
	q := domain.NewState("q")

	p.AddOutputTransition("a", p, "stay")
	p.AddOutputTransition("b", q, "move")
	q.AddOutputTransition("a", q, "stay")
	q.AddOutputTransition("b", p, "move")

	return automata.NewTransducer(p)
}

func TestTransducer_Step(t *testing.T) {
	machine := flipFlop()

	output, err := machine.Step("b")
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if output != "move" {
		t.Errorf("Step(b) emitted %q, want %q", output, "move")
	}
	if machine.Current().Name != "q" {
		t.Errorf("current = %q, want q", machine.Current().Name)
	}
}

func TestTransducer_StepDeterminism(t *testing.T) {
	machine := flipFlop()

	first, err := machine.Step("b")
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	firstState := machine.Current()

	machine.Reset()
	second, err := machine.Step("b")
	if err != nil {
		t.Fatalf("Step after Reset failed: %v", err)
	}

	if first != second {
		t.Errorf("same step emitted %q then %q", first, second)
	}
	if machine.Current() != firstState {
		t.Errorf("same step reached %q then %q", firstState.Name, machine.Current().Name)
	}
}

func TestTransducer_UndefinedTransitionLeavesPosition(t *testing.T) {
	machine := flipFlop()
	if _, err := machine.Step("b"); err != nil {
		t.Fatalf("setup step failed: %v", err)
	}
	before := machine.Current()

	_, err := machine.Step("z")
	var undefined *domain.UndefinedTransitionError
	if !errors.As(err, &undefined) {
		t.Fatalf("expected UndefinedTransitionError, got %v", err)
	}
	if machine.Current() != before {
		t.Errorf("failed step moved current from %q to %q", before.Name, machine.Current().Name)
	}

	// The machine is still steppable from the unchanged position.
	output, err := machine.Step("a")
	if err != nil {
		t.Fatalf("step after error failed: %v", err)
	}
	if output != "stay" {
		t.Errorf("step after error emitted %q, want %q", output, "stay")
	}
}

func TestTransducer_Process(t *testing.T) {
	machine := flipFlop()

	outputs, err := machine.Process(domain.Symbols("abba"))
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	want := []domain.Symbol{"stay", "move", "move", "stay"}
	if len(outputs) != len(want) {
		t.Fatalf("got %d outputs, want %d", len(outputs), len(want))
	}
	for i := range want {
		if outputs[i] != want[i] {
			t.Errorf("output[%d] = %q, want %q", i, outputs[i], want[i])
		}
	}
	if machine.Current().Name != "p" {
		t.Errorf("current = %q, want p", machine.Current().Name)
	}
}

func TestTransducer_Reset(t *testing.T) {
	machine := flipFlop()
	if _, err := machine.Step("b"); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	machine.Reset()
	if machine.Current() != machine.Initial() {
		t.Error("Reset did not return to the initial state")
	}
}

func TestMoore_Step(t *testing.T) {
	// Moore machine tracking a door: outputs belong to states.
	closed := domain.NewState("closed")
	closed.Initial = true
	closed.Output = "locked"
	open := domain.NewState("open")
	open.Output = "unlocked"

	closed.AddTransition("push", open)
	open.AddTransition("pull", closed)
	open.AddTransition("push", open)

	machine := automata.NewMoore(closed)

	output, err := machine.Step("push")
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if output != "unlocked" {
		t.Errorf("entering open emitted %q, want %q", output, "unlocked")
	}

	outputs, err := machine.Process([]domain.Symbol{"push", "pull"})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if outputs[0] != "unlocked" || outputs[1] != "locked" {
		t.Errorf("outputs = %v, want [unlocked locked]", outputs)
	}

	_, err = machine.Step("slam")
	var undefined *domain.UndefinedTransitionError
	if !errors.As(err, &undefined) {
		t.Fatalf("expected UndefinedTransitionError, got %v", err)
	}
	if machine.Current().Name != "closed" {
		t.Errorf("failed step moved current to %q", machine.Current().Name)
	}
}
