package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
)

func TestState_AddTransitionLastWriteWins(t *testing.T) {
	a := domain.NewState("a")
	b := domain.NewState("b")
	c := domain.NewState("c")

	a.AddTransition("x", b)
	a.AddTransition("x", c)

	edge, err := a.Transition("x")
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if edge.Target != c {
		t.Errorf("re-registering x should replace the edge; target = %q", edge.Target.Name)
	}
}

func TestState_TransitionUndefined(t *testing.T) {
	a := domain.NewState("a")

	_, err := a.Transition("x")
	var undefined *domain.UndefinedTransitionError
	if !errors.As(err, &undefined) {
		t.Fatalf("expected UndefinedTransitionError, got %v", err)
	}
	if undefined.State != "a" || undefined.Symbol != "x" {
		t.Errorf("error carries state %q symbol %q, want a / x", undefined.State, undefined.Symbol)
	}
}

func TestState_OutputTransition(t *testing.T) {
	a := domain.NewState("a")
	a.AddOutputTransition("x", a, "ping")

	edge, err := a.Transition("x")
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if edge.Target != a || edge.Output != "ping" {
		t.Errorf("edge = (%q, %q), want self-loop emitting ping", edge.Target.Name, edge.Output)
	}
}

func TestState_SymbolsSorted(t *testing.T) {
	a := domain.NewState("a")
	for _, symbol := range []domain.Symbol{"z", "b", "m", "a"} {
		a.AddTransition(symbol, a)
	}

	symbols := a.Symbols()
	want := []domain.Symbol{"a", "b", "m", "z"}
	for i := range want {
		if symbols[i] != want[i] {
			t.Fatalf("Symbols() = %v, want %v", symbols, want)
		}
	}
}

func TestSymbols(t *testing.T) {
	got := domain.Symbols("sls")
	want := []domain.Symbol{"s", "l", "s"}
	if len(got) != len(want) {
		t.Fatalf("Symbols(sls) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Symbols(sls)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalk_CyclicGraph(t *testing.T) {
	p := domain.NewState("p")
	q := domain.NewState("q")
	p.AddTransition("0", p)
	p.AddTransition("1", q)
	q.AddTransition("0", q)
	q.AddTransition("1", p)

	states := domain.Walk(p)
	if len(states) != 2 {
		t.Fatalf("Walk visited %d states, want 2", len(states))
	}
	if states[0] != p || states[1] != q {
		t.Errorf("Walk order = [%s %s], want [p q]", states[0].Name, states[1].Name)
	}
}

func TestWalk_IdentityNotName(t *testing.T) {
	// Two distinct states sharing a name must both be visited: the
	// visited set is keyed by identity, not by label.
	a1 := domain.NewState("a")
	a2 := domain.NewState("a")
	a1.AddTransition("x", a2)

	states := domain.Walk(a1)
	if len(states) != 2 {
		t.Fatalf("Walk visited %d states, want 2 distinct identities", len(states))
	}
}

func TestWalk_Nil(t *testing.T) {
	if states := domain.Walk(nil); states != nil {
		t.Errorf("Walk(nil) = %v, want nil", states)
	}
}
