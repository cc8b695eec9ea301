/*
Package automata is a small framework for defining and executing
deterministic finite-state machines of two kinds: acceptors (machines that
classify an input sequence as accepted or rejected) and transducers
(Mealy/Moore machines that emit an output sequence while consuming input).

It separates the state graph (data) from the execution engines (semantics):
a shared State/Edge model lives in pkg/domain, while Acceptor, Transducer,
and Moore each apply their own execution rules over the same graph shape.

# Key Features

  - Deterministic Execution: At most one transition per (state, symbol);
    given the same position and input, a step is always reproducible.
  - Resumable Transducers: A transducer's full graph and current position
    snapshot to a self-contained record and restore to a continuable
    machine, including cyclic graphs and self-loops.
  - Hexagonal Architecture: Snapshot persistence (file, Redis, SQLite) and
    presentation (Mermaid, tree) are adapters behind small ports.
  - Explicit Errors: A missing transition surfaces as an
    UndefinedTransitionError instead of an implicit reject.

# Usage

Wire states directly or through the pkg/dsl builder, then hand the initial
state to a machine constructor:

	package main

	import (
		"fmt"

		"github.com/aretw0/automata"
		"github.com/aretw0/automata/pkg/domain"
	)

	func main() {
		p := domain.NewState("p")
		p.Initial = true
		p.Accepting = true
		q := domain.NewState("q")

		p.AddTransition("0", p)
		p.AddTransition("1", q)
		q.AddTransition("0", q)
		q.AddTransition("1", p)

		machine := automata.NewAcceptor(p, []domain.Symbol{"0", "1"})
		ok, err := machine.Accept(domain.Symbols("1010"))
		if err != nil {
			panic(err)
		}
		fmt.Println(ok)
	}
*/
package automata
