/*
Package domain contains the core data model for the automata engine.

It defines the fundamental entities shared by every machine kind: States,
their outgoing transition tables, and the Snapshot records used for
persistence. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - State: A named node with initial/accepting flags and a deterministic
    transition table (at most one edge per symbol).
  - Edge: The target of a transition, optionally carrying an output symbol
    (Mealy-style machines).
  - Snapshot: A self-contained, serializable record of a machine's full
    state graph plus its current execution position.
*/
package domain
