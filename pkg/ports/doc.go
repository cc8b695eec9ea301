/*
Package ports defines the interfaces between the automata core and its
adapters (Hexagonal Architecture).

The core never performs I/O directly: snapshot persistence goes through
SnapshotStore, for which file, Redis, and SQLite adapters exist under
internal/adapters. RunSnapshotStoreContract lets any new adapter verify it
honors the interface semantics.
*/
package ports
