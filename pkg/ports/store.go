package ports

import (
	"context"

	"github.com/aretw0/automata/pkg/domain"
)

// SnapshotStore defines the interface for persisting machine snapshots.
// This enables durable "stop & resume" execution of transducers.
//
// Each operation acquires, uses, and releases its underlying resource
// within the call; no handle is retained between calls.
type SnapshotStore interface {
	// Save persists the snapshot under a machine ID, replacing any prior
	// snapshot for that ID. A reader never observes a half-written
	// snapshot.
	Save(ctx context.Context, id string, snap *domain.Snapshot) error

	// Load retrieves the snapshot for a machine ID.
	// Returns domain.ErrSnapshotNotFound if the ID does not exist.
	Load(ctx context.Context, id string) (*domain.Snapshot, error)

	// Delete removes the snapshot for a machine ID. Deleting an unknown
	// ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored snapshots.
	List(ctx context.Context) ([]string, error)
}
