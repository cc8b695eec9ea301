// Package file provides a filesystem-backed snapshot store.
package file

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/automata/pkg/codec"
	"github.com/aretw0/automata/pkg/domain"
)

// Store implements ports.SnapshotStore using the local filesystem.
// Each machine is stored as one encoded file in a configured directory.
type Store struct {
	basePath string
	codec    codec.Codec
}

// Option configures a Store.
type Option func(*Store)

// WithCodec sets the snapshot encoding. The default is indented JSON.
func WithCodec(c codec.Codec) Option {
	return func(s *Store) {
		s.codec = c
	}
}

// New creates a new Store rooted at basePath.
// If basePath is empty, it defaults to ".automata/machines".
func New(basePath string, opts ...Option) *Store {
	if basePath == "" {
		basePath = filepath.Join(".automata", "machines")
	}
	store := &Store{
		basePath: basePath,
		codec:    codec.JSON{Indent: true},
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) path(id string) string {
	return filepath.Join(s.basePath, id+s.codec.Ext())
}

// Save persists the snapshot atomically: it encodes to a temporary file in
// the same directory, fsyncs, and renames over the destination, so a
// reader never observes a half-written snapshot.
func (s *Store) Save(ctx context.Context, id string, snap *domain.Snapshot) error {
	if id == "" {
		return fmt.Errorf("machine id cannot be empty")
	}

	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure snapshot directory: %w", err)
	}

	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	// Same directory as the destination so the rename stays on one
	// filesystem (required for atomicity).
	tmpFile, err := os.CreateTemp(s.basePath, "tmp-"+id+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(id)); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}

	return nil
}

// Load retrieves and decodes the snapshot for a machine ID.
func (s *Store) Load(ctx context.Context, id string) (*domain.Snapshot, error) {
	if id == "" {
		return nil, fmt.Errorf("machine id cannot be empty")
	}

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	return s.codec.Decode(bytes.NewReader(data))
}

// Delete removes the snapshot file. A missing file is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("machine id cannot be empty")
	}

	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot file: %w", err)
	}
	return nil
}

// List returns all stored machine IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	ext := s.codec.Ext()
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		name := entry.Name()
		ids = append(ids, name[:len(name)-len(ext)])
	}

	return ids, nil
}
