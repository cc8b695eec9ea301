// Package codec provides textual encodings for machine snapshots.
//
// Two encodings are available: JSON (the default wire and storage format)
// and YAML. Both operate on domain.Snapshot and validate structural
// invariants on decode, so a consumer never receives a snapshot it cannot
// restore.
package codec

import (
	"fmt"
	"io"

	"github.com/aretw0/automata/pkg/domain"
)

// Codec encodes and decodes snapshots against a byte stream.
type Codec interface {
	// Encode writes the snapshot to w.
	Encode(w io.Writer, snap *domain.Snapshot) error

	// Decode reads a snapshot from r and validates it. Syntactic and
	// structural failures both surface as *domain.MalformedSnapshotError.
	Decode(r io.Reader) (*domain.Snapshot, error)

	// Ext returns the file extension conventionally used by this
	// encoding, including the leading dot.
	Ext() string
}

// ForExt returns the codec matching a file extension, defaulting to
// indented JSON for unknown extensions.
func ForExt(ext string) Codec {
	switch ext {
	case ".yaml", ".yml":
		return YAML{}
	default:
		return JSON{Indent: true}
	}
}

func malformed(err error) error {
	return &domain.MalformedSnapshotError{Reason: fmt.Sprintf("decode: %v", err)}
}
