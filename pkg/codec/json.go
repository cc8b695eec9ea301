package codec

import (
	"encoding/json"
	"io"

	"github.com/aretw0/automata/pkg/domain"
)

// JSON encodes snapshots as JSON objects.
type JSON struct {
	// Indent enables two-space indentation, matching the on-disk store
	// format. Leave false for compact wire payloads.
	Indent bool
}

func (c JSON) Encode(w io.Writer, snap *domain.Snapshot) error {
	enc := json.NewEncoder(w)
	if c.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(snap)
}

func (c JSON) Decode(r io.Reader) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, malformed(err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c JSON) Ext() string {
	return ".json"
}
