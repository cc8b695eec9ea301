package codec

import (
	"io"

	"github.com/aretw0/automata/pkg/domain"
	"gopkg.in/yaml.v3"
)

// YAML encodes snapshots as YAML documents.
type YAML struct{}

func (c YAML) Encode(w io.Writer, snap *domain.Snapshot) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(snap); err != nil {
		return err
	}
	return enc.Close()
}

func (c YAML) Decode(r io.Reader) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return nil, malformed(err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c YAML) Ext() string {
	return ".yaml"
}
