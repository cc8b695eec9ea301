package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// RunOptions configures one detector run.
type RunOptions struct {
	// Input is the flavor sequence, one character per lollipop ("slsll").
	Input string

	// Resume exercises durable execution: the first half of the input is
	// fed to one machine, its snapshot saved and reloaded, and the second
	// half fed to the restored machine.
	Resume bool

	// MachineID keys the snapshot in the store when Resume is set.
	MachineID string

	Store  ports.SnapshotStore
	Logger *slog.Logger
	Out    *Printer
}

// RunDetector feeds the input through the lollipop anomaly detector,
// printing every emitted anomaly with its input position.
func RunDetector(ctx context.Context, opts RunOptions) error {
	if err := validateInput(opts.Input); err != nil {
		return err
	}

	machine, err := NewLollipopDetector()
	if err != nil {
		return fmt.Errorf("build detector: %w", err)
	}

	sequence := domain.Symbols(opts.Input)

	if !opts.Resume {
		return feed(machine, sequence, 0, opts.Out)
	}

	half := len(sequence) / 2
	opts.Logger.Debug("feeding first half", "symbols", half, "machine", opts.MachineID)
	if err := feed(machine, sequence[:half], 0, opts.Out); err != nil {
		return err
	}

	if err := opts.Store.Save(ctx, opts.MachineID, machine.Snapshot()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	opts.Logger.Debug("snapshot saved", "machine", opts.MachineID, "current", machine.Current().Name)

	snap, err := opts.Store.Load(ctx, opts.MachineID)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	restored, err := automata.Restore(snap)
	if err != nil {
		return fmt.Errorf("restore machine: %w", err)
	}
	opts.Logger.Debug("machine restored", "machine", opts.MachineID, "current", restored.Current().Name)

	return feed(restored, sequence[half:], half, opts.Out)
}

// feed steps the machine through the sequence, printing non-empty outputs
// with 1-based absolute positions.
func feed(machine *automata.Transducer, sequence []domain.Symbol, offset int, out *Printer) error {
	for i, symbol := range sequence {
		output, err := machine.Step(symbol)
		if err != nil {
			var undefined *domain.UndefinedTransitionError
			if errors.As(err, &undefined) {
				return fmt.Errorf("no transition for %q at position %d", undefined.Symbol, offset+i+1)
			}
			return err
		}
		if output != "" {
			out.Alert("%s at position %d", output, offset+i+1)
		}
	}
	return nil
}

func validateInput(input string) error {
	if input == "" {
		return fmt.Errorf("input sequence is empty")
	}
	for _, r := range input {
		if !strings.ContainsRune("sl", r) {
			return fmt.Errorf("unknown flavor %q: input must contain only 's' (strawberry) and 'l' (lemon)", r)
		}
	}
	return nil
}
