package cli

import (
	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/dsl"
)

// Flavor symbols accepted by the lollipop detector.
const (
	FlavorStrawberry domain.Symbol = "s"
	FlavorLemon      domain.Symbol = "l"
)

// Detector outputs.
const (
	OutputStrawberryRun domain.Symbol = "Error: three strawberry lollipops in a row"
	OutputLemonRun      domain.Symbol = "Error: three lemon lollipops in a row"
)

// NewLollipopDetector builds the demo Mealy machine that flags the third
// consecutive lollipop of the same flavor on a production line.
//
// States track the current run: s1/s2/s3 count consecutive strawberry,
// l1/l2/l3 consecutive lemon. Only the edge entering the third repeat
// emits an output; longer runs stay silent until the flavor changes.
func NewLollipopDetector() (*automata.Transducer, error) {
	b := dsl.New()

	b.State("i").Initial().
		On(FlavorStrawberry, "s1").
		On(FlavorLemon, "l1")

	b.State("s1").
		On(FlavorStrawberry, "s2").
		On(FlavorLemon, "l1")
	b.State("s2").
		Emit(FlavorStrawberry, "s3", OutputStrawberryRun).
		On(FlavorLemon, "l1")
	b.State("s3").
		On(FlavorStrawberry, "s3").
		On(FlavorLemon, "l1")

	b.State("l1").
		On(FlavorLemon, "l2").
		On(FlavorStrawberry, "s1")
	b.State("l2").
		Emit(FlavorLemon, "l3", OutputLemonRun).
		On(FlavorStrawberry, "s1")
	b.State("l3").
		On(FlavorLemon, "l3").
		On(FlavorStrawberry, "s1")

	initial, err := b.Build()
	if err != nil {
		return nil, err
	}
	return automata.NewTransducer(initial), nil
}
