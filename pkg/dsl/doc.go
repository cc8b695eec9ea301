/*
Package dsl provides a fluent builder for programmatically constructing
state graphs.

It lets machine definitions live in type-safe Go code instead of
hand-wiring domain.State values, which is particularly useful for tests and
for machines generated at runtime.

Example usage:

	b := dsl.New()

	b.State("p").Initial().Accepting().
		On("0", "p").
		On("1", "q")
	b.State("q").
		On("0", "q").
		On("1", "p")

	initial, err := b.Build()
	// initial can be handed to automata.NewAcceptor / NewTransducer.
*/
package dsl
