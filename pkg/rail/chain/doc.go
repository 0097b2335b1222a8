// Package chain provides a fluent Chain[T] for synchronous composition of
// rail.Result values, and serves as the escape hatch when a pipeline
// outgrows the eight-step ladders in package pipe.
//
// Common usage:
// - From/FromValue: create a Chain
// - Then/Try: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects on success only
// - While/RepeatUntil: loop a link while the result stays successful
// - Or/And: pick between chains
// - Finally: reduce to a concrete value via handlers
package chain
