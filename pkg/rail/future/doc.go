// Package future provides the pending-value primitive used by the async
// combinators: a Future[T]/Promise[T] pair that settles exactly once with a
// value or an error.
//
// Common usage:
// - New: create an unsettled contract
// - Go: run a function on its own goroutine and settle with its outcome
// - Of/Err: already-settled futures
// - Await: block for the value with context cancellation
// - Then: sequence a continuation, skipping it on rejection
//
// Futures only represent suspension; they never run two continuations of
// the same chain concurrently.
package future
