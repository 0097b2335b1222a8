// Package pipe provides left-to-right sequential composition, in four
// ladders capped at eight steps each (Go has no variadic generics; longer
// chains compose two pipes, or use package chain):
//
//   - Pipe1..Pipe8: plain value pipes for total functions. No error
//     handling; a panicking step propagates to the caller.
//   - Async1..Async8: plain pipes over rejectable stages
//     func(ctx, In) (Out, error), returning a future. The first error
//     rejects the future and later stages never run.
//   - R1..R8: Result pipes. The first step produces the initial Result,
//     later steps take the previous success output. The chain
//     short-circuits on the first failure, and a panic anywhere inside is
//     converted into a failure instead of escaping.
//   - RAsync1..RAsync8: the R ladder running on its own goroutine,
//     returning a future Result. Same short-circuit and catch rules; the
//     future always resolves.
//
// Every ladder runs strictly stage after stage; no two stages of one pipe
// invocation ever execute concurrently, and nothing runs after an earlier
// stage has failed.
package pipe
