// Package rail defines the two-variant Result[T] union and the single-value
// primitives that operate on it. These functions form the building blocks
// for error-aware composition without exceptions.
//
// Highlights:
// - Success/Fail/FailMsg: construct Result[T]
// - Failure: the structured failure payload (reason, message, stack, name, cause)
// - FormatError/AsFailure: normalize arbitrary caught values into failures
// - Guard/GuardAsync: bridge Go's error and panic channels into Results
// - Switch/Map/Try: move a success to a new Result
// - Tee/DoubleTee: side-effect helpers
// - Cond/RCond: first-match conditional dispatch
// - AllSuccess/Combine/CombineMap/MustUnwrap: aggregate many Results
// - Finally: reduce to a concrete value via success/failure handlers
//
// Result-returning functions never panic for ordinary business failures;
// panics are reserved for precondition misuse (MustUnwrap, Cond with no
// matching clause) and surface as *PreconditionError.
package rail
