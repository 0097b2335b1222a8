package rail

import "context"

// Clause pairs a predicate with the action to run when it matches.
type Clause[In, Out any] struct {
	When func(ctx context.Context, in In) bool
	Then func(ctx context.Context, in In) Out
}

// Cond evaluates clauses in order and returns the action value of the first
// whose predicate holds; later predicates are never evaluated. When no
// clause matches it panics with a *PreconditionError — callers needing a
// catchable variant use RCond.
func Cond[In, Out any](ctx context.Context, input In, clauses ...Clause[In, Out]) Out {
	for _, c := range clauses {
		if c.When(ctx, input) {
			return c.Then(ctx, input)
		}
	}
	panic(&PreconditionError{Op: "cond", Reason: "No conditional found"})
}

// RClause pairs a predicate with a Result-returning action.
type RClause[In, Out any] struct {
	When func(ctx context.Context, in In) bool
	Then func(ctx context.Context, in In) Result[Out]
}

// RCond is the total counterpart of Cond: the first matching clause's
// Result is returned, and no match yields a failure instead of a panic.
func RCond[In, Out any](ctx context.Context, input In, clauses ...RClause[In, Out]) Result[Out] {
	for _, c := range clauses {
		if c.When(ctx, input) {
			return c.Then(ctx, input)
		}
	}
	return FailMsg[Out]("No conditional found")
}
