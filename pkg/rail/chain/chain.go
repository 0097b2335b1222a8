package chain

import (
	"context"

	"github.com/joyautomation/dark-matter/pkg/rail"
)

// Chain wraps a rail.Result with context to enable fluent chaining. It is
// the escape hatch for pipelines longer than the arity ladder in package
// pipe: every link short-circuits on failure the same way an R pipe does.
type Chain[T any] struct {
	ctx    context.Context
	result rail.Result[T]
}

// From creates a new chain from a rail.Result
func From[T any](ctx context.Context, result rail.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: rail.Success(value),
	}
}

// Result returns the underlying rail.Result
func (c *Chain[T]) Result() rail.Result[T] {
	return c.result
}

// Then chains a function that returns rail.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rail.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: rail.Switch[T, U](c.ctx, c.result, onSuccess),
	}
}

// Try chains a function that returns (U, error)
func Try[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: rail.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: rail.Map[T, U](c.ctx, c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: rail.Tee[T](c.ctx, c.result,
			func(ctx context.Context, result rail.Result[T]) {
				onSuccess(ctx, result.Output())
			}),
	}
}

// While keeps applying onSuccess as long as the result is successful and
// the predicate holds.
func (c *Chain[T]) While(onSuccess func(ctx context.Context, t T) rail.Result[T],
	while func(ctx context.Context, t T) bool) *Chain[T] {

	next := c
	for next.result.IsSuccess() && while(next.ctx, next.result.Output()) {
		next = Then(next, onSuccess)
	}
	return next
}

// RepeatUntil applies onSuccess at least once, stopping on failure or once
// the predicate holds.
func (c *Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rail.Result[T],
	until func(ctx context.Context, t T) bool) *Chain[T] {

	if c.result.IsFailure() {
		return c
	}

	next := c
	for {
		next = Then(next, onSuccess)

		if next.result.IsFailure() || until(next.ctx, next.result.Output()) {
			return next
		}
	}
}

// Or picks the first successful chain, falling back to the first failure.
func (c *Chain[T]) Or(alternative *Chain[T]) *Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	if alternative.result.IsSuccess() {
		return alternative
	}
	return c
}

// And requires both chains to succeed, keeping the right-hand result.
func (c *Chain[T]) And(required *Chain[T]) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	return required
}

// Finally collapses the chain into a final result using rail.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {
	return rail.Finally[T, U](c.ctx, c.result, onSuccess, onFailure)
}
