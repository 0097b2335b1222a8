package rail

import (
	"context"

	"github.com/joyautomation/dark-matter/pkg/rail/future"
)

// Guard invokes fn and classifies the outcome: a normal return becomes a
// success, a returned error or a panic becomes a failure built through
// AsFailure. Guard is the bridge between Go's error/panic channels and the
// Result channel; the other combinators assume their inputs are already
// Results and never need to catch.
func Guard[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T](AsFailure(r, ""))
		}
	}()

	out, err := fn(ctx)
	if err != nil {
		if f, ok := err.(*Failure); ok {
			return Fail[T](f)
		}
		return Fail[T](AsFailure(err, ""))
	}
	return Success(out)
}

// GuardAsync runs fn on its own goroutine and settles the returned future
// with the guarded Result. The future always resolves; errors and panics
// arrive as failure Results, never as a rejection.
func GuardAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *future.Future[Result[T]] {
	f, p := future.New[Result[T]]()
	go func() {
		p.Resolve(Guard(ctx, fn))
	}()
	return f
}
