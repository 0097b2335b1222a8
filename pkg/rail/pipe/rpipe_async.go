package pipe

import (
	"context"

	"github.com/joyautomation/dark-matter/pkg/rail"
	"github.com/joyautomation/dark-matter/pkg/rail/future"
)

// RAsync runs the R ladder on its own goroutine and hands back a future
// Result. A stage that blocks is the pending stage; the chain is still
// strictly sequential. The future always resolves: failures and panics
// arrive inside the Result, never as a rejection.

func runAsync[T any](run func() rail.Result[T]) *future.Future[rail.Result[T]] {
	f, p := future.New[rail.Result[T]]()
	go func() {
		p.Resolve(run())
	}()
	return f
}

func RAsync1[A any](ctx context.Context,
	start func(context.Context) rail.Result[A]) *future.Future[rail.Result[A]] {
	return runAsync(func() rail.Result[A] {
		return R1(ctx, start)
	})
}

func RAsync2[A, B any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B]) *future.Future[rail.Result[B]] {
	return runAsync(func() rail.Result[B] {
		return R2(ctx, start, step2)
	})
}

func RAsync3[A, B, C any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C]) *future.Future[rail.Result[C]] {
	return runAsync(func() rail.Result[C] {
		return R3(ctx, start, step2, step3)
	})
}

func RAsync4[A, B, C, D any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C],
	step4 func(context.Context, C) rail.Result[D]) *future.Future[rail.Result[D]] {
	return runAsync(func() rail.Result[D] {
		return R4(ctx, start, step2, step3, step4)
	})
}

func RAsync5[A, B, C, D, E any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C],
	step4 func(context.Context, C) rail.Result[D],
	step5 func(context.Context, D) rail.Result[E]) *future.Future[rail.Result[E]] {
	return runAsync(func() rail.Result[E] {
		return R5(ctx, start, step2, step3, step4, step5)
	})
}

func RAsync6[A, B, C, D, E, F any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C],
	step4 func(context.Context, C) rail.Result[D],
	step5 func(context.Context, D) rail.Result[E],
	step6 func(context.Context, E) rail.Result[F]) *future.Future[rail.Result[F]] {
	return runAsync(func() rail.Result[F] {
		return R6(ctx, start, step2, step3, step4, step5, step6)
	})
}

func RAsync7[A, B, C, D, E, F, G any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C],
	step4 func(context.Context, C) rail.Result[D],
	step5 func(context.Context, D) rail.Result[E],
	step6 func(context.Context, E) rail.Result[F],
	step7 func(context.Context, F) rail.Result[G]) *future.Future[rail.Result[G]] {
	return runAsync(func() rail.Result[G] {
		return R7(ctx, start, step2, step3, step4, step5, step6, step7)
	})
}

func RAsync8[A, B, C, D, E, F, G, H any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C],
	step4 func(context.Context, C) rail.Result[D],
	step5 func(context.Context, D) rail.Result[E],
	step6 func(context.Context, E) rail.Result[F],
	step7 func(context.Context, F) rail.Result[G],
	step8 func(context.Context, G) rail.Result[H]) *future.Future[rail.Result[H]] {
	return runAsync(func() rail.Result[H] {
		return R8(ctx, start, step2, step3, step4, step5, step6, step7, step8)
	})
}
