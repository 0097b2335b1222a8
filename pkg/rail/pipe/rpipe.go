package pipe

import (
	"context"

	"github.com/joyautomation/dark-matter/pkg/rail"
)

// Result pipes: the first step produces the initial Result, later steps
// take the previous success output. A failure short-circuits the chain, and
// a panicking step is converted into a failure by the pipe's own guarded
// scope rather than escaping to the caller.

// catch converts a panic into a failure result. It backs every R ladder
// entry so exceptions crossing into the Result channel arrive as data.
func catch[T any](res *rail.Result[T]) {
	if r := recover(); r != nil {
		*res = rail.Fail[T](rail.AsFailure(r, ""))
	}
}

func R1[A any](ctx context.Context,
	start func(context.Context) rail.Result[A]) (res rail.Result[A]) {
	defer catch(&res)
	return start(ctx)
}

func R2[A, B any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B]) (res rail.Result[B]) {
	defer catch(&res)

	prev := start(ctx)
	if prev.IsFailure() {
		return rail.FailFrom[A, B](prev)
	}
	return step2(ctx, prev.Output())
}

func R3[A, B, C any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C]) rail.Result[C] {
	return R2(ctx, func(ctx context.Context) rail.Result[B] {
		return R2(ctx, start, step2)
	}, step3)
}

func R4[A, B, C, D any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C],
	step4 func(context.Context, C) rail.Result[D]) rail.Result[D] {
	return R2(ctx, func(ctx context.Context) rail.Result[C] {
		return R3(ctx, start, step2, step3)
	}, step4)
}

func R5[A, B, C, D, E any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C],
	step4 func(context.Context, C) rail.Result[D],
	step5 func(context.Context, D) rail.Result[E]) rail.Result[E] {
	return R2(ctx, func(ctx context.Context) rail.Result[D] {
		return R4(ctx, start, step2, step3, step4)
	}, step5)
}

func R6[A, B, C, D, E, F any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C],
	step4 func(context.Context, C) rail.Result[D],
	step5 func(context.Context, D) rail.Result[E],
	step6 func(context.Context, E) rail.Result[F]) rail.Result[F] {
	return R2(ctx, func(ctx context.Context) rail.Result[E] {
		return R5(ctx, start, step2, step3, step4, step5)
	}, step6)
}

func R7[A, B, C, D, E, F, G any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C],
	step4 func(context.Context, C) rail.Result[D],
	step5 func(context.Context, D) rail.Result[E],
	step6 func(context.Context, E) rail.Result[F],
	step7 func(context.Context, F) rail.Result[G]) rail.Result[G] {
	return R2(ctx, func(ctx context.Context) rail.Result[F] {
		return R6(ctx, start, step2, step3, step4, step5, step6)
	}, step7)
}

func R8[A, B, C, D, E, F, G, H any](ctx context.Context,
	start func(context.Context) rail.Result[A],
	step2 func(context.Context, A) rail.Result[B],
	step3 func(context.Context, B) rail.Result[C],
	step4 func(context.Context, C) rail.Result[D],
	step5 func(context.Context, D) rail.Result[E],
	step6 func(context.Context, E) rail.Result[F],
	step7 func(context.Context, F) rail.Result[G],
	step8 func(context.Context, G) rail.Result[H]) rail.Result[H] {
	return R2(ctx, func(ctx context.Context) rail.Result[G] {
		return R7(ctx, start, step2, step3, step4, step5, step6, step7)
	}, step8)
}
