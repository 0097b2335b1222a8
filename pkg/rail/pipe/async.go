package pipe

import (
	"context"

	"github.com/joyautomation/dark-matter/pkg/rail/future"
)

// Async pipes sequence rejectable stages. Each stage only starts once the
// previous one has produced its value; the first error rejects the returned
// future and no later stage runs. A pending initial value is fed in by
// awaiting it in step1 or by composing with future.Then.

func Async1[A, B any](ctx context.Context, initial A,
	step1 func(context.Context, A) (B, error)) *future.Future[B] {
	return future.Go(func() (B, error) {
		return step1(ctx, initial)
	})
}

func Async2[A, B, C any](ctx context.Context, initial A,
	step1 func(context.Context, A) (B, error),
	step2 func(context.Context, B) (C, error)) *future.Future[C] {
	return future.Then(ctx, Async1(ctx, initial, step1), step2)
}

func Async3[A, B, C, D any](ctx context.Context, initial A,
	step1 func(context.Context, A) (B, error),
	step2 func(context.Context, B) (C, error),
	step3 func(context.Context, C) (D, error)) *future.Future[D] {
	return future.Then(ctx, Async2(ctx, initial, step1, step2), step3)
}

func Async4[A, B, C, D, E any](ctx context.Context, initial A,
	step1 func(context.Context, A) (B, error),
	step2 func(context.Context, B) (C, error),
	step3 func(context.Context, C) (D, error),
	step4 func(context.Context, D) (E, error)) *future.Future[E] {
	return future.Then(ctx, Async3(ctx, initial, step1, step2, step3), step4)
}

func Async5[A, B, C, D, E, F any](ctx context.Context, initial A,
	step1 func(context.Context, A) (B, error),
	step2 func(context.Context, B) (C, error),
	step3 func(context.Context, C) (D, error),
	step4 func(context.Context, D) (E, error),
	step5 func(context.Context, E) (F, error)) *future.Future[F] {
	return future.Then(ctx, Async4(ctx, initial, step1, step2, step3, step4), step5)
}

func Async6[A, B, C, D, E, F, G any](ctx context.Context, initial A,
	step1 func(context.Context, A) (B, error),
	step2 func(context.Context, B) (C, error),
	step3 func(context.Context, C) (D, error),
	step4 func(context.Context, D) (E, error),
	step5 func(context.Context, E) (F, error),
	step6 func(context.Context, F) (G, error)) *future.Future[G] {
	return future.Then(ctx, Async5(ctx, initial, step1, step2, step3, step4, step5), step6)
}

func Async7[A, B, C, D, E, F, G, H any](ctx context.Context, initial A,
	step1 func(context.Context, A) (B, error),
	step2 func(context.Context, B) (C, error),
	step3 func(context.Context, C) (D, error),
	step4 func(context.Context, D) (E, error),
	step5 func(context.Context, E) (F, error),
	step6 func(context.Context, F) (G, error),
	step7 func(context.Context, G) (H, error)) *future.Future[H] {
	return future.Then(ctx, Async6(ctx, initial, step1, step2, step3, step4, step5, step6), step7)
}

func Async8[A, B, C, D, E, F, G, H, I any](ctx context.Context, initial A,
	step1 func(context.Context, A) (B, error),
	step2 func(context.Context, B) (C, error),
	step3 func(context.Context, C) (D, error),
	step4 func(context.Context, D) (E, error),
	step5 func(context.Context, E) (F, error),
	step6 func(context.Context, F) (G, error),
	step7 func(context.Context, G) (H, error),
	step8 func(context.Context, H) (I, error)) *future.Future[I] {
	return future.Then(ctx, Async7(ctx, initial, step1, step2, step3, step4, step5, step6, step7), step8)
}
