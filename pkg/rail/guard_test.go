package rail

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGuard_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := Guard(ctx, func(ctx context.Context) (int, error) {
		return 10, nil
	})
	if !r.IsSuccess() || r.Output() != 10 {
		t.Fatalf("expected success 10, got: success=%v, val=%v, err=%v", r.IsSuccess(), r.Output(), r.Err())
	}
}

func TestGuard_Error(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := Guard(ctx, func(ctx context.Context) (int, error) {
		return 0, errors.New("io fail")
	})
	if r.IsSuccess() || r.Failure().Reason != "io fail" {
		t.Fatalf("expected failure 'io fail', got: %+v", r.Failure())
	}
	if r.Failure().Message != "io fail" {
		t.Fatalf("expected message lifted from the error, got: %q", r.Failure().Message)
	}
}

func TestGuard_KeepsReturnedFailureVerbatim(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := &Failure{Reason: "modeled", Name: "Business"}

	r := Guard(ctx, func(ctx context.Context) (int, error) {
		return 0, f
	})
	if r.Failure() != f {
		t.Fatalf("expected the exact failure back, got: %+v", r.Failure())
	}
}

func TestGuard_PanicWithError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := Guard(ctx, func(ctx context.Context) (int, error) {
		panic(errors.New("exploded"))
	})
	if r.IsSuccess() || r.Failure().Reason != "exploded" {
		t.Fatalf("expected failure 'exploded', got: %+v", r.Failure())
	}
}

func TestGuard_PanicWithString(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := Guard(ctx, func(ctx context.Context) (string, error) {
		panic("raw panic")
	})
	if r.IsSuccess() || r.Failure().Reason != "raw panic" {
		t.Fatalf("expected failure 'raw panic', got: %+v", r.Failure())
	}
	if r.Failure().Message != "" {
		t.Fatalf("non-error panic must not synthesize a message, got: %q", r.Failure().Message)
	}
}

func TestGuardAsync_ResolvesWithResult(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	fut := GuardAsync(ctx, func(ctx context.Context) (int, error) {
		return 5, nil
	})

	r, err := fut.Await(ctx)
	if err != nil {
		t.Fatalf("guarded future must resolve, got: %v", err)
	}
	if !r.IsSuccess() || r.Output() != 5 {
		t.Fatalf("expected success 5, got: success=%v, val=%v", r.IsSuccess(), r.Output())
	}
}

func TestGuardAsync_PanicArrivesAsFailure(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	fut := GuardAsync(ctx, func(ctx context.Context) (int, error) {
		panic("late panic")
	})

	r, err := fut.Await(ctx)
	if err != nil {
		t.Fatalf("guarded future must resolve even on panic, got: %v", err)
	}
	if r.IsSuccess() || r.Failure().Reason != "late panic" {
		t.Fatalf("expected failure 'late panic', got: %+v", r.Failure())
	}
}
