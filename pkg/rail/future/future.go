package future

import (
	"context"
	"sync"
)

type state[T any] struct {
	done  chan struct{}
	value T
	err   error
	once  sync.Once
}

// Future is the read side of a pending value: it settles exactly once,
// either with a value or with an error.
type Future[T any] struct {
	s *state[T]
}

// Promise is the write side. Only the first settlement takes effect; later
// Resolve/Reject calls are ignored.
type Promise[T any] struct {
	s *state[T]
}

// New creates an unsettled Future with its Promise.
func New[T any]() (*Future[T], Promise[T]) {
	s := &state[T]{done: make(chan struct{})}
	return &Future[T]{s: s}, Promise[T]{s: s}
}

func (p Promise[T]) Resolve(value T) {
	p.s.once.Do(func() {
		p.s.value = value
		close(p.s.done)
	})
}

func (p Promise[T]) Reject(err error) {
	p.s.once.Do(func() {
		p.s.err = err
		close(p.s.done)
	})
}

// Go runs fn on its own goroutine and settles the returned future with its
// outcome. Panics are not caught; like any unguarded Go code they crash.
func Go[T any](fn func() (T, error)) *Future[T] {
	f, p := New[T]()
	go func() {
		v, err := fn()
		if err != nil {
			p.Reject(err)
		} else {
			p.Resolve(v)
		}
	}()
	return f
}

// Of returns an already-resolved future.
func Of[T any](value T) *Future[T] {
	f, p := New[T]()
	p.Resolve(value)
	return f
}

// Err returns an already-rejected future.
func Err[T any](err error) *Future[T] {
	f, p := New[T]()
	p.Reject(err)
	return f
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.s.done
}

// Await blocks until the future settles or ctx is done, whichever comes
// first. A context cancellation returns ctx.Err(); the future itself stays
// settled (or pending) and may be awaited again.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.s.done:
		return f.s.value, f.s.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then sequences a continuation after f: once f resolves, fn runs with its
// value; a rejection of f skips fn and rejects the returned future.
func Then[In, Out any](ctx context.Context, f *Future[In],
	fn func(ctx context.Context, in In) (Out, error)) *Future[Out] {
	return Go(func() (Out, error) {
		in, err := f.Await(ctx)
		if err != nil {
			var zero Out
			return zero, err
		}
		return fn(ctx, in)
	})
}
