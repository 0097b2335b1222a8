package rail

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-variant tagged union: either a success holding an output
// value, or a failure holding a *Failure. The variant is fixed at
// construction; a Result is never mutated in place.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	output    T
	failure   *Failure
	isSuccess bool
}

func Success[T any](output T) Result[T] {
	return Result[T]{
		output:    output,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failure Result from any error. A *Failure is stored
// verbatim; any other error becomes a degenerate Failure carrying only
// its Error() text.
func Fail[T any](err error) Result[T] {
	f, ok := err.(*Failure)
	if !ok || f == nil {
		if IsNil(err) {
			f = &Failure{Reason: "unknown error"}
		} else {
			f = &Failure{Reason: err.Error()}
		}
	}
	return Result[T]{
		failure:   f,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailMsg builds the degenerate single-string failure.
func FailMsg[T any](msg string) Result[T] {
	return Fail[T](&Failure{Reason: msg})
}

// FailFrom re-types a failure Result without touching its payload, keeping
// the failure record, id and creation time of the original.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		failure:   from.failure,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Output() T {
	return r.output
}

// Err returns the failure as an error, or nil for a success.
func (r Result[T]) Err() error {
	if r.failure == nil {
		return nil
	}
	return r.failure
}

// Failure returns the structured failure record, or nil for a success.
func (r Result[T]) Failure() *Failure {
	return r.failure
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
