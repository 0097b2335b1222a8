package rail

import (
	"context"
	"errors"
)

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) Result[T] {
	return AndValidate(ctx, Success(input), validate)
}

func AndValidate[T any](ctx context.Context, input Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Output()); isValid {
			return input
		} else {
			return FailMsg[T](errMsg)
		}
	}
	return input
}

// ValidateAll applies every check in order, joining failure reasons. With
// breakOnError set it stops at the first failing check instead.
func ValidateAll[T any](
	ctx context.Context,
	input Result[T],
	breakOnError bool,
	checks ...func(ctx context.Context, in Result[T]) Result[T]) Result[T] {

	current := input
	var joined error

	for _, check := range checks {
		next := check(ctx, current)

		if next.IsFailure() {
			if breakOnError {
				return next
			}
			e := Errors(joined)
			e = append(e, next.Err())
			joined = errors.Join(e...)
		} else {
			current = next
		}
	}

	if !IsNil(joined) {
		return Fail[T](AsFailure(joined, ""))
	}
	return current
}

// Switch moves from Result[In] to Result[Out], invoking onSuccess only for
// a successful input and re-typing a failure unchanged.
func Switch[In any, Out any](ctx context.Context,
	input Result[In],
	onSuccess func(ctx context.Context, r In) Result[Out]) Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Output())
	}
	return FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input Result[In],
	onSuccess func(ctx context.Context, r In) Out) Result[Out] {

	if input.IsSuccess() {
		return Success(onSuccess(ctx, input.Output()))
	}
	return FailFrom[In, Out](input)
}

// Try calls a function returning (Out, error) and converts an error into a
// failure.
func Try[In any, Out any](ctx context.Context, input Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Output())
		if err != nil {
			return Fail[Out](AsFailure(err, ""))
		}

		return Success(out)
	}

	return FailFrom[In, Out](input)
}

// Tee triggers a side effect for a successful result without changing it.
func Tee[T any](ctx context.Context,
	input Result[T],
	onSuccess func(ctx context.Context, r Result[T])) Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

// DoubleTee triggers a side effect on both rails without changing the result.
func DoubleTee[T any](ctx context.Context, input Result[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err error)) Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Output())
	} else {
		onFailure(ctx, input.Err())
	}

	return input
}

// Finally collapses a Result to a concrete value via the two handlers.
func Finally[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Output())
	}
	return onFailure(ctx, input.Err())
}
