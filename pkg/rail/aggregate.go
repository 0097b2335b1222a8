package rail

// MustUnwrap returns the outputs of all results in order. It requires every
// element to be a success: the first failure, in slice order, raises a
// *PreconditionError naming that failure's reason.
func MustUnwrap[T any](results []Result[T]) []T {
	outputs := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			panic(&PreconditionError{Op: "unwrap", Reason: r.Failure().Reason})
		}
		outputs = append(outputs, r.Output())
	}
	return outputs
}

// AllSuccess reports whether every result is a success. An empty input is
// vacuously true.
func AllSuccess[T any](results ...Result[T]) bool {
	for _, r := range results {
		if r.IsFailure() {
			return false
		}
	}
	return true
}

// Combine reduces a slice of results into one. The first failure is
// returned with its record untouched; otherwise the outputs are collected
// in the original order.
func Combine[T any](results []Result[T]) Result[[]T] {
	outputs := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return FailFrom[T, []T](r)
		}
		outputs = append(outputs, r.Output())
	}
	return Success(outputs)
}

// CombineMap is Combine for maps: same first-failure-wins rule, walking the
// map in Go's iteration order, so which failure wins is unspecified when
// there are several. A success holds a map with the same keys.
func CombineMap[K comparable, T any](results map[K]Result[T]) Result[map[K]T] {
	outputs := make(map[K]T, len(results))
	for k, r := range results {
		if r.IsFailure() {
			return FailFrom[T, map[K]T](r)
		}
		outputs[k] = r.Output()
	}
	return Success(outputs)
}
