package rail

import (
	"errors"
	"fmt"
)

// Failure is the structured payload of a failed Result. Reason is the only
// field guaranteed to be set; everything else is diagnostic extra carried
// over from the value the failure was built from.
type Failure struct {
	// Reason is the fully formatted, human-readable description,
	// including any caller-supplied context prefix.
	Reason string
	// Message is the short message of the originating error, when the
	// failure came from a structured error value.
	Message string
	// Stack is trace text, when available.
	Stack string
	// Name is a classification label, e.g. an error-kind tag.
	Name string
	// Context is the caller-supplied prefix merged into Reason.
	Context string
	// Cause is an arbitrary wrapped value, preserved without inspection.
	Cause any
}

func (f *Failure) Error() string {
	return f.Reason
}

// Unwrap exposes an error Cause to errors.Is/As chains.
func (f *Failure) Unwrap() error {
	if c, ok := f.Cause.(error); ok {
		return c
	}
	return nil
}

// Capability interfaces recognized by the normalization layer. Any error
// exposing these is treated as a rich structured error; plain errors only
// contribute their message.
type stackTracer interface {
	StackTrace() string
}

type kindTagger interface {
	Kind() string
}

// FormatError renders an arbitrary value as failure text. Errors render as
// their stack trace when one is exposed, otherwise their message; anything
// else degrades through fmt's default conversion. The prefix is prepended
// verbatim.
func FormatError(v any, prefix string) string {
	if err, ok := v.(error); ok && !IsNil(err) {
		if f, ok := err.(*Failure); ok && f.Stack != "" {
			return prefix + f.Stack
		}
		if st, ok := err.(stackTracer); ok {
			if s := st.StackTrace(); s != "" {
				return prefix + s
			}
		}
		return prefix + err.Error()
	}
	return prefix + fmt.Sprint(v)
}

// AsFailure normalizes an arbitrary caught value into a Failure. Structured
// fields are lifted from the value when it exposes them; a wrapped cause is
// propagated opaquely, never re-normalized.
func AsFailure(v any, context string) *Failure {
	f := &Failure{
		Reason:  FormatError(v, context),
		Context: context,
	}

	err, ok := v.(error)
	if !ok || IsNil(err) {
		return f
	}

	if prev, ok := err.(*Failure); ok {
		f.Message = prev.Message
		f.Stack = prev.Stack
		f.Name = prev.Name
		f.Cause = prev.Cause
		return f
	}

	f.Message = err.Error()
	if st, ok := err.(stackTracer); ok {
		f.Stack = st.StackTrace()
	}
	if kt, ok := err.(kindTagger); ok {
		f.Name = kt.Kind()
	}
	if cause := errors.Unwrap(err); cause != nil {
		f.Cause = cause
	}
	return f
}

// PreconditionError signals caller misuse of an API that assumes all-success
// input. It is raised via panic, never returned inside a Result.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Op + ": " + e.Reason
}
