package rail

import "time"

type ResultProvider[T any] interface {
	// Output returns the successful output value
	Output() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return an output or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
