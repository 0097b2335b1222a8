package rail

import (
	"reflect"
)

// IsNil reports whether i is nil, including a typed nil pointer hiding
// inside an interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors flattens a joined error into its parts. A nil error yields an
// empty slice; an unjoined error yields itself.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
