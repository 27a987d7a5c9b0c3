package orderedset

import (
	"fmt"
)

// InputError represents a value that could not be turned into set members.
type InputError struct {
	error
}

// InvalidInput indicates that a value is neither a finite sequence of
// scalars, nor an existing set, so no set can be built from it. The message
// names the concrete type of the rejected value.
func InvalidInput(v any) error {
	return &InputError{fmt.Errorf("cannot build a scalar set from a value of type %T", v)}
}

// InvalidElement indicates that a single element is not a supported scalar
// kind. The message names the concrete type of the rejected element.
func InvalidElement(v any) error {
	return &InputError{fmt.Errorf("invalid set element of type %T: only integers and strings are supported", v)}
}

// UnsupportedError represents a call to a deliberately disabled operation.
type UnsupportedError struct {
	error
}

// NotSupported indicates that the named indexed-access operation is disabled.
func NotSupported(op, instead string) error {
	return &UnsupportedError{fmt.Errorf("%s is not supported on a scalar set: use %s", op, instead)}
}
