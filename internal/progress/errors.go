package progress

import "errors"

// ValidationError rejects a malformed mutation (locked task, upload-required
// toggle, empty evidence). The operation is all-or-nothing: nothing was
// persisted when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError signals a missing task, employee or submission.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// StateError signals an invalid state transition, such as deciding a
// submission that is already terminal.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string { return e.Reason }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var v *NotFoundError
	return errors.As(err, &v)
}

// IsStateError reports whether err is (or wraps) a StateError.
func IsStateError(err error) bool {
	var v *StateError
	return errors.As(err, &v)
}
