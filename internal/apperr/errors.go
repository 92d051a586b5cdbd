package apperr

import "errors"

// Kinds that callers match with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrState           = errors.New("invalid state")
)

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// StateError reports an operation that is not valid in the current lifecycle
// state of its receiver.
type StateError struct {
	Message string
	Err     error
}

func (e *StateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StateError) Unwrap() error {
	return e.Err
}

func (e *StateError) Is(target error) bool {
	return target == ErrState
}

func NewState(msg string) *StateError {
	return &StateError{Message: msg}
}

func NewStateWrap(msg string, err error) *StateError {
	return &StateError{Message: msg, Err: err}
}

// IsInvalidArgument reports whether err carries a ValidationError.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsState reports whether err carries a StateError.
func IsState(err error) bool {
	return errors.Is(err, ErrState)
}
