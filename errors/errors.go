package errors

import "fmt"

var (
	// ErrNoHomeEnvironmentVar is returned when the home directory of the
	// current user could not be discovered from the process environment.
	ErrNoHomeEnvironmentVar = NewNoHomeEnvironmentVarError("could not determine the user home directory")
	// ErrBadRequest is returned when a malformed value is supplied, for
	// example an invalid setting in the config file.
	ErrBadRequest = NewBadRequestError("invalid request")
)

type baseError struct {
	msg string
}

func (b *baseError) Error() string {
	return b.msg
}

// NewNoHomeEnvironmentVarError returns a new NoHomeEnvironmentVarError
func NewNoHomeEnvironmentVarError(msg string) error {
	return &NoHomeEnvironmentVarError{
		baseError{
			msg: msg,
		},
	}
}

// NoHomeEnvironmentVarError is returned when no home directory is available
// for the current user.
type NoHomeEnvironmentVarError struct {
	baseError
}

// Is reports whether target is a NoHomeEnvironmentVarError. Any two errors
// of this kind are considered equal, regardless of their message.
func (e *NoHomeEnvironmentVarError) Is(target error) bool {
	_, ok := target.(*NoHomeEnvironmentVarError)
	return ok
}

// NewBadRequestError returns a new BadRequestError
func NewBadRequestError(msg string, a ...interface{}) error {
	return &BadRequestError{
		baseError{
			msg: fmt.Sprintf(msg, a...),
		},
	}
}

// BadRequestError is returned when a malformed value is received
type BadRequestError struct {
	baseError
}

func (e *BadRequestError) Is(target error) bool {
	_, ok := target.(*BadRequestError)
	return ok
}
