package pkgerror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that an input file could not be found.
	ErrNotFound = errors.New("resource not found")
)

// Type classifies fatal errors into the buckets the pipeline reports on.
type Type int

const (
	TypeUnexpected Type = iota // Unanticipated failures (panics, programming errors).
	TypeIO                     // Input or output files missing or unreadable.
	TypeValidation             // Malformed input structure or invalid configuration.
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeIO:
		return "ERROR_TYPE_IO"
	case TypeUnexpected:
		return "ERROR_TYPE_UNEXPECTED"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to process exit codes.
type Code int

const (
	CodeInternal      Code = iota // Internal or unspecified error.
	CodeInvalidFormat             // Malformed file (bad csv, missing header column).
	CodeInvalidInput              // Invalid configuration or flags.
	CodeNotFound                  // Input file does not exist.
	CodeIO                        // Any other read or write failure.
	CodeCanceled                  // Run interrupted before completion.
)

func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeIO:
		return "ERROR_CODE_IO"
	case CodeCanceled:
		return "ERROR_CODE_CANCELED"
	case CodeInternal:
		return "ERROR_CODE_INTERNAL"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying an operator-facing
// message, a high-level type, and a stable error code.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil && e.msg != "" {
		return e.msg + ": " + e.err.Error()
	}

	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	if e.errType == TypeValidation {
		return "Validation violation"
	}

	if e.errType == TypeIO {
		return "File access failed"
	}

	if e.errType == TypeUnexpected {
		return "Internal error"
	}

	return "Unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.err,
	)
}

// Msg returns the operator-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// ExitCode maps the error code to a process exit status.
func (e *Error) ExitCode() int {
	switch e.code {
	case CodeInvalidInput:
		return 2
	case CodeCanceled:
		return 130
	default:
		return 1
	}
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewUnexpected wraps an unanticipated failure.
func NewUnexpected(err error) error {
	return new(err, "unexpected failure", TypeUnexpected, CodeInternal)
}

// NewIO creates an IO error for the given file path.
func NewIO(path string, err error) error {
	return new(err, "cannot access "+path, TypeIO, CodeIO)
}

// NewNotFound creates an IO error for a missing file. It matches ErrNotFound.
func NewNotFound(path string) error {
	return new(fmt.Errorf("%s: %w", path, ErrNotFound), "", TypeIO, CodeNotFound)
}

// NewInvalidFormat creates a validation error for a structurally malformed file.
func NewInvalidFormat(path string, err error) error {
	return new(err, "malformed file "+path, TypeValidation, CodeInvalidFormat)
}

// NewInvalidInput creates a validation error for invalid configuration.
func NewInvalidInput(err error) error {
	return new(err, "invalid configuration", TypeValidation, CodeInvalidInput)
}

// NewCanceled creates an error for a run stopped by its context.
func NewCanceled(err error) error {
	return new(err, "run canceled", TypeUnexpected, CodeCanceled)
}

// ExitCode returns the exit status for any error; plain errors map to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var perr *Error
	if errors.As(err, &perr) {
		return perr.ExitCode()
	}

	return 1
}
