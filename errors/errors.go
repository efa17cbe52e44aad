package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Root errors shared by all packages. Codes below 1000 belong to this
// package.
var (
	// ErrNotFound is returned when a wallet or a pending request is missing.
	ErrNotFound = Register(3, "not found")

	// ErrInvalidModel is returned when a stored record cannot be decoded.
	ErrInvalidModel = Register(5, "invalid model")

	// ErrDuplicate is returned when a record with the same key exists.
	ErrDuplicate = Register(6, "duplicate")

	// ErrEmpty is returned when a value fails a not empty assertion.
	ErrEmpty = Register(9, "value is empty")

	ErrInvalidAmount = Register(13, "invalid amount")

	// ErrInvalidInput is returned when a value supplied by the caller cannot
	// be parsed.
	ErrInvalidInput = Register(14, "invalid input")

	// ErrOverflow is returned when a result does not fit its type or a
	// capacity is exceeded.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrDatabase is returned when a key value store operation failed.
	ErrDatabase = Register(17, "database")

	// ErrIteratorDone is returned by an iterator that has no more data.
	ErrIteratorDone = Register(18, "iterator done")
)

// usedCodes maps registered codes to their errors. Code 1 is reserved for
// errors created outside of this package.
var usedCodes = map[uint32]*Error{1: nil}

// Register returns a new root error with given code. It panics if the code
// is already taken, so call it only from package level declarations.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		desc := "reserved"
		if e != nil {
			desc = e.desc
		}
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, desc))
	}
	err := &Error{code: code, desc: description}
	usedCodes[code] = err
	return err
}

// Error is a root error. Every error returned by custody packages wraps
// exactly one root error, which categorizes it and carries a stable code.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the registered code of this error.
func (e Error) Code() uint32 {
	return e.code
}

// New returns this error wrapped with given description.
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Is returns true if err wraps this root error. A nil kind matches only nil
// errors, including typed nil pointers.
func (kind *Error) Is(err error) bool {
	if kind == nil {
		return err == nil || reflect.ValueOf(err).IsNil()
	}
	return errors.Cause(err) == kind
}

// Code returns the code of the root error that err wraps, 0 for nil and 1
// for errors that wrap no registered root error.
func Code(err error) uint32 {
	if err == nil {
		return 0
	}
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.code
	}
	return 1
}

// Wrap extends err with a description. A nil err results in nil. The first
// wrap attaches a stack trace.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{parent: err, msg: description}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// causer is implemented by errors that wrap another error.
type causer interface {
	Cause() error
}
