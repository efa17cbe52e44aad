package errors

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// stackTracer is implemented by errors created with github.com/pkg/errors.
type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// stackTrace returns the innermost stack trace attached to given error or any
// of the errors it wraps. It returns nil if no stack trace information is
// present.
func stackTrace(err error) errors.StackTrace {
	var st errors.StackTrace
	for err != nil {
		if t, ok := err.(stackTracer); ok {
			st = t.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return st
}

// Format implements fmt.Formatter. Use %+v to print the error description
// followed by the stack trace of the place where the error was first wrapped.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, e.Error())
			if st := stackTrace(e); st != nil {
				fmt.Fprintf(s, "%+v", st)
			}
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
