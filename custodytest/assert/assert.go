package assert

import (
	"bytes"
	"reflect"

	"github.com/iov-one/custody/errors"
)

// Tester is the subset of testing.TB used by the assertions.
type Tester interface {
	Helper()
	Fatalf(string, ...interface{})
}

// Nil fails the test if given value is not nil. Errors are printed with %+v
// so that the stack trace is shown.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) (isnil bool) {
	if value == nil {
		return true
	}
	// IsNil panics for values that cannot be nil.
	defer func() {
		if recover() != nil {
			isnil = false
		}
	}()
	return reflect.ValueOf(value).IsNil()
}

// Equal fails the test if two values are not deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal \nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Record fails the test if two serialized records differ. The first
// differing offset is reported together with the surrounding bytes.
func Record(t Tester, want, got []byte) {
	t.Helper()
	if bytes.Equal(want, got) {
		return
	}
	if len(want) != len(got) {
		t.Fatalf("want a %d byte record, got %d bytes", len(want), len(got))
	}
	i := 0
	for want[i] == got[i] {
		i++
	}
	from, to := i&^15, i&^15+16
	if to > len(want) {
		to = len(want)
	}
	t.Fatalf("records differ at byte %d\nwant [%d:%d] % x\n got [%d:%d] % x",
		i, from, to, want[from:to], from, to, got[from:to])
}

// IsErr fails the test unless got wraps the want root error. Registered
// codes of both are reported on mismatch.
func IsErr(t Tester, want *errors.Error, got error) {
	t.Helper()
	if want.Is(got) {
		return
	}
	if want == nil {
		t.Fatalf("want no error, got code %d: %+v", errors.Code(got), got)
	}
	t.Fatalf("want error code %d (%s), got code %d: %+v", want.Code(), want, errors.Code(got), got)
}
