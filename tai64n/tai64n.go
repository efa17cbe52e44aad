package tai64n

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/iov-one/custody/errors"
)

// Size is the length of a TAI64N label in bytes.
const Size = 12

const (
	// epochLabel is the TAI64 seconds label of 1970-01-01 00:00:00 UTC.
	epochLabel uint64 = 1<<62 + 10

	reservedLabel uint64 = 1 << 63

	nanosPerSecond = 1000000000

	// rfc3339Nanos always renders all nine fractional digits.
	rfc3339Nanos = "2006-01-02T15:04:05.000000000Z07:00"
)

// Range of UNIX seconds a label can represent. Labels at or above 2^63 are
// reserved.
const (
	MinUnix = -int64(epochLabel)
	MaxUnix = int64(reservedLabel-1) - int64(epochLabel)
)

// Label is the binary TAI64N representation of a point in time.
type Label [Size]byte

// Epoch is the label of the UNIX epoch.
var Epoch = FromUnix(0)

// FromUnix returns the label of given UNIX time in seconds. Values outside
// [MinUnix, MaxUnix] are clamped to the nearest bound.
func FromUnix(secs int64) Label {
	return encode(seconds(secs), 0)
}

// FromTime returns the label of given time, including nanoseconds. The
// seconds are clamped like in FromUnix.
func FromTime(t time.Time) Label {
	return encode(seconds(t.Unix()), uint32(t.Nanosecond()))
}

func seconds(unix int64) uint64 {
	switch {
	case unix < MinUnix:
		unix = MinUnix
	case unix > MaxUnix:
		unix = MaxUnix
	}
	return uint64(unix + int64(epochLabel))
}

// Now returns the label of the current time.
func Now() Label {
	return FromTime(time.Now())
}

func encode(secs uint64, nanos uint32) Label {
	var l Label
	binary.BigEndian.PutUint64(l[:8], secs)
	binary.BigEndian.PutUint32(l[8:], nanos)
	return l
}

// Parse copies given bytes into a label. It only checks the length, use
// Decode to validate the content.
func Parse(raw []byte) (Label, error) {
	var l Label
	if len(raw) != Size {
		return l, errors.Wrapf(errors.ErrInvalidInput, "label must be %d bytes, got %d", Size, len(raw))
	}
	copy(l[:], raw)
	return l, nil
}

// Decode returns the time represented by given label. Source is a name of
// the value being decoded and is included in the error message.
func Decode(source string, l Label) (time.Time, error) {
	secs := binary.BigEndian.Uint64(l[:8])
	nanos := binary.BigEndian.Uint32(l[8:])
	if secs >= reservedLabel || nanos >= nanosPerSecond {
		return time.Time{}, errors.Wrapf(errors.ErrInvalidInput,
			"%s: unable to convert bytes to TAI64N timestamp", source)
	}
	unix := int64(secs) - int64(epochLabel)
	return time.Unix(unix, int64(nanos)).UTC(), nil
}

// Humanize decodes given label and renders it as an RFC 3339 UTC string with
// nanosecond precision.
func Humanize(source string, l Label) (string, error) {
	t, err := Decode(source, l)
	if err != nil {
		return "", err
	}
	return t.Format(rfc3339Nanos), nil
}

// Time returns the time represented by this label.
func (l Label) Time() (time.Time, error) {
	return Decode("tai64n", l)
}

// IsEpoch returns true if this label represents the UNIX epoch.
func (l Label) IsEpoch() bool {
	return l == Epoch
}

// String returns the hexadecimal representation of the label. It never
// decodes the content.
func (l Label) String() string {
	return hex.EncodeToString(l[:])
}
