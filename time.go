package custody

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/iov-one/custody/errors"
)

// UnixTime is a non negative POSIX time in seconds, as observed by the
// hosting cluster.
type UnixTime int64

// UnmarshalJSON accepts a number of seconds or an RFC 3339 string. The
// string form is convenient in the genesis file.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var secs int64
	if err := json.Unmarshal(raw, &secs); err == nil {
		return t.setSeconds(secs)
	}
	var stdtime time.Time
	if err := json.Unmarshal(raw, &stdtime); err == nil {
		return t.setSeconds(stdtime.Unix())
	}
	return errors.Wrap(errors.ErrInvalidInput, "invalid time format")
}

// Set updates the time from a number of seconds or an RFC 3339 string. It
// implements flag.Value.
func (t *UnixTime) Set(raw string) error {
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return t.setSeconds(secs)
	}
	stdtime, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, "invalid time format")
	}
	return t.setSeconds(stdtime.Unix())
}

func (t *UnixTime) setSeconds(secs int64) error {
	if secs < 0 {
		return errors.Wrap(errors.ErrInvalidInput, "time before epoch")
	}
	*t = UnixTime(secs)
	return nil
}

func (t UnixTime) String() string {
	return time.Unix(int64(t), 0).UTC().Format(time.RFC3339)
}
