package custody

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/custody/errors"
)

func TestUnixTimeUnmarshal(t *testing.T) {
	cases := map[string]struct {
		raw      string
		wantTime UnixTime
		wantErr  *errors.Error
	}{
		"zero time as number": {
			raw:      "0",
			wantTime: 0,
		},
		"zero time as string": {
			raw:      `"1970-01-01T01:00:00+01:00"`,
			wantTime: 0,
		},
		"a time as string": {
			raw:      `"2019-04-04T11:35:40.89181085+02:00"`,
			wantTime: 1554370540,
		},
		"a time as number": {
			raw:      "1554370540",
			wantTime: 1554370540,
		},
		"negative number": {
			raw:     "-1",
			wantErr: errors.ErrInvalidInput,
		},
		"negative time as string": {
			raw:     `"1950-01-01T01:00:00+01:00"`,
			wantErr: errors.ErrInvalidInput,
		},
		"invalid string": {
			raw:     `"not a time string"`,
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.raw), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %s", err)
			}
			if got != tc.wantTime {
				t.Fatalf("want %d time, got %d", tc.wantTime, got)
			}
		})
	}
}

func TestUnixTimeString(t *testing.T) {
	if got := UnixTime(1518568087).String(); got != "2018-02-14T00:28:07Z" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestUnixTimeSet(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    UnixTime
		wantErr *errors.Error
	}{
		"seconds":      {raw: "1518568087", want: 1518568087},
		"rfc3339":      {raw: "2018-02-14T00:28:07Z", want: 1518568087},
		"negative":     {raw: "-5", wantErr: errors.ErrInvalidInput},
		"before epoch": {raw: "1960-01-01T00:00:00Z", wantErr: errors.ErrInvalidInput},
		"garbage":      {raw: "yesterday", wantErr: errors.ErrInvalidInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := got.Set(tc.raw)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil && got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}
