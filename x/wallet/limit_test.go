package wallet

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

func TestTokenLimitPack(t *testing.T) {
	for _, l := range []TokenLimit{Third, Quarter, Half, TwoThirds, All} {
		got, err := UnpackTokenLimit(l.Pack())
		assert.Nil(t, err)
		assert.Equal(t, l, got)
	}
	assert.Equal(t, byte(0), Third.Pack())
	assert.Equal(t, byte(4), All.Pack())

	for _, b := range []byte{5, 6, 0x80, 0xff} {
		_, err := UnpackTokenLimit(b)
		assert.IsErr(t, ErrTokenLimitNotApplicable, err)
	}
}

func TestTokenLimitDefault(t *testing.T) {
	var l TokenLimit
	assert.Equal(t, Third, l)
	assert.Equal(t, Third, DefaultTokenLimit)
}

func TestTokenLimitCalculateToken(t *testing.T) {
	cases := map[string]struct {
		limit     TokenLimit
		available uint64
		want      uint64
	}{
		"third rounds up":      {limit: Third, available: 10, want: 4},
		"quarter exact":        {limit: Quarter, available: 8, want: 2},
		"half rounds up":       {limit: Half, available: 7, want: 4},
		"two thirds exact":     {limit: TwoThirds, available: 9, want: 6},
		"all":                  {limit: All, available: 5, want: 5},
		"nothing available":    {limit: Half, available: 0, want: 0},
		"one token":            {limit: Quarter, available: 1, want: 1},
		"all of max":           {limit: All, available: math.MaxUint64, want: math.MaxUint64},
		"half of max":          {limit: Half, available: math.MaxUint64, want: 1 << 63},
		"third of max":         {limit: Third, available: math.MaxUint64, want: math.MaxUint64 / 3},
		"two thirds of max":    {limit: TwoThirds, available: math.MaxUint64, want: math.MaxUint64 / 3 * 2},
		"beyond float32 range": {limit: Third, available: 16777217, want: 5592406},
		"unknown limit":        {limit: TokenLimit(9), available: 100, want: 0},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.limit.CalculateToken(tc.available))
		})
	}
}

func TestTokenLimitFraction(t *testing.T) {
	assert.Equal(t, custody.Fraction{Numerator: 2, Denominator: 3}, TwoThirds.Fraction())
	assert.Equal(t, custody.Fraction{}, TokenLimit(5).Fraction())
}

func TestTokenLimitJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    TokenLimit
		wantErr *errors.Error
	}{
		"third":      {raw: `"third"`, want: Third},
		"two thirds": {raw: `"two_thirds"`, want: TwoThirds},
		"all":        {raw: `"all"`, want: All},
		"unknown":    {raw: `"most"`, wantErr: ErrTokenLimitNotApplicable},
		"number":     {raw: `2`, wantErr: errors.ErrInvalidInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got TokenLimit
			err := json.Unmarshal([]byte(tc.raw), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.want, got)

			raw, err := json.Marshal(got)
			assert.Nil(t, err)
			assert.Equal(t, tc.raw, string(raw))
		})
	}

	if _, err := json.Marshal(TokenLimit(7)); err == nil {
		t.Fatal("marshaling an unknown limit must fail")
	}
}

func TestTokenLimitString(t *testing.T) {
	assert.Equal(t, "quarter", Quarter.String())
	assert.Equal(t, "TokenLimit(9)", TokenLimit(9).String())

	l, err := ParseTokenLimit("half")
	assert.Nil(t, err)
	assert.Equal(t, Half, l)
}
