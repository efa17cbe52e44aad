package wallet

import (
	"encoding/json"
	"fmt"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// TokenLimit is the fraction of an available balance that a single transfer
// may withdraw.
type TokenLimit uint8

const (
	Third TokenLimit = iota
	Quarter
	Half
	TwoThirds
	All
)

// DefaultTokenLimit is the limit of a newly created wallet.
const DefaultTokenLimit = Third

var limitNames = map[TokenLimit]string{
	Third:     "third",
	Quarter:   "quarter",
	Half:      "half",
	TwoThirds: "two_thirds",
	All:       "all",
}

var limitFractions = map[TokenLimit]custody.Fraction{
	Third:     {Numerator: 1, Denominator: 3},
	Quarter:   {Numerator: 1, Denominator: 4},
	Half:      {Numerator: 1, Denominator: 2},
	TwoThirds: {Numerator: 2, Denominator: 3},
	All:       {Numerator: 1, Denominator: 1},
}

// Validate returns an error if the limit is not one of the declared values.
func (l TokenLimit) Validate() error {
	if _, ok := limitNames[l]; !ok {
		return errors.Wrapf(ErrTokenLimitNotApplicable, "limit %d", uint8(l))
	}
	return nil
}

// Pack returns the single byte wire representation.
func (l TokenLimit) Pack() byte {
	return byte(l)
}

// UnpackTokenLimit returns the limit encoded by given byte.
func UnpackTokenLimit(b byte) (TokenLimit, error) {
	l := TokenLimit(b)
	if err := l.Validate(); err != nil {
		return 0, err
	}
	return l, nil
}

// Fraction returns the share of the balance this limit allows. Unknown
// limits return a zero fraction.
func (l TokenLimit) Fraction() custody.Fraction {
	return limitFractions[l]
}

// CalculateToken returns the maximum amount that can be withdrawn from given
// available balance, rounded up. Unknown limits allow nothing.
func (l TokenLimit) CalculateToken(available uint64) uint64 {
	f, ok := limitFractions[l]
	if !ok {
		return 0
	}
	// A fraction not greater than one cannot overflow.
	n, err := f.MulCeil(available)
	if err != nil {
		return 0
	}
	return n
}

func (l TokenLimit) String() string {
	if name, ok := limitNames[l]; ok {
		return name
	}
	return fmt.Sprintf("TokenLimit(%d)", uint8(l))
}

// ParseTokenLimit returns the limit of given name, for example "two_thirds".
func ParseTokenLimit(name string) (TokenLimit, error) {
	for l, n := range limitNames {
		if n == name {
			return l, nil
		}
	}
	return 0, errors.Wrapf(ErrTokenLimitNotApplicable, "unknown limit %q", name)
}

func (l TokenLimit) MarshalJSON() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(l.String())
}

func (l *TokenLimit) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, "limit must be a string")
	}
	v, err := ParseTokenLimit(name)
	if err != nil {
		return err
	}
	*l = v
	return nil
}
