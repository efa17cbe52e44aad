package custody

import (
	"fmt"
	"math/bits"

	"github.com/iov-one/custody/errors"
)

// Fraction is the rational number Numerator/Denominator.
type Fraction struct {
	Numerator   uint32 `json:"numerator"`
	Denominator uint32 `json:"denominator"`
}

func (f Fraction) String() string {
	switch {
	case f.Numerator == 0:
		return "0"
	case f.Denominator == 1:
		return fmt.Sprint(f.Numerator)
	default:
		return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
	}
}

// Validate returns an error if the denominator is zero.
func (f Fraction) Validate() error {
	if f.Denominator == 0 {
		return errors.Wrapf(errors.ErrInvalidInput, "fraction %d/0", f.Numerator)
	}
	return nil
}

// MulCeil returns ceil(value * f). Computation is done on 128 bit integers
// so there is no precision loss for any uint64 value. It fails if the
// fraction is invalid or the result does not fit in uint64.
func (f Fraction) MulCeil(value uint64) (uint64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	hi, lo := bits.Mul64(value, uint64(f.Numerator))
	den := uint64(f.Denominator)
	if hi >= den {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %s", value, f)
	}
	quo, rem := bits.Div64(hi, lo, den)
	if rem != 0 {
		if quo == ^uint64(0) {
			return 0, errors.Wrapf(errors.ErrOverflow, "%d * %s", value, f)
		}
		quo++
	}
	return quo, nil
}
