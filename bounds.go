package dyntype

import (
	"fmt"

	"github.com/esimov/dyntype/utils"
)

// Bounds holds the optional minimum and maximum of a scaled axis.
// The zero value is unbounded on both sides.
type Bounds struct {
	min, max *float64
}

// NewBounds creates the bounds from the optional min and max values.
// The values are copied, so later changes to the pointed values have no effect.
// It returns ErrInvertedBounds if both are present and min > max.
func NewBounds(min, max *float64) (Bounds, error) {
	var b Bounds
	if min != nil {
		v := *min
		b.min = &v
	}
	if max != nil {
		v := *max
		b.max = &v
	}
	if b.min != nil && b.max != nil && *b.min > *b.max {
		return Bounds{}, fmt.Errorf("%w: %v > %v", ErrInvertedBounds, *b.min, *b.max)
	}
	return b, nil
}

// Unbounded returns bounds that leave the value untouched.
func Unbounded() Bounds { return Bounds{} }

// AtLeast returns bounds with a lower limit only.
func AtLeast(min float64) Bounds {
	return Bounds{min: &min}
}

// AtMost returns bounds with an upper limit only.
func AtMost(max float64) Bounds {
	return Bounds{max: &max}
}

// MinMax returns bounds limited on both sides.
func MinMax(min, max float64) (Bounds, error) {
	return NewBounds(&min, &max)
}

// Min returns the lower limit and whether it is set.
func (b Bounds) Min() (float64, bool) {
	if b.min == nil {
		return 0, false
	}
	return *b.min, true
}

// Max returns the upper limit and whether it is set.
func (b Bounds) Max() (float64, bool) {
	if b.max == nil {
		return 0, false
	}
	return *b.max, true
}

// Clamp constrains v to the bounds.
func (b Bounds) Clamp(v float64) float64 {
	return utils.Between(v, b.min, b.max)
}

func (b Bounds) String() string {
	lo, hi := "-inf", "+inf"
	if b.min != nil {
		lo = utils.FormatValue(*b.min)
	}
	if b.max != nil {
		hi = utils.FormatValue(*b.max)
	}
	return "[" + lo + ", " + hi + "]"
}
