package dyntype

import (
	"fmt"
	"math"
	"sort"
)

// Curve holds the point size of a text style at every text size level.
// A value relative to the style grows by the ratio between the size at
// the requested level and the size at the default level.
type Curve [levelCount]float64

// NewCurve creates a curve from exactly one size per level.
func NewCurve(sizes ...float64) (Curve, error) {
	var c Curve
	if len(sizes) != levelCount {
		return c, fmt.Errorf("%w: want %d sizes, got %d", ErrInvalidCurve, levelCount, len(sizes))
	}
	copy(c[:], sizes)
	if err := c.Validate(); err != nil {
		return Curve{}, err
	}
	return c, nil
}

// Validate checks that every size is positive and finite and that sizes
// never shrink as the level grows.
func (c Curve) Validate() error {
	for i, v := range c {
		if !(v > 0) {
			return fmt.Errorf("%w: size at %v must be positive, got %v", ErrInvalidCurve, Level(i), v)
		}
		if math.IsInf(v, 0) {
			return fmt.Errorf("%w: size at %v must be finite", ErrInvalidCurve, Level(i))
		}
		if i > 0 && v < c[i-1] {
			return fmt.Errorf("%w: size at %v is smaller than at %v", ErrInvalidCurve, Level(i), Level(i-1))
		}
	}
	return nil
}

// At returns the point size of the curve at level l.
func (c Curve) At(l Level) (float64, error) {
	if !l.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedLevel, l)
	}
	return c[l], nil
}

// Factor returns the multiplier applied to values at level l.
func (c Curve) Factor(l Level) (float64, error) {
	v, err := c.At(l)
	if err != nil {
		return 0, err
	}
	return v / c[DefaultLevel], nil
}

// Curves maps each text style to its scaling curve.
type Curves map[TextStyle]Curve

// The Dynamic Type point sizes published by the host platform, from xSmall up to accessibility5.
var defaultCurves = Curves{
	LargeTitle:  {31, 32, 33, 34, 36, 38, 40, 44, 48, 52, 56, 60},
	Title:       {25, 26, 27, 28, 30, 32, 34, 38, 43, 48, 53, 58},
	Title2:      {19, 20, 21, 22, 24, 26, 28, 34, 39, 44, 50, 56},
	Title3:      {17, 18, 19, 20, 22, 24, 26, 31, 37, 43, 49, 55},
	Headline:    {14, 15, 16, 17, 19, 21, 23, 28, 33, 40, 47, 53},
	Subheadline: {12, 13, 14, 15, 17, 19, 21, 25, 30, 36, 42, 49},
	Body:        {14, 15, 16, 17, 19, 21, 23, 28, 33, 40, 47, 53},
	Callout:     {13, 14, 15, 16, 18, 20, 22, 26, 32, 38, 44, 51},
	Footnote:    {12, 12, 12, 13, 15, 17, 19, 23, 27, 33, 38, 44},
	Caption:     {11, 11, 11, 12, 14, 16, 18, 22, 26, 32, 37, 43},
	Caption2:    {11, 11, 11, 11, 13, 15, 17, 20, 24, 29, 34, 41},
}

// DefaultCurves returns a copy of the platform's default scaling curves.
func DefaultCurves() Curves {
	return defaultCurves.Clone()
}

// Clone returns a copy of the curves.
func (c Curves) Clone() Curves {
	out := make(Curves, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Curve returns the curve registered for style.
func (c Curves) Curve(style TextStyle) (Curve, error) {
	if !style.Valid() {
		return Curve{}, fmt.Errorf("%w: %v", ErrUnsupportedTextStyle, style)
	}
	curve, ok := c[style]
	if !ok {
		return Curve{}, fmt.Errorf("%w for %v", ErrMissingCurve, style)
	}
	return curve, nil
}

// Validate checks every curve and fails on the first invalid one,
// in text style order.
func (c Curves) Validate() error {
	styles := make([]TextStyle, 0, len(c))
	for s := range c {
		styles = append(styles, s)
	}
	sort.Slice(styles, func(i, j int) bool { return styles[i] < styles[j] })

	for _, s := range styles {
		if !s.Valid() {
			return fmt.Errorf("%w: %v", ErrUnsupportedTextStyle, s)
		}
		if err := c[s].Validate(); err != nil {
			return fmt.Errorf("%v: %w", s, err)
		}
	}
	return nil
}

// Metrics is the host scaling service. It returns the value scaled for a
// text style at a text size level.
type Metrics interface {
	ScaledValue(v float64, style TextStyle, level Level) (float64, error)
}

// CurveMetrics scales values using a set of scaling curves.
type CurveMetrics struct {
	curves Curves
}

var _ Metrics = (*CurveMetrics)(nil)

// NewCurveMetrics creates the metrics backed by the provided curves.
// The curves are validated and copied.
func NewCurveMetrics(curves Curves) (*CurveMetrics, error) {
	if err := curves.Validate(); err != nil {
		return nil, err
	}
	return &CurveMetrics{curves: curves.Clone()}, nil
}

// Curves returns a copy of the curves used by m.
func (m *CurveMetrics) Curves() Curves {
	return m.curves.Clone()
}

// ScaledValue implements Metrics.
func (m *CurveMetrics) ScaledValue(v float64, style TextStyle, level Level) (float64, error) {
	curve, err := m.curves.Curve(style)
	if err != nil {
		return 0, err
	}
	f, err := curve.Factor(level)
	if err != nil {
		return 0, err
	}
	return v * f, nil
}

// IdentityMetrics leaves values unscaled. It stands in for hosts
// without a scaling service.
type IdentityMetrics struct{}

var _ Metrics = IdentityMetrics{}

// ScaledValue implements Metrics. The style and level are still checked.
func (IdentityMetrics) ScaledValue(v float64, style TextStyle, level Level) (float64, error) {
	if !style.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedTextStyle, style)
	}
	if !level.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedLevel, level)
	}
	return v, nil
}
