package dyntype

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurve_DefaultsCoverEveryStyle(t *testing.T) {
	curves := DefaultCurves()
	require.NoError(t, curves.Validate())

	for _, s := range TextStyles() {
		c, err := curves.Curve(s)
		require.NoError(t, err, s)

		f, err := c.Factor(DefaultLevel)
		require.NoError(t, err)
		assert.Equal(t, 1.0, f, s)
	}
}

func TestCurve_DefaultsAreCopied(t *testing.T) {
	curves := DefaultCurves()
	curves[Body] = Curve{}

	c, err := DefaultCurves().Curve(Body)
	require.NoError(t, err)
	assert.Equal(t, 17.0, c[Large])
}

func TestCurve_Factor(t *testing.T) {
	c, err := DefaultCurves().Curve(Body)
	require.NoError(t, err)

	f, err := c.Factor(Accessibility2)
	require.NoError(t, err)
	assert.InDelta(t, 33.0/17.0, f, 1e-9)

	f, err = c.Factor(XSmall)
	require.NoError(t, err)
	assert.InDelta(t, 14.0/17.0, f, 1e-9)

	_, err = c.Factor(Level(20))
	assert.ErrorIs(t, err, ErrUnsupportedLevel)
}

func TestCurve_New(t *testing.T) {
	_, err := NewCurve(1, 2, 3)
	assert.ErrorIs(t, err, ErrInvalidCurve)

	_, err = NewCurve(10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 0)
	assert.ErrorIs(t, err, ErrInvalidCurve)

	_, err = NewCurve(10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 21, 20)
	assert.ErrorIs(t, err, ErrInvalidCurve)

	_, err = NewCurve(10, 11, 12, math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidCurve)

	_, err = NewCurve(10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidCurve)

	c, err := NewCurve(10, 10, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21)
	require.NoError(t, err)
	assert.Equal(t, 13.0, c[Large])
}

func TestCurveMetrics_ScaledValue(t *testing.T) {
	m, err := NewCurveMetrics(DefaultCurves())
	require.NoError(t, err)

	v, err := m.ScaledValue(17, Body, Accessibility5)
	require.NoError(t, err)
	assert.InDelta(t, 53.0, v, 1e-9)

	v, err = m.ScaledValue(11, Caption2, Small)
	require.NoError(t, err)
	assert.InDelta(t, 11.0, v, 1e-9)

	_, err = m.ScaledValue(17, TextStyle(-1), Large)
	assert.ErrorIs(t, err, ErrUnsupportedTextStyle)
}

func TestCurveMetrics_MissingCurve(t *testing.T) {
	m, err := NewCurveMetrics(Curves{Body: defaultCurves[Body]})
	require.NoError(t, err)

	_, err = m.ScaledValue(10, Headline, Large)
	assert.ErrorIs(t, err, ErrMissingCurve)

	_, err = NewCurveMetrics(Curves{Body: {}})
	assert.ErrorIs(t, err, ErrInvalidCurve)
}

func TestIdentityMetrics(t *testing.T) {
	var m IdentityMetrics
	for _, l := range Levels() {
		v, err := m.ScaledValue(42, Footnote, l)
		require.NoError(t, err)
		assert.Equal(t, 42.0, v)
	}

	_, err := m.ScaledValue(42, Footnote, Level(-3))
	assert.ErrorIs(t, err, ErrUnsupportedLevel)
	_, err = m.ScaledValue(42, TextStyle(99), Large)
	assert.ErrorIs(t, err, ErrUnsupportedTextStyle)
}
