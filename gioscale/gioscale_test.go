package gioscale

import (
	"image"
	"testing"

	"gioui.org/font"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/esimov/dyntype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalerAt(l dyntype.Level) *dyntype.Scaler {
	return dyntype.NewScaler(dyntype.WithEnvironment(dyntype.StaticEnvironment(l)))
}

func TestGioscale_Metric(t *testing.T) {
	m, err := Metric(scalerAt(dyntype.Accessibility2), unit.Metric{PxPerDp: 2, PxPerSp: 2})
	require.NoError(t, err)
	assert.Equal(t, float32(2), m.PxPerDp)
	assert.InDelta(t, 2*33.0/17.0, m.PxPerSp, 1e-5)

	m, err = Metric(scalerAt(dyntype.Large), unit.Metric{})
	require.NoError(t, err)
	assert.Equal(t, float32(1), m.PxPerSp)

	_, err = Metric(scalerAt(dyntype.Level(99)), unit.Metric{})
	assert.ErrorIs(t, err, dyntype.ErrUnsupportedLevel)
}

func TestGioscale_Units(t *testing.T) {
	v := scalerAt(dyntype.Accessibility5).Value(32, dyntype.AtMost(78), dyntype.Body)

	dp, err := Dp(v)
	require.NoError(t, err)
	assert.Equal(t, unit.Dp(78), dp)

	sp, err := Sp(v)
	require.NoError(t, err)
	assert.Equal(t, unit.Sp(78), sp)
}

func TestGioscale_Point(t *testing.T) {
	z, err := scalerAt(dyntype.Large).Size(dyntype.Size{Width: 40, Height: 10}, nil, nil, dyntype.Body)
	require.NoError(t, err)

	pt, err := Point(unit.Metric{PxPerDp: 2}, z)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(80, 20), pt)
}

func TestGioscale_Inset(t *testing.T) {
	in, err := scalerAt(dyntype.Large).Insets(dyntype.Insets{Top: 1, Leading: 2, Bottom: 3, Trailing: 4}, nil, nil, dyntype.Body)
	require.NoError(t, err)

	ltr, err := Inset(in, false)
	require.NoError(t, err)
	assert.Equal(t, unit.Dp(1), ltr.Top)
	assert.Equal(t, unit.Dp(2), ltr.Left)
	assert.Equal(t, unit.Dp(3), ltr.Bottom)
	assert.Equal(t, unit.Dp(4), ltr.Right)

	rtl, err := Inset(in, true)
	require.NoError(t, err)
	assert.Equal(t, unit.Dp(4), rtl.Left)
	assert.Equal(t, unit.Dp(2), rtl.Right)
}

func TestGioscale_FontFace(t *testing.T) {
	f := FontFace(dyntype.Font{Size: 17, Weight: dyntype.Bold, Design: dyntype.DesignSerif, Italic: true})
	assert.Equal(t, font.Bold, f.Weight)
	assert.Equal(t, font.Italic, f.Style)
	assert.Equal(t, font.Typeface("serif"), f.Typeface)

	f = FontFace(dyntype.Font{Weight: dyntype.UltraLight})
	assert.Equal(t, font.Thin, f.Weight)
	assert.Equal(t, font.Regular, f.Style)
	assert.Empty(t, f.Typeface)

	f = FontFace(dyntype.Font{SmallCaps: dyntype.SmallCaps})
	assert.Equal(t, SmallCapsTypeface, f.Typeface)
}

func TestGioscale_Label(t *testing.T) {
	th := &material.Theme{Face: "Go"}
	sf, err := scalerAt(dyntype.XXLarge).Font(
		dyntype.SystemFont(17, dyntype.FontLeading(dyntype.LeadingLoose), dyntype.FontWeight(dyntype.WeightMedium)),
		dyntype.Body,
	)
	require.NoError(t, err)

	l, err := Label(th, sf, "The form is the solution to the problem")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, float32(l.TextSize), 1e-5)
	assert.Equal(t, font.Typeface("Go"), l.Font.Typeface)
	assert.Equal(t, font.Medium, l.Font.Weight)
	assert.Equal(t, float32(1.5), l.LineHeightScale)
	assert.Equal(t, "The form is the solution to the problem", l.Text)
}
