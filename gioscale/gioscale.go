// Package gioscale converts the values scaled by dyntype into Gio units,
// insets, font descriptors and labels.
//
// Two ways of following the text size preference are offered. Metric
// rescales the Sp unit of a whole window, so every text size expressed in
// sp follows the preference. The remaining helpers resolve individual
// values, keeping their own text style and bounds.
package gioscale

import (
	"image"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/esimov/dyntype"
)

// Typefaces maps a font design to the Gio typeface selecting it.
// The default design keeps the theme typeface.
var Typefaces = map[dyntype.Design]font.Typeface{
	dyntype.DesignSerif:      "serif",
	dyntype.DesignRounded:    "rounded",
	dyntype.DesignMonospaced: "Go Mono, monospace",
}

// SmallCapsTypeface is the typeface used for the small capitals variants.
var SmallCapsTypeface font.Typeface = "Go Smallcaps"

// Metric returns m with the pixels per sp scaled for the current level,
// relative to body text.
func Metric(s *dyntype.Scaler, m unit.Metric) (unit.Metric, error) {
	f, err := s.Transform(1, dyntype.Body)
	if err != nil {
		return m, err
	}
	px := m.PxPerSp
	if px == 0 {
		px = 1
	}
	m.PxPerSp = px * float32(f)
	return m, nil
}

// Dp returns the scaled value in device independent pixels.
func Dp(v *dyntype.ScaledValue) (unit.Dp, error) {
	r, err := v.Value()
	if err != nil {
		return 0, err
	}
	return unit.Dp(r), nil
}

// Sp returns the scaled value in scaled pixels.
func Sp(v *dyntype.ScaledValue) (unit.Sp, error) {
	r, err := v.Value()
	if err != nil {
		return 0, err
	}
	return unit.Sp(r), nil
}

// Point returns the scaled size, taken as dp, in pixels.
func Point(m unit.Metric, s *dyntype.ScaledSize) (image.Point, error) {
	sz, err := s.Size()
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(m.Dp(unit.Dp(sz.Width)), m.Dp(unit.Dp(sz.Height))), nil
}

// Inset returns the scaled insets as a Gio inset. Leading and trailing map
// to left and right, or the other way round for right-to-left layouts.
func Inset(s *dyntype.ScaledInsets, rtl bool) (layout.Inset, error) {
	in, err := s.Insets()
	if err != nil {
		return layout.Inset{}, err
	}
	left, right := in.Leading, in.Trailing
	if rtl {
		left, right = right, left
	}
	return layout.Inset{
		Top:    unit.Dp(in.Top),
		Bottom: unit.Dp(in.Bottom),
		Left:   unit.Dp(left),
		Right:  unit.Dp(right),
	}, nil
}

// FontFace returns the Gio font matching f. An empty typeface means the
// theme default. Width and monospaced digits have no Gio counterpart and
// are left to the typeface.
func FontFace(f dyntype.Font) font.Font {
	ff := font.Font{
		Typeface: Typefaces[f.Design],
		Weight:   font.Weight(f.Weight),
	}
	if f.SmallCaps != dyntype.CapsNone {
		ff.Typeface = SmallCapsTypeface
	}
	if f.Italic {
		ff.Style = font.Italic
	}
	return ff
}

// Label returns a material label of the scaled font.
func Label(th *material.Theme, f *dyntype.ScaledFont, txt string) (material.LabelStyle, error) {
	resolved, err := f.Font()
	if err != nil {
		return material.LabelStyle{}, err
	}
	l := material.Label(th, unit.Sp(resolved.Size), txt)

	face := FontFace(resolved)
	if face.Typeface == "" {
		face.Typeface = l.Font.Typeface
	}
	l.Font = face
	l.LineHeightScale = resolved.Leading.LineHeightScale()

	return l, nil
}
