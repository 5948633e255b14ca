package dyntype

import "fmt"

// axis is a single scaled dimension with its own bounds.
type axis struct {
	base   float64
	bounds Bounds
}

func (a axis) resolve(s *Scaler, style TextStyle, l Level) (float64, error) {
	v, err := s.transform(a.base, style, l)
	if err != nil {
		return 0, err
	}
	return a.bounds.Clamp(v), nil
}

// pick returns a pointer to the field selected by f, or nil if p is nil.
func pick[T any](p *T, f func(*T) float64) *float64 {
	if p == nil {
		return nil
	}
	v := f(p)
	return &v
}

func newAxis[T any](name string, base float64, min, max *T, f func(*T) float64) (axis, error) {
	b, err := NewBounds(pick(min, f), pick(max, f))
	if err != nil {
		return axis{}, fmt.Errorf("%s: %w", name, err)
	}
	return axis{base: base, bounds: b}, nil
}

// ScaledValue is an arbitrary layout value scaled relative to a text style
// and constrained by its bounds.
type ScaledValue struct {
	scaler *Scaler
	style  TextStyle
	axis
}

// Value creates a scaled value from the unscaled base value.
func (s *Scaler) Value(base float64, bounds Bounds, style TextStyle) *ScaledValue {
	return &ScaledValue{
		scaler: s,
		style:  style,
		axis:   axis{base: base, bounds: bounds},
	}
}

// Base returns the unscaled value.
func (v *ScaledValue) Base() float64 { return v.base }

// Bounds returns the bounds applied after scaling.
func (v *ScaledValue) Bounds() Bounds { return v.bounds }

// Style returns the text style the value is scaled relative to.
func (v *ScaledValue) Style() TextStyle { return v.style }

// Value returns the value scaled for the current level.
func (v *ScaledValue) Value() (float64, error) {
	return v.ValueAt(v.scaler.Level())
}

// ValueAt returns the value scaled for level l.
func (v *ScaledValue) ValueAt(l Level) (float64, error) {
	return v.resolve(v.scaler, v.style, l)
}

// ScaledPointSize is a font point size scaled relative to a text style.
type ScaledPointSize struct {
	ScaledValue
}

// PointSize creates a scaled font point size.
func (s *Scaler) PointSize(size float64, bounds Bounds, style TextStyle) *ScaledPointSize {
	return &ScaledPointSize{ScaledValue: *s.Value(size, bounds, style)}
}

// PointSize returns the point size for the current level.
func (p *ScaledPointSize) PointSize() (float64, error) {
	return p.Value()
}

// Size is a two dimensional size.
type Size struct {
	Width, Height float64
}

// ScaledSize scales the width and the height independently.
type ScaledSize struct {
	scaler        *Scaler
	style         TextStyle
	width, height axis
}

// Size creates a scaled size. min and max are optional and bound each
// dimension separately.
func (s *Scaler) Size(base Size, min, max *Size, style TextStyle) (*ScaledSize, error) {
	w, err := newAxis("width", base.Width, min, max, func(s *Size) float64 { return s.Width })
	if err != nil {
		return nil, err
	}
	h, err := newAxis("height", base.Height, min, max, func(s *Size) float64 { return s.Height })
	if err != nil {
		return nil, err
	}
	return &ScaledSize{scaler: s, style: style, width: w, height: h}, nil
}

// Base returns the unscaled size.
func (z *ScaledSize) Base() Size {
	return Size{Width: z.width.base, Height: z.height.base}
}

// Size returns the size scaled for the current level.
func (z *ScaledSize) Size() (Size, error) {
	return z.SizeAt(z.scaler.Level())
}

// SizeAt returns the size scaled for level l.
func (z *ScaledSize) SizeAt(l Level) (Size, error) {
	w, err := z.width.resolve(z.scaler, z.style, l)
	if err != nil {
		return Size{}, err
	}
	h, err := z.height.resolve(z.scaler, z.style, l)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

// Insets are the distances of the four edges, expressed relative to the
// reading direction.
type Insets struct {
	Top, Leading, Bottom, Trailing float64
}

// ScaledInsets scales each edge independently.
type ScaledInsets struct {
	scaler                         *Scaler
	style                          TextStyle
	top, leading, bottom, trailing axis
}

// Insets creates scaled insets. min and max are optional and bound each
// edge separately.
func (s *Scaler) Insets(base Insets, min, max *Insets, style TextStyle) (*ScaledInsets, error) {
	var (
		in  = &ScaledInsets{scaler: s, style: style}
		err error
	)
	if in.top, err = newAxis("top", base.Top, min, max, func(i *Insets) float64 { return i.Top }); err != nil {
		return nil, err
	}
	if in.leading, err = newAxis("leading", base.Leading, min, max, func(i *Insets) float64 { return i.Leading }); err != nil {
		return nil, err
	}
	if in.bottom, err = newAxis("bottom", base.Bottom, min, max, func(i *Insets) float64 { return i.Bottom }); err != nil {
		return nil, err
	}
	if in.trailing, err = newAxis("trailing", base.Trailing, min, max, func(i *Insets) float64 { return i.Trailing }); err != nil {
		return nil, err
	}
	return in, nil
}

// Base returns the unscaled insets.
func (in *ScaledInsets) Base() Insets {
	return Insets{
		Top:      in.top.base,
		Leading:  in.leading.base,
		Bottom:   in.bottom.base,
		Trailing: in.trailing.base,
	}
}

// Insets returns the insets scaled for the current level.
func (in *ScaledInsets) Insets() (Insets, error) {
	return in.InsetsAt(in.scaler.Level())
}

// InsetsAt returns the insets scaled for level l.
func (in *ScaledInsets) InsetsAt(l Level) (Insets, error) {
	var (
		out Insets
		err error
	)
	if out.Top, err = in.top.resolve(in.scaler, in.style, l); err != nil {
		return Insets{}, err
	}
	if out.Leading, err = in.leading.resolve(in.scaler, in.style, l); err != nil {
		return Insets{}, err
	}
	if out.Bottom, err = in.bottom.resolve(in.scaler, in.style, l); err != nil {
		return Insets{}, err
	}
	if out.Trailing, err = in.trailing.resolve(in.scaler, in.style, l); err != nil {
		return Insets{}, err
	}
	return out, nil
}
