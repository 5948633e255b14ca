package dyntype

import "errors"

var (
	// ErrInvertedBounds is returned when a minimum bound is greater than the maximum bound.
	ErrInvertedBounds = errors.New("minimum bound is greater than maximum bound")
	// ErrUnsupportedLevel is returned for a text size level outside of the known range.
	ErrUnsupportedLevel = errors.New("unsupported text size level")
	// ErrUnsupportedTextStyle is returned for an unknown text style.
	ErrUnsupportedTextStyle = errors.New("unsupported text style")
	// ErrUnsupportedWeight is returned for an unknown font weight.
	ErrUnsupportedWeight = errors.New("unsupported font weight")
	// ErrUnsupportedWidth is returned for an unknown font width.
	ErrUnsupportedWidth = errors.New("unsupported font width")
	// ErrUnsupportedAttribute is returned for an unknown font design, leading or small caps variant.
	ErrUnsupportedAttribute = errors.New("unsupported font attribute")
	// ErrMissingCurve is returned when no scaling curve is registered for a text style.
	ErrMissingCurve = errors.New("missing scaling curve")
	// ErrInvalidCurve is returned for a scaling curve that is not positive and non-decreasing.
	ErrInvalidCurve = errors.New("invalid scaling curve")
)
