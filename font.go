package dyntype

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// Weight is a font weight in CSS units minus 400, so the zero value is
// the regular weight.
type Weight int

const (
	UltraLight   Weight = -300
	Thin         Weight = -200
	Light        Weight = -100
	Regular      Weight = 0
	WeightMedium Weight = 100
	Semibold     Weight = 200
	Bold         Weight = 300
	Heavy        Weight = 400
	Black        Weight = 500
)

// Valid reports whether w is one of the named weights.
func (w Weight) Valid() bool {
	return w >= UltraLight && w <= Black && w%100 == 0
}

// CSS returns the weight on the CSS 100-900 scale.
func (w Weight) CSS() int {
	return int(w) + 400
}

func (w Weight) String() string {
	switch w {
	case UltraLight:
		return "ultraLight"
	case Thin:
		return "thin"
	case Light:
		return "light"
	case Regular:
		return "regular"
	case WeightMedium:
		return "medium"
	case Semibold:
		return "semibold"
	case Bold:
		return "bold"
	case Heavy:
		return "heavy"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Weight(%d)", int(w))
}

// Design is the typeface design of a system font.
type Design int

const (
	DesignDefault Design = iota
	DesignSerif
	DesignRounded
	DesignMonospaced
)

func (d Design) String() string {
	switch d {
	case DesignDefault:
		return "default"
	case DesignSerif:
		return "serif"
	case DesignRounded:
		return "rounded"
	case DesignMonospaced:
		return "monospaced"
	}
	return fmt.Sprintf("Design(%d)", int(d))
}

// Leading adjusts the spacing between lines of text.
type Leading int

const (
	LeadingStandard Leading = iota
	LeadingTight
	LeadingLoose
)

// LineHeightScale returns the line height as a multiple of the font size.
func (l Leading) LineHeightScale() float32 {
	switch l {
	case LeadingTight:
		return 1.0
	case LeadingLoose:
		return 1.5
	default:
		return 1.2
	}
}

func (l Leading) String() string {
	switch l {
	case LeadingStandard:
		return "standard"
	case LeadingTight:
		return "tight"
	case LeadingLoose:
		return "loose"
	}
	return fmt.Sprintf("Leading(%d)", int(l))
}

// Width is the horizontal width of the glyphs.
type Width int

const (
	WidthStandard Width = iota
	WidthCompressed
	WidthCondensed
	WidthExpanded
)

func (w Width) String() string {
	switch w {
	case WidthStandard:
		return "standard"
	case WidthCompressed:
		return "compressed"
	case WidthCondensed:
		return "condensed"
	case WidthExpanded:
		return "expanded"
	}
	return fmt.Sprintf("Width(%d)", int(w))
}

// Caps selects a small capitals variant.
type Caps int

const (
	CapsNone Caps = iota
	// SmallCaps renders every letter as a small capital.
	SmallCaps
	// LowercaseSmallCaps renders lowercase letters as small capitals.
	LowercaseSmallCaps
	// UppercaseSmallCaps renders uppercase letters as small capitals.
	UppercaseSmallCaps
)

func (c Caps) String() string {
	switch c {
	case CapsNone:
		return "none"
	case SmallCaps:
		return "smallCaps"
	case LowercaseSmallCaps:
		return "lowercaseSmallCaps"
	case UppercaseSmallCaps:
		return "uppercaseSmallCaps"
	}
	return fmt.Sprintf("Caps(%d)", int(c))
}

// FontConfig describes a system font before scaling. Zero valued
// attributes select the system defaults.
type FontConfig struct {
	Size            float64
	Bounds          Bounds
	Weight          Weight
	Design          Design
	Leading         Leading
	Width           Width
	SmallCaps       Caps
	Italic          bool
	MonospacedDigit bool
}

// FontOption sets an attribute of a FontConfig.
type FontOption func(*FontConfig)

// SystemFont returns the configuration of a system font of the given point size.
func SystemFont(size float64, opts ...FontOption) FontConfig {
	cfg := FontConfig{Size: size}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// FontBounds bounds the scaled point size.
func FontBounds(b Bounds) FontOption { return func(c *FontConfig) { c.Bounds = b } }

// FontWeight sets the font weight.
func FontWeight(w Weight) FontOption { return func(c *FontConfig) { c.Weight = w } }

// FontDesign sets the typeface design.
func FontDesign(d Design) FontOption { return func(c *FontConfig) { c.Design = d } }

// FontLeading sets the line spacing.
func FontLeading(l Leading) FontOption { return func(c *FontConfig) { c.Leading = l } }

// FontWidth sets the glyph width.
func FontWidth(w Width) FontOption { return func(c *FontConfig) { c.Width = w } }

// FontSmallCaps sets the small capitals variant.
func FontSmallCaps(caps Caps) FontOption { return func(c *FontConfig) { c.SmallCaps = caps } }

// Italic makes the font italic.
func Italic() FontOption { return func(c *FontConfig) { c.Italic = true } }

// MonospacedDigit makes digits fixed width.
func MonospacedDigit() FontOption { return func(c *FontConfig) { c.MonospacedDigit = true } }

// Validate checks every enumerated attribute of the configuration.
func (c FontConfig) Validate() error {
	if !c.Weight.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedWeight, c.Weight)
	}
	if c.Width < WidthStandard || c.Width > WidthExpanded {
		return fmt.Errorf("%w: %v", ErrUnsupportedWidth, c.Width)
	}
	if c.Design < DesignDefault || c.Design > DesignMonospaced {
		return fmt.Errorf("%w: design %v", ErrUnsupportedAttribute, c.Design)
	}
	if c.Leading < LeadingStandard || c.Leading > LeadingLoose {
		return fmt.Errorf("%w: leading %v", ErrUnsupportedAttribute, c.Leading)
	}
	if c.SmallCaps < CapsNone || c.SmallCaps > UppercaseSmallCaps {
		return fmt.Errorf("%w: small caps %v", ErrUnsupportedAttribute, c.SmallCaps)
	}
	return nil
}

// Font is a resolved font descriptor: the scaled point size with the
// configured attributes layered on top.
type Font struct {
	Size            float64
	Weight          Weight
	Design          Design
	Leading         Leading
	Width           Width
	SmallCaps       Caps
	Italic          bool
	MonospacedDigit bool
}

// Size26_6 returns the point size as a 26.6 fixed point number.
func (f Font) Size26_6() fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f.Size * 64))
}

// ScaledFont is a font whose point size follows the text size level.
type ScaledFont struct {
	scaler *Scaler
	style  TextStyle
	cfg    FontConfig
}

// Font creates a scaled font from cfg, scaled relative to style.
func (s *Scaler) Font(cfg FontConfig, style TextStyle) (*ScaledFont, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ScaledFont{scaler: s, style: style, cfg: cfg}, nil
}

// Config returns the unscaled font configuration.
func (f *ScaledFont) Config() FontConfig { return f.cfg }

// Style returns the text style the font is scaled relative to.
func (f *ScaledFont) Style() TextStyle { return f.style }

// Font returns the font for the current level.
func (f *ScaledFont) Font() (Font, error) {
	return f.FontAt(f.scaler.Level())
}

// FontAt returns the font for level l.
func (f *ScaledFont) FontAt(l Level) (Font, error) {
	size, err := f.scaler.transform(f.cfg.Size, f.style, l)
	if err != nil {
		return Font{}, err
	}
	return Font{
		Size:            f.cfg.Bounds.Clamp(size),
		Weight:          f.cfg.Weight,
		Design:          f.cfg.Design,
		Leading:         f.cfg.Leading,
		Width:           f.cfg.Width,
		SmallCaps:       f.cfg.SmallCaps,
		Italic:          f.cfg.Italic,
		MonospacedDigit: f.cfg.MonospacedDigit,
	}, nil
}
