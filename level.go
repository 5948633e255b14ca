package dyntype

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level is the user's preferred text size, ordered from the smallest
// setting to the largest accessibility setting.
type Level int

// The supported text size levels. Large is the system default.
const (
	XSmall Level = iota
	Small
	Medium
	Large
	XLarge
	XXLarge
	XXXLarge
	Accessibility1
	Accessibility2
	Accessibility3
	Accessibility4
	Accessibility5

	levelCount = int(Accessibility5) + 1
)

// DefaultLevel is the level used when the host does not report a preference.
const DefaultLevel = Large

var levelNames = [levelCount]string{
	"xSmall", "small", "medium", "large", "xLarge", "xxLarge", "xxxLarge",
	"accessibility1", "accessibility2", "accessibility3", "accessibility4", "accessibility5",
}

// Levels returns every supported level in ascending order.
func Levels() []Level {
	levels := make([]Level, levelCount)
	for i := range levels {
		levels[i] = Level(i)
	}
	return levels
}

// Valid reports whether l is one of the supported levels.
func (l Level) Valid() bool {
	return l >= XSmall && l <= Accessibility5
}

// IsAccessibility reports whether l is one of the larger accessibility levels.
func (l Level) IsAccessibility() bool {
	return l >= Accessibility1 && l <= Accessibility5
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel parses a level name. Both the level names (e.g. "xxLarge")
// and the content size category names (e.g. "extraExtraLarge") are accepted,
// case insensitively.
func ParseLevel(s string) (Level, error) {
	name := strings.TrimSpace(s)
	for i, n := range levelNames {
		if strings.EqualFold(n, name) {
			return Level(i), nil
		}
	}
	for i, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return ContentSizeCategory(i).Level()
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return l.UnmarshalText([]byte(s))
}

// ContentSizeCategory is the host platform's name for a text size preference.
type ContentSizeCategory int

// The content size categories, in the same order as the levels.
const (
	CategoryExtraSmall ContentSizeCategory = iota
	CategorySmall
	CategoryMedium
	CategoryLarge
	CategoryExtraLarge
	CategoryExtraExtraLarge
	CategoryExtraExtraExtraLarge
	CategoryAccessibilityMedium
	CategoryAccessibilityLarge
	CategoryAccessibilityExtraLarge
	CategoryAccessibilityExtraExtraLarge
	CategoryAccessibilityExtraExtraExtraLarge
)

var categoryNames = [levelCount]string{
	"extraSmall", "small", "medium", "large", "extraLarge", "extraExtraLarge", "extraExtraExtraLarge",
	"accessibilityMedium", "accessibilityLarge", "accessibilityExtraLarge",
	"accessibilityExtraExtraLarge", "accessibilityExtraExtraExtraLarge",
}

// Categories returns every content size category in ascending order.
func Categories() []ContentSizeCategory {
	c := make([]ContentSizeCategory, levelCount)
	for i := range c {
		c[i] = ContentSizeCategory(i)
	}
	return c
}

func (c ContentSizeCategory) String() string {
	if c < CategoryExtraSmall || c > CategoryAccessibilityExtraExtraExtraLarge {
		return fmt.Sprintf("ContentSizeCategory(%d)", int(c))
	}
	return categoryNames[c]
}

// Category converts the level to the host content size category.
func (l Level) Category() (ContentSizeCategory, error) {
	switch l {
	case XSmall:
		return CategoryExtraSmall, nil
	case Small:
		return CategorySmall, nil
	case Medium:
		return CategoryMedium, nil
	case Large:
		return CategoryLarge, nil
	case XLarge:
		return CategoryExtraLarge, nil
	case XXLarge:
		return CategoryExtraExtraLarge, nil
	case XXXLarge:
		return CategoryExtraExtraExtraLarge, nil
	case Accessibility1:
		return CategoryAccessibilityMedium, nil
	case Accessibility2:
		return CategoryAccessibilityLarge, nil
	case Accessibility3:
		return CategoryAccessibilityExtraLarge, nil
	case Accessibility4:
		return CategoryAccessibilityExtraExtraLarge, nil
	case Accessibility5:
		return CategoryAccessibilityExtraExtraExtraLarge, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedLevel, l)
}

// Level converts the content size category back to a level.
func (c ContentSizeCategory) Level() (Level, error) {
	switch c {
	case CategoryExtraSmall:
		return XSmall, nil
	case CategorySmall:
		return Small, nil
	case CategoryMedium:
		return Medium, nil
	case CategoryLarge:
		return Large, nil
	case CategoryExtraLarge:
		return XLarge, nil
	case CategoryExtraExtraLarge:
		return XXLarge, nil
	case CategoryExtraExtraExtraLarge:
		return XXXLarge, nil
	case CategoryAccessibilityMedium:
		return Accessibility1, nil
	case CategoryAccessibilityLarge:
		return Accessibility2, nil
	case CategoryAccessibilityExtraLarge:
		return Accessibility3, nil
	case CategoryAccessibilityExtraExtraLarge:
		return Accessibility4, nil
	case CategoryAccessibilityExtraExtraExtraLarge:
		return Accessibility5, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedLevel, c)
}
