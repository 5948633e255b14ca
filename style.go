package dyntype

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TextStyle is the semantic role of a piece of text. Each style has its
// own scaling curve, so values relative to a caption grow differently
// from values relative to body text.
type TextStyle int

const (
	LargeTitle TextStyle = iota
	Title
	Title2
	Title3
	Headline
	Subheadline
	Body
	Callout
	Footnote
	Caption
	Caption2

	styleCount = int(Caption2) + 1
)

var styleNames = [styleCount]string{
	"largeTitle", "title", "title2", "title3", "headline", "subheadline",
	"body", "callout", "footnote", "caption", "caption2",
}

// SystemTextStyle is the host platform's identifier of a text style.
type SystemTextStyle string

const (
	SystemLargeTitle  SystemTextStyle = "largeTitle"
	SystemTitle1      SystemTextStyle = "title1"
	SystemTitle2      SystemTextStyle = "title2"
	SystemTitle3      SystemTextStyle = "title3"
	SystemHeadline    SystemTextStyle = "headline"
	SystemSubheadline SystemTextStyle = "subheadline"
	SystemBody        SystemTextStyle = "body"
	SystemCallout     SystemTextStyle = "callout"
	SystemFootnote    SystemTextStyle = "footnote"
	SystemCaption1    SystemTextStyle = "caption1"
	SystemCaption2    SystemTextStyle = "caption2"
)

// TextStyles returns every supported text style.
func TextStyles() []TextStyle {
	s := make([]TextStyle, styleCount)
	for i := range s {
		s[i] = TextStyle(i)
	}
	return s
}

// Valid reports whether s is a known text style.
func (s TextStyle) Valid() bool {
	return s >= LargeTitle && s <= Caption2
}

func (s TextStyle) String() string {
	if !s.Valid() {
		return fmt.Sprintf("TextStyle(%d)", int(s))
	}
	return styleNames[s]
}

// SystemStyle converts the style to the host platform identifier.
func (s TextStyle) SystemStyle() (SystemTextStyle, error) {
	switch s {
	case LargeTitle:
		return SystemLargeTitle, nil
	case Title:
		return SystemTitle1, nil
	case Title2:
		return SystemTitle2, nil
	case Title3:
		return SystemTitle3, nil
	case Headline:
		return SystemHeadline, nil
	case Subheadline:
		return SystemSubheadline, nil
	case Body:
		return SystemBody, nil
	case Callout:
		return SystemCallout, nil
	case Footnote:
		return SystemFootnote, nil
	case Caption:
		return SystemCaption1, nil
	case Caption2:
		return SystemCaption2, nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnsupportedTextStyle, s)
}

// ParseTextStyle parses a style name, accepting the system identifiers
// ("title1", "caption1") as well.
func ParseTextStyle(s string) (TextStyle, error) {
	name := strings.TrimSpace(s)
	for _, style := range TextStyles() {
		sys, _ := style.SystemStyle()
		if strings.EqualFold(name, style.String()) || strings.EqualFold(name, string(sys)) {
			return style, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedTextStyle, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s TextStyle) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedTextStyle, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TextStyle) UnmarshalText(text []byte) error {
	v, err := ParseTextStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *TextStyle) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(name))
}
