package dyntype

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/esimov/dyntype/utils"
	"gopkg.in/yaml.v3"
)

// curvesFile is the YAML layout of a curves document:
//
//	curves:
//	  body: [14, 15, 16, 17, 19, 21, 23, 28, 33, 40, 47, 53]
type curvesFile struct {
	Curves map[string][]float64 `yaml:"curves"`
}

// LoadCurves reads scaling curves from a YAML document.
// Text styles missing from the document keep their default curve.
func LoadCurves(r io.Reader) (Curves, error) {
	var doc curvesFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode curves: %w", err)
	}

	names := make([]string, 0, len(doc.Curves))
	for name := range doc.Curves {
		names = append(names, name)
	}
	sort.Strings(names)

	curves := DefaultCurves()
	seen := make(map[TextStyle]string, len(names))
	for _, name := range names {
		style, err := ParseTextStyle(name)
		if err != nil {
			return nil, err
		}
		// Style names are case-insensitive and accept the system aliases.
		if prev, ok := seen[style]; ok {
			return nil, fmt.Errorf("%w: %v defined twice (%q, %q)", ErrInvalidCurve, style, prev, name)
		}
		seen[style] = name

		c, err := NewCurve(doc.Curves[name]...)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", style, err)
		}
		curves[style] = c
	}
	return curves, nil
}

// LoadCurvesFile reads the scaling curves from a YAML file. The path may
// also be an http(s) URL.
func LoadCurvesFile(path string) (Curves, error) {
	data, err := utils.ReadSource(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read the curves file: %w", err)
	}
	return LoadCurves(bytes.NewReader(data))
}

// Preference is the YAML layout of a text size preference file:
//
//	text_size: accessibility2
type Preference struct {
	TextSize Level `yaml:"text_size"`
}

// ReadPreference decodes a preference document.
// An empty document results in the default level.
func ReadPreference(r io.Reader) (Preference, error) {
	p := Preference{TextSize: DefaultLevel}
	if err := yaml.NewDecoder(r).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Preference{}, fmt.Errorf("unable to decode preference: %w", err)
	}
	return p, nil
}
