package doc

import (
	"encoding/json"
	"fmt"
)

// Font identifies a font family resolvable by a font provider.
// The stock identifiers name Google Fonts families.
type Font string

// Stock font families.
const (
	Domine       Font = "Domine"
	Lora         Font = "Lora"
	Merriweather Font = "Merriweather"
	OpenSans     Font = "Open Sans"
	Roboto       Font = "Roboto"
	SourceSerif  Font = "Source Serif 4"
)

// FontStyle selects the face variant of a font family.
type FontStyle int

const (
	// StyleNormal is the default, unstyled text.
	StyleNormal FontStyle = iota
	// StyleItalic is text styled with an italic face.
	StyleItalic
	// StyleBold is text styled with a bold face.
	StyleBold
	// StyleBoldItalic is text styled with a bold italic face.
	StyleBoldItalic
)

var styleNames = map[FontStyle]string{
	StyleNormal:     "Normal",
	StyleItalic:     "Italic",
	StyleBold:       "Bold",
	StyleBoldItalic: "BoldItalic",
}

func (s FontStyle) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("FontStyle(%d)", int(s))
}

// MarshalText encodes the style as its variant name.
func (s FontStyle) MarshalText() ([]byte, error) {
	n, ok := styleNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown font style %d", int(s))
	}
	return []byte(n), nil
}

// UnmarshalText decodes a style from its variant name.
func (s *FontStyle) UnmarshalText(b []byte) error {
	for k, n := range styleNames {
		if n == string(b) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown font style %q", string(b))
}

// Align selects horizontal text alignment within a paragraph.
type Align int

const (
	// AlignLeft aligns text to the left edge of the paragraph.
	AlignLeft Align = iota
	// AlignRight aligns text to the right edge of the paragraph.
	AlignRight
	// AlignCenter centers text horizontally within the paragraph.
	AlignCenter
	// AlignJustify stretches each line to equal width. The last line
	// is aligned to the left.
	AlignJustify
)

var alignNames = map[Align]string{
	AlignLeft:    "Left",
	AlignRight:   "Right",
	AlignCenter:  "Center",
	AlignJustify: "Justify",
}

func (a Align) String() string {
	if n, ok := alignNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

// MarshalText encodes the alignment as its variant name.
func (a Align) MarshalText() ([]byte, error) {
	n, ok := alignNames[a]
	if !ok {
		return nil, fmt.Errorf("unknown alignment %d", int(a))
	}
	return []byte(n), nil
}

// UnmarshalText decodes an alignment from its variant name.
func (a *Align) UnmarshalText(b []byte) error {
	for k, n := range alignNames {
		if n == string(b) {
			*a = k
			return nil
		}
	}
	return fmt.Errorf("unknown alignment %q", string(b))
}

const (
	spacingSingle uint8 = iota
	spacingDouble
	spacingCustom
)

// LineSpacing is a line-height multiplier: the Single or Double
// preset, or an arbitrary custom factor.
//
// The discriminant is part of the value: Single and Custom(1.0) have
// the same factor but are distinct values and persist distinctly.
type LineSpacing struct {
	kind   uint8
	custom float64
}

// Single is single line spacing (factor 1.0).
var Single = LineSpacing{kind: spacingSingle}

// Double is double line spacing (factor 2.0).
var Double = LineSpacing{kind: spacingDouble}

// Custom returns a LineSpacing with an arbitrary factor.
func Custom(factor float64) LineSpacing {
	return LineSpacing{kind: spacingCustom, custom: factor}
}

// Factor returns the line-height multiplier.
func (s LineSpacing) Factor() float64 {
	switch s.kind {
	case spacingDouble:
		return 2.0
	case spacingCustom:
		return s.custom
	default:
		return 1.0
	}
}

func (s LineSpacing) String() string {
	switch s.kind {
	case spacingSingle:
		return "Single"
	case spacingDouble:
		return "Double"
	default:
		return fmt.Sprintf("Custom(%v)", s.custom)
	}
}

// MarshalJSON encodes presets as their variant name and custom factors
// as {"Custom": f}.
func (s LineSpacing) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case spacingSingle:
		return []byte(`"Single"`), nil
	case spacingDouble:
		return []byte(`"Double"`), nil
	default:
		return json.Marshal(map[string]float64{"Custom": s.custom})
	}
}

// UnmarshalJSON decodes the encoding produced by MarshalJSON.
func (s *LineSpacing) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		switch name {
		case "Single":
			*s = Single
			return nil
		case "Double":
			*s = Double
			return nil
		}
		return fmt.Errorf("unknown line spacing %q", name)
	}
	var obj map[string]float64
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("malformed line spacing: %w", err)
	}
	f, ok := obj["Custom"]
	if !ok {
		return fmt.Errorf("malformed line spacing object: missing Custom")
	}
	*s = Custom(f)
	return nil
}
