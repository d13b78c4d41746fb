// Package geo provides the measurement unit and page geometry value
// types used throughout pdfdoc. Lengths are expressed in inches and
// converted to PostScript points (the device unit) at render time.
package geo

import "fmt"

// PtPerIn is the number of PostScript points per inch.
const PtPerIn = 72.0

// In is a length in inches.
//
// In has a plain float kind, so the full set of arithmetic operators
// applies between In values and, via conversion, numeric scalars.
// Division by zero follows IEEE 754 semantics.
type In float64

// Pt converts the length to points.
func (v In) Pt() float64 { return float64(v) * PtPerIn }

func (v In) String() string { return fmt.Sprintf("%vin", float64(v)) }

// ANSILetter is the 8.5in x 11in US letter page size (ANSI A).
var ANSILetter = Size{Width: 8.5, Height: 11}

// Size is a page size with a width and height.
type Size struct {
	Width  In `json:"width"`
	Height In `json:"height"`
}

// NewSize returns a Size with the given dimensions.
func NewSize(width, height In) Size { return Size{Width: width, Height: height} }

// Pt returns the width and height in points.
func (s Size) Pt() (w, h float64) { return s.Width.Pt(), s.Height.Pt() }

// MarginIn1 is a uniform 1in margin.
var MarginIn1 = Margin{Left: 1, Right: 1, Bottom: 1, Top: 1}

// Margin holds the four page margin lengths.
type Margin struct {
	Left   In `json:"lft"`
	Right  In `json:"rht"`
	Bottom In `json:"btm"`
	Top    In `json:"top"`
}

// NewMargin returns a Margin with the given side lengths.
func NewMargin(left, right, bottom, top In) Margin {
	return Margin{Left: left, Right: right, Bottom: bottom, Top: top}
}

// Width is the horizontal space consumed by the left and right margins.
func (m Margin) Width() In { return m.Left + m.Right }

// Height is the vertical space consumed by the bottom and top margins.
func (m Margin) Height() In { return m.Bottom + m.Top }
