package render

import (
	"github.com/wudi/pdfdoc/doc"
	"github.com/wudi/pdfdoc/geo"
)

// Attrs is the effective formatting of one paragraph after
// override-then-default resolution.
type Attrs struct {
	Indent      geo.In
	Font        doc.Font
	FontSize    float64
	Style       doc.FontStyle
	Align       doc.Align
	LineSpacing doc.LineSpacing
	SpaceAfter  doc.LineSpacing
	IndentFirst bool
}

// Resolve computes a paragraph's effective attributes: the paragraph
// override when set, else the document default. There is no further
// fallback level.
func Resolve(d *doc.Document, p *doc.Paragraph) Attrs {
	a := Attrs{
		Indent:      d.Indent,
		Font:        d.Font,
		FontSize:    d.FontSize,
		Style:       d.Style,
		Align:       d.Align,
		LineSpacing: d.LineSpacing,
		SpaceAfter:  d.SpaceAfter,
		IndentFirst: d.IndentFirst,
	}
	if p.Indent != nil {
		a.Indent = *p.Indent
	}
	if p.Font != nil {
		a.Font = *p.Font
	}
	if p.FontSize != nil {
		a.FontSize = *p.FontSize
	}
	if p.Style != nil {
		a.Style = *p.Style
	}
	if p.Align != nil {
		a.Align = *p.Align
	}
	if p.LineSpacing != nil {
		a.LineSpacing = *p.LineSpacing
	}
	if p.SpaceAfter != nil {
		a.SpaceAfter = *p.SpaceAfter
	}
	if p.IndentFirst != nil {
		a.IndentFirst = *p.IndentFirst
	}
	return a
}
