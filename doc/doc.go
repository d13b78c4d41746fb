// Package doc defines the paginated text document model: a document
// aggregate holding formatting defaults and an ordered element
// sequence of paragraphs and page breaks.
//
// Every formatting attribute has a document-level default. Paragraphs
// carry sparse overrides that fall back to the owning document's value
// at render time; see the render package for the resolution rules.
package doc

import "github.com/wudi/pdfdoc/geo"

// Document is a PDF document template: geometry and text formatting
// defaults plus an ordered sequence of elements.
//
// Documents are built through the fluent setters and element-append
// operations, persisted as JSON via Save/Read, and rendered through
// the render package.
type Document struct {
	// Size of the document pages.
	Size geo.Size `json:"sze"`
	// Margin lengths of the document pages.
	Margin geo.Margin `json:"mrg"`
	// Indent is the first-line indentation length of a paragraph.
	Indent geo.In `json:"ind"`
	// Font is the default font family.
	Font Font `json:"fnt"`
	// FontSize is the default font size in points.
	FontSize float64 `json:"fnt_sze"`
	// Style is the default font style.
	Style FontStyle `json:"fnt_sty"`
	// Align is the default text alignment.
	Align Align `json:"aln"`
	// LineSpacing is the default spacing between lines of a paragraph.
	LineSpacing LineSpacing `json:"spc_lne"`
	// SpaceAfter is the default spacing after a paragraph.
	SpaceAfter LineSpacing `json:"spc_par_aft"`
	// IndentFirst reports whether the first line of a paragraph is indented.
	IndentFirst bool `json:"has_ind"`
	// Elements is the ordered sequence of paragraphs and page breaks.
	// Insertion order is the document's rendering and reading order.
	Elements []Element `json:"elms"`
}

// New returns a Document with the library defaults: letter-ish
// formatting on a zero-size page. Most callers want NewLetter.
func New() *Document {
	return &Document{
		Font:        Domine,
		FontSize:    12,
		Style:       StyleNormal,
		Align:       AlignJustify,
		LineSpacing: Custom(1.35),
		SpaceAfter:  Custom(1.35),
		IndentFirst: true,
	}
}

// NewLetter returns an 8.5in x 11in Document with 1in margins and a
// 0.5in first-line indent.
func NewLetter() *Document {
	return New().
		SetSize(geo.ANSILetter).
		SetMargin(geo.MarginIn1).
		SetIndent(0.5)
}

// SetSize sets the page size.
func (d *Document) SetSize(s geo.Size) *Document { d.Size = s; return d }

// SetMargin sets the page margin lengths.
func (d *Document) SetMargin(m geo.Margin) *Document { d.Margin = m; return d }

// SetIndent sets the first-line indentation length.
func (d *Document) SetIndent(ind geo.In) *Document { d.Indent = ind; return d }

// SetFont sets the default font family.
func (d *Document) SetFont(f Font) *Document { d.Font = f; return d }

// SetFontSize sets the default font size in points.
func (d *Document) SetFontSize(size float64) *Document { d.FontSize = size; return d }

// SetFontStyle sets the default font style.
func (d *Document) SetFontStyle(s FontStyle) *Document { d.Style = s; return d }

// SetAlign sets the default text alignment.
func (d *Document) SetAlign(a Align) *Document { d.Align = a; return d }

// SetLineSpacing sets the default line spacing.
func (d *Document) SetLineSpacing(s LineSpacing) *Document { d.LineSpacing = s; return d }

// SetSpaceAfter sets the default spacing after a paragraph.
func (d *Document) SetSpaceAfter(s LineSpacing) *Document { d.SpaceAfter = s; return d }

// SetIndentFirst sets whether the first line of a paragraph is indented.
func (d *Document) SetIndentFirst(on bool) *Document { d.IndentFirst = on; return d }

// AddParagraph appends a paragraph to the element sequence.
func (d *Document) AddParagraph(p *Paragraph) *Document {
	d.Elements = append(d.Elements, ParagraphElement(p))
	return d
}

// AddPageBreak appends a page break marker to the element sequence.
func (d *Document) AddPageBreak() *Document {
	d.Elements = append(d.Elements, PageBreakElement())
	return d
}

// Append appends a deep copy of src's elements, in order. src is left
// unchanged; later mutation of either document does not affect the other.
func (d *Document) Append(src *Document) *Document {
	for _, e := range src.Elements {
		d.Elements = append(d.Elements, e.clone())
	}
	return d
}

// ReplaceAt substitutes every literal occurrence of from with to in
// the text of the paragraph at element index i.
//
// If i is out of range, or the element at i is a page break, ReplaceAt
// is a silent no-op. The permissiveness is intentional: templates call
// this against indices that may not exist in every derived document.
func (d *Document) ReplaceAt(i int, from, to string) {
	if i < 0 || i >= len(d.Elements) {
		return
	}
	if p := d.Elements[i].Paragraph(); p != nil {
		p.Replace(from, to)
	}
}

// Clone returns a deep copy of the document, elements included.
func (d *Document) Clone() *Document {
	out := *d
	out.Elements = make([]Element, 0, len(d.Elements))
	for _, e := range d.Elements {
		out.Elements = append(out.Elements, e.clone())
	}
	return &out
}

// CloneEmpty returns a copy of the document's formatting attributes
// with an empty element sequence. Useful for deriving an output
// document from a template.
func (d *Document) CloneEmpty() *Document {
	out := *d
	out.Elements = nil
	return &out
}
