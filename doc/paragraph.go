package doc

import (
	"strings"

	"github.com/wudi/pdfdoc/geo"
)

// Paragraph is a run of uniformly styled text plus a sparse set of
// formatting overrides. A nil override field inherits the owning
// document's value at render time; a set field wins. Setters pair with
// Clear methods so an override can be explicitly removed again.
type Paragraph struct {
	// Indent overrides the first-line indentation length.
	Indent *geo.In `json:"ind,omitempty"`
	// Font overrides the font family.
	Font *Font `json:"fnt,omitempty"`
	// FontSize overrides the font size in points.
	FontSize *float64 `json:"fnt_sze,omitempty"`
	// Style overrides the font style.
	Style *FontStyle `json:"fnt_sty,omitempty"`
	// Align overrides the text alignment.
	Align *Align `json:"aln,omitempty"`
	// LineSpacing overrides the spacing between lines.
	LineSpacing *LineSpacing `json:"spc_lne,omitempty"`
	// SpaceAfter overrides the spacing after the paragraph.
	SpaceAfter *LineSpacing `json:"spc_aft,omitempty"`
	// IndentFirst overrides whether the first line is indented.
	IndentFirst *bool `json:"has_ind,omitempty"`
	// Text is the paragraph's content.
	Text string `json:"txt"`
}

// Par returns a paragraph with the given text and no overrides.
func Par(text string) *Paragraph { return &Paragraph{Text: text} }

// Replace substitutes every literal occurrence of from with to in the
// paragraph text.
func (p *Paragraph) Replace(from, to string) {
	p.Text = strings.ReplaceAll(p.Text, from, to)
}

// SetText replaces the paragraph text.
func (p *Paragraph) SetText(text string) *Paragraph { p.Text = text; return p }

// SetIndent overrides the first-line indentation length.
func (p *Paragraph) SetIndent(ind geo.In) *Paragraph { p.Indent = &ind; return p }

// ClearIndent removes the indentation override.
func (p *Paragraph) ClearIndent() *Paragraph { p.Indent = nil; return p }

// SetFont overrides the font family.
func (p *Paragraph) SetFont(f Font) *Paragraph { p.Font = &f; return p }

// ClearFont removes the font override.
func (p *Paragraph) ClearFont() *Paragraph { p.Font = nil; return p }

// SetFontSize overrides the font size in points.
func (p *Paragraph) SetFontSize(size float64) *Paragraph { p.FontSize = &size; return p }

// ClearFontSize removes the font size override.
func (p *Paragraph) ClearFontSize() *Paragraph { p.FontSize = nil; return p }

// SetFontStyle overrides the font style.
func (p *Paragraph) SetFontStyle(s FontStyle) *Paragraph { p.Style = &s; return p }

// ClearFontStyle removes the font style override.
func (p *Paragraph) ClearFontStyle() *Paragraph { p.Style = nil; return p }

// SetAlign overrides the text alignment.
func (p *Paragraph) SetAlign(a Align) *Paragraph { p.Align = &a; return p }

// ClearAlign removes the alignment override.
func (p *Paragraph) ClearAlign() *Paragraph { p.Align = nil; return p }

// SetLineSpacing overrides the line spacing.
func (p *Paragraph) SetLineSpacing(s LineSpacing) *Paragraph { p.LineSpacing = &s; return p }

// ClearLineSpacing removes the line spacing override.
func (p *Paragraph) ClearLineSpacing() *Paragraph { p.LineSpacing = nil; return p }

// SetSpaceAfter overrides the spacing after the paragraph.
func (p *Paragraph) SetSpaceAfter(s LineSpacing) *Paragraph { p.SpaceAfter = &s; return p }

// ClearSpaceAfter removes the space-after override.
func (p *Paragraph) ClearSpaceAfter() *Paragraph { p.SpaceAfter = nil; return p }

// SetIndentFirst overrides whether the first line is indented.
func (p *Paragraph) SetIndentFirst(on bool) *Paragraph { p.IndentFirst = &on; return p }

// ClearIndentFirst removes the first-line indent override.
func (p *Paragraph) ClearIndentFirst() *Paragraph { p.IndentFirst = nil; return p }

// clone returns a deep copy; override boxes are re-allocated so the
// copy is independent of the original.
func (p *Paragraph) clone() *Paragraph {
	out := &Paragraph{Text: p.Text}
	if p.Indent != nil {
		v := *p.Indent
		out.Indent = &v
	}
	if p.Font != nil {
		v := *p.Font
		out.Font = &v
	}
	if p.FontSize != nil {
		v := *p.FontSize
		out.FontSize = &v
	}
	if p.Style != nil {
		v := *p.Style
		out.Style = &v
	}
	if p.Align != nil {
		v := *p.Align
		out.Align = &v
	}
	if p.LineSpacing != nil {
		v := *p.LineSpacing
		out.LineSpacing = &v
	}
	if p.SpaceAfter != nil {
		v := *p.SpaceAfter
		out.SpaceAfter = &v
	}
	if p.IndentFirst != nil {
		v := *p.IndentFirst
		out.IndentFirst = &v
	}
	return out
}
