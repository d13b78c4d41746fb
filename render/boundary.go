package render

import (
	"github.com/wudi/pdfdoc/doc"
	"github.com/wudi/pdfdoc/fonts"
)

// TextParams describes one paragraph's layout request: resolved
// attributes plus the width constraint. All lengths are in points.
type TextParams struct {
	Text string
	Face *fonts.Face
	// FontSize is the font size in points.
	FontSize float64
	// LineSpacing is the line-height multiplier.
	LineSpacing float64
	Align       doc.Align
	// MaxWidth constrains line length.
	MaxWidth float64
	// Indent is the width of the leading first-line placeholder
	// region; zero means no indent.
	Indent float64
}

// Block is a laid-out paragraph. Heights drive cursor advancement;
// Paint emits the block's glyph runs onto a page surface with (x, y)
// the block's top-left corner, y measured down from the page top.
type Block interface {
	Height() float64
	FirstLineHeight() float64
	Paint(s Surface, x, y float64)
}

// TextLayout shapes and line-breaks paragraph text. Layout never
// fails: face loading and parsing happen before it is called.
type TextLayout interface {
	Layout(p TextParams) Block
}

// FontProvider resolves a font identifier and style to a parsed face.
// Failures abort the whole render.
type FontProvider interface {
	Face(fam doc.Font, style doc.FontStyle) (*fonts.Face, error)
}

// GlyphRun is a horizontal run of glyphs drawn with a single face and
// size. X, Y position the baseline origin of the first glyph, with Y
// measured down from the page top.
type GlyphRun struct {
	Face *fonts.Face
	Size float64
	X, Y float64
	// Glyphs are glyph IDs in the run's face.
	Glyphs []uint16
	// Advances holds each glyph's x advance in points.
	Advances []float64
}

// Surface is the drawing surface of one open page.
type Surface interface {
	DrawGlyphs(run GlyphRun)
}

// PageWriter is the consumed page-description boundary: BeginPage
// opens a drawing surface, EndPage finalizes it, Close finalizes the
// whole multi-page stream into a byte buffer.
type PageWriter interface {
	BeginPage(width, height float64) Surface
	EndPage()
	Close() ([]byte, error)
}
