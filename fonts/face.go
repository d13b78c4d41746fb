package fonts

import (
	"bytes"
	"fmt"
	"math"

	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/wudi/pdfdoc/doc"
)

// boldWeight is the wght axis coordinate for bold faces.
const boldWeight = 700

// Face is a parsed typeface ready for shaping and embedding: the raw
// font program, the go-text face the shaper consumes, and the metrics
// a PDF writer needs (scaled to 1/1000 em, the PDF text unit).
type Face struct {
	Family doc.Font
	Style  doc.FontStyle
	// Data is the raw TrueType/OpenType font program.
	Data []byte
	// Shaping is the go-text face used by the layout engine.
	Shaping *gofont.Face

	parsed     *sfnt.Font
	unitsPerEm sfnt.Units

	name        string
	ascent      float64 // 1/1000 em
	descent     float64 // 1/1000 em, negative below baseline
	capHeight   float64
	italicAngle float64
	bbox        [4]float64
	numGlyphs   int
}

// Parse decodes font bytes into a Face. It fails with a font-parse
// error when the bytes are not a usable TrueType/OpenType font.
func Parse(fam doc.Font, style doc.FontStyle, data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %q: empty font data", doc.ErrFontParse, string(fam))
	}
	shaping, err := gofont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", doc.ErrFontParse, string(fam), err)
	}
	if style == doc.StyleBold || style == doc.StyleBoldItalic {
		// Bold variants are instanced from the variable file's weight
		// axis; SetVariations is a no-op on static fonts.
		shaping.SetVariations([]gofont.Variation{
			{Tag: opentype.MustNewTag("wght"), Value: boldWeight},
		})
	}
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", doc.ErrFontParse, string(fam), err)
	}
	unitsPerEm := parsed.UnitsPerEm()
	if unitsPerEm == 0 {
		return nil, fmt.Errorf("%w: %q: invalid unitsPerEm", doc.ErrFontParse, string(fam))
	}

	f := &Face{
		Family:     fam,
		Style:      style,
		Data:       data,
		Shaping:    shaping,
		parsed:     parsed,
		unitsPerEm: unitsPerEm,
		numGlyphs:  parsed.NumGlyphs(),
	}

	buf := &sfnt.Buffer{}
	ppem := fixed.Int26_6(unitsPerEm << 6)

	f.name = string(fam)
	if ps, err := parsed.Name(buf, sfnt.NameIDPostScript); err == nil && ps != "" {
		f.name = ps
	}

	metrics, err := parsed.Metrics(buf, ppem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: metrics: %v", doc.ErrFontParse, string(fam), err)
	}
	f.ascent = scaleFixed(metrics.Ascent, unitsPerEm)
	f.descent = -scaleFixed(metrics.Descent, unitsPerEm)
	f.capHeight = scaleFixed(metrics.CapHeight, unitsPerEm)

	if bounds, err := parsed.Bounds(buf, ppem, xfont.HintingNone); err == nil {
		f.bbox = [4]float64{
			scaleFixed(bounds.Min.X, unitsPerEm),
			scaleFixed(bounds.Min.Y, unitsPerEm),
			scaleFixed(bounds.Max.X, unitsPerEm),
			scaleFixed(bounds.Max.Y, unitsPerEm),
		}
	}
	if pt := parsed.PostTable(); pt != nil {
		f.italicAngle = pt.ItalicAngle
	}
	return f, nil
}

// PostScriptName returns the face's PostScript name, falling back to
// the family identifier.
func (f *Face) PostScriptName() string { return f.name }

// Bold reports whether the face carries a bold style. The embedded
// font program renders at its default weight, so a page writer must
// emphasize bold runs itself.
func (f *Face) Bold() bool {
	return f.Style == doc.StyleBold || f.Style == doc.StyleBoldItalic
}

// NumGlyphs returns the glyph count of the font program.
func (f *Face) NumGlyphs() int { return f.numGlyphs }

// Ascent returns the ascender height in points at the given font size.
func (f *Face) Ascent(size float64) float64 { return f.ascent / 1000 * size }

// Descent returns the descender depth in points at the given size,
// as a negative value.
func (f *Face) Descent(size float64) float64 { return f.descent / 1000 * size }

// Descriptor bundles the FontDescriptor numbers a PDF writer embeds,
// all in 1/1000 em.
type Descriptor struct {
	Ascent      float64
	Descent     float64
	CapHeight   float64
	ItalicAngle float64
	BBox        [4]float64
}

// Descriptor returns the embedding metrics of the face.
func (f *Face) Descriptor() Descriptor {
	return Descriptor{
		Ascent:      f.ascent,
		Descent:     f.descent,
		CapHeight:   f.capHeight,
		ItalicAngle: f.italicAngle,
		BBox:        f.bbox,
	}
}

// GlyphWidth returns the advance width of a glyph in 1/1000 em, or 0
// when the glyph is unknown.
func (f *Face) GlyphWidth(gid int) int {
	if gid < 0 || gid >= f.numGlyphs {
		return 0
	}
	buf := &sfnt.Buffer{}
	ppem := fixed.Int26_6(f.unitsPerEm << 6)
	adv, err := f.parsed.GlyphAdvance(buf, sfnt.GlyphIndex(gid), ppem, xfont.HintingNone)
	if err != nil {
		return 0
	}
	return int(math.Round(scaleFixed(adv, f.unitsPerEm)))
}

// scaleFixed converts a fixed-point value measured at unitsPerEm ppem
// into 1/1000 em units.
func scaleFixed(v fixed.Int26_6, unitsPerEm sfnt.Units) float64 {
	return float64(v) / 64.0 / float64(unitsPerEm) * 1000.0
}
