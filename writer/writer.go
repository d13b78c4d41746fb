// Package writer serializes rendered pages into a PDF file. Text is
// drawn as glyph runs against embedded TrueType fonts, encoded as
// Type0/Identity-H composite fonts so shaped glyph IDs map directly to
// CIDs.
package writer

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"math"
	"sort"

	"github.com/wudi/pdfdoc/fonts"
	"github.com/wudi/pdfdoc/render"
)

// boldStrokeScale sizes the stroke pen that thickens bold runs,
// relative to the font size.
const boldStrokeScale = 0.025

// Writer accumulates pages and finalizes them into a single PDF byte
// stream. It implements the page-description boundary of the render
// driver. Not safe for concurrent use.
type Writer struct {
	pages []*page
	cur   *page

	// Fonts are shared across pages; each distinct face embeds once.
	fonts map[*fonts.Face]*embeddedFont
	order []*embeddedFont

	closed bool
}

// New returns an empty Writer.
func New() *Writer {
	return &Writer{fonts: make(map[*fonts.Face]*embeddedFont)}
}

type page struct {
	w       *Writer
	width   float64
	height  float64
	content bytes.Buffer
	// usedFonts are the resource names referenced by this page's
	// content stream.
	usedFonts map[string]*embeddedFont
}

type embeddedFont struct {
	face *fonts.Face
	name string // resource name, F1, F2, ...
	used map[uint16]bool
}

// BeginPage opens a new page of the given size in points and returns
// its drawing surface. Sizes may vary page to page.
func (w *Writer) BeginPage(width, height float64) render.Surface {
	w.cur = &page{
		w:         w,
		width:     width,
		height:    height,
		usedFonts: make(map[string]*embeddedFont),
	}
	return w.cur
}

// EndPage finalizes the currently open page.
func (w *Writer) EndPage() {
	if w.cur != nil {
		w.pages = append(w.pages, w.cur)
		w.cur = nil
	}
}

func (w *Writer) font(face *fonts.Face) *embeddedFont {
	if f, ok := w.fonts[face]; ok {
		return f
	}
	f := &embeddedFont{
		face: face,
		name: fmt.Sprintf("F%d", len(w.order)+1),
		used: make(map[uint16]bool),
	}
	w.fonts[face] = f
	w.order = append(w.order, f)
	return f
}

// DrawGlyphs writes one glyph run into the page's content stream. The
// run's top-down baseline is flipped into PDF's bottom-up coordinates.
// Shaping advances that differ from the font's nominal widths become
// TJ adjustments so kerned text reproduces exactly.
func (p *page) DrawGlyphs(run render.GlyphRun) {
	if len(run.Glyphs) == 0 {
		return
	}
	f := p.w.font(run.Face)
	p.usedFonts[f.name] = f
	for _, g := range run.Glyphs {
		f.used[g] = true
	}

	fmt.Fprintf(&p.content, "BT\n/%s %s Tf\n1 0 0 1 %s %s Tm\n",
		f.name, num(run.Size), num(run.X), num(p.height-run.Y))
	if run.Face.Bold() {
		// The font program embeds at its default weight, so bold runs
		// fill and stroke the outlines to thicken them.
		fmt.Fprintf(&p.content, "%s w\n2 Tr\n", num(run.Size*boldStrokeScale))
	}

	p.content.WriteString("[")
	pending := ""
	for i, g := range run.Glyphs {
		pending += fmt.Sprintf("%04X", g)
		// TJ numbers are in 1/1000 text units; positive moves left.
		nominal := float64(run.Face.GlyphWidth(int(g))) / 1000 * run.Size
		adjust := (nominal - run.Advances[i]) / run.Size * 1000
		if math.Abs(adjust) > 0.01 {
			fmt.Fprintf(&p.content, "<%s> %s ", pending, num(adjust))
			pending = ""
		}
	}
	if pending != "" {
		fmt.Fprintf(&p.content, "<%s>", pending)
	}
	p.content.WriteString("] TJ\n")
	if run.Face.Bold() {
		// Text state persists across text objects; restore fill-only.
		p.content.WriteString("0 Tr\n")
	}
	p.content.WriteString("ET\n")
}

// Close assembles all finished pages, embedded fonts, the page tree,
// cross-reference table and trailer into the final PDF bytes. The
// Writer is unusable afterwards.
func (w *Writer) Close() ([]byte, error) {
	if w.closed {
		return nil, fmt.Errorf("writer already closed")
	}
	w.closed = true
	if w.cur != nil {
		w.EndPage()
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n%\xE2\xE3\xCF\xD3\n")

	offsets := make(map[int]int)
	objNum := 0
	next := func() int { objNum++; return objNum }
	emit := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}
	emitStream := func(num int, dict string, data []byte) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nstream\n", num, dict)
		buf.Write(data)
		buf.WriteString("\nendstream\nendobj\n")
	}

	catalogRef := next()
	pagesRef := next()

	fontRefs := make(map[*embeddedFont]int)
	for _, f := range w.order {
		fontRefs[f] = w.emitFont(f, next, emit, emitStream)
	}

	pageRefs := make([]int, 0, len(w.pages))
	for _, p := range w.pages {
		compressed, err := deflate(p.content.Bytes())
		if err != nil {
			return nil, fmt.Errorf("compressing content stream: %w", err)
		}
		contentRef := next()
		emitStream(contentRef,
			fmt.Sprintf("<</Length %d/Filter/FlateDecode>>", len(compressed)),
			compressed)

		var res bytes.Buffer
		res.WriteString("<</Font<<")
		names := make([]string, 0, len(p.usedFonts))
		for n := range p.usedFonts {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(&res, "/%s %d 0 R", n, fontRefs[p.usedFonts[n]])
		}
		res.WriteString(">>>>")

		pageRef := next()
		emit(pageRef, fmt.Sprintf(
			"<</Type/Page/Parent %d 0 R/MediaBox[0 0 %s %s]/Resources %s/Contents %d 0 R>>",
			pagesRef, num(p.width), num(p.height), res.String(), contentRef))
		pageRefs = append(pageRefs, pageRef)
	}

	var kids bytes.Buffer
	kids.WriteString("[")
	for i, r := range pageRefs {
		if i > 0 {
			kids.WriteString(" ")
		}
		fmt.Fprintf(&kids, "%d 0 R", r)
	}
	kids.WriteString("]")
	emit(pagesRef, fmt.Sprintf("<</Type/Pages/Count %d/Kids %s>>", len(pageRefs), kids.String()))
	emit(catalogRef, fmt.Sprintf("<</Type/Catalog/Pages %d 0 R>>", pagesRef))

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", objNum+1)
	for i := 1; i <= objNum; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<</Size %d/Root %d 0 R>>\nstartxref\n%d\n%%%%EOF\n",
		objNum+1, catalogRef, xrefOffset)
	return buf.Bytes(), nil
}

// emitFont writes the four objects of one Type0 font: the composite
// font dict, its CIDFontType2 descendant, the font descriptor, and the
// FontFile2 program stream. Returns the composite font's object number.
func (w *Writer) emitFont(f *embeddedFont, next func() int,
	emit func(int, string), emitStream func(int, string, []byte)) int {

	type0Ref := next()
	cidRef := next()
	descRef := next()
	fileRef := next()

	base := f.face.PostScriptName()
	d := f.face.Descriptor()

	emit(type0Ref, fmt.Sprintf(
		"<</Type/Font/Subtype/Type0/BaseFont/%s/Encoding/Identity-H/DescendantFonts[%d 0 R]>>",
		base, cidRef))

	emit(cidRef, fmt.Sprintf(
		"<</Type/Font/Subtype/CIDFontType2/BaseFont/%s"+
			"/CIDSystemInfo<</Registry(Adobe)/Ordering(Identity)/Supplement 0>>"+
			"/FontDescriptor %d 0 R/DW 1000/W %s/CIDToGIDMap/Identity>>",
		base, descRef, widthArray(f)))

	// Flag 4 marks a symbolic font, required when no standard encoding
	// is carried.
	emit(descRef, fmt.Sprintf(
		"<</Type/FontDescriptor/FontName/%s/Flags 4"+
			"/FontBBox[%s %s %s %s]/ItalicAngle %s"+
			"/Ascent %s/Descent %s/CapHeight %s/StemV 80/FontFile2 %d 0 R>>",
		base, num(d.BBox[0]), num(d.BBox[1]), num(d.BBox[2]), num(d.BBox[3]),
		num(d.ItalicAngle), num(d.Ascent), num(d.Descent), num(d.CapHeight), fileRef))

	compressed, err := deflate(f.face.Data)
	if err != nil {
		// deflate over a bytes.Buffer cannot fail; embed raw if it ever does.
		compressed = f.face.Data
		emitStream(fileRef, fmt.Sprintf("<</Length %d/Length1 %d>>",
			len(compressed), len(f.face.Data)), compressed)
		return type0Ref
	}
	emitStream(fileRef, fmt.Sprintf("<</Length %d/Filter/FlateDecode/Length1 %d>>",
		len(compressed), len(f.face.Data)), compressed)
	return type0Ref
}

// widthArray builds the W entry for the glyphs a font actually used,
// as consecutive-CID groups: c [w1 w2 ...].
func widthArray(f *embeddedFont) string {
	gids := make([]int, 0, len(f.used))
	for g := range f.used {
		gids = append(gids, int(g))
	}
	sort.Ints(gids)

	var b bytes.Buffer
	b.WriteString("[")
	for i := 0; i < len(gids); {
		j := i
		for j+1 < len(gids) && gids[j+1] == gids[j]+1 {
			j++
		}
		fmt.Fprintf(&b, "%d[", gids[i])
		for k := i; k <= j; k++ {
			if k > i {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%d", f.face.GlyphWidth(gids[k]))
		}
		b.WriteString("]")
		i = j + 1
	}
	b.WriteString("]")
	return b.String()
}

func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// num formats a PDF number compactly: integers without a decimal
// point, reals trimmed to two places.
func num(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e9 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
