// Package layout implements paragraph layout on top of
// go-text/typesetting: HarfBuzz shaping, greedy line breaking, and
// alignment including justification.
package layout

import (
	"strings"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/wudi/pdfdoc/doc"
	"github.com/wudi/pdfdoc/render"
)

// GoText is the production TextLayout. It shapes each word with
// HarfBuzz at the requested size, fills lines greedily against the
// width constraint, and positions words per the alignment.
//
// Words never break mid-word: a word wider than the line gets a line
// of its own and overflows the right edge.
//
// A GoText holds shaper state and is not safe for concurrent use;
// create one per rendering goroutine.
type GoText struct {
	shaper shaping.HarfbuzzShaper
}

// New returns the go-text layout engine.
func New() *GoText { return &GoText{} }

// word is one shaped, unbreakable unit.
type word struct {
	glyphs   []uint16
	advances []float64
	width    float64
}

// line is a filled line of words. width is the natural width with
// single spaces between words.
type line struct {
	words  []word
	width  float64
	indent float64
}

type block struct {
	lines      []line
	lineHeight float64
	spaceAdv   float64
	params     render.TextParams
}

// Layout shapes and breaks p.Text. An empty paragraph still occupies
// one line of vertical space.
func (g *GoText) Layout(p render.TextParams) render.Block {
	b := &block{
		params:     p,
		lineHeight: p.FontSize * p.LineSpacing,
	}
	b.spaceAdv = g.shapeWidth(" ", p)

	words := g.fieldsToWords(p.Text, p)
	b.lines = fill(words, p, b.spaceAdv)
	return b
}

// fieldsToWords shapes every whitespace-separated word.
func (g *GoText) fieldsToWords(text string, p render.TextParams) []word {
	fields := strings.Fields(text)
	words := make([]word, 0, len(fields))
	for _, f := range fields {
		words = append(words, g.shapeWord(f, p))
	}
	return words
}

// fill packs words into lines greedily. The first line's usable width
// is reduced by the indent.
func fill(words []word, p render.TextParams, spaceAdv float64) []line {
	lines := []line{{indent: p.Indent}}
	cur := &lines[0]
	avail := p.MaxWidth - p.Indent

	for _, w := range words {
		need := w.width
		if len(cur.words) > 0 {
			need += spaceAdv
		}
		if len(cur.words) > 0 && cur.width+need > avail {
			lines = append(lines, line{})
			cur = &lines[len(lines)-1]
			avail = p.MaxWidth
			need = w.width
		}
		cur.words = append(cur.words, w)
		cur.width += need
	}
	return lines
}

func (b *block) Height() float64 {
	return float64(len(b.lines)) * b.lineHeight
}

func (b *block) FirstLineHeight() float64 { return b.lineHeight }

// Paint draws each line as per-word glyph runs. The baseline of line i
// sits one ascender below the line's top edge.
func (b *block) Paint(s render.Surface, x, y float64) {
	p := b.params
	ascent := p.Face.Ascent(p.FontSize)

	for i, ln := range b.lines {
		if len(ln.words) == 0 {
			continue
		}
		baseline := y + float64(i)*b.lineHeight + ascent
		startX := x + ln.indent
		gap := b.spaceAdv

		avail := p.MaxWidth - ln.indent
		slack := avail - ln.width
		switch p.Align {
		case doc.AlignRight:
			startX += slack
		case doc.AlignCenter:
			startX += slack / 2
		case doc.AlignJustify:
			// The last line and single-word lines stay ragged.
			if i < len(b.lines)-1 && len(ln.words) > 1 {
				gap += slack / float64(len(ln.words)-1)
			}
		}

		wx := startX
		for _, w := range ln.words {
			s.DrawGlyphs(render.GlyphRun{
				Face:     p.Face,
				Size:     p.FontSize,
				X:        wx,
				Y:        baseline,
				Glyphs:   w.glyphs,
				Advances: w.advances,
			})
			wx += w.width + gap
		}
	}
}

func (g *GoText) shapeWord(text string, p render.TextParams) word {
	out := g.shape(text, p)
	w := word{
		glyphs:   make([]uint16, 0, len(out.Glyphs)),
		advances: make([]float64, 0, len(out.Glyphs)),
	}
	for _, gl := range out.Glyphs {
		adv := float64(gl.XAdvance) / 64.0
		w.glyphs = append(w.glyphs, uint16(gl.GlyphID))
		w.advances = append(w.advances, adv)
		w.width += adv
	}
	return w
}

func (g *GoText) shapeWidth(text string, p render.TextParams) float64 {
	out := g.shape(text, p)
	var width float64
	for _, gl := range out.Glyphs {
		width += float64(gl.XAdvance) / 64.0
	}
	return width
}

func (g *GoText) shape(text string, p render.TextParams) shaping.Output {
	runes := []rune(text)
	script := detectScript(runes)
	return g.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: scriptDirection(script),
		Face:      p.Face.Shaping,
		Size:      fixed.Int26_6(p.FontSize * 64),
		Script:    script,
		Language:  language.DefaultLanguage(),
	})
}

func scriptDirection(script language.Script) di.Direction {
	switch script {
	case language.Arabic, language.Hebrew:
		return di.DirectionRTL
	default:
		return di.DirectionLTR
	}
}

// detectScript picks the dominant script of the runes, defaulting to
// Latin for digits and punctuation.
func detectScript(runes []rune) language.Script {
	counts := make(map[language.Script]int)
	best := language.Latin
	maxCount := 0
	for _, r := range runes {
		s := scriptFromRune(r)
		if s == language.Unknown {
			continue
		}
		counts[s]++
		if counts[s] > maxCount {
			maxCount = counts[s]
			best = s
		}
	}
	return best
}

func scriptFromRune(r rune) language.Script {
	switch {
	case unicode.Is(unicode.Latin, r):
		return language.Latin
	case unicode.Is(unicode.Cyrillic, r):
		return language.Cyrillic
	case unicode.Is(unicode.Greek, r):
		return language.Greek
	case unicode.Is(unicode.Arabic, r):
		return language.Arabic
	case unicode.Is(unicode.Hebrew, r):
		return language.Hebrew
	case unicode.Is(unicode.Han, r):
		return language.Han
	case unicode.Is(unicode.Hiragana, r):
		return language.Hiragana
	case unicode.Is(unicode.Katakana, r):
		return language.Katakana
	case unicode.Is(unicode.Hangul, r):
		return language.Hangul
	}
	return language.Unknown
}
