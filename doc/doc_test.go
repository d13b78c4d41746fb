package doc

import (
	"testing"

	"github.com/wudi/pdfdoc/geo"
)

func TestNewLetterDefaults(t *testing.T) {
	d := NewLetter()
	if d.Size != geo.ANSILetter {
		t.Fatalf("size = %+v, want ANSI letter", d.Size)
	}
	if d.Margin != geo.MarginIn1 {
		t.Fatalf("margin = %+v, want 1in", d.Margin)
	}
	if d.Indent != 0.5 {
		t.Fatalf("indent = %v, want 0.5", d.Indent)
	}
	if d.Font != Domine || d.FontSize != 12 {
		t.Fatalf("font defaults = %v/%v", d.Font, d.FontSize)
	}
	if d.Align != AlignJustify || !d.IndentFirst {
		t.Fatalf("text defaults = %v/%v", d.Align, d.IndentFirst)
	}
	if d.LineSpacing != Custom(1.35) || d.SpaceAfter != Custom(1.35) {
		t.Fatalf("spacing defaults = %v/%v", d.LineSpacing, d.SpaceAfter)
	}
}

func TestFluentSetters(t *testing.T) {
	d := New().
		SetSize(geo.NewSize(4, 6)).
		SetMargin(geo.NewMargin(0.5, 0.5, 0.25, 0.25)).
		SetIndent(0.3).
		SetFont(Roboto).
		SetFontSize(10).
		SetFontStyle(StyleBold).
		SetAlign(AlignCenter).
		SetLineSpacing(Double).
		SetSpaceAfter(Single).
		SetIndentFirst(false)
	if d.Size.Width != 4 || d.Margin.Top != 0.25 || d.Indent != 0.3 {
		t.Fatalf("geometry setters lost values: %+v", d)
	}
	if d.Font != Roboto || d.FontSize != 10 || d.Style != StyleBold {
		t.Fatalf("font setters lost values: %+v", d)
	}
	if d.Align != AlignCenter || d.LineSpacing != Double || d.SpaceAfter != Single || d.IndentFirst {
		t.Fatalf("text setters lost values: %+v", d)
	}
}

func TestAppendCopiesElements(t *testing.T) {
	src := New()
	src.AddParagraph(Par("hello {{name}}"))
	src.AddPageBreak()
	src.AddParagraph(Par("body"))

	dst := New()
	dst.AddParagraph(Par("existing"))
	dst.Append(src)

	if got, want := len(dst.Elements), 1+len(src.Elements); got != want {
		t.Fatalf("dst has %d elements, want %d", got, want)
	}
	if len(src.Elements) != 3 {
		t.Fatalf("src changed: %d elements", len(src.Elements))
	}
	// The copy must be deep: mutating dst's copy leaves src intact.
	dst.ReplaceAt(1, "{{name}}", "Ada")
	if src.Elements[0].Paragraph().Text != "hello {{name}}" {
		t.Fatalf("src paragraph mutated through dst: %q", src.Elements[0].Paragraph().Text)
	}
	if dst.Elements[1].Paragraph().Text != "hello Ada" {
		t.Fatalf("dst paragraph not substituted: %q", dst.Elements[1].Paragraph().Text)
	}
}

func TestReplaceAt(t *testing.T) {
	d := New()
	d.AddParagraph(Par("to x or not to x"))
	d.AddPageBreak()

	d.ReplaceAt(0, "x", "be")
	if got := d.Elements[0].Paragraph().Text; got != "to be or not to be" {
		t.Fatalf("substitution result %q", got)
	}

	// Out of range and page-break indices are silent no-ops.
	before := d.Elements[0].Paragraph().Text
	d.ReplaceAt(-1, "be", "x")
	d.ReplaceAt(1, "be", "x")
	d.ReplaceAt(99, "be", "x")
	if d.Elements[0].Paragraph().Text != before || len(d.Elements) != 2 {
		t.Fatalf("no-op calls changed the document")
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := NewLetter()
	d.AddParagraph(Par("a").SetFontStyle(StyleItalic))
	c := d.Clone()

	c.Elements[0].Paragraph().SetText("changed").SetFontStyle(StyleBold)
	if d.Elements[0].Paragraph().Text != "a" {
		t.Fatalf("clone shares paragraph text")
	}
	if *d.Elements[0].Paragraph().Style != StyleItalic {
		t.Fatalf("clone shares override box")
	}
}

func TestCloneEmpty(t *testing.T) {
	d := NewLetter()
	d.AddParagraph(Par("a"))
	c := d.CloneEmpty()
	if len(c.Elements) != 0 {
		t.Fatalf("CloneEmpty kept %d elements", len(c.Elements))
	}
	if c.Size != d.Size || c.Font != d.Font || c.LineSpacing != d.LineSpacing {
		t.Fatalf("CloneEmpty lost formatting attributes")
	}
	c.AddParagraph(Par("b"))
	if len(d.Elements) != 1 {
		t.Fatalf("CloneEmpty shares element storage")
	}
}

func TestParagraphSetClearRoundTrip(t *testing.T) {
	p := Par("x").
		SetIndent(0.25).
		SetFont(Lora).
		SetFontSize(14).
		SetFontStyle(StyleBoldItalic).
		SetAlign(AlignRight).
		SetLineSpacing(Custom(1.5)).
		SetSpaceAfter(Double).
		SetIndentFirst(false)
	if p.Indent == nil || p.Font == nil || p.FontSize == nil || p.Style == nil ||
		p.Align == nil || p.LineSpacing == nil || p.SpaceAfter == nil || p.IndentFirst == nil {
		t.Fatalf("setters left overrides unset: %+v", p)
	}
	p.ClearIndent().ClearFont().ClearFontSize().ClearFontStyle().
		ClearAlign().ClearLineSpacing().ClearSpaceAfter().ClearIndentFirst()
	if p.Indent != nil || p.Font != nil || p.FontSize != nil || p.Style != nil ||
		p.Align != nil || p.LineSpacing != nil || p.SpaceAfter != nil || p.IndentFirst != nil {
		t.Fatalf("clears left overrides set: %+v", p)
	}
}

func TestLineSpacingFactor(t *testing.T) {
	if Single.Factor() != 1.0 || Double.Factor() != 2.0 || Custom(1.35).Factor() != 1.35 {
		t.Fatalf("factors: %v %v %v", Single.Factor(), Double.Factor(), Custom(1.35).Factor())
	}
	if Single == Custom(1.0) {
		t.Fatal("Single must stay distinct from Custom(1.0)")
	}
}
