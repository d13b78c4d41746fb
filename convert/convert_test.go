package convert

import (
	"strings"
	"testing"

	"github.com/wudi/pdfdoc/doc"
)

func paragraphs(d *doc.Document) []*doc.Paragraph {
	var ps []*doc.Paragraph
	for _, e := range d.Elements {
		if p := e.Paragraph(); p != nil {
			ps = append(ps, p)
		}
	}
	return ps
}

func breaks(d *doc.Document) int {
	n := 0
	for _, e := range d.Elements {
		if e.IsPageBreak() {
			n++
		}
	}
	return n
}

func TestMarkdownBlocks(t *testing.T) {
	src := `# Title

First paragraph with *emphasis* and ` + "`code`" + `.

---

Second page paragraph.
`
	d := Markdown(doc.New(), src)

	ps := paragraphs(d)
	if len(ps) != 3 {
		t.Fatalf("got %d paragraphs, want 3", len(ps))
	}
	if ps[0].Text != "Title" {
		t.Errorf("heading text = %q", ps[0].Text)
	}
	if ps[0].FontSize == nil || *ps[0].FontSize != d.FontSize*2 {
		t.Errorf("h1 font size override = %v, want %v", ps[0].FontSize, d.FontSize*2)
	}
	if ps[0].Style == nil || *ps[0].Style != doc.StyleBold {
		t.Errorf("heading not bold")
	}
	if want := "First paragraph with emphasis and code."; ps[1].Text != want {
		t.Errorf("inline markup not flattened: %q", ps[1].Text)
	}
	if breaks(d) != 1 {
		t.Errorf("thematic break did not become a page break")
	}
}

func TestMarkdownHeadingScale(t *testing.T) {
	d := Markdown(doc.New(), "## Second\n\n### Third\n\n#### Fourth\n")
	ps := paragraphs(d)
	if len(ps) != 3 {
		t.Fatalf("got %d paragraphs, want 3", len(ps))
	}
	want := []float64{1.5, 1.25, 1.25}
	for i, p := range ps {
		if p.FontSize == nil || *p.FontSize != d.FontSize*want[i] {
			t.Errorf("heading %d size = %v, want factor %v", i, p.FontSize, want[i])
		}
	}
}

func TestMarkdownList(t *testing.T) {
	d := Markdown(doc.New(), "- alpha\n- beta\n")
	ps := paragraphs(d)
	if len(ps) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(ps))
	}
	if !strings.HasPrefix(ps[0].Text, "• alpha") {
		t.Errorf("list item = %q", ps[0].Text)
	}
}

func TestMarkdownSoftBreaksJoin(t *testing.T) {
	d := Markdown(doc.New(), "line one\nline two\n")
	ps := paragraphs(d)
	if len(ps) != 1 || ps[0].Text != "line one line two" {
		t.Fatalf("soft break handling: %+v", ps)
	}
}

func TestMarkdownCodeBlock(t *testing.T) {
	d := Markdown(doc.New(), "```\nx := 1\n```\n")
	ps := paragraphs(d)
	if len(ps) != 1 || ps[0].Text != "x := 1" {
		t.Fatalf("code block: %+v", ps)
	}
	if ps[0].Align == nil || *ps[0].Align != doc.AlignLeft {
		t.Errorf("code block should be left aligned")
	}
}

func TestMarkdownAppendsToExisting(t *testing.T) {
	d := doc.New()
	d.AddParagraph(doc.Par("pre-existing"))
	Markdown(d, "added\n")
	ps := paragraphs(d)
	if len(ps) != 2 || ps[0].Text != "pre-existing" {
		t.Fatalf("import should append, got %+v", ps)
	}
}

func TestHTMLBlocks(t *testing.T) {
	src := `<html><head><title>skip</title><style>p{}</style></head><body>
<h1>Heading</h1>
<p>Body <b>text</b> with
  collapsed   whitespace.</p>
<hr>
<ul><li>item one</li><li>item two</li></ul>
</body></html>`

	d, err := HTML(doc.New(), src)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	ps := paragraphs(d)
	if len(ps) != 4 {
		t.Fatalf("got %d paragraphs, want 4: %+v", len(ps), ps)
	}
	if ps[0].Text != "Heading" {
		t.Errorf("heading = %q", ps[0].Text)
	}
	if ps[0].Style == nil || *ps[0].Style != doc.StyleBold {
		t.Errorf("h1 not bold")
	}
	if want := "Body text with collapsed whitespace."; ps[1].Text != want {
		t.Errorf("paragraph = %q, want %q", ps[1].Text, want)
	}
	if breaks(d) != 1 {
		t.Errorf("hr did not become a page break")
	}
	if !strings.HasPrefix(ps[2].Text, "• item one") {
		t.Errorf("list item = %q", ps[2].Text)
	}
}

func TestHTMLIgnoresHeadContent(t *testing.T) {
	d, err := HTML(doc.New(), "<head><title>nope</title></head><body><p>yes</p></body>")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	ps := paragraphs(d)
	if len(ps) != 1 || ps[0].Text != "yes" {
		t.Fatalf("head content leaked: %+v", ps)
	}
}
