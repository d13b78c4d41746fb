package convert

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/wudi/pdfdoc/doc"
)

// HTML parses markup and appends its block content to d. Paragraph
// tags map to paragraphs, h1-h6 to bold sized paragraphs, hr to page
// breaks, li to bulleted paragraphs. Inline markup flattens to plain
// text; everything else is walked through.
func HTML(d *doc.Document, source string) (*doc.Document, error) {
	root, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	walkHTML(d, root)
	return d, nil
}

func walkHTML(d *doc.Document, n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.P:
			if text := nodeText(n); text != "" {
				d.AddParagraph(doc.Par(text))
			}
			return
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			if text := nodeText(n); text != "" {
				d.AddParagraph(headingParagraph(d, text, headingLevel(n.DataAtom)))
			}
			return
		case atom.Hr:
			d.AddPageBreak()
			return
		case atom.Li:
			if text := nodeText(n); text != "" {
				p := doc.Par("• " + text)
				p.SetIndentFirst(false)
				d.AddParagraph(p)
			}
			return
		case atom.Script, atom.Style, atom.Head:
			return
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walkHTML(d, child)
	}
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	default:
		return 3
	}
}

// nodeText flattens the subtree's text nodes, collapsing runs of
// whitespace the way HTML rendering does.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
