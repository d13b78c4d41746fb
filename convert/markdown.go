// Package convert imports external text formats into documents.
// Markdown goes through goldmark's AST, HTML through x/net/html; both
// map block elements onto uniform-style paragraphs, so inline styling
// flattens to plain text.
package convert

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/wudi/pdfdoc/doc"
)

// Markdown parses source and appends its block content to d as
// paragraphs. Headings become bold paragraphs scaled off the document
// font size, thematic breaks become page breaks, list items become
// paragraphs with a bullet prefix.
func Markdown(d *doc.Document, source string) *doc.Document {
	md := goldmark.New()
	src := []byte(source)
	root := md.Parser().Parse(text.NewReader(src))
	walkMarkdown(d, root, src)
	return d
}

func walkMarkdown(d *doc.Document, node ast.Node, source []byte) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			d.AddParagraph(headingParagraph(d, inlineText(n, source), n.Level))
		case *ast.Paragraph:
			d.AddParagraph(doc.Par(inlineText(n, source)))
		case *ast.ThematicBreak:
			d.AddPageBreak()
		case *ast.List:
			walkMarkdown(d, n, source)
		case *ast.ListItem:
			d.AddParagraph(listItemParagraph(n, source))
		case *ast.Blockquote:
			walkMarkdown(d, n, source)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			d.AddParagraph(codeParagraph(child, source))
		}
	}
}

// headingSizeFactor scales the document font size per heading level.
func headingSizeFactor(level int) float64 {
	switch {
	case level <= 1:
		return 2.0
	case level == 2:
		return 1.5
	default:
		return 1.25
	}
}

func headingParagraph(d *doc.Document, text string, level int) *doc.Paragraph {
	p := doc.Par(text)
	p.SetFontSize(d.FontSize * headingSizeFactor(level))
	p.SetFontStyle(doc.StyleBold)
	p.SetAlign(doc.AlignLeft)
	p.SetIndentFirst(false)
	return p
}

func listItemParagraph(n *ast.ListItem, source []byte) *doc.Paragraph {
	var text string
	if child := n.FirstChild(); child != nil {
		text = inlineText(child, source)
	}
	p := doc.Par("• " + text)
	p.SetIndentFirst(false)
	return p
}

func codeParagraph(n ast.Node, source []byte) *doc.Paragraph {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	p := doc.Par(strings.TrimRight(sb.String(), "\n"))
	p.SetAlign(doc.AlignLeft)
	p.SetIndentFirst(false)
	return p
}

// inlineText flattens a block's inline children to plain text, turning
// soft and hard line breaks into spaces.
func inlineText(node ast.Node, source []byte) string {
	var sb strings.Builder
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			if t, ok := child.(*ast.Text); ok {
				sb.Write(t.Segment.Value(source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					sb.WriteByte(' ')
				}
				continue
			}
			walk(child)
		}
	}
	walk(node)
	return strings.TrimSpace(sb.String())
}
