package doc

import (
	"encoding/json"
	"fmt"
)

// Element is one unit of a document's ordered sequence: either a
// paragraph or a page break marker.
type Element struct {
	par       *Paragraph
	pageBreak bool
}

// ParagraphElement wraps a paragraph as an element.
func ParagraphElement(p *Paragraph) Element { return Element{par: p} }

// PageBreakElement returns a page break marker element.
func PageBreakElement() Element { return Element{pageBreak: true} }

// Paragraph returns the wrapped paragraph, or nil for a page break.
func (e Element) Paragraph() *Paragraph { return e.par }

// IsPageBreak reports whether the element is a page break marker.
func (e Element) IsPageBreak() bool { return e.pageBreak }

func (e Element) clone() Element {
	if e.pageBreak {
		return e
	}
	return Element{par: e.par.clone()}
}

// MarshalJSON encodes the element externally tagged: a paragraph as
// {"Par": {...}} and a page break as the bare string "PagBrk".
func (e Element) MarshalJSON() ([]byte, error) {
	if e.pageBreak {
		return []byte(`"PagBrk"`), nil
	}
	if e.par == nil {
		return nil, fmt.Errorf("element holds neither paragraph nor page break")
	}
	return json.Marshal(map[string]*Paragraph{"Par": e.par})
}

// UnmarshalJSON decodes the encoding produced by MarshalJSON.
func (e *Element) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		if name != "PagBrk" {
			return fmt.Errorf("unknown element variant %q", name)
		}
		*e = PageBreakElement()
		return nil
	}
	var obj map[string]*Paragraph
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("malformed element: %w", err)
	}
	p, ok := obj["Par"]
	if !ok || p == nil {
		return fmt.Errorf("malformed element object: missing Par")
	}
	*e = ParagraphElement(p)
	return nil
}
