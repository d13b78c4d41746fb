package doc

// Page is an ordered group of paragraphs drawn together before a page
// boundary. Pages are derived transiently by Pages and never persisted.
type Page []*Paragraph

// Pages segments the element sequence into pages of paragraphs.
//
// Paragraphs accumulate onto the current page; a page break emits the
// accumulated page and starts a new one. Breaks seen while the
// accumulator is empty are absorbed, so no page is ever empty:
// leading, trailing and consecutive breaks add no boundaries. A
// trailing partial page is emitted. Paragraph order is preserved
// within and across pages.
func (d *Document) Pages() []Page {
	var pages []Page
	var current Page
	for _, e := range d.Elements {
		if e.IsPageBreak() {
			if len(current) > 0 {
				pages = append(pages, current)
				current = nil
			}
			continue
		}
		current = append(current, e.Paragraph())
	}
	if len(current) > 0 {
		pages = append(pages, current)
	}
	return pages
}
