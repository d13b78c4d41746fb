// Package pdfdoc builds paginated text documents and renders them to
// PDF. Documents are composed through the doc package; this package
// wires the default pipeline (HarfBuzz layout, Google Fonts, the PDF
// writer) behind two convenience calls.
//
// Documents round-trip through JSON via doc.Save and doc.Read, so a
// document can be composed in one process and rendered in another.
package pdfdoc

import (
	"context"
	"fmt"
	"os"

	"github.com/wudi/pdfdoc/doc"
	"github.com/wudi/pdfdoc/render"
)

// RenderBytes renders the document to PDF bytes with the default
// pipeline, adjusted by opts.
func RenderBytes(ctx context.Context, d *doc.Document, opts ...Option) ([]byte, error) {
	o := defaults()
	for _, opt := range opts {
		opt(o)
	}
	r := render.New(o.layout, o.fonts,
		render.WithLogger(o.logger), render.WithTracer(o.tracer))
	return r.Render(ctx, d, o.newWriter())
}

// Render renders the document and writes it to path, forcing a .pdf
// extension the way doc.Save forces .json.
func Render(ctx context.Context, d *doc.Document, path string, opts ...Option) error {
	out, err := RenderBytes(ctx, d, opts...)
	if err != nil {
		return err
	}
	target := doc.WithExtension(path, ".pdf")
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", doc.ErrFile, target, err)
	}
	return nil
}
