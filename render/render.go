// Package render drives document rendering: it segments a document
// into pages, resolves per-paragraph formatting, delegates shaping to
// a TextLayout, and advances a vertical cursor onto a PageWriter.
//
// The three collaborators (TextLayout, FontProvider, PageWriter) are
// capability interfaces; any conformant implementation is
// substitutable, including test doubles with fixed metrics.
package render

import (
	"context"
	"time"

	"github.com/wudi/pdfdoc/doc"
	"github.com/wudi/pdfdoc/fonts"
	"github.com/wudi/pdfdoc/observability"
)

// Renderer renders documents through a layout engine and font
// provider. The zero value is not usable; construct with New.
type Renderer struct {
	layout TextLayout
	fonts  FontProvider
	logger observability.Logger
	tracer observability.Tracer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for render progress.
func WithLogger(l observability.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithTracer sets the tracer wrapping render calls.
func WithTracer(t observability.Tracer) Option {
	return func(r *Renderer) { r.tracer = t }
}

// New returns a Renderer using the given layout engine and font
// provider.
func New(layout TextLayout, provider FontProvider, opts ...Option) *Renderer {
	r := &Renderer{
		layout: layout,
		fonts:  provider,
		logger: observability.NopLogger{},
		tracer: observability.NopTracer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// faceKey identifies one cached font resource within a render.
type faceKey struct {
	fam   doc.Font
	style doc.FontStyle
}

// Render renders d onto w and returns the finalized byte stream.
//
// Faces are resolved and cached per distinct (family, style) across
// the whole render; the cache belongs to this call alone. A font
// failure aborts the render with no output.
func (r *Renderer) Render(ctx context.Context, d *doc.Document, w PageWriter) ([]byte, error) {
	start := time.Now()
	_, span := r.tracer.StartSpan(ctx, "render")
	defer span.Finish()

	var layoutTime, fontTime time.Duration

	pages := d.Pages()
	span.SetTag(observability.MetricPageCount, len(pages))
	r.logger.Debug("rendering document",
		observability.Int("pages", len(pages)),
		observability.Int("elements", len(d.Elements)))

	faces := make(map[faceKey]*fonts.Face)
	pageW, pageH := d.Size.Pt()
	textWidth := (d.Size.Width - d.Margin.Width()).Pt()

	for i, page := range pages {
		surface := w.BeginPage(pageW, pageH)

		// The cursor restarts at the top margin on every page.
		y := d.Margin.Top.Pt()
		for _, par := range page {
			a := Resolve(d, par)

			t0 := time.Now()
			face, err := r.face(faces, a.Font, a.Style)
			fontTime += time.Since(t0)
			if err != nil {
				span.SetError(err)
				return nil, err
			}

			indent := 0.0
			if a.IndentFirst {
				indent = a.Indent.Pt()
			}
			t0 = time.Now()
			block := r.layout.Layout(TextParams{
				Text:        par.Text,
				Face:        face,
				FontSize:    a.FontSize,
				LineSpacing: a.LineSpacing.Factor(),
				Align:       a.Align,
				MaxWidth:    textWidth,
				Indent:      indent,
			})
			layoutTime += time.Since(t0)
			block.Paint(surface, d.Margin.Left.Pt(), y)

			y += block.FirstLineHeight()*a.SpaceAfter.Factor() + block.Height()
		}
		w.EndPage()
		r.logger.Debug("page rendered",
			observability.Int("page", i+1),
			observability.Int("paragraphs", len(page)),
			observability.Float64("cursor", y))
	}

	out, err := w.Close()
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	span.SetTag(observability.MetricOutputBytes, len(out))
	span.SetTag(observability.MetricFontLoadTime, fontTime)
	span.SetTag(observability.MetricLayoutTime, layoutTime)
	span.SetTag(observability.MetricRenderTime, time.Since(start))
	return out, nil
}

func (r *Renderer) face(cache map[faceKey]*fonts.Face, fam doc.Font, style doc.FontStyle) (*fonts.Face, error) {
	key := faceKey{fam, style}
	if f, ok := cache[key]; ok {
		return f, nil
	}
	r.logger.Debug("loading font",
		observability.String("family", string(fam)),
		observability.String("style", style.String()))
	f, err := r.fonts.Face(fam, style)
	if err != nil {
		return nil, err
	}
	cache[key] = f
	return f, nil
}
