package pdfdoc

import (
	"github.com/wudi/pdfdoc/fonts"
	"github.com/wudi/pdfdoc/layout"
	"github.com/wudi/pdfdoc/observability"
	"github.com/wudi/pdfdoc/render"
	"github.com/wudi/pdfdoc/writer"
)

type options struct {
	layout    render.TextLayout
	fonts     render.FontProvider
	newWriter func() render.PageWriter
	logger    observability.Logger
	tracer    observability.Tracer
}

// Option customizes a render call.
type Option func(*options)

func defaults() *options {
	return &options{
		layout:    layout.New(),
		fonts:     fonts.NewGoogleFonts(),
		newWriter: func() render.PageWriter { return writer.New() },
		logger:    observability.NopLogger{},
		tracer:    observability.NopTracer(),
	}
}

// WithTextLayout replaces the layout engine.
func WithTextLayout(l render.TextLayout) Option {
	return func(o *options) { o.layout = l }
}

// WithFontProvider replaces the font source. Use fonts.Static to
// render without network access.
func WithFontProvider(p render.FontProvider) Option {
	return func(o *options) { o.fonts = p }
}

// WithPageWriter replaces the output backend. The factory is invoked
// once per render; page writers are single-use.
func WithPageWriter(newWriter func() render.PageWriter) Option {
	return func(o *options) { o.newWriter = newWriter }
}

// WithLogger attaches a logger to the render pipeline.
func WithLogger(l observability.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTracer attaches a tracer to the render pipeline.
func WithTracer(t observability.Tracer) Option {
	return func(o *options) { o.tracer = t }
}
