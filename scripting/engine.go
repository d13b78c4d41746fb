// Package scripting embeds a JavaScript engine for building documents
// programmatically. Scripts get newDocument() and letter()
// constructors plus a small document API; the value of the script's
// final expression is the document handed back to Go.
package scripting

import (
	"context"
	"fmt"

	"github.com/dop251/goja"

	"github.com/wudi/pdfdoc/doc"
	"github.com/wudi/pdfdoc/geo"
)

// Engine runs document-building scripts on a goja runtime. An Engine
// is single-threaded; create one per concurrent script.
type Engine struct {
	vm   *goja.Runtime
	docs []*doc.Document
}

// New returns an engine with the document API installed.
func New() *Engine {
	e := &Engine{vm: goja.New()}
	e.vm.Set("newDocument", func(goja.FunctionCall) goja.Value {
		return e.wrap(doc.New())
	})
	e.vm.Set("letter", func(goja.FunctionCall) goja.Value {
		return e.wrap(doc.NewLetter())
	})
	return e
}

// Run executes the script and returns the document its final
// expression evaluates to. Cancelling ctx interrupts a running script.
func (e *Engine) Run(ctx context.Context, script string) (*doc.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if interrupted, ok := err.(*goja.InterruptedError); ok {
			if cause := interrupted.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}

	d, err := e.unwrap(val)
	if err != nil {
		return nil, fmt.Errorf("script result: %w", err)
	}
	return d, nil
}

const handleProp = "__handle"

// wrap registers d and builds its JS object: mutating methods return
// the object itself so calls chain.
func (e *Engine) wrap(d *doc.Document) *goja.Object {
	handle := len(e.docs)
	e.docs = append(e.docs, d)

	obj := e.vm.NewObject()
	obj.Set(handleProp, handle)

	obj.Set("addParagraph", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			panic(e.vm.NewTypeError("addParagraph needs text"))
		}
		p := doc.Par(call.Arguments[0].String())
		if len(call.Arguments) > 1 {
			e.applyOverrides(p, call.Arguments[1])
		}
		d.AddParagraph(p)
		return obj
	})
	obj.Set("addPageBreak", func(goja.FunctionCall) goja.Value {
		d.AddPageBreak()
		return obj
	})
	obj.Set("replaceAt", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 3 {
			panic(e.vm.NewTypeError("replaceAt needs index, from, to"))
		}
		d.ReplaceAt(int(call.Arguments[0].ToInteger()),
			call.Arguments[1].String(), call.Arguments[2].String())
		return obj
	})
	obj.Set("append", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			panic(e.vm.NewTypeError("append needs a document"))
		}
		src, err := e.unwrap(call.Arguments[0])
		if err != nil {
			panic(e.vm.NewTypeError("append: %v", err))
		}
		d.Append(src)
		return obj
	})
	obj.Set("clone", func(goja.FunctionCall) goja.Value {
		return e.wrap(d.Clone())
	})
	obj.Set("cloneEmpty", func(goja.FunctionCall) goja.Value {
		return e.wrap(d.CloneEmpty())
	})

	obj.Set("setFont", func(call goja.FunctionCall) goja.Value {
		d.SetFont(doc.Font(call.Arguments[0].String()))
		return obj
	})
	obj.Set("setFontSize", func(call goja.FunctionCall) goja.Value {
		d.SetFontSize(call.Arguments[0].ToFloat())
		return obj
	})
	obj.Set("setFontStyle", func(call goja.FunctionCall) goja.Value {
		d.SetFontStyle(e.styleArg(call.Arguments[0]))
		return obj
	})
	obj.Set("setAlign", func(call goja.FunctionCall) goja.Value {
		d.SetAlign(e.alignArg(call.Arguments[0]))
		return obj
	})
	obj.Set("setLineSpacing", func(call goja.FunctionCall) goja.Value {
		d.SetLineSpacing(e.spacingArg(call.Arguments[0]))
		return obj
	})
	obj.Set("setSpaceAfter", func(call goja.FunctionCall) goja.Value {
		d.SetSpaceAfter(e.spacingArg(call.Arguments[0]))
		return obj
	})
	obj.Set("setIndent", func(call goja.FunctionCall) goja.Value {
		d.SetIndent(geo.In(call.Arguments[0].ToFloat()))
		return obj
	})
	obj.Set("setIndentFirst", func(call goja.FunctionCall) goja.Value {
		d.SetIndentFirst(call.Arguments[0].ToBoolean())
		return obj
	})
	obj.Set("setSize", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(e.vm.NewTypeError("setSize needs width, height in inches"))
		}
		d.SetSize(geo.Size{
			Width:  geo.In(call.Arguments[0].ToFloat()),
			Height: geo.In(call.Arguments[1].ToFloat()),
		})
		return obj
	})
	obj.Set("setMargin", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 4 {
			panic(e.vm.NewTypeError("setMargin needs left, right, bottom, top in inches"))
		}
		d.SetMargin(geo.Margin{
			Left:   geo.In(call.Arguments[0].ToFloat()),
			Right:  geo.In(call.Arguments[1].ToFloat()),
			Bottom: geo.In(call.Arguments[2].ToFloat()),
			Top:    geo.In(call.Arguments[3].ToFloat()),
		})
		return obj
	})
	return obj
}

func (e *Engine) unwrap(val goja.Value) (*doc.Document, error) {
	obj, ok := val.(*goja.Object)
	if !ok {
		return nil, fmt.Errorf("not a document (got %s)", val)
	}
	h := obj.Get(handleProp)
	if h == nil || goja.IsUndefined(h) {
		return nil, fmt.Errorf("not a document")
	}
	idx := int(h.ToInteger())
	if idx < 0 || idx >= len(e.docs) {
		return nil, fmt.Errorf("stale document handle %d", idx)
	}
	return e.docs[idx], nil
}

// applyOverrides reads paragraph options from a plain JS object:
// indent, font, fontSize, style, align, lineSpacing, spaceAfter,
// indentFirst.
func (e *Engine) applyOverrides(p *doc.Paragraph, val goja.Value) {
	obj, ok := val.(*goja.Object)
	if !ok {
		panic(e.vm.NewTypeError("paragraph options must be an object"))
	}
	for _, key := range obj.Keys() {
		v := obj.Get(key)
		switch key {
		case "indent":
			p.SetIndent(geo.In(v.ToFloat()))
		case "font":
			p.SetFont(doc.Font(v.String()))
		case "fontSize":
			p.SetFontSize(v.ToFloat())
		case "style":
			p.SetFontStyle(e.styleArg(v))
		case "align":
			p.SetAlign(e.alignArg(v))
		case "lineSpacing":
			p.SetLineSpacing(e.spacingArg(v))
		case "spaceAfter":
			p.SetSpaceAfter(e.spacingArg(v))
		case "indentFirst":
			p.SetIndentFirst(v.ToBoolean())
		default:
			panic(e.vm.NewTypeError("unknown paragraph option %q", key))
		}
	}
}

func (e *Engine) styleArg(v goja.Value) doc.FontStyle {
	var s doc.FontStyle
	if err := s.UnmarshalText([]byte(v.String())); err != nil {
		panic(e.vm.NewTypeError("%v", err))
	}
	return s
}

func (e *Engine) alignArg(v goja.Value) doc.Align {
	var a doc.Align
	if err := a.UnmarshalText([]byte(v.String())); err != nil {
		panic(e.vm.NewTypeError("%v", err))
	}
	return a
}

// spacingArg accepts "Single", "Double", or a numeric factor.
func (e *Engine) spacingArg(v goja.Value) doc.LineSpacing {
	switch v.String() {
	case "Single":
		return doc.Single
	case "Double":
		return doc.Double
	}
	return doc.Custom(v.ToFloat())
}
