package observability

import (
	"context"
	"errors"
	"testing"
)

func TestNopTracer(t *testing.T) {
	tracer := NopTracer()
	ctx := context.Background()
	ctx2, span := tracer.StartSpan(ctx, "test")
	if ctx2 != ctx {
		t.Fatalf("nop tracer should return same context")
	}
	span.SetTag(MetricPageCount, 3)
	span.SetError(errors.New("ignored"))
	span.Finish()
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l = l.With(String("component", "render"))
	l.Debug("debug", Int("pages", 2))
	l.Info("info", Float64("cursor", 72.5))
	l.Warn("warn")
	l.Error("error", Error("err", errors.New("boom")))
}

func TestFields(t *testing.T) {
	cases := []struct {
		f    Field
		key  string
		want interface{}
	}{
		{String("a", "x"), "a", "x"},
		{Int("b", 7), "b", 7},
		{Float64("c", 1.5), "c", 1.5},
	}
	for _, c := range cases {
		if c.f.Key() != c.key {
			t.Errorf("Key() = %q, want %q", c.f.Key(), c.key)
		}
		if c.f.Value() != c.want {
			t.Errorf("Value() = %v, want %v", c.f.Value(), c.want)
		}
	}

	err := errors.New("boom")
	ef := Error("err", err)
	if ef.Key() != "err" || ef.Value() != error(err) {
		t.Errorf("error field: %v %v", ef.Key(), ef.Value())
	}
}
