package fonts

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/wudi/pdfdoc/doc"
)

func TestParseMetrics(t *testing.T) {
	f, err := Parse(doc.Domine, doc.StyleNormal, goregular.TTF)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Family != doc.Domine || f.Style != doc.StyleNormal {
		t.Errorf("identity not carried: %v %v", f.Family, f.Style)
	}
	if f.Shaping == nil {
		t.Fatalf("no shaping face")
	}
	if f.NumGlyphs() <= 0 {
		t.Errorf("NumGlyphs = %d", f.NumGlyphs())
	}
	if f.PostScriptName() == "" {
		t.Errorf("empty PostScript name")
	}
	if f.Ascent(12) <= 0 {
		t.Errorf("Ascent(12) = %v, want positive", f.Ascent(12))
	}
	if f.Descent(12) >= 0 {
		t.Errorf("Descent(12) = %v, want negative", f.Descent(12))
	}

	d := f.Descriptor()
	if d.Ascent <= 0 || d.Descent >= 0 {
		t.Errorf("descriptor metrics: %+v", d)
	}
	if d.BBox[2] <= d.BBox[0] || d.BBox[3] <= d.BBox[1] {
		t.Errorf("degenerate bbox: %v", d.BBox)
	}
	// Go Regular is upright; the post table's angle must survive.
	if d.ItalicAngle != 0 {
		t.Errorf("ItalicAngle = %v, want 0", d.ItalicAngle)
	}
}

func TestParseBoldStyles(t *testing.T) {
	for _, s := range []doc.FontStyle{doc.StyleBold, doc.StyleBoldItalic} {
		f, err := Parse(doc.Domine, s, goregular.TTF)
		if err != nil {
			t.Fatalf("Parse(%v): %v", s, err)
		}
		if !f.Bold() {
			t.Errorf("Bold() = false for %v", s)
		}
	}
	f, err := Parse(doc.Domine, doc.StyleItalic, goregular.TTF)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Bold() {
		t.Errorf("Bold() = true for italic")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{nil, {}, []byte("not a font at all")} {
		if _, err := Parse(doc.Domine, doc.StyleNormal, data); !errors.Is(err, doc.ErrFontParse) {
			t.Errorf("Parse(%d bytes) error = %v, want ErrFontParse", len(data), err)
		}
	}
}

func TestGlyphWidth(t *testing.T) {
	f, err := Parse(doc.Domine, doc.StyleNormal, goregular.TTF)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if w := f.GlyphWidth(36); w <= 0 {
		t.Errorf("GlyphWidth(36) = %d, want positive", w)
	}
	if w := f.GlyphWidth(-1); w != 0 {
		t.Errorf("GlyphWidth(-1) = %d, want 0", w)
	}
	if w := f.GlyphWidth(f.NumGlyphs()); w != 0 {
		t.Errorf("out-of-range GlyphWidth = %d, want 0", w)
	}
}

func TestKnownFamilies(t *testing.T) {
	for _, f := range []doc.Font{doc.Domine, doc.Lora, doc.Merriweather, doc.OpenSans, doc.Roboto, doc.SourceSerif} {
		if !Known(f) {
			t.Errorf("%q should be known", f)
		}
	}
	if Known(doc.Font("Comic Sans")) {
		t.Errorf("unknown family reported as known")
	}
}

func TestGoogleFontsFetchAndCache(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(goregular.TTF)
	}))
	defer srv.Close()

	g := &GoogleFonts{BaseURL: srv.URL + "/", CacheDir: t.TempDir()}

	f, err := g.Face(doc.Roboto, doc.StyleNormal)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if f.Family != doc.Roboto {
		t.Errorf("family = %v", f.Family)
	}
	if hits != 1 {
		t.Fatalf("got %d fetches, want 1", hits)
	}

	// Second load must come from the disk cache.
	if _, err := g.Face(doc.Roboto, doc.StyleNormal); err != nil {
		t.Fatalf("cached Face: %v", err)
	}
	if hits != 1 {
		t.Errorf("cache miss: %d fetches", hits)
	}

	entries, err := os.ReadDir(g.CacheDir)
	if err != nil || len(entries) == 0 {
		t.Fatalf("cache dir empty: %v", err)
	}
	for _, e := range entries {
		if strings.ContainsAny(e.Name(), "[]%") {
			t.Errorf("cache file name not flattened: %q", e.Name())
		}
	}
}

func TestGoogleFontsUnknownFamily(t *testing.T) {
	g := &GoogleFonts{BaseURL: "http://127.0.0.1:0/", CacheDir: t.TempDir()}
	if _, err := g.Face(doc.Font("No Such Family"), doc.StyleNormal); !errors.Is(err, doc.ErrFontLoad) {
		t.Fatalf("error = %v, want ErrFontLoad", err)
	}
}

func TestGoogleFontsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	g := &GoogleFonts{BaseURL: srv.URL + "/", CacheDir: t.TempDir()}
	if _, err := g.Face(doc.Domine, doc.StyleNormal); !errors.Is(err, doc.ErrFontLoad) {
		t.Fatalf("error = %v, want ErrFontLoad", err)
	}
}

func TestGoogleFontsBadFontBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("junk"))
	}))
	defer srv.Close()

	g := &GoogleFonts{BaseURL: srv.URL + "/", CacheDir: t.TempDir()}
	if _, err := g.Face(doc.Domine, doc.StyleNormal); !errors.Is(err, doc.ErrFontParse) {
		t.Fatalf("error = %v, want ErrFontParse", err)
	}
}

func TestGoogleFontsItalicVariant(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write(goregular.TTF)
	}))
	defer srv.Close()

	g := &GoogleFonts{BaseURL: srv.URL + "/", CacheDir: filepath.Join(t.TempDir(), "c")}
	if _, err := g.Face(doc.Lora, doc.StyleItalic); err != nil {
		t.Fatalf("Face: %v", err)
	}
	if len(paths) != 1 || !strings.Contains(strings.ToLower(paths[0]), "italic") {
		t.Errorf("italic request fetched %v", paths)
	}
}

func TestStaticProvider(t *testing.T) {
	s := Static{doc.Domine: goregular.TTF}
	if _, err := s.Face(doc.Domine, doc.StyleBold); err != nil {
		t.Fatalf("Face: %v", err)
	}
	if _, err := s.Face(doc.Lora, doc.StyleNormal); !errors.Is(err, doc.ErrFontLoad) {
		t.Fatalf("missing family error = %v, want ErrFontLoad", err)
	}
}
