package pdfdoc

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/wudi/pdfdoc/doc"
	"github.com/wudi/pdfdoc/fonts"
)

func staticFonts() fonts.Static {
	return fonts.Static{
		doc.Domine: goregular.TTF,
		doc.Roboto: goregular.TTF,
	}
}

func TestRenderBytesEndToEnd(t *testing.T) {
	d := doc.NewLetter()
	d.AddParagraph(doc.Par("Dear reader,"))
	d.AddParagraph(doc.Par("This letter spans a single page and renders through the default pipeline."))
	d.AddPageBreak()
	d.AddParagraph(doc.Par("Second page."))

	out, err := RenderBytes(context.Background(), d, WithFontProvider(staticFonts()))
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", out[:16])
	}
	if !bytes.Contains(out, []byte("/Count 2")) {
		t.Errorf("expected a 2-page document")
	}
}

func TestRenderForcesPDFExtension(t *testing.T) {
	d := doc.NewLetter()
	d.AddParagraph(doc.Par("extension check"))

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	if err := Render(context.Background(), d, path, WithFontProvider(staticFonts())); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.pdf")); err != nil {
		t.Errorf("out.pdf not written: %v", err)
	}
	if _, err := os.Stat(path); err == nil {
		t.Errorf("out.json written; extension should be replaced")
	}
}

func TestRenderUnknownFontFails(t *testing.T) {
	d := doc.NewLetter()
	d.SetFont(doc.Font("No Such Family"))
	d.AddParagraph(doc.Par("will fail"))

	_, err := RenderBytes(context.Background(), d, WithFontProvider(staticFonts()))
	if err == nil {
		t.Fatalf("render succeeded with an unregistered font")
	}
}
