// Package fonts resolves pdfdoc font identifiers to parsed typefaces.
// Font bytes are fetched from the Google Fonts repository (or an
// on-disk cache) and parsed once per render; see the render package
// for the caching contract.
package fonts

import (
	"fmt"

	"github.com/wudi/pdfdoc/doc"
)

// family holds repository paths for the face variants of one family.
// Families shipped as variable fonts have no separate bold file; the
// weight axis lives in the regular file.
type family struct {
	regular string
	italic  string
}

// Paths under the google/fonts repository for the stock families.
var families = map[doc.Font]family{
	doc.Domine: {
		regular: "ofl/domine/Domine%5Bwght%5D.ttf",
	},
	doc.Lora: {
		regular: "ofl/lora/Lora%5Bwght%5D.ttf",
		italic:  "ofl/lora/Lora-Italic%5Bwght%5D.ttf",
	},
	doc.Merriweather: {
		regular: "ofl/merriweather/Merriweather%5Bopsz,wdth,wght%5D.ttf",
		italic:  "ofl/merriweather/Merriweather-Italic%5Bopsz,wdth,wght%5D.ttf",
	},
	doc.OpenSans: {
		regular: "ofl/opensans/OpenSans%5Bwdth,wght%5D.ttf",
		italic:  "ofl/opensans/OpenSans-Italic%5Bwdth,wght%5D.ttf",
	},
	doc.Roboto: {
		regular: "ofl/roboto/Roboto%5Bwdth,wght%5D.ttf",
		italic:  "ofl/roboto/Roboto-Italic%5Bwdth,wght%5D.ttf",
	},
	doc.SourceSerif: {
		regular: "ofl/sourceserif4/SourceSerif4%5Bopsz,wght%5D.ttf",
		italic:  "ofl/sourceserif4/SourceSerif4-Italic%5Bopsz,wght%5D.ttf",
	},
}

// pathFor returns the repository path for a family and style.
// Italic styles fall back to the regular file when the family ships no
// italic face. Bold styles use the same file as their upright
// counterpart; Parse instances the weight axis.
func pathFor(f doc.Font, s doc.FontStyle) (string, error) {
	fam, ok := families[f]
	if !ok {
		return "", fmt.Errorf("unknown font family %q", string(f))
	}
	if (s == doc.StyleItalic || s == doc.StyleBoldItalic) && fam.italic != "" {
		return fam.italic, nil
	}
	return fam.regular, nil
}

// Known reports whether f is a stock family resolvable by the
// GoogleFonts provider.
func Known(f doc.Font) bool {
	_, ok := families[f]
	return ok
}
