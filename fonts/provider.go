package fonts

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/wudi/pdfdoc/doc"
)

// DefaultBaseURL serves raw files from the google/fonts repository.
const DefaultBaseURL = "https://raw.githubusercontent.com/google/fonts/main/"

// GoogleFonts fetches font programs for the stock families, keeping a
// byte-for-byte copy on disk so repeated renders never re-download.
//
// The on-disk cache persists across processes; the parsed-face cache
// required by a render lives in the render driver, not here.
type GoogleFonts struct {
	// Client is the HTTP client used for fetches. Defaults to
	// http.DefaultClient.
	Client *http.Client
	// CacheDir is where fetched font files are kept. Defaults to
	// pdfdoc/fonts under the user cache directory.
	CacheDir string
	// BaseURL overrides the repository URL, mainly for tests.
	BaseURL string
}

// NewGoogleFonts returns a provider with default client, cache
// location and repository URL.
func NewGoogleFonts() *GoogleFonts { return &GoogleFonts{} }

// Face fetches (or re-reads from cache) and parses the styled variant
// of a family. A fetch failure is a font-load error; undecodable bytes
// are a font-parse error.
func (g *GoogleFonts) Face(fam doc.Font, style doc.FontStyle) (*Face, error) {
	path, err := pathFor(fam, style)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", doc.ErrFontLoad, err)
	}
	data, err := g.fetch(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", doc.ErrFontLoad, string(fam), err)
	}
	return Parse(fam, style, data)
}

func (g *GoogleFonts) fetch(path string) ([]byte, error) {
	cachePath, err := g.cachePath(path)
	if err == nil {
		if data, err := os.ReadFile(cachePath); err == nil && len(data) > 0 {
			return data, nil
		}
	}

	base := g.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(base + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", path, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if cachePath != "" {
		// Cache writes are best effort; a failed write only costs a
		// re-download next time.
		if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err == nil {
			_ = os.WriteFile(cachePath, data, 0o644)
		}
	}
	return data, nil
}

func (g *GoogleFonts) cachePath(path string) (string, error) {
	dir := g.CacheDir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, "pdfdoc", "fonts")
	}
	name, err := url.PathUnescape(filepath.Base(path))
	if err != nil {
		name = filepath.Base(path)
	}
	// Variable-font file names carry axis brackets; flatten them for
	// portability across filesystems.
	name = strings.NewReplacer("[", "_", "]", "", ",", "-").Replace(name)
	return filepath.Join(dir, name), nil
}

// Static is a FontProvider backed by in-memory font bytes, keyed by
// family. Styled variants share the family's bytes. Useful for tests
// and for embedding fonts in binaries.
type Static map[doc.Font][]byte

// Face parses the registered bytes for a family.
func (s Static) Face(fam doc.Font, style doc.FontStyle) (*Face, error) {
	data, ok := s[fam]
	if !ok {
		return nil, fmt.Errorf("%w: %q: no registered font data", doc.ErrFontLoad, string(fam))
	}
	return Parse(fam, style, data)
}
