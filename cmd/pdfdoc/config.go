package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/wudi/pdfdoc/doc"
	"github.com/wudi/pdfdoc/geo"
)

// config carries document defaults and tool settings read from a TOML
// file. Zero values mean "keep the library default".
type config struct {
	Font         string  `toml:"font"`
	FontSize     float64 `toml:"font_size"`
	LineSpacing  float64 `toml:"line_spacing"`
	IndentFirst  *bool   `toml:"indent_first"`
	MarginInches float64 `toml:"margin_inches"`

	// FontCacheDir overrides where downloaded fonts are kept.
	FontCacheDir string `toml:"font_cache_dir"`
}

// defaultConfigPath is ~/.config/pdfdoc/config.toml; a missing file is
// not an error.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pdfdoc", "config.toml")
}

// loadConfig reads the TOML config at path. When path is empty the
// default location is tried and silently skipped if absent; an
// explicit path must exist.
func loadConfig(path string) (config, error) {
	var cfg config
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// apply writes the config's document defaults onto d.
func (c config) apply(d *doc.Document) {
	if c.Font != "" {
		d.SetFont(doc.Font(c.Font))
	}
	if c.FontSize > 0 {
		d.SetFontSize(c.FontSize)
	}
	if c.LineSpacing > 0 {
		d.SetLineSpacing(doc.Custom(c.LineSpacing))
	}
	if c.IndentFirst != nil {
		d.SetIndentFirst(*c.IndentFirst)
	}
	if c.MarginInches > 0 {
		m := geo.In(c.MarginInches)
		d.SetMargin(geo.Margin{Left: m, Right: m, Bottom: m, Top: m})
	}
}
