package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wudi/pdfdoc"
	"github.com/wudi/pdfdoc/doc"
	"github.com/wudi/pdfdoc/fonts"
	"github.com/wudi/pdfdoc/observability"
)

// runtime is the shared state commands read after the root
// PersistentPreRun has resolved flags and config.
type runtime struct {
	logger   charmLogger
	cfg      config
	provider *fonts.GoogleFonts
}

var rt runtime

func execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "pdfdoc",
		Short:        "pdfdoc builds paginated text documents and renders them to PDF",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			rt.logger = charmLogger{newLogger(os.Stderr, level)}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			rt.cfg = cfg
			rt.provider = fonts.NewGoogleFonts()
			rt.provider.CacheDir = cfg.FontCacheDir
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newScriptCmd())

	return root.ExecuteContext(context.Background())
}

// renderOptions are the library options every command renders with.
func renderOptions() []pdfdoc.Option {
	return []pdfdoc.Option{
		pdfdoc.WithFontProvider(rt.provider),
		pdfdoc.WithLogger(rt.logger),
	}
}

// outputPath derives the output file from -o or from the input name.
func outputPath(out, input, ext string) string {
	if out != "" {
		return out
	}
	return doc.WithExtension(filepath.Base(input), ext)
}

// writeResult saves d as .json or renders it to .pdf depending on
// format.
func writeResult(ctx context.Context, d *doc.Document, format, target string) error {
	switch strings.ToLower(format) {
	case "json":
		return d.Save(target)
	case "pdf":
		return pdfdoc.Render(ctx, d, target, renderOptions()...)
	default:
		return fmt.Errorf("unknown output format %q (want pdf or json)", format)
	}
}

func logDone(target string, d *doc.Document) {
	rt.logger.Info("wrote output",
		observability.String("path", target),
		observability.Int("pages", len(d.Pages())))
}
