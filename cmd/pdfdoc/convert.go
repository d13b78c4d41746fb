package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wudi/pdfdoc/convert"
	"github.com/wudi/pdfdoc/doc"
)

func newConvertCmd() *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "convert <input.md|input.html>",
		Short: "Import Markdown or HTML into a document",
		Long: `Convert reads a Markdown or HTML file (chosen by extension) and maps
its block structure onto a document: paragraphs, headings, lists and
page breaks. Document defaults come from the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			d := doc.NewLetter()
			rt.cfg.apply(d)

			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".md", ".markdown":
				convert.Markdown(d, string(data))
			case ".html", ".htm":
				if _, err := convert.HTML(d, string(data)); err != nil {
					return fmt.Errorf("parsing %s: %w", args[0], err)
				}
			default:
				return fmt.Errorf("unsupported input %q (want .md or .html)", args[0])
			}

			target := outputPath(out, args[0], "."+format)
			if err := writeResult(cmd.Context(), d, format, target); err != nil {
				return err
			}
			logDone(target, d)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: input name with new extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format: pdf or json")
	return cmd
}
