package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wudi/pdfdoc/scripting"
)

func newScriptCmd() *cobra.Command {
	var (
		out     string
		format  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "script <build.js>",
		Short: "Build a document by running a JavaScript file",
		Long: `Script runs a JavaScript file on the embedded engine. The script
composes a document with newDocument() or letter() and must end with
the document as its final expression:

    var d = letter();
    d.addParagraph("Hello from JavaScript");
    d;`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			d, err := scripting.New().Run(ctx, string(src))
			if err != nil {
				return err
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
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "script execution timeout")
	return cmd
}
