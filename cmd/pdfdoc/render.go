package main

import (
	"github.com/spf13/cobra"

	"github.com/wudi/pdfdoc/doc"
)

func newRenderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render <document.json>",
		Short: "Render a saved document to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := doc.Read(args[0])
			if err != nil {
				return err
			}
			target := outputPath(out, args[0], ".pdf")
			if err := writeResult(cmd.Context(), d, "pdf", target); err != nil {
				return err
			}
			logDone(target, d)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: input name with .pdf)")
	return cmd
}
