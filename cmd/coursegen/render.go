package main

import (
	"fmt"

	"coursegen/internal/render"
	"coursegen/internal/types"

	"github.com/spf13/cobra"
)

func newRenderCmd(_ *cli) *cobra.Command {
	var (
		in  string
		out string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Re-render a courseware JSON document to HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cw types.Courseware
			if err := readDocument(in, &cw); err != nil {
				return fmt.Errorf("read courseware: %w", err)
			}
			if out == "" {
				out = render.FileName(cw.Title)
			}
			return writeOutput(cmd.OutOrStdout(), out, []byte(render.Render(cw)))
		},
	}
	cmd.Flags().StringVar(&in, "courseware", "", "courseware JSON file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "HTML output path (\"-\" for stdout)")
	_ = cmd.MarkFlagRequired("courseware")
	return cmd
}
