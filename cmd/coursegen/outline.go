package main

import (
	"github.com/spf13/cobra"
)

func newOutlineCmd(c *cli) *cobra.Command {
	var (
		bf  briefFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Generate a course outline and print it as JSON",
		Example: `  coursegen outline --topic Photosynthesis --audience "Grade 5" --interaction single --interaction truefalse
  coursegen outline --brief brief.yaml --out outline.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			brief, err := bf.brief()
			if err != nil {
				return err
			}
			ctx := c.context(cmd)
			gen, closeFn, err := c.generator(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			outline, err := gen.GenerateOutline(ctx, brief)
			if err != nil {
				return err
			}
			data, err := marshalIndent(outline)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out, data)
		},
	}
	bf.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the outline here instead of stdout")
	return cmd
}
