package main

import (
	"fmt"

	"coursegen/internal/render"
	"coursegen/internal/types"

	"github.com/spf13/cobra"
)

func newBuildCmd(c *cli) *cobra.Command {
	var (
		bf          briefFlags
		outlinePath string
		out         string
		jsonOut     string
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate a complete HTML course",
		Long: `build runs the whole pipeline: outline (unless --outline is given),
illustrations, quizzes and rendering. The HTML is written to --out, or to a
file named after the course title in the current directory.`,
		Example: `  coursegen build --brief brief.json --out course.html
  coursegen build --brief brief.json --outline outline.json --json course.json`,
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

			var outline types.CourseOutline
			if outlinePath != "" {
				if err := readDocument(outlinePath, &outline); err != nil {
					return fmt.Errorf("read outline: %w", err)
				}
			}
			if len(outline.Sections) == 0 {
				if outline, err = gen.GenerateOutline(ctx, brief); err != nil {
					return err
				}
			}

			artifact, err := gen.GenerateCourseware(ctx, outline, brief)
			if err != nil {
				return err
			}
			if out == "" {
				out = render.FileName(artifact.Courseware.Title)
			}
			if err := writeOutput(cmd.OutOrStdout(), out, []byte(artifact.HTML)); err != nil {
				return err
			}
			if jsonOut != "" {
				data, err := marshalIndent(artifact.Courseware)
				if err != nil {
					return err
				}
				if err := writeOutput(cmd.OutOrStdout(), jsonOut, data); err != nil {
					return err
				}
			}
			if out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d sections, %d interactions)\n", out, len(artifact.Courseware.Sections), artifact.Courseware.InteractionCount())
			}
			return nil
		},
	}
	bf.register(cmd)
	cmd.Flags().StringVar(&outlinePath, "outline", "", "reuse an outline file instead of generating one")
	cmd.Flags().StringVarP(&out, "out", "o", "", "HTML output path (\"-\" for stdout)")
	cmd.Flags().StringVar(&jsonOut, "json", "", "also write the courseware document as JSON")
	return cmd
}
