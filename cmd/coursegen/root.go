package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"coursegen/internal/app"
	"coursegen/internal/config"
	llm "coursegen/internal/llm/middleware"
	"coursegen/internal/observability"
	"coursegen/internal/platform/logger"
	"coursegen/internal/server"
	"coursegen/internal/types"

	"github.com/spf13/cobra"
)

// cli holds state shared by subcommands once the root has run.
type cli struct {
	configPath  string
	serverURL   string
	showPrompts bool

	cfg          *config.Config
	log          *logger.Logger
	shutdownOTel func(context.Context) error
}

type generator interface {
	GenerateOutline(ctx context.Context, brief types.GenerationBrief) (types.CourseOutline, error)
	GenerateCourseware(ctx context.Context, outline types.CourseOutline, brief types.GenerationBrief) (types.CoursewareArtifact, error)
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "coursegen",
		Short: "Generate illustrated, interactive courseware from a brief",
		Long: `coursegen turns a short teaching brief (topic, audience, objectives) into an
outline, then into a self-contained HTML course with illustrations and quizzes.

Without a Gemini API key it still works offline: outlines fall back to a fixed
three-section skeleton and images become placeholders.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(c.configPath, "")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log, err := logger.New(cfg.Env)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			shutdown, err := observability.InitOTel(cmd.Context(), log, observability.OtelConfig{
				ServiceName: "coursegen-cli",
				Environment: cfg.Env,
				Stdout:      cfg.Tracing.Stdout,
			})
			if err != nil {
				return err
			}
			c.cfg, c.log, c.shutdownOTel = cfg, log, shutdown
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if c.log != nil {
				c.log.Sync()
			}
			if c.shutdownOTel != nil {
				return c.shutdownOTel(context.WithoutCancel(cmd.Context()))
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "optional YAML config file")
	root.PersistentFlags().StringVar(&c.serverURL, "server", "", "generate through a running coursegen API at this base URL")
	root.PersistentFlags().BoolVar(&c.showPrompts, "show-prompts", false, "echo provider prompts and replies to stderr")

	root.AddCommand(newOutlineCmd(c), newBuildCmd(c), newRenderCmd(c))
	return root
}

// generator returns the local pipeline, or a remote client when --server is
// set. The close func is always non-nil.
func (c *cli) generator(ctx context.Context) (generator, func() error, error) {
	if u := strings.TrimSpace(c.serverURL); u != "" {
		return remoteGenerator{client: server.NewCoursewareClient(http.DefaultClient, u)}, func() error { return nil }, nil
	}
	svc, closeFn, err := app.NewPipeline(ctx, c.cfg, c.log)
	if err != nil {
		return nil, nil, err
	}
	return svc, closeFn, nil
}

func (c *cli) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if c.showPrompts {
		ctx = llm.WithPromptHook(ctx, app.NewPromptEcho(cmd.ErrOrStderr()))
	}
	return ctx
}

type remoteGenerator struct {
	client *server.CoursewareClient
}

func (r remoteGenerator) GenerateOutline(ctx context.Context, brief types.GenerationBrief) (types.CourseOutline, error) {
	return r.client.GenerateOutline(ctx, brief)
}

func (r remoteGenerator) GenerateCourseware(ctx context.Context, outline types.CourseOutline, brief types.GenerationBrief) (types.CoursewareArtifact, error) {
	res, err := r.client.GenerateCourseware(ctx, outline, brief)
	if err != nil {
		return types.CoursewareArtifact{}, err
	}
	return types.CoursewareArtifact{Courseware: res.Courseware, HTML: res.HTML}, nil
}
