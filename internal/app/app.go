package app

import (
	"context"
	"errors"

	"coursegen/internal/config"
	"coursegen/internal/platform/logger"
	"coursegen/internal/server"
)

type App struct {
	server        *server.Server
	closeProvider func() error
}

func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	log = logger.OrNop(log)

	// Dependencies
	svc, closeProvider, err := NewPipeline(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	coursewareHandler := server.NewCoursewareHandler(svc, log.With("handler", "rpc"))
	streamHandler := server.NewStreamHandler(svc, log.With("handler", "stream"))
	renderHandler := server.NewRenderHandler()
	healthHandler := server.NewHealthHandler(svc)

	// Routing & Server
	mux := server.NewMux(coursewareHandler, streamHandler, renderHandler, healthHandler, cfg.CORS.AllowOrigins)
	srv := server.New(cfg.Port, mux, log)

	return &App{
		server:        srv,
		closeProvider: closeProvider,
	}, nil
}

func (a *App) Addr() string { return a.server.Addr() }

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	return errors.Join(a.server.Shutdown(ctx), a.closeProvider())
}
