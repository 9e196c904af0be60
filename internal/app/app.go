package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/circuitroom-server/internal/ai"
	"github.com/vovakirdan/circuitroom-server/internal/config"
	"github.com/vovakirdan/circuitroom-server/internal/core"
	"github.com/vovakirdan/circuitroom-server/internal/game"
	transporthttp "github.com/vovakirdan/circuitroom-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	responder, err := ai.NewResponder(ai.Config{
		APIKey:  cfg.OpenAIKey,
		Model:   cfg.OpenAIModel,
		URL:     cfg.OpenAIURL,
		Persona: cfg.Persona,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("init responder: %w", err)
	}

	if responder.Configured() {
		logger.Info().Str("model", cfg.OpenAIModel).Msg("generation enabled")
	} else {
		logger.Info().Msg("no generation credential, running canned replies")
	}

	pipeline := game.NewPipeline(responder, game.DefaultResetDelay, logger)
	hub := core.NewHub(core.NewMemoryTable(), pipeline, logger)
	server := transporthttp.NewServer(hub, responder, *cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		log:             logger,
	}, nil
}

// Run starts the hub and HTTP server, blocking until context cancellation
// or a fatal server error. Per-message failures never reach this level.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.hub.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
