package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/circuitroom-server/internal/app"
	"github.com/vovakirdan/circuitroom-server/internal/config"
	"github.com/vovakirdan/circuitroom-server/internal/log"
)

var (
	flagConfig   string
	flagAddr     string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "circuitroom-server",
	Short: "WebSocket relay for the circuit-room puzzle game",
	RunE:  run,

	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to config file")
	rootCmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address (overrides config)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, _ []string) error {
	bootLogger := log.New("info")

	cfg, path, err := config.Load(bootLogger, flagConfig)
	if err != nil {
		return err
	}
	cfg.UpdateFrom(config.Config{Addr: flagAddr, LogLevel: flagLogLevel})

	logger := log.New(cfg.LogLevel)
	logger.Info().Str("config", path).Str("addr", cfg.Addr).Msg("starting circuitroom server")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(&cfg, logger)
	if err != nil {
		return err
	}

	if err := application.Run(ctx); err != nil {
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
