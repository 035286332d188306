package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shubham8223/LLD-patterns/internal/config"
	"github.com/Shubham8223/LLD-patterns/internal/logging"
	"github.com/Shubham8223/LLD-patterns/internal/parking"
	"github.com/Shubham8223/LLD-patterns/internal/server"
	"github.com/Shubham8223/LLD-patterns/internal/telemetry"
)

var mode = flag.String("mode", "cli", "Mode to run: cli, server, or both")

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Init(true)
		logging.Logger().Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(cfg.IsDevelopment())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telemetryProvider, err := telemetry.NewProvider(cfg.OTelServiceName, cfg.OTelEndpoint)
	if err != nil {
		logging.Logger().Fatal().Err(err).Msg("failed to initialize telemetry")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	switch *mode {
	case "cli":
		runCLI(ctx, cancel, telemetryProvider, sigChan)
	case "server":
		runServer(ctx, cancel, cfg, telemetryProvider, sigChan)
	case "both":
		runBoth(ctx, cancel, cfg, telemetryProvider, sigChan)
	default:
		logging.Logger().Fatal().Str("mode", *mode).Msg("invalid mode, must be cli, server, or both")
	}
}

func runCLI(ctx context.Context, cancel context.CancelFunc, telemetryProvider *telemetry.Provider, sigChan chan os.Signal) {
	go func() {
		<-sigChan
		logging.Logger().Info().Msg("shutting down")
		cancel()
	}()

	shell := parking.NewShell(telemetryProvider)
	shell.Run(ctx)

	shutdownTelemetry(telemetryProvider)
}

func runServer(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, telemetryProvider *telemetry.Provider, sigChan chan os.Signal) {
	srv := server.NewServer(cfg.Port, cfg.OTelServiceName, telemetryProvider)

	go func() {
		<-sigChan
		logging.Logger().Info().Msg("received shutdown signal")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Logger().Error().Err(err).Msg("server shutdown error")
		}

		cancel()
	}()

	logging.Logger().Info().Str("port", cfg.Port).Msg("starting server mode")
	if err := srv.Start(); err != nil && err != context.Canceled {
		logging.Logger().Error().Err(err).Msg("server error")
	}

	shutdownTelemetry(telemetryProvider)
}

func runBoth(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, telemetryProvider *telemetry.Provider, sigChan chan os.Signal) {
	srv := server.NewServer(cfg.Port, cfg.OTelServiceName, telemetryProvider)

	serverDone := make(chan error, 1)
	go func() {
		logging.Logger().Info().Str("port", cfg.Port).Msg("starting HTTP server")
		serverDone <- srv.Start()
	}()

	cliDone := make(chan bool, 1)
	go func() {
		shell := parking.NewShell(telemetryProvider)
		shell.Run(ctx)
		cliDone <- true
	}()

	go func() {
		<-sigChan
		logging.Logger().Info().Msg("received shutdown signal")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Logger().Error().Err(err).Msg("server shutdown error")
		}

		cancel()
	}()

	select {
	case err := <-serverDone:
		if err != nil && err != context.Canceled {
			logging.Logger().Error().Err(err).Msg("server error")
		}
	case <-cliDone:
		logging.Logger().Info().Msg("CLI exited")
	case <-ctx.Done():
		logging.Logger().Info().Msg("context cancelled")
	}

	shutdownTelemetry(telemetryProvider)
}

func shutdownTelemetry(telemetryProvider *telemetry.Provider) {
	logging.Logger().Info().Msg("shutting down telemetry")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := telemetryProvider.Shutdown(shutdownCtx); err != nil {
		logging.Logger().Error().Err(err).Msg("error shutting down telemetry")
	}
}
