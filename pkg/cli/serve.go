package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/blockrelay/pkg/cli/config"
	controller "github.com/secmon-lab/blockrelay/pkg/controller/http"
	"github.com/secmon-lab/blockrelay/pkg/usecase"
	"github.com/secmon-lab/blockrelay/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		browserCfg config.Browser
		panelCfg   config.Panel
		traceCfg   config.Telemetry
	)

	flags := joinFlags(
		serverCfg.Flags(),
		browserCfg.Flags(),
		panelCfg.Flags(),
		traceCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			addr, err := serverCfg.ListenAddr()
			if err != nil {
				return err
			}

			logger.Info("Starting blockrelay server",
				slog.String("addr", addr),
				slog.Any("browser", browserCfg),
				slog.Any("panel", panelCfg),
				slog.Any("telemetry", traceCfg),
			)

			tel, err := traceCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tel.Shutdown(shutdownCtx); err != nil {
					logger.Warn("failed to flush telemetry", slog.Any("error", err))
				}
			}()

			blocklistCfg, err := panelCfg.Configure()
			if err != nil {
				return err
			}

			connector, err := browserCfg.Configure()
			if err != nil {
				return err
			}
			defer closeConnector(ctx, connector)

			// Start the browser driver ahead of the first request
			if warmer, ok := connector.(interface{ Initialize() error }); ok {
				async.Dispatch(ctx, "browser-warmup", func(ctx context.Context) error {
					return warmer.Initialize()
				})
			}

			blocklistUC := usecase.NewBlocklist(connector, blocklistCfg)
			server := controller.NewServer(ctx, addr, blocklistUC)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server error", goerr.V("addr", addr))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
