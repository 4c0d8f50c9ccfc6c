package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/helix"
	"github.com/aretw0/helix/internal/config"
	"github.com/aretw0/helix/internal/presentation/tui"
	httpAdapter "github.com/aretw0/helix/pkg/adapters/http"
	"github.com/aretw0/helix/pkg/observability"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the transcoder as a JSON API over HTTP.

Routes: POST/GET /api/transcode, POST /encode, POST /decode, /health, /info,
/openapi.yaml and, when enabled, the Prometheus metrics endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyServeFlags(cmd, cfg)

		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger.With("component", "http")),
			httpAdapter.WithMaxInputSize(cfg.Limits.MaxInputSize),
			httpAdapter.WithCORS(cfg.Server.CORS),
		}
		var engOpts []helix.Option
		if cfg.Metrics.Enabled {
			metrics := observability.NewMetrics(true)
			engOpts = append(engOpts, helix.WithLifecycleHooks(metrics.Hooks()))
			opts = append(opts, httpAdapter.WithMetrics(cfg.Metrics.Path, metrics.Handler()))
		}
		engOpts = append(engOpts, helix.WithLogger(logger))
		engine := helix.New(engOpts...)

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           httpAdapter.NewHandler(engine, opts...),
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
		}

		if isTerminal(os.Stdout) {
			tui.PrintBanner(cmd.OutOrStdout())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.Info("Starting Helix Server", "addr", srv.Addr, "metrics", cfg.Metrics.Enabled)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			logger.Info("Start shutdown", "timeout", cfg.Server.ShutdownTimeout)

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Graceful shutdown did not complete", "error", err)
				return srv.Close()
			}
			logger.Info("Helix Server stopped gracefully")
			return nil
		})
		return g.Wait()
	},
}

// applyServeFlags lets explicitly set serve flags override the loaded config.
func applyServeFlags(cmd *cobra.Command, c *config.Config) {
	if cmd.Flags().Changed("addr") {
		c.Server.Addr, _ = cmd.Flags().GetString("addr")
	}
	if noMetrics, _ := cmd.Flags().GetBool("no-metrics"); noMetrics {
		c.Metrics.Enabled = false
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().Bool("no-metrics", false, "Disable the Prometheus endpoint")
}
