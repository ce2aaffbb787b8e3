package main

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/crusade-api/internal/config"
	"github.com/KirkDiggler/crusade-api/internal/handlers/rest"
	"github.com/KirkDiggler/crusade-api/internal/pkg/otel"
)

const serviceName = "crusade-api"

var (
	httpAddr   string
	storeKind  string
	sqlitePath string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the army list HTTP server with the configured store and catalog.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&httpAddr, "addr", "", "HTTP listen address (overrides CRUSADE_HTTP_ADDR)")
	serverCmd.Flags().StringVar(&storeKind, "store", "", "list store: redis or sqlite (overrides CRUSADE_STORE)")
	serverCmd.Flags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite file (overrides CRUSADE_SQLITE_PATH)")
}

// loadConfig reads the environment and applies any flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if httpAddr != "" {
		cfg.HTTPAddr = httpAddr
	}
	if storeKind != "" {
		cfg.Store = storeKind
	}
	if sqlitePath != "" {
		cfg.SQLitePath = sqlitePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	hub := rest.NewHub(&rest.HubConfig{AllowedOrigins: cfg.AllowedOrigins})
	defer hub.Close()

	a, err := buildApp(ctx, cfg, hub)
	if err != nil {
		return err
	}
	defer a.Close()

	handler, err := rest.NewHandler(&rest.HandlerConfig{
		Service: a.roster,
		Hub:     hub,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		// Watchers hold hijacked connections that Shutdown does not wait for.
		hub.Close()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop", "error", err)
			_ = srv.Close()
		} else {
			slog.Info("Server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}
