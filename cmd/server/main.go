// Command server runs the code mapping portal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"codemap-portal/internal/app"
	"codemap-portal/internal/catalog"
	"codemap-portal/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("server", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "dotenv file loaded before the environment")
	addr := flags.String("addr", "", "listen address (overrides LISTEN_ADDR)")
	logLevel := flags.String("log-level", "", "log level (overrides LOG_LEVEL)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	envErr := config.LoadDotEnv(*envFile)
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Warn("could not load env file", "path", *envFile, "error", envErr)
	}
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           app.NewRouter(ctx, app.Deps{Cfg: cfg, Catalog: cat, Logger: logger}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("portal listening", "addr", cfg.ListenAddr, "env", cfg.Env)
		logger.Info("health check", "url", "http://"+curlHostForListenAddr(cfg.ListenAddr)+"/healthz")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.JSONLogs() {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.DataFile == "" {
		cat, err := catalog.Load()
		if err != nil {
			return nil, fmt.Errorf("load embedded dataset: %w", err)
		}
		return cat, nil
	}
	cat, err := catalog.LoadFile(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.DataFile, err)
	}
	return cat, nil
}

// curlHostForListenAddr turns a listen address into a host:port a local
// curl can reach. Wildcard and empty hosts become localhost.
func curlHostForListenAddr(listenAddr string) string {
	listenAddr = strings.TrimSpace(listenAddr)
	if listenAddr == "" {
		return "localhost:8080"
	}
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return listenAddr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
