// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/poshconv/cli/internal/config"
	"github.com/poshconv/cli/internal/mapping"
	"github.com/poshconv/cli/internal/server"
)

type serveOptions struct {
	config    string
	listen    string
	mappings  string
	logLevel  string
	logFormat string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the conversion HTTP API",
		Long: `Start the HTTP API that serves conversion and mapping-lookup requests.
Configuration is read from poshconv.yaml when present; flags override
file values. The mapping table is loaded once at startup and never
changes while the server runs.`,
		Example: `  # Defaults (listen on :8080, builtin table)
  poshconv serve

  # Custom address and mapping file
  poshconv serve --listen :9090 --mappings etc/mappings.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "Path to a poshconv.yaml config file")
	cmd.Flags().StringVarP(&opts.listen, "listen", "l", "", "Listen address (e.g. :8080)")
	cmd.Flags().StringVar(&opts.mappings, "mappings", "", "Path to a JSON mapping file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Logging level: debug, info, warn, error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log output format: text or json")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cfg, err := resolveServeConfig(opts)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	srv := server.New(cfg.Listen, mapping.Load(cfg.Mappings), logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		stop()
		return srv.Stop(context.Background())
	}
}

// resolveServeConfig merges the config file (explicit path, or
// poshconv.yaml in the working directory when present) with flag
// overrides.
func resolveServeConfig(opts *serveOptions) (*config.Config, error) {
	cfg := config.Default()

	if opts.config != "" {
		loaded, err := config.Load(opts.config)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	} else if loaded, err := config.Load(config.ConfigFileName); err == nil {
		cfg = loaded
	}

	if opts.listen != "" {
		cfg.Listen = opts.listen
	}
	if opts.mappings != "" {
		cfg.Mappings = opts.mappings
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}

	return cfg, nil
}

// newLogger creates a slog.Logger with the configured level and format.
// It does not set the global logger.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
