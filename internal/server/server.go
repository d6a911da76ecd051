// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

// Package server exposes the conversion engine over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/poshconv/cli/internal/convert"
	"github.com/poshconv/cli/internal/mapping"
)

// ShutdownTimeout bounds how long Stop waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server serves the conversion API.
type Server struct {
	store      *mapping.Store
	engine     *convert.Engine
	logger     *slog.Logger
	httpServer *http.Server
}

// New creates a Server listening on addr, backed by the given mapping
// table.
func New(addr string, store *mapping.Store, logger *slog.Logger) *Server {
	s := &Server{
		store:  store,
		engine: convert.NewEngine(store),
		logger: logger,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the full route table wrapped in the request-logging
// middleware. Exposed separately so tests can drive it with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /convert", s.handleConvert)
	mux.HandleFunc("GET /mappings", s.handleMappings)
	mux.HandleFunc("GET /mappings/{name}", s.handleMapping)
	mux.HandleFunc("GET /schema", s.handleSchema)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.withRequestLog(mux)
}

// Start runs the HTTP server until Stop is called. It returns nil on
// graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("conversion API listening",
		"address", s.httpServer.Addr,
		"mappings", s.store.Len(),
		"mapping_source", s.store.Source())

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully, waiting up to ShutdownTimeout
// for in-flight requests to finish.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down conversion API")

	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
