// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/poshconv/cli/internal/ctxlog"
)

// withRequestLog tags each request with a uuid, embeds a request-scoped
// logger in the context, and turns handler panics into a 500 so one bad
// request never takes the process down.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		logger := s.logger.With("request_id", requestID)

		w.Header().Set("X-Request-Id", requestID)

		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("handler panicked", "method", r.Method, "path", r.URL.Path, "panic", rec)
				writeJSON(w, http.StatusInternalServerError,
					errorResponse{Error: fmt.Sprintf("error converting command: %v", rec)})
			}
		}()

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctxlog.WithLogger(r.Context(), logger)))
		logger.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration", time.Since(start))
	})
}
