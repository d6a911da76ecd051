// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/poshconv/cli/internal/convert"
	"github.com/poshconv/cli/internal/ctxlog"
)

// convertRequest is the body of POST /convert.
type convertRequest struct {
	Command            string `json:"command"`
	IncludeExplanation bool   `json:"include_explanation"`
}

// mappingsResponse is the body of GET /mappings.
type mappingsResponse struct {
	Mappings      map[string]string `json:"mappings"`
	TotalCommands int               `json:"total_commands"`
}

// mappingResponse is the body of GET /mappings/{name}.
type mappingResponse struct {
	UnixCommand       string `json:"unix_command"`
	PowerShellCommand string `json:"powershell_command"`
	Status            string `json:"status"`
}

type indexResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		Message:   "Unix to PowerShell Command Converter API",
		Endpoints: []string{"/convert", "/mappings", "/schema", "/healthz"},
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	if strings.TrimSpace(req.Command) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "command cannot be empty"})
		return
	}

	result := s.engine.Convert(req.Command)
	if !req.IncludeExplanation {
		result.Explanation = ""
	}

	ctxlog.FromContext(r.Context()).Debug("converted command",
		"base", convert.Parse(req.Command).Base,
		"mapped", !strings.HasPrefix(result.PowerShellCommand, "#"))

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMappings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mappingsResponse{
		Mappings:      s.store.All(),
		TotalCommands: s.store.Len(),
	})
}

func (s *Server) handleMapping(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	template, ok := s.store.Get(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("no mapping found for command: %s", name)})
		return
	}

	writeJSON(w, http.StatusOK, mappingResponse{
		UnixCommand:       name,
		PowerShellCommand: template,
		Status:            "found",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
