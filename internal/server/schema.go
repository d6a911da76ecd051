// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package server

import (
	"net/http"

	"github.com/google/jsonschema-go/jsonschema"
)

// apiSchemas describes the API's request and response bodies as JSON
// Schema, served at GET /schema so clients can discover the wire shapes.
var apiSchemas = map[string]*jsonschema.Schema{
	"convert_request": {
		Type:        "object",
		Description: "Body of POST /convert.",
		Required:    []string{"command"},
		Properties: map[string]*jsonschema.Schema{
			"command":             {Type: "string", Description: "Single-line unix shell command to translate."},
			"include_explanation": {Type: "boolean", Description: "Include a human-readable explanation in the response."},
		},
	},
	"convert_response": {
		Type:     "object",
		Required: []string{"unix_command", "powershell_command", "status"},
		Properties: map[string]*jsonschema.Schema{
			"unix_command":       {Type: "string", Description: "The original input command."},
			"powershell_command": {Type: "string", Description: "The translated PowerShell command text."},
			"explanation":        {Type: "string", Description: "Present only when requested."},
			"status":             {Type: "string"},
		},
	},
	"mappings_response": {
		Type:     "object",
		Required: []string{"mappings", "total_commands"},
		Properties: map[string]*jsonschema.Schema{
			"mappings":       {Type: "object", AdditionalProperties: &jsonschema.Schema{Type: "string"}},
			"total_commands": {Type: "integer"},
		},
	},
	"mapping_response": {
		Type:     "object",
		Required: []string{"unix_command", "powershell_command", "status"},
		Properties: map[string]*jsonschema.Schema{
			"unix_command":       {Type: "string"},
			"powershell_command": {Type: "string"},
			"status":             {Type: "string"},
		},
	},
	"error_response": {
		Type:     "object",
		Required: []string{"error"},
		Properties: map[string]*jsonschema.Schema{
			"error": {Type: "string"},
		},
	},
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apiSchemas)
}
