// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindRule_Rewrite(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		wantCommand     string
		wantExplanation string
	}{
		{
			name:            "no args",
			args:            nil,
			wantCommand:     "Get-ChildItem -Recurse",
			wantExplanation: "Finds files and directories",
		},
		{
			name:            "-name with pattern",
			args:            []string{"-name", "*.go"},
			wantCommand:     "Get-ChildItem -Recurse -Name '**.go*'",
			wantExplanation: "Finds files matching pattern '*.go'",
		},
		{
			name:        "-name after path",
			args:        []string{".", "-name", "main.go"},
			wantCommand: "Get-ChildItem -Recurse -Name '*main.go*'",
		},
		{
			name:            "positional path",
			args:            []string{"/var/log"},
			wantCommand:     "Get-ChildItem -Path '/var/log' -Recurse",
			wantExplanation: "Lists all files in directory '/var/log' recursively",
		},
		{
			name:        "trailing -name treated as path",
			args:        []string{"-name"},
			wantCommand: "Get-ChildItem -Path '-name' -Recurse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, explanation := findRule{}.Rewrite("find", "Get-ChildItem -Recurse", tt.args)
			assert.Equal(t, tt.wantCommand, command)
			if tt.wantExplanation != "" {
				assert.Equal(t, tt.wantExplanation, explanation)
			}
		})
	}
}
