// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrepRule_Rewrite(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		wantCommand     string
		wantExplanation string
	}{
		{
			name:            "no args",
			args:            nil,
			wantCommand:     "Select-String",
			wantExplanation: "Searches for patterns in text",
		},
		{
			name:            "pattern only",
			args:            []string{"error"},
			wantCommand:     "Select-String -Pattern 'error'",
			wantExplanation: "Searches for pattern 'error' in input",
		},
		{
			name:            "pattern and file",
			args:            []string{"error", "app.log"},
			wantCommand:     "Select-String -Pattern 'error' -Path 'app.log'",
			wantExplanation: "Searches for pattern 'error' in file 'app.log'",
		},
		{
			name:        "extra args ignored",
			args:        []string{"error", "app.log", "-i"},
			wantCommand: "Select-String -Pattern 'error' -Path 'app.log'",
		},
		{
			name:        "embedded quote inserted verbatim",
			args:        []string{"it's"},
			wantCommand: "Select-String -Pattern 'it's'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, explanation := grepRule{}.Rewrite("grep", "Select-String", tt.args)
			assert.Equal(t, tt.wantCommand, command)
			if tt.wantExplanation != "" {
				assert.Equal(t, tt.wantExplanation, explanation)
			}
		})
	}
}
