// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadTailRule_Rewrite(t *testing.T) {
	tests := []struct {
		name            string
		base            string
		args            []string
		wantCommand     string
		wantExplanation string
	}{
		{
			name:            "head count and file",
			base:            "head",
			args:            []string{"-5", "file.txt"},
			wantCommand:     "Get-Content 'file.txt' | Select-Object -First 5",
			wantExplanation: "Shows first 5 lines of file 'file.txt'",
		},
		{
			name:            "head count only",
			base:            "head",
			args:            []string{"-20"},
			wantCommand:     "Select-Object -First 20",
			wantExplanation: "Shows first 20 lines",
		},
		{
			name:            "head default",
			base:            "head",
			args:            nil,
			wantCommand:     "Get-Content | Select-Object -First 10",
			wantExplanation: "Shows first 10 lines (default)",
		},
		{
			name:            "head file without count defaults",
			base:            "head",
			args:            []string{"file.txt"},
			wantCommand:     "Get-Content | Select-Object -First 10",
			wantExplanation: "Shows first 10 lines (default)",
		},
		{
			name:        "tail count and file",
			base:        "tail",
			args:        []string{"-3", "app.log"},
			wantCommand: "Get-Content 'app.log' | Select-Object -Last 3",
		},
		{
			name:            "tail default",
			base:            "tail",
			args:            []string{"file.txt"},
			wantCommand:     "Get-Content | Select-Object -Last 10",
			wantExplanation: "Shows last 10 lines (default)",
		},
		{
			name:        "count copied verbatim after the dash",
			base:        "head",
			args:        []string{"-n"},
			wantCommand: "Select-Object -First n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, explanation := headTailRule{}.Rewrite(tt.base, "", tt.args)
			assert.Equal(t, tt.wantCommand, command)
			if tt.wantExplanation != "" {
				assert.Equal(t, tt.wantExplanation, explanation)
			}
		})
	}
}
