// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKillRule_Rewrite(t *testing.T) {
	command, explanation := killRule{}.Rewrite("kill", "Stop-Process", []string{"1234"})
	assert.Equal(t, "Stop-Process -Id 1234", command)
	assert.Equal(t, "Terminates process with ID 1234", explanation)

	command, explanation = killRule{}.Rewrite("kill", "Stop-Process", nil)
	assert.Equal(t, "Stop-Process", command)
	assert.Equal(t, "Terminates processes", explanation)

	// Only the first argument is used; signals are not interpreted.
	command, _ = killRule{}.Rewrite("kill", "Stop-Process", []string{"-9", "1234"})
	assert.Equal(t, "Stop-Process -Id -9", command)
}
