// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package convert

// StatusSuccess is the status reported for every conversion, including
// soft misses on unmapped commands.
const StatusSuccess = "success"

// Result is the outcome of one conversion.
//
// Explanation is always populated by the engine; callers that were not
// asked for an explanation drop it before emitting the result.
type Result struct {
	UnixCommand       string `json:"unix_command"`
	PowerShellCommand string `json:"powershell_command"`
	Explanation       string `json:"explanation,omitempty"`
	Status            string `json:"status"`
}
