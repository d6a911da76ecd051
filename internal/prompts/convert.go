// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package prompts

import "github.com/charmbracelet/huh"

// RunConvertForm asks for the unix command line to translate and whether
// to include an explanation. Fields already filled in are skipped.
func RunConvertForm(command *string, explain *bool) error {
	var fields []huh.Field

	if *command == "" {
		fields = append(fields,
			huh.NewInput().
				Title("Unix command").
				Placeholder("ls -la").
				Validate(requiredValidator("command")).
				Value(command))
	}

	fields = append(fields,
		huh.NewConfirm().
			Title("Include explanation?").
			Value(explain))

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme())
	return form.Run()
}
