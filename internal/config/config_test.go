// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "poshconv.yaml")

	cfg := Config{
		Version:  1,
		Listen:   ":9090",
		Mappings: "etc/mappings.json",
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.Listen, loaded.Listen)
	assert.Equal(t, cfg.Mappings, loaded.Mappings)
}

func TestConfig_LoadAppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "poshconv.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: 1\n"), 0o600))

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, DefaultListen, loaded.Listen)
	assert.Equal(t, DefaultMappings, loaded.Mappings)
	assert.Equal(t, DefaultLogLevel, loaded.LogLevel)
	assert.Equal(t, DefaultLogFormat, loaded.LogFormat)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     *Default(),
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99, LogLevel: "info", LogFormat: "text"},
			wantErr: "unsupported config version",
		},
		{
			name:    "invalid log level",
			cfg:     Config{Version: 1, LogLevel: "verbose", LogFormat: "text"},
			wantErr: "invalid log_level",
		},
		{
			name:    "invalid log format",
			cfg:     Config{Version: 1, LogLevel: "info", LogFormat: "xml"},
			wantErr: "invalid log_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	badFile := filepath.Join(tmpDir, "bad.yaml")
	require.NoError(t, os.WriteFile(badFile, []byte("version: [not an int\n"), 0o600))

	_, err := Load(badFile)
	assert.Error(t, err)
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	cfg := Default()

	err := cfg.Save("/nonexistent/directory/poshconv.yaml")
	assert.Error(t, err)
}
