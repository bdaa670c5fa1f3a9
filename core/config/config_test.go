package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestDefault(t *testing.T) {
	home := withHome(t)

	cfg := Default()
	require.Equal(t, DefaultMaxInput, cfg.MaxInput)
	require.Equal(t, DefaultWorkers, cfg.Workers)
	require.Equal(t, "text", cfg.Format)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, filepath.Join(home, ".factorial", "history"), cfg.HistoryFile)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFileMissing(t *testing.T) {
	withHome(t)

	_, err := LoadConfigFile()
	require.ErrorIs(t, err, os.ErrNotExist)

	cfg, err := LoadOrDefault()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	home := withHome(t)

	want := Config{
		MaxInput:    500,
		HistoryFile: filepath.Join(home, "hist"),
		LogLevel:    "debug",
		Format:      "yaml",
		Workers:     2,
	}
	require.NoError(t, SaveConfigFile(want))

	info, err := os.Stat(filepath.Join(home, ".factorial", "config.json"))
	require.NoError(t, err)
	require.False(t, info.IsDir())

	got, err := LoadConfigFile()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadMergesDefaults(t *testing.T) {
	home := withHome(t)

	dir := filepath.Join(home, ".factorial")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"max_input": 42}`), 0o600))

	cfg, err := LoadConfigFile()
	require.NoError(t, err)
	require.Equal(t, 42, cfg.MaxInput)
	require.Equal(t, DefaultWorkers, cfg.Workers)
	require.Equal(t, DefaultFormat, cfg.Format)
}

func TestLoadInvalid(t *testing.T) {
	home := withHome(t)

	dir := filepath.Join(home, ".factorial")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	path := filepath.Join(dir, "config.json")

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	cfg, err := LoadOrDefault()
	require.Error(t, err)
	require.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(path, []byte(`{"format": "xml"}`), 0o600))
	_, err = LoadConfigFile()
	require.ErrorContains(t, err, `unknown format "xml"`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty fields get defaults", Config{}, ""},
		{"negative max", Config{MaxInput: -1}, "max_input must not be negative, got -1"},
		{"negative workers", Config{Workers: -3}, "workers must not be negative, got -3"},
		{"bad format", Config{Format: "csv"}, `unknown format "csv": must be one of text, json, yaml`},
		{"bad level", Config{LogLevel: "trace"}, `unknown log level "trace": must be one of debug, info, warn, error`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				require.Equal(t, DefaultFormat, tc.cfg.Format)
				require.Equal(t, DefaultLogLevel, tc.cfg.LogLevel)
				return
			}
			require.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	require.NoError(t, validateNonNegative("0"))
	require.NoError(t, validateNonNegative(" 12 "))
	require.Error(t, validateNonNegative("-1"))
	require.Error(t, validateNonNegative("ten"))
}
