package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, modeTrain, cfg.Mode)
	assert.Equal(t, "separable", cfg.Dataset)
	assert.Equal(t, 2, cfg.Dims)
	assert.Equal(t, 100, cfg.Samples)
	assert.Equal(t, 0.05, cfg.Margin)
	assert.True(t, cfg.Bias)
	assert.Equal(t, 1_000_000, cfg.MaxIterations)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Empty(t, cfg.File)
}

func TestLoadConfig_FlagsAndMode(t *testing.T) {
	cfg, err := loadConfig([]string{
		"sweep", "--dataset=xor", "--samples", "12", "--bias=false",
		"--max-iterations", "50", "--runs", "3", "--workers", "2",
		"--log-format", "json", "--log-level", "debug", "--trace",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, modeSweep, cfg.Mode)
	assert.Equal(t, "xor", cfg.Dataset)
	assert.Equal(t, 12, cfg.Samples)
	assert.False(t, cfg.Bias)
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, 3, cfg.Runs)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.Trace)
}

func TestLoadConfig_EnvOverridesDefaultsNotFlags(t *testing.T) {
	t.Setenv("PERCEPTRON_MAX_ITERATIONS", "77")
	t.Setenv("PERCEPTRON_DATA_SEED", "9")
	t.Setenv("PERCEPTRON_DIMS", "5")

	cfg, err := loadConfig([]string{"--dims", "3"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.MaxIterations)
	assert.Equal(t, int64(9), cfg.DataSeed)
	assert.Equal(t, 3, cfg.Dims, "explicit flag wins over environment")
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perceptron.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset: affine\noffset: -0.5\nsamples: 40\n"), 0o600))

	cfg, err := loadConfig([]string{"--config", path, "--samples", "30"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "affine", cfg.Dataset)
	assert.Equal(t, -0.5, cfg.Offset)
	assert.Equal(t, 30, cfg.Samples, "explicit flag wins over config file")

	_, err = loadConfig([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	assert.ErrorContains(t, err, "read config error")
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	cases := map[string][]string{
		"unknown mode":     {"evaluate"},
		"extra positional": {"train", "sweep"},
		"unknown dataset":  {"--dataset", "spiral"},
		"zero dims":        {"--dims", "0"},
		"margin too large": {"--margin", "1"},
		"negative budget":  {"--max-iterations", "-1"},
		"zero runs":        {"--runs", "0"},
		"bad log level":    {"--log-level", "verbose"},
		"bad log format":   {"--log-format", "xml"},
		"unknown flag":     {"--learning-rate", "0.1"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(args, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_Help(t *testing.T) {
	_, err := loadConfig([]string{"--help"}, io.Discard)
	assert.ErrorIs(t, err, errHelp)
}
