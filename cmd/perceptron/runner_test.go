package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg, err := loadConfig(args, io.Discard)
	require.NoError(t, err)

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunTrain_SeparableConverges(t *testing.T) {
	cfg := testConfig(t, "--dataset", "separable", "--dims", "3", "--samples", "50", "--margin", "0.1", "--bias=false")

	res, err := runTrain(cfg, discardLogger())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Len(t, res.Weights, 3)
	assert.Len(t, res.Trajectory, res.Steps+1)
}

func TestRunTrain_ContradictionHitsBudget(t *testing.T) {
	cfg := testConfig(t, "--dataset", "contradiction", "--max-iterations", "15")

	res, err := runTrain(cfg, discardLogger())
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 15, res.Steps)
}

func TestRunTrain_DatasetError(t *testing.T) {
	cfg := testConfig(t, "--dataset", "xor", "--samples", "3")

	_, err := runTrain(cfg, discardLogger())
	assert.Error(t, err)
}

func TestRunSweep_ReproducibleAcrossWorkerCounts(t *testing.T) {
	args := []string{"sweep", "--dataset", "affine", "--dims", "2", "--samples", "40", "--runs", "6", "--train-seed", "5"}

	serial, err := runSweep(context.Background(), testConfig(t, append(args, "--workers", "1")...), discardLogger())
	require.NoError(t, err)
	parallel, err := runSweep(context.Background(), testConfig(t, append(args, "--workers", "4")...), discardLogger())
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
	assert.Equal(t, 6, serial.Runs)
	assert.Equal(t, 6, serial.Converged)
	assert.LessOrEqual(t, serial.MinSteps, serial.MaxSteps)
}

func TestRunSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runSweep(ctx, testConfig(t, "sweep", "--runs", "4"), discardLogger())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_ExitCodes(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"--dataset", "contradiction", "--max-iterations", "5", "--log-format", "json"}, &stdout, &stderr)
	assert.Equal(t, 0, code, "non-convergence is a successful run")
	assert.Contains(t, stdout.String(), `"msg":"iteration budget exhausted"`)

	stdout.Reset()
	code = run(context.Background(), []string{"--trace", "--dataset", "separable", "--samples", "10"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "msg=step")
	assert.Contains(t, stdout.String(), "msg=\"training converged\"")

	stderr.Reset()
	code = run(context.Background(), []string{"--dims", "0"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stderr.String(), "perceptron: "))

	stdout.Reset()
	code = run(context.Background(), []string{"--dataset", "xor", "--samples", "2"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "run failed")
}
