// Command perceptron generates a labeled dataset and trains a Perceptron on
// it, reporting the step count, final weights and risk trajectory.
//
// Usage:
//
//	perceptron [train|sweep] [flags]
//
// train runs once with --train-seed. sweep runs --runs trainings
// concurrently, each with a source derived from --train-seed, and reports
// the spread of step counts. Every flag can also be set through a
// PERCEPTRON_* environment variable (PERCEPTRON_MAX_ITERATIONS=500) or a
// config file given with --config.
//
// Exit status is 0 when training completes, converged or not, and 1 on
// configuration, dataset or validation errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process plumbing; it returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, stderr)
	if errors.Is(err, errHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "perceptron:", err)
		return 1
	}

	logger, closer := newLogger(cfg.LogConfig, stdout)
	defer closer.Close()

	switch cfg.Mode {
	case modeSweep:
		_, err = runSweep(ctx, cfg, logger)
	default:
		_, err = runTrain(cfg, logger)
	}
	if err != nil {
		logger.Error("run failed", "mode", cfg.Mode, "error", err)
		return 1
	}

	return 0
}
