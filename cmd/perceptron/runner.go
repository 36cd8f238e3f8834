package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/perceptron/dataset"
	"github.com/katalvlaran/perceptron/perceptron"
)

// buildDataset generates the configured sample set.
func buildDataset(cfg *Config) (*dataset.Set, error) {
	seed := dataset.WithSeed(cfg.DataSeed)
	switch cfg.Dataset {
	case "separable":
		return dataset.Separable(cfg.Dims, cfg.Samples, cfg.Margin, seed)
	case "affine":
		return dataset.Affine(cfg.Dims, cfg.Samples, cfg.Offset, cfg.Margin, seed)
	case "xor":
		return dataset.XOR(cfg.Samples, seed)
	case "contradiction":
		return dataset.Contradiction()
	default:
		return nil, fmt.Errorf("unknown dataset %q", cfg.Dataset)
	}
}

// mistakeBound returns Novikoff's bound for the run, or 0 when the dataset
// has no reference separator usable with the configured bias setting.
func mistakeBound(s *dataset.Set, useBias bool) float64 {
	if s.Separator == nil || s.Bias && !useBias {
		return 0
	}
	u := s.Separator
	if useBias && !s.Bias {
		// a homogeneous separator is an affine one with zero bias
		u = append(append([]float64(nil), u...), 0)
	}
	bound, err := perceptron.MistakeBound(s.X, s.Y, u, useBias)
	if err != nil {
		return 0
	}

	return bound
}

// trainOptions maps the configuration onto library options.
func trainOptions(cfg *Config, src perceptron.Source, logger *slog.Logger) perceptron.Options {
	opts := perceptron.DefaultOptions()
	opts.UseBias = cfg.Bias
	opts.MaxIterations = cfg.MaxIterations
	opts.Source = src
	if cfg.Trace {
		opts.OnStep = func(s perceptron.Step) {
			logger.Info("step", "t", s.Index, "sample", s.Sample, "label", s.Label,
				"weights", s.Weights, "risk", s.Risk)
		}
	}

	return opts
}

// runTrain performs a single training run and logs its outcome.
func runTrain(cfg *Config, logger *slog.Logger) (*perceptron.Result, error) {
	s, err := buildDataset(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset ready", "kind", cfg.Dataset, "dims", s.Dim(), "samples", s.Len())

	src := perceptron.NewSource(cfg.TrainSeed)
	res, err := perceptron.Train(s.X, s.Y, trainOptions(cfg, src, logger))
	if err != nil {
		return nil, err
	}

	attrs := []any{
		"seed", src.Seed(),
		"steps", res.Steps,
		"converged", res.Converged,
		"final_risk", res.FinalRisk(),
		"weights", res.Weights,
	}
	if bound := mistakeBound(s, cfg.Bias); bound > 0 {
		attrs = append(attrs, "mistake_bound", bound)
	}
	if res.Converged {
		logger.Info("training converged", attrs...)
	} else {
		logger.Warn("iteration budget exhausted", attrs...)
	}
	logger.Debug("risk trajectory", "risks", res.Risks)

	return res, nil
}

// SweepSummary aggregates the step counts of a seed sweep.
type SweepSummary struct {
	Runs      int
	Converged int
	MinSteps  int
	MaxSteps  int
	MeanSteps float64
}

// summarize reduces per-run results; results must be non-empty.
func summarize(results []*perceptron.Result) SweepSummary {
	sum := SweepSummary{Runs: len(results), MinSteps: math.MaxInt}
	total := 0
	for _, r := range results {
		if r.Converged {
			sum.Converged++
		}
		sum.MinSteps = min(sum.MinSteps, r.Steps)
		sum.MaxSteps = max(sum.MaxSteps, r.Steps)
		total += r.Steps
	}
	sum.MeanSteps = float64(total) / float64(len(results))

	return sum
}

// runSweep trains cfg.Runs times on one dataset, each run on its own source
// derived from cfg.TrainSeed, at most cfg.Workers at a time. The derived
// sources depend only on the run index, so results are reproducible
// regardless of scheduling.
func runSweep(ctx context.Context, cfg *Config, logger *slog.Logger) (SweepSummary, error) {
	s, err := buildDataset(cfg)
	if err != nil {
		return SweepSummary{}, err
	}
	logger.Info("dataset ready", "kind", cfg.Dataset, "dims", s.Dim(), "samples", s.Len(), "runs", cfg.Runs)

	// Derive sequentially: DeriveSource consumes the base stream.
	base := perceptron.NewSource(cfg.TrainSeed)
	sources := make([]*perceptron.RandSource, cfg.Runs)
	for k := range sources {
		sources[k] = perceptron.DeriveSource(base, uint64(k))
	}

	results := make([]*perceptron.Result, cfg.Runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for k := range sources {
		k := k // per-iteration copy; go directive is 1.21 (pre-1.22 loopvar semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := perceptron.Train(s.X, s.Y, trainOptions(cfg, sources[k], logger.With("run", k)))
			if err != nil {
				return fmt.Errorf("run %d: %w", k, err)
			}
			results[k] = res
			logger.Debug("run finished", "run", k, "seed", sources[k].Seed(),
				"steps", res.Steps, "converged", res.Converged)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SweepSummary{}, err
	}

	sum := summarize(results)
	attrs := []any{
		"runs", sum.Runs,
		"converged", sum.Converged,
		"min_steps", sum.MinSteps,
		"max_steps", sum.MaxSteps,
		"mean_steps", sum.MeanSteps,
	}
	if bound := mistakeBound(s, cfg.Bias); bound > 0 {
		attrs = append(attrs, "mistake_bound", bound)
	}
	logger.Info("sweep finished", attrs...)

	return sum, nil
}
