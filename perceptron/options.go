package perceptron

// DefaultMaxIterations approximates "run until convergence".
const DefaultMaxIterations = 1_000_000

// DefaultSeed seeds the source used when Options.Source is nil.
const DefaultSeed int64 = 42

// Options configures Train.
//
// Fields:
//   - UseBias       — append a constant-1 feature so the separator may be
//     affine; the bias is the last weight.
//   - MaxIterations — upper bound on update steps; 0 returns the initial
//     state only. Negative values are rejected.
//   - Source        — picks the violated sample to correct. nil ⇒
//     NewSource(DefaultSeed).
//   - OnStep        — optional hook called after every update.
type Options struct {
	UseBias       bool
	MaxIterations int
	Source        Source
	OnStep        func(Step)
}

// DefaultOptions returns an Options with bias enabled, a budget of
// DefaultMaxIterations and the default deterministic source.
func DefaultOptions() Options {
	return Options{
		UseBias:       true,
		MaxIterations: DefaultMaxIterations,
	}
}
