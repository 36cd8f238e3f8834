package perceptron

// Source draws the violated constraint to correct at each step.
//
// Choose receives the non-empty set of violated sample indices in ascending
// order and must return one of them. Implementations backed by math/rand
// are not goroutine-safe; derive one stream per goroutine (DeriveSource).
type Source interface {
	Choose(indices []int) int
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(indices []int) int

// Choose calls f(indices).
func (f SourceFunc) Choose(indices []int) int { return f(indices) }

// FirstSource always picks the smallest violated index.
// It consumes no randomness, which makes it handy for golden tests.
type FirstSource struct{}

// Choose returns indices[0].
func (FirstSource) Choose(indices []int) int { return indices[0] }

// Result is the outcome of a training run.
type Result struct {
	// Weights is the final weight vector (w_1..w_d, and the bias last when
	// UseBias was set). It is the same slice as Trajectory[Steps].
	Weights []float64

	// Steps is the number of executed updates T (0 ≤ T ≤ MaxIterations).
	Steps int

	// Trajectory holds w_0 (the zero vector) through w_T; len == Steps+1.
	Trajectory [][]float64

	// Risks holds the empirical risk of each Trajectory entry; len == Steps+1.
	Risks []float64

	// Converged reports whether the final weights satisfy every constraint.
	Converged bool
}

// FinalRisk returns the empirical risk of the final weights.
func (r *Result) FinalRisk() float64 {
	return r.Risks[len(r.Risks)-1]
}

// Step describes a single update; it is passed to Options.OnStep.
type Step struct {
	Index   int       // 1-based step number t
	Sample  int       // index of the corrected sample
	Label   float64   // its label y_i
	Weights []float64 // copy of w_t after the update
	Risk    float64   // empirical risk of w_t
}
