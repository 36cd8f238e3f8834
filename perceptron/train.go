package perceptron

import (
	"fmt"

	"github.com/katalvlaran/perceptron/matrix"
)

const opTrain = "Train"

// Train runs the Perceptron on the d×m feature matrix X (samples are
// columns) with labels Y ∈ {-1,+1}^m.
//
// Algorithm Outline:
//  1. Xb = X with a row of ones appended iff opts.UseBias (d' = d+1), else X.
//  2. w_0 = 0 ∈ R^d'. Record w_0 and its empirical risk.
//  3. While some constraint y_i·(w·xb_i) ≤ 0 and t < MaxIterations:
//     a. collect the violated indices in ascending order;
//     b. i = Source.Choose(violated);
//     c. w_{t+1} = w_t + y_i·xb_i (a fresh slice; recorded vectors never change);
//     d. record w_{t+1} and its risk; t++.
//  4. Return (w_T, T, [w_0..w_T], [risk_0..risk_T]).
//
// Non-separable data is not an error: the loop stops at MaxIterations and
// Result.Converged is false.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyInput, ErrBadMaxIterations, ErrDimensionMismatch,
//     ErrInvalidLabel, ErrNonFinite: input validation, before any update.
//   - ErrInvalidChoice: the Source returned an index outside the violated set.
//
// Complexity:
//
//	Time   = O(T·d'·m)
//	Memory = O(T·d' + d'·m)
func Train(X *matrix.Dense, Y []float64, opts Options) (*Result, error) {
	m, err := validateInputs(X, Y, opts)
	if err != nil {
		return nil, perceptronErrorf(opTrain, err)
	}

	Xb, err := Augment(X, opts.UseBias)
	if err != nil {
		return nil, perceptronErrorf(opTrain, err)
	}
	d := Xb.Rows()

	// Extract sample columns once; every update reads exactly one of them.
	samples := make([][]float64, m)
	for j := 0; j < m; j++ {
		if samples[j], err = Xb.Col(j); err != nil {
			return nil, perceptronErrorf(opTrain, err)
		}
	}

	src := opts.Source
	if src == nil {
		src = NewSource(DefaultSeed)
	}

	w := make([]float64, d)
	c, err := Constraints(Xb, Y, w)
	if err != nil {
		return nil, perceptronErrorf(opTrain, err)
	}
	res := &Result{
		Trajectory: [][]float64{w},
		Risks:      []float64{EmpiricalRisk(c)},
	}

	var (
		t        int   // executed updates
		i        int   // chosen sample
		violated []int // violated indices under w_t
	)
	violated = ViolatedIndices(c)
	for len(violated) > 0 && t < opts.MaxIterations {
		i = src.Choose(violated)
		if i < 0 || i >= m || c[i] > 0 {
			return nil, perceptronErrorf(opTrain, fmt.Errorf("step %d: index %d: %w", t+1, i, ErrInvalidChoice))
		}

		if w, err = matrix.AddScaled(w, Y[i], samples[i]); err != nil {
			return nil, perceptronErrorf(opTrain, err)
		}
		if c, err = Constraints(Xb, Y, w); err != nil {
			return nil, perceptronErrorf(opTrain, err)
		}
		violated = ViolatedIndices(c)
		t++

		res.Trajectory = append(res.Trajectory, w)
		res.Risks = append(res.Risks, EmpiricalRisk(c))

		if opts.OnStep != nil {
			opts.OnStep(Step{
				Index:   t,
				Sample:  i,
				Label:   Y[i],
				Weights: append([]float64(nil), w...),
				Risk:    res.Risks[t],
			})
		}
	}

	res.Weights = w
	res.Steps = t
	res.Converged = len(violated) == 0

	return res, nil
}
