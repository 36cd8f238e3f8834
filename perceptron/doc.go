// Package perceptron trains a linear separator with the classical,
// mistake-driven Perceptron algorithm and records its full trajectory.
//
// 🚀 What is the Perceptron?
//
//	Given m labeled samples x_i ∈ R^d with y_i ∈ {-1,+1}, the Perceptron
//	looks for w with y_i·(w·x_i) > 0 for every i. Starting from w = 0 it
//	repeatedly picks one violated sample and applies w ← w + y_i·x_i.
//	For linearly separable data with margin γ and radius R it stops after
//	at most (R/γ)² updates (Novikoff's bound).
//
// ✨ Key features:
//   - homogeneous (sign(w·x)) or affine (sign(w·x + b)) hypotheses via UseBias
//   - injected randomness: the violated sample is drawn through a Source
//   - full trace: every weight vector and its empirical risk are returned
//   - iteration budget: non-separable data terminates at MaxIterations
//   - strict validation with sentinel errors; no panics, no logging
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/perceptron/perceptron"
//
//	opts := perceptron.DefaultOptions()
//	opts.UseBias = true
//	opts.MaxIterations = 10_000
//	opts.Source = perceptron.NewSource(7)
//
//	res, err := perceptron.Train(X, Y, opts) // X is d×m, samples are columns
//	if err != nil { ... }
//	if !res.Converged { ... } // budget exhausted, risk > 0
//
// Performance:
//
//   - Time:   O(T·d·m), every step re-evaluates all m constraints (one VecMat)
//   - Memory: O(T·d) for the trajectory plus O(d·m) for the augmented data
//
// Determinism:
//
//	Violated indices are enumerated in ascending order, so two runs with
//	identical inputs and identically seeded sources return identical results.
package perceptron
