// Package perceptron is the root of a small, dependency-light toolkit for
// training and studying the classical Perceptron on synthetic data.
//
// 🚀 What is inside?
//
//	The module brings together:
//		• Dense linear algebra: column-sample matrices, VecMat, AppendRow
//		• The trainer: randomized mistake-driven updates with a full trace
//		• Fixtures: separable, affine, XOR and contradictory data sets
//		• A driver CLI: single runs and concurrent seed sweeps
//
// ✨ Why?
//
//   - Reproducible – every random choice flows through a seeded Source
//   - Observable – every weight vector and its empirical risk are returned
//   - Strict – malformed input fails fast with sentinel errors, never panics
//   - Extensible – plug a custom Source or an OnStep hook
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/         — Dense matrix, kernels, vector helpers, validators
//	perceptron/     — Train, constraints, risk, prediction, Novikoff bound
//	dataset/        — seeded labeled-data generators
//	cmd/perceptron/ — command-line driver (viper config, slog logging)
//	examples/       — margin study program
//
// Quick start:
//
//	go get github.com/katalvlaran/perceptron
//
//	s, _ := dataset.Separable(3, 100, 0.05, dataset.WithSeed(1))
//	res, _ := perceptron.Train(s.X, s.Y, perceptron.DefaultOptions())
//	fmt.Println(res.Steps, res.Converged)
//
// See the package docs for details on each component.
package perceptron
