// SPDX-License-Identifier: MIT

// Package subspace implements the subspace method for multiclass
// classification.
//
// What
//
//	For each class a low-dimensional linear basis is learned from that
//	class's training samples (package basis). A new sample is assigned to the
//	class whose basis captures the most of it: the largest squared projection
//	norm Σ_b ⟨basis_b, x⟩².
//
// Lifecycle
//
//	A Classifier starts Untrained. A successful Fit makes it Trained; a
//	failed Fit leaves the previous state untouched. Re-fitting rebuilds the
//	whole model and swaps it in atomically, so concurrent Predict calls see
//	either the old or the new model, never a mix.
//
// Determinism
//
//   - Classes are coded 0..n-1 in ascending label order.
//   - Ties in score go to the lowest code.
//   - Predictions keep input order regardless of Workers.
//
// Errors
//
//   - ErrInvalidInput: malformed X, length mismatches, bad configuration.
//   - ErrInsufficientSamples: a class cannot support max_bases directions;
//     reported as *ClassError naming the class.
//   - ErrUnknownLabel: ground-truth labels never seen in Fit.
//   - ErrNotFitted: Predict before a successful Fit.
//   - ErrUnsupportedConfiguration: n_estimators other than 1.
//
// Concurrency
//
//	Fit extracts class bases in parallel (errgroup, bounded by Workers).
//	Predict scores sample chunks in parallel over the frozen basis tensor.
//	All Classifier methods are safe for concurrent use.
package subspace
