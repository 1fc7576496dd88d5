// Package ssmethod is a subspace-method multiclass classifier for
// moderate-dimensional feature vectors (pixel-vectorized digits and the like).
//
// 🚀 What is ssmethod?
//
//	One linear subspace is learned per class; a sample belongs to the class
//	whose subspace reconstructs it best (largest squared projection norm).
//		• Label coding: arbitrary ordered labels ↔ dense codes
//		• Basis extraction: PCA (SVD or Jacobi), Laplacian (locality
//		  preserving projection), or a custom function
//		• Parallel fit per class, parallel chunked predict
//		• Structured logging (zerolog), Prometheus metrics, YAML configs
//
// Packages:
//
//	labels/       — label ↔ code index
//	matrix/       — validated dense float64 matrices and kernels
//	affinity/     — kNN affinity graphs, degrees, Laplacian, components
//	basis/        — Extractor strategy: PCA, Laplacian, Func
//	subspace/     — Classifier, basis Tensor, Config, Metrics
//	dataset/      — CSV loading, seeded train/test split
//	cmd/ssmethod/ — bench and evaluate commands
//
// Quick start:
//
//	clf, _ := subspace.New[string](subspace.Config{NComponents: 20})
//	_ = clf.Fit(X, y)
//	pred, _ := clf.Predict(Xtest, ytest)
//	acc, ok := clf.Accuracy()
package ssmethod
