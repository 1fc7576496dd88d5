// SPDX-License-Identifier: MIT

package affinity

import "errors"

var (
	// ErrNilSamples indicates Build was called without a sample matrix.
	ErrNilSamples = errors.New("affinity: samples matrix is nil")

	// ErrBadNeighbors indicates a neighbor count below 1.
	ErrBadNeighbors = errors.New("affinity: neighbor count must be >= 1")

	// ErrBadWidth indicates a non-positive or non-finite heat-kernel width.
	ErrBadWidth = errors.New("affinity: heat width must be finite and > 0")

	// ErrBadWeighting indicates a Weighting value outside the declared set.
	ErrBadWeighting = errors.New("affinity: unknown weighting")

	// ErrVertexOutOfRange indicates a sample index outside [0, Order()).
	ErrVertexOutOfRange = errors.New("affinity: vertex out of range")
)
