// SPDX-License-Identifier: MIT

package labels

import "errors"

var (
	// ErrEmpty indicates Fit was called without any labels.
	ErrEmpty = errors.New("labels: no labels to fit")

	// ErrNaNLabel indicates a floating-point NaN label. NaN compares unequal
	// to itself, so it can neither be sorted nor looked up.
	ErrNaNLabel = errors.New("labels: NaN label")

	// ErrUnknownLabel indicates a label that was not observed during Fit.
	ErrUnknownLabel = errors.New("labels: unknown label")

	// ErrCodeOutOfRange indicates a code outside [0, Len()).
	ErrCodeOutOfRange = errors.New("labels: code out of range")
)
