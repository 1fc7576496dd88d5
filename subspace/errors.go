// SPDX-License-Identifier: MIT

package subspace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ssmethod/basis"
	"github.com/katalvlaran/ssmethod/labels"
)

var (
	// ErrInvalidInput indicates malformed samples, mismatched lengths, or a
	// configuration that fails validation.
	ErrInvalidInput = errors.New("subspace: invalid input")

	// ErrInsufficientSamples indicates a class with too few samples for the
	// requested basis size. It is the basis package sentinel.
	ErrInsufficientSamples = basis.ErrInsufficientSamples

	// ErrUnknownLabel indicates a ground-truth label not seen during Fit.
	// It is the labels package sentinel.
	ErrUnknownLabel = labels.ErrUnknownLabel

	// ErrNotFitted indicates Predict (or a model accessor) before Fit.
	ErrNotFitted = errors.New("subspace: classifier is not fitted")

	// ErrUnsupportedConfiguration indicates a recognized but unimplemented
	// setting, such as ensembling.
	ErrUnsupportedConfiguration = errors.New("subspace: unsupported configuration")
)

// ClassError reports a basis extraction failure for one class.
type ClassError struct {
	Code  int   // class code
	Label any   // original class label
	Err   error // extractor error
}

// Error implements error.
func (e *ClassError) Error() string {
	return fmt.Sprintf("subspace: class %v (code %d): %v", e.Label, e.Code, e.Err)
}

// Unwrap exposes the extractor error to errors.Is / errors.As.
func (e *ClassError) Unwrap() error { return e.Err }

// invalidf wraps a formatted message with ErrInvalidInput.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// invalidInput marks err as ErrInvalidInput while keeping it matchable.
func invalidInput(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidInput, op, err)
}
