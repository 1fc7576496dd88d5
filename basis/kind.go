// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"

	"github.com/katalvlaran/ssmethod/matrix"
)

// Extractor produces a size × n_features basis from one class's samples.
// Implementations must be safe for concurrent use: the classifier calls
// Extract for several classes at once.
type Extractor interface {
	Extract(samples *matrix.Dense, size int) (*matrix.Dense, error)
}

// Kind names a built-in extraction strategy.
type Kind int

const (
	// KindPCA selects principal component analysis.
	KindPCA Kind = iota
	// KindLaplacian selects locality preserving projection.
	KindLaplacian
	// KindCustom selects a caller-supplied Func.
	KindCustom
)

// String returns the configuration spelling of k.
func (k Kind) String() string {
	switch k {
	case KindPCA:
		return "pca"
	case KindLaplacian:
		return "laplacian"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts "pca" (or ""), "laplacian" and "custom".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "pca":
		return KindPCA, nil
	case "laplacian":
		return KindLaplacian, nil
	case "custom":
		return KindCustom, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
	}
}

// Func adapts a plain function to Extractor. The returned matrix must be
// size × n_features; its rows are used as-is, so the caller is responsible
// for orthonormality.
type Func func(samples *matrix.Dense, size int) (*matrix.Dense, error)

// Extract calls f and checks the shape of its result.
func (f Func) Extract(samples *matrix.Dense, size int) (*matrix.Dense, error) {
	const op = "Func"
	if f == nil {
		return nil, basisErrorf(op, ErrNilFunc)
	}
	_, cols, err := checkRequest(op, samples, size)
	if err != nil {
		return nil, err
	}
	out, err := f(samples, size)
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	if out == nil {
		return nil, basisErrorf(op, fmt.Errorf("nil result: %w", ErrBadBasisShape))
	}
	if r, c := out.Shape(); r != size || c != cols {
		return nil, basisErrorf(op, fmt.Errorf("got %dx%d, want %dx%d: %w", r, c, size, cols, ErrBadBasisShape))
	}

	return out, nil
}

var (
	_ Extractor = Func(nil)
	_ Extractor = (*PCA)(nil)
	_ Extractor = (*Laplacian)(nil)
)
