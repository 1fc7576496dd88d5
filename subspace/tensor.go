// SPDX-License-Identifier: MIT

package subspace

import (
	"fmt"

	"github.com/katalvlaran/ssmethod/matrix"
)

// Tensor holds every class basis in one flat row-major buffer shaped
// [classes, bases, features]. Block c (bases × features) is class c's basis.
// A Tensor reachable from a fitted Classifier is never mutated.
type Tensor struct {
	classes, bases, features int
	data                     []float64
}

func newTensor(classes, bases, features int) *Tensor {
	return &Tensor{
		classes:  classes,
		bases:    bases,
		features: features,
		data:     make([]float64, classes*bases*features),
	}
}

// Shape returns (classes, bases, features).
func (t *Tensor) Shape() (classes, bases, features int) {
	return t.classes, t.bases, t.features
}

// At returns the element at (class, basis, feature).
func (t *Tensor) At(c, b, f int) (float64, error) {
	if c < 0 || c >= t.classes || b < 0 || b >= t.bases || f < 0 || f >= t.features {
		return 0, fmt.Errorf("subspace: tensor index (%d,%d,%d) out of range [%d,%d,%d]",
			c, b, f, t.classes, t.bases, t.features)
	}

	return t.data[(c*t.bases+b)*t.features+f], nil
}

// Class returns a copy of class c's basis as a bases × features matrix.
func (t *Tensor) Class(c int) (*matrix.Dense, error) {
	if c < 0 || c >= t.classes {
		return nil, fmt.Errorf("subspace: class code %d out of range [0,%d)", c, t.classes)
	}

	return matrix.FromFlat(t.bases, t.features, t.block(c), matrix.WithCopy(), matrix.WithAllowNonFinite())
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	out := *t
	out.data = make([]float64, len(t.data))
	copy(out.data, t.data)

	return &out
}

// block aliases class c's slice of the buffer.
func (t *Tensor) block(c int) []float64 {
	n := t.bases * t.features
	return t.data[c*n : (c+1)*n : (c+1)*n]
}

// setBlock copies b into class c's block. Each class block is disjoint, so
// concurrent setBlock calls for different classes do not race.
func (t *Tensor) setBlock(c int, b *matrix.Dense) {
	copy(t.block(c), b.RawData())
}

// projector returns the flattened tensor transposed to features × (classes·bases),
// so that X·P yields every projection of every sample in one product.
func (t *Tensor) projector() (*matrix.Dense, error) {
	flat, err := matrix.FromFlat(t.classes*t.bases, t.features, t.data, matrix.WithAllowNonFinite())
	if err != nil {
		return nil, err
	}

	return matrix.Transpose(flat)
}
