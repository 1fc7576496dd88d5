// SPDX-License-Identifier: MIT

package labels

import (
	"cmp"
	"fmt"
	"slices"
)

// Index is a bijection between sorted distinct labels and codes 0..Len()-1.
type Index[L cmp.Ordered] struct {
	classes []L       // classes[code] = label, ascending
	codes   map[L]int // label -> code
}

// Fit builds an Index from every label in ls.
//
// Implementation:
//   - Stage 1: reject empty input (ErrEmpty) and NaN labels (ErrNaNLabel).
//   - Stage 2: copy, sort ascending, compact duplicates.
//   - Stage 3: build the reverse map.
//
// Complexity: O(n log n) time, O(n) space.
func Fit[L cmp.Ordered](ls []L) (*Index[L], error) {
	if len(ls) == 0 {
		return nil, ErrEmpty
	}
	for i, l := range ls {
		if l != l { // only NaN is unequal to itself
			return nil, fmt.Errorf("position %d: %w", i, ErrNaNLabel)
		}
	}
	classes := slices.Clone(ls)
	slices.Sort(classes)
	classes = slices.Compact(classes)

	codes := make(map[L]int, len(classes))
	for i, l := range classes {
		codes[l] = i
	}

	return &Index[L]{classes: slices.Clip(classes), codes: codes}, nil
}

// Len returns the number of classes.
func (ix *Index[L]) Len() int { return len(ix.classes) }

// Classes returns a copy of the sorted class labels.
func (ix *Index[L]) Classes() []L { return slices.Clone(ix.classes) }

// Code returns the code of l and whether l is known.
func (ix *Index[L]) Code(l L) (int, bool) {
	c, ok := ix.codes[l]
	return c, ok
}

// Label returns the label for code.
func (ix *Index[L]) Label(code int) (L, error) {
	if code < 0 || code >= len(ix.classes) {
		var zero L
		return zero, fmt.Errorf("code %d not in [0, %d): %w", code, len(ix.classes), ErrCodeOutOfRange)
	}

	return ix.classes[code], nil
}

// Encode maps each label to its code.
// The first unseen label fails the whole call with ErrUnknownLabel naming the
// label and its position.
func (ix *Index[L]) Encode(ls []L) ([]int, error) {
	out := make([]int, len(ls))
	for i, l := range ls {
		c, ok := ix.codes[l]
		if !ok {
			return nil, fmt.Errorf("label %v at position %d: %w", l, i, ErrUnknownLabel)
		}
		out[i] = c
	}

	return out, nil
}

// Decode maps each code back to its label.
func (ix *Index[L]) Decode(codes []int) ([]L, error) {
	out := make([]L, len(codes))
	for i, c := range codes {
		if c < 0 || c >= len(ix.classes) {
			return nil, fmt.Errorf("code %d at position %d not in [0, %d): %w",
				c, i, len(ix.classes), ErrCodeOutOfRange)
		}
		out[i] = ix.classes[c]
	}

	return out, nil
}
