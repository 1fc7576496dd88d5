// SPDX-License-Identifier: MIT

// Package labels maps arbitrary ordered class labels onto the dense code range
// 0..n-1 and back.
//
// What
//
//   - Fit collects the distinct labels and sorts them in the natural order of
//     the label type (lexicographic for strings, numeric for numbers).
//     NaN has no place in that order and is rejected with ErrNaNLabel.
//   - Encode maps labels to codes; Decode maps codes back.
//
// Determinism
//
//	Code i always denotes Classes()[i]. The index is immutable after Fit and
//	safe for concurrent use by any number of readers.
//
// Complexity (n = input length, k = distinct labels)
//
//   - Fit: O(n log n). Encode: O(n) expected. Decode: O(n).
package labels
