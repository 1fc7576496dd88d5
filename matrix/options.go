// SPDX-License-Identifier: MIT
// Package matrix: functional options for input ingestion.
//
// Purpose:
//   - Configure FromRows/FromFlat without widening their signatures.
//   - Keep the numeric policy (reject NaN/±Inf) in one place.

package matrix

// DefaultValidateNaNInf is the ingestion default: non-finite values are rejected.
const DefaultValidateNaNInf = true

// Options holds the ingestion policy assembled from Option values.
type Options struct {
	validateNaNInf bool // reject NaN/±Inf during ingestion when true
	copyData       bool // FromFlat: copy the caller slice instead of adopting it
}

// Option mutates Options; options are applied left to right.
type Option func(*Options)

// WithAllowNonFinite disables the NaN/±Inf check during ingestion.
// Scores computed from such inputs are themselves non-finite; use only when
// the caller sanitizes downstream.
func WithAllowNonFinite() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithValidateNonFinite restores the default NaN/±Inf rejection.
func WithValidateNonFinite() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithCopy makes FromFlat copy the backing slice. FromRows always copies.
func WithCopy() Option {
	return func(o *Options) { o.copyData = true }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
