// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrEmpty indicates a source without any sample rows.
	ErrEmpty = errors.New("dataset: no samples")

	// ErrLabelColumn indicates a label column outside the record.
	ErrLabelColumn = errors.New("dataset: label column out of range")

	// ErrParse indicates a feature cell that is not a number.
	ErrParse = errors.New("dataset: malformed feature value")

	// ErrTestSize indicates a test fraction outside (0, 1) or a split that
	// would leave one side empty.
	ErrTestSize = errors.New("dataset: invalid test size")
)
