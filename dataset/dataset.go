// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// Dataset is a set of labeled samples. X[i] is the feature vector of sample i
// and Y[i] its label.
type Dataset struct {
	Features []string // feature column names; nil without a header
	X        [][]float64
	Y        []string
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.X) }

// Options controls CSV parsing.
type Options struct {
	// LabelColumn is the label column index; negative values count from the
	// end, so the default -1 selects the last column.
	LabelColumn int
	// Header skips (and records) a first row of column names.
	Header bool
	// Comma is the field delimiter; 0 means ','.
	Comma rune
}

// DefaultOptions returns the options for a headerless comma-separated file
// with the label in the last column.
func DefaultOptions() Options {
	return Options{LabelColumn: -1}
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Load(f, opts)
}

// Load reads every record from r.
//
// Implementation:
//   - Stage 1: csv.Reader with FieldsPerRecord fixed by the first record, so
//     ragged rows fail with the reader's line information.
//   - Stage 2: resolve the label column once; parse every other cell.
//
// Errors: ErrEmpty, ErrLabelColumn, ErrParse (naming line and column), and
// csv.ParseError for structurally broken input.
func Load(r io.Reader, opts Options) (*Dataset, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	ds := &Dataset{}
	label := -1
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		line++
		if label < 0 {
			if label, err = resolveColumn(opts.LabelColumn, len(rec)); err != nil {
				return nil, err
			}
			if len(rec) < 2 {
				return nil, fmt.Errorf("record has %d column(s), need a label and a feature: %w", len(rec), ErrLabelColumn)
			}
		}
		if opts.Header && line == 1 {
			ds.Features = make([]string, 0, len(rec)-1)
			for j, name := range rec {
				if j != label {
					ds.Features = append(ds.Features, strings.TrimSpace(name))
				}
			}
			continue
		}

		x := make([]float64, 0, len(rec)-1)
		for j, cell := range rec {
			if j == label {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %q: %w", line, j+1, cell, ErrParse)
			}
			x = append(x, v)
		}
		ds.X = append(ds.X, x)
		ds.Y = append(ds.Y, strings.TrimSpace(rec[label]))
	}
	if len(ds.X) == 0 {
		return nil, ErrEmpty
	}

	return ds, nil
}

func resolveColumn(col, width int) (int, error) {
	if col < 0 {
		col += width
	}
	if col < 0 || col >= width {
		return 0, fmt.Errorf("column %d of %d: %w", col, width, ErrLabelColumn)
	}

	return col, nil
}

// Split shuffles the samples with seed and moves ceil(n·testSize) of them
// into the test set. Both halves share no rows; rows are not copied.
//
// Errors: ErrTestSize when testSize is not in (0, 1) or either side would
// be empty.
func (d *Dataset) Split(testSize float64, seed int64) (train, test *Dataset, err error) {
	if !(testSize > 0 && testSize < 1) {
		return nil, nil, fmt.Errorf("%g: %w", testSize, ErrTestSize)
	}
	n := d.Len()
	nTest := int(math.Ceil(float64(n) * testSize))
	if nTest < 1 || nTest >= n {
		return nil, nil, fmt.Errorf("%d of %d samples for test: %w", nTest, n, ErrTestSize)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	train = &Dataset{Features: d.Features, X: make([][]float64, 0, n-nTest), Y: make([]string, 0, n-nTest)}
	test = &Dataset{Features: d.Features, X: make([][]float64, 0, nTest), Y: make([]string, 0, nTest)}
	for i, idx := range perm {
		dst := train
		if i < nTest {
			dst = test
		}
		dst.X = append(dst.X, d.X[idx])
		dst.Y = append(dst.Y, d.Y[idx])
	}

	return train, test, nil
}
