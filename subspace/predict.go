// SPDX-License-Identifier: MIT

package subspace

import (
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ssmethod/matrix"
)

// minChunk is the smallest number of samples handed to one scoring goroutine.
const minChunk = 64

// Predict classifies every row of X. See PredictMatrix.
func (c *Classifier[L]) Predict(X [][]float64, y []L) ([]L, error) {
	if _, err := c.current(); err != nil {
		return nil, err
	}
	x, err := matrix.FromRows(X, c.ingestOptions()...)
	if err != nil {
		return nil, invalidInput("X", err)
	}

	return c.PredictMatrix(x, y)
}

// PredictMatrix classifies every row of x.
//
// If y is non-nil it is the ground truth for x: its labels are validated
// before any scoring, and the accuracy of the returned predictions is
// recorded. A nil y clears the recorded accuracy. A failed call leaves the
// recorded accuracy as it was.
//
// Implementation:
//   - Stage 1: snapshot the model (ErrNotFitted), validate x and y.
//   - Stage 2: score all classes for every sample (see Scores).
//   - Stage 3: argmax per row with strict '>' over ascending codes, so the
//     lowest code wins ties.
//   - Stage 4: decode codes to labels; record accuracy.
//
// Errors: ErrNotFitted, ErrInvalidInput, ErrUnknownLabel.
func (c *Classifier[L]) PredictMatrix(x *matrix.Dense, y []L) ([]L, error) {
	start := time.Now()
	m, err := c.current()
	if err != nil {
		return nil, err
	}
	if err = c.checkQuery(m, x); err != nil {
		return nil, err
	}
	n := x.Rows()

	var truth []int
	if y != nil {
		if len(y) != n {
			return nil, invalidf("y has %d labels for %d samples", len(y), n)
		}
		if truth, err = m.index.Encode(y); err != nil {
			return nil, invalidInput("y", err)
		}
	}

	scores, err := c.score(m, x)
	if err != nil {
		return nil, err
	}
	codes := argmaxRows(scores)
	pred, err := m.index.Decode(codes)
	if err != nil {
		return nil, err
	}

	ev := c.log.Info().Int("samples", n)
	if truth != nil {
		correct := 0
		for i, code := range codes {
			if code == truth[i] {
				correct++
			}
		}
		acc := float64(correct) / float64(n)
		c.setAccuracy(acc, true)
		c.metrics.setAccuracy(acc)
		ev = ev.Float64("accuracy", acc)
	} else {
		c.setAccuracy(0, false)
	}

	elapsed := time.Since(start)
	c.metrics.observePredict(elapsed, n)
	ev.Dur("duration", elapsed).Msg("predict complete")

	return pred, nil
}

// Scores returns the n_samples × n_classes decision values
// score[i][c] = Σ_b ⟨bases[c,b], x_i⟩². Column c belongs to Classes()[c].
func (c *Classifier[L]) Scores(X [][]float64) (*matrix.Dense, error) {
	m, err := c.current()
	if err != nil {
		return nil, err
	}
	x, err := matrix.FromRows(X, c.ingestOptions()...)
	if err != nil {
		return nil, invalidInput("X", err)
	}
	if err = c.checkQuery(m, x); err != nil {
		return nil, err
	}

	return c.score(m, x)
}

// checkQuery validates query samples against the fitted model.
func (c *Classifier[L]) checkQuery(m *model[L], x *matrix.Dense) error {
	if err := c.checkSamples(x); err != nil {
		return err
	}
	if d := x.Cols(); d != m.nFeatures {
		return invalidf("X has %d features, model was fitted with %d", d, m.nFeatures)
	}

	return nil
}

// score computes all decision values, splitting rows into chunks scored in
// parallel. Each chunk writes only its own rows of the result.
//
// Implementation:
//   - P = X_chunk · projector gives every ⟨basis, x⟩ at once (chunk × classes·bases).
//   - score[i][c] sums the squares of P[i, c·bases : (c+1)·bases].
func (c *Classifier[L]) score(m *model[L], x *matrix.Dense) (*matrix.Dense, error) {
	n := x.Rows()
	k, b, _ := m.bases.Shape()
	out, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, err
	}

	workers := c.cfg.workers()
	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			idx := make([]int, hi-lo)
			for i := range idx {
				idx[i] = lo + i
			}
			xs, err := x.SelectRows(idx)
			if err != nil {
				return err
			}
			proj, err := matrix.Mul(xs, m.projector)
			if err != nil {
				return err
			}
			for i := range idx {
				p := proj.RawRow(i)
				dst := out.RawRow(lo + i)
				for cl := 0; cl < k; cl++ {
					var s float64
					for _, v := range p[cl*b : (cl+1)*b] {
						s += v * v
					}
					dst[cl] = s
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// argmaxRows returns, per row, the first column holding the row maximum.
// NaN scores never win.
func argmaxRows(s *matrix.Dense) []int {
	codes := make([]int, s.Rows())
	for i := range codes {
		row := s.RawRow(i)
		best := 0
		for cl := 1; cl < len(row); cl++ {
			if row[cl] > row[best] || (math.IsNaN(row[best]) && !math.IsNaN(row[cl])) {
				best = cl
			}
		}
		codes[i] = best
	}

	return codes
}
