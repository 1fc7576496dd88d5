// SPDX-License-Identifier: MIT

package affinity

import (
	"fmt"
	"math"
)

// Weighting selects how kNN edges are weighted.
type Weighting int

const (
	// WeightAdjacency gives every kNN edge weight 1 (self included).
	WeightAdjacency Weighting = iota
	// WeightHeat weighs an edge by the heat kernel exp(−d²/width²).
	WeightHeat
)

// String returns the configuration spelling of w.
func (w Weighting) String() string {
	switch w {
	case WeightAdjacency:
		return "adjacency"
	case WeightHeat:
		return "heat"
	default:
		return fmt.Sprintf("Weighting(%d)", int(w))
	}
}

// ParseWeighting accepts "adjacency" (or "") and "heat".
func ParseWeighting(s string) (Weighting, error) {
	switch s {
	case "", "adjacency":
		return WeightAdjacency, nil
	case "heat":
		return WeightHeat, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrBadWeighting)
	}
}

// Default graph parameters.
const (
	DefaultNeighbors = 5
	DefaultHeatWidth = 1.0
)

type config struct {
	neighbors int
	weighting Weighting
	width     float64
}

// Option configures Build.
type Option func(*config)

// WithNeighbors sets k, the number of nearest neighbors per sample.
// k larger than the sample count is clamped.
func WithNeighbors(k int) Option {
	return func(c *config) { c.neighbors = k }
}

// WithWeighting selects the edge weighting.
func WithWeighting(w Weighting) Option {
	return func(c *config) { c.weighting = w }
}

// WithHeatWidth sets the heat-kernel width (WeightHeat only).
func WithHeatWidth(width float64) Option {
	return func(c *config) { c.width = width }
}

func newConfig(opts ...Option) (config, error) {
	c := config{neighbors: DefaultNeighbors, weighting: WeightAdjacency, width: DefaultHeatWidth}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.neighbors < 1 {
		return c, ErrBadNeighbors
	}
	if c.weighting != WeightAdjacency && c.weighting != WeightHeat {
		return c, ErrBadWeighting
	}
	if c.weighting == WeightHeat && (c.width <= 0 || math.IsNaN(c.width) || math.IsInf(c.width, 0)) {
		return c, ErrBadWidth
	}

	return c, nil
}
