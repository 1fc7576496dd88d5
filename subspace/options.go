// SPDX-License-Identifier: MIT

package subspace

import "github.com/rs/zerolog"

type options struct {
	log     zerolog.Logger
	metrics *Metrics
}

// Option configures New.
type Option func(*options)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMetrics attaches Prometheus instruments.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func gatherOptions(opts ...Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
