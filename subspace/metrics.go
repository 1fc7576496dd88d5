// SPDX-License-Identifier: MIT

package subspace

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus instruments a Classifier reports to.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	FitDuration      prometheus.Histogram
	PredictDuration  prometheus.Histogram
	ExtractDuration  *prometheus.HistogramVec // by basis kind
	FitFailures      *prometheus.CounterVec   // by reason
	PredictedSamples prometheus.Counter
	LastAccuracy     prometheus.Gauge
}

// Failure reasons reported on FitFailures.
const (
	reasonInvalidInput  = "invalid_input"
	reasonInsufficient  = "insufficient_samples"
	reasonExtractFailed = "extraction"
)

// NewMetrics creates the instruments and registers them on reg.
// A nil reg skips registration (useful in tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	buckets := []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60}
	m := &Metrics{
		FitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ssmethod_fit_duration_seconds",
			Help:    "Wall time of successful classifier fits.",
			Buckets: buckets,
		}),
		PredictDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ssmethod_predict_duration_seconds",
			Help:    "Wall time of successful predict calls.",
			Buckets: buckets,
		}),
		ExtractDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ssmethod_extract_duration_seconds",
			Help:    "Wall time of one class basis extraction.",
			Buckets: buckets,
		}, []string{"kind"}),
		FitFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ssmethod_fit_failures_total",
			Help: "Failed fits by reason.",
		}, []string{"reason"}),
		PredictedSamples: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ssmethod_predicted_samples_total",
			Help: "Samples classified by successful predict calls.",
		}),
		LastAccuracy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ssmethod_last_accuracy",
			Help: "Accuracy of the most recent predict given ground truth.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.FitDuration, m.PredictDuration, m.ExtractDuration,
		m.FitFailures, m.PredictedSamples, m.LastAccuracy,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeFit(d time.Duration) {
	if m == nil {
		return
	}
	m.FitDuration.Observe(d.Seconds())
}

func (m *Metrics) observeExtract(kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.ExtractDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (m *Metrics) fitFailed(err error) {
	if m == nil {
		return
	}
	reason := reasonExtractFailed
	switch {
	case errors.Is(err, ErrInsufficientSamples):
		reason = reasonInsufficient
	case errors.Is(err, ErrInvalidInput):
		reason = reasonInvalidInput
	}
	m.FitFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) observePredict(d time.Duration, samples int) {
	if m == nil {
		return
	}
	m.PredictDuration.Observe(d.Seconds())
	m.PredictedSamples.Add(float64(samples))
}

func (m *Metrics) setAccuracy(acc float64) {
	if m == nil {
		return
	}
	m.LastAccuracy.Set(acc)
}
