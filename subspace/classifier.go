// SPDX-License-Identifier: MIT

package subspace

import (
	"cmp"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ssmethod/basis"
	"github.com/katalvlaran/ssmethod/labels"
	"github.com/katalvlaran/ssmethod/matrix"
)

// Classifier is a subspace-method classifier over labels of type L.
type Classifier[L cmp.Ordered] struct {
	cfg       Config
	kind      basis.Kind
	extractor basis.Extractor
	log       zerolog.Logger
	metrics   *Metrics

	mu    sync.RWMutex
	model *model[L] // nil while Untrained

	accMu  sync.Mutex
	acc    float64
	accSet bool
}

// model is everything a successful Fit produces. It is immutable once published.
type model[L cmp.Ordered] struct {
	index     *labels.Index[L]
	bases     *Tensor
	projector *matrix.Dense // features × (classes·bases)
	nFeatures int
}

// New validates cfg and builds the configured extractor once.
//
// Errors:
//   - ErrUnsupportedConfiguration for n_estimators other than 1.
//   - ErrInvalidInput for any other configuration problem.
func New[L cmp.Ordered](cfg Config, opts ...Option) (*Classifier[L], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	kind, err := basis.ParseKind(cfg.BasisType)
	if err != nil {
		return nil, invalidInput("basis_type", err)
	}
	ext, err := newExtractor(cfg, kind, o.log)
	if err != nil {
		return nil, err
	}

	return &Classifier[L]{
		cfg:       cfg,
		kind:      kind,
		extractor: ext,
		log:       o.log,
		metrics:   o.metrics,
	}, nil
}

// newExtractor maps the configuration onto a basis.Extractor.
func newExtractor(cfg Config, kind basis.Kind, log zerolog.Logger) (basis.Extractor, error) {
	switch kind {
	case basis.KindLaplacian:
		graph, err := cfg.graphOptions()
		if err != nil {
			return nil, invalidInput("weight", err)
		}
		l, err := basis.NewLaplacian(
			basis.WithGraph(graph...),
			basis.WithLogger(log.With().Str("component", "laplacian").Logger()),
		)
		if err != nil {
			return nil, invalidInput("laplacian", err)
		}
		return l, nil
	case basis.KindCustom:
		return cfg.BasisFunc, nil
	default:
		solver, err := basis.ParseSolver(cfg.Solver)
		if err != nil {
			return nil, invalidInput("solver", err)
		}
		p, err := basis.NewPCA(basis.WithSolver(solver))
		if err != nil {
			return nil, invalidInput("solver", err)
		}
		return p, nil
	}
}

// Config returns the configuration the classifier was built with.
func (c *Classifier[L]) Config() Config { return c.cfg }

// Fit learns one basis per class from X (n_samples × n_features) and y.
// See FitMatrix.
func (c *Classifier[L]) Fit(X [][]float64, y []L) error {
	x, err := matrix.FromRows(X, c.ingestOptions()...)
	if err != nil {
		return c.fitFailed(invalidInput("X", err))
	}

	return c.FitMatrix(x, y)
}

// FitMatrix learns one basis per class.
//
// Implementation:
//   - Stage 1: validate X, len(y) and max_bases ≤ n_features (ErrInvalidInput).
//   - Stage 2: fit the label index and encode y.
//   - Stage 3: partition sample rows by code, keeping their original order.
//   - Stage 4: extract every class basis in parallel; each worker writes
//     only its own tensor block. Every failure is collected and the one with
//     the lowest class code is returned as *ClassError.
//   - Stage 5: publish the new model. On any error the previous state stays.
//
// Complexity: Σ_c cost(Extract(n_c, d)) spread over Workers goroutines.
func (c *Classifier[L]) FitMatrix(x *matrix.Dense, y []L) error {
	if err := c.fit(x, y); err != nil {
		return c.fitFailed(err)
	}

	return nil
}

// fitFailed counts and logs a rejected fit, then returns err unchanged.
// Every Fit entry point reports through here exactly once.
func (c *Classifier[L]) fitFailed(err error) error {
	c.metrics.fitFailed(err)
	c.log.Warn().Err(err).Msg("fit failed")

	return err
}

func (c *Classifier[L]) fit(x *matrix.Dense, y []L) error {
	start := time.Now()
	if err := c.checkSamples(x); err != nil {
		return err
	}
	n, d := x.Shape()
	if len(y) != n {
		return invalidf("y has %d labels for %d samples", len(y), n)
	}
	size := c.cfg.Bases()
	if size > d {
		field := "n_components"
		if c.cfg.MaxBases > 0 {
			field = "max_bases"
		}
		return invalidf("%s %d exceeds n_features %d", field, size, d)
	}

	index, err := labels.Fit(y)
	if err != nil {
		return invalidInput("y", err)
	}
	codes, err := index.Encode(y)
	if err != nil {
		return invalidInput("y", err)
	}
	k := index.Len()
	groups := make([][]int, k)
	for i, code := range codes {
		groups[code] = append(groups[code], i)
	}

	tensor := newTensor(k, size, d)
	errs := make([]error, k)
	var g errgroup.Group
	g.SetLimit(c.cfg.workers())
	for code := range groups {
		code := code
		g.Go(func() error {
			errs[code] = c.extractClass(x, groups[code], code, size, tensor)
			return nil
		})
	}
	_ = g.Wait()

	for code, e := range errs {
		if e != nil {
			label, _ := index.Label(code)
			return &ClassError{Code: code, Label: label, Err: e}
		}
	}

	proj, err := tensor.projector()
	if err != nil {
		return err
	}
	next := &model[L]{index: index, bases: tensor, projector: proj, nFeatures: d}
	c.mu.Lock()
	c.model = next
	c.mu.Unlock()

	elapsed := time.Since(start)
	c.metrics.observeFit(elapsed)
	c.log.Info().
		Int("classes", k).
		Int("samples", n).
		Int("features", d).
		Int("size", size).
		Str("basis", c.kind.String()).
		Dur("duration", elapsed).
		Msg("fit complete")

	return nil
}

// extractClass runs the extractor on one class partition and stores the result.
func (c *Classifier[L]) extractClass(x *matrix.Dense, rows []int, code, size int, t *Tensor) error {
	start := time.Now()
	sub, err := x.SelectRows(rows)
	if err != nil {
		return err
	}
	b, err := c.extractor.Extract(sub, size)
	if err != nil {
		return err
	}
	if r, cols := b.Shape(); r != size || cols != t.features {
		return fmt.Errorf("extractor returned %dx%d, want %dx%d: %w", r, cols, size, t.features, basis.ErrBadBasisShape)
	}
	t.setBlock(code, b)

	elapsed := time.Since(start)
	c.metrics.observeExtract(c.kind.String(), elapsed)
	c.log.Debug().
		Int("code", code).
		Int("samples", len(rows)).
		Int("size", size).
		Dur("duration", elapsed).
		Msg("class basis extracted")

	return nil
}

// ingestOptions returns the matrix ingestion policy for samples.
func (c *Classifier[L]) ingestOptions() []matrix.Option {
	if c.cfg.AllowNonFinite {
		return []matrix.Option{matrix.WithAllowNonFinite()}
	}
	return nil
}

// checkSamples applies the sample policy to a caller-built matrix.
func (c *Classifier[L]) checkSamples(x *matrix.Dense) error {
	if err := matrix.ValidateNotNil(x); err != nil {
		return invalidInput("X", err)
	}
	if c.cfg.AllowNonFinite {
		return nil
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return invalidInput("X", err)
	}

	return nil
}

// current returns the published model or ErrNotFitted.
func (c *Classifier[L]) current() (*model[L], error) {
	c.mu.RLock()
	m := c.model
	c.mu.RUnlock()
	if m == nil {
		return nil, ErrNotFitted
	}

	return m, nil
}

// Fitted reports whether a Fit has succeeded.
func (c *Classifier[L]) Fitted() bool {
	_, err := c.current()
	return err == nil
}

// NFeatures returns the training feature dimensionality, or 0 when Untrained.
func (c *Classifier[L]) NFeatures() int {
	m, err := c.current()
	if err != nil {
		return 0
	}
	return m.nFeatures
}

// Classes returns the sorted class labels; code i is Classes()[i].
func (c *Classifier[L]) Classes() ([]L, error) {
	m, err := c.current()
	if err != nil {
		return nil, err
	}
	return m.index.Classes(), nil
}

// Bases returns a copy of the basis tensor.
func (c *Classifier[L]) Bases() (*Tensor, error) {
	m, err := c.current()
	if err != nil {
		return nil, err
	}
	return m.bases.Clone(), nil
}

// Accuracy returns the accuracy of the most recent successful Predict and
// true, or (0, false) if that call had no ground truth (or none happened).
func (c *Classifier[L]) Accuracy() (float64, bool) {
	c.accMu.Lock()
	defer c.accMu.Unlock()

	return c.acc, c.accSet
}

func (c *Classifier[L]) setAccuracy(acc float64, ok bool) {
	c.accMu.Lock()
	c.acc, c.accSet = acc, ok
	c.accMu.Unlock()
}
