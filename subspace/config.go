// SPDX-License-Identifier: MIT

package subspace

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ssmethod/affinity"
	"github.com/katalvlaran/ssmethod/basis"
)

// Config is the training configuration of a Classifier.
// Zero values of optional fields select the documented defaults.
type Config struct {
	// NComponents is the number of basis vectors per class.
	NComponents int `yaml:"n_components" validate:"required,gte=1"`

	// NEstimators is reserved for ensembling; only 1 (or 0, meaning 1) is supported.
	NEstimators int `yaml:"n_estimators"`

	// MaxBases overrides the basis pool size; 0 means NComponents.
	MaxBases int `yaml:"max_bases" validate:"gte=0"`

	// BasisType is "pca" (default), "laplacian" or "custom".
	BasisType string `yaml:"basis_type" validate:"omitempty,oneof=pca laplacian custom"`

	// BasisFunc is required when BasisType is "custom" and ignored otherwise.
	BasisFunc basis.Func `yaml:"-"`

	// Solver selects the PCA factorization: "svd" (default) or "jacobi".
	Solver string `yaml:"solver" validate:"omitempty,oneof=svd jacobi"`

	// Neighbors is k of the Laplacian kNN graph; 0 means affinity.DefaultNeighbors.
	Neighbors int `yaml:"neighbors" validate:"gte=0"`

	// Weight is the Laplacian edge weighting: "adjacency" (default) or "heat".
	Weight string `yaml:"weight" validate:"omitempty,oneof=adjacency heat"`

	// HeatWidth is the heat-kernel width; 0 means affinity.DefaultHeatWidth.
	HeatWidth float64 `yaml:"heat_width" validate:"gte=0"`

	// Workers bounds fit and predict parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`

	// AllowNonFinite admits NaN and ±Inf in samples.
	AllowNonFinite bool `yaml:"allow_non_finite"`
}

var configValidate = newConfigValidator()

// newConfigValidator reports fields by their YAML keys.
func newConfigValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate checks c without applying defaults.
//
// Errors:
//   - ErrUnsupportedConfiguration for n_estimators outside {0, 1}.
//   - ErrInvalidInput naming the offending field for everything else.
func (c Config) Validate() error {
	if c.NEstimators != 0 && c.NEstimators != 1 {
		return fmt.Errorf("%w: n_estimators=%d, ensembling is not implemented", ErrUnsupportedConfiguration, c.NEstimators)
	}
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return invalidf("%s: failed %q (value %v)", fe.Field(), fe.ActualTag(), fe.Value())
		}
		return invalidInput("config", err)
	}
	if c.MaxBases != 0 && c.MaxBases < c.NComponents {
		return invalidf("max_bases %d is less than n_components %d", c.MaxBases, c.NComponents)
	}
	if c.BasisType == basis.KindCustom.String() && c.BasisFunc == nil {
		return invalidf("basis_func is required when basis_type is custom")
	}

	return nil
}

// Bases returns the basis pool size actually extracted per class.
func (c Config) Bases() int {
	if c.MaxBases > 0 {
		return c.MaxBases
	}
	return c.NComponents
}

// workers resolves the parallelism bound.
func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// graphOptions translates the Laplacian fields for package affinity.
func (c Config) graphOptions() ([]affinity.Option, error) {
	w, err := affinity.ParseWeighting(c.Weight)
	if err != nil {
		return nil, err
	}
	opts := []affinity.Option{affinity.WithWeighting(w)}
	if c.Neighbors > 0 {
		opts = append(opts, affinity.WithNeighbors(c.Neighbors))
	}
	if c.HeatWidth > 0 {
		opts = append(opts, affinity.WithHeatWidth(c.HeatWidth))
	}

	return opts, nil
}

// ParseConfig decodes a YAML document into a validated Config.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, invalidInput("parse config", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("subspace: load config: %w", err)
	}

	return ParseConfig(data)
}
