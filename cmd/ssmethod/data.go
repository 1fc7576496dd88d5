// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ssmethod/dataset"
	"github.com/katalvlaran/ssmethod/subspace"
)

// dataFlags are shared by every subcommand that reads a CSV file.
type dataFlags struct {
	path        string
	labelColumn int
	header      bool
	testSize    float64
	seed        int64
}

func (f *dataFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.path, "data", "", "CSV file with one sample per row")
	fl.IntVar(&f.labelColumn, "label-column", -1, "Label column index (negative counts from the end)")
	fl.BoolVar(&f.header, "header", false, "First row holds column names")
	fl.Float64Var(&f.testSize, "test-size", 0.1, "Fraction of samples held out for testing")
	fl.Int64Var(&f.seed, "seed", 0, "Shuffle seed for the train/test split")
	_ = cmd.MarkFlagRequired("data")
}

// load reads the dataset and splits it.
func (f *dataFlags) load(a *app) (train, test *dataset.Dataset, err error) {
	ds, err := dataset.LoadFile(f.path, dataset.Options{LabelColumn: f.labelColumn, Header: f.header})
	if err != nil {
		return nil, nil, err
	}
	if train, test, err = ds.Split(f.testSize, f.seed); err != nil {
		return nil, nil, err
	}
	a.log.Info().
		Str("path", f.path).
		Int("samples", ds.Len()).
		Int("features", len(ds.X[0])).
		Int("train", train.Len()).
		Int("test", test.Len()).
		Msg("dataset loaded")

	return train, test, nil
}

// result is one train-and-score run.
type result struct {
	components int
	accuracy   float64
	elapsed    time.Duration
}

// run fits cfg on train and scores it on test.
func run(a *app, cfg subspace.Config, train, test *dataset.Dataset) (result, error) {
	start := time.Now()
	clf, err := subspace.New[string](cfg, a.options()...)
	if err != nil {
		return result{}, err
	}
	if err = clf.Fit(train.X, train.Y); err != nil {
		return result{}, err
	}
	if _, err = clf.Predict(test.X, test.Y); err != nil {
		return result{}, err
	}
	acc, _ := clf.Accuracy()

	return result{components: cfg.NComponents, accuracy: acc, elapsed: time.Since(start)}, nil
}

func printHeader(w io.Writer) {
	fmt.Fprintf(w, "%-14s %-10s %s\n", "n_components", "accuracy", "seconds")
}

func printResult(w io.Writer, r result) {
	fmt.Fprintf(w, "%-14d %-10.4f %.3f\n", r.components, r.accuracy, r.elapsed.Seconds())
}
