// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ssmethod/subspace"
)

// defaultSweep is the n_components sweep of the reference MNIST benchmark.
var defaultSweep = []int{10, 20, 40, 60, 80, 100, 200, 300}

func newBenchCmd(a *app) *cobra.Command {
	var (
		data       dataFlags
		components []int
		basisType  string
		solver     string
		neighbors  int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Sweep n_components and report accuracy and wall time",
		Long: `Split the dataset once, then fit and score one classifier per
n_components value. Values larger than the feature count are skipped.

Examples:
  ssmethod bench --data mnist.csv
  ssmethod bench --data mnist.csv --components 5,10 --basis laplacian --neighbors 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			train, test, err := data.load(a)
			if err != nil {
				return err
			}
			features := len(train.X[0])
			out := cmd.OutOrStdout()
			printHeader(out)
			for _, n := range components {
				if n > features {
					a.log.Warn().Int("n_components", n).Int("features", features).Msg("skipping: more components than features")
					continue
				}
				cfg := subspace.Config{
					NComponents: n,
					BasisType:   basisType,
					Solver:      solver,
					Neighbors:   neighbors,
					Workers:     a.workers,
				}
				r, err := run(a, cfg, train, test)
				if err != nil {
					return err
				}
				printResult(out, r)
			}
			return nil
		},
	}
	data.register(cmd)
	fl := cmd.Flags()
	fl.IntSliceVar(&components, "components", defaultSweep, "Comma-separated n_components values")
	fl.StringVar(&basisType, "basis", "pca", "Basis extractor (pca|laplacian)")
	fl.StringVar(&solver, "solver", "svd", "PCA solver (svd|jacobi)")
	fl.IntVar(&neighbors, "neighbors", 0, "Laplacian kNN size (0 = default)")

	return cmd
}
