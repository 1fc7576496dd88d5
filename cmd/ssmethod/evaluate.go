// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ssmethod/subspace"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		data       dataFlags
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Fit and score one classifier described by a YAML config",
		Long: `Load a training configuration, split the dataset, fit on the
training part and report accuracy on the held-out part.

Example config:
  n_components: 20
  basis_type: laplacian
  neighbors: 8

Example:
  ssmethod evaluate --config ssm.yaml --data digits.csv --header`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := subspace.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") || cfg.Workers == 0 {
				cfg.Workers = a.workers
			}
			train, test, err := data.load(a)
			if err != nil {
				return err
			}
			r, err := run(a, cfg, train, test)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printHeader(out)
			printResult(out, r)
			return nil
		},
	}
	data.register(cmd)
	cmd.Flags().StringVar(&configPath, "config", "", "YAML training configuration")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
