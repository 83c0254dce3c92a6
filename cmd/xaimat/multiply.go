// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/katalvlaran/xailinalg/matrix"
	"github.com/katalvlaran/xailinalg/matrixio"
	"github.com/spf13/cobra"
)

func newMultiplyCmd(a *app) *cobra.Command {
	var (
		transposeLeft bool
		format        string
	)
	cmd := &cobra.Command{
		Use:   "multiply A B",
		Short: "Print the matrix product A × B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := matrixio.ReadFile(args[0])
			if err != nil {
				return err
			}
			right, err := matrixio.ReadFile(args[1])
			if err != nil {
				return err
			}
			if transposeLeft {
				if left, err = matrix.Transpose(left); err != nil {
					return err
				}
			}
			prod, err := matrix.Mul(left, right)
			if err != nil {
				return err
			}
			r, c := prod.Shape()
			a.logger.Debug("product computed", slog.Int("rows", r), slog.Int("cols", c))

			return matrixio.Encode(cmd.OutOrStdout(), prod, matrixio.Format(format))
		},
	}
	cmd.Flags().BoolVarP(&transposeLeft, "transpose-left", "t", false, "multiply Aᵀ × B instead")
	cmd.Flags().StringVar(&format, "format", string(matrixio.FormatYAML), "output format (yaml, json)")

	return cmd
}
