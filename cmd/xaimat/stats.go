// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/xailinalg/matrix"
	"github.com/katalvlaran/xailinalg/matrixio"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// summary is the YAML report printed by the stats command.
type summary struct {
	Rows         int       `yaml:"rows"`
	Cols         int       `yaml:"cols"`
	RowSum       []float64 `yaml:"row_sum"`
	RowSquareSum []float64 `yaml:"row_square_sum"`
	ColumnSum    []float64 `yaml:"column_sum"`
	MinPositive  float64   `yaml:"min_positive"`
	HasPositive  bool      `yaml:"has_positive"`
	Variance     []float64 `yaml:"column_variance"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Summarize a sample matrix",
		Long: `Stats prints, for a matrix whose rows are samples:
  row_sum          sum over all rows, one entry per column
  row_square_sum   sum of squares over all rows, one entry per column
  column_sum       sum over all columns, one entry per row
  min_positive     smallest strictly positive entry (max float64 when none)
  column_variance  population variance of every column`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrixio.ReadFile(args[0])
			if err != nil {
				return err
			}
			s, err := summarize(m)
			if err != nil {
				return err
			}
			a.logger.Debug("stats computed")

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err = enc.Encode(s); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}

func summarize(m *matrix.Dense) (summary, error) {
	var (
		s   summary
		err error
	)
	s.Rows, s.Cols = m.Shape()
	if s.RowSum, err = matrix.RowSum(m); err != nil {
		return s, err
	}
	if s.RowSquareSum, err = matrix.RowSquareSum(m); err != nil {
		return s, err
	}
	if s.ColumnSum, err = matrix.SumAxis(m, matrix.AxisColumn); err != nil {
		return s, err
	}

	s.MinPositive = matrix.NoPositive
	s.Variance = make([]float64, s.Cols)
	for j := 0; j < s.Cols; j++ {
		col, err := matrix.Col(m, j)
		if err != nil {
			return s, err
		}
		s.Variance[j] = matrix.Variance(col)
		if mp := matrix.MinPos(col); mp < s.MinPositive {
			s.MinPositive = mp
		}
	}
	s.HasPositive = s.MinPositive != matrix.NoPositive

	return s, nil
}
