// SPDX-License-Identifier: MIT

// xaimat is a command line front end to the matrix engine of a LIME-style
// explainer: it inverts, multiplies and summarizes matrices stored as small
// YAML or JSON documents.
//
// Usage:
//
//	# Invert a normal-equation matrix, retrying with jitter on singularity
//	xaimat invert xtwx.yaml
//
//	# Same, with a reproducible perturbation and a Prometheus text file
//	xaimat invert xtwx.yaml --config xaimat.yaml --metrics-out inversion.prom
//
//	# Multiply two matrices
//	xaimat multiply a.yaml b.yaml --format json
//
//	# Row sums, column sums, minimum positive entry and column variances
//	xaimat stats samples.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	Execute()
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
