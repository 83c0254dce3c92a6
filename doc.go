// SPDX-License-Identifier: MIT

// Package xailinalg is the dense linear-algebra core of a local surrogate
// explainer: it builds design matrices from model predictions, multiplies and
// reduces them, and inverts the weighted normal-equation matrix with a
// diagonal-pivot Gauss-Jordan elimination that retries singular systems after
// a small random perturbation.
//
// Layout:
//
//	matrix/      Dense type, operators, statistics, Invert and JitterInvert
//	matext/      the same helpers over gonum mat types
//	prediction/  Input/Output samples and their conversion to matrices
//	matrixio/    YAML and JSON matrix documents
//	config/      YAML configuration of the inversion policy, logging, metrics
//	telemetry/   slog logger construction and Prometheus inversion metrics
//	cmd/xaimat/  command line front end
//	examples/    runnable programs
//
// Quick example:
//
//	X, _ := prediction.InputsMatrix(inputs)
//	G, _ := matrix.WeightedGram(X, weights)
//	inv, err := matrix.JitterInvert(G, 3, matrix.DefaultZeroThreshold, src)
//
//	go get github.com/katalvlaran/xailinalg
package xailinalg
