// SPDX-License-Identifier: MIT

// Package prediction models the samples an explainer feeds into the matrix
// engine: the features of a perturbed input and the outputs the model
// returned for it. Every type exposes its numbers in a fixed order through
// Values, so inputs and outputs convert to design and response matrices.
package prediction

import "github.com/katalvlaran/xailinalg/matrix"

// Feature is one named numeric input of a model.
type Feature struct {
	Name  string
	Value float64
}

// Input is the ordered feature vector of one prediction request.
type Input struct {
	Features []Feature
}

// Values returns the feature values in declaration order.
func (in Input) Values() []float64 {
	out := make([]float64, len(in.Features))
	for i, f := range in.Features {
		out[i] = f.Value
	}

	return out
}

// Names returns the feature names in declaration order.
func (in Input) Names() []string {
	out := make([]string, len(in.Features))
	for i, f := range in.Features {
		out[i] = f.Name
	}

	return out
}

// Outcome is one named numeric result of a model, with its confidence score.
type Outcome struct {
	Name  string
	Value float64
	Score float64
}

// Output is the ordered list of outcomes returned for one Input.
type Output struct {
	Outcomes []Outcome
}

// Values returns the outcome values (not the scores) in declaration order.
func (o Output) Values() []float64 {
	out := make([]float64, len(o.Outcomes))
	for i, oc := range o.Outcomes {
		out[i] = oc.Value
	}

	return out
}

// Prediction pairs an Input with the Output the model produced for it.
type Prediction struct {
	Input  Input
	Output Output
}

// Split separates predictions into their inputs and outputs, preserving order.
func Split(ps []Prediction) ([]Input, []Output) {
	ins := make([]Input, len(ps))
	outs := make([]Output, len(ps))
	for i, p := range ps {
		ins[i], outs[i] = p.Input, p.Output
	}

	return ins, outs
}

// Compile-time checks: both sides convert through the matrix Sample contract.
var (
	_ matrix.Sample = Input{}
	_ matrix.Sample = Output{}
)

// InputMatrix converts one input into a 1×K row vector.
func InputMatrix(in Input) (*matrix.Dense, error) { return matrix.FromSample(in) }

// InputsMatrix converts inputs into an M×K design matrix, one row per input.
// Every input must carry the same number of features.
func InputsMatrix(ins []Input) (*matrix.Dense, error) { return matrix.FromSamples(ins) }

// OutputMatrix converts one output into a 1×K row vector.
func OutputMatrix(o Output) (*matrix.Dense, error) { return matrix.FromSample(o) }

// OutputsMatrix converts outputs into an M×K response matrix, one row per output.
func OutputsMatrix(outs []Output) (*matrix.Dense, error) { return matrix.FromSamples(outs) }
