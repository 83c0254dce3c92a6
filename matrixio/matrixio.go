// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrices as small YAML or JSON documents:
//
//	rows:
//	  - [4, 7]
//	  - [2, 6]
//
// Decoding accepts both encodings (JSON is parsed as YAML flow syntax).
package matrixio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/xailinalg/matrix"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding of Encode.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned by Encode for a Format other than yaml/json.
var ErrUnknownFormat = errors.New("matrixio: unknown format")

// Document is the on-disk shape of one matrix.
type Document struct {
	Rows [][]float64 `yaml:"rows" json:"rows"`
}

// Decode parses one document from r and builds a Dense from its rows.
// Shape errors are the matrix package sentinels (ErrInvalidDimensions,
// ErrDimensionMismatch).
func Decode(r io.Reader) (*matrix.Dense, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("matrixio: empty document: %w", matrix.ErrInvalidDimensions)
		}
		return nil, fmt.Errorf("matrixio: decode: %w", err)
	}
	m, err := matrix.NewFromRows(doc.Rows)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}

	return m, nil
}

// ReadFile decodes the document stored at path.
func ReadFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Encode writes m to w in the requested format. JSON cannot represent NaN
// or infinities; use YAML for such matrices.
func Encode(w io.Writer, m matrix.Matrix, f Format) error {
	doc, err := toDocument(m)
	if err != nil {
		return err
	}
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err != nil {
			return fmt.Errorf("matrixio: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		if err = enc.Encode(doc); err != nil {
			return fmt.Errorf("matrixio: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func toDocument(m matrix.Matrix) (Document, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Document{}, fmt.Errorf("matrixio: %w", err)
	}
	if d, ok := m.(*matrix.Dense); ok {
		return Document{Rows: d.ToRows()}, nil
	}
	r, c := matrix.Shape(m)
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			v, err := m.At(i, j)
			if err != nil {
				return Document{}, fmt.Errorf("matrixio: %w", err)
			}
			rows[i][j] = v
		}
	}

	return Document{Rows: rows}, nil
}
