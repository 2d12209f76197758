// seehuhn.de/go/streamplot - streamplots from scattered vector-field samples
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/streamplot"
	"seehuhn.de/go/streamplot/internal/float"
)

// field is a set of vector-field samples.  C is optional.
type field struct {
	X, Y, U, V *streamplot.Array
	C          *streamplot.Array
}

// demoField returns U = -1 - X^2 + Y, V = 1 + X - Y^2 on a distorted
// n x n grid.
func demoField(n int) *field {
	s := make([]float64, n)
	for i := range s {
		s[i] = -3 + 6*float64(i)/float64(n-1)
	}
	X, Y := streamplot.Meshgrid(s, s)
	for k := range X.Data {
		X.Data[k] += 0.1 * Y.Data[k]
	}
	for k := range Y.Data {
		Y.Data[k] += 0.1 * X.Data[k]
	}

	U := &streamplot.Array{Shape: X.Shape, Data: make([]float64, X.Len())}
	V := &streamplot.Array{Shape: X.Shape, Data: make([]float64, X.Len())}
	for k := range X.Data {
		x, y := X.Data[k], Y.Data[k]
		U.Data[k] = -1 - x*x + y
		V.Data[k] = 1 + x - y*y
	}
	return &field{X: X, Y: Y, U: U, V: V}
}

// isMesh reports whether the samples are arranged on a 2-dimensional mesh.
func (f *field) isMesh() bool {
	return len(f.X.Shape) == 2
}

// flatten returns the samples as flat lists.
func (f *field) flatten() *field {
	res := &field{
		X: f.X.Flatten(),
		Y: f.Y.Flatten(),
		U: f.U.Flatten(),
		V: f.V.Flatten(),
	}
	if f.C != nil {
		res.C = f.C.Flatten()
	}
	return res
}

// magnitude returns the vector lengths |U + iV|.
func (f *field) magnitude() *streamplot.Array {
	res := &streamplot.Array{Shape: f.U.Shape, Data: make([]float64, f.U.Len())}
	for k := range res.Data {
		res.Data[k] = math.Hypot(f.U.Data[k], f.V.Data[k])
	}
	return res
}

func readSamples(fname string) (*field, error) {
	in, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	f, err := parseSamples(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return f, nil
}

// parseSamples reads CSV records with columns x, y, u, v and an optional
// colour value.  A first line which does not start with a number is taken
// to be a header and is skipped.
func parseSamples(r io.Reader) (*field, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var cols [5][]float64
	ncol := 0
	for first := true; ; first = false {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		if first {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64); err != nil {
				continue
			}
		}
		if ncol == 0 {
			ncol = len(rec)
			if ncol != 4 && ncol != 5 {
				return nil, fmt.Errorf("line %d: expected 4 or 5 columns, got %d", line, ncol)
			}
		} else if len(rec) != ncol {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", line, ncol, len(rec))
		}

		for i, s := range rec {
			z, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			cols[i] = append(cols[i], z)
		}
	}
	if ncol == 0 {
		return nil, errors.New("no samples")
	}

	f := &field{
		X: &streamplot.Array{Data: cols[0]},
		Y: &streamplot.Array{Data: cols[1]},
		U: &streamplot.Array{Data: cols[2]},
		V: &streamplot.Array{Data: cols[3]},
	}
	if ncol == 5 {
		f.C = &streamplot.Array{Data: cols[4]}
	}
	return f, nil
}

// writeGrid writes one CSV record per grid cell.  Masked cells are left
// empty.
func writeGrid(w io.Writer, c *streamplot.Call) error {
	const prec = 6

	header := []string{"x", "y", "u", "v"}
	lw := c.Args.LineWidth.Grid
	if lw != nil {
		header = append(header, "linewidth")
	}
	col := c.Args.Color.Grid
	if col != nil {
		header = append(header, "color")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for j, y := range c.Y {
		for i, x := range c.X {
			rec := []string{
				float.Format(x, prec),
				float.Format(y, prec),
				float.Cell(c.U, i, j, prec),
				float.Cell(c.V, i, j, prec),
			}
			if lw != nil {
				rec = append(rec, float.Cell(lw, i, j, prec))
			}
			if col != nil {
				rec = append(rec, float.Cell(col, i, j, prec))
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
