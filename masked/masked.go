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

// Package masked implements two-dimensional grids of values where
// individual cells can be marked as "no data".
//
// Masked cells are excluded from all arithmetic: operations on a [Grid]
// never read the value stored in a masked cell, and the result of an
// operation is masked wherever one of the inputs is masked.
package masked

import (
	"fmt"
	"math"
)

// Grid is a rectangular grid of NX columns and NY rows.
// The value for column i and row j is stored at index j*NX+i.
type Grid struct {
	NX, NY int

	Data []float64

	// Mask[k] is true if cell k holds no data.
	Mask []bool
}

// New allocates a grid where all cells are valid and zero.
func New(nx, ny int) *Grid {
	if nx < 0 || ny < 0 {
		panic("masked: negative grid size")
	}
	return &Grid{
		NX:   nx,
		NY:   ny,
		Data: make([]float64, nx*ny),
		Mask: make([]bool, nx*ny),
	}
}

// Invalid returns a grid holding the given values, where all cells
// containing NaN or infinite values are masked.
// The data slice is used by the new grid and must not be modified afterwards.
func Invalid(nx, ny int, data []float64) (*Grid, error) {
	if nx < 0 || ny < 0 || len(data) != nx*ny {
		return nil, fmt.Errorf("masked: %d values do not fit a %dx%d grid",
			len(data), nx, ny)
	}
	mask := make([]bool, len(data))
	for k, z := range data {
		if math.IsNaN(z) || math.IsInf(z, 0) {
			mask[k] = true
			data[k] = 0
		}
	}
	return &Grid{NX: nx, NY: ny, Data: data, Mask: mask}, nil
}

// At returns the value in column i and row j.
// The second return value is false if the cell is masked.
func (g *Grid) At(i, j int) (float64, bool) {
	k := g.index(i, j)
	if g.Mask[k] {
		return 0, false
	}
	return g.Data[k], true
}

// Valid reports whether the cell in column i and row j holds data.
func (g *Grid) Valid(i, j int) bool {
	return !g.Mask[g.index(i, j)]
}

func (g *Grid) index(i, j int) int {
	if i < 0 || i >= g.NX || j < 0 || j >= g.NY {
		panic(fmt.Sprintf("masked: index (%d, %d) out of range for %dx%d grid",
			i, j, g.NX, g.NY))
	}
	return j*g.NX + i
}

// Count returns the number of cells which hold data.
func (g *Grid) Count() int {
	n := 0
	for _, m := range g.Mask {
		if !m {
			n++
		}
	}
	return n
}

// SameShape reports whether g and other have the same number of rows and
// columns.
func (g *Grid) SameShape(other *Grid) bool {
	return g.NX == other.NX && g.NY == other.NY
}

// Scale returns a new grid with every valid cell multiplied by s.
func (g *Grid) Scale(s float64) *Grid {
	return g.apply(func(z float64) float64 { return s * z })
}

// Sqrt returns a new grid holding the square roots of the cells of g.
// Cells with negative values are masked in the result.
func (g *Grid) Sqrt() *Grid {
	return g.apply(math.Sqrt)
}

// apply computes fn for every valid cell.  Cells where fn returns NaN or an
// infinite value are masked in the result.
func (g *Grid) apply(fn func(float64) float64) *Grid {
	res := &Grid{
		NX:   g.NX,
		NY:   g.NY,
		Data: make([]float64, len(g.Data)),
		Mask: make([]bool, len(g.Mask)),
	}
	for k, z := range g.Data {
		if g.Mask[k] {
			res.Mask[k] = true
			continue
		}
		z = fn(z)
		if math.IsNaN(z) || math.IsInf(z, 0) {
			res.Mask[k] = true
			continue
		}
		res.Data[k] = z
	}
	return res
}

// Hypot returns the grid of vector lengths |u + iv|.
// A cell of the result is masked if it is masked in u or in v.
func Hypot(u, v *Grid) (*Grid, error) {
	if !u.SameShape(v) {
		return nil, errShape(u, v)
	}
	res := &Grid{
		NX:   u.NX,
		NY:   u.NY,
		Data: make([]float64, len(u.Data)),
		Mask: make([]bool, len(u.Mask)),
	}
	for k := range res.Data {
		if u.Mask[k] || v.Mask[k] {
			res.Mask[k] = true
			continue
		}
		res.Data[k] = math.Hypot(u.Data[k], v.Data[k])
	}
	return res, nil
}

func errShape(a, b *Grid) error {
	return fmt.Errorf("masked: grid shapes %dx%d and %dx%d differ",
		a.NX, a.NY, b.NX, b.NY)
}

// Min returns the smallest valid value in the grid.
// If all cells are masked, the second return value is false.
func (g *Grid) Min() (float64, bool) {
	return g.reduce(func(a, b float64) bool { return b < a })
}

// Max returns the largest valid value in the grid.
// If all cells are masked, the second return value is false.
func (g *Grid) Max() (float64, bool) {
	return g.reduce(func(a, b float64) bool { return b > a })
}

func (g *Grid) reduce(better func(a, b float64) bool) (float64, bool) {
	var best float64
	found := false
	for k, z := range g.Data {
		if g.Mask[k] {
			continue
		}
		if !found || better(best, z) {
			best = z
			found = true
		}
	}
	return best, found
}

// Filled returns a copy of the grid data, where masked cells are replaced
// by fill.
func (g *Grid) Filled(fill float64) []float64 {
	res := make([]float64, len(g.Data))
	for k, z := range g.Data {
		if g.Mask[k] {
			z = fill
		}
		res[k] = z
	}
	return res
}
