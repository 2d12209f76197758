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

package streamplot

import (
	"fmt"
	"math"
	"slices"
)

// Array is an n-dimensional array of numbers.
// The elements are stored in row-major order, i.e. the last index varies
// fastest.  A nil Shape describes a flat list of len(Data) elements.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray returns a new array with the given shape.
// If no shape is given, the array is a flat list.
func NewArray(data []float64, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		return &Array{Data: data}, nil
	}
	n := 1
	for _, k := range shape {
		if k < 0 {
			return nil, fmt.Errorf("streamplot: negative dimension in shape %v", shape)
		}
		n *= k
	}
	if n != len(data) {
		return nil, &ShapeError{Name: "data", Got: []int{len(data)}, Want: shape}
	}
	return &Array{Shape: slices.Clone(shape), Data: data}, nil
}

// Meshgrid returns coordinate arrays for the grid of points (x[i], y[j]).
// Both arrays have shape [len(y), len(x)], so that X varies along rows and Y
// varies along columns.
func Meshgrid(x, y []float64) (X, Y *Array) {
	nx, ny := len(x), len(y)
	X = &Array{Shape: []int{ny, nx}, Data: make([]float64, nx*ny)}
	Y = &Array{Shape: []int{ny, nx}, Data: make([]float64, nx*ny)}
	for j, yj := range y {
		for i, xi := range x {
			X.Data[j*nx+i] = xi
			Y.Data[j*nx+i] = yj
		}
	}
	return X, Y
}

// Len returns the number of elements in the array.
func (a *Array) Len() int {
	return len(a.Data)
}

func (a *Array) shape() []int {
	if a.Shape == nil {
		return []int{len(a.Data)}
	}
	return a.Shape
}

// consistent reports whether the number of elements matches the shape.
func (a *Array) consistent() bool {
	if a == nil {
		return false
	}
	n := 1
	for _, k := range a.shape() {
		if k < 0 {
			return false
		}
		n *= k
	}
	return n == len(a.Data)
}

// dataError describes an array which is nil or whose data does not fit
// its shape.
func dataError(name string, a *Array) error {
	if a == nil {
		return &ShapeError{Name: name}
	}
	return &ShapeError{Name: name, Got: []int{len(a.Data)}, Want: a.shape()}
}

// SameShape reports whether a and b have the same shape.
func (a *Array) SameShape(b *Array) bool {
	return slices.Equal(a.shape(), b.shape())
}

// Flatten returns a flat list with the elements of a.
// The returned array shares its data with a.
func (a *Array) Flatten() *Array {
	return &Array{Data: a.Data}
}

// Min returns the smallest element of the array.
// If the array is empty or contains NaN, NaN is returned.
func (a *Array) Min() float64 {
	if len(a.Data) == 0 {
		return math.NaN()
	}
	res := a.Data[0]
	for _, z := range a.Data[1:] {
		if math.IsNaN(z) {
			return z
		}
		res = min(res, z)
	}
	return res
}

// Max returns the largest element of the array.
// If the array is empty or contains NaN, NaN is returned.
func (a *Array) Max() float64 {
	if len(a.Data) == 0 {
		return math.NaN()
	}
	res := a.Data[0]
	for _, z := range a.Data[1:] {
		if math.IsNaN(z) {
			return z
		}
		res = max(res, z)
	}
	return res
}
