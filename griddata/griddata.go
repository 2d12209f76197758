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

// Package griddata interpolates scattered data in the plane.
//
// Values given at irregularly placed sample points are interpolated
// linearly on the triangles of the Delaunay triangulation of the sample
// points.  Positions outside the convex hull of the samples have no
// interpolated value; on a [masked.Grid] the corresponding cells are
// masked.
//
// The triangulation only depends on the sample positions, so several
// value sets given at the same positions can share one [Triangulation]:
//
//	tr, err := griddata.New(points)
//	if err != nil {
//		return err
//	}
//	u, err := tr.Grid(uValues, x, y)
//	...
//	v, err := tr.Grid(vValues, x, y)
package griddata

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/streamplot/masked"
)

// Len returns the number of distinct points in the triangulation.
func (tr *Triangulation) Len() int {
	return len(tr.orig)
}

// BBox returns the bounding box of the points.
func (tr *Triangulation) BBox() rect.Rect {
	return tr.bbox
}

// Triangles returns the triangles of the triangulation.
// Each triangle is given by the indices of its corners in the slice of
// points passed to [New], in counter-clockwise order.
func (tr *Triangulation) Triangles() [][3]int {
	res := make([][3]int, len(tr.tris))
	for t, tri := range tr.tris {
		res[t] = [3]int{tr.orig[tri.v[0]], tr.orig[tri.v[1]], tr.orig[tri.v[2]]}
	}
	return res
}

// Locate finds the triangle containing p.  The triangle is returned as an
// index into the slice returned by [Triangulation.Triangles], together with
// the barycentric coordinates of p.  Points on the boundary of the convex
// hull count as inside.  If p lies outside the convex hull, ok is false.
func (tr *Triangulation) Locate(p vec.Vec2) (tri int, w [3]float64, ok bool) {
	t, w, ok := tr.locate(p, 0)
	if !ok {
		return -1, w, false
	}
	return t, w, true
}

// locate finds the triangle containing p, starting the search at triangle
// hint.
func (tr *Triangulation) locate(p vec.Vec2, hint int) (int, [3]float64, bool) {
	if p.X < tr.bbox.LLx-tr.eps || p.X > tr.bbox.URx+tr.eps ||
		p.Y < tr.bbox.LLy-tr.eps || p.Y > tr.bbox.URy+tr.eps {
		return -1, [3]float64{}, false
	}

	t, exit := tr.walk(p, hint)
	if t < 0 {
		return -1, [3]float64{}, false
	}
	w := tr.barycentric(t, p)
	if exit < 0 || inside(w) {
		return t, w, true
	}

	// The walk left through a hull edge.  Points on the hull boundary can
	// appear to be outside by rounding; these are found in one of the
	// triangles around the ends of that edge.
	tri := &tr.tris[t]
	for _, v := range []int{tri.v[(exit+1)%3], tri.v[(exit+2)%3]} {
		for _, s := range tr.star[v] {
			if w := tr.barycentric(s, p); inside(w) {
				return s, w, true
			}
		}
	}
	return -1, [3]float64{}, false
}

// Interpolate returns the linearly interpolated value at p.
// The slice values gives the values at the points passed to [New].
// If p is outside the convex hull of the points, NaN is returned.
func (tr *Triangulation) Interpolate(values []float64, p vec.Vec2) float64 {
	t, w, ok := tr.locate(p, 0)
	if !ok {
		return math.NaN()
	}
	return tr.value(values, t, w)
}

func (tr *Triangulation) value(values []float64, t int, w [3]float64) float64 {
	v := tr.tris[t].v
	var z float64
	for i := range 3 {
		if w[i] == 0 {
			continue
		}
		z += w[i] * values[tr.orig[v[i]]]
	}
	return z
}

// Grid interpolates values onto the grid of points (x[i], y[j]).
// The slice values gives the values at the points passed to [New].
// Grid cells outside the convex hull of the points, and cells where the
// interpolated value is NaN or infinite, are masked.
func (tr *Triangulation) Grid(values []float64, x, y []float64) (*masked.Grid, error) {
	if len(values) != tr.nIn {
		return nil, fmt.Errorf("griddata: got %d values for %d points",
			len(values), tr.nIn)
	}

	nx := len(x)
	data := make([]float64, nx*len(y))
	hint := 0
	for j, yj := range y {
		for i, xi := range x {
			t, w, ok := tr.locate(vec.Vec2{X: xi, Y: yj}, hint)
			if !ok {
				data[j*nx+i] = math.NaN()
				continue
			}
			data[j*nx+i] = tr.value(values, t, w)
			hint = t
		}
	}
	return masked.Invalid(nx, len(y), data)
}

// Linear interpolates scattered data onto the grid of points (x[i], y[j]),
// using linear interpolation on the Delaunay triangulation of the points.
// Grid cells outside the convex hull of the points are masked.
func Linear(points []vec.Vec2, values, x, y []float64) (*masked.Grid, error) {
	tr, err := New(points)
	if err != nil {
		return nil, err
	}
	return tr.Grid(values, x, y)
}
