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

	mvec "github.com/aclements/go-moremath/vec"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/streamplot/griddata"
	"seehuhn.de/go/streamplot/masked"
)

// Streamplot2D draws a streamplot of a vector field given at scattered
// sample points.
//
// The arrays X and Y give the sample positions, U and V give the vector
// components.  All four arrays must have the same shape.  The samples may
// form a (possibly distorted) grid, or may be an unordered list of points.
//
// The field is interpolated linearly onto a regular grid of nx columns
// spanning [min(X), max(X)] and ny rows spanning [min(Y), max(Y)].  Grid
// cells outside the convex hull of the samples are masked.  The grid is
// then passed to ax.Streamplot, together with the line widths and colours
// selected by opt.  The return values of ax.Streamplot are returned
// unchanged.
//
// A nil opt is equivalent to an empty [Options] struct.
func Streamplot2D(ax Axes, X, Y, U, V *Array, nx, ny int, opt *Options) (any, error) {
	if opt == nil {
		opt = &Options{}
	}
	if nx < 1 || ny < 1 {
		return nil, &GridSizeError{NX: nx, NY: ny}
	}
	for _, a := range []struct {
		name string
		arr  *Array
	}{{"X", X}, {"Y", Y}, {"U", U}, {"V", V}} {
		if !a.arr.consistent() {
			return nil, dataError(a.name, a.arr)
		}
		if !X.SameShape(a.arr) {
			return nil, &ShapeError{Name: a.name, Got: a.arr.shape(), Want: X.shape()}
		}
	}
	for _, key := range []string{"color", "linewidth"} {
		if _, ok := opt.Extra[key]; ok {
			return nil, &OptionError{Key: key}
		}
	}
	scale := opt.Scale
	if scale == 0 {
		scale = 1
	} else if !(scale > 0) || math.IsInf(scale, 1) {
		return nil, &ScaleError{Scale: scale}
	}

	pts := make([]vec.Vec2, X.Len())
	for i := range pts {
		pts[i] = vec.Vec2{X: X.Data[i], Y: Y.Data[i]}
	}
	tr, err := griddata.New(pts)
	if err != nil {
		return nil, fmt.Errorf("streamplot: %w", err)
	}

	r := &resampler{
		tr: tr,
		U:  U,
		x:  linspace(X.Min(), X.Max(), nx),
		y:  linspace(Y.Min(), Y.Max(), ny),
	}
	r.u, err = tr.Grid(U.Data, r.x, r.y)
	if err != nil {
		return nil, err
	}
	r.v, err = tr.Grid(V.Data, r.x, r.y)
	if err != nil {
		return nil, err
	}

	args := &Args{Extra: opt.Extra}
	args.LineWidth, err = r.resolve("LineWidth", opt.LineWidth, scale)
	if err != nil {
		return nil, err
	}
	// colours are never scaled
	args.Color, err = r.resolve("Color", opt.Color, 1)
	if err != nil {
		return nil, err
	}

	return ax.Streamplot(r.x, r.y, r.u, r.v, args)
}

// linspace returns n evenly spaced values from lo to hi.  The end points
// are reproduced exactly.
func linspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	res := mvec.Linspace(lo, hi, n)
	res[n-1] = hi
	return res
}

// resampler holds the state shared between the interpolation of the
// vector field and of the auxiliary fields.
type resampler struct {
	tr   *griddata.Triangulation
	U    *Array
	x, y []float64
	u, v *masked.Grid
}

// resolve converts a line width or colour style into the value passed to
// the Axes.  Grid values are multiplied by factor.
func (r *resampler) resolve(name string, s Style, factor float64) (Value, error) {
	switch s := s.(type) {
	case nil:
		return Value{}, nil
	case Fixed:
		return Value{Fixed: s.Value}, nil
	case Magnitude:
		m, err := masked.Hypot(r.u, r.v)
		if err != nil {
			return Value{}, err
		}
		return Value{Grid: m.Sqrt().Scale(factor)}, nil
	case PerPoint:
		if !s.Values.consistent() {
			return Value{}, dataError(name, s.Values)
		}
		if !s.Values.SameShape(r.U) {
			return Value{}, &ShapeError{Name: name, Got: s.Values.shape(), Want: r.U.shape()}
		}
		g, err := r.tr.Grid(s.Values.Data, r.x, r.y)
		if err != nil {
			return Value{}, err
		}
		return Value{Grid: g.Scale(factor)}, nil
	default:
		return Value{}, fmt.Errorf("streamplot: unsupported %s style %T", name, s)
	}
}
