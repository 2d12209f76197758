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

// Package streamplot draws streamplots of vector fields which are only
// known at scattered sample points.
//
// Streamline plotting routines need the vector field on a regular,
// rectangular grid.  [Streamplot2D] interpolates the samples linearly onto
// such a grid (see [seehuhn.de/go/streamplot/griddata]) and then hands the
// grid over to an [Axes] implementation, which does the actual drawing.
// Grid cells outside the convex hull of the samples carry no data and are
// masked (see [seehuhn.de/go/streamplot/masked]).
//
// Line widths and colours can be fixed values, can be derived from the
// vector magnitude, or can be given per sample point:
//
//	X, Y := streamplot.Meshgrid(xs, ys)
//	...
//	res, err := streamplot.Streamplot2D(ax, X, Y, U, V, 500, 500, &streamplot.Options{
//		LineWidth: streamplot.Magnitude{},
//		Scale:     0.8,
//	})
//
// The package [seehuhn.de/go/streamplot/plotaxes] provides an [Axes]
// implementation based on gonum plots.  A [Recorder] can be used to obtain
// the resampled grid without drawing anything.
package streamplot
