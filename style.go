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

import "seehuhn.de/go/streamplot/masked"

// Style describes how line widths or colours are chosen.
//
// A Style is one of [Fixed], [Magnitude] or [PerPoint].  A nil Style
// leaves the choice to the [Axes] implementation.
type Style interface {
	isStyle()
}

// Fixed uses the same value for all streamlines.
// The value is passed to the [Axes] implementation unchanged.
type Fixed struct {
	Value any
}

// Magnitude derives the value at every grid cell from the square root of
// the length of the interpolated vector.
type Magnitude struct{}

// PerPoint gives values at the sample points.  The values are interpolated
// onto the grid in the same way as the vector field.
// The array must have the same shape as the U and V arrays.
type PerPoint struct {
	Values *Array
}

func (Fixed) isStyle()     {}
func (Magnitude) isStyle() {}
func (PerPoint) isStyle()  {}

// Options control [Streamplot2D].
type Options struct {
	// Color selects the line colours.
	Color Style

	// LineWidth selects the line widths.
	LineWidth Style

	// Scale multiplies line widths derived from [Magnitude] or [PerPoint].
	// Colours are not scaled.  The zero value means 1, negative values are
	// rejected with a [ScaleError].
	Scale float64

	// Extra is passed to the [Axes] implementation unchanged.
	// The keys "color" and "linewidth" are not allowed.
	Extra map[string]any
}

// Value is a resolved line width or colour.  At most one of the two
// fields is set.
type Value struct {
	// Fixed is the value given by a [Fixed] style.
	Fixed any

	// Grid holds one value per grid cell.
	Grid *masked.Grid
}

// IsSet reports whether v holds a value.
func (v Value) IsSet() bool {
	return v.Fixed != nil || v.Grid != nil
}

// Args are the arguments passed to [Axes.Streamplot], in addition to the
// grid and the vector field.
type Args struct {
	LineWidth Value
	Color     Value

	// Extra is the map from [Options.Extra].
	Extra map[string]any
}
