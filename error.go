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
	"strconv"
)

// ShapeError is returned when an array does not have the shape required
// by an operation.
type ShapeError struct {
	// Name identifies the offending argument.
	Name string

	Got, Want []int
}

func (err *ShapeError) Error() string {
	return fmt.Sprintf("streamplot: %s has shape %v, want %v",
		err.Name, err.Got, err.Want)
}

// GridSizeError is returned when the requested resolution of the
// resampling grid is not positive.
type GridSizeError struct {
	NX, NY int
}

func (err *GridSizeError) Error() string {
	return "streamplot: invalid grid size " +
		strconv.Itoa(err.NX) + "x" + strconv.Itoa(err.NY)
}

// OptionError is returned when an extra option collides with an option
// which is set by [Streamplot2D] itself.
type OptionError struct {
	Key string
}

func (err *OptionError) Error() string {
	return "streamplot: option " + strconv.Quote(err.Key) +
		" must be set via Options.LineWidth or Options.Color"
}

// ScaleError is returned when the line width scale factor is negative or
// not finite.
type ScaleError struct {
	Scale float64
}

func (err *ScaleError) Error() string {
	return "streamplot: invalid line width scale " +
		strconv.FormatFloat(err.Scale, 'g', -1, 64)
}
