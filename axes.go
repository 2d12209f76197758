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

// Axes is a drawing surface which can draw streamplots of vector fields
// given on a regular grid.
type Axes interface {
	// Streamplot draws the vector field (u, v) given on the grid of points
	// (x[i], y[j]).  The slices x and y are increasing, and u and
	// v have len(x) columns and len(y) rows.  Masked cells carry no data.
	//
	// The return value is passed on to the caller of [Streamplot2D]
	// unchanged.
	Streamplot(x, y []float64, u, v *masked.Grid, args *Args) (any, error)
}

// A Recorder is an [Axes] which records the streamplot calls made on it.
// The recorded calls can later be applied to a different [Axes], using the
// [Recorder.ApplyTo] method.
type Recorder struct {
	Calls []*Call
}

// Call is a recorded call to [Axes.Streamplot].
type Call struct {
	X, Y []float64
	U, V *masked.Grid
	Args *Args
}

// Streamplot implements the [Axes] interface.
// The return value is the recorded [*Call].
func (r *Recorder) Streamplot(x, y []float64, u, v *masked.Grid, args *Args) (any, error) {
	c := &Call{X: x, Y: y, U: u, V: v, Args: args}
	r.Calls = append(r.Calls, c)
	return c, nil
}

// Last returns the most recently recorded call, or nil if no calls have
// been recorded.
func (r *Recorder) Last() *Call {
	if len(r.Calls) == 0 {
		return nil
	}
	return r.Calls[len(r.Calls)-1]
}

// ApplyTo repeats all recorded calls on ax.
// The results of the calls are returned in order.
func (r *Recorder) ApplyTo(ax Axes) ([]any, error) {
	res := make([]any, 0, len(r.Calls))
	for _, c := range r.Calls {
		out, err := ax.Streamplot(c.X, c.Y, c.U, c.V, c.Args)
		if err != nil {
			return res, err
		}
		res = append(res, out)
	}
	return res, nil
}
