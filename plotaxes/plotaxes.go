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

// Package plotaxes implements the [streamplot.Axes] interface on top of
// gonum plots.
//
// Every [Axes] wraps one [plot.Plot].  In addition to streamplots, an Axes
// can show pseudo-colour plots of values given on a (possibly distorted)
// mesh, and arrow plots of vectors at scattered points.  Several Axes can
// be combined into one figure using [Tile].
package plotaxes

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"seehuhn.de/go/streamplot"
	"seehuhn.de/go/streamplot/masked"
)

// Axes is a drawing surface backed by a gonum plot.
type Axes struct {
	p *plot.Plot
}

var _ streamplot.Axes = (*Axes)(nil)

// New allocates a new, empty Axes.
func New(title string) *Axes {
	p := plot.New()
	p.Title.Text = title
	return &Axes{p: p}
}

// Plot returns the underlying gonum plot.
func (ax *Axes) Plot() *plot.Plot {
	return ax.p
}

// Streamplot implements the [streamplot.Axes] interface.
//
// The following keys are recognised in args.Extra:
//
//   - "density" (number): controls the spacing of the flow glyphs.
//     With density 1, about 30 glyphs are drawn along each axis.
//   - "arrowsize" (number): scales the arrow heads.
//   - "cmap" ([palette.ColorMap]): the colour map used for per-cell
//     colours.
//
// The return value is the [*FlowSet] added to the plot.
func (ax *Axes) Streamplot(x, y []float64, u, v *masked.Grid, args *streamplot.Args) (any, error) {
	fs, err := newFlowSet(x, y, u, v, args)
	if err != nil {
		return nil, err
	}
	ax.p.Add(fs)
	return fs, nil
}

// Save writes the plot to a file.
// The file format is determined by the file name extension.
func (ax *Axes) Save(path string, w, h vg.Length) error {
	return ax.p.Save(w, h, path)
}

// Tile draws a figure consisting of several Axes, arranged in rows and
// columns, and writes the figure to out.  Nil entries leave the
// corresponding position empty.  The format is one of the formats
// supported by [draw.NewFormattedCanvas], for example "png" or "pdf".
func Tile(panels [][]*Axes, w, h vg.Length, format string, out io.Writer) error {
	rows := len(panels)
	if rows == 0 {
		return fmt.Errorf("plotaxes: no panels")
	}
	cols := len(panels[0])

	plots := make([][]*plot.Plot, rows)
	for j, row := range panels {
		if len(row) != cols {
			return fmt.Errorf("plotaxes: row %d has %d panels, expected %d",
				j, len(row), cols)
		}
		plots[j] = make([]*plot.Plot, cols)
		for i, ax := range row {
			if ax == nil {
				blank := plot.New()
				blank.HideAxes()
				plots[j][i] = blank
				continue
			}
			plots[j][i] = ax.p
		}
	}

	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return err
	}
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	_, err = c.WriteTo(out)
	return err
}
