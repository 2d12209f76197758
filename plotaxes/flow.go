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

package plotaxes

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"seehuhn.de/go/streamplot"
	"seehuhn.de/go/streamplot/masked"
)

// glyphsPerAxis is the number of flow glyphs along each axis at density 1.
const glyphsPerAxis = 30

// FlowSet is a plotter which shows a vector field given on a regular grid.
// Each glyph is an arrow of fixed length, centred on a grid point and
// pointing in the direction of the flow.
type FlowSet struct {
	X, Y []float64
	U, V *masked.Grid

	// Width and Color are the resolved line widths and colours.
	Width streamplot.Value
	Color streamplot.Value

	Density   float64
	ArrowSize float64

	// Glyphs is the number of arrows drawn.
	Glyphs int

	strideX, strideY int
	cells            [][2]int

	fixedWidth vg.Length
	fixedColor color.Color
	cmap       *scaledMap
}

var (
	_ plot.Plotter    = (*FlowSet)(nil)
	_ plot.DataRanger = (*FlowSet)(nil)
)

func newFlowSet(x, y []float64, u, v *masked.Grid, args *streamplot.Args) (*FlowSet, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("plotaxes: empty grid")
	}
	if u.NX != len(x) || u.NY != len(y) || !u.SameShape(v) {
		return nil, fmt.Errorf("plotaxes: vector field does not match %dx%d grid",
			len(x), len(y))
	}
	if args == nil {
		args = &streamplot.Args{}
	}

	fs := &FlowSet{
		X:          x,
		Y:          y,
		U:          u,
		V:          v,
		Width:      args.LineWidth,
		Color:      args.Color,
		Density:    1,
		ArrowSize:  1,
		fixedWidth: vg.Points(1),
		fixedColor: color.Black,
	}

	var cmap palette.ColorMap
	for key, val := range args.Extra {
		switch key {
		case "density":
			d, ok := toFloat(val)
			if !ok || d <= 0 {
				return nil, fmt.Errorf("plotaxes: invalid density %v", val)
			}
			fs.Density = d
		case "arrowsize":
			a, ok := toFloat(val)
			if !ok || a < 0 {
				return nil, fmt.Errorf("plotaxes: invalid arrow size %v", val)
			}
			fs.ArrowSize = a
		case "cmap":
			m, ok := val.(palette.ColorMap)
			if !ok {
				return nil, fmt.Errorf("plotaxes: cannot use %T as a colour map", val)
			}
			cmap = m
		default:
			return nil, fmt.Errorf("plotaxes: unknown streamplot option %q", key)
		}
	}

	if fs.Width.Fixed != nil {
		w, err := parseWidth(fs.Width.Fixed)
		if err != nil {
			return nil, err
		}
		fs.fixedWidth = w
	} else if g := fs.Width.Grid; g != nil && !g.SameShape(u) {
		return nil, fmt.Errorf("plotaxes: line widths do not match the grid")
	}

	if fs.Color.Fixed != nil {
		col, err := ParseColor(fs.Color.Fixed)
		if err != nil {
			return nil, err
		}
		fs.fixedColor = col
	} else if g := fs.Color.Grid; g != nil {
		if !g.SameShape(u) {
			return nil, fmt.Errorf("plotaxes: colours do not match the grid")
		}
		lo, _ := g.Min()
		hi, _ := g.Max()
		fs.cmap = newScaledMap(cmap, lo, hi)
	}

	n := max(1, int(math.Round(glyphsPerAxis*fs.Density)))
	fs.strideX = max(1, len(x)/n)
	fs.strideY = max(1, len(y)/n)
	for j := fs.strideY / 2; j < len(y); j += fs.strideY {
		for i := fs.strideX / 2; i < len(x); i += fs.strideX {
			if fs.visible(i, j) {
				fs.cells = append(fs.cells, [2]int{i, j})
			}
		}
	}
	fs.Glyphs = len(fs.cells)

	return fs, nil
}

// visible reports whether a glyph is drawn for grid cell (i, j).
func (fs *FlowSet) visible(i, j int) bool {
	u, okU := fs.U.At(i, j)
	v, okV := fs.V.At(i, j)
	if !okU || !okV || (u == 0 && v == 0) {
		return false
	}
	if g := fs.Width.Grid; g != nil {
		if w, ok := g.At(i, j); !ok || w <= 0 {
			return false
		}
	}
	if g := fs.Color.Grid; g != nil && !g.Valid(i, j) {
		return false
	}
	return true
}

func (fs *FlowSet) style(i, j int) (vg.Length, color.Color) {
	w := fs.fixedWidth
	if g := fs.Width.Grid; g != nil {
		z, _ := g.At(i, j)
		w = vg.Points(z)
	}
	col := fs.fixedColor
	if g := fs.Color.Grid; g != nil {
		z, _ := g.At(i, j)
		col = fs.cmap.At(z)
	}
	return w, col
}

// Plot implements the [plot.Plotter] interface.
func (fs *FlowSet) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	// canvas lengths per data unit, and glyph spacing on the canvas
	nx, ny := len(fs.X), len(fs.Y)
	scaleX, scaleY := vg.Length(1), vg.Length(1)
	spacing := vg.Length(math.Inf(1))
	if nx > 1 {
		dx := trX(fs.X[nx-1]) - trX(fs.X[0])
		scaleX = dx / vg.Length(fs.X[nx-1]-fs.X[0])
		spacing = min(spacing, dx*vg.Length(fs.strideX)/vg.Length(nx-1))
	}
	if ny > 1 {
		dy := trY(fs.Y[ny-1]) - trY(fs.Y[0])
		scaleY = dy / vg.Length(fs.Y[ny-1]-fs.Y[0])
		spacing = min(spacing, dy*vg.Length(fs.strideY)/vg.Length(ny-1))
	}
	if math.IsInf(float64(spacing), 1) {
		spacing = vg.Points(10)
	}
	half := 0.4 * spacing

	for _, cell := range fs.cells {
		i, j := cell[0], cell[1]
		u, _ := fs.U.At(i, j)
		v, _ := fs.V.At(i, j)
		dirX := float64(scaleX) * u
		dirY := float64(scaleY) * v
		l := math.Hypot(dirX, dirY)
		if l == 0 {
			continue
		}
		dir := vg.Point{X: vg.Length(dirX / l), Y: vg.Length(dirY / l)}
		centre := vg.Point{X: trX(fs.X[i]), Y: trY(fs.Y[j])}
		from := centre.Sub(dir.Scale(half))
		to := centre.Add(dir.Scale(half))

		w, col := fs.style(i, j)
		sty := draw.LineStyle{Color: col, Width: w}
		c.StrokeLine2(sty, from.X, from.Y, to.X, to.Y)

		if fs.ArrowSize > 0 {
			h := vg.Length(fs.ArrowSize) * (vg.Points(3) + 2*w)
			drawHead(c, to, dir, h, col)
		}
	}
}

// drawHead draws a filled arrow head with its tip at p, pointing in
// direction dir (a unit vector).
func drawHead(c draw.Canvas, p, dir vg.Point, size vg.Length, col color.Color) {
	perp := vg.Point{X: -dir.Y, Y: dir.X}
	base := p.Sub(dir.Scale(size))
	c.FillPolygon(col, []vg.Point{
		p,
		base.Add(perp.Scale(size / 2)),
		base.Sub(perp.Scale(size / 2)),
	})
}

// DataRange implements the [plot.DataRanger] interface.
func (fs *FlowSet) DataRange() (xmin, xmax, ymin, ymax float64) {
	return fs.X[0], fs.X[len(fs.X)-1], fs.Y[0], fs.Y[len(fs.Y)-1]
}
