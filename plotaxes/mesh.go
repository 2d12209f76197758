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
)

// Pcolor shows a pseudo-colour plot of the values C on the mesh given by X
// and Y.  All three arrays must be two-dimensional and of the same shape.
// The quadrilateral with corners (j, i), (j, i+1), (j+1, i+1) and (j+1, i)
// is filled with the colour for C[j, i]; the last row and column of C are
// not used.  If cmap is nil, a grey scale is used.
func (ax *Axes) Pcolor(X, Y, C *streamplot.Array, cmap palette.ColorMap) error {
	if len(X.Shape) != 2 || !X.SameShape(Y) || !X.SameShape(C) {
		return fmt.Errorf("plotaxes: pcolor needs 2-dimensional arrays of equal shape")
	}
	rows, cols := X.Shape[0], X.Shape[1]
	if rows < 2 || cols < 2 {
		return fmt.Errorf("plotaxes: pcolor needs at least 2x2 mesh points")
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for j := range rows - 1 {
		for i := range cols - 1 {
			z := C.Data[j*cols+i]
			if math.IsNaN(z) {
				continue
			}
			lo = min(lo, z)
			hi = max(hi, z)
		}
	}
	if cmap == nil {
		cmap = grayMap()
	}
	if lo > hi {
		lo, hi = 0, 1
	}

	ax.p.Add(&pcolorMesh{
		X:    X,
		Y:    Y,
		C:    C,
		cmap: newScaledMap(cmap, lo, hi),
	})
	return nil
}

type pcolorMesh struct {
	X, Y, C *streamplot.Array
	cmap    *scaledMap
}

func (m *pcolorMesh) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	cols := m.X.Shape[1]
	rows := m.X.Shape[0]
	pt := func(j, i int) vg.Point {
		k := j*cols + i
		return vg.Point{X: trX(m.X.Data[k]), Y: trY(m.Y.Data[k])}
	}
	for j := range rows - 1 {
		for i := range cols - 1 {
			z := m.C.Data[j*cols+i]
			if math.IsNaN(z) {
				continue
			}
			quad := []vg.Point{pt(j, i), pt(j, i+1), pt(j+1, i+1), pt(j+1, i)}
			c.FillPolygon(m.cmap.At(z), c.ClipPolygonXY(quad))
		}
	}
}

func (m *pcolorMesh) DataRange() (xmin, xmax, ymin, ymax float64) {
	return m.X.Min(), m.X.Max(), m.Y.Min(), m.Y.Max()
}

// Quiver shows the vectors (U, V) as arrows starting at the points (X, Y).
// The arrows are scaled so that the longest arrow is about as long as the
// typical distance between points.
func (ax *Axes) Quiver(X, Y, U, V *streamplot.Array) error {
	n := X.Len()
	if Y.Len() != n || U.Len() != n || V.Len() != n {
		return fmt.Errorf("plotaxes: quiver arrays differ in length")
	}
	if n == 0 {
		return nil
	}

	longest := 0.0
	for k := range n {
		longest = max(longest, math.Hypot(U.Data[k], V.Data[k]))
	}
	area := (X.Max() - X.Min()) * (Y.Max() - Y.Min())
	spacing := math.Sqrt(area / float64(n))
	scale := 1.0
	if longest > 0 && spacing > 0 {
		scale = spacing / longest
	}

	ax.p.Add(&quiver{X: X, Y: Y, U: U, V: V, scale: scale})
	return nil
}

type quiver struct {
	X, Y, U, V *streamplot.Array
	scale      float64
}

func (q *quiver) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	for k := range q.X.Data {
		x, y := q.X.Data[k], q.Y.Data[k]
		tipX := x + q.scale*q.U.Data[k]
		tipY := y + q.scale*q.V.Data[k]
		from := vg.Point{X: trX(x), Y: trY(y)}
		to := vg.Point{X: trX(tipX), Y: trY(tipY)}

		d := to.Sub(from)
		l := vg.Length(math.Hypot(float64(d.X), float64(d.Y)))
		if l == 0 || math.IsNaN(float64(l)) {
			continue
		}
		c.StrokeLine2(sty, from.X, from.Y, to.X, to.Y)
		drawHead(c, to, d.Scale(1/l), min(l/3, vg.Points(3)), color.Black)
	}
}

func (q *quiver) DataRange() (xmin, xmax, ymin, ymax float64) {
	return q.X.Min(), q.X.Max(), q.Y.Min(), q.Y.Max()
}
