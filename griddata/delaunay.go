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

package griddata

import (
	"errors"
	"math"

	"github.com/fogleman/delaunay"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Triangulation is the Delaunay triangulation of a set of points in the
// plane.
//
// A Triangulation is not modified after it has been constructed, and can
// be used concurrently by multiple goroutines.
type Triangulation struct {
	// pts holds the distinct input points.
	pts []vec.Vec2

	// orig[v] is the index of vertex v in the original input.
	orig []int

	// nIn is the number of points passed to New, including duplicates.
	nIn int

	tris []triangle

	// star[v] lists the triangles with vertex v.
	star [][]int

	bbox rect.Rect
	eps  float64
}

// triangle vertices are in counter-clockwise order.  nb[i] is the triangle
// on the other side of the edge opposite v[i], or -1 on the convex hull.
type triangle struct {
	v  [3]int
	nb [3]int
}

// baryEps is the tolerance used when deciding whether a point lies inside
// a triangle.
const baryEps = 1e-10

// New computes the Delaunay triangulation of the given points.
//
// Points which exactly repeat an earlier point are ignored.  At least three
// distinct points are required, and the points must not all lie on a
// straight line.
func New(points []vec.Vec2) (*Triangulation, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}

	tr := &Triangulation{nIn: len(points)}
	seen := make(map[vec.Vec2]bool, len(points))
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return nil, ErrNonFinite
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		tr.pts = append(tr.pts, p)
		tr.orig = append(tr.orig, i)
	}
	n := len(tr.pts)
	if n < 3 {
		return nil, ErrTooFewPoints
	}

	tr.bbox = boundingBox(tr.pts)
	size := max(tr.bbox.Dx(), tr.bbox.Dy())
	tr.eps = 1e-12 * size
	if !tr.spansPlane() {
		return nil, ErrCollinear
	}

	// The points are mapped into the unit square.  A uniform scaling keeps
	// the triangulation unchanged.
	unit := make([]delaunay.Point, n)
	for v, p := range tr.pts {
		unit[v] = delaunay.Point{
			X: (p.X - tr.bbox.LLx) / size,
			Y: (p.Y - tr.bbox.LLy) / size,
		}
	}
	dt, err := delaunay.Triangulate(unit)
	if err != nil || len(dt.Triangles) == 0 {
		return nil, ErrCollinear
	}

	nt := len(dt.Triangles) / 3
	tr.tris = make([]triangle, nt)
	tr.star = make([][]int, n)
	for t := range nt {
		tri := &tr.tris[t]
		for k := range 3 {
			e := 3*t + k
			tri.v[k] = dt.Triangles[e]
			// half-edge e runs from v[k] to v[k+1]
			tri.nb[(k+2)%3] = -1
			if h := dt.Halfedges[e]; h >= 0 {
				tri.nb[(k+2)%3] = h / 3
			}
		}
		if orient(tr.pts[tri.v[0]], tr.pts[tri.v[1]], tr.pts[tri.v[2]]) < 0 {
			tri.v[1], tri.v[2] = tri.v[2], tri.v[1]
			tri.nb[1], tri.nb[2] = tri.nb[2], tri.nb[1]
		}
		for _, v := range tri.v {
			tr.star[v] = append(tr.star[v], t)
		}
	}

	// Points closer than rounding precision to another point are left out
	// of the triangulation.  Any other point outside all triangles means
	// that near-collinear input gave a degenerate triangulation.
	for v := range tr.star {
		if len(tr.star[v]) > 0 {
			continue
		}
		if _, _, ok := tr.locate(tr.pts[v], 0); !ok {
			return nil, ErrCollinear
		}
	}

	return tr, nil
}

// spansPlane checks that not all points lie on a common straight line.
func (tr *Triangulation) spansPlane() bool {
	p0 := tr.pts[0]
	p1 := p0
	best := 0.0
	for _, p := range tr.pts[1:] {
		if d := p.Sub(p0).Length(); d > best {
			best = d
			p1 = p
		}
	}
	if best == 0 {
		return false
	}
	for _, p := range tr.pts {
		// orient/best is the distance of p from the line through p0 and p1
		if math.Abs(orient(p0, p1, p)) > tr.eps*best {
			return true
		}
	}
	return false
}

// walk finds the triangle containing p, starting the search at triangle t.
// If the walk leaves the triangulation, the return values are the last
// triangle visited and the edge (opposite vertex index) it left through.
func (tr *Triangulation) walk(p vec.Vec2, t int) (int, int) {
	limit := 4*len(tr.tris) + 16
	for step := 0; step < limit; step++ {
		tri := &tr.tris[t]
		next, exit := t, -1
		for k := range 3 {
			// vary the order of the edge tests, so that the walk cannot
			// cycle on degenerate configurations.
			i := (k + step) % 3
			a, b := tr.pts[tri.v[(i+1)%3]], tr.pts[tri.v[(i+2)%3]]
			if orient(a, b, p) < 0 {
				next, exit = tri.nb[i], i
				break
			}
		}
		if next == t {
			return t, -1
		}
		if next < 0 {
			return t, exit
		}
		t = next
	}
	return tr.scan(p), -1
}

// scan finds a triangle containing p by testing every triangle.
// If there is none, -1 is returned.
func (tr *Triangulation) scan(p vec.Vec2) int {
	for t := range tr.tris {
		if inside(tr.barycentric(t, p)) {
			return t
		}
	}
	return -1
}

// barycentric returns the barycentric coordinates of p with respect to
// triangle t.
func (tr *Triangulation) barycentric(t int, p vec.Vec2) [3]float64 {
	tri := &tr.tris[t]
	a, b, c := tr.pts[tri.v[0]], tr.pts[tri.v[1]], tr.pts[tri.v[2]]
	det := orient(a, b, c)
	w0 := orient(p, b, c) / det
	w1 := orient(a, p, c) / det
	return [3]float64{w0, w1, 1 - w0 - w1}
}

func inside(w [3]float64) bool {
	return w[0] >= -baryEps && w[1] >= -baryEps && w[2] >= -baryEps
}

// orient returns twice the signed area of the triangle abc.
// The result is positive if the points are in counter-clockwise order.
func orient(a, b, c vec.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func boundingBox(pts []vec.Vec2) rect.Rect {
	bbox := rect.Rect{
		LLx: pts[0].X, LLy: pts[0].Y,
		URx: pts[0].X, URy: pts[0].Y,
	}
	for _, p := range pts[1:] {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}
	return bbox
}

var (
	// ErrTooFewPoints is returned if fewer than three distinct points are
	// given.
	ErrTooFewPoints = errors.New("griddata: at least three distinct points are required")

	// ErrCollinear is returned if all points lie on a straight line.
	ErrCollinear = errors.New("griddata: all points are collinear")

	// ErrNonFinite is returned if a point has a NaN or infinite coordinate.
	ErrNonFinite = errors.New("griddata: point coordinates must be finite")
)
