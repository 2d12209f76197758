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
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/streamplot/griddata"
	"seehuhn.de/go/streamplot/masked"
)

// skewedField returns the vector field U = -1 - X^2 + Y, V = 1 + X - Y^2
// on a slightly distorted n x n grid covering approximately [-3, 3]^2.
func skewedField(n int) (X, Y, U, V *Array) {
	s := linspace(-3, 3, n)
	X, Y = Meshgrid(s, s)
	for k := range X.Data {
		X.Data[k] += 0.1 * Y.Data[k]
		Y.Data[k] += 0.1 * X.Data[k]
	}
	U = &Array{Shape: X.Shape, Data: make([]float64, X.Len())}
	V = &Array{Shape: X.Shape, Data: make([]float64, X.Len())}
	for k := range X.Data {
		x, y := X.Data[k], Y.Data[k]
		U.Data[k] = -1 - x*x + y
		V.Data[k] = 1 + x - y*y
	}
	return X, Y, U, V
}

func record(t *testing.T, X, Y, U, V *Array, nx, ny int, opt *Options) *Call {
	t.Helper()
	rec := &Recorder{}
	res, err := Streamplot2D(rec, X, Y, U, V, nx, ny, opt)
	if err != nil {
		t.Fatal(err)
	}
	call, ok := res.(*Call)
	if !ok || call != rec.Last() {
		t.Fatalf("unexpected result %v", res)
	}
	return call
}

// TestIdentity checks that resampling a field given on a regular grid onto
// the same grid reproduces the field.
func TestIdentity(t *testing.T) {
	xs := linspace(-1, 2, 7)
	ys := linspace(0, 1, 5)
	X, Y := Meshgrid(xs, ys)
	U := &Array{Shape: X.Shape, Data: make([]float64, X.Len())}
	V := &Array{Shape: X.Shape, Data: make([]float64, X.Len())}
	for k := range X.Data {
		U.Data[k] = math.Sin(X.Data[k]) + Y.Data[k]
		V.Data[k] = X.Data[k] * Y.Data[k]
	}

	call := record(t, X, Y, U, V, len(xs), len(ys), nil)

	if call.U.Count() != U.Len() || call.V.Count() != V.Len() {
		t.Fatal("cells inside the sample grid were masked")
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	if d := cmp.Diff(U.Data, call.U.Data, approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(V.Data, call.V.Data, approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(xs, call.X); d != "" {
		t.Error(d)
	}
}

func TestGridAxes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 50
	X := &Array{Data: make([]float64, n)}
	Y := &Array{Data: make([]float64, n)}
	U := &Array{Data: make([]float64, n)}
	V := &Array{Data: make([]float64, n)}
	for k := range n {
		X.Data[k] = 10*rng.Float64() - 3
		Y.Data[k] = 0.1 * rng.Float64()
		U.Data[k] = rng.NormFloat64()
		V.Data[k] = rng.NormFloat64()
	}

	for _, size := range [][2]int{{2, 2}, {17, 5}, {3, 40}} {
		nx, ny := size[0], size[1]
		call := record(t, X, Y, U, V, nx, ny, nil)

		check := func(name string, grid []float64, n int, lo, hi float64) {
			if len(grid) != n {
				t.Fatalf("%s has %d values, want %d", name, len(grid), n)
			}
			if grid[0] != lo || grid[n-1] != hi {
				t.Errorf("%s spans [%g, %g], want [%g, %g]", name, grid[0], grid[n-1], lo, hi)
			}
			for i := 1; i < n; i++ {
				if grid[i] <= grid[i-1] {
					t.Errorf("%s is not strictly increasing at %d", name, i)
				}
			}
		}
		check("x", call.X, nx, X.Min(), X.Max())
		check("y", call.Y, ny, Y.Min(), Y.Max())

		if call.U.NX != nx || call.U.NY != ny {
			t.Errorf("u has size %dx%d, want %dx%d", call.U.NX, call.U.NY, nx, ny)
		}
	}
}

func TestMagnitude(t *testing.T) {
	X, Y, U, V := skewedField(12)
	const scale = 0.8
	call := record(t, X, Y, U, V, 40, 30, &Options{
		LineWidth: Magnitude{},
		Color:     Magnitude{},
		Scale:     scale,
	})

	lw := call.Args.LineWidth.Grid
	col := call.Args.Color.Grid
	if lw == nil || col == nil {
		t.Fatal("missing grids")
	}
	for j := range call.U.NY {
		for i := range call.U.NX {
			u, okU := call.U.At(i, j)
			v, okV := call.V.At(i, j)
			w, okW := lw.At(i, j)
			c, okC := col.At(i, j)
			if okW != (okU && okV) || okC != (okU && okV) {
				t.Fatalf("wrong mask at (%d, %d)", i, j)
			}
			if !okW {
				continue
			}
			m := math.Sqrt(math.Hypot(u, v))
			if math.Abs(w-scale*m) > 1e-12 {
				t.Errorf("line width at (%d, %d) = %g, want %g", i, j, w, scale*m)
			}
			if math.Abs(c-m) > 1e-12 {
				t.Errorf("colour at (%d, %d) = %g, want %g", i, j, c, m)
			}
		}
	}
}

// TestPerPoint checks that auxiliary fields are interpolated in the same
// way as the vector field.
func TestPerPoint(t *testing.T) {
	X, Y, U, V := skewedField(10)
	const scale = 2.5
	call := record(t, X, Y, U, V, 25, 25, &Options{
		LineWidth: PerPoint{Values: U},
		Color:     PerPoint{Values: V},
		Scale:     scale,
	})

	if call.U.Count() == call.U.NX*call.U.NY {
		t.Fatal("expected masked cells outside the skewed grid")
	}

	approx := cmpopts.EquateApprox(0, 1e-12)
	lw := call.Args.LineWidth.Grid
	if d := cmp.Diff(call.U.Scale(scale), lw, approx); d != "" {
		t.Error(d)
	}
	col := call.Args.Color.Grid
	if d := cmp.Diff(call.V, col, approx); d != "" {
		t.Error(d)
	}
}

func TestFixed(t *testing.T) {
	X, Y, U, V := skewedField(5)
	call := record(t, X, Y, U, V, 10, 10, &Options{
		LineWidth: Fixed{Value: 1.5},
		Color:     Fixed{Value: "magenta"},
		Scale:     3,
	})
	if call.Args.LineWidth.Fixed != 1.5 || call.Args.LineWidth.Grid != nil {
		t.Errorf("line width = %v", call.Args.LineWidth)
	}
	if call.Args.Color.Fixed != "magenta" || call.Args.Color.Grid != nil {
		t.Errorf("colour = %v", call.Args.Color)
	}

	call = record(t, X, Y, U, V, 10, 10, nil)
	if call.Args.LineWidth.IsSet() || call.Args.Color.IsSet() {
		t.Error("absent styles should not be set")
	}
}

func TestShapeMismatch(t *testing.T) {
	X, Y, U, V := skewedField(6)

	cases := []*Options{
		{LineWidth: PerPoint{Values: U.Flatten()}},
		{Color: PerPoint{Values: &Array{Data: make([]float64, 5)}}},
		{Color: PerPoint{}},
	}
	for _, opt := range cases {
		_, err := Streamplot2D(&Recorder{}, X, Y, U, V, 10, 10, opt)
		var shapeErr *ShapeError
		if !errors.As(err, &shapeErr) {
			t.Errorf("expected a ShapeError, got %v", err)
		}
	}

	_, err := Streamplot2D(&Recorder{}, X, Y, U.Flatten(), V, 10, 10, nil)
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) || shapeErr.Name != "U" {
		t.Errorf("expected a ShapeError for U, got %v", err)
	}
}

// TestScattered checks that a flattened, shuffled copy of the samples gives
// the same grid as the original grid-shaped samples.
func TestScattered(t *testing.T) {
	X, Y, U, V := skewedField(15)
	opt := &Options{LineWidth: Magnitude{}, Scale: 0.8}
	want := record(t, X, Y, U, V, 31, 29, opt)

	n := X.Len()
	perm := rand.New(rand.NewSource(3)).Perm(n)
	shuffle := func(a *Array) *Array {
		res := &Array{Data: make([]float64, n)}
		for k, p := range perm {
			res.Data[k] = a.Data[p]
		}
		return res
	}
	got := record(t, shuffle(X), shuffle(Y), shuffle(U), shuffle(V), 31, 29, opt)

	approx := cmpopts.EquateApprox(0, 1e-9)
	if d := cmp.Diff(want.U, got.U, approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(want.V, got.V, approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(want.Args.LineWidth.Grid, got.Args.LineWidth.Grid, approx); d != "" {
		t.Error(d)
	}
}

func TestDemoField(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large grid in short mode")
	}

	X, Y, U, V := skewedField(30)
	const scale = 0.8
	call := record(t, X, Y, U, V, 500, 500, &Options{
		LineWidth: Magnitude{},
		Scale:     scale,
		Extra:     map[string]any{"density": 1.0},
	})

	lw := call.Args.LineWidth.Grid
	if lw == nil || lw.NX != 500 || lw.NY != 500 {
		t.Fatal("line width grid has wrong size")
	}
	m, err := masked.Hypot(call.U, call.V)
	if err != nil {
		t.Fatal(err)
	}
	mMax, ok := m.Max()
	if !ok {
		t.Fatal("all cells masked")
	}
	wMax, _ := lw.Max()
	if wMax > scale*math.Sqrt(mMax)+1e-12 {
		t.Errorf("line width %g exceeds %g", wMax, scale*math.Sqrt(mMax))
	}
	if call.Args.Extra["density"] != 1.0 {
		t.Error("extra options were not forwarded")
	}
}

func TestErrors(t *testing.T) {
	X, Y, U, V := skewedField(4)

	_, err := Streamplot2D(&Recorder{}, X, Y, U, V, 0, 10, nil)
	var sizeErr *GridSizeError
	if !errors.As(err, &sizeErr) {
		t.Errorf("expected a GridSizeError, got %v", err)
	}

	_, err = Streamplot2D(&Recorder{}, X, Y, U, V, 10, 10, &Options{
		Extra: map[string]any{"linewidth": 2.0},
	})
	var optErr *OptionError
	if !errors.As(err, &optErr) {
		t.Errorf("expected an OptionError, got %v", err)
	}

	line := &Array{Data: []float64{0, 1, 2, 3}}
	_, err = Streamplot2D(&Recorder{}, line, line, line, line, 10, 10, nil)
	if !errors.Is(err, griddata.ErrCollinear) {
		t.Errorf("expected ErrCollinear, got %v", err)
	}
}

// TestInconsistentArrays uses arrays whose data does not fit their shape.
func TestInconsistentArrays(t *testing.T) {
	X, Y, U, V := skewedField(5)
	short := &Array{Shape: Y.Shape, Data: Y.Data[:10]}

	cases := []struct {
		name       string
		X, Y, U, V *Array
		opt        *Options
	}{
		{"X", &Array{Shape: X.Shape, Data: X.Data[:24]}, Y, U, V, nil},
		{"Y", X, short, U, V, nil},
		{"V", X, Y, U, nil, nil},
		{"Color", X, Y, U, V, &Options{Color: PerPoint{Values: short}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Streamplot2D(&Recorder{}, c.X, c.Y, c.U, c.V, 10, 10, c.opt)
			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) || shapeErr.Name != c.name {
				t.Errorf("expected a ShapeError for %s, got %v", c.name, err)
			}
		})
	}
}

func TestScale(t *testing.T) {
	X, Y, U, V := skewedField(5)

	for _, scale := range []float64{-1, math.Inf(1), math.NaN()} {
		_, err := Streamplot2D(&Recorder{}, X, Y, U, V, 10, 10, &Options{
			LineWidth: Magnitude{},
			Scale:     scale,
		})
		var scaleErr *ScaleError
		if !errors.As(err, &scaleErr) {
			t.Errorf("scale %g: expected a ScaleError, got %v", scale, err)
		}
	}

	// the zero value means 1
	one := record(t, X, Y, U, V, 10, 10, &Options{LineWidth: Magnitude{}, Scale: 1})
	zero := record(t, X, Y, U, V, 10, 10, &Options{LineWidth: Magnitude{}})
	if d := cmp.Diff(one.Args.LineWidth.Grid, zero.Args.LineWidth.Grid); d != "" {
		t.Error(d)
	}
}

type failingAxes struct {
	err error
}

func (a failingAxes) Streamplot(x, y []float64, u, v *masked.Grid, args *Args) (any, error) {
	return "partial", a.err
}

func TestAxesResult(t *testing.T) {
	X, Y, U, V := skewedField(4)
	want := errors.New("cannot draw")
	res, err := Streamplot2D(failingAxes{err: want}, X, Y, U, V, 5, 5, nil)
	if err != want {
		t.Errorf("got error %v, want %v", err, want)
	}
	if res != "partial" {
		t.Errorf("got result %v", res)
	}
}

func TestRecorderApplyTo(t *testing.T) {
	X, Y, U, V := skewedField(4)
	rec := &Recorder{}
	for _, nx := range []int{5, 6} {
		if _, err := Streamplot2D(rec, X, Y, U, V, nx, 5, nil); err != nil {
			t.Fatal(err)
		}
	}

	other := &Recorder{}
	res, err := rec.ApplyTo(other)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 || len(other.Calls) != 2 {
		t.Fatalf("got %d results and %d calls", len(res), len(other.Calls))
	}
	if d := cmp.Diff(rec.Calls, other.Calls); d != "" {
		t.Error(d)
	}
}
