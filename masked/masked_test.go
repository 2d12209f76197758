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

package masked

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestInvalid(t *testing.T) {
	data := []float64{1, math.NaN(), 3, math.Inf(1), 5, math.Inf(-1)}
	g, err := Invalid(3, 2, data)
	if err != nil {
		t.Fatal(err)
	}

	wantMask := []bool{false, true, false, true, false, true}
	if d := cmp.Diff(wantMask, g.Mask); d != "" {
		t.Error(d)
	}
	if n := g.Count(); n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}

	z, ok := g.At(2, 0)
	if !ok || z != 3 {
		t.Errorf("At(2, 0) = %g, %t", z, ok)
	}
	if g.Valid(0, 1) {
		t.Error("cell (0, 1) should be masked")
	}
}

func TestInvalidSize(t *testing.T) {
	_, err := Invalid(2, 2, make([]float64, 5))
	if err == nil {
		t.Error("expected an error")
	}
}

func TestNoNaNInResults(t *testing.T) {
	u, _ := Invalid(2, 2, []float64{3, math.NaN(), -1, 0})
	v, _ := Invalid(2, 2, []float64{4, 1, math.NaN(), 0})

	m, err := Hypot(u, v)
	if err != nil {
		t.Fatal(err)
	}
	s := m.Sqrt().Scale(2)

	for _, g := range []*Grid{m, s} {
		for k, z := range g.Data {
			if math.IsNaN(z) {
				t.Errorf("NaN stored in cell %d", k)
			}
		}
	}

	want := []float64{2 * math.Sqrt(5), 0, 0, 0}
	if d := cmp.Diff(want, s.Data, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
	wantMask := []bool{false, true, true, false}
	if d := cmp.Diff(wantMask, s.Mask); d != "" {
		t.Error(d)
	}
}

func TestSqrtNegative(t *testing.T) {
	g, _ := Invalid(2, 1, []float64{-4, 4})
	r := g.Sqrt()
	if r.Valid(0, 0) {
		t.Error("square root of negative value should be masked")
	}
	if z, _ := r.At(1, 0); z != 2 {
		t.Errorf("sqrt(4) = %g", z)
	}
}

func TestHypotShape(t *testing.T) {
	_, err := Hypot(New(2, 3), New(3, 2))
	if err == nil {
		t.Error("expected an error")
	}
}

func TestMinMax(t *testing.T) {
	g, _ := Invalid(4, 1, []float64{math.NaN(), 7, -2, 3})
	lo, ok1 := g.Min()
	hi, ok2 := g.Max()
	if !ok1 || !ok2 || lo != -2 || hi != 7 {
		t.Errorf("range = [%g, %g], %t %t", lo, hi, ok1, ok2)
	}

	empty, _ := Invalid(1, 1, []float64{math.NaN()})
	if _, ok := empty.Max(); ok {
		t.Error("Max() of a fully masked grid should fail")
	}
}

func TestFilled(t *testing.T) {
	g, _ := Invalid(3, 1, []float64{1, math.NaN(), 2})
	got := g.Filled(-1)
	if d := cmp.Diff([]float64{1, -1, 2}, got); d != "" {
		t.Error(d)
	}
}

func TestAtOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	New(2, 2).At(2, 0)
}
