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
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
)

// ParseColor converts a fixed colour value into a [color.Color].
// The value can either be a color.Color, or the name of an SVG 1.1
// colour like "darkblue".
func ParseColor(val any) (color.Color, error) {
	switch val := val.(type) {
	case color.Color:
		return val, nil
	case string:
		name := strings.ToLower(strings.ReplaceAll(val, " ", ""))
		if col, ok := colornames.Map[name]; ok {
			return col, nil
		}
		return nil, fmt.Errorf("plotaxes: unknown colour %q", val)
	default:
		return nil, fmt.Errorf("plotaxes: cannot use %T as a colour", val)
	}
}

// parseWidth converts a fixed line width, given in points, into a
// [vg.Length].
func parseWidth(val any) (vg.Length, error) {
	if l, ok := val.(vg.Length); ok {
		return l, nil
	}
	if x, ok := toFloat(val); ok && x >= 0 {
		return vg.Points(x), nil
	}
	return 0, fmt.Errorf("plotaxes: invalid line width %v", val)
}

func toFloat(val any) (float64, bool) {
	switch val := val.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}

// scaledMap maps values in the range [lo, hi] to colours.  Values outside
// the range are clamped.
type scaledMap struct {
	lo, hi float64
	colors []color.Color
}

// mapSize is the number of colours sampled from a colour map.
const mapSize = 256

// newScaledMap samples cmap so that its full range covers [lo, hi].
// If cmap is nil, a default map is used.
//
// The range of cmap is changed while the colours are sampled and is restored
// afterwards, so that cmap can be shared between plots.  The same cmap must
// not be used concurrently.
func newScaledMap(cmap palette.ColorMap, lo, hi float64) *scaledMap {
	if cmap == nil {
		cmap = moreland.SmoothBlueRed()
	}
	if !(hi > lo) {
		hi = lo + 1
	}

	oldMin, oldMax := cmap.Min(), cmap.Max()
	cmap.SetMax(1)
	cmap.SetMin(0)
	colors := make([]color.Color, mapSize)
	for i := range colors {
		col, err := cmap.At(float64(i) / (mapSize - 1))
		if err != nil {
			col = color.Black
		}
		colors[i] = col
	}
	cmap.SetMin(oldMin)
	cmap.SetMax(oldMax)

	return &scaledMap{lo: lo, hi: hi, colors: colors}
}

func (m *scaledMap) At(z float64) color.Color {
	t := (z - m.lo) / (m.hi - m.lo)
	t = max(0, min(1, t))
	if math.IsNaN(t) {
		t = 0
	}
	return m.colors[int(math.Round(t*(mapSize-1)))]
}

// grayMap returns a colour map from black to white.
func grayMap() palette.ColorMap {
	cmap, err := moreland.NewLuminance([]color.Color{
		color.Gray{Y: 0},
		color.Gray{Y: 255},
	})
	if err != nil {
		panic(err)
	}
	return cmap
}
