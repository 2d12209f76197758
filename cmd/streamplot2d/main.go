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

// Streamplot2d draws streamplots of vector fields given at scattered
// points.
//
// Without the -in flag, a demonstration field on a distorted 30x30 grid is
// shown.  With -in, the samples are read from a CSV file with columns x, y,
// u, v and an optional fifth column of colour values.
//
// Usage:
//
//	streamplot2d [flags]
//
// The flags are:
//
//	-o file
//		output file; the format is taken from the file name extension.
//		Use "-" to write a PNG image to stdout.
//	-in file
//		read samples from a CSV file
//	-dump file
//		write the resampled grid of the first streamplot as CSV
//	-nx, -ny n
//		resolution of the interpolation grid
//	-scale s
//		line width scaling factor
//	-density d
//		glyph density
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/streamplot"
	"seehuhn.de/go/streamplot/plotaxes"
)

var (
	outFile  = flag.String("o", "streamplot2d.png", "output file name")
	inFile   = flag.String("in", "", "CSV file with x, y, u, v samples")
	dumpFile = flag.String("dump", "", "write the resampled grid to this CSV file")
	nx       = flag.Int("nx", 500, "number of grid points along x")
	ny       = flag.Int("ny", 500, "number of grid points along y")
	scale    = flag.Float64("scale", 0.8, "line width scaling factor")
	density  = flag.Float64("density", 1, "glyph density")
	width    = flag.Float64("width", 12, "figure width in inches")
	height   = flag.Float64("height", 10, "figure height in inches")
)

func main() {
	flag.Parse()
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var f *field
	var err error
	if *inFile != "" {
		f, err = readSamples(*inFile)
		if err != nil {
			return err
		}
	} else {
		f = demoField(30)
	}

	fig := &figure{field: f}
	var panels [][]*plotaxes.Axes
	if f.isMesh() {
		panels, err = fig.meshPanels()
	} else {
		panels, err = fig.scatterPanels()
	}
	if err != nil {
		return err
	}

	if *dumpFile != "" && fig.first != nil {
		err = writeGridFile(*dumpFile, fig.first)
		if err != nil {
			return err
		}
	}

	if fig.first != nil {
		total := fig.first.U.NX * fig.first.U.NY
		p := message.NewPrinter(language.English)
		p.Fprintf(os.Stderr, "%d samples, %d grid cells, %d masked\n",
			f.X.Len(), total, total-fig.first.U.Count())
	}

	return writeFigure(panels)
}

func writeFigure(panels [][]*plotaxes.Axes) error {
	w := vg.Length(*width) * vg.Inch
	h := vg.Length(*height) * vg.Inch

	if *outFile == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write image data to a terminal")
		}
		return plotaxes.Tile(panels, w, h, "png", os.Stdout)
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(*outFile), "."))
	if format == "" {
		return fmt.Errorf("%s: cannot determine the output format", *outFile)
	}
	out, err := os.Create(*outFile)
	if err != nil {
		return err
	}
	err = plotaxes.Tile(panels, w, h, format, out)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// figure collects the panels of the output figure.
type figure struct {
	field *field

	// first is the first resampled grid, used for -dump and the summary.
	first *streamplot.Call
}

// meshPanels reproduces the classic layout: arrows at the sample points,
// then streamplots with magnitude-dependent line widths (top row) and
// colours (bottom row), for both the mesh and the flattened samples.
func (fig *figure) meshPanels() ([][]*plotaxes.Axes, error) {
	f := fig.field
	flat := f.flatten()

	quiver := plotaxes.New("samples")
	if err := quiver.Pcolor(f.X, f.Y, f.magnitude(), nil); err != nil {
		return nil, err
	}
	if err := quiver.Quiver(f.X, f.Y, f.U, f.V); err != nil {
		return nil, err
	}

	widthOpt := &streamplot.Options{
		LineWidth: streamplot.Magnitude{},
		Scale:     *scale,
		Extra:     map[string]any{"density": *density},
	}
	colorOpt := &streamplot.Options{
		Color: streamplot.Magnitude{},
		Extra: map[string]any{"density": *density},
	}

	top1, err := fig.panel("line width, mesh", f, f, widthOpt)
	if err != nil {
		return nil, err
	}
	top2, err := fig.panel("line width, scattered", flat, f, widthOpt)
	if err != nil {
		return nil, err
	}
	bottom1, err := fig.panel("colour, mesh", f, f, colorOpt)
	if err != nil {
		return nil, err
	}
	bottom2, err := fig.panel("colour, scattered", flat, f, colorOpt)
	if err != nil {
		return nil, err
	}

	return [][]*plotaxes.Axes{
		{quiver, top1, top2},
		{nil, bottom1, bottom2},
	}, nil
}

// scatterPanels shows samples which do not form a mesh.
func (fig *figure) scatterPanels() ([][]*plotaxes.Axes, error) {
	f := fig.field

	quiver := plotaxes.New("samples")
	if err := quiver.Quiver(f.X, f.Y, f.U, f.V); err != nil {
		return nil, err
	}

	lw, err := fig.panel("line width", f, nil, &streamplot.Options{
		LineWidth: streamplot.Magnitude{},
		Scale:     *scale,
		Extra:     map[string]any{"density": *density},
	})
	if err != nil {
		return nil, err
	}

	var color streamplot.Style = streamplot.Magnitude{}
	if f.C != nil {
		color = streamplot.PerPoint{Values: f.C}
	}
	col, err := fig.panel("colour", f, nil, &streamplot.Options{
		Color: color,
		Extra: map[string]any{"density": *density},
	})
	if err != nil {
		return nil, err
	}

	return [][]*plotaxes.Axes{{quiver, lw, col}}, nil
}

// panel resamples the field and draws a streamplot onto a new Axes.
// If bg is not nil, the magnitude of bg is shown in the background.
func (fig *figure) panel(title string, f, bg *field, opt *streamplot.Options) (*plotaxes.Axes, error) {
	ax := plotaxes.New(title)
	if bg != nil {
		err := ax.Pcolor(bg.X, bg.Y, bg.magnitude(), nil)
		if err != nil {
			return nil, err
		}
	}

	rec := &streamplot.Recorder{}
	_, err := streamplot.Streamplot2D(rec, f.X, f.Y, f.U, f.V, *nx, *ny, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	if fig.first == nil {
		fig.first = rec.Last()
	}
	_, err = rec.ApplyTo(ax)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	return ax, nil
}

func writeGridFile(fname string, c *streamplot.Call) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = writeGrid(out, c)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
