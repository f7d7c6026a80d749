/*
 * grids.go, part of goChem.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goChem is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package chemplot draws the grids of coordinate scans.
package chemplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/rmera/tsscan/reac"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//series is one set of points to draw, with its legend label.
type series struct {
	label string
	xy    plotter.XYs
}

func basicGridPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//labels returns one legend label per grid of spec. The two grids of
//a barrierless scan are both segments of the same coordinate.
func labels(spec *reac.ScanSpec) ([]string, error) {
	if len(spec.Grids) == 0 || len(spec.Names) == 0 {
		return nil, fmt.Errorf("chemplot: empty scan")
	}
	ret := make([]string, len(spec.Grids))
	for i := range spec.Grids {
		switch {
		case spec.Barrierless:
			ret[i] = fmt.Sprintf("%s, segment %d", spec.Names[0], i+1)
		case i < len(spec.Names):
			ret[i] = spec.Names[i]
		default:
			return nil, fmt.Errorf("chemplot: %d grids but %d coordinates", len(spec.Grids), len(spec.Names))
		}
	}
	return ret, nil
}

//gridSeries returns the points of each grid against their index.
//The segments of a barrierless scan are numbered continuously.
func gridSeries(spec *reac.ScanSpec) ([]series, error) {
	lbl, err := labels(spec)
	if err != nil {
		return nil, err
	}
	ret := make([]series, 0, len(spec.Grids))
	offset := 0
	for i, g := range spec.Grids {
		xy := make(plotter.XYs, len(g))
		for j, v := range g {
			xy[j].X = float64(j + offset)
			xy[j].Y = v
		}
		if spec.Barrierless {
			offset += len(g)
		}
		ret = append(ret, series{label: lbl[i], xy: xy})
	}
	return ret, nil
}

//stepSeries returns the difference between consecutive points of each grid.
func stepSeries(spec *reac.ScanSpec) ([]series, error) {
	lbl, err := labels(spec)
	if err != nil {
		return nil, err
	}
	ret := make([]series, 0, len(spec.Grids))
	for i, g := range spec.Grids {
		xy := make(plotter.XYs, 0, len(g))
		for j := 1; j < len(g); j++ {
			xy = append(xy, plotter.XY{X: float64(j), Y: math.Abs(g[j] - g[j-1])})
		}
		if len(xy) == 0 {
			continue
		}
		ret = append(ret, series{label: lbl[i], xy: xy})
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("chemplot: no grid has more than one point")
	}
	return ret, nil
}

func draws(p *plot.Plot, data []series) error {
	for key, s := range data {
		l, sc, err := plotter.NewLinePoints(s.xy)
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(data))
		c := color.RGBA{R: r, G: g, B: b, A: 255}
		l.Color = c
		sc.Color = c
		//past the available shapes, the default glyph is used
		if shape, err := getShape(key); err == nil {
			sc.Shape = shape
		}
		p.Add(l, sc)
		p.Legend.Add(s.label, l, sc)
	}
	return nil
}

//GridPlot draws the points of each grid of spec against their index, and saves the
//plot to plotname. The extension of plotname sets the format (png, svg, pdf or eps).
//unit is the length unit of the grids, used in the axis label.
func GridPlot(spec *reac.ScanSpec, title, unit, plotname string) error {
	data, err := gridSeries(spec)
	if err != nil {
		return err
	}
	p := basicGridPlot(title, "Point", fmt.Sprintf("Distance (%s)", unit))
	if err := draws(p, data); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, plotname)
}

//StepPlot draws the size of the step between consecutive points of each grid of spec,
//and saves the plot to plotname.
func StepPlot(spec *reac.ScanSpec, title, unit, plotname string) error {
	data, err := stepSeries(spec)
	if err != nil {
		return err
	}
	p := basicGridPlot(title, "Point", fmt.Sprintf("Step (%s)", unit))
	if err := draws(p, data); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, plotname)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

//colors returns a color for the key-th of steps series, spread over the hue wheel
//and skipping the yellows.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return iHVS2RGB(h, 1, 1)
}

func getShape(key int) (draw.GlyphDrawer, error) {
	switch key {
	case 0:
		return draw.CircleGlyph{}, nil
	case 1:
		return draw.PyramidGlyph{}, nil
	case 2:
		return draw.SquareGlyph{}, nil
	case 3:
		return draw.CrossGlyph{}, nil
	}
	return draw.RingGlyph{}, fmt.Errorf("chemplot: only 4 series get their own glyph")
}
