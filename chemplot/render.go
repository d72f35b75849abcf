/*
 * render.go, part of csg.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

//Package chemplot draws csg structures with gonum/plot.
package chemplot

import (
	"fmt"
	"math"

	"github.com/rmera/csg"
	"github.com/rmera/csg/layout"
	v3 "github.com/rmera/csg/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Options control how a structure is drawn.
type Options struct {
	Theme     Theme
	Azimuth   float64 //rotation around Z, radians
	Elevation float64 //rotation around X, radians
	Width     vg.Length
	Height    vg.Length
	Title     string
}

//DefaultOptions gives a 5x5 inch light picture, seen slightly from above.
func DefaultOptions() Options {
	return Options{
		Theme:     Light,
		Azimuth:   math.Pi / 6,
		Elevation: -math.Pi / 3,
		Width:     5 * vg.Inch,
		Height:    5 * vg.Inch,
	}
}

//BondOrder returns the order of the bond between a central atom and an atom of the
//given element: single for elements with one valence electron, otherwise
//the electrons the element lacks to complete 8, kept between 1 and 3.
func BondOrder(symbol string) int {
	ve, ok := csg.ValenceElectrons(symbol)
	if !ok || ve == 1 {
		return 1
	}
	o := 8 - ve
	if o < 1 {
		return 1
	}
	if o > 3 {
		return 3
	}
	return o
}

func markerRadius(symbol string) vg.Length {
	return vg.Points(5 + 2*math.Cbrt(float64(csg.AtomicNumber(symbol))))
}

//NewPlot builds the picture of S: bonds from the central atom to every other atom,
//and one circle per atom, colored by element. The coordinates are rotated
//according to opt and projected on the XY plane.
func NewPlot(S *layout.Structure, opt Options) (*plot.Plot, error) {
	if S == nil || S.Len() < 2 {
		return nil, fmt.Errorf("chemplot.NewPlot: nothing to draw")
	}
	view := v3.Zeros(S.Len())
	view.Rotate(S.Coords, v3.ViewRotation(opt.Azimuth, opt.Elevation))

	p := plot.New()
	p.Title.Text = opt.Title
	p.Title.TextStyle.Color = opt.Theme.foreground()
	p.BackgroundColor = opt.Theme.background()
	p.Legend.TextStyle.Color = opt.Theme.foreground()
	p.Legend.Top = true
	p.HideAxes()

	//keep the aspect ratio, and some room for the circles.
	lim := 0.0
	for i := 0; i < view.NVecs(); i++ {
		v := view.Vec(i)
		lim = math.Max(lim, math.Max(math.Abs(v[0]), math.Abs(v[1])))
	}
	lim = 1.25*lim + 0.1
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim

	center := view.Vec(0)
	var orders []int
	for i := 1; i < S.Len(); i++ {
		v := view.Vec(i)
		order := BondOrder(S.Symbols[i])
		bond, err := plotter.NewLine(plotter.XYs{{X: center[0], Y: center[1]}, {X: v[0], Y: v[1]}})
		if err != nil {
			return nil, err
		}
		c, w := opt.Theme.bondStyle(order)
		bond.LineStyle.Color = c
		bond.LineStyle.Width = vg.Points(w)
		p.Add(bond)
		if !isInInt(orders, order) {
			orders = append(orders, order)
			p.Legend.Add(bondNames[order]+" bond", bond)
		}
	}
	//the bonded atoms, one scatter per element, then the central atom on top.
	var done []string
	for i := 1; i < S.Len(); i++ {
		symbol := S.Symbols[i]
		if isInString(done, symbol) || symbol == S.Symbols[0] {
			continue
		}
		done = append(done, symbol)
		var pts plotter.XYs
		for j := 1; j < S.Len(); j++ {
			if S.Symbols[j] == symbol {
				v := view.Vec(j)
				pts = append(pts, plotter.XY{X: v[0], Y: v[1]})
			}
		}
		s, err := atoms(pts, symbol)
		if err != nil {
			return nil, err
		}
		p.Add(s)
		p.Legend.Add(symbol, s)
	}
	s, err := atoms(plotter.XYs{{X: center[0], Y: center[1]}}, S.Symbols[0])
	if err != nil {
		return nil, err
	}
	p.Add(s)
	p.Legend.Add(S.Symbols[0], s)
	return p, nil
}

func atoms(pts plotter.XYs, symbol string) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Color = csg.MarkerColor(symbol)
	s.GlyphStyle.Radius = markerRadius(symbol)
	return s, nil
}

//Render draws S and saves it to filename. The format is taken from the extension
//(png, svg, pdf, ...).
func Render(S *layout.Structure, filename string, opt Options) error {
	p, err := NewPlot(S, opt)
	if err != nil {
		return err
	}
	if opt.Width <= 0 || opt.Height <= 0 {
		d := DefaultOptions()
		opt.Width, opt.Height = d.Width, d.Height
	}
	//here I  intentionally shadow err.
	if err := p.Save(opt.Width, opt.Height, filename); err != nil {
		return fmt.Errorf("chemplot.Render: %w", err)
	}
	return nil
}
