// seehuhn.de/go/sunburst - procedurally generated ray patterns
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

package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sunburst"
)

// Scenario describes a complete ray pattern: canvas, parameters and seed.
type Scenario struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Dims   sunburst.Dimensions
	Params sunburst.Parameters
	Seed   uint64
}

// Line describes a single stroked line for rasteriser tests.
type Line struct {
	Name   string
	A, B   vec.Vec2              // end points, in pixels
	Width  float64               // line width (>0)
	Cap    graphics.LineCapStyle // LineCapButt, LineCapRound, LineCapSquare
	Canvas [2]int                // canvas width and height in pixels
}

// Inside reports whether the stroked line, including its caps, lies
// completely inside the canvas.
func (l Line) Inside() bool {
	ext := l.Width / 2 * 1.5 // covers the corners of square caps
	w, h := float64(l.Canvas[0]), float64(l.Canvas[1])
	for _, p := range []vec.Vec2{l.A, l.B} {
		if p.X-ext < 0 || p.X+ext > w || p.Y-ext < 0 || p.Y+ext > h {
			return false
		}
	}
	return true
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func dims(w, h, padding float64) sunburst.Dimensions {
	return sunburst.Dimensions{Width: w, Height: h, Padding: padding}
}

func params(spacing, scale float64) sunburst.Parameters {
	return sunburst.Parameters{DegreeSpacing: spacing, RayLengthScale: scale}
}
