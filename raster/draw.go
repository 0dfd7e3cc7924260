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

package raster

import (
	"image"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sunburst/palette"
	"seehuhn.de/go/sunburst/scene"
)

// Draw clears the canvas to the background colour and draws all segments
// of the scene, each in the colour of its ray family. The scene is placed
// so that the drawable area starts at (Padding, Padding).
func Draw(cv Canvas, s *scene.Scene, pal palette.Palette, width float64) {
	cv.Clear(pal.Background)
	off := vec.Vec2{X: s.Dims.Padding, Y: s.Dims.Padding}
	for seg := range s.Segments() {
		c := pal.ForFamily(seg.Position.Family())
		cv.Line(seg.Anchor.Add(off), seg.Tip.Add(off), width, c)
	}
}

// Render draws the scene on a new canvas of the scene's size and returns
// the resulting image.
func Render(backend string, s *scene.Scene, pal palette.Palette, width float64) (*image.RGBA, error) {
	cv, err := NewCanvas(backend, int(s.Dims.Width), int(s.Dims.Height))
	if err != nil {
		return nil, err
	}
	Draw(cv, s, pal, width)
	return cv.Image(), nil
}
