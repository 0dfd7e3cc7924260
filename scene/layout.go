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

package scene

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sunburst"
)

// Segment is a ray placed on the drawable area.
type Segment struct {
	Position Position
	Ray      sunburst.Ray

	// Anchor is the start point of the segment.
	Anchor vec.Vec2

	// End is the end point before rotation, i.e. Anchor plus Ray.Length
	// times the direction of the position.
	End vec.Vec2

	// Tip is End rotated by Ray.Angle degrees about Anchor.
	Tip vec.Vec2
}

// Rotation returns the matrix which rotates by angle degrees about the
// given center. The y axis is taken to point down, so that positive angles
// turn clockwise on screen, as for the SVG rotate() transform.
//
// The matrix uses the PDF layout [a b c d e f], mapping (x, y) to
// (a·x + c·y + e, b·x + d·y + f).
func Rotation(angle float64, center vec.Vec2) matrix.Matrix {
	s, c := math.Sincos(angle * math.Pi / 180)
	return matrix.Matrix{
		c, s,
		-s, c,
		center.X - center.X*c + center.Y*s,
		center.Y - center.X*s - center.Y*c,
	}
}

// Apply maps v through m.
func Apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// Layout places the rays of a field at the given position.
func Layout(pos Position, dims sunburst.Dimensions, field sunburst.Field) []Segment {
	if len(field) == 0 {
		return nil
	}
	anchor := pos.Anchor(dims)
	dir := pos.Direction()
	res := make([]Segment, len(field))
	for i, ray := range field {
		end := anchor.Add(dir.Mul(float64(ray.Length)))
		res[i] = Segment{
			Position: pos,
			Ray:      ray,
			Anchor:   anchor,
			End:      end,
			Tip:      Apply(Rotation(float64(ray.Angle), anchor), end),
		}
	}
	return res
}
