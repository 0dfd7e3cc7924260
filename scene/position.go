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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sunburst"
)

// Position identifies one of the nine places rays radiate from.
type Position int

// The ray origins, in drawing order.
const (
	Center Position = iota
	TopLeft
	BottomLeft
	TopRight
	BottomRight
	Top
	Bottom
	Left
	Right

	numPositions
)

// Positions lists all ray origins in drawing order.
var Positions = [numPositions]Position{
	Center,
	TopLeft, BottomLeft, TopRight, BottomRight,
	Top, Bottom, Left, Right,
}

var positionNames = [numPositions]string{
	"center",
	"top-left", "bottom-left", "top-right", "bottom-right",
	"top", "bottom", "left", "right",
}

func (p Position) String() string {
	if p < 0 || p >= numPositions {
		return "unknown"
	}
	return positionNames[p]
}

// ParsePosition converts the output of [Position.String] back to a
// Position.
func ParsePosition(s string) (Position, bool) {
	for i, name := range positionNames {
		if name == s {
			return Position(i), true
		}
	}
	return 0, false
}

// Family returns the ray family drawn at this position.
func (p Position) Family() sunburst.Family {
	switch p {
	case Center:
		return sunburst.Center
	case TopLeft, BottomLeft, TopRight, BottomRight:
		return sunburst.Corner
	default:
		return sunburst.Edge
	}
}

// Anchor returns the point rays at this position radiate from, relative
// to the top-left corner of the drawable area. The y axis points down.
func (p Position) Anchor(dims sunburst.Dimensions) vec.Vec2 {
	w, h := dims.ActiveWidth(), dims.ActiveHeight()
	switch p {
	case TopLeft:
		return vec.Vec2{X: 0, Y: 0}
	case BottomLeft:
		return vec.Vec2{X: 0, Y: h}
	case TopRight:
		return vec.Vec2{X: w, Y: 0}
	case BottomRight:
		return vec.Vec2{X: w, Y: h}
	case Top:
		return vec.Vec2{X: w / 2, Y: 0}
	case Bottom:
		return vec.Vec2{X: w / 2, Y: h}
	case Left:
		return vec.Vec2{X: 0, Y: h / 2}
	case Right:
		return vec.Vec2{X: w, Y: h / 2}
	default:
		return vec.Vec2{X: w / 2, Y: h / 2}
	}
}

// Direction returns the unit vector along which an unrotated ray at this
// position extends.
//
// Together with the clockwise-negative rotation of the ray angles, the
// directions make every corner and edge field sweep over the inside of
// the drawable area.
func (p Position) Direction() vec.Vec2 {
	switch p {
	case TopLeft, Left:
		return vec.Vec2{X: 0, Y: 1}
	case TopRight, Top:
		return vec.Vec2{X: -1, Y: 0}
	case BottomRight, Right:
		return vec.Vec2{X: 0, Y: -1}
	default: // Center, BottomLeft, Bottom
		return vec.Vec2{X: 1, Y: 0}
	}
}
