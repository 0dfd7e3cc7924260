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

import "seehuhn.de/go/pdf/graphics"

var axisLines = []Line{
	{
		Name:   "horizontal_butt",
		A:      pt(2, 5),
		B:      pt(12, 5),
		Width:  2,
		Cap:    graphics.LineCapButt,
		Canvas: [2]int{16, 10},
	},
	{
		Name:   "horizontal_square",
		A:      pt(10, 32),
		B:      pt(54, 32),
		Width:  8,
		Cap:    graphics.LineCapSquare,
		Canvas: [2]int{64, 64},
	},
	{
		Name:   "horizontal_round",
		A:      pt(10, 32),
		B:      pt(54, 32),
		Width:  8,
		Cap:    graphics.LineCapRound,
		Canvas: [2]int{64, 64},
	},
	{
		Name:   "vertical_half_pixel",
		A:      pt(20.5, 4),
		B:      pt(20.5, 60),
		Width:  1,
		Cap:    graphics.LineCapButt,
		Canvas: [2]int{64, 64},
	},
	{
		Name:   "upwards",
		A:      pt(32, 60),
		B:      pt(32, 4),
		Width:  3,
		Cap:    graphics.LineCapButt,
		Canvas: [2]int{64, 64},
	},
}

var diagonalLines = []Line{
	{
		Name:   "steep",
		A:      pt(10, 10),
		B:      pt(40, 50),
		Width:  3,
		Cap:    graphics.LineCapButt,
		Canvas: [2]int{64, 64},
	},
	{
		Name:   "shallow",
		A:      pt(4, 40),
		B:      pt(60, 26),
		Width:  1.5,
		Cap:    graphics.LineCapButt,
		Canvas: [2]int{64, 64},
	},
	{
		Name:   "hairline",
		A:      pt(5, 5),
		B:      pt(59, 59),
		Width:  0.25,
		Cap:    graphics.LineCapButt,
		Canvas: [2]int{64, 64},
	},
	{
		Name:   "thick_round",
		A:      pt(16, 48),
		B:      pt(48, 16),
		Width:  12,
		Cap:    graphics.LineCapRound,
		Canvas: [2]int{64, 64},
	},
}

// Lines reaching beyond the canvas, as rays near the drawable area
// border do once the padding is small.
var clippedLines = []Line{
	{
		Name:   "past_right",
		A:      pt(32, 32),
		B:      pt(100, 40),
		Width:  4,
		Cap:    graphics.LineCapButt,
		Canvas: [2]int{64, 64},
	},
	{
		Name:   "from_outside",
		A:      pt(-30, -10),
		B:      pt(40, 30),
		Width:  2,
		Cap:    graphics.LineCapButt,
		Canvas: [2]int{64, 64},
	},
	{
		Name:   "fully_outside",
		A:      pt(-40, -40),
		B:      pt(-10, -5),
		Width:  2,
		Cap:    graphics.LineCapButt,
		Canvas: [2]int{64, 64},
	},
}
