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

package sunburst

import (
	"iter"
)

// Angular extent of the three ray families, in degrees.
const (
	centerBound = -360
	cornerBound = -90
	edgeBound   = -180
)

// WalkAngles returns the sequence of angles 0, -s1, -s1-s2, ... where each
// step s is drawn as Between(src, 1, stepMax). For a fractional stepMax
// the largest step is ceil(stepMax). The sequence ends before the first
// angle that is less than or equal to bound. Steps are at least 1 even if
// stepMax < 1.
//
// The walk is lazy. The step leading away from an angle is drawn from src
// only after the consumer has handled that angle, so that random draws of
// the consumer and of the walk interleave in a fixed order.
func WalkAngles(bound int, stepMax float64, src Source) iter.Seq[int] {
	step := max(1, stepMax)
	return func(yield func(int) bool) {
		for angle := 0; angle > bound; angle -= Between(src, 1, step) {
			if !yield(angle) {
				return
			}
		}
	}
}
