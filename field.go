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
	"slices"
)

// Generate computes the ray field of the given family. The parameters are
// clamped to their valid ranges first. If the drawable area is empty, the
// returned field is empty.
func Generate(family Family, dims Dimensions, params Parameters, src Source) Field {
	var rays iter.Seq[Ray]
	switch family {
	case Center:
		rays = CenterRays(dims, params, src)
	case Corner:
		rays = CornerRays(dims, params, src)
	case Edge:
		rays = EdgeRays(dims, params, src)
	default:
		return nil
	}
	return slices.Collect(rays)
}

// CenterRays generates the rays radiating from the canvas center. The
// angles cover the full circle. Rays in the favoured angular windows
// [-DegreeSpacing, 0], [-360, -340] and [-200, -160] may reach towards the
// width of the canvas, all others only towards its height.
func CenterRays(dims Dimensions, params Parameters, src Source) iter.Seq[Ray] {
	params = params.Clamp()
	w, h := dims.ActiveWidth(), dims.ActiveHeight()
	s := params.RayLengthScale
	return func(yield func(Ray) bool) {
		if dims.IsEmpty() {
			return
		}
		lo := w / (6 * s)
		for angle := range WalkAngles(centerBound, params.DegreeSpacing, src) {
			hi := h / (2.2 * s)
			if isFavoured(angle, params.DegreeSpacing) {
				hi = w / (2.2 * s)
			}
			if !yield(newRay(angle, Between(src, lo, hi))) {
				return
			}
		}
	}
}

// isFavoured reports whether a center ray at the given angle uses the
// width-based maximum length.
func isFavoured(angle int, spacing float64) bool {
	a := float64(angle)
	return (a >= -spacing && a <= 0) ||
		(a >= -360 && a <= -340) ||
		(a >= -200 && a <= -160)
}

// CornerRays generates the rays for one canvas corner. The angles cover a
// quarter circle. For every ray a fair coin decides whether the length may
// reach towards the width or only towards half the height of the canvas.
func CornerRays(dims Dimensions, params Parameters, src Source) iter.Seq[Ray] {
	params = params.Clamp()
	w, h := dims.ActiveWidth(), dims.ActiveHeight()
	s := params.RayLengthScale
	return func(yield func(Ray) bool) {
		if dims.IsEmpty() {
			return
		}
		lo := max(1, h/(3*s))
		for angle := range WalkAngles(cornerBound, params.DegreeSpacing, src) {
			hi := h / (2 * s)
			if src.Float64() > 0.5 {
				hi = max(1, w/(1.5*s))
			}
			if !yield(newRay(angle, Between(src, lo, hi))) {
				return
			}
		}
	}
}

// EdgeRays generates the rays for the midpoint of one canvas edge. The
// angles cover a half circle, with steps up to 1.5 times the degree
// spacing. Lengths only depend on the canvas height, whichever edge the
// rays are drawn on.
func EdgeRays(dims Dimensions, params Parameters, src Source) iter.Seq[Ray] {
	params = params.Clamp()
	h := dims.ActiveHeight()
	s := params.RayLengthScale
	return func(yield func(Ray) bool) {
		if dims.IsEmpty() {
			return
		}
		lo, hi := h/(3*s), h/(1.5*s)
		for angle := range WalkAngles(edgeBound, 1.5*params.DegreeSpacing, src) {
			if !yield(newRay(angle, Between(src, lo, hi))) {
				return
			}
		}
	}
}

func newRay(angle, length int) Ray {
	return Ray{Angle: angle, Length: max(1, length)}
}
