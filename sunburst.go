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

// Package sunburst generates the randomized ray fields of a radial
// line-art pattern.
//
// A pattern consists of three families of rays: rays radiating from the
// canvas center, rays radiating from the four corners, and rays radiating
// from the midpoints of the four edges. Each family is produced by walking
// an angle from 0 downwards in random steps and sampling a length for every
// angle visited. All functions in this package are pure: the only input
// besides the canvas size and the parameters is the random [Source].
//
// The package only produces ray descriptors. Placing rays on the canvas is
// done by package seehuhn.de/go/sunburst/scene.
package sunburst

// Parameter ranges and step sizes.
const (
	MinDegreeSpacing  = 5.0
	MaxDegreeSpacing  = 70.0
	DegreeSpacingStep = 5.0

	MinRayLengthScale  = 1.0
	MaxRayLengthScale  = 20.0
	RayLengthScaleStep = 0.5
)

// Dimensions describes the canvas. The drawable area is the canvas minus
// Padding on every side.
type Dimensions struct {
	Width   float64
	Height  float64
	Padding float64
}

// ActiveWidth returns the width of the drawable area. The result is never
// negative.
func (d Dimensions) ActiveWidth() float64 {
	return max(0, d.Width-2*d.Padding)
}

// ActiveHeight returns the height of the drawable area. The result is
// never negative.
func (d Dimensions) ActiveHeight() float64 {
	return max(0, d.Height-2*d.Padding)
}

// IsEmpty reports whether the drawable area has no extent.
func (d Dimensions) IsEmpty() bool {
	return d.ActiveWidth() <= 0 || d.ActiveHeight() <= 0
}

// Parameters control the density and length of the generated rays.
type Parameters struct {
	// DegreeSpacing is the largest random angular step, in degrees,
	// between two successive rays of the center and corner fields.
	// Edge fields use 1.5 times this value.
	DegreeSpacing float64

	// RayLengthScale divides all length ranges. Larger values give
	// shorter rays.
	RayLengthScale float64
}

// DefaultParameters returns the parameters used when nothing else is
// configured.
func DefaultParameters() Parameters {
	return Parameters{
		DegreeSpacing:  20,
		RayLengthScale: 1,
	}
}

// Clamp returns a copy of p with both values forced into their valid
// ranges.
func (p Parameters) Clamp() Parameters {
	return Parameters{
		DegreeSpacing:  min(max(p.DegreeSpacing, MinDegreeSpacing), MaxDegreeSpacing),
		RayLengthScale: min(max(p.RayLengthScale, MinRayLengthScale), MaxRayLengthScale),
	}
}

// MoreRays makes the pattern denser by reducing the degree spacing.
func (p Parameters) MoreRays() Parameters {
	p.DegreeSpacing = max(MinDegreeSpacing, p.DegreeSpacing-DegreeSpacingStep)
	return p
}

// FewerRays makes the pattern sparser by increasing the degree spacing.
func (p Parameters) FewerRays() Parameters {
	p.DegreeSpacing = min(MaxDegreeSpacing, p.DegreeSpacing+DegreeSpacingStep)
	return p
}

// LongerRays lengthens all rays by reducing the length scale.
func (p Parameters) LongerRays() Parameters {
	p.RayLengthScale = max(MinRayLengthScale, p.RayLengthScale-RayLengthScaleStep)
	return p
}

// ShorterRays shortens all rays by increasing the length scale.
func (p Parameters) ShorterRays() Parameters {
	p.RayLengthScale = min(MaxRayLengthScale, p.RayLengthScale+RayLengthScaleStep)
	return p
}

// Ray describes a single generated ray before it is placed on the canvas.
type Ray struct {
	Angle  int // rotation in degrees, always <= 0
	Length int // always >= 1
}

// Field is the list of rays generated for one ray group, in generation
// order (decreasing angle).
type Field []Ray

// Family identifies one of the three kinds of ray fields.
type Family int

// The three ray families.
const (
	Center Family = iota
	Corner
	Edge
)

// Families lists all ray families in drawing order.
var Families = []Family{Center, Corner, Edge}

func (f Family) String() string {
	switch f {
	case Center:
		return "center"
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	default:
		return "unknown"
	}
}

// ParseFamily converts the output of [Family.String] back to a Family.
func ParseFamily(s string) (Family, bool) {
	for _, f := range Families {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}
