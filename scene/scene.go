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

// Package scene places generated ray fields on the canvas.
//
// A scene consists of nine groups of segments: one for the canvas center,
// one for each corner and one for each edge midpoint. All coordinates are
// relative to the top-left corner of the drawable area, with the y axis
// pointing down.
package scene

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/sunburst"
)

// PaletteStream is the random stream, after those of the nine positions,
// from which a palette can be picked for a scene.
const PaletteStream = uint64(numPositions)

// Group holds the segments drawn at one position.
type Group struct {
	Position Position
	Field    sunburst.Field
	Segments []Segment
}

// Scene is a complete, placed ray pattern.
type Scene struct {
	Dims   sunburst.Dimensions
	Params sunburst.Parameters
	Seed   uint64
	Groups [numPositions]Group
}

// Compose generates and places the ray fields for all nine positions.
// Every position draws from its own random source, seeded with
// sunburst.DeriveSeed(seed, position), so the result only depends on the
// arguments and not on the order in which the fields are computed.
//
// The parameters are clamped to their valid ranges. The only possible
// error is the one from a cancelled context.
func Compose(ctx context.Context, dims sunburst.Dimensions, params sunburst.Parameters, seed uint64) (*Scene, error) {
	s := &Scene{
		Dims:   dims,
		Params: params.Clamp(),
		Seed:   seed,
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, pos := range Positions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src := sunburst.NewSource(sunburst.DeriveSeed(seed, uint64(pos)))
			field := sunburst.Generate(pos.Family(), dims, s.Params, src)
			s.Groups[pos] = Group{
				Position: pos,
				Field:    field,
				Segments: Layout(pos, dims, field),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

// Segments iterates over all segments of the scene, in drawing order.
func (s *Scene) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := range s.Groups {
			for _, seg := range s.Groups[i].Segments {
				if !yield(seg) {
					return
				}
			}
		}
	}
}

// Count returns the total number of segments in the scene.
func (s *Scene) Count() int {
	n := 0
	for i := range s.Groups {
		n += len(s.Groups[i].Segments)
	}
	return n
}

// CountFamily returns the number of segments of the given family.
func (s *Scene) CountFamily(f sunburst.Family) int {
	n := 0
	for i := range s.Groups {
		if s.Groups[i].Position.Family() == f {
			n += len(s.Groups[i].Segments)
		}
	}
	return n
}
