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

// Package raster converts the segments of a ray pattern into pixels.
//
// The package contains a small anti-aliasing scanline rasteriser, which
// computes the exact fraction of every pixel covered by a filled polygon,
// and two RGBA canvases: one driven by this rasteriser and one driven by
// golang.org/x/image/vector.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a polygon edge in device coordinates, oriented so that y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original edge pointed down, -1 otherwise
}

// Rasteriser computes pixel coverage values for filled paths and stroked
// line segments: the fraction of each pixel's area covered by the shape,
// from 0 (outside) to 1 (inside).
//
// Internal buffers grow as needed and are reused between calls.
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip bounds the output to this device-space rectangle. The
	// coordinates must be integers.
	Clip rect.Rect

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style for the ends of stroked lines.
	Cap graphics.LineCapStyle

	cover  []float32
	area   []float32
	edges  []edge
	active []int

	outline *path.Data

	bboxEmpty bool
	bbox      rect.Rect
}

// NewRasteriser returns a Rasteriser with an identity CTM, unit stroke
// width and butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:     matrix.Identity,
		Clip:    clip,
		Width:   1,
		Cap:     graphics.LineCapButt,
		outline: &path.Data{},
	}
}

// Reset changes the clip rectangle and restores the default CTM, width and
// cap style. The internal buffers are kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Width = 1
	r.Cap = graphics.LineCapButt
}

// FillNonZero fills the path using the nonzero winding rule. Curves in the
// path are replaced by their chords.
//
// The emit callback is called once per pixel row which has non-zero
// coverage, in order of increasing y. The coverage slice holds the values
// for pixels xMin, xMin+1, ... and is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.addEdge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, emit)
}

// addEdge adds the user-space line from p0 to p1 to the edge list.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}

	dir := float32(1)
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / (y1 - y0),
		dir:  dir,
	})

	box := rect.Rect{LLx: min(x0, x1), LLy: y0, URx: max(x0, x1), URy: y1}
	if r.bboxEmpty {
		r.bbox = box
		r.bboxEmpty = false
	} else {
		r.bbox.LLx = min(r.bbox.LLx, box.LLx)
		r.bbox.LLy = min(r.bbox.LLy, box.LLy)
		r.bbox.URx = max(r.bbox.URx, box.URx)
		r.bbox.URy = max(r.bbox.URy, box.URy)
	}
}

// scan walks the scanlines yMin, ..., yMax-1 with an active edge list.
func (r *Rasteriser) scan(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].y0 < yBot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= yTop {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if accumulate(e, yTop, yBot, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// Coverage accumulation works per scanline. For every pixel we keep
//
//	cover: the signed height of all edge pieces in this pixel column
//	area:  the same heights, weighted by the part of the pixel to the
//	       right of the edge
//
// The coverage of pixel i is then area[i] plus the sum of cover[j] for all
// j < i. Edge pieces left of the buffer contribute fully to column 0.

// accumulate adds the part of e within [yTop, yBot) to the buffers. It
// reports whether anything was added.
func accumulate(e *edge, yTop, yBot float64, cover, area []float32, xMin, xMax int) bool {
	yTop = max(yTop, e.y0)
	yBot = min(yBot, e.y1)
	if yBot <= yTop {
		return false
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pxLo := int(math.Floor(min(xTop, xBot)))
	pxHi := int(math.Floor(max(xTop, xBot)))

	if pxLo == pxHi {
		xMid := (xTop + xBot) / 2
		deposit(pxLo, e.dir*float32(yBot-yTop), xMid-float64(pxLo), cover, area, xMin, xMax)
		return true
	}

	// split the piece at the pixel column boundaries
	dydx := 1 / e.dxdy
	for px := pxLo; px <= pxHi; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x0)
		yb := e.y0 + dydx*(float64(px+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		deposit(px, e.dir*float32(hi-lo), xMid-float64(px), cover, area, xMin, xMax)
	}
	return true
}

func deposit(px int, h float32, frac float64, cover, area []float32, xMin, xMax int) {
	switch {
	case px < xMin:
		cover[0] += h
		area[0] += h
	case px < xMax:
		i := px - xMin
		cover[i] += h
		area[i] += h * float32(1-frac)
	}
}

// integrateNonZero turns the accumulated values into coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset, or nil if
// all values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// StrokeLine computes the coverage of the straight line from a to b,
// stroked with r.Width and r.Cap. The emit callback is used as for
// [Rasteriser.FillNonZero]. Zero-length lines produce no output.
func (r *Rasteriser) StrokeLine(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold || r.Width <= 0 {
		return
	}
	hw := r.Width / 2
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(hw)

	if r.Cap == graphics.LineCapSquare {
		a = a.Sub(t.Mul(hw))
		b = b.Add(t.Mul(hw))
	}

	p := r.outline
	p.Cmds = p.Cmds[:0]
	p.Coords = p.Coords[:0]
	p.MoveTo(a.Add(n)).LineTo(b.Add(n))
	if r.Cap == graphics.LineCapRound {
		r.arc(b, n, t.Mul(hw))
	}
	p.LineTo(b.Sub(n)).LineTo(a.Sub(n))
	if r.Cap == graphics.LineCapRound {
		r.arc(a, n.Mul(-1), t.Mul(-hw))
	}
	p.Close()

	r.FillNonZero(p, emit)
}

// arc appends a polygonal half circle around c to the outline, going from
// c+from via c+out to c-from.
func (r *Rasteriser) arc(c, from, out vec.Vec2) {
	for i := 1; i < roundCapSteps; i++ {
		s, co := math.Sincos(math.Pi * float64(i) / roundCapSteps)
		r.outline.LineTo(c.Add(from.Mul(co)).Add(out.Mul(s)))
	}
}

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroked line.
	zeroLengthThreshold = 1e-10

	// roundCapSteps is the number of chords used for a round cap.
	roundCapSteps = 12
)
