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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// ErrUnknownBackend is returned by [NewCanvas] for unsupported backend
// names.
var ErrUnknownBackend = errors.New("unknown raster backend")

// Backend names accepted by [NewCanvas].
const (
	BackendCoverage = "coverage"
	BackendVector   = "vector"
)

// Canvas is an RGBA image which straight lines can be drawn on.
type Canvas interface {
	// Clear fills the whole canvas with c.
	Clear(c color.Color)

	// Line draws the line from a to b with butt caps. Coordinates are in
	// pixels, with the origin at the top-left corner of the image.
	Line(a, b vec.Vec2, width float64, c color.Color)

	// Image returns the pixels drawn so far. The image is owned by the
	// canvas and changes when more lines are drawn.
	Image() *image.RGBA
}

// NewCanvas returns a w×h canvas using the named backend.
func NewCanvas(backend string, w, h int) (Canvas, error) {
	switch backend {
	case BackendCoverage, "":
		return NewCoverageCanvas(w, h), nil
	case BackendVector:
		return NewVectorCanvas(w, h), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, backend)
	}
}

// CoverageCanvas draws lines with a [Rasteriser].
type CoverageCanvas struct {
	img *image.RGBA
	r   *Rasteriser
}

// NewCoverageCanvas allocates a new w×h canvas.
func NewCoverageCanvas(w, h int) *CoverageCanvas {
	clip := rect.Rect{URx: float64(w), URy: float64(h)}
	return &CoverageCanvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		r:   NewRasteriser(clip),
	}
}

func (cv *CoverageCanvas) Clear(c color.Color) {
	draw.Draw(cv.img, cv.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (cv *CoverageCanvas) Line(a, b vec.Vec2, width float64, c color.Color) {
	sr, sg, sb, sa := c.RGBA()
	if sa == 0 {
		return
	}
	cv.r.Width = width
	cv.r.Cap = graphics.LineCapButt
	cv.r.StrokeLine(a, b, func(y, xMin int, coverage []float32) {
		row := cv.img.Pix[cv.img.PixOffset(xMin, y):]
		for i, cov := range coverage {
			px := row[4*i : 4*i+4 : 4*i+4]
			k := cov / 0xffff
			inv := 1 - float32(sa)*k
			px[0] = blend(sr, k, px[0], inv)
			px[1] = blend(sg, k, px[1], inv)
			px[2] = blend(sb, k, px[2], inv)
			px[3] = blend(sa, k, px[3], inv)
		}
	})
}

// blend composites a premultiplied 16 bit source channel, scaled by k,
// over an 8 bit destination channel.
func blend(s uint32, k float32, d uint8, inv float32) uint8 {
	v := float32(s)*k*255 + float32(d)*inv
	return uint8(min(v+0.5, 255))
}

func (cv *CoverageCanvas) Image() *image.RGBA {
	return cv.img
}

// VectorCanvas draws lines with golang.org/x/image/vector.
type VectorCanvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewVectorCanvas allocates a new w×h canvas.
func NewVectorCanvas(w, h int) *VectorCanvas {
	return &VectorCanvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

func (cv *VectorCanvas) Clear(c color.Color) {
	draw.Draw(cv.img, cv.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (cv *VectorCanvas) Line(a, b vec.Vec2, width float64, c color.Color) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold || width <= 0 {
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(width / 2 / length)

	bounds := cv.img.Bounds()
	cv.z.Reset(bounds.Dx(), bounds.Dy())
	moveTo(cv.z, a.Add(n))
	lineTo(cv.z, b.Add(n))
	lineTo(cv.z, b.Sub(n))
	lineTo(cv.z, a.Sub(n))
	cv.z.ClosePath()
	cv.z.Draw(cv.img, bounds, image.NewUniform(c), image.Point{})
}

func moveTo(z *vector.Rasterizer, p vec.Vec2) {
	z.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(z *vector.Rasterizer, p vec.Vec2) {
	z.LineTo(float32(p.X), float32(p.Y))
}

func (cv *VectorCanvas) Image() *image.RGBA {
	return cv.img
}
