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
	"context"
	"image/color"
	"testing"

	"seehuhn.de/go/sunburst"
	"seehuhn.de/go/sunburst/palette"
	"seehuhn.de/go/sunburst/scene"
)

func TestDraw(t *testing.T) {
	dims := sunburst.Dimensions{Width: 200, Height: 160, Padding: 10}
	s, err := scene.Compose(context.Background(), dims, sunburst.DefaultParameters(), 42)
	if err != nil {
		t.Fatal(err)
	}

	img, err := Render(BackendCoverage, s, palette.Light, 1)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 160 {
		t.Fatalf("unexpected image size %v", b)
	}

	// Rays only ever point into the drawable area, so the corners of the
	// padding stay empty.
	bg := color.RGBAModel.Convert(palette.Light.Background).(color.RGBA)
	for y := range 8 {
		for x := range 8 {
			for _, p := range [][2]int{{x, y}, {199 - x, 159 - y}, {x, 159 - y}, {199 - x, y}} {
				if got := img.RGBAAt(p[0], p[1]); got != bg {
					t.Fatalf("pixel %v in padding: got %v, expected %v", p, got, bg)
				}
			}
		}
	}

	// The center rays start at the middle of the canvas.
	center := color.RGBAModel.Convert(palette.Light.Center).(color.RGBA)
	if got := img.RGBAAt(100, 80); got == bg {
		t.Errorf("center pixel not drawn: %v (center colour %v)", got, center)
	}
}

func TestRenderUnknownBackend(t *testing.T) {
	s, err := scene.Compose(context.Background(), sunburst.Dimensions{Width: 10, Height: 10}, sunburst.DefaultParameters(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Render("opengl", s, palette.Amber, 1); err == nil {
		t.Error("expected an error")
	}
}

func benchmarkScene(b *testing.B, backend string) {
	dims := sunburst.Dimensions{Width: 1000, Height: 800, Padding: 50}
	params := sunburst.Parameters{DegreeSpacing: 5, RayLengthScale: 1}
	s, err := scene.Compose(context.Background(), dims, params, 1)
	if err != nil {
		b.Fatal(err)
	}
	cv, err := NewCanvas(backend, 1000, 800)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		Draw(cv, s, palette.Light, 1)
	}
}

// BenchmarkCoverageScene draws a dense scene with our rasteriser.
func BenchmarkCoverageScene(b *testing.B) {
	benchmarkScene(b, BackendCoverage)
}

// BenchmarkVectorScene draws the same scene with x/image/vector.
func BenchmarkVectorScene(b *testing.B) {
	benchmarkScene(b, BackendVector)
}
