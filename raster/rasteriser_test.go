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
	"image/color"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sunburst/testcases"
)

// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})

	coverage := make([]float32, 10)
	r.FillNonZero(triangle, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

// An unclosed path is filled as if it was closed, and the orientation of
// the path does not matter.
func TestFillOrientation(t *testing.T) {
	cw := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 4})
	ccw := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 4}).
		LineTo(vec.Vec2{X: 5, Y: 1})

	r := NewRasteriser(rect.Rect{URx: 8, URy: 8})
	a := coverageGrid(8, 8, func(emit func(int, int, []float32)) { r.FillNonZero(cw, emit) })
	b := coverageGrid(8, 8, func(emit func(int, int, []float32)) { r.FillNonZero(ccw, emit) })
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-6 {
			t.Fatalf("pixel %d: %g != %g", i, a[i], b[i])
		}
	}
	if total := sum(a); math.Abs(total-6) > 1e-4 {
		t.Errorf("total coverage %g, expected 6", total)
	}
}

// The line (2,5)-(12,5) of width 2 exactly covers rows 4 and 5, pixels
// 2 to 11.
func TestStrokeLineExact(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 16, URy: 10})
	r.Width = 2
	grid := coverageGrid(16, 10, func(emit func(int, int, []float32)) {
		r.StrokeLine(vec.Vec2{X: 2, Y: 5}, vec.Vec2{X: 12, Y: 5}, emit)
	})
	for y := range 10 {
		for x := range 16 {
			want := float32(0)
			if (y == 4 || y == 5) && x >= 2 && x < 12 {
				want = 1
			}
			if got := grid[y*16+x]; math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("pixel (%d,%d): expected %g, got %g", x, y, want, got)
			}
		}
	}
}

// For lines inside the canvas, the total coverage equals the area of the
// stroke outline.
func TestLineArea(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.Lines)) {
		for _, l := range testcases.Lines[category] {
			if !l.Inside() {
				continue
			}
			t.Run(category+"_"+l.Name, func(t *testing.T) {
				w, h := l.Canvas[0], l.Canvas[1]
				r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
				r.Width = l.Width
				r.Cap = l.Cap
				grid := coverageGrid(w, h, func(emit func(int, int, []float32)) {
					r.StrokeLine(l.A, l.B, emit)
				})

				want := outlineArea(l)
				if got := sum(grid); math.Abs(got-want) > 1e-3*want {
					t.Errorf("total coverage %g, expected %g", got, want)
				}
				for i, c := range grid {
					if c < 0 || c > 1 {
						t.Fatalf("pixel %d: coverage %g out of range", i, c)
					}
				}
			})
		}
	}
}

func outlineArea(l testcases.Line) float64 {
	length := l.B.Sub(l.A).Length()
	hw := l.Width / 2
	area := length * l.Width
	switch l.Cap {
	case graphics.LineCapSquare:
		area += l.Width * l.Width
	case graphics.LineCapRound:
		// two half circles, each approximated by roundCapSteps chords
		area += roundCapSteps * math.Sin(math.Pi/roundCapSteps) * hw * hw
	}
	return area
}

func TestClipping(t *testing.T) {
	for _, l := range testcases.Lines["clipped"] {
		t.Run(l.Name, func(t *testing.T) {
			w, h := l.Canvas[0], l.Canvas[1]
			r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
			r.Width = l.Width
			r.StrokeLine(l.A, l.B, func(y, xMin int, coverage []float32) {
				if y < 0 || y >= h || xMin < 0 || xMin+len(coverage) > w {
					t.Fatalf("row %d, x %d..%d outside of clip", y, xMin, xMin+len(coverage))
				}
			})
		})
	}
}

func TestZeroLengthLine(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.Width = 3
	p := vec.Vec2{X: 5, Y: 5}
	r.StrokeLine(p, p, func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output in row %d", y)
	})
}

func TestReset(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.Width = 5
	r.Cap = graphics.LineCapRound
	r.Reset(rect.Rect{URx: 20, URy: 30})
	if r.Width != 1 || r.Cap != graphics.LineCapButt || r.Clip.URy != 30 {
		t.Errorf("unexpected state after Reset: %+v", r)
	}
}

func TestCanvasLine(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for _, backend := range []string{BackendCoverage, BackendVector} {
		t.Run(backend, func(t *testing.T) {
			cv, err := NewCanvas(backend, 16, 10)
			if err != nil {
				t.Fatal(err)
			}
			cv.Clear(white)
			cv.Line(vec.Vec2{X: 2, Y: 5}, vec.Vec2{X: 12, Y: 5}, 2, black)

			img := cv.Image()
			for y := range 10 {
				for x := range 16 {
					want := white
					if (y == 4 || y == 5) && x >= 2 && x < 12 {
						want = black
					}
					got := img.RGBAAt(x, y)
					if absDiff(got.R, want.R) > 1 || absDiff(got.G, want.G) > 1 ||
						absDiff(got.B, want.B) > 1 || got.A != 255 {
						t.Errorf("pixel (%d,%d): expected %v, got %v", x, y, want, got)
					}
				}
			}
		})
	}
}

// Both backends should agree on the total amount of ink.
func TestBackendsAgree(t *testing.T) {
	for _, l := range testcases.Lines["diagonal"] {
		t.Run(l.Name, func(t *testing.T) {
			w, h := l.Canvas[0], l.Canvas[1]
			var ink [2]float64
			for i, backend := range []string{BackendCoverage, BackendVector} {
				cv, _ := NewCanvas(backend, w, h)
				cv.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})
				cv.Line(l.A, l.B, l.Width, color.RGBA{A: 255})
				img := cv.Image()
				for y := range h {
					for x := range w {
						ink[i] += float64(255-img.RGBAAt(x, y).G) / 255
					}
				}
			}
			want := l.B.Sub(l.A).Length() * l.Width
			for i, got := range ink {
				if math.Abs(got-want) > 0.02*want+1 {
					t.Errorf("backend %d: ink %g, expected %g", i, got, want)
				}
			}
		})
	}
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewCanvas("cairo", 10, 10)
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
}

// coverageGrid collects the output of a rasteriser call into a w×h grid.
func coverageGrid(w, h int, run func(emit func(y, xMin int, coverage []float32))) []float32 {
	grid := make([]float32, w*h)
	run(func(y, xMin int, coverage []float32) {
		copy(grid[y*w+xMin:], coverage)
	})
	return grid
}

func sum(values []float32) float64 {
	total := 0.0
	for _, v := range values {
		total += float64(v)
	}
	return total
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
