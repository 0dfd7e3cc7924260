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

package output

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sunburst/palette"
	"seehuhn.de/go/sunburst/scene"
)

// WritePDF writes the scene as a single-page PDF file. One pixel of the
// canvas corresponds to one PDF point.
func WritePDF(fname string, s *scene.Scene, pal palette.Palette, width float64) error {
	paper := &pdf.Rectangle{
		URx: s.Dims.Width,
		URy: s.Dims.Height,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfColor(pal.Background))
	page.Rectangle(0, 0, s.Dims.Width, s.Dims.Height)
	page.Fill()

	// PDF origin is bottom-left, scene coordinates have y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, s.Dims.Padding, s.Dims.Height - s.Dims.Padding})

	page.SetLineWidth(width)
	page.SetLineCap(graphics.LineCapButt)
	for _, g := range s.Groups {
		if len(g.Segments) == 0 {
			continue
		}
		page.SetStrokeColor(pdfColor(pal.ForFamily(g.Position.Family())))
		for _, seg := range g.Segments {
			page.MoveTo(seg.Anchor.X, seg.Anchor.Y)
			page.LineTo(seg.Tip.X, seg.Tip.Y)
		}
		page.Stroke()
	}

	return page.Close()
}

func pdfColor(c palette.Color) color.Color {
	r, g, b := c.Clamped().RGB255()
	return color.DeviceRGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}
