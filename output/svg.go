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
	"bufio"
	"fmt"
	"io"

	"seehuhn.de/go/sunburst/palette"
	"seehuhn.de/go/sunburst/scene"
)

// WriteSVG writes the scene as an SVG document.
//
// Every ray is written as an unrotated <line> element together with a
// rotate() transform about its anchor. The lines are grouped by position,
// with corner and edge positions nested inside "corners" and "edges"
// groups.
func WriteSVG(w io.Writer, s *scene.Scene, pal palette.Palette, width float64) error {
	out := &svgWriter{w: bufio.NewWriter(w)}

	out.printf("<?xml version=\"1.0\"?>\n")
	out.printf("<svg version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\">\n",
		s.Dims.Width, s.Dims.Height)
	out.printf("<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", pal.Background.Hex())
	out.printf("<g transform=\"translate(%g %g)\" stroke-width=\"%g\">\n",
		s.Dims.Padding, s.Dims.Padding, width)

	out.group(s, scene.Center, pal)
	out.printf("<g class=\"corners\">\n")
	for _, pos := range []scene.Position{scene.TopLeft, scene.BottomLeft, scene.TopRight, scene.BottomRight} {
		out.group(s, pos, pal)
	}
	out.printf("</g>\n")
	out.printf("<g class=\"edges\">\n")
	for _, pos := range []scene.Position{scene.Top, scene.Bottom, scene.Left, scene.Right} {
		out.group(s, pos, pal)
	}
	out.printf("</g>\n")

	out.printf("</g>\n</svg>\n")

	if out.err != nil {
		return out.err
	}
	return out.w.Flush()
}

// svgWriter keeps the first write error, so that the document can be
// written without checking every call.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (out *svgWriter) printf(format string, a ...any) {
	if out.err != nil {
		return
	}
	_, out.err = fmt.Fprintf(out.w, format, a...)
}

func (out *svgWriter) group(s *scene.Scene, pos scene.Position, pal palette.Palette) {
	out.printf("<g class=\"%s\" stroke=\"%s\">\n", pos, pal.ForFamily(pos.Family()).Hex())
	for _, seg := range s.Groups[pos].Segments {
		out.printf("<line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" transform=\"rotate(%d, %g, %g)\"/>\n",
			seg.Anchor.X, seg.Anchor.Y, seg.End.X, seg.End.Y,
			seg.Ray.Angle, seg.Anchor.X, seg.Anchor.Y)
	}
	out.printf("</g>\n")
}
