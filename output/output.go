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

// Package output writes ray patterns to image files.
package output

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/sunburst/palette"
	"seehuhn.de/go/sunburst/raster"
	"seehuhn.de/go/sunburst/scene"
)

// ErrUnknownFormat is returned by [WriteFile] if the file name extension
// does not name a supported format.
var ErrUnknownFormat = errors.New("unknown output format")

// Options control how a scene is written.
type Options struct {
	// StrokeWidth is the line width of the rays, in pixels.
	StrokeWidth float64

	// Backend selects the raster backend for PNG output.
	Backend string
}

// Formats lists the supported file name extensions.
var Formats = []string{".png", ".svg", ".pdf"}

// FormatOf returns the output format for the given file name, as one of
// the elements of [Formats].
func FormatOf(fname string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fname))
	for _, f := range Formats {
		if f == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, ext)
}

// WriteFile writes the scene to the named file. The format is chosen by
// the file name extension.
func WriteFile(fname string, s *scene.Scene, pal palette.Palette, opt Options) error {
	format, err := FormatOf(fname)
	if err != nil {
		return err
	}

	if format == ".pdf" {
		return WritePDF(fname, s, pal, opt.StrokeWidth)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	switch format {
	case ".svg":
		err = WriteSVG(f, s, pal, opt.StrokeWidth)
	default:
		err = writeRaster(f, s, pal, opt)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return f.Close()
}

func writeRaster(w io.Writer, s *scene.Scene, pal palette.Palette, opt Options) error {
	img, err := raster.Render(opt.Backend, s, pal, opt.StrokeWidth)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
