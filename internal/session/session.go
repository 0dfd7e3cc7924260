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

// Package session keeps the state of an interactive viewer window and
// produces the frames it shows. It does not depend on a window system, so
// that the viewer logic can be tested without a display.
package session

import (
	"context"
	"errors"
	"image"
	"sync"

	"seehuhn.de/go/sunburst"
	"seehuhn.de/go/sunburst/control"
	"seehuhn.de/go/sunburst/internal/config"
	"seehuhn.de/go/sunburst/output"
	"seehuhn.de/go/sunburst/palette"
	"seehuhn.de/go/sunburst/raster"
	"seehuhn.de/go/sunburst/scene"
)

var errNothingToSave = errors.New("no pattern has been drawn yet")

// Session is the state of one viewer window.
type Session struct {
	Store *control.Store
	Opts  output.Options

	mu    sync.Mutex
	dims  sunburst.Dimensions
	scene *scene.Scene
	pal   palette.Palette
	frame *image.RGBA
	drawn uint64 // store generation of frame
	valid bool   // false after the canvas changed
}

// New starts a session with the parameters and palette from the
// configuration.
func New(conf config.Config, seed uint64) (*Session, error) {
	pal, err := conf.Palette.Resolve(sunburst.NewSource(sunburst.DeriveSeed(seed, scene.PaletteStream)))
	if err != nil {
		return nil, err
	}
	return &Session{
		Store: control.NewStore(conf.Rays.Parameters(), pal, seed),
		Opts:  conf.Render.Options(),
	}, nil
}

// Resize adapts the canvas to a window of the given size. It reports
// whether the canvas changed.
func (s *Session) Resize(width, height int) bool {
	dims := control.FitDimensions(float64(width), float64(height))

	s.mu.Lock()
	defer s.mu.Unlock()
	if dims == s.dims {
		return false
	}
	s.dims = dims
	s.valid = false
	return true
}

// Dimensions returns the current canvas.
func (s *Session) Dimensions() sunburst.Dimensions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dims
}

// Handle resolves a key chord and dispatches the resulting intent. Keys
// without a binding are ignored.
func (s *Session) Handle(ch control.Chord) (control.Intent, control.Effect) {
	in, ok := control.Resolve(ch)
	if !ok {
		return 0, control.Effect{}
	}
	return in, s.Store.Dispatch(in)
}

// Frame returns the image for the current state, generating a new pattern
// if the canvas or the store changed since the last call. The second
// return value reports whether the image is new.
func (s *Session) Frame(ctx context.Context) (*image.RGBA, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.Store.Generation()
	if s.valid && s.drawn == gen {
		return s.frame, false, nil
	}
	if s.dims.Width < 1 || s.dims.Height < 1 {
		return nil, false, nil
	}

	sc, err := scene.Compose(ctx, s.dims, s.Store.Params(), s.Store.Seed())
	if err != nil {
		return nil, false, err
	}
	pal := s.Store.Palette()
	img, err := raster.Render(s.Opts.Backend, sc, pal, s.Opts.StrokeWidth)
	if err != nil {
		return nil, false, err
	}

	s.scene = sc
	s.pal = pal
	s.frame = img
	s.drawn = gen
	s.valid = true
	return img, true, nil
}

// Snapshot returns the scene and palette of the most recent frame, or nil
// if no frame has been drawn yet. Scenes are never modified after they
// are created, so the result can be used from other goroutines.
func (s *Session) Snapshot() (*scene.Scene, palette.Palette) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene, s.pal
}

// Save writes the most recent frame to a file. The format is chosen by
// the file name extension.
func (s *Session) Save(fname string) error {
	sc, pal := s.Snapshot()
	if sc == nil {
		return errNothingToSave
	}
	return output.WriteFile(fname, sc, pal, s.Opts)
}
