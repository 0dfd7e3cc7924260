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

// Package control holds the interactive state of a ray pattern viewer and
// the discrete intents which change it.
package control

import (
	"strings"
	"sync"

	"seehuhn.de/go/sunburst"
	"seehuhn.de/go/sunburst/palette"
)

// Intent is a user request which changes the viewer state.
type Intent int

// The supported intents.
const (
	IncreaseDensity Intent = iota + 1
	DecreaseDensity
	IncreaseLength
	DecreaseLength
	TogglePickers
	Save
	ForceRedraw
)

func (in Intent) String() string {
	switch in {
	case IncreaseDensity:
		return "increase-density"
	case DecreaseDensity:
		return "decrease-density"
	case IncreaseLength:
		return "increase-length"
	case DecreaseLength:
		return "decrease-length"
	case TogglePickers:
		return "toggle-pickers"
	case Save:
		return "save"
	case ForceRedraw:
		return "force-redraw"
	default:
		return "unknown"
	}
}

// Effect tells the caller what to do after an intent has been dispatched.
type Effect struct {
	// Redraw is set if a new pattern must be generated and drawn.
	Redraw bool

	// Save is set if the current pattern should be written to a file.
	Save bool
}

// Store holds the parameters, the palette and the visibility of the colour
// pickers. Every change of state starts a new generation, and every
// generation has its own random seed, so that each redraw shows a fresh
// pattern.
//
// A Store is safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	params     sunburst.Parameters
	pal        palette.Palette
	pickers    bool
	base       uint64
	generation uint64
}

// NewStore returns a store in its initial state. The colour pickers start
// out visible.
func NewStore(params sunburst.Parameters, pal palette.Palette, seed uint64) *Store {
	return &Store{
		params:  params.Clamp(),
		pal:     pal,
		pickers: true,
		base:    seed,
	}
}

// Dispatch applies the intent to the store.
func (s *Store) Dispatch(in Intent) Effect {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch in {
	case IncreaseDensity:
		s.params = s.params.MoreRays()
	case DecreaseDensity:
		s.params = s.params.FewerRays()
	case IncreaseLength:
		s.params = s.params.LongerRays()
	case DecreaseLength:
		s.params = s.params.ShorterRays()
	case TogglePickers:
		s.pickers = !s.pickers
	case ForceRedraw:
	case Save:
		return Effect{Save: true}
	default:
		return Effect{}
	}
	s.generation++
	return Effect{Redraw: true}
}

// Params returns the current parameters.
func (s *Store) Params() sunburst.Parameters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Palette returns the current palette.
func (s *Store) Palette() palette.Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pal
}

// PickersVisible reports whether the colour pickers are shown.
func (s *Store) PickersVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pickers
}

// Generation returns the number of state changes so far.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Seed returns the random seed for the current generation.
func (s *Store) Seed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sunburst.DeriveSeed(s.base, s.generation)
}

// Chord is a key press together with the state of the command modifier
// (Ctrl, or Cmd on macOS).
type Chord struct {
	Key  string // a letter, or one of "up", "down", "left", "right"
	Ctrl bool
}

// Resolve maps a key chord to an intent.
func Resolve(c Chord) (Intent, bool) {
	switch strings.ToLower(c.Key) {
	case "c":
		if !c.Ctrl {
			return TogglePickers, true
		}
	case "s":
		if c.Ctrl {
			return Save, true
		}
	case "r":
		if !c.Ctrl {
			return ForceRedraw, true
		}
	case "down":
		return DecreaseDensity, true
	case "up":
		return IncreaseDensity, true
	case "left":
		return DecreaseLength, true
	case "right":
		return IncreaseLength, true
	}
	return 0, false
}

// Padding used around the drawable area on larger screens.
const DefaultPadding = 50

// FitDimensions returns the canvas for a window of the given size. Narrow
// windows (less than 500 pixels wide) get a square canvas without padding.
func FitDimensions(width, height float64) sunburst.Dimensions {
	if width < 500 {
		return sunburst.Dimensions{Width: width, Height: width}
	}
	return sunburst.Dimensions{Width: width, Height: height, Padding: DefaultPadding}
}
