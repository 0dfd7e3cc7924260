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

// Package viewer shows ray patterns in a window and lets the user change
// the parameters with the keyboard.
//
// Keys: up/down change the density of the rays, left/right their length,
// R draws a new pattern, C shows or hides the palette and the current
// parameters, Ctrl+S (Cmd+S on macOS) saves the pattern, Escape quits.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"

	"seehuhn.de/go/sunburst/control"
	"seehuhn.de/go/sunburst/internal/session"
	"seehuhn.de/go/sunburst/palette"
)

var keyNames = map[ebiten.Key]string{
	ebiten.KeyC:          "c",
	ebiten.KeyS:          "s",
	ebiten.KeyR:          "r",
	ebiten.KeyArrowUp:    "up",
	ebiten.KeyArrowDown:  "down",
	ebiten.KeyArrowLeft:  "left",
	ebiten.KeyArrowRight: "right",
}

type game struct {
	ctx      context.Context
	session  *session.Session
	saveName string

	img *ebiten.Image

	// result of the save dialog, which runs on its own goroutine
	status chan string
	busy   bool

	message string
	lastErr error
}

// Run opens the viewer window and blocks until it is closed. saveName is
// the file name suggested in the save dialog.
func Run(ctx context.Context, s *session.Session, saveName string) error {
	g := &game{
		ctx:      ctx,
		session:  s,
		saveName: saveName,
		status:   make(chan string, 1),
	}

	ebiten.SetWindowSize(1000, 800)
	ebiten.SetWindowTitle("sunburst")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}

	select {
	case msg := <-g.status:
		g.message = msg
		g.busy = false
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	for key, name := range keyNames {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		in, eff := g.session.Handle(control.Chord{Key: name, Ctrl: ctrl})
		if in != 0 {
			log.Debug().Str("intent", in.String()).Msg("key")
		}
		if eff.Save {
			g.save()
		}
	}

	img, fresh, err := g.session.Frame(g.ctx)
	if err != nil {
		g.lastErr = err
		return nil
	}
	if fresh {
		b := img.Bounds()
		if g.img == nil || g.img.Bounds() != b {
			if g.img != nil {
				g.img.Deallocate()
			}
			g.img = ebiten.NewImage(b.Dx(), b.Dy())
		}
		g.img.WritePixels(img.Pix)
	}
	return nil
}

// save asks for a file name and writes the current pattern. The dialog
// runs on its own goroutine, so that the window stays responsive.
func (g *game) save() {
	if g.busy {
		return
	}
	g.busy = true
	go func() {
		fname, err := zenity.SelectFileSave(
			zenity.Title("Save pattern"),
			zenity.Filename(g.saveName),
			zenity.ConfirmOverwrite(),
			zenity.FileFilters{{
				Name:     "Images",
				Patterns: []string{"*.svg", "*.png", "*.pdf"},
			}},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				g.status <- ""
				return
			}
			g.status <- "error: " + err.Error()
			return
		}

		err = g.session.Save(fname)
		if err != nil {
			log.Error().Err(err).Str("file", fname).Msg("save failed")
			g.status <- "error: " + err.Error()
			return
		}
		log.Info().Str("file", fname).Msg("pattern saved")
		g.status <- "saved " + filepath.Base(fname)
	}()
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}

	if g.session.Store.PickersVisible() {
		g.drawPickers(screen)
	}

	status := g.message
	if g.lastErr != nil {
		status = "error: " + g.lastErr.Error()
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, 12, screen.Bounds().Dy()-20)
	}
}

func (g *game) drawPickers(screen *ebiten.Image) {
	pal := g.session.Store.Palette()
	params := g.session.Store.Params()
	const x, y0, size = 12, 12, 14

	bg := color.RGBA{R: 0, G: 0, B: 0, A: 160}
	vector.DrawFilledRect(screen, x-6, y0-6, 250, 4*(size+6)+30, bg, false)
	for i, name := range palette.Slots {
		c, _ := pal.Get(name)
		y := float32(y0 + i*(size+6))
		vector.DrawFilledRect(screen, x, y, size, size, c, false)
		vector.StrokeRect(screen, x, y, size, size, 1, color.White, false)
		label := fmt.Sprintf("%-10s %s", name, c.Hex())
		ebitenutil.DebugPrintAt(screen, label, x+size+8, int(y))
	}
	info := fmt.Sprintf("spacing %g  length 1/%g", params.DegreeSpacing, params.RayLengthScale)
	ebitenutil.DebugPrintAt(screen, info, x, y0+4*(size+6)+4)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.session.Resize(outsideWidth, outsideHeight) {
		log.Debug().Int("width", outsideWidth).Int("height", outsideHeight).Msg("resize")
	}
	return outsideWidth, outsideHeight
}
