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

package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/sunburst"
	"seehuhn.de/go/sunburst/internal/config"
	"seehuhn.de/go/sunburst/internal/logging"
	"seehuhn.de/go/sunburst/output"
	"seehuhn.de/go/sunburst/scene"
)

// Setup loads the configuration for a command, sets up logging and
// reports unknown configuration keys and environment variables. The
// returned function must be called when the command is done.
func Setup(cmd *cobra.Command, configFile string) (config.Config, func(), error) {
	dotEnvUsed, err := config.LoadDotEnv(".env")
	if err != nil {
		return config.Config{}, nil, err
	}
	conf, meta, err := config.GetConfig(cmd, configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	closeFn, err := logging.Setup(conf.Log)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("error opening log file: %w", err)
	}
	if closeFn == nil {
		closeFn = func() {}
	}

	if dotEnvUsed {
		log.Info().Msg("loaded environment from .env file")
	}
	if meta.FileNotFound {
		log.Warn().Str("path", configFile).Msg("config file not found, continuing using defaults")
	}
	for _, key := range meta.UnknownKeys {
		log.Warn().Str("key", key).Msg("unknown key found in the configuration file")
	}
	for _, env := range meta.UnknownEnvs {
		log.Warn().Str("var", env).Msg("unknown SUNBURST_* environment variable")
	}

	if err := conf.Validate(); err != nil {
		closeFn()
		return config.Config{}, nil, fmt.Errorf("error validating config: %w", err)
	}
	return conf, closeFn, nil
}

// ChooseSeed returns the configured seed, or a random one if the
// configuration asks for it.
func ChooseSeed(conf config.Config) uint64 {
	if conf.Rays.Seed != 0 {
		return conf.Rays.Seed
	}
	return rand.Uint64()
}

// Compose builds the scene described by the configuration.
func Compose(ctx context.Context, conf config.Config, seed uint64) (*scene.Scene, error) {
	return scene.Compose(ctx, conf.Canvas.Dimensions(), conf.Rays.Parameters(), seed)
}

// RenderCommand returns the command which draws a pattern and writes it
// to a file.
func RenderCommand() *cobra.Command {
	var configFile string
	var renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Draw a ray pattern",
		Long:  `Draw a ray pattern and write it as SVG, PNG or PDF file`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runRender(cmd, configFile); err != nil {
				log.Fatal().Err(err).Msg("render failed")
			}
		},
	}
	renderCmd.Flags().StringVarP(&configFile, "config", "c", "config.json", "path to config file")
	config.DefineFlags(renderCmd)
	return renderCmd
}

func runRender(cmd *cobra.Command, configFile string) error {
	conf, closeFn, err := Setup(cmd, configFile)
	if err != nil {
		return err
	}
	defer closeFn()
	_, err = render(cmd.Context(), conf, ChooseSeed(conf))
	return err
}

// render writes one pattern to the configured output file and returns
// the scene which was written.
func render(ctx context.Context, conf config.Config, seed uint64) (*scene.Scene, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	s, err := Compose(ctx, conf, seed)
	if err != nil {
		return nil, err
	}
	pal, err := conf.Palette.Resolve(sunburst.NewSource(sunburst.DeriveSeed(seed, scene.PaletteStream)))
	if err != nil {
		return nil, err
	}

	fname := conf.Render.Output
	err = output.WriteFile(fname, s, pal, conf.Render.Options())
	if err != nil {
		return nil, fmt.Errorf("error writing %s: %w", fname, err)
	}

	log.Info().
		Str("file", fname).
		Uint64("seed", seed).
		Int("center", s.CountFamily(sunburst.Center)).
		Int("corner", s.CountFamily(sunburst.Corner)).
		Int("edge", s.CountFamily(sunburst.Edge)).
		Dur("elapsed", time.Since(start)).
		Msg("pattern written")
	return s, nil
}
