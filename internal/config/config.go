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

// Package config loads the sunburst configuration from defaults, a
// configuration file, SUNBURST_* environment variables and command line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-envparse"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seehuhn.de/go/sunburst"
	"seehuhn.de/go/sunburst/output"
	"seehuhn.de/go/sunburst/palette"
	"seehuhn.de/go/sunburst/raster"
)

// Config is the complete sunburst configuration.
type Config struct {
	Canvas  Canvas  `mapstructure:"canvas" json:"canvas" toml:"canvas" yaml:"canvas"`
	Rays    Rays    `mapstructure:"rays" json:"rays" toml:"rays" yaml:"rays"`
	Palette Palette `mapstructure:"palette" json:"palette" toml:"palette" yaml:"palette"`
	Render  Render  `mapstructure:"render" json:"render" toml:"render" yaml:"render"`
	Log     Log     `mapstructure:"log" json:"log" toml:"log" yaml:"log"`
}

// Canvas is the size of the output image, in pixels.
type Canvas struct {
	Width   float64 `mapstructure:"width" json:"width" toml:"width" yaml:"width"`
	Height  float64 `mapstructure:"height" json:"height" toml:"height" yaml:"height"`
	Padding float64 `mapstructure:"padding" json:"padding" toml:"padding" yaml:"padding"`
}

// Rays holds the generator parameters. A seed of 0 asks for a fresh random
// seed on every run.
type Rays struct {
	DegreeSpacing  float64 `mapstructure:"degree_spacing" json:"degree_spacing" toml:"degree_spacing" yaml:"degree_spacing"`
	RayLengthScale float64 `mapstructure:"ray_length_scale" json:"ray_length_scale" toml:"ray_length_scale" yaml:"ray_length_scale"`
	Seed           uint64  `mapstructure:"seed" json:"seed" toml:"seed" yaml:"seed"`
}

// Palette selects the colours. Preset is one of "random" (one of the
// built-in palettes, chosen by the seed), "light", "amber" or "custom".
// The individual colours are only used for the "custom" preset.
type Palette struct {
	Preset     string        `mapstructure:"preset" json:"preset" toml:"preset" yaml:"preset"`
	Background palette.Color `mapstructure:"background" json:"background" toml:"background" yaml:"background"`
	Center     palette.Color `mapstructure:"center" json:"center" toml:"center" yaml:"center"`
	Corner     palette.Color `mapstructure:"corner" json:"corner" toml:"corner" yaml:"corner"`
	Edge       palette.Color `mapstructure:"edge" json:"edge" toml:"edge" yaml:"edge"`
}

// Render controls how the pattern is drawn and where it is written.
type Render struct {
	Backend     string  `mapstructure:"backend" json:"backend" toml:"backend" yaml:"backend"`
	StrokeWidth float64 `mapstructure:"stroke_width" json:"stroke_width" toml:"stroke_width" yaml:"stroke_width"`
	Output      string  `mapstructure:"output" json:"output" toml:"output" yaml:"output"`
}

// Log configures the logger.
type Log struct {
	Level string `mapstructure:"level" json:"level" toml:"level" yaml:"level"`
	File  string `mapstructure:"file" json:"file" toml:"file" yaml:"file"`
}

// Meta describes how the configuration was assembled.
type Meta struct {
	FileNotFound bool
	UnknownKeys  []string
	UnknownEnvs  []string
}

const envPrefix = "SUNBURST"

// Preset names which are not built-in palettes.
const (
	PresetRandom = "random"
	PresetCustom = "custom"
)

var defaults = map[string]any{
	"canvas.width":          1000.0,
	"canvas.height":         800.0,
	"canvas.padding":        50.0,
	"rays.degree_spacing":   20.0,
	"rays.ray_length_scale": 1.0,
	"rays.seed":             uint64(0),
	"palette.preset":        PresetRandom,
	"palette.background":    "#f8f8f8",
	"palette.center":        "#f8e71c",
	"palette.corner":        "#4a90e2",
	"palette.edge":          "#fa2800",
	"render.backend":        raster.BackendCoverage,
	"render.stroke_width":   1.0,
	"render.output":         "sunburst.svg",
	"log.level":             "info",
	"log.file":              "",
}

// DefineFlags adds one flag per configuration key to the command. Flags
// which are set on the command line take precedence over all other
// configuration sources.
func DefineFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("canvas.width", 1000, "canvas width in pixels")
	f.Float64("canvas.height", 800, "canvas height in pixels")
	f.Float64("canvas.padding", 50, "padding around the drawable area")
	f.Float64P("rays.degree_spacing", "d", 20, "maximal angle between consecutive rays, in degrees")
	f.Float64P("rays.ray_length_scale", "l", 1, "divisor for the length of long rays")
	f.Uint64P("rays.seed", "s", 0, "random seed (0 picks a new seed every run)")
	f.StringP("palette.preset", "p", PresetRandom,
		"palette: random, custom or one of "+strings.Join(palette.PresetNames(), ", "))
	f.String("render.backend", raster.BackendCoverage, "raster backend for PNG output: coverage or vector")
	f.Float64P("render.stroke_width", "w", 1, "line width of the rays, in pixels")
	f.StringP("render.output", "o", "sunburst.svg", "output file (.svg, .png or .pdf)")
	f.String("log.level", "info", "log level: trace, debug, info, warn, error, fatal or none")
	f.String("log.file", "", "optional log file")
}

// GetConfig assembles the configuration. If cmd is not nil, the flags
// defined by [DefineFlags] are taken into account. A missing configuration
// file is not an error; it is reported via Meta.FileNotFound.
func GetConfig(cmd *cobra.Command, configFile string) (Config, Meta, error) {
	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.TextUnmarshallerHookFunc()))

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key := range defaults {
			if flag := cmd.Flags().Lookup(key); flag != nil {
				_ = v.BindPFlag(key, flag)
			}
		}
	}

	meta := Meta{}

	if configFile != "" {
		v.SetConfigFile(configFile)
		err := v.ReadInConfig()
		if err != nil {
			var configFileNotFoundError *os.PathError
			if errors.As(err, &configFileNotFoundError) {
				meta.FileNotFound = true
			} else {
				return Config{}, Meta{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
		}
	}

	conf := &Config{}
	err := v.Unmarshal(conf)
	if err != nil {
		return Config{}, Meta{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	for _, key := range v.AllKeys() {
		if _, ok := defaults[key]; !ok {
			meta.UnknownKeys = append(meta.UnknownKeys, key)
		}
	}
	slices.Sort(meta.UnknownKeys)
	meta.UnknownEnvs = checkEnvironmentVars(os.Environ())

	return *conf, meta, nil
}

// EnvName returns the environment variable which overrides the given
// configuration key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func checkEnvironmentVars(environ []string) []string {
	known := make(map[string]bool, len(defaults))
	for key := range defaults {
		known[EnvName(key)] = true
	}

	var unknownEnvs []string
	for _, envVar := range environ {
		kv, err := envparse.Parse(strings.NewReader(envVar))
		if err != nil {
			continue
		}
		for envKey := range kv {
			if !strings.HasPrefix(envKey, envPrefix+"_") {
				continue
			}
			if !known[envKey] {
				unknownEnvs = append(unknownEnvs, envKey)
			}
		}
	}
	slices.Sort(unknownEnvs)
	return unknownEnvs
}

// LoadDotEnv adds the variables from the given .env file to the
// environment, if the file exists. Variables which are already set are
// not changed.
func LoadDotEnv(fname string) (bool, error) {
	if _, err := os.Stat(fname); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := godotenv.Load(fname); err != nil {
		return false, fmt.Errorf("error loading %s: %w", fname, err)
	}
	return true, nil
}

// Validate checks that all values are in range.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %gx%g must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Padding < 0 {
		return fmt.Errorf("canvas padding %g must not be negative", c.Canvas.Padding)
	}
	if s := c.Rays.DegreeSpacing; s < sunburst.MinDegreeSpacing || s > sunburst.MaxDegreeSpacing {
		return fmt.Errorf("degree_spacing %g not in range [%g, %g]",
			s, float64(sunburst.MinDegreeSpacing), float64(sunburst.MaxDegreeSpacing))
	}
	if s := c.Rays.RayLengthScale; s < sunburst.MinRayLengthScale || s > sunburst.MaxRayLengthScale {
		return fmt.Errorf("ray_length_scale %g not in range [%g, %g]",
			s, float64(sunburst.MinRayLengthScale), float64(sunburst.MaxRayLengthScale))
	}
	switch p := strings.ToLower(c.Palette.Preset); p {
	case PresetRandom, PresetCustom:
	default:
		if _, ok := palette.Preset(p); !ok {
			return unknownPreset(c.Palette.Preset)
		}
	}
	switch c.Render.Backend {
	case raster.BackendCoverage, raster.BackendVector:
	default:
		return fmt.Errorf("%w %q", raster.ErrUnknownBackend, c.Render.Backend)
	}
	if c.Render.StrokeWidth <= 0 {
		return fmt.Errorf("stroke_width %g must be positive", c.Render.StrokeWidth)
	}
	if c.Render.Output != "" {
		if _, err := output.FormatOf(c.Render.Output); err != nil {
			return err
		}
	}
	return nil
}

// Dimensions returns the canvas size.
func (c Canvas) Dimensions() sunburst.Dimensions {
	return sunburst.Dimensions{Width: c.Width, Height: c.Height, Padding: c.Padding}
}

// Parameters returns the generator parameters.
func (r Rays) Parameters() sunburst.Parameters {
	return sunburst.Parameters{DegreeSpacing: r.DegreeSpacing, RayLengthScale: r.RayLengthScale}
}

// Resolve returns the palette to draw with. For the "random" preset, one
// draw is taken from src.
func (p Palette) Resolve(src sunburst.Source) (palette.Palette, error) {
	switch name := strings.ToLower(p.Preset); name {
	case PresetRandom:
		return palette.Pick(src), nil
	case PresetCustom:
		return palette.Palette{
			Background: p.Background,
			Center:     p.Center,
			Corner:     p.Corner,
			Edge:       p.Edge,
		}, nil
	default:
		pal, ok := palette.Preset(name)
		if !ok {
			return palette.Palette{}, unknownPreset(p.Preset)
		}
		return pal, nil
	}
}

func unknownPreset(name string) error {
	names := append([]string{PresetRandom, PresetCustom}, palette.PresetNames()...)
	return fmt.Errorf("unknown palette preset %q, want one of %s", name, strings.Join(names, ", "))
}

// Options returns the output options.
func (r Render) Options() output.Options {
	return output.Options{StrokeWidth: r.StrokeWidth, Backend: r.Backend}
}
