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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sunburst"
	"seehuhn.de/go/sunburst/palette"
)

func getConfig(t *testing.T, configFile string) (Config, Meta) {
	t.Helper()
	conf, meta, err := GetConfig(nil, configFile)
	require.NoError(t, err)
	return conf, meta
}

func checkConfig(t *testing.T, conf Config) {
	t.Helper()
	require.Equal(t, sunburst.Dimensions{Width: 640, Height: 480, Padding: 20}, conf.Canvas.Dimensions())
	require.Equal(t, sunburst.Parameters{DegreeSpacing: 10, RayLengthScale: 2.5}, conf.Rays.Parameters())
	require.Equal(t, uint64(1234), conf.Rays.Seed)
	require.Equal(t, "custom", conf.Palette.Preset)
	require.Equal(t, "#000000", conf.Palette.Background.Hex())
	require.Equal(t, "#ffffff", conf.Palette.Center.Hex())
	require.Equal(t, "#00ff00", conf.Palette.Corner.Hex())
	require.Equal(t, "#0000ff", conf.Palette.Edge.Hex())
	require.Equal(t, "vector", conf.Render.Backend)
	require.Equal(t, 2.0, conf.Render.StrokeWidth)
	require.Equal(t, "out.png", conf.Render.Output)
	require.Equal(t, "debug", conf.Log.Level)
	require.NoError(t, conf.Validate())
}

func TestConfigDefaults(t *testing.T) {
	conf, meta := getConfig(t, "")
	require.False(t, meta.FileNotFound)
	require.Empty(t, meta.UnknownKeys)
	require.NoError(t, conf.Validate())

	require.Equal(t, sunburst.Dimensions{Width: 1000, Height: 800, Padding: 50}, conf.Canvas.Dimensions())
	require.Equal(t, sunburst.DefaultParameters(), conf.Rays.Parameters())
	require.Zero(t, conf.Rays.Seed)
	require.Equal(t, PresetRandom, conf.Palette.Preset)
	require.Equal(t, palette.Light.Center.Hex(), conf.Palette.Center.Hex())
	require.Equal(t, "coverage", conf.Render.Backend)
	require.Equal(t, "sunburst.svg", conf.Render.Output)
	require.Equal(t, "info", conf.Log.Level)
}

func TestConfigJSON(t *testing.T) {
	conf, meta := getConfig(t, "testdata/config.json")
	checkConfig(t, conf)
	require.Len(t, meta.UnknownKeys, 0)
}

func TestConfigYAML(t *testing.T) {
	conf, _ := getConfig(t, "testdata/config.yaml")
	checkConfig(t, conf)
}

func TestConfigTOML(t *testing.T) {
	conf, _ := getConfig(t, "testdata/config.toml")
	checkConfig(t, conf)
}

func TestConfigFileNotFound(t *testing.T) {
	conf, meta := getConfig(t, "testdata/missing.json")
	require.True(t, meta.FileNotFound)
	require.Equal(t, 1000.0, conf.Canvas.Width)
}

func TestConfigUnknownKeys(t *testing.T) {
	conf, meta := getConfig(t, "testdata/unknown.yaml")
	require.Equal(t, 30.0, conf.Rays.DegreeSpacing)
	require.Equal(t, []string{"frame", "rays.colour"}, meta.UnknownKeys)
}

func TestConfigBadColour(t *testing.T) {
	_, _, err := GetConfig(nil, "testdata/bad.yaml")
	require.Error(t, err)
}

func TestConfigEnvVars(t *testing.T) {
	t.Setenv("SUNBURST_RAYS_SEED", "99")
	t.Setenv("SUNBURST_CANVAS_WIDTH", "300")
	t.Setenv("SUNBURST_RENDER_BACKEND", "vector")
	t.Setenv("SUNBURST_UNKNOWN_ENV", "1")

	conf, meta := getConfig(t, "testdata/config.json")
	require.Equal(t, uint64(99), conf.Rays.Seed)
	require.Equal(t, 300.0, conf.Canvas.Width)
	require.Equal(t, 480.0, conf.Canvas.Height)
	require.Equal(t, "vector", conf.Render.Backend)
	require.Contains(t, meta.UnknownEnvs, "SUNBURST_UNKNOWN_ENV")
	require.NotContains(t, meta.UnknownEnvs, "SUNBURST_RAYS_SEED")
}

func TestConfigFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	DefineFlags(cmd)
	require.NoError(t, cmd.Flags().Set("rays.seed", "5"))
	require.NoError(t, cmd.Flags().Set("palette.preset", "amber"))

	conf, _, err := GetConfig(cmd, "testdata/config.json")
	require.NoError(t, err)
	require.Equal(t, uint64(5), conf.Rays.Seed)
	require.Equal(t, "amber", conf.Palette.Preset)

	// flags which were not set leave the file values alone
	require.Equal(t, 640.0, conf.Canvas.Width)
	require.Equal(t, 2.0, conf.Render.StrokeWidth)
}

func TestEnvName(t *testing.T) {
	require.Equal(t, "SUNBURST_RAYS_DEGREE_SPACING", EnvName("rays.degree_spacing"))
	require.Equal(t, "SUNBURST_LOG_FILE", EnvName("log.file"))
}

func TestCheckEnvironmentVars(t *testing.T) {
	got := checkEnvironmentVars([]string{
		"HOME=/root",
		"SUNBURST_LOG_LEVEL=debug",
		"SUNBURST_COLOUR=red",
		"SUNBURST_CANVAS_DEPTH=3",
	})
	require.Equal(t, []string{"SUNBURST_CANVAS_DEPTH", "SUNBURST_COLOUR"}, got)
}

func TestLoadDotEnv(t *testing.T) {
	found, err := LoadDotEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	require.False(t, found)

	fname := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(fname, []byte("SUNBURST_TEST_DOTENV=hello\n"), 0644))
	defer func() {
		_ = os.Unsetenv("SUNBURST_TEST_DOTENV")
	}()
	found, err = LoadDotEnv(fname)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "hello", os.Getenv("SUNBURST_TEST_DOTENV"))
}

func TestValidate(t *testing.T) {
	base, _ := getConfig(t, "")
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }},
		{"negative padding", func(c *Config) { c.Canvas.Padding = -1 }},
		{"dense", func(c *Config) { c.Rays.DegreeSpacing = 4 }},
		{"sparse", func(c *Config) { c.Rays.DegreeSpacing = 71 }},
		{"short", func(c *Config) { c.Rays.RayLengthScale = 21 }},
		{"preset", func(c *Config) { c.Palette.Preset = "neon" }},
		{"backend", func(c *Config) { c.Render.Backend = "opengl" }},
		{"stroke", func(c *Config) { c.Render.StrokeWidth = 0 }},
		{"output", func(c *Config) { c.Render.Output = "rays.gif" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			conf := base
			c.modify(&conf)
			require.Error(t, conf.Validate())
		})
	}

	conf := base
	conf.Palette.Preset = "Light"
	require.NoError(t, conf.Validate())
}

func TestResolvePalette(t *testing.T) {
	conf, _ := getConfig(t, "testdata/config.yaml")
	pal, err := conf.Palette.Resolve(sunburst.NewSource(1))
	require.NoError(t, err)
	require.Equal(t, "#00ff00", pal.Corner.Hex())

	conf.Palette.Preset = "amber"
	pal, err = conf.Palette.Resolve(sunburst.NewSource(1))
	require.NoError(t, err)
	require.Equal(t, palette.Amber, pal)

	// seed 42 starts with 0.74..., which picks the light palette
	conf.Palette.Preset = PresetRandom
	pal, err = conf.Palette.Resolve(sunburst.NewSource(42))
	require.NoError(t, err)
	require.Equal(t, palette.Light, pal)

	conf.Palette.Preset = "neon"
	_, err = conf.Palette.Resolve(sunburst.NewSource(1))
	require.ErrorContains(t, err, `unknown palette preset "neon"`)
	for _, name := range palette.PresetNames() {
		require.ErrorContains(t, err, name)
	}
}
