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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/sunburst/internal/config"
)

func DefaultConfigCommand() *cobra.Command {
	var defaultConfigFile string
	var defaultConfigCmd = &cobra.Command{
		Use:   "defaultconfig",
		Short: "Generate full configuration file with defaults",
		Long:  `Generate full sunburst configuration file with defaults`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := DefaultConfig(defaultConfigFile); err != nil {
				fmt.Printf("error: %v\n", err)
				os.Exit(1)
			}
		},
	}
	defaultConfigCmd.Flags().StringVarP(&defaultConfigFile, "config", "c", "config.json", "path to default config file to generate")
	return defaultConfigCmd
}

var supportedExtensions = []string{"json", "toml", "yaml", "yml"}

// DefaultConfig writes the default configuration to the given file. The
// format is chosen by the file name extension. Existing files are not
// overwritten.
func DefaultConfig(configFile string) error {
	_, err := os.Stat(configFile)
	if err == nil {
		return errors.New("target file already exists")
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	conf, _, err := config.GetConfig(nil, "")
	if err != nil {
		return err
	}
	if err = conf.Validate(); err != nil {
		return err
	}

	ext := filepath.Ext(configFile)
	if len(ext) > 1 {
		ext = ext[1:]
	}

	var b []byte
	switch ext {
	case "json":
		b, err = json.MarshalIndent(conf, "", "  ")
	case "toml":
		b, err = toml.Marshal(conf)
	case "yaml", "yml":
		b, err = yaml.Marshal(conf)
	default:
		err = errors.New("output config file must have one of supported extensions: " + strings.Join(supportedExtensions, ", "))
	}
	if err != nil {
		return err
	}

	return os.WriteFile(configFile, b, 0644)
}
