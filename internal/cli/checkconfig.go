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
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/sunburst/internal/config"
)

func CheckConfig() *cobra.Command {
	var checkConfigFile string
	var checkConfigStrict bool
	var checkConfigCmd = &cobra.Command{
		Use:   "checkconfig",
		Short: "Check configuration file",
		Long:  `Check sunburst configuration file`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := checkConfig(checkConfigFile, checkConfigStrict); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}
	checkConfigCmd.Flags().StringVarP(&checkConfigFile, "config", "c", "config.json", "path to config file to check")
	checkConfigCmd.Flags().BoolVarP(&checkConfigStrict, "strict", "s", false, "strict check - fail on unknown fields")
	return checkConfigCmd
}

func checkConfig(checkConfigFile string, strict bool) error {
	cfg, cfgMeta, err := config.GetConfig(nil, checkConfigFile)
	if err != nil {
		return fmt.Errorf("error getting config: %w", err)
	}
	if cfgMeta.FileNotFound {
		return fmt.Errorf("config file not found")
	}
	err = cfg.Validate()
	if err != nil {
		return fmt.Errorf("error validating config: %w", err)
	}
	if strict && len(cfgMeta.UnknownKeys) > 0 {
		return fmt.Errorf("unknown keys in config: %v", strings.Join(cfgMeta.UnknownKeys, ", "))
	}
	return nil
}
