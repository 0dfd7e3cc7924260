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

// Sunburst-view shows procedurally generated ray patterns in a window.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/sunburst/internal/build"
	"seehuhn.de/go/sunburst/internal/cli"
	"seehuhn.de/go/sunburst/internal/config"
	"seehuhn.de/go/sunburst/internal/session"
	"seehuhn.de/go/sunburst/internal/viewer"
)

func main() {
	var configFile string
	rootCmd := &cobra.Command{
		Use:   "sunburst-view",
		Short: "Show ray patterns in a window",
		Long:  `Show procedurally generated ray patterns in a window`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(cmd, configFile); err != nil {
				log.Fatal().Err(err).Msg("viewer failed")
			}
		},
	}
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "config.json", "path to config file")
	config.DefineFlags(rootCmd)
	rootCmd.AddCommand(cli.Version())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, configFile string) error {
	conf, closeFn, err := cli.Setup(cmd, configFile)
	if err != nil {
		return fmt.Errorf("error getting config: %w", err)
	}
	defer closeFn()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cli.ChooseSeed(conf)
	s, err := session.New(conf, seed)
	if err != nil {
		return fmt.Errorf("error starting session: %w", err)
	}
	log.Info().Str("version", build.Version).Uint64("seed", seed).Msg("starting viewer")
	return viewer.Run(ctx, s, conf.Render.Output)
}
