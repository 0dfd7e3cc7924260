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

// Sunburst draws procedurally generated ray patterns and writes them as
// SVG, PNG or PDF files.
package main

import (
	"os"

	"seehuhn.de/go/sunburst/internal/cli"
)

func main() {
	rootCmd := cli.RenderCommand()
	rootCmd.Use = "sunburst"
	rootCmd.AddCommand(
		cli.RenderCommand(),
		cli.RaysCommand(),
		cli.Version(),
		cli.CheckConfig(),
		cli.DefaultConfigCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
