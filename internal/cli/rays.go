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
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/sunburst/internal/config"
	"seehuhn.de/go/sunburst/scene"
)

type rayRecord struct {
	Angle  int `json:"angle"`
	Length int `json:"length"`
}

type groupRecord struct {
	Position string      `json:"position"`
	Family   string      `json:"family"`
	Rays     []rayRecord `json:"rays"`
}

type sceneRecord struct {
	Seed           uint64        `json:"seed"`
	Width          float64       `json:"width"`
	Height         float64       `json:"height"`
	Padding        float64       `json:"padding"`
	DegreeSpacing  float64       `json:"degree_spacing"`
	RayLengthScale float64       `json:"ray_length_scale"`
	Groups         []groupRecord `json:"groups"`
}

// RaysCommand returns the command which prints the generated ray fields
// as JSON, without drawing them.
func RaysCommand() *cobra.Command {
	var configFile string
	var positions []string
	var raysCmd = &cobra.Command{
		Use:   "rays",
		Short: "Print the generated rays as JSON",
		Long:  `Generate the ray fields for all nine positions and print them as JSON`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runRays(cmd, configFile, positions); err != nil {
				log.Fatal().Err(err).Msg("rays failed")
			}
		},
	}
	raysCmd.Flags().StringVarP(&configFile, "config", "c", "config.json", "path to config file")
	raysCmd.Flags().StringSliceVar(&positions, "position", nil, "only print these positions (e.g. top-left,center)")
	config.DefineFlags(raysCmd)
	return raysCmd
}

func runRays(cmd *cobra.Command, configFile string, positions []string) error {
	conf, closeFn, err := Setup(cmd, configFile)
	if err != nil {
		return err
	}
	defer closeFn()
	return dumpRays(cmd.Context(), cmd.OutOrStdout(), conf, ChooseSeed(conf), positions)
}

func dumpRays(ctx context.Context, w io.Writer, conf config.Config, seed uint64, positions []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var want map[scene.Position]bool
	if len(positions) > 0 {
		want = make(map[scene.Position]bool)
		for _, name := range positions {
			pos, ok := scene.ParsePosition(name)
			if !ok {
				return fmt.Errorf("unknown position %q", name)
			}
			want[pos] = true
		}
	}

	s, err := Compose(ctx, conf, seed)
	if err != nil {
		return err
	}

	rec := sceneRecord{
		Seed:           s.Seed,
		Width:          s.Dims.Width,
		Height:         s.Dims.Height,
		Padding:        s.Dims.Padding,
		DegreeSpacing:  s.Params.DegreeSpacing,
		RayLengthScale: s.Params.RayLengthScale,
	}
	for _, g := range s.Groups {
		if want != nil && !want[g.Position] {
			continue
		}
		gr := groupRecord{
			Position: g.Position.String(),
			Family:   g.Position.Family().String(),
			Rays:     make([]rayRecord, len(g.Field)),
		}
		for i, ray := range g.Field {
			gr.Rays[i] = rayRecord{Angle: ray.Angle, Length: ray.Length}
		}
		rec.Groups = append(rec.Groups, gr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
