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

// Command export writes the ray fields of all scenarios to
// testdata/testcases.json, for comparison with other implementations.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sunburst"
	"seehuhn.de/go/sunburst/scene"
	"seehuhn.de/go/sunburst/testcases"
)

func main() {
	var out struct {
		TestCases []jsonScenario `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, sc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScenario struct {
	Name           string      `json:"name"`
	Width          float64     `json:"width"`
	Height         float64     `json:"height"`
	Padding        float64     `json:"padding"`
	DegreeSpacing  float64     `json:"degree_spacing"`
	RayLengthScale float64     `json:"ray_length_scale"`
	Seed           uint64      `json:"seed"`
	Fields         []jsonField `json:"fields"`
}

type jsonField struct {
	Position string   `json:"position"`
	Rays     [][2]int `json:"rays"` // angle, length
}

func toJSON(category string, sc testcases.Scenario) jsonScenario {
	js := jsonScenario{
		Name:           category + "_" + sc.Name,
		Width:          sc.Dims.Width,
		Height:         sc.Dims.Height,
		Padding:        sc.Dims.Padding,
		DegreeSpacing:  sc.Params.DegreeSpacing,
		RayLengthScale: sc.Params.RayLengthScale,
		Seed:           sc.Seed,
	}
	for _, pos := range scene.Positions {
		src := sunburst.NewSource(sunburst.DeriveSeed(sc.Seed, uint64(pos)))
		field := sunburst.Generate(pos.Family(), sc.Dims, sc.Params, src)
		jf := jsonField{
			Position: pos.String(),
			Rays:     make([][2]int, len(field)),
		}
		for i, ray := range field {
			jf.Rays[i] = [2]int{ray.Angle, ray.Length}
		}
		js.Fields = append(js.Fields, jf)
	}
	return js
}
