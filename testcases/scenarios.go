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

package testcases

var canvasScenarios = []Scenario{
	{
		Name:   "landscape",
		Dims:   dims(1000, 800, 50),
		Params: params(20, 1),
		Seed:   42,
	},
	{
		Name:   "portrait",
		Dims:   dims(600, 900, 50),
		Params: params(20, 1),
		Seed:   42,
	},
	{
		Name:   "small_square",
		Dims:   dims(400, 400, 0),
		Params: params(20, 1),
		Seed:   7,
	},
	{
		Name:   "wide",
		Dims:   dims(3000, 600, 50),
		Params: params(20, 1),
		Seed:   9,
	},
	{
		Name:   "no_padding",
		Dims:   dims(800, 800, 0),
		Params: params(15, 1.5),
		Seed:   3,
	},
}

var densityScenarios = []Scenario{
	{
		Name:   "densest",
		Dims:   dims(1000, 800, 50),
		Params: params(5, 1),
		Seed:   1,
	},
	{
		Name:   "medium",
		Dims:   dims(1000, 800, 50),
		Params: params(35, 1),
		Seed:   1,
	},
	{
		Name:   "sparsest",
		Dims:   dims(1000, 800, 50),
		Params: params(70, 1),
		Seed:   1,
	},
}

var lengthScenarios = []Scenario{
	{
		Name:   "longest",
		Dims:   dims(1000, 800, 50),
		Params: params(20, 1),
		Seed:   5,
	},
	{
		Name:   "half",
		Dims:   dims(1000, 800, 50),
		Params: params(20, 2),
		Seed:   5,
	},
	{
		Name:   "shortest",
		Dims:   dims(1000, 800, 50),
		Params: params(70, 20),
		Seed:   7,
	},
}

// Degenerate canvases: tiny drawable areas and no drawable area at all.
var degenerateScenarios = []Scenario{
	{
		Name:   "tiny",
		Dims:   dims(104, 104, 50),
		Params: params(20, 1),
		Seed:   1,
	},
	{
		Name:   "sliver",
		Dims:   dims(1000, 101, 50),
		Params: params(20, 1),
		Seed:   2,
	},
	{
		Name:   "empty",
		Dims:   dims(100, 100, 50),
		Params: params(20, 1),
		Seed:   3,
	},
	{
		Name:   "out_of_range",
		Dims:   dims(500, 500, 50),
		Params: params(200, -1),
		Seed:   4,
	},
}
