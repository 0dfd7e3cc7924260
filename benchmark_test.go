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

package sunburst

import (
	"fmt"
	"testing"
)

// BenchmarkGenerate measures the generation of one ray field per family,
// for the densest and the sparsest setting.
func BenchmarkGenerate(b *testing.B) {
	dims := Dimensions{Width: 1000, Height: 800, Padding: 50}
	for _, spacing := range []float64{MinDegreeSpacing, MaxDegreeSpacing} {
		for _, family := range Families {
			b.Run(fmt.Sprintf("%s/%g", family, spacing), func(b *testing.B) {
				params := Parameters{DegreeSpacing: spacing, RayLengthScale: 1}
				src := NewSource(1)
				b.ReportAllocs()
				for b.Loop() {
					Generate(family, dims, params, src)
				}
			})
		}
	}
}
