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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var _ rand.Source = (*SplitMix)(nil)

func TestSplitMixKnownValues(t *testing.T) {
	require.Equal(t, uint64(0xe220a8397b1dcdaf), NewSource(0).Uint64())

	src := NewSource(42)
	require.Equal(t, 0.7415648787718233, src.Float64())
	require.Equal(t, 0.1599103928769201, src.Float64())
	require.Equal(t, 0.27860113025513866, src.Float64())
}

func TestSplitMixRange(t *testing.T) {
	src := NewSource(99)
	for range 10000 {
		x := src.Float64()
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
	}
}

func TestDeriveSeed(t *testing.T) {
	require.Equal(t, uint64(0x28efe333b266f103), DeriveSeed(42, 0))
	require.Equal(t, uint64(0xe60bb9617aa6ed70), DeriveSeed(42, 1))

	seen := make(map[uint64]bool)
	for stream := range uint64(9) {
		s := DeriveSeed(42, stream)
		require.False(t, seen[s])
		seen[s] = true
	}
}

type fixed []float64

func (f *fixed) Float64() float64 {
	x := (*f)[0]
	*f = (*f)[1:]
	return x
}

func TestBetween(t *testing.T) {
	cases := []struct {
		u      float64
		lo, hi float64
		want   int
	}{
		{0, 1, 6, 1},
		{0.999999, 1, 6, 6},
		{0.5, 1, 6, 4},
		{0, 2.5, 3, 2},
		{0.75, 2.5, 3, 3},
		{0.3, 10, 3, 10}, // inverted range collapses to lo
		{0.9, 10.4, 3, 11},
	}
	for _, c := range cases {
		src := fixed{c.u}
		require.Equal(t, c.want, Between(&src, c.lo, c.hi), "%v", c)
	}
}

func TestBetweenCoversRange(t *testing.T) {
	src := NewSource(7)
	counts := make(map[int]int)
	for range 6000 {
		counts[Between(src, 1, 6)]++
	}
	keys := make([]int, 0, len(counts))
	for k, n := range counts {
		keys = append(keys, k)
		require.Greater(t, n, 800)
	}
	slices.Sort(keys)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, keys)
}

func TestWalkAngles(t *testing.T) {
	src := fixed{0.99, 0.0, 0.5}
	got := slices.Collect(WalkAngles(-12, 10, &src))
	// steps: 10, 1, 6
	require.Equal(t, []int{0, -10, -11}, got)
	require.Empty(t, src)
}

func TestWalkAnglesSmallStep(t *testing.T) {
	src := NewSource(1)
	got := slices.Collect(WalkAngles(-5, 0.3, src))
	require.Equal(t, []int{0, -1, -2, -3, -4}, got)
}

func TestParameterSteps(t *testing.T) {
	p := DefaultParameters()
	require.Equal(t, 15.0, p.MoreRays().DegreeSpacing)
	require.Equal(t, 25.0, p.FewerRays().DegreeSpacing)
	require.Equal(t, 1.0, p.LongerRays().RayLengthScale)
	require.Equal(t, 1.5, p.ShorterRays().RayLengthScale)

	lo := Parameters{DegreeSpacing: 5, RayLengthScale: 1}
	require.Equal(t, lo, lo.MoreRays().LongerRays())
	hi := Parameters{DegreeSpacing: 70, RayLengthScale: 20}
	require.Equal(t, hi, hi.FewerRays().ShorterRays())
}

func TestDimensions(t *testing.T) {
	d := Dimensions{Width: 1000, Height: 800, Padding: 50}
	require.Equal(t, 900.0, d.ActiveWidth())
	require.Equal(t, 700.0, d.ActiveHeight())
	require.False(t, d.IsEmpty())

	d = Dimensions{Width: 60, Height: 800, Padding: 50}
	require.Equal(t, 0.0, d.ActiveWidth())
	require.True(t, d.IsEmpty())
}
