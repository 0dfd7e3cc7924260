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

import "math"

// Source is a source of uniformly distributed random numbers in [0, 1).
// A *rand.Rand from math/rand/v2 satisfies this interface.
//
// Sources are not required to be safe for concurrent use.
type Source interface {
	Float64() float64
}

// SplitMix is a SplitMix64 pseudo-random generator. Its output for a given
// seed is fixed, which makes generated fields reproducible across Go
// releases and platforms.
//
// SplitMix also implements the math/rand/v2 Source interface.
type SplitMix struct {
	state uint64
}

// NewSource returns a SplitMix generator started from seed.
func NewSource(seed uint64) *SplitMix {
	return &SplitMix{state: seed}
}

// Uint64 returns the next 64 random bits.
func (s *SplitMix) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Float64 returns a random number in [0, 1) with 53 bits of precision.
func (s *SplitMix) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// DeriveSeed mixes a stream identifier into a parent seed. Different
// streams of the same parent give unrelated sequences.
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Between returns floor(u·(hi-lo+1) + lo) for a uniform u from src.
// For integer bounds this is uniform over lo, ..., hi.
//
// If hi < lo, hi is raised to lo and the result is floor(u + lo).
func Between(src Source, lo, hi float64) int {
	hi = max(lo, hi)
	return int(math.Floor(src.Float64()*(hi-lo+1) + lo))
}
