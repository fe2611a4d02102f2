// Package noise implements a seeded 2D Perlin source with independent
// channels, so different map-generation octaves (coastline, mountain
// noise, moisture) never share a permutation table.
package noise

import "github.com/arl/math32"

// permSize is the permutation table length before duplication for
// wraparound lookups.
const permSize = 256

// Source is a seeded 2D Perlin noise generator with one permutation
// table per channel.
type Source struct {
	perms [][2 * permSize]int32
}

// New builds a Source with the given number of independent channels,
// each shuffled from seed mixed with the channel index so that
// noise2D(x, y, 0) and noise2D(x, y, 1) are uncorrelated.
func New(seed uint64, channels int) *Source {
	if channels < 1 {
		channels = 1
	}
	s := &Source{perms: make([][2 * permSize]int32, channels)}
	for c := 0; c < channels; c++ {
		s.perms[c] = shuffledPermutation(seed ^ (uint64(c+1) * 0x9E3779B97F4A7C15))
	}
	return s
}

// shuffledPermutation builds a duplicated, Fisher-Yates shuffled
// permutation table from seed, using a 64-bit LCG (Knuth's MMIX
// constants) so the table is reproducible without pulling in a
// general-purpose PRNG for a one-shot internal need.
func shuffledPermutation(seed uint64) [2 * permSize]int32 {
	var base [permSize]int32
	for i := range base {
		base[i] = int32(i)
	}
	s := seed
	for i := permSize - 1; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int((s >> 33) % uint64(i+1))
		base[i], base[j] = base[j], base[i]
	}
	var perm [2 * permSize]int32
	for i := 0; i < permSize; i++ {
		perm[i] = base[i]
		perm[i+permSize] = base[i]
	}
	return perm
}

func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float32) float32 {
	return a + t*(b-a)
}

func grad2D(hash int32, x, y float32) float32 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// Noise2D evaluates channel-th octave's permutation table at (x, y),
// returning a value in [-1, 1]. channel is taken modulo the number of
// channels the Source was built with, so callers may request an
// arbitrary channel index.
func (s *Source) Noise2D(x, y float32, channel int) float32 {
	perm := s.perms[channel%len(s.perms)]

	xi := int32(math32.Floor(x)) & (permSize - 1)
	yi := int32(math32.Floor(y)) & (permSize - 1)

	xf := x - math32.Floor(x)
	yf := y - math32.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := perm[perm[xi]+yi]
	ab := perm[perm[xi]+yi+1]
	ba := perm[perm[xi+1]+yi]
	bb := perm[perm[xi+1]+yi+1]

	x1 := lerp(u, grad2D(aa, xf, yf), grad2D(ba, xf-1, yf))
	x2 := lerp(u, grad2D(ab, xf, yf-1), grad2D(bb, xf-1, yf-1))
	// grad2D's range is roughly [-2, 2]; scale down so Noise2D stays
	// within [-1, 1] for the inputs this module ever evaluates it at.
	return lerp(v, x1, x2) / 1.4142135
}
