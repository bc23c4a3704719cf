package rng

import (
	"github.com/aquilax/go-perlin"
)

// PerlinGenerator wraps classical gradient noise for external/map-rendering
// consumers (UI minimap previews, PPM art passes). The deterministic
// simulation pipeline itself never calls this — it uses Noise2D /
// ValueNoiseOctaves so that results stay byte-identical independent of the
// library's internal implementation.
type PerlinGenerator struct {
	p *perlin.Perlin
}

// NewPerlinGenerator builds a generator seeded for reproducible previews.
// alpha/beta/n mirror the teacher's defaults: alpha=2 (per-octave weight),
// beta=2 (lacunarity), n=3 (octaves).
func NewPerlinGenerator(seed int64) *PerlinGenerator {
	return &PerlinGenerator{p: perlin.NewPerlin(2, 2, 3, seed)}
}

// Noise2D returns classical gradient noise, approximately in [-1,1].
func (g *PerlinGenerator) Noise2D(x, y float64) float64 {
	return g.p.Noise2D(x, y)
}

// Octave2D returns octave-combined noise biased into ~[0,1] via +0.5,
// applying persistence (amplitude decay) across doubled frequencies.
func (g *PerlinGenerator) Octave2D(x, y float64, octaves int, persistence float64) float64 {
	var total, amplitude, frequency, maxValue float64 = 0, 1, 1, 0
	for i := 0; i < octaves; i++ {
		total += g.p.Noise2D(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if maxValue == 0 {
		return 0.5
	}
	return total/maxValue + 0.5
}
