package export

import (
	"io"

	"worldsim/internal/grid"
	"worldsim/internal/rng"
)

const (
	reliefNoiseScale  = 0.15
	reliefOctaves     = 4
	reliefPersistence = 0.5
	reliefLandBase    = 40.0
	reliefLandSpread  = 120.0
	reliefWaterBase   = 60.0
	reliefWaterSpread = 80.0
)

// WriteReliefArt is a decorative, non-bit-exact fifth rendering: it
// blends each cell's elevation/water state with Perlin gradient noise
// (internal/rng.PerlinGenerator) to fake hillshading. It is additive to,
// and never a substitute for, the four spec-mandated views in
// WriteAllPPMs, and its output is not specified to be stable across
// library versions the way the other writers are.
//
// seed selects the noise field; callers typically pass the world's
// config seed so relief art reproduces deterministically for a given run.
func WriteReliefArt(w io.Writer, view View, seed int64) error {
	gen := rng.NewPerlinGenerator(seed)
	return writePPM(w, view, func(x, y int) rgb {
		cell := view.Cell(x, y)
		n := gen.Octave2D(float64(x)*reliefNoiseScale, float64(y)*reliefNoiseScale, reliefOctaves, reliefPersistence)

		if cell.Terrain == grid.Ocean {
			shade := reliefWaterBase + float32(n)*reliefWaterSpread
			return rgb{0, 0, clampByte(shade)}
		}

		_, maxElev := view.ElevationRange()
		if maxElev <= 0 {
			maxElev = grid.MaxElevationM
		}
		elevShade := cell.ElevationM / maxElev
		shade := reliefLandBase + (float32(n)+elevShade)*reliefLandSpread
		return rgb{clampByte(shade), clampByte(shade * 0.9), clampByte(shade * 0.6)}
	})
}
