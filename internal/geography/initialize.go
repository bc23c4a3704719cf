package geography

import (
	"worldsim/internal/grid"
	"worldsim/internal/rng"
)

const (
	elevationOctaves  = 4
	elevationBaseFreq = 0.05
)

// Initialize fills Elevation with 4-octave value noise (base frequency
// 0.05, amplitude halving, frequency doubling each octave), derives Water
// from it, and resets Desert/RiverVolume to zero. rng.ValueNoiseOctaves
// returns a sample in [0,1]; re-centering around 0.5 before scaling by
// MaxElevationM gives both below- and above-sea-level terrain from one
// noise field, matching SeaLevelM=0 splitting ocean from land.
//
// A nil State or RNG stream is a no-op.
func Initialize(s *State, r *rng.State, maxElevationM float32) {
	if s == nil || r == nil {
		return
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			n := rng.ValueNoiseOctaves(r, x, y, elevationOctaves, elevationBaseFreq)
			elev := (n*2 - 1) * maxElevationM
			idx := grid.Index(x, y)
			s.Elevation[idx] = elev
			s.Desert[idx] = 0
			s.RiverVolume[idx] = 0
		}
	}
	recomputeWater(s)
}
