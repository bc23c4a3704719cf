// Package geography owns elevation, the derived water mask, the desert
// mask, and river volume. Every grid is a flat, fixed-size []float32 or
// []uint8 indexed by grid.Index — no subsystem here ever reallocates.
package geography

import "worldsim/internal/grid"

// State holds the geography subsystem's grids. A State is owned
// exclusively by the orchestrator and lent to geography functions for the
// duration of one phase.
type State struct {
	Elevation   []float32 // meters
	Water       []uint8   // 1 iff Elevation <= SeaLevelM
	Desert      []uint8
	RiverVolume []float32

	// TectonicStress is carried here since it has no dedicated producer
	// in this spec (no tectonic-plate simulation is in scope): it starts
	// at 0 and is only ever reset to 0 by events.Tick on an earthquake
	// spawn. Its home is geography because, conceptually, stress is a
	// property of the crust.
	TectonicStress []float32

	// scratch is a reused erosion read-buffer, owned here so no per-turn
	// allocation is needed (see ApplyErosion).
	scratch []float32
}

// New allocates a zero-initialized geography state sized for the fixed
// grid. Water defaults to 1 since Elevation starts at 0 <= SeaLevelM.
func New() *State {
	n := grid.Width * grid.Height
	s := &State{
		Elevation:      make([]float32, n),
		Water:          make([]uint8, n),
		Desert:         make([]uint8, n),
		RiverVolume:    make([]float32, n),
		TectonicStress: make([]float32, n),
		scratch:        make([]float32, n),
	}
	for i := range s.Water {
		s.Water[i] = 1
	}
	return s
}

// IsWater reports whether (x,y) is a water cell.
func (s *State) IsWater(x, y int) bool {
	if s == nil || !grid.InBounds(x, y) {
		return false
	}
	return s.Water[grid.Index(x, y)] != 0
}

// ElevationAt returns the elevation at (x,y), or 0 if out of bounds.
func (s *State) ElevationAt(x, y int) float32 {
	if s == nil || !grid.InBounds(x, y) {
		return 0
	}
	return s.Elevation[grid.Index(x, y)]
}

func recomputeWater(s *State) {
	for i, e := range s.Elevation {
		if e <= grid.SeaLevelM {
			s.Water[i] = 1
		} else {
			s.Water[i] = 0
		}
	}
}
