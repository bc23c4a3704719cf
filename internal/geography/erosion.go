package geography

import "worldsim/internal/grid"

const erosionFactor = 0.1

// ApplyErosion moves every interior cell's elevation toward the mean of
// its 8 neighbors by erosionFactor, reading from a full snapshot of the
// previous elevation so the pass never observes its own writes (read and
// write buffers must never alias, or results drift turn to turn). Border
// cells are left unchanged this turn. Water is recomputed from the new
// elevation afterward.
//
// A nil State is a no-op.
func ApplyErosion(s *State) {
	if s == nil {
		return
	}

	copy(s.scratch, s.Elevation)

	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			var sum float32
			for _, off := range grid.NeighborOffsets {
				nx, ny := x+off[0], y+off[1]
				sum += s.scratch[grid.Index(nx, ny)]
			}
			mean := sum / 8
			e := s.scratch[grid.Index(x, y)]
			s.Elevation[grid.Index(x, y)] = e + erosionFactor*(mean-e)
		}
	}

	recomputeWater(s)
}
