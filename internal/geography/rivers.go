package geography

import (
	"worldsim/internal/grid"
	"worldsim/internal/rng"
)

const (
	rainfallRejectThreshold = 0.1
	riverVolumeIncrement    = 1.0
)

// UpdateRivers zeros RiverVolume then traces 2*Width*Height droplets.
// rainfall is this-turn's climate rainfall grid (read-only, row-major,
// same indexing as geography's own grids) — passed as a plain slice
// rather than a *climate.State to avoid a geography<->climate import
// cycle (climate already depends on geography for elevation).
//
// Each droplet is spawned at an RNG-chosen (x,y). If the spawn cell's
// rainfall is below rainfallRejectThreshold the droplet is discarded.
// Otherwise the droplet repeatedly adds riverVolumeIncrement to its
// current cell, stops on water, and otherwise steps to the strictly
// lowest of its 8 neighbors (grid.NeighborOffsets order breaks ties);
// if no neighbor is strictly lower the droplet halts at a pit.
//
// A nil State or RNG stream is a no-op.
func UpdateRivers(s *State, rainfall []float32, r *rng.State) {
	if s == nil || r == nil {
		return
	}

	for i := range s.RiverVolume {
		s.RiverVolume[i] = 0
	}

	numDroplets := 2 * grid.Width * grid.Height
	for d := 0; d < numDroplets; d++ {
		sx := int(r.Float() * float32(grid.Width))
		sy := int(r.Float() * float32(grid.Height))
		if sx >= grid.Width {
			sx = grid.Width - 1
		}
		if sy >= grid.Height {
			sy = grid.Height - 1
		}

		idx := grid.Index(sx, sy)
		if idx >= len(rainfall) || rainfall[idx] < rainfallRejectThreshold {
			continue
		}

		traceDroplet(s, rainfall, sx, sy)
	}
}

func traceDroplet(s *State, rainfall []float32, x, y int) {
	for {
		idx := grid.Index(x, y)
		s.RiverVolume[idx] += riverVolumeIncrement

		if s.Water[idx] != 0 {
			return
		}

		curElev := s.Elevation[idx]
		bestX, bestY := x, y
		found := false
		bestElev := curElev

		for _, off := range grid.NeighborOffsets {
			nx, ny := x+off[0], y+off[1]
			if !grid.InBounds(nx, ny) {
				continue
			}
			ne := s.Elevation[grid.Index(nx, ny)]
			if ne < bestElev {
				bestElev = ne
				bestX, bestY = nx, ny
				found = true
			}
		}

		if !found {
			return
		}
		x, y = bestX, bestY
	}
}
