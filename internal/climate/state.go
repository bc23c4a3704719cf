// Package climate derives temperature, pressure, wind, and rainfall from
// geography each turn. All grids are flat, fixed-size []float32 indexed
// by grid.Index.
package climate

import "worldsim/internal/grid"

// State holds the climate subsystem's grids.
type State struct {
	Temperature []float32 // Celsius
	Pressure    []float32 // hPa
	WindX       []float32
	WindY       []float32
	Rainfall    []float32 // mm/turn, >= 0
}

// New allocates a zero-initialized climate state, with Pressure defaulted
// to the documented 1013 hPa baseline.
func New() *State {
	n := grid.Width * grid.Height
	s := &State{
		Temperature: make([]float32, n),
		Pressure:    make([]float32, n),
		WindX:       make([]float32, n),
		WindY:       make([]float32, n),
		Rainfall:    make([]float32, n),
	}
	for i := range s.Pressure {
		s.Pressure[i] = 1013
	}
	return s
}
