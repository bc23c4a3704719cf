// Package export is the read-only rendering boundary: the PPM writers
// here touch nothing but the accessors a View exposes, matching spec.md
// §4.9's contract that rendering back-ends consume only width/height/
// cell/faction/ownership/temperature_range/elevation_range and never
// reach into subsystem state directly.
package export

import (
	"worldsim/internal/grid"
	"worldsim/internal/politics"
)

// View is the accessor surface a World exposes to renderers. Every method
// must be O(1) and must not mutate state; *world.World satisfies this
// interface without export importing the world package, so there is no
// import cycle between orchestrator and renderer.
type View interface {
	Width() int
	Height() int
	Cell(x, y int) grid.Cell
	Faction(i int) (politics.Faction, bool)
	Ownership(x, y int) int32
	TemperatureRange() (min, max float32)
	ElevationRange() (min, max float32)
}
