package world

import (
	"worldsim/internal/grid"
	"worldsim/internal/politics"
)

// Width returns the fixed grid width.
func (w *World) Width() int { return grid.Width }

// Height returns the fixed grid height.
func (w *World) Height() int { return grid.Height }

// Cell returns the synced view of (x,y). Out-of-bounds coordinates return
// the zero Cell.
func (w *World) Cell(x, y int) grid.Cell {
	if w == nil || !grid.InBounds(x, y) {
		return grid.Cell{}
	}
	return w.cells[grid.Index(x, y)]
}

// Faction returns faction i and whether i is in range.
func (w *World) Faction(i int) (politics.Faction, bool) {
	if w == nil || i < 0 || i >= grid.MaxFactions {
		return politics.Faction{}, false
	}
	return w.pol.Factions[i], true
}

// Ownership returns the owning faction id at (x,y), or -1 if unowned or
// out of bounds.
func (w *World) Ownership(x, y int) int32 {
	if w == nil || !grid.InBounds(x, y) {
		return -1
	}
	return w.pol.Ownership[grid.Index(x, y)]
}

// Relationship returns the diplomatic relationship between factions i and j.
func (w *World) Relationship(i, j int) grid.RelationshipType {
	if w == nil {
		return grid.Neutral
	}
	return politics.GetRelationship(w.pol, i, j)
}

// DroppedEventCount is the observability counter for events that could
// not be spawned because the fixed-capacity pool was full.
func (w *World) DroppedEventCount() int {
	if w == nil {
		return 0
	}
	return w.ev.DroppedEventCount
}

// Turn returns the number of completed Update calls.
func (w *World) Turn() int {
	if w == nil {
		return 0
	}
	return w.turn
}

// ElevationRange returns the min and max elevation across the grid, as of
// the last sync pass. O(1): the range is maintained incrementally by
// sync(), not rescanned per call.
func (w *World) ElevationRange() (min, max float32) {
	if w == nil {
		return 0, 0
	}
	return w.elevationMin, w.elevationMax
}

// TemperatureRange returns the min and max temperature across the grid,
// as of the last sync pass. O(1) for the same reason as ElevationRange.
func (w *World) TemperatureRange() (min, max float32) {
	if w == nil {
		return 0, 0
	}
	return w.temperatureMin, w.temperatureMax
}
