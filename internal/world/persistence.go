package world

import (
	"worldsim/internal/config"
	"worldsim/internal/events"
	"worldsim/internal/grid"
	"worldsim/internal/politics"
)

// Snapshot is a deep, self-contained copy of a World's state. It holds no
// reference back into the World it was taken from, so the World may
// continue to Update after a Snapshot is taken without the snapshot
// changing underneath the caller. There is no on-disk format: this is an
// in-memory save point (e.g. for "undo one turn" or branching exploration),
// not a durable persistence layer.
type Snapshot struct {
	cfg  config.Config
	turn int
	seed uint32

	cells []grid.Cell

	geoElevation      []float32
	geoWater          []uint8
	geoDesert         []uint8
	geoRiverVolume    []float32
	geoTectonicStress []float32

	climTemperature []float32
	climPressure    []float32
	climWindX       []float32
	climWindY       []float32
	climRainfall    []float32

	events            [grid.EventPoolCapacity]events.Event
	eventCount        int
	droppedEventCount int

	factions  [grid.MaxFactions]politics.Faction
	ownership []int32
	diplomacy [grid.MaxFactions][grid.MaxFactions]grid.RelationshipType
}

// Snapshot captures the full, current World state. A nil World returns a
// zero Snapshot.
func (w *World) Snapshot() Snapshot {
	if w == nil {
		return Snapshot{}
	}

	snap := Snapshot{
		cfg:  w.cfg,
		turn: w.turn,
		seed: w.rnd.Seed(),

		cells: append([]grid.Cell(nil), w.cells...),

		geoElevation:      append([]float32(nil), w.geo.Elevation...),
		geoWater:          append([]uint8(nil), w.geo.Water...),
		geoDesert:         append([]uint8(nil), w.geo.Desert...),
		geoRiverVolume:    append([]float32(nil), w.geo.RiverVolume...),
		geoTectonicStress: append([]float32(nil), w.geo.TectonicStress...),

		climTemperature: append([]float32(nil), w.clim.Temperature...),
		climPressure:    append([]float32(nil), w.clim.Pressure...),
		climWindX:       append([]float32(nil), w.clim.WindX...),
		climWindY:       append([]float32(nil), w.clim.WindY...),
		climRainfall:    append([]float32(nil), w.clim.Rainfall...),

		eventCount:        w.ev.Count,
		droppedEventCount: w.ev.DroppedEventCount,

		factions:  w.pol.Factions,
		ownership: append([]int32(nil), w.pol.Ownership...),
		diplomacy: w.pol.Diplomacy,
	}
	snap.events = w.ev.Events

	return snap
}

// Restore overwrites the World's state in place with a previously taken
// Snapshot. The World must have been created with Create first; Restore
// does not allocate a new World.
func (w *World) Restore(snap Snapshot) {
	if w == nil {
		return
	}

	w.cfg = snap.cfg
	w.turn = snap.turn
	w.rnd.SetSeed(snap.seed)

	copy(w.cells, snap.cells)

	copy(w.geo.Elevation, snap.geoElevation)
	copy(w.geo.Water, snap.geoWater)
	copy(w.geo.Desert, snap.geoDesert)
	copy(w.geo.RiverVolume, snap.geoRiverVolume)
	copy(w.geo.TectonicStress, snap.geoTectonicStress)

	copy(w.clim.Temperature, snap.climTemperature)
	copy(w.clim.Pressure, snap.climPressure)
	copy(w.clim.WindX, snap.climWindX)
	copy(w.clim.WindY, snap.climWindY)
	copy(w.clim.Rainfall, snap.climRainfall)

	w.ev.Events = snap.events
	w.ev.Count = snap.eventCount
	w.ev.DroppedEventCount = snap.droppedEventCount

	w.pol.Factions = snap.factions
	copy(w.pol.Ownership, snap.ownership)
	w.pol.Diplomacy = snap.diplomacy
}
