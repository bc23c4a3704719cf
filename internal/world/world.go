// Package world is the orchestrator: it owns every subsystem's state
// exclusively, runs the one-time Initialize and the repeatable per-turn
// Update pipeline in the order spec'd, and exposes the read-only derived
// Cell view other packages (export, an external "civ" layer) consume.
//
// The World is created once, initialized once, updated N times, and
// discarded — there is no partial teardown and no subsystem retains a
// reference between phases.
package world

import (
	"worldsim/internal/biomes"
	"worldsim/internal/climate"
	"worldsim/internal/config"
	"worldsim/internal/events"
	"worldsim/internal/geography"
	"worldsim/internal/grid"
	"worldsim/internal/politics"
	"worldsim/internal/rng"
	"worldsim/internal/werr"
	"worldsim/internal/worldlog"
)

// World is the sole shared resource; external collaborators may hold a
// read-only borrow between turns but must release it before the next
// Update call (concurrent reads during an in-flight Update are
// undefined, matching spec.md §5).
type World struct {
	cfg config.Config

	cells []grid.Cell
	geo   *geography.State
	clim  *climate.State
	ev    *events.State
	pol   *politics.State
	rnd   *rng.State
	log   *worldlog.Logger

	turn int

	// elevationMin/Max and temperatureMin/Max cache the grid extremes so
	// ElevationRange/TemperatureRange stay O(1); maintained by sync().
	elevationMin, elevationMax     float32
	temperatureMin, temperatureMax float32
}

// Create allocates a World at construction defaults and initializes its
// subsystems. It is the only lifecycle entry point (besides export) that
// can fail: allocation panics are recovered and reported as a typed
// out-of-memory error rather than propagated as a crash.
func Create(cfg config.Config, log *worldlog.Logger) (w *World, err error) {
	defer func() {
		if r := recover(); r != nil {
			w = nil
			err = werr.New(werr.CodeOutOfMemory, "allocating world state")
		}
	}()

	if log == nil {
		log = worldlog.Discard()
	}

	n := grid.Width * grid.Height
	cells := make([]grid.Cell, n)
	for i := range cells {
		cells[i] = grid.DefaultCell()
	}

	w = &World{
		cfg:   cfg,
		cells: cells,
		geo:   geography.New(),
		clim:  climate.New(),
		ev:    events.New(),
		pol:   politics.New(),
		rnd:   rng.New(cfg.Seed),
		log:   log,
	}

	politics.Initialize(w.pol)

	return w, nil
}

// Initialize runs the one-time setup pipeline: elevation generation,
// erosion-derived deserts, initial climate, initial rivers, initial
// biomes, and the first-call faction carve + government formation. A
// sync pass refreshes Cell immediately afterward so the read-only view
// is never stale between Create and the first Update.
func (w *World) Initialize() {
	if w == nil {
		return
	}

	geography.Initialize(w.geo, w.rnd, w.cfg.MaxElevationM)
	geography.ApplyErosion(w.geo)
	geography.UpdateDeserts(w.geo)
	climate.Update(w.clim, w.geo)
	geography.UpdateRivers(w.geo, w.clim.Rainfall, w.rnd)

	w.applyBiomes()

	politics.Update(w.pol, w.geo, w.clim, w.log)

	w.sync()
}

// Update advances the world by one turn, running every phase to
// completion in the contracted order: erosion, desert reclassification,
// climate, rivers, biomes, events, politics (assign + evolve), then the
// grid-to-cell sync pass. Update is infallible once Create succeeded.
func (w *World) Update() {
	if w == nil {
		return
	}

	geography.ApplyErosion(w.geo)
	geography.UpdateDeserts(w.geo)
	climate.Update(w.clim, w.geo)
	geography.UpdateRivers(w.geo, w.clim.Rainfall, w.rnd)

	w.applyBiomes()

	events.Tick(w.ev, w.geo, w.rnd, w.log, w.turn+1)

	politics.Update(w.pol, w.geo, w.clim, w.log)
	politics.Tick(w.pol, 1)
	politics.UpdateDiplomacy(w.pol, w.rnd, w.log)

	w.sync()

	w.turn++
	w.log.Turn(w.turn)
}

// applyBiomes writes the rich per-cell biome classification directly
// into Cell.Terrain/Moisture. This is intentionally the first of the two
// terrain writers described in spec.md §9: sync() below overwrites
// Terrain again with the coarse physical rule, so biome classification
// only has observable effect through Cell.Moisture (and through the
// biome rendering in internal/export, which re-derives it from the
// Cell's elevation, temperature and moisture).
func (w *World) applyBiomes() {
	for idx := range w.cells {
		moisture := biomes.MoistureFromRainfall(w.clim.Rainfall[idx], w.cfg.RainfallReferenceForMoisture)
		water := w.geo.Water[idx] != 0
		w.cells[idx].Terrain = biomes.Classify(water, w.geo.Elevation[idx], w.clim.Temperature[idx], moisture)
		w.cells[idx].Moisture = moisture
	}
}

const (
	syncMountainElevationM = 2000.0
	syncHillElevationM     = 1000.0
)

// sync copies authoritative subsystem values back into Cell, overrides
// Terrain with the coarse physical rule (the second, and post-turn-
// authoritative, terrain writer), and refreshes the cached elevation/
// temperature extremes that ElevationRange/TemperatureRange serve in O(1).
func (w *World) sync() {
	for idx := range w.cells {
		c := &w.cells[idx]
		c.ElevationM = w.geo.Elevation[idx]
		c.TemperatureC = w.clim.Temperature[idx]
		c.PressureHpa = w.clim.Pressure[idx]
		c.Wind = grid.Wind{X: w.clim.WindX[idx], Y: w.clim.WindY[idx]}
		c.TectonicStress = w.geo.TectonicStress[idx]
		c.RiverVolume = w.geo.RiverVolume[idx]
		c.PoliticalOwner = w.pol.Ownership[idx]

		switch {
		case w.geo.Water[idx] != 0:
			c.Terrain = grid.Ocean
		case w.geo.Desert[idx] != 0:
			c.Terrain = grid.Desert
		case c.ElevationM > syncMountainElevationM:
			c.Terrain = grid.Mountains
		case c.ElevationM > syncHillElevationM:
			c.Terrain = grid.Hills
		default:
			c.Terrain = grid.Plains
		}

		if idx == 0 {
			w.elevationMin, w.elevationMax = c.ElevationM, c.ElevationM
			w.temperatureMin, w.temperatureMax = c.TemperatureC, c.TemperatureC
			continue
		}
		if c.ElevationM < w.elevationMin {
			w.elevationMin = c.ElevationM
		}
		if c.ElevationM > w.elevationMax {
			w.elevationMax = c.ElevationM
		}
		if c.TemperatureC < w.temperatureMin {
			w.temperatureMin = c.TemperatureC
		}
		if c.TemperatureC > w.temperatureMax {
			w.temperatureMax = c.TemperatureC
		}
	}
}
