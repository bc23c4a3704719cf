package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldsim/internal/config"
	"worldsim/internal/grid"
	"worldsim/internal/worldlog"
)

func TestCreateThenInitializeProducesASyncedWorld(t *testing.T) {
	w, err := Create(config.Default(), worldlog.Discard())
	require.NoError(t, err)
	require.NotNil(t, w)

	w.Initialize()

	assert.Equal(t, grid.Width, w.Width())
	assert.Equal(t, grid.Height, w.Height())

	sawLand, sawWater := false, false
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := w.Cell(x, y)
			if c.Terrain == grid.Ocean {
				sawWater = true
			} else {
				sawLand = true
			}
		}
	}
	assert.True(t, sawWater, "expected at least one ocean cell after initialize")
	assert.True(t, sawLand, "expected at least one land cell after initialize")
}

func TestWaterCellsAreAlwaysUnowned(t *testing.T) {
	w, err := Create(config.Default(), worldlog.Discard())
	require.NoError(t, err)
	w.Initialize()

	for i := 0; i < 5; i++ {
		w.Update()
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := w.Cell(x, y)
			if c.Terrain == grid.Ocean {
				assert.Equal(t, int32(-1), c.PoliticalOwner, "ocean cell (%d,%d) is owned", x, y)
			}
		}
	}
}

func TestEventPoolNeverExceedsCapacity(t *testing.T) {
	w, err := Create(config.Default(), worldlog.Discard())
	require.NoError(t, err)
	w.Initialize()

	for i := 0; i < 20; i++ {
		w.Update()
	}

	assert.LessOrEqual(t, w.ev.Count, grid.EventPoolCapacity)
}

func TestUpdateIsDeterministicForAFixedSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 777

	a, err := Create(cfg, worldlog.Discard())
	require.NoError(t, err)
	b, err := Create(cfg, worldlog.Discard())
	require.NoError(t, err)

	a.Initialize()
	b.Initialize()
	for i := 0; i < 5; i++ {
		a.Update()
		b.Update()
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			require.Equal(t, a.Cell(x, y), b.Cell(x, y), "divergence at (%d,%d)", x, y)
		}
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	w, err := Create(config.Default(), worldlog.Discard())
	require.NoError(t, err)
	w.Initialize()
	w.Update()
	w.Update()

	snap := w.Snapshot()

	for i := 0; i < 5; i++ {
		w.Update()
	}
	advanced := w.Snapshot()
	assert.NotEqual(t, snap.turn, advanced.turn)

	w.Restore(snap)
	restored := w.Snapshot()

	assert.Equal(t, snap.turn, restored.turn)
	assert.Equal(t, snap.cells, restored.cells)
	assert.Equal(t, snap.ownership, restored.ownership)
}

func TestCreateNeverReturnsAPartialWorldOnSuccess(t *testing.T) {
	w, err := Create(config.Default(), nil)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, 0, w.Turn())
}
