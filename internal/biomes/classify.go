// Package biomes is a pure, stateless classifier: cell terrain from
// elevation, temperature, moisture, and water. It has no subsystem state
// of its own and never mutates its inputs.
package biomes

import "worldsim/internal/grid"

const (
	mountainElevationM = 2000.0
	hillElevationM      = 1000.0
	desertMoistureMax   = 0.2
	desertTempMinC      = 20.0
	snowTempMaxC        = -10.0
	tundraTempMaxC      = 5.0
	forestTempMinC      = 15.0
	forestMoistureMin   = 0.5
)

// Classify is a total function: for every (water, elevation, temperature,
// moisture) it returns exactly one TerrainType, evaluated in the table
// order from spec.md §4.5 (first match wins).
func Classify(water bool, elevationM, temperatureC, moisture float32) grid.TerrainType {
	switch {
	case water:
		return grid.Ocean
	case elevationM > mountainElevationM:
		return grid.Mountains
	case elevationM > hillElevationM:
		return grid.Hills
	case moisture < desertMoistureMax && temperatureC > desertTempMinC:
		return grid.Desert
	case temperatureC < snowTempMaxC:
		return grid.Snow
	case temperatureC < tundraTempMaxC:
		return grid.Tundra
	case temperatureC > forestTempMinC && moisture > forestMoistureMin:
		return grid.Forest
	default:
		return grid.Plains
	}
}

// MoistureFromRainfall normalizes rainfall (mm/turn) into the [0,1]
// moisture channel biome classification expects, resolving spec.md §9
// Open Question 2. rRef is the rainfall value that saturates to 1.0.
func MoistureFromRainfall(rainfallMm, rRef float32) float32 {
	if rRef <= 0 {
		return 0
	}
	m := rainfallMm / rRef
	if m > 1 {
		return 1
	}
	if m < 0 {
		return 0
	}
	return m
}
