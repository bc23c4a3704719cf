package climate

import (
	"math"

	"worldsim/internal/geography"
	"worldsim/internal/grid"
)

const (
	lapseRatePerKm   = 6.5 // Celsius per 1000m
	pressureBaseHpa  = 1013
	pressureTempCoef = 0.12
	windPressureCoef = 0.01
	evapWaterCoef    = 0.2
	evapLandCoef     = 0.05
	condWindCoef     = 0.05
)

// Update runs the three fused passes in the contracted order: temperature
// + pressure, wind (reads this-turn pressure only), rainfall (reads
// this-turn temperature and wind only). geo is a read-only shared borrow
// for elevation and the water mask; Update never mutates it.
//
// A nil State or geo is a no-op.
func Update(c *State, geo *geography.State) {
	if c == nil || geo == nil {
		return
	}

	temperatureAndPressure(c, geo)
	wind(c)
	rainfall(c, geo)
}

func temperatureAndPressure(c *State, geo *geography.State) {
	for y := 0; y < grid.Height; y++ {
		lat := float32(2 * math.Abs(float64(y)/float64(grid.Height-1)-0.5))
		base := (1 - lat) * grid.MaxTemperatureC

		for x := 0; x < grid.Width; x++ {
			idx := grid.Index(x, y)
			elev := geo.Elevation[idx]
			temp := base - (elev/1000)*lapseRatePerKm
			c.Temperature[idx] = temp
			c.Pressure[idx] = pressureBaseHpa - temp*pressureTempCoef
		}
	}
}

func wind(c *State) {
	for i := range c.WindX {
		c.WindX[i] = 0
		c.WindY[i] = 0
	}

	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			idx := grid.Index(x, y)
			pxp := c.Pressure[grid.Index(x+1, y)]
			pxm := c.Pressure[grid.Index(x-1, y)]
			pyp := c.Pressure[grid.Index(x, y+1)]
			pym := c.Pressure[grid.Index(x, y-1)]

			c.WindX[idx] = -(pxp - pxm) / 2 * windPressureCoef
			c.WindY[idx] = -(pyp - pym) / 2 * windPressureCoef
		}
	}
}

func rainfall(c *State, geo *geography.State) {
	for i := range c.Rainfall {
		var evapCoef float32 = evapLandCoef
		if geo.Water[i] != 0 {
			evapCoef = evapWaterCoef
		}
		evap := evapCoef * c.Temperature[i] / grid.MaxTemperatureC

		windMag := float32(math.Hypot(float64(c.WindX[i]), float64(c.WindY[i])))
		cond := windMag * condWindCoef

		r := evap - cond
		if r < 0 {
			r = 0
		}
		c.Rainfall[i] = r
	}
}
