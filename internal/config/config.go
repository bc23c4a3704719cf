// Package config holds the construction-time parameters the legacy spec
// left implicit, following the same plain-struct-with-defaults pattern the
// rest of the corpus uses for tunable coefficients: a Default()
// constructor plus an optional JSON override, no environment variables,
// no globals.
package config

import (
	"encoding/json"
	"os"

	"worldsim/internal/grid"
	"worldsim/internal/werr"
)

// Config governs one World's construction. Width/Height are not
// configurable: invariant 6 fixes every grid at exactly
// grid.Width x grid.Height, with no reallocation ever performed. The core
// recognizes no environment variables; callers that want env-driven
// config must map it themselves before calling world.Create.
type Config struct {
	// Seed feeds every RNG stream in the simulation.
	Seed uint32 `json:"seed"`

	// MaxElevationM resolves Open Question 1 (3000-4000m range in the
	// legacy headers); held fixed once chosen.
	MaxElevationM float32 `json:"max_elevation_m"`

	// RainfallReferenceForMoisture resolves Open Question 2: the
	// rainfall value (mm/turn) that normalizes to moisture=1.0.
	RainfallReferenceForMoisture float32 `json:"rainfall_reference_for_moisture"`
}

// Default returns the documented defaults from spec.md §3 and §9.
func Default() Config {
	return Config{
		Seed:                         grid.DefaultSeed,
		MaxElevationM:                grid.MaxElevationM,
		RainfallReferenceForMoisture: 2.0,
	}
}

// LoadJSON overlays JSON-provided fields onto the defaults. Unset JSON
// fields keep their Default() value.
func LoadJSON(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, werr.Wrap(werr.CodeIO, "reading config file", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, werr.Wrap(werr.CodeInvalidArgument, "parsing config JSON", err)
	}
	return cfg, nil
}
