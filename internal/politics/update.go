package politics

import (
	"worldsim/internal/climate"
	"worldsim/internal/geography"
	"worldsim/internal/grid"
	"worldsim/internal/worldlog"
)

const (
	carveHashPrimeX = 73856093
	carveHashPrimeY = 19349663

	harshnessHotTempC    = 25
	harshnessColdTempC   = -5
	harshnessElevationM  = 1500
	harshnessThreshold   = 0.4
	fertilityRainMin     = 5
	fertilityRainMax     = 15
	fertilityTempMin     = 10
	fertilityTempMax     = 25
	fertilityThreshold   = 0.5

	harshCentralizationBase = 0.8
	harshCentralizationCoef = 0.1
	harshDemocracyBase      = 0.2
	harshDemocracyCoef      = 0.1
	harshMilitaryBonus      = 0.3
	harshMilitaryStrength   = 20

	fertileCentralization = 0.3
	fertileDemocracyBase  = 0.7
	fertileDemocracyCoef  = 0.1
	fertileEfficiencyBonus = 0.3

	neutralCentralization = 0.5
	neutralDemocracy      = 0.5
)

// Update detects the one-time ownership carve on the first call, then
// forms a government for every faction that owns land and has none yet.
// geo and clim are read-only shared borrows for this phase.
//
// A nil State, geo, or clim is a no-op.
func Update(s *State, geo *geography.State, clim *climate.State, log *worldlog.Logger) {
	if s == nil || geo == nil || clim == nil {
		return
	}

	if s.Ownership[grid.Index(0, 0)] == -1 {
		carve(s, geo)
	}
	reclaimSubmergedLand(s, geo)

	stats := environmentStats(s, geo, clim)

	for i := range s.Factions {
		f := &s.Factions[i]
		st := stats[i]
		if st.landCells == 0 || f.Government.Formed {
			continue
		}
		formGovernment(f, st, log)
	}
}

func carve(s *State, geo *geography.State) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			idx := grid.Index(x, y)
			if geo.Water[idx] != 0 {
				s.Ownership[idx] = -1
				continue
			}
			h := uint32(x)*carveHashPrimeX ^ uint32(y)*carveHashPrimeY
			s.Ownership[idx] = int32(h % grid.MaxFactions)
		}
	}
}

// reclaimSubmergedLand enforces the water-implies-unowned invariant every
// turn, not just at the initial carve: erosion can push a once-dry cell
// under SeaLevelM later in the run, and that cell must lose its owner the
// moment it does.
func reclaimSubmergedLand(s *State, geo *geography.State) {
	for idx, owner := range s.Ownership {
		if owner != -1 && geo.Water[idx] != 0 {
			s.Ownership[idx] = -1
		}
	}
}

type factionStats struct {
	landCells  int
	sumTemp    float32
	sumRain    float32
	sumElev    float32
}

func (st factionStats) meanTemp() float32 {
	if st.landCells == 0 {
		return 0
	}
	return st.sumTemp / float32(st.landCells)
}

func (st factionStats) meanRain() float32 {
	if st.landCells == 0 {
		return 0
	}
	return st.sumRain / float32(st.landCells)
}

func (st factionStats) meanElev() float32 {
	if st.landCells == 0 {
		return 0
	}
	return st.sumElev / float32(st.landCells)
}

func environmentStats(s *State, geo *geography.State, clim *climate.State) [grid.MaxFactions]factionStats {
	var stats [grid.MaxFactions]factionStats
	for idx, owner := range s.Ownership {
		if owner < 0 || int(owner) >= grid.MaxFactions {
			continue
		}
		st := &stats[owner]
		st.landCells++
		st.sumTemp += clim.Temperature[idx]
		st.sumRain += clim.Rainfall[idx]
		st.sumElev += geo.Elevation[idx]
	}
	return stats
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func formGovernment(f *Faction, st factionStats, log *worldlog.Logger) {
	temp, rain, elev := st.meanTemp(), st.meanRain(), st.meanElev()

	harshness := 0.5*boolToFloat(temp > harshnessHotTempC) +
		0.6*boolToFloat(temp < harshnessColdTempC) +
		0.3*boolToFloat(elev > harshnessElevationM)

	fertility := 0.4*boolToFloat(rain > fertilityRainMin && rain < fertilityRainMax) +
		0.4*boolToFloat(temp > fertilityTempMin && temp < fertilityTempMax)

	gov := Government{Formed: true}

	switch {
	case harshness > harshnessThreshold:
		gov.Centralization = harshCentralizationBase + harshCentralizationCoef*harshness
		gov.Democracy = harshDemocracyBase - harshDemocracyCoef*harshness
		gov.MilitaryBonus = harshMilitaryBonus
		f.MilitaryStrength += harshMilitaryStrength
	case fertility > fertilityThreshold:
		gov.Centralization = fertileCentralization
		gov.Democracy = fertileDemocracyBase + fertileDemocracyCoef*fertility
		gov.Efficiency = fertileEfficiencyBonus
	default:
		gov.Centralization = neutralCentralization
		gov.Democracy = neutralDemocracy
	}

	gov.Centralization = clamp01(gov.Centralization)
	gov.Democracy = clamp01(gov.Democracy)
	gov.Title = governanceTitle(gov)

	f.Government = gov
	f.Name = displayName(gov.Title)

	log.Government(f.ID, gov.Title, harshness, fertility)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
