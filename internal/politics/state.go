// Package politics owns per-cell faction ownership, the faction table,
// and the symmetric diplomacy matrix. Faction government traits are
// synthesized deterministically from each faction's owned environment,
// in the spirit of the pack's procedural faction generators but driven
// by this spec's harshness/fertility formulas rather than theirs.
package politics

import "worldsim/internal/grid"

// Government holds a faction's synthesized political traits.
type Government struct {
	Formed         bool
	Centralization float32 // [0,1]
	Democracy      float32 // [0,1]
	Efficiency     float32 // bonus, >= 0
	MilitaryBonus  float32 // bonus, >= 0
	Title          string
}

// Faction is one of at most grid.MaxFactions political entities.
type Faction struct {
	ID               int
	Name             string
	ColorRGB         [3]uint8
	Gold             int
	MilitaryStrength int
	Government       Government
}

// State is the politics subsystem: the faction table, per-cell ownership,
// and the symmetric relationship matrix.
type State struct {
	Factions  [grid.MaxFactions]Faction
	Ownership []int32 // -1 = unowned; grid.Index(x,y)
	Diplomacy [grid.MaxFactions][grid.MaxFactions]grid.RelationshipType
}

// New allocates an empty politics state. Call Initialize before use.
func New() *State {
	return &State{
		Ownership: make([]int32, grid.Width*grid.Height),
	}
}
