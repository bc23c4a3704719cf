package politics

import (
	"strconv"

	"worldsim/internal/grid"
)

const (
	colorMixConstant = 2654435761
	colorBumpFloor   = 64
	colorBumpAmount  = 64
	startingGold     = 100
	startingMilitary = 50
)

// Initialize sets up the grid.MaxFactions factions with deterministic
// names/colors, a fully Neutral diplomacy matrix (Ally on the diagonal),
// and unowned (-1) ownership everywhere.
//
// A nil State is a no-op.
func Initialize(s *State) {
	if s == nil {
		return
	}

	for i := 0; i < grid.MaxFactions; i++ {
		s.Factions[i] = Faction{
			ID:               i,
			Name:             factionDefaultName(i),
			ColorRGB:         factionColor(i),
			Gold:             startingGold,
			MilitaryStrength: startingMilitary,
		}
	}

	for i := 0; i < grid.MaxFactions; i++ {
		for j := 0; j < grid.MaxFactions; j++ {
			if i == j {
				s.Diplomacy[i][j] = grid.Ally
			} else {
				s.Diplomacy[i][j] = grid.Neutral
			}
		}
	}

	for i := range s.Ownership {
		s.Ownership[i] = -1
	}
}

func factionDefaultName(i int) string {
	return "Faction_" + strconv.Itoa(i)
}

// factionColor mixes i by a large odd constant and reads back the top
// three bytes as RGB, bumping the red channel if the whole triple would
// otherwise read as near-black.
func factionColor(i int) [3]uint8 {
	h := uint32(i) * colorMixConstant
	r := uint8(h >> 24)
	g := uint8(h >> 16)
	b := uint8(h >> 8)
	if r < colorBumpFloor && g < colorBumpFloor && b < colorBumpFloor {
		r += colorBumpAmount
	}
	return [3]uint8{r, g, b}
}
