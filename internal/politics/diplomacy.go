package politics

import (
	"worldsim/internal/grid"
	"worldsim/internal/rng"
	"worldsim/internal/worldlog"
)

const (
	worsenChance = 0.05
	improveChance = 0.05
)

// GetRelationship returns the relationship between i and j. Out-of-range
// ids yield Neutral without failing, per spec.md §4.7.
func GetRelationship(s *State, i, j int) grid.RelationshipType {
	if s == nil || !validFaction(i) || !validFaction(j) {
		return grid.Neutral
	}
	return s.Diplomacy[i][j]
}

// SetRelationship sets the relationship symmetrically. Out-of-range ids
// are a no-op.
func SetRelationship(s *State, i, j int, rel grid.RelationshipType) {
	if s == nil || !validFaction(i) || !validFaction(j) {
		return
	}
	s.Diplomacy[i][j] = rel
	s.Diplomacy[j][i] = rel
}

func validFaction(i int) bool {
	return i >= 0 && i < grid.MaxFactions
}

// UpdateDiplomacy is the only non-deterministic-per-turn mutation in
// politics: for every unordered pair it may worsen by one level (unless
// already at War) with worsenChance, or improve by one level (unless
// already at Ally) with improveChance, always through the core RNG
// stream — never math/rand's global source.
//
// A nil State or RNG stream is a no-op.
func UpdateDiplomacy(s *State, r *rng.State, log *worldlog.Logger) {
	if s == nil || r == nil {
		return
	}

	for i := 0; i < grid.MaxFactions; i++ {
		for j := i + 1; j < grid.MaxFactions; j++ {
			cur := s.Diplomacy[i][j]

			if cur != grid.War && r.Float() < worsenChance {
				next := cur.Worsen()
				SetRelationship(s, i, j, next)
				log.Diplomacy(i, j, cur.String(), next.String())
				continue
			}

			if cur != grid.Ally && r.Float() < improveChance {
				next := cur.Improve()
				SetRelationship(s, i, j, next)
				log.Diplomacy(i, j, cur.String(), next.String())
			}
		}
	}
}
