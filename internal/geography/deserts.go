package geography

const desertElevationCeilingM = 500.0

// UpdateDeserts reclassifies Desert purely from current elevation: land
// below desertElevationCeilingM is desert. Moisture is intentionally not
// consulted here — this contradicts the natural reading of "desert
// formation" but is the spec's preserved legacy behavior (spec.md §9
// Open Question 3).
//
// A nil State is a no-op.
func UpdateDeserts(s *State) {
	if s == nil {
		return
	}
	for i, e := range s.Elevation {
		if s.Water[i] == 0 && e < desertElevationCeilingM {
			s.Desert[i] = 1
		} else {
			s.Desert[i] = 0
		}
	}
}
