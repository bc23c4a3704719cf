package politics

// Tick regenerates every formed faction's title and display name from its
// current government state. Government traits do not change over time:
// Tick does not alter them, and dt only gates the call (dt == 0 is a
// no-op).
func Tick(s *State, dt int) {
	if s == nil || dt == 0 {
		return
	}
	for i := range s.Factions {
		f := &s.Factions[i]
		if !f.Government.Formed {
			continue
		}
		f.Government.Title = governanceTitle(f.Government)
		f.Name = displayName(f.Government.Title)
	}
}
