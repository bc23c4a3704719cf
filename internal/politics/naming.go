package politics

// governanceTitle derives a government's display title from its traits,
// in the spirit of the pack's trait-to-descriptor naming generators
// (threshold switches over scalar traits, parts joined into one name).
func governanceTitle(g Government) string {
	switch {
	case g.Centralization > 0.7 && g.Democracy < 0.3:
		return "Dominion"
	case g.Centralization > 0.7:
		return "Autocracy"
	case g.Democracy > 0.7 && g.Efficiency > 0:
		return "Commonwealth"
	case g.Democracy > 0.7:
		return "Republic"
	case g.MilitaryBonus > 0:
		return "Garrison State"
	case g.Efficiency > 0:
		return "Collective"
	default:
		return "Council"
	}
}

func displayName(title string) string {
	return "The " + title
}
