package formula

import "StatLabApi/internal/data"

// MinGamesForPercentages is the smallest sample a season needs before
// percentage-based formulas produce a meaningful ranking entry.
const MinGamesForPercentages = 10

// UsesPercentage reports whether the resolved formula references any
// percentage-type stat token. The check is purely textual.
func UsesPercentage(resolved string) bool {
	for _, t := range percentageTokens {
		if tokenPatterns[t].MatchString(resolved) {
			return true
		}
	}
	return false
}

// Eligible applies the small-sample rule: a record with too few games played is
// excluded whenever the formula leans on a percentage stat. Formulas without
// percentage tokens are never filtered.
func Eligible(resolved string, rec *data.SeasonRecord) bool {
	if !UsesPercentage(resolved) {
		return true
	}
	return rec.GamesPlayed >= MinGamesForPercentages
}
