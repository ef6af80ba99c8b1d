package formula

import (
	"math"
	"sort"
)

// Result is one evaluated entry. Value carries full precision; rounding happens
// only at the presentation boundary so ranking order never flips on a tie that
// rounding would manufacture.
type Result struct {
	Entry
	Value float64
	Rank  int
}

// Rank drops results with a non-finite or exactly-zero value, sorts the rest by
// value descending with a stable sort, and assigns dense 1-based ranks. Ties
// keep their original iteration order, the earlier entry taking the lower rank.
func Rank(results []Result) []Result {
	ranked := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Value == 0 || math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			continue
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}
