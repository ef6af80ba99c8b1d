// Package formula implements the custom-stat calculation engine: saved-formula
// resolution, stat token substitution, arithmetic evaluation, scope iteration,
// sample-size eligibility and ranking. The engine is pure; all I/O (player
// snapshots, the saved-formula registry) happens at the boundary before a
// calculation starts.
package formula

import "StatLabApi/internal/data"

// Outcome carries the ranked results of one calculation plus how many records
// were skipped because their evaluation failed.
type Outcome struct {
	Results []Result
	Skipped int
}

// Calculate runs the full pipeline for one request: resolve saved-formula
// references, expand players into scope entries, filter ineligible records,
// evaluate the rest and rank the finite non-zero values.
//
// Per-record evaluation failures only exclude that record. Structural failures
// abort the whole calculation: a reference cycle (*CycleError), a formula with
// no recognized stat tokens (*NoValidStatsError) or an empty player dataset
// (ErrEmptyDataset).
func Calculate(raw string, scope Scope, players []*data.Player,
	registry []NamedFormula) (*Outcome, error) {
	resolved, err := Resolve(raw, registry)
	if err != nil {
		return nil, err
	}

	if !ContainsStatToken(resolved) {
		return nil, &NoValidStatsError{Formula: raw}
	}

	if len(players) == 0 {
		return nil, ErrEmptyDataset
	}

	outcome := &Outcome{}
	results := make([]Result, 0, len(players))

	for _, entry := range scope.Iterate(players) {
		if !Eligible(resolved, entry.Record) {
			continue
		}

		value, err := Evaluate(resolved, entry.Record)
		if err != nil {
			outcome.Skipped++
			continue
		}

		results = append(results, Result{Entry: entry, Value: value})
	}

	outcome.Results = Rank(results)
	return outcome, nil
}
