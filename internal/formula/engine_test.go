package formula

import (
	"StatLabApi/internal/assert"
	"StatLabApi/internal/data"
	"errors"
	"testing"
)

func TestCalculateAllTime(t *testing.T) {
	players := testPlayers()
	registry := []NamedFormula{{Name: "Scoring", Formula: "PTS"}}

	outcome, err := Calculate("Scoring * 2", AllTime(), players, registry)
	assert.NilError(t, err)

	// Every recorded season plus one aggregate fallback survives; none are zero.
	assert.Equal(t, len(outcome.Results), 8)
	assert.Equal(t, outcome.Skipped, 0)

	top := outcome.Results[0]
	assert.Equal(t, top.Player.Name, "Veteran")
	assert.Equal(t, top.Season, "2023-24")
	assert.Equal(t, top.Value, 52.0)
	assert.Equal(t, top.Rank, 1)

	for i, r := range outcome.Results {
		assert.Equal(t, r.Rank, i+1)
	}
}

func TestCalculateSingleSeason(t *testing.T) {
	outcome, err := Calculate("PTS + AST", SingleSeason("2023-24"), testPlayers(), nil)
	assert.NilError(t, err)

	assert.Equal(t, len(outcome.Results), 2)
	assert.Equal(t, outcome.Results[0].Player.Name, "Veteran")
	assert.Equal(t, outcome.Results[1].Player.Name, "Journeyman")
}

func TestCalculateEligibilityBoundary(t *testing.T) {
	players := []*data.Player{
		{
			ID:            1,
			Name:          "Small Sample",
			CurrentSeason: "2024-25",
			Seasons: []data.SeasonRecord{
				{Season: "2024-25", FieldGoalPercentage: 0.9, GamesPlayed: 9},
			},
		},
		{
			ID:            2,
			Name:          "Full Sample",
			CurrentSeason: "2024-25",
			Seasons: []data.SeasonRecord{
				{Season: "2024-25", FieldGoalPercentage: 0.5, GamesPlayed: 10},
			},
		},
	}

	outcome, err := Calculate("FG_PCT * 100", AllTime(), players, nil)
	assert.NilError(t, err)

	assert.Equal(t, len(outcome.Results), 1)
	assert.Equal(t, outcome.Results[0].Player.Name, "Full Sample")
}

func TestCalculateSkipsFailedRecords(t *testing.T) {
	players := testPlayers()

	// Evaluation of an unbalanced expression fails per record without aborting
	// the request.
	outcome, err := Calculate("PTS + (AST", AllTime(), players, nil)
	assert.NilError(t, err)
	assert.Equal(t, len(outcome.Results), 0)
	assert.Equal(t, outcome.Skipped, 8)
}

func TestCalculateStructuralErrors(t *testing.T) {
	players := testPlayers()

	t.Run("No Valid Stats", func(t *testing.T) {
		_, err := Calculate("2 + 2", AllTime(), players, nil)

		var noStatsErr *NoValidStatsError
		if !errors.As(err, &noStatsErr) {
			t.Fatalf("got: %v; expected a NoValidStatsError", err)
		}
		assert.Equal(t, noStatsErr.Formula, "2 + 2")
		assert.StringContains(t, err.Error(), `"2 + 2"`)
	})

	t.Run("Empty Dataset", func(t *testing.T) {
		_, err := Calculate("PTS + AST", AllTime(), nil, nil)
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("Reference Cycle", func(t *testing.T) {
		registry := []NamedFormula{
			{Name: "Ping", Formula: "Pong + 1"},
			{Name: "Pong", Formula: "Ping + 1"},
		}
		_, err := Calculate("Ping * PTS", AllTime(), players, registry)

		var cycleErr *CycleError
		if !errors.As(err, &cycleErr) {
			t.Fatalf("got: %v; expected a CycleError", err)
		}
	})
}

func TestCalculateZeroResultsExcluded(t *testing.T) {
	players := []*data.Player{
		{
			ID:            1,
			Name:          "Empty Line",
			CurrentSeason: "2024-25",
			Seasons:       []data.SeasonRecord{{Season: "2024-25", GamesPlayed: 50}},
		},
	}

	outcome, err := Calculate("PTS + AST + REB", AllTime(), players, nil)
	assert.NilError(t, err)
	assert.Equal(t, len(outcome.Results), 0)
}
