package formula

import (
	"StatLabApi/internal/assert"
	"StatLabApi/internal/data"
	"testing"
)

func testPlayers() []*data.Player {
	return []*data.Player{
		{
			ID:            1,
			Name:          "Journeyman",
			CurrentSeason: "2024-25",
			Seasons: []data.SeasonRecord{
				{Season: "2020-21", Team: "BOS", Points: 12},
				{Season: "2021-22", Team: "BOS", Points: 15},
				{Season: "2022-23", Team: "LAL", Points: 18},
				{Season: "2023-24", Team: "LAL", Points: 20},
				{Season: "2024-25", Team: "MIA", Points: 22},
			},
		},
		{
			ID:            2,
			Name:          "Rookie",
			CurrentSeason: "2024-25",
			Current:       data.SeasonRecord{Season: "2024-25", Team: "OKC", Points: 9},
		},
		{
			ID:            3,
			Name:          "Veteran",
			CurrentSeason: "2024-25",
			Seasons: []data.SeasonRecord{
				{Season: "2023-24", Team: "DEN", Points: 26},
				{Season: "2024-25", Team: "DEN", Points: 24},
			},
		},
	}
}

func TestScopeIterateAllTime(t *testing.T) {
	entries := AllTime().Iterate(testPlayers())

	// One entry per recorded season, plus the aggregate fallback for the
	// player with no season history.
	assert.Equal(t, len(entries), 8)

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Player.ID)
	}
	assert.Int64SliceEqual(t, ids, []int64{1, 1, 1, 1, 1, 2, 3, 3})
}

func TestScopeIterateAllTimeAggregateFallback(t *testing.T) {
	entries := AllTime().Iterate(testPlayers())

	var rookie *Entry
	for i := range entries {
		if entries[i].Player.ID == 2 {
			rookie = &entries[i]
		}
	}

	if rookie == nil {
		t.Fatal("expected an aggregate entry for the player with no season history")
	}
	assert.Equal(t, rookie.Season, "2024-25")
	assert.Equal(t, rookie.Record.Points, 9.0)
}

func TestScopeIterateSingleSeason(t *testing.T) {
	tests := []struct {
		name    string
		season  string
		wantIDs []int64
	}{
		{
			name:    "Shared Season",
			season:  "2023-24",
			wantIDs: []int64{1, 3},
		},
		{
			name:    "Season One Player Recorded",
			season:  "2020-21",
			wantIDs: []int64{1},
		},
		{
			name:    "Unknown Season",
			season:  "1997-98",
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := SingleSeason(tt.season).Iterate(testPlayers())

			ids := make([]int64, 0, len(entries))
			for _, e := range entries {
				ids = append(ids, e.Player.ID)
				assert.Equal(t, e.Season, tt.season)
			}
			assert.Int64SliceEqual(t, ids, tt.wantIDs)
		})
	}
}

func TestScopeFor(t *testing.T) {
	assert.Equal(t, ScopeFor("").IsAllTime(), true)
	assert.Equal(t, ScopeFor(AllTimeLabel).IsAllTime(), true)
	assert.Equal(t, ScopeFor("2024-25").IsAllTime(), false)
}
