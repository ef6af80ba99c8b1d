package formula

import (
	"StatLabApi/internal/assert"
	"StatLabApi/internal/data"
	"testing"
)

func TestUsesPercentage(t *testing.T) {
	tests := []struct {
		name     string
		resolved string
		want     bool
	}{
		{name: "Field Goal Pct", resolved: "FG_PCT * 100", want: true},
		{name: "Three Point Pct", resolved: "PTS + THREE_PCT", want: true},
		{name: "Free Throw Pct", resolved: "FT_PCT + 1", want: true},
		{name: "Win Pct", resolved: "PTS * W_PCT", want: true},
		{name: "Counting Stats Only", resolved: "PTS + AST + REB", want: false},
		{name: "Attempts Are Not Percentages", resolved: "FGA + FTA + 3PA", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, UsesPercentage(tt.resolved), tt.want)
		})
	}
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name        string
		resolved    string
		gamesPlayed int
		want        bool
	}{
		{
			name:        "Percentage Formula Below Sample Floor",
			resolved:    "FG_PCT * 100",
			gamesPlayed: 9,
			want:        false,
		},
		{
			name:        "Percentage Formula At Sample Floor",
			resolved:    "FG_PCT * 100",
			gamesPlayed: 10,
			want:        true,
		},
		{
			name:        "Counting Formula Ignores Sample Size",
			resolved:    "PTS + AST",
			gamesPlayed: 1,
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &data.SeasonRecord{GamesPlayed: tt.gamesPlayed}
			assert.Equal(t, Eligible(tt.resolved, rec), tt.want)
		})
	}
}
