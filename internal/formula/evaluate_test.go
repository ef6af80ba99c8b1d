package formula

import (
	"StatLabApi/internal/assert"
	"StatLabApi/internal/data"
	"errors"
	"math"
	"testing"
)

func TestSubstitute(t *testing.T) {
	rec := &data.SeasonRecord{
		Points:             25,
		Assists:            8,
		PlusMinus:          -3.5,
		MinutesPerGame:     34,
		ThreePointAttempts: 6,
		GamesPlayed:        72,
	}

	tests := []struct {
		name     string
		resolved string
		want     string
	}{
		{
			name:     "Simple Tokens",
			resolved: "PTS + AST",
			want:     "25 + 8",
		},
		{
			name:     "Lower Case Tokens",
			resolved: "pts + ast",
			want:     "25 + 8",
		},
		{
			name:     "Longest Token First",
			resolved: "PLUS_MINUS + MIN",
			want:     "(-3.5) + 34",
		},
		{
			name:     "Leading Digit Token",
			resolved: "3PA * 2",
			want:     "6 * 2",
		},
		{
			name:     "Games Played Token",
			resolved: "PTS / GP",
			want:     "25 / 72",
		},
		{
			name:     "Missing Stats Default To Zero",
			resolved: "REB + TOV",
			want:     "0 + 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Substitute(tt.resolved, rec), tt.want)
		})
	}
}

func TestEvaluate(t *testing.T) {
	rec := &data.SeasonRecord{
		Points:            25,
		Assists:           8,
		Rebounds:          7,
		Turnovers:         3,
		FieldGoalAttempts: 20,
		FreeThrowAttempts: 10,
	}

	t.Run("Additive Formula", func(t *testing.T) {
		got, err := Evaluate("PTS + AST + REB - TOV", rec)
		assert.NilError(t, err)
		assert.Equal(t, got, 37.0)
	})

	t.Run("True Shooting", func(t *testing.T) {
		tsRec := &data.SeasonRecord{Points: 30, FieldGoalAttempts: 20, FreeThrowAttempts: 10}
		got, err := Evaluate("PTS / (2 * (FGA + 0.44 * FTA))", tsRec)
		assert.NilError(t, err)
		assert.Float64Near(t, got, 0.6148, 0.0001)
		assert.Equal(t, math.Round(got*100)/100, 0.61)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := Evaluate("(PTS + REB) / TOV", rec)
		assert.NilError(t, err)
		second, err := Evaluate("(PTS + REB) / TOV", rec)
		assert.NilError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Zero Fields Evaluate To Zero", func(t *testing.T) {
		got, err := Evaluate("STL + BLK", &data.SeasonRecord{})
		assert.NilError(t, err)
		assert.Equal(t, got, 0.0)
	})

	t.Run("Division By Zero Is Non Finite", func(t *testing.T) {
		got, err := Evaluate("PTS / STL", rec)
		assert.NilError(t, err)
		if !math.IsInf(got, 1) {
			t.Errorf("got: %v; expected +Inf", got)
		}
	})

	t.Run("Record Not Mutated", func(t *testing.T) {
		before := *rec
		_, err := Evaluate("PTS * AST * REB", rec)
		assert.NilError(t, err)
		assert.Equal(t, *rec, before)
	})
}

func TestEvaluateErrors(t *testing.T) {
	rec := &data.SeasonRecord{Points: 25}

	t.Run("Unknown Identifier", func(t *testing.T) {
		_, err := Evaluate("PTS + XYZ", rec)

		var unknownErr *UnknownTokenError
		if !errors.As(err, &unknownErr) {
			t.Fatalf("got: %v; expected an UnknownTokenError", err)
		}
		assert.Equal(t, unknownErr.Identifier, "XYZ")
	})

	t.Run("Unbalanced Parentheses", func(t *testing.T) {
		_, err := Evaluate("PTS + (AST", rec)

		var malformedErr *MalformedExpressionError
		if !errors.As(err, &malformedErr) {
			t.Fatalf("got: %v; expected a MalformedExpressionError", err)
		}
		assert.StringContains(t, malformedErr.Error(), "PTS + (AST")
	})
}
