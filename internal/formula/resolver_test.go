package formula

import (
	"StatLabApi/internal/assert"
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	registry := []NamedFormula{
		{Name: "Impact", Formula: "PTS + AST"},
		{Name: "Big Man Index", Formula: "REB + BLK * 2"},
		{Name: "Stacked", Formula: "Impact / GP"},
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "No Saved Names",
			raw:  "PTS + REB",
			want: "PTS + REB",
		},
		{
			name: "Single Reference",
			raw:  "Impact * 2",
			want: "(PTS + AST) * 2",
		},
		{
			name: "Case Insensitive Reference",
			raw:  "impact * 2",
			want: "(PTS + AST) * 2",
		},
		{
			name: "Name With Spaces",
			raw:  "Big Man Index - TOV",
			want: "(REB + BLK * 2) - TOV",
		},
		{
			name: "Transitive Reference",
			raw:  "Stacked + 1",
			want: "((PTS + AST) / GP) + 1",
		},
		{
			name: "Repeated Reference",
			raw:  "Impact + Impact",
			want: "(PTS + AST) + (PTS + AST)",
		},
		{
			name: "Whole Word Only",
			raw:  "Impactful + PTS",
			want: "Impactful + PTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.raw, registry)
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestResolveCycle(t *testing.T) {
	registry := []NamedFormula{
		{Name: "Alpha", Formula: "Beta + 1"},
		{Name: "Beta", Formula: "Alpha + 1"},
		{Name: "Selfie", Formula: "Selfie * 2"},
	}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "Mutual Cycle", raw: "Alpha"},
		{name: "Self Reference", raw: "Selfie + PTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.raw, registry)

			var cycleErr *CycleError
			if !errors.As(err, &cycleErr) {
				t.Fatalf("got: %v; expected a CycleError", err)
			}
			if len(cycleErr.Chain) < 2 {
				t.Errorf("got chain %v; expected the full reference path", cycleErr.Chain)
			}
		})
	}
}

func TestResolveDuplicateNames(t *testing.T) {
	registry := []NamedFormula{
		{Name: "Twin", Formula: "PTS"},
		{Name: "twin", Formula: "AST"},
	}

	got, err := Resolve("Twin * 3", registry)
	assert.NilError(t, err)
	assert.Equal(t, got, "(PTS) * 3")
}
