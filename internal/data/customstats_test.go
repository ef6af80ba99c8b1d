package data

import (
	"StatLabApi/internal/assert"
	"StatLabApi/internal/validator"
	"strings"
	"testing"
)

func TestValidateCustomStat(t *testing.T) {
	reserved := []string{"PTS", "AST", "REB", "FG_PCT", "GP"}

	tests := []struct {
		name      string
		stat      CustomStat
		wantValid bool
		wantKey   string
	}{
		{
			name:      "Valid Stat",
			stat:      CustomStat{Name: "Impact", Formula: "PTS + AST"},
			wantValid: true,
		},
		{
			name:      "Missing Name",
			stat:      CustomStat{Formula: "PTS + AST"},
			wantValid: false,
			wantKey:   "name",
		},
		{
			name:      "Missing Formula",
			stat:      CustomStat{Name: "Impact"},
			wantValid: false,
			wantKey:   "formula",
		},
		{
			name:      "Reserved Token Name",
			stat:      CustomStat{Name: "PTS", Formula: "AST * 2"},
			wantValid: false,
			wantKey:   "name",
		},
		{
			name:      "Reserved Token Name Lowercase",
			stat:      CustomStat{Name: "fg_pct", Formula: "AST * 2"},
			wantValid: false,
			wantKey:   "name",
		},
		{
			name:      "Formula Too Long",
			stat:      CustomStat{Name: "Impact", Formula: strings.Repeat("PTS + ", 100)},
			wantValid: false,
			wantKey:   "formula",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateCustomStat(v, &tt.stat, reserved)
			assert.Equal(t, v.Valid(), tt.wantValid)
			if !tt.wantValid {
				_, ok := v.Errors[tt.wantKey]
				assert.Equal(t, ok, true)
			}
		})
	}
}

func TestCalculateMetadata(t *testing.T) {
	tests := []struct {
		name         string
		totalRecords int
		page         int
		pageSize     int
		want         Metadata
	}{
		{
			name:         "Partial Last Page",
			totalRecords: 45,
			page:         2,
			pageSize:     20,
			want: Metadata{
				CurrentPage:  2,
				PageSize:     20,
				FirstPage:    1,
				LastPage:     3,
				TotalRecords: 45,
			},
		},
		{
			name:         "Exact Page Boundary",
			totalRecords: 40,
			page:         1,
			pageSize:     20,
			want: Metadata{
				CurrentPage:  1,
				PageSize:     20,
				FirstPage:    1,
				LastPage:     2,
				TotalRecords: 40,
			},
		},
		{
			name:         "No Records",
			totalRecords: 0,
			page:         1,
			pageSize:     20,
			want:         Metadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateMetadata(tt.totalRecords, tt.page, tt.pageSize)
			assert.Equal(t, got, tt.want)
		})
	}
}
