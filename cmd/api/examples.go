package main

import "net/http"

// formulaExample is one entry in the built-in formula catalog surfaced to the
// formula builder as a starting point.
type formulaExample struct {
	Name        string `json:"name"`
	Formula     string `json:"formula"`
	Description string `json:"description"`
}

var formulaExamples = []formulaExample{
	{
		Name:        "True Shooting % (TS%)",
		Formula:     "PTS / (2 * (FGA + 0.44 * FTA))",
		Description: "Measures shooting efficiency accounting for 2P, 3P, and FT",
	},
	{
		Name:        "Offensive Impact",
		Formula:     "PTS + AST * 1.5 + REB * 0.5",
		Description: "Comprehensive offensive contribution metric",
	},
	{
		Name:        "Complete Player",
		Formula:     "(PTS + AST + REB + STL + BLK) / TOV",
		Description: "Well-rounded performance with turnover efficiency",
	},
	{
		Name:        "Efficiency Rating",
		Formula:     "(PTS + REB + AST + STL + BLK - (FGA - (PTS/2)) - (FTA - PTS) - TOV) / GP",
		Description: "NBA efficiency rating formula",
	},
	{
		Name:        "Defensive Impact",
		Formula:     "STL + BLK + REB * 0.75 - (TOV * 0.5)",
		Description: "Defensive contribution with turnover penalty",
	},
	{
		Name:        "Floor General",
		Formula:     "AST / TOV + (AST * 2) / FGA",
		Description: "Playmaking efficiency and ball distribution",
	},
	{
		Name:        "Big Man Index",
		Formula:     "REB + BLK * 2 + (FG_PCT * 10) - (FGA / PTS)",
		Description: "Interior presence and efficiency for centers/forwards",
	},
	{
		Name:        "Shooter's Touch",
		Formula:     "THREE_PCT + FT_PCT + (PTS / FGA)",
		Description: "Pure shooting ability across all shot types",
	},
	{
		Name:        "Hustle Metric",
		Formula:     "STL + BLK + (REB / GP) + (PLUS_MINUS / 10)",
		Description: "Effort-based stats and team impact",
	},
	{
		Name:        "Versatility Score",
		Formula:     "PTS + AST + REB + STL + BLK",
		Description: "Raw statistical versatility across all categories",
	},
	{
		Name:        "Point Guard Rating",
		Formula:     "AST * 2 + STL * 1.5 + (AST / TOV) - (FGA / AST)",
		Description: "Specialized metric for point guard effectiveness",
	},
	{
		Name:        "Scoring Punch",
		Formula:     "PTS + (THREE_PCT * 30) + (FT_PCT * 10)",
		Description: "Scoring volume with shooting efficiency bonus",
	},
	{
		Name:        "Rim Protector",
		Formula:     "BLK * 3 + REB + (PLUS_MINUS / 5)",
		Description: "Interior defense and overall defensive impact",
	},
	{
		Name:        "Two-Way Impact",
		Formula:     "(PTS + AST) + (STL + BLK + REB * 0.8)",
		Description: "Balanced offensive and defensive contribution",
	},
	{
		Name:        "Consistency Factor",
		Formula:     "GP * (PTS + REB + AST) / 82",
		Description: "Performance weighted by games played availability",
	},
	{
		Name:        "Clutch Shooter",
		Formula:     "FG_PCT + THREE_PCT + FT_PCT + (PTS / GP)",
		Description: "Shooting reliability across all situations",
	},
	{
		Name:        "Paint Presence",
		Formula:     "REB * 1.2 + BLK * 2.5 + (FG_PCT * 15)",
		Description: "Interior dominance for big men",
	},
	{
		Name:        "Pace Impact",
		Formula:     "(PTS + AST * 1.5) * (MIN / 36)",
		Description: "Per-minute offensive impact adjusted for playing time",
	},
	{
		Name:        "Winning Formula",
		Formula:     "PLUS_MINUS + (PTS + AST + REB) * W_PCT",
		Description: "Individual performance weighted by team success",
	},
}

func (app *application) FormulaExamples(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"examples": formulaExamples}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
