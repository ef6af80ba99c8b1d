package formula

import (
	"regexp"
	"sort"

	"StatLabApi/internal/data"
)

// Token is a symbolic stat identifier recognized inside formulas, e.g. "PTS".
// The set is fixed; every token maps to exactly one season-record field.
type Token string

const (
	TokenPoints       Token = "PTS"
	TokenAssists      Token = "AST"
	TokenRebounds     Token = "REB"
	TokenSteals       Token = "STL"
	TokenBlocks       Token = "BLK"
	TokenTurnovers    Token = "TOV"
	TokenFieldGoalPct Token = "FG_PCT"
	TokenFieldGoalAtt Token = "FGA"
	TokenThreePct     Token = "THREE_PCT"
	TokenThreeAtt     Token = "3PA"
	TokenFreeThrowPct Token = "FT_PCT"
	TokenFreeThrowAtt Token = "FTA"
	TokenPlusMinus    Token = "PLUS_MINUS"
	TokenMinutes      Token = "MIN"
	TokenMinutesAlias Token = "MPG"
	TokenGamesPlayed  Token = "GP"
	TokenWinPct       Token = "W_PCT"
)

var statFields = map[Token]func(*data.SeasonRecord) float64{
	TokenPoints:       func(r *data.SeasonRecord) float64 { return r.Points },
	TokenAssists:      func(r *data.SeasonRecord) float64 { return r.Assists },
	TokenRebounds:     func(r *data.SeasonRecord) float64 { return r.Rebounds },
	TokenSteals:       func(r *data.SeasonRecord) float64 { return r.Steals },
	TokenBlocks:       func(r *data.SeasonRecord) float64 { return r.Blocks },
	TokenTurnovers:    func(r *data.SeasonRecord) float64 { return r.Turnovers },
	TokenFieldGoalPct: func(r *data.SeasonRecord) float64 { return r.FieldGoalPercentage },
	TokenFieldGoalAtt: func(r *data.SeasonRecord) float64 { return r.FieldGoalAttempts },
	TokenThreePct:     func(r *data.SeasonRecord) float64 { return r.ThreePointPercentage },
	TokenThreeAtt:     func(r *data.SeasonRecord) float64 { return r.ThreePointAttempts },
	TokenFreeThrowPct: func(r *data.SeasonRecord) float64 { return r.FreeThrowPercentage },
	TokenFreeThrowAtt: func(r *data.SeasonRecord) float64 { return r.FreeThrowAttempts },
	TokenPlusMinus:    func(r *data.SeasonRecord) float64 { return r.PlusMinus },
	TokenMinutes:      func(r *data.SeasonRecord) float64 { return r.MinutesPerGame },
	TokenMinutesAlias: func(r *data.SeasonRecord) float64 { return r.MinutesPerGame },
	TokenGamesPlayed:  func(r *data.SeasonRecord) float64 { return float64(r.GamesPlayed) },
	TokenWinPct:       func(r *data.SeasonRecord) float64 { return r.WinPercentage },
}

// percentageTokens trigger the small-sample eligibility rule.
var percentageTokens = []Token{TokenFieldGoalPct, TokenThreePct, TokenFreeThrowPct,
	TokenWinPct}

// substitutionOrder lists every token longest-first so substituting one token can
// never corrupt the match region of a longer token it is a substring of
// (PLUS_MINUS before MIN, THREE_PCT before FT_PCT-adjacent text). Ties break
// alphabetically to keep the order deterministic.
var substitutionOrder []Token

var tokenPatterns map[Token]*regexp.Regexp

func init() {
	for t := range statFields {
		substitutionOrder = append(substitutionOrder, t)
	}
	sort.Slice(substitutionOrder, func(i, j int) bool {
		if len(substitutionOrder[i]) != len(substitutionOrder[j]) {
			return len(substitutionOrder[i]) > len(substitutionOrder[j])
		}
		return substitutionOrder[i] < substitutionOrder[j]
	})

	tokenPatterns = make(map[Token]*regexp.Regexp, len(substitutionOrder))
	for _, t := range substitutionOrder {
		// Every token is made of word characters, so \b is a true whole-word
		// boundary. QuoteMeta guards tokens like 3PA against future metacharacters.
		tokenPatterns[t] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(string(t)) + `\b`)
	}
}

// Tokens returns every recognized stat token in substitution order.
func Tokens() []Token {
	out := make([]Token, len(substitutionOrder))
	copy(out, substitutionOrder)
	return out
}

// TokenNames returns every recognized token as an upper-case string, for
// reserved-name validation and user-facing error messages.
func TokenNames() []string {
	names := make([]string, 0, len(substitutionOrder))
	for _, t := range substitutionOrder {
		names = append(names, string(t))
	}
	return names
}

// ContainsStatToken reports whether any recognized token appears whole-word in
// the resolved formula. A formula without one can never produce a value.
func ContainsStatToken(resolved string) bool {
	for _, t := range substitutionOrder {
		if tokenPatterns[t].MatchString(resolved) {
			return true
		}
	}
	return false
}
