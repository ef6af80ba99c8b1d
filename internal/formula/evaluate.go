package formula

import (
	"regexp"
	"strconv"

	"StatLabApi/internal/data"

	"github.com/Knetic/govaluate"
)

var identifierPattern = regexp.MustCompile(`[A-Za-z_][0-9A-Za-z_]*`)

// Substitute replaces every whole-word stat token in resolved with the matching
// value from rec, longest token first. The input record is read-only; the
// returned string is fully numeric for a well-formed formula.
func Substitute(resolved string, rec *data.SeasonRecord) string {
	out := resolved
	for _, t := range substitutionOrder {
		value := statFields[t](rec)
		out = tokenPatterns[t].ReplaceAllString(out, formatValue(value))
	}
	return out
}

// formatValue renders a stat value for in-place substitution. Negative values
// are parenthesized so they cannot fuse with a preceding operator.
func formatValue(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if value < 0 {
		return "(" + s + ")"
	}
	return s
}

// Evaluate substitutes rec's values into the resolved formula and evaluates the
// resulting arithmetic expression. Failures report which formula was at fault;
// callers treat them as "skip this record", never as fatal. Non-finite results
// (division by zero and friends) are returned as-is and excluded during ranking.
func Evaluate(resolved string, rec *data.SeasonRecord) (float64, error) {
	numeric := Substitute(resolved, rec)

	if leftover := identifierPattern.FindString(numeric); leftover != "" {
		return 0, &UnknownTokenError{Identifier: leftover, Formula: resolved}
	}

	expr, err := govaluate.NewEvaluableExpression(numeric)
	if err != nil {
		return 0, &MalformedExpressionError{Formula: resolved, Err: err}
	}

	result, err := expr.Evaluate(nil)
	if err != nil {
		return 0, &MalformedExpressionError{Formula: resolved, Err: err}
	}

	value, ok := result.(float64)
	if !ok {
		return 0, &MalformedExpressionError{Formula: resolved,
			Err: errNotNumeric}
	}

	return value, nil
}
