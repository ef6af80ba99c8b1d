package formula

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDataset means there were no players to evaluate at all.
var ErrEmptyDataset = errors.New("no player data available")

var errNotNumeric = errors.New("expression did not produce a number")

// CycleError reports that saved-formula references form a cycle. Chain holds
// the reference path ending at the name that closed the loop.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("formula references form a cycle: %s", strings.Join(e.Chain, " -> "))
}

// NoValidStatsError means the formula, even fully resolved, references none of
// the recognized stat tokens, so no computation is possible.
type NoValidStatsError struct {
	Formula string
}

func (e *NoValidStatsError) Error() string {
	return fmt.Sprintf("formula %q must contain at least one valid stat token: %s",
		e.Formula, strings.Join(TokenNames(), ", "))
}

// UnknownTokenError reports an identifier left over after every stat token was
// substituted. The record under evaluation is skipped, not the whole request.
type UnknownTokenError struct {
	Identifier string
	Formula    string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown identifier %q in formula %q", e.Identifier, e.Formula)
}

// MalformedExpressionError reports an expression the arithmetic evaluator could
// not parse or evaluate. Like UnknownTokenError it only skips one record.
type MalformedExpressionError struct {
	Formula string
	Err     error
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed expression %q: %s", e.Formula, e.Err)
}

func (e *MalformedExpressionError) Unwrap() error {
	return e.Err
}
