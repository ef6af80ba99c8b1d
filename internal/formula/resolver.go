package formula

import (
	"regexp"
	"slices"
	"strings"
)

// NamedFormula is one registry entry: a saved name bound to a formula body. The
// registry is an immutable snapshot taken at the start of a calculation; the
// resolver never mutates it.
type NamedFormula struct {
	Name    string
	Formula string
}

// Resolve expands every saved-formula name referenced in raw, recursively,
// until the result contains only stat tokens, numbers and operators. Names are
// matched case-insensitively as whole words and each occurrence is replaced by
// the named body wrapped in parentheses, preserving operator precedence.
//
// Saved formulas may reference other saved formulas; a reference path that
// revisits a name terminates with a CycleError instead of expanding forever.
// When the registry holds duplicate names the earliest entry wins.
func Resolve(raw string, registry []NamedFormula) (string, error) {
	return expand(raw, dedupe(registry), nil)
}

func dedupe(registry []NamedFormula) []NamedFormula {
	seen := make(map[string]bool, len(registry))
	out := make([]NamedFormula, 0, len(registry))
	for _, nf := range registry {
		key := strings.ToUpper(nf.Name)
		if nf.Name == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, nf)
	}
	return out
}

func expand(s string, registry []NamedFormula, trail []string) (string, error) {
	for {
		replaced := false

		for _, nf := range registry {
			pattern := namePattern(nf.Name)
			loc := pattern.FindStringSubmatchIndex(s)
			if loc == nil {
				continue
			}

			key := strings.ToUpper(nf.Name)
			if slices.Contains(trail, key) {
				return "", &CycleError{Chain: append(slices.Clone(trail), key)}
			}

			body, err := expand(nf.Formula, registry, append(slices.Clone(trail), key))
			if err != nil {
				return "", err
			}

			// loc[2:4] and loc[4:6] delimit the boundary characters around the
			// matched name; both survive the splice.
			s = s[:loc[0]] + s[loc[2]:loc[3]] + "(" + body + ")" + s[loc[4]:loc[5]] + s[loc[1]:]
			replaced = true
		}

		if !replaced {
			return s, nil
		}
	}
}

// namePattern matches name as a case-insensitive whole word. Saved names may
// contain spaces or punctuation, so \b cannot be trusted at their edges; the
// boundary is asserted with explicit non-word character groups instead.
func namePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|[^0-9A-Za-z_])` + regexp.QuoteMeta(name) +
		`($|[^0-9A-Za-z_])`)
}
