package constraint

import "strings"

// Parse parses one comma-separated constraint token into its typed
// constraints in source order. Errors are *SyntaxError or *SemanticError.
func Parse(text string) ([]Constraint, error) {
	clauses, serr := parseGroup(text)
	if serr != nil {
		return nil, serr
	}
	return transform(clauses)
}

// ValidateToken is the error-string facade callers outside this package
// use in bulk validation. It returns the parsed constraints and an empty
// string, or nil and a display-ready message. Typed errors never escape.
//
// Syntax errors carry the input with a caret under the failure position;
// semantic errors are prefixed with the offending token, e.g.
// "th 5-2pm: Start time 17:00:00 must be before end time 14:00:00.".
func ValidateToken(text string) ([]Constraint, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, "empty constraint token"
	}

	cs, err := Parse(trimmed)
	if err != nil {
		if _, ok := err.(*SemanticError); ok {
			return nil, trimmed + ": " + err.Error()
		}
		return nil, err.Error()
	}
	return cs, ""
}
