package constraint

import (
	"fmt"
	"sort"
	"strings"
)

// SyntaxError reports a token stream the grammar cannot shape. It renders
// the offending input with a caret under the failure position and the set
// of terminal names that would have been accepted there.
type SyntaxError struct {
	Input    string
	Pos      int
	Expected []string
	// Choice marks failures on an unrecognized word, where the message
	// reads "Expected one of" rather than "Expected:".
	Choice bool
}

func (e *SyntaxError) Error() string {
	pos := e.Pos
	if pos > len(e.Input) {
		pos = len(e.Input)
	}
	names := append([]string(nil), e.Expected...)
	sort.Strings(names)
	for i, n := range names {
		names[i] = "'" + n + "'"
	}

	var b strings.Builder
	b.WriteString(e.Input)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", pos))
	b.WriteString("^\n")
	if e.Choice {
		fmt.Fprintf(&b, "Expected one of {%s}", strings.Join(names, ", "))
	} else {
		fmt.Fprintf(&b, "Expected: {%s}", strings.Join(names, ", "))
	}
	return b.String()
}

// SemanticError reports input that parses but does not make sense: an
// inverted time range, a 13 o'clock PM, a Feb 30.
type SemanticError struct {
	Msg string
}

func (e *SemanticError) Error() string { return e.Msg }

func semanticErrf(format string, args ...any) *SemanticError {
	return &SemanticError{Msg: fmt.Sprintf(format, args...)}
}
