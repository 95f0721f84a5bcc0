// ABOUTME: Parses free-text program identifiers into a canonical name and version token
// ABOUTME: Normalizes casing so downstream matching is deterministic regardless of input
package program

import (
	"fmt"
	"strings"
	"unicode"
)

// delimiters separate the program name from a trailing version token.
// Only the first occurrence splits; the remainder is kept verbatim.
const delimiters = " ,._"

// Query is the normalized form of one user-supplied program identifier.
// It is built once per run and never mutated afterward.
type Query struct {
	RawInput      string
	CanonicalName string
	VersionToken  string
}

// EmptyNameError indicates the identifier contained no program name.
// It is the only error that aborts a run: without a canonical name the
// matcher would treat every display string as a candidate.
type EmptyNameError struct {
	RawInput string
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("no program name in %q (expected something like \"Python 1.2.3\")", e.RawInput)
}

// Parse splits raw at the first delimiter (space, comma, period, or
// underscore). Everything before the delimiter becomes the name, everything
// after becomes the version token, unparsed. The name is normalized to
// canonical form: first letter upper, remainder lower.
func Parse(raw string) (Query, error) {
	name := raw
	version := ""
	if i := strings.IndexAny(raw, delimiters); i >= 0 {
		name = raw[:i]
		version = raw[i+1:]
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Query{}, &EmptyNameError{RawInput: raw}
	}

	return Query{
		RawInput:      raw,
		CanonicalName: canonicalize(name),
		VersionToken:  version,
	}, nil
}

func canonicalize(name string) string {
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
