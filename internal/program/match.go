// ABOUTME: Match policy deciding whether a display string belongs to a query
// ABOUTME: Case-insensitive containment with uniform version-token exclusion
package program

import "strings"

// ContainsAnyCase reports whether s contains substr ignoring letter casing.
func ContainsAnyCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Matcher applies one query's match policy to candidate display strings.
type Matcher struct {
	query Query
}

// NewMatcher builds a Matcher bound to the given query.
func NewMatcher(q Query) *Matcher {
	return &Matcher{query: q}
}

// Query returns the query this matcher was built from.
func (m *Matcher) Query() Query {
	return m.query
}

// Matches reports whether display belongs to the queried program.
// The version token, when present, excludes a display string no matter
// which casing of the canonical name it matched under.
func (m *Matcher) Matches(display string) bool {
	return ContainsAnyCase(display, m.query.CanonicalName) &&
		(m.query.VersionToken == "" || !strings.Contains(display, m.query.VersionToken))
}
