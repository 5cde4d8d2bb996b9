package activity

import "regexp"

// identifierPattern is the grammar applied to every context_id and
// visitor_id: up to 50 ASCII letters, digits, or underscores.
// Non-ASCII input (e.g. U+2603) is rejected.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]{0,50}$`)

// ValidIdentifier reports whether id satisfies the identifier
// grammar.
func ValidIdentifier(id string) bool {
	return identifierPattern.MatchString(id)
}
