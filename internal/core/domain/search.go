package domain

// SearchScope restricts which snippet fields participate in scoring.
// Scope is a parameter of the scoring step; parsing user-facing mode
// prefixes into a scope is an orchestration concern.
type SearchScope int

const (
	// ScopeAll scores title and content.
	ScopeAll SearchScope = iota

	// ScopeTitleOnly ignores content when scoring.
	ScopeTitleOnly

	// ScopeContentOnly ignores title when scoring.
	ScopeContentOnly
)

// String returns a human-readable scope name.
func (s SearchScope) String() string {
	switch s {
	case ScopeTitleOnly:
		return "title-only"
	case ScopeContentOnly:
		return "content-only"
	case ScopeAll:
		return "all"
	}
	return "all"
}

// SearchOptions configures a ranking pass.
type SearchOptions struct {
	// Scope restricts scoring to specific fields.
	Scope SearchScope
}
