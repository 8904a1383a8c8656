package permission

import (
	"slices"
	"sort"
	"strings"
)

const (
	// scopeSeparator separates multiple scopes in a list string.
	scopeSeparator = " "

	// scopeWildcard matches everything, or everything inside a hierarchy
	// level when used as a suffix.
	scopeWildcard = "*"

	// scopeDelimiter separates hierarchy levels (e.g. "admin.read").
	scopeDelimiter = "."
)

// Scope is a hierarchical dotted permission string, e.g. "file.read" or
// "admin.*". The zero value is invalid; use Parse or a literal.
type Scope string

// Name returns the scope string itself.
func (s Scope) Name() string { return string(s) }

// Implies reports whether this scope grants the requested permission.
//
// Matching rules, applied to other.Name():
//   - direct match: "read" implies "read"
//   - global wildcard: "*" implies any permission
//   - namespace wildcard: "admin.*" implies anything under "admin."
func (s Scope) Implies(other Permission) bool {
	if other == nil {
		return false
	}
	return scopeMatches(other.Name(), string(s))
}

// scopeMatches checks if a single scope name matches a pattern, supporting
// the global and namespace wildcard forms.
func scopeMatches(scope, pattern string) bool {
	if scope == pattern || pattern == scopeWildcard {
		return true
	}

	if strings.HasSuffix(pattern, scopeWildcard) {
		prefix := strings.TrimSuffix(pattern, scopeWildcard)
		prefix = strings.TrimSuffix(prefix, scopeDelimiter)
		return strings.HasPrefix(scope, prefix+scopeDelimiter)
	}

	return false
}

// Valid reports whether the scope is syntactically usable: non-empty and
// free of embedded whitespace.
func (s Scope) Valid() bool {
	return s != "" && !strings.ContainsAny(string(s), " \t\n\r")
}

// Parse converts a space-separated scope list into a slice of scopes.
//
// Trims surrounding whitespace, drops empty entries, and returns nil for
// empty input.
//
// Example:
//
//	permission.Parse("file.read net.* admin.users")
//	// Returns: []Scope{"file.read", "net.*", "admin.users"}
func Parse(list string) []Scope {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil
	}

	parts := strings.Fields(list)
	scopes := make([]Scope, 0, len(parts))
	for _, p := range parts {
		scopes = append(scopes, Scope(p))
	}

	return scopes
}

// Join converts a slice of scopes back to the canonical space-separated
// string. Returns an empty string for empty input.
func Join(scopes []Scope) string {
	if len(scopes) == 0 {
		return ""
	}

	names := make([]string, len(scopes))
	for i, s := range scopes {
		names[i] = string(s)
	}

	return strings.Join(names, scopeSeparator)
}

// Normalize removes duplicate scopes and sorts the result alphabetically.
// Returns nil for empty input.
func Normalize(scopes []Scope) []Scope {
	if len(scopes) == 0 {
		return nil
	}

	unique := make([]Scope, 0, len(scopes))
	for _, s := range scopes {
		if !slices.Contains(unique, s) {
			unique = append(unique, s)
		}
	}

	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	return unique
}

// Validate checks that every scope is syntactically valid and matched by at
// least one pattern in allowed. An empty scopes slice is valid; an empty
// allow-list rejects everything except the empty slice. A global wildcard in
// allowed accepts any valid scope.
func Validate(scopes, allowed []Scope) bool {
	if len(scopes) == 0 {
		return true
	}
	if len(allowed) == 0 {
		return false
	}

	if slices.Contains(allowed, Scope(scopeWildcard)) {
		for _, s := range scopes {
			if !s.Valid() {
				return false
			}
		}
		return true
	}

	for _, s := range scopes {
		if !s.Valid() {
			return false
		}
		ok := false
		for _, a := range allowed {
			if scopeMatches(string(s), string(a)) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}
