package permission

// Set is an immutable, ordered collection of permissions deduplicated by
// name. The zero value is an empty set that implies nothing.
type Set struct {
	perms []Permission
}

// NewSet builds a set from the given permissions, preserving first-seen
// order and dropping nils and duplicates (by Name).
func NewSet(perms ...Permission) Set {
	if len(perms) == 0 {
		return Set{}
	}

	seen := make(map[string]struct{}, len(perms))
	unique := make([]Permission, 0, len(perms))
	for _, p := range perms {
		if p == nil {
			continue
		}
		name := p.Name()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, p)
	}

	return Set{perms: unique}
}

// NewScopeSet builds a set from scope strings. Convenience for tests and
// policy sources working with plain strings.
func NewScopeSet(scopes ...string) Set {
	perms := make([]Permission, 0, len(scopes))
	for _, s := range scopes {
		perms = append(perms, Scope(s))
	}
	return NewSet(perms...)
}

// Implies reports whether any member of the set implies the requested
// permission. An empty set implies nothing; a nil request is never implied.
func (s Set) Implies(p Permission) bool {
	if p == nil {
		return false
	}
	for _, held := range s.perms {
		if held.Implies(p) {
			return true
		}
	}
	return false
}

// GrantsAll reports whether the set contains a permission that implies every
// other permission: the All permission or the global wildcard scope.
func (s Set) GrantsAll() bool {
	for _, held := range s.perms {
		if IsAll(held) || held.Name() == scopeWildcard {
			return true
		}
	}
	return false
}

// Len returns the number of distinct permissions in the set.
func (s Set) Len() int { return len(s.perms) }

// Permissions returns a copy of the set's members in insertion order.
func (s Set) Permissions() []Permission {
	if len(s.perms) == 0 {
		return nil
	}
	out := make([]Permission, len(s.perms))
	copy(out, s.perms)
	return out
}
