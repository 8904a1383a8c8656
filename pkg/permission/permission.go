package permission

// Permission is a capability token. Implementations must be immutable and
// safe for concurrent use.
//
// Implies must be reflexive: p.Implies(p) is true for any permission p.
// Beyond that the relation is implementation-defined; Scope, for example,
// grants wildcard patterns power over their sub-scopes.
type Permission interface {
	// Name returns the canonical string form of the permission. It is used
	// for de-duplication and diagnostics.
	Name() string

	// Implies reports whether holding this permission also grants other.
	Implies(other Permission) bool
}

// allName is the canonical name of the all-permission. It deliberately
// cannot be produced by Parse, so a grant of every permission is always an
// explicit decision.
const allName = "<all permissions>"

// allPermission implies every permission, including itself.
type allPermission struct{}

func (allPermission) Name() string { return allName }

func (allPermission) Implies(Permission) bool { return true }

// All returns the permission that implies every other permission. Granting
// it to a protection domain marks that domain as fully trusted.
func All() Permission { return allPermission{} }

// IsAll reports whether p is the permission returned by All.
func IsAll(p Permission) bool {
	_, ok := p.(allPermission)
	return ok
}
