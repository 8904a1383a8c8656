package accessctl

import (
	"fmt"

	"github.com/dmitrymomot/guardkit/pkg/permission"
)

// ProtectionDomain binds a unit of executing code to the immutable set of
// permissions it statically holds. Domains are constructed once, by whoever
// loads the code (typically from a policy source), and are shared by
// reference: many frames may point at the same domain, and identity for
// de-duplication is pointer identity.
type ProtectionDomain struct {
	name  string
	perms permission.Set
}

// NewDomain creates a protection domain with the given diagnostic name and
// granted permission set. The permission set is consulted on every check but
// never re-queried from policy.
func NewDomain(name string, perms permission.Set) *ProtectionDomain {
	return &ProtectionDomain{name: name, perms: perms}
}

// Name returns the domain's diagnostic label.
func (d *ProtectionDomain) Name() string { return d.name }

// Holds reports whether any permission granted to this domain implies the
// requested one. A nil request is never held.
func (d *ProtectionDomain) Holds(p permission.Permission) bool {
	return d.perms.Implies(p)
}

// GrantsAll reports whether the domain's static grant implies every
// permission. Such domains can be dropped from a context by Optimize
// without changing any check outcome.
func (d *ProtectionDomain) GrantsAll() bool { return d.perms.GrantsAll() }

// Permissions returns a copy of the domain's granted permissions.
func (d *ProtectionDomain) Permissions() []permission.Permission {
	return d.perms.Permissions()
}

func (d *ProtectionDomain) String() string {
	return fmt.Sprintf("ProtectionDomain(%s)", d.name)
}
