package accessctl

import (
	"github.com/dmitrymomot/guardkit/pkg/permission"
)

// Context is an immutable, ordered, de-duplicated snapshot of protection
// domains, independently checkable at any later point, on any goroutine.
// A Context may additionally carry the DomainCombiner that assembled it, a
// purely-privileged marker, and a restricting parent context whose own Check
// must also pass (the restricted-elevation case).
//
// Contexts are never mutated in place; Optimize returns a new value.
type Context struct {
	domains    []*ProtectionDomain
	combiner   DomainCombiner
	privileged bool
	parent     *Context
}

// fullTrust is the canonical "fully privileged, empty-domain" context. It
// grants everything.
var fullTrust = &Context{privileged: true}

// NewContext creates a context from the given domains. Nils are dropped and
// duplicates (by identity) collapse to the first occurrence; insertion order
// is preserved. An empty argument list yields a context that denies every
// permission, not a privileged one.
func NewContext(domains ...*ProtectionDomain) *Context {
	return &Context{domains: dedupeDomains(domains)}
}

// NewContextWithCombiner creates a context carrying the combiner that
// produced the given domain list, so future re-derivations of the context
// apply the same combiner. The list is stored verbatim apart from nil
// entries; call Optimize to collapse duplicates.
func NewContextWithCombiner(domains []*ProtectionDomain, combiner DomainCombiner) *Context {
	kept := make([]*ProtectionDomain, 0, len(domains))
	for _, d := range domains {
		if d != nil {
			kept = append(kept, d)
		}
	}
	return &Context{domains: kept, combiner: combiner}
}

// Check requires every domain in the context to hold the requested
// permission. Domains are consulted in insertion order and the first
// unauthorized one fails the check with an *AccessError. An empty domain
// list passes only when the context carries the purely-privileged marker
// and no restriction; otherwise it denies (a combiner that produced no
// domains grants nothing). When the context was assembled from a restricted
// elevation, the restricting parent's own Check must pass as well.
func (c *Context) Check(p permission.Permission) error {
	if p == nil {
		return ErrNilPermission
	}
	if c == nil {
		// Absent context means nothing to restrict.
		return nil
	}

	if len(c.domains) == 0 && !c.privileged {
		return &AccessError{Permission: p}
	}

	for _, d := range c.domains {
		if !d.Holds(p) {
			return &AccessError{Permission: p, Domain: d}
		}
	}

	if c.parent != nil {
		return c.parent.Check(p)
	}

	return nil
}

// Optimize returns a behaviorally equivalent, possibly smaller context:
// duplicate domains collapse and domains whose static grant implies every
// permission are dropped, since they can never fail a check. If dropping
// leaves an unrestricted, combiner-free context empty, the canonical fully
// privileged context is returned. For any permission p, Check(p) on the
// result matches Check(p) on the receiver.
func (c *Context) Optimize() *Context {
	if c == nil {
		return nil
	}

	kept := make([]*ProtectionDomain, 0, len(c.domains))
	seen := make(map[*ProtectionDomain]struct{}, len(c.domains))
	for _, d := range c.domains {
		if d == nil || d.GrantsAll() {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		kept = append(kept, d)
	}

	parent := c.parent.Optimize()

	if len(kept) == 0 && parent == nil && c.combiner == nil {
		if c.privileged || len(c.domains) > 0 {
			// Either already purely privileged, or every domain granted
			// everything; both reduce to the canonical full-trust context.
			return fullTrust
		}
	}

	// When every domain was dropped because each granted everything, the
	// domain-list part of the check is pass-all; the privileged marker
	// records that so an empty list is not mistaken for a denial.
	return &Context{
		domains:    kept,
		combiner:   c.combiner,
		privileged: c.privileged || (len(c.domains) > 0 && len(kept) == 0),
		parent:     parent,
	}
}

// Equal reports whether two contexts hold identical domain lists (order
// sensitive, identity comparison) and agree on whether a combiner is
// carried. It deliberately ignores which combiner, matching the snapshot
// re-derivation contract.
func (c *Context) Equal(other *Context) bool {
	if c == nil || other == nil {
		return c == other
	}
	if (c.combiner == nil) != (other.combiner == nil) {
		return false
	}
	if len(c.domains) != len(other.domains) {
		return false
	}
	for i, d := range c.domains {
		if other.domains[i] != d {
			return false
		}
	}
	return true
}

// Domains returns a copy of the context's domain list in insertion order.
func (c *Context) Domains() []*ProtectionDomain {
	if c == nil || len(c.domains) == 0 {
		return nil
	}
	out := make([]*ProtectionDomain, len(c.domains))
	copy(out, c.domains)
	return out
}

// Combiner returns the combiner carried by the context, or nil.
func (c *Context) Combiner() DomainCombiner {
	if c == nil {
		return nil
	}
	return c.combiner
}

// Privileged reports whether the context carries the purely-privileged
// marker: an empty, unrestricted context that grants everything.
func (c *Context) Privileged() bool {
	return c != nil && c.privileged && len(c.domains) == 0 && c.parent == nil
}

// dedupeDomains drops nils and collapses duplicates by identity, keeping
// first-seen order.
func dedupeDomains(domains []*ProtectionDomain) []*ProtectionDomain {
	kept := make([]*ProtectionDomain, 0, len(domains))
	seen := make(map[*ProtectionDomain]struct{}, len(domains))
	for _, d := range domains {
		if d == nil {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		kept = append(kept, d)
	}
	return kept
}
