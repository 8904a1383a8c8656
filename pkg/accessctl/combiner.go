package accessctl

// DomainCombiner is a caller-supplied pure function that merges two ordered
// domain lists into the effective list used for authorization. It customizes
// how a context snapshot is assembled: when a combiner is active, it is
// invoked exactly once per assembly instead of naive concatenation, and its
// result is stored verbatim on the resulting Context.
//
// current holds the domains collected from the live frame chain and may be
// empty, never nil. assigned holds the inherited or restricting domains and
// is nil when none exist. A nil result means "no domains"; combined with a
// privileged marker that is the maximally privileged context, otherwise it
// denies every non-trivial permission.
//
// Implementations must be side-effect free and safe for concurrent use; the
// engine never inspects their internals.
type DomainCombiner interface {
	Combine(current, assigned []*ProtectionDomain) []*ProtectionDomain
}

// CombinerFunc adapts a function to the DomainCombiner interface.
type CombinerFunc func(current, assigned []*ProtectionDomain) []*ProtectionDomain

// Combine calls f.
func (f CombinerFunc) Combine(current, assigned []*ProtectionDomain) []*ProtectionDomain {
	return f(current, assigned)
}
