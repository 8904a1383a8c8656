package accessctl

import (
	"context"

	"github.com/dmitrymomot/guardkit/pkg/permission"
)

// CheckPermission decides whether the access indicated by p is allowed for
// the current execution chain. It returns nil quietly when allowed and an
// *AccessError wrapping ErrAccessDenied otherwise.
//
// The decision walks the chain from the innermost frame outward: every
// domain encountered must hold p. The walk stops at an unrestricted
// privileged frame (privilege caps the walk), or at a restricted privileged
// frame, whose restricting context must then independently authorize p. If
// the walk exhausts the chain without any elevation, the inherited context
// recorded at spawn time is consulted as the tail. A chain with no frames,
// no elevation and no inherited context is boot-level code and passes
// unconditionally.
//
// A nil permission is a programming error and fails with ErrNilPermission
// before any walk.
func CheckPermission(ctx context.Context, p permission.Permission) error {
	if p == nil {
		return ErrNilPermission
	}

	snap := snapshotContext(ctx)
	if snap == nil {
		// Only fully trusted code on the chain.
		notifyObserver(ctx, p, nil)
		return nil
	}

	err := snap.Optimize().Check(p)
	notifyObserver(ctx, p, err)
	return err
}

// GetContext takes a snapshot of the current execution chain, including the
// inherited context, and freezes it into an immutable Context for later
// checking, possibly on another goroutine. The empty chain yields the
// canonical fully privileged context rather than nil, so downstream Check
// calls are always well-defined.
func GetContext(ctx context.Context) *Context {
	snap := snapshotContext(ctx)
	if snap == nil {
		return fullTrust
	}
	return snap.Optimize()
}

// snapshotContext walks the live frame chain from the most recently pushed
// frame outward and assembles the raw authorization context. It returns nil
// when the walk finds no domains, no elevation, and no inherited context:
// the implicit-full-trust boot path.
func snapshotContext(ctx context.Context) *Context {
	var collected []*ProtectionDomain
	var assigned *Context
	privileged := false
	restricted := false

	for f := currentFrame(ctx); f != nil; f = f.parent {
		if f.domain != nil {
			collected = append(collected, f.domain)
		}
		if f.elev == elevPrivileged {
			privileged = true
			break
		}
		if f.elev == elevRestricted {
			restricted = true
			assigned = f.restrict
			break
		}
	}

	if !privileged && !restricted {
		assigned = inheritedContext(ctx)
	}

	// A purely privileged, combiner-free context imposes no restriction and
	// contributes no domains; treating it as absent keeps the boot path and
	// the privileged-tail cases canonical.
	if assigned != nil && assigned.Privileged() && assigned.combiner == nil {
		assigned = nil
		if restricted {
			restricted = false
			privileged = true
		}
	}

	collected = dedupeDomains(collected)

	if privileged {
		// Privilege caps the walk; the inherited context is never consulted.
		return &Context{domains: collected, privileged: true}
	}

	if assigned == nil {
		if len(collected) == 0 {
			return nil
		}
		return &Context{domains: collected}
	}

	// Merge the assigned (restricting or inherited) context in as the tail.
	// A combiner attached along the way replaces naive concatenation and is
	// recorded on the result so re-derivations stay consistent.
	var parent *Context
	if restricted {
		parent = assigned
	} else {
		parent = assigned.parent
	}

	if combiner := assigned.combiner; combiner != nil {
		combined := combiner.Combine(collected, assigned.Domains())
		return &Context{
			domains:  dropNilDomains(combined),
			combiner: combiner,
			parent:   parent,
		}
	}

	return &Context{
		domains: dedupeDomains(append(collected, assigned.domains...)),
		parent:  parent,
	}
}

// dropNilDomains removes nil entries but deliberately preserves order and
// duplicates: a combiner's result is stored verbatim until Optimize.
func dropNilDomains(domains []*ProtectionDomain) []*ProtectionDomain {
	kept := make([]*ProtectionDomain, 0, len(domains))
	for _, d := range domains {
		if d != nil {
			kept = append(kept, d)
		}
	}
	return kept
}
