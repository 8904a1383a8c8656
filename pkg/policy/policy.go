package policy

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmitrymomot/guardkit/pkg/accessctl"
	"github.com/dmitrymomot/guardkit/pkg/permission"
)

// Source provides the static permission grants for named protection
// domains. Load is called once, when a DomainSet is built.
type Source interface {
	// Load returns a map from domain name to granted permissions.
	Load(ctx context.Context) (map[string][]permission.Permission, error)
}

// DomainSet holds one immutable protection domain per named grant. It is
// safe for concurrent use after construction.
type DomainSet struct {
	domains map[string]*accessctl.ProtectionDomain
	names   []string
}

// NewDomainSet loads the source and builds a protection domain for every
// named grant. Each domain's permission set is fixed here and never
// re-queried by the engine.
func NewDomainSet(ctx context.Context, src Source) (*DomainSet, error) {
	grants, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	domains := make(map[string]*accessctl.ProtectionDomain, len(grants))
	names := make([]string, 0, len(grants))
	for name, perms := range grants {
		domains[name] = accessctl.NewDomain(name, permission.NewSet(perms...))
		names = append(names, name)
	}
	sort.Strings(names)

	return &DomainSet{domains: domains, names: names}, nil
}

// Domain returns the protection domain for name, or ErrUnknownDomain.
func (s *DomainSet) Domain(name string) (*accessctl.ProtectionDomain, error) {
	d, ok := s.domains[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, name)
	}
	return d, nil
}

// MustDomain is Domain for static policy known at startup; it panics on an
// unknown name.
func (s *DomainSet) MustDomain(name string) *accessctl.ProtectionDomain {
	d, err := s.Domain(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Names returns all domain names in the set, sorted.
func (s *DomainSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of domains in the set.
func (s *DomainSet) Len() int { return len(s.domains) }
