package policy

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/guardkit/pkg/permission"
)

// inMemSource is a Source backed by a grant map captured at construction
// time. It makes defensive copies so later mutation of the input cannot
// change loaded policy.
type inMemSource struct {
	grants map[string][]permission.Permission
}

// NewInMemSource creates a source from a map of domain name to granted
// permissions. The map and its slices are deep-copied.
func NewInMemSource(grants map[string][]permission.Permission) Source {
	grantsCopy := make(map[string][]permission.Permission, len(grants))
	for name, perms := range grants {
		permsCopy := make([]permission.Permission, len(perms))
		copy(permsCopy, perms)
		grantsCopy[name] = permsCopy
	}
	return &inMemSource{grants: grantsCopy}
}

// Load returns the captured grant map.
func (s *inMemSource) Load(ctx context.Context) (map[string][]permission.Permission, error) {
	out := make(map[string][]permission.Permission, len(s.grants))
	for name, perms := range s.grants {
		permsCopy := make([]permission.Permission, len(perms))
		copy(permsCopy, perms)
		out[name] = permsCopy
	}
	return out, nil
}

// ScopeSourceOption configures a scope source.
type ScopeSourceOption func(*scopeSource)

// WithAllowedScopes limits the universe of grantable scopes. Grants outside
// the allow-list fail Load with ErrInvalidGrant. Patterns may use the usual
// wildcard forms ("admin.*", "*").
func WithAllowedScopes(allowed ...string) ScopeSourceOption {
	return func(s *scopeSource) {
		s.allowed = make([]permission.Scope, 0, len(allowed))
		for _, a := range allowed {
			s.allowed = append(s.allowed, permission.Scope(a))
		}
	}
}

// scopeSource is a Source working with plain scope strings, the common case
// for policy assembled from configuration.
type scopeSource struct {
	grants  map[string][]string
	allowed []permission.Scope
}

// NewScopeSource creates a source from a map of domain name to scope
// strings. Scopes are validated syntactically, and against the allow-list
// when WithAllowedScopes is given, at Load time.
func NewScopeSource(grants map[string][]string, opts ...ScopeSourceOption) Source {
	grantsCopy := make(map[string][]string, len(grants))
	for name, scopes := range grants {
		scopesCopy := make([]string, len(scopes))
		copy(scopesCopy, scopes)
		grantsCopy[name] = scopesCopy
	}

	s := &scopeSource{grants: grantsCopy}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load validates and converts the grant map into permissions.
func (s *scopeSource) Load(ctx context.Context) (map[string][]permission.Permission, error) {
	out := make(map[string][]permission.Permission, len(s.grants))
	for name, scopes := range s.grants {
		perms := make([]permission.Permission, 0, len(scopes))
		for _, raw := range scopes {
			scope := permission.Scope(raw)
			if !scope.Valid() {
				return nil, fmt.Errorf("%w: domain %q: %w: %q", ErrInvalidGrant, name, permission.ErrInvalidScope, raw)
			}
			if s.allowed != nil && !permission.Validate([]permission.Scope{scope}, s.allowed) {
				return nil, fmt.Errorf("%w: domain %q: scope %q not in allowed list", ErrInvalidGrant, name, raw)
			}
			perms = append(perms, scope)
		}
		out[name] = perms
	}
	return out, nil
}
