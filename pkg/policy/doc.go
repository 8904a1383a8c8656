// Package policy supplies protection domains with their statically granted
// permission sets. It is the construction-time collaborator of the
// accessctl engine: a Source is consulted exactly once, when domains are
// built, and never re-queried during permission checks.
//
// The package deliberately does not define a policy file format; it works
// with in-memory grant maps and leaves parsing of external formats to the
// application.
//
// # Usage
//
//	src := policy.NewScopeSource(map[string][]string{
//	    "app":    {"file.read", "net.*"},
//	    "plugin": {"file.read"},
//	})
//
//	domains, err := policy.NewDomainSet(ctx, src)
//	if err != nil {
//	    return err
//	}
//
//	app, err := domains.Domain("app")
//	if err != nil {
//	    return err // policy.ErrUnknownDomain
//	}
//	ctx = accessctl.WithDomain(ctx, app)
//
// Grant scopes can be validated against an allow-list at source construction
// time with WithAllowedScopes; invalid or disallowed scopes surface as
// ErrInvalidGrant when the domain set is built.
package policy
