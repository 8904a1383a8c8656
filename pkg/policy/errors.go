package policy

import "errors"

var (
	// ErrUnknownDomain is returned when a domain name has no grant in the
	// loaded policy.
	ErrUnknownDomain = errors.New("policy: unknown domain")

	// ErrInvalidGrant is returned when a grant contains a syntactically
	// invalid scope or one outside the configured allow-list.
	ErrInvalidGrant = errors.New("policy: invalid grant")
)
