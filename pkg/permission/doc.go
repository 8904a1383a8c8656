// Package permission defines the capability contract used by the guardkit
// authorization engine: a Permission is an immutable token that can answer
// whether it implies another requested permission.
//
// The package ships one concrete implementation, Scope, a hierarchical
// dotted permission string with wildcard support, plus Set, an immutable
// collection with a combined implication test, and All, the permission that
// implies everything.
//
// # Scopes
//
// A Scope is an opaque token that understands three syntactic conventions:
//
//   - "." separates hierarchy levels, e.g. "file.read", "admin.users".
//   - "*" as a full scope matches any permission.
//   - "*" as a suffix (e.g. "admin.*") matches everything inside that
//     hierarchy level.
//
// Implication follows these rules:
//
//	permission.Scope("file.*").Implies(permission.Scope("file.read")) // true
//	permission.Scope("file.read").Implies(permission.Scope("file.*")) // false
//	permission.Scope("*").Implies(anything)                           // true
//
// # Sets
//
// A Set holds the permissions statically granted to a protection domain.
// Set.Implies reports whether any member implies the requested permission:
//
//	granted := permission.NewSet(
//	    permission.Scope("file.read"),
//	    permission.Scope("net.*"),
//	)
//	granted.Implies(permission.Scope("net.connect")) // true
//	granted.Implies(permission.Scope("file.write"))  // false
//
// # Helpers
//
// Parse, Join, Normalize and Validate convert between white-space separated
// scope lists and []Scope values, deduplicate, and check scopes against an
// allow-list. Validate reports ErrInvalidScope-style failures as a plain
// bool; the sentinel exists for callers that need an error value.
//
// All types in this package are immutable and safe for concurrent use.
package permission
