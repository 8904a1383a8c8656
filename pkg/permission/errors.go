package permission

import "errors"

// ErrInvalidScope is returned when a scope string is syntactically invalid,
// e.g. empty after trimming or containing embedded whitespace.
var ErrInvalidScope = errors.New("permission: invalid scope format")
