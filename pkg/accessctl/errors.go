package accessctl

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/guardkit/pkg/permission"
)

var (
	// ErrAccessDenied is the sentinel wrapped by every authorization
	// failure. Match with errors.Is; retrieve the rejected permission with
	// errors.As on *AccessError.
	ErrAccessDenied = errors.New("accessctl: access denied")

	// ErrNilPermission is returned when a nil permission is passed to a
	// check. Programming error, reported before any chain walk.
	ErrNilPermission = errors.New("accessctl: permission cannot be nil")

	// ErrNilAction is raised when a nil action is passed to the
	// DoPrivileged family. The value-returning variants panic with it; the
	// error-returning variants return it.
	ErrNilAction = errors.New("accessctl: action cannot be nil")
)

// AccessError reports a denied permission check. It wraps ErrAccessDenied
// and records which permission was rejected and, when known, the first
// domain on the chain that lacked it.
type AccessError struct {
	// Permission is the rejected permission. Never nil.
	Permission permission.Permission

	// Domain is the domain that failed the check, or nil when the denial
	// came from an empty effective domain list (e.g. a combiner produced no
	// domains).
	Domain *ProtectionDomain
}

func (e *AccessError) Error() string {
	if e.Domain != nil {
		return fmt.Sprintf("accessctl: access denied: domain %q does not hold %q", e.Domain.Name(), e.Permission.Name())
	}
	return fmt.Sprintf("accessctl: access denied: %q", e.Permission.Name())
}

func (e *AccessError) Unwrap() error { return ErrAccessDenied }

// PrivilegedActionError wraps a checked failure raised inside a privileged
// computation run through one of the error-returning DoPrivileged variants.
// The original failure is retrievable via Cause or errors.Unwrap.
type PrivilegedActionError struct {
	cause error
}

func (e *PrivilegedActionError) Error() string {
	return fmt.Sprintf("accessctl: privileged action failed: %v", e.cause)
}

func (e *PrivilegedActionError) Unwrap() error { return e.cause }

// Cause returns the original failure raised by the action.
func (e *PrivilegedActionError) Cause() error { return e.cause }
