// Package accessctl implements a stack-based authorization engine: code
// runs inside protection-domain scopes, may temporarily elevate its
// privilege, and sensitive operations check that every logical caller on
// the current execution chain, up to the nearest elevation point, holds the
// requested permission.
//
// # Model
//
// A ProtectionDomain binds a unit of code to the permission set it was
// granted when it was constructed. Entering a scope of execution records the
// domain on the chain; a permission check walks the chain from the innermost
// frame outward and demands that every recorded domain holds the permission.
// The walk stops early at a privileged frame, so trusted code can perform a
// sensitive operation on behalf of less trusted callers without those
// callers needing the permission themselves.
//
// Go has no thread-local storage, so the per-thread frame stack of the
// classic design is carried explicitly on context.Context: pushing a frame
// derives a child context, and popping is the derived context going out of
// scope. Nesting is LIFO and exception-safe by construction; a panicking
// action can never leave a stale frame visible through the caller's context.
//
// # Usage
//
//	fileRead := permission.Scope("file.read")
//
//	app := accessctl.NewDomain("app", permission.NewScopeSet("file.read"))
//	ctx := accessctl.WithDomain(context.Background(), app)
//
//	if err := accessctl.CheckPermission(ctx, fileRead); err != nil {
//	    return err // every domain on the chain must hold file.read
//	}
//
// Privilege elevation stops the walk at the elevating frame:
//
//	data := accessctl.DoPrivileged(ctx, func(ctx context.Context) []byte {
//	    // checks in here succeed on the elevating domain's own authority,
//	    // regardless of what the outer callers hold
//	    return readConfig(ctx)
//	})
//
// DoPrivilegedRestricted additionally requires an independent, previously
// captured Context to authorize every check made inside the action.
//
// # Snapshots
//
// GetContext freezes the current chain into an immutable Context that can be
// checked later, on any goroutine:
//
//	acc := accessctl.GetContext(ctx)
//	go func() {
//	    err := acc.Check(fileRead) // same outcome as at capture time
//	    ...
//	}()
//
// SpawnContext captures the chain as the inherited context of a new
// goroutine: checks in the child fall back to the snapshot once the child's
// own (initially empty) chain is exhausted.
//
// # Errors
//
// Denials are *AccessError values wrapping ErrAccessDenied and carrying the
// rejected permission. Checked failures inside the error-returning
// DoPrivileged variants are wrapped in *PrivilegedActionError; panics
// propagate untouched. The engine never logs and never recovers; an optional
// Observer receives decision outcomes after the fact and cannot alter them.
package accessctl
