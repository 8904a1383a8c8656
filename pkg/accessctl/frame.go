package accessctl

import "context"

// elevation marks how, if at all, a frame elevated privilege.
type elevation int

const (
	// elevNone: plain domain scope, the walk continues outward.
	elevNone elevation = iota
	// elevPrivileged: unrestricted elevation, the walk stops here.
	elevPrivileged
	// elevRestricted: elevation restricted by a captured Context, the walk
	// stops here and the restriction must independently authorize.
	elevRestricted
)

// frame is one entry of the logical call-chain stack. Frames form an
// immutable linked chain carried on context.Context: pushing derives a child
// context, popping is the child context going out of scope. A frame never
// outlives the scope that pushed it, and the chain is strictly nested per
// execution path, so no locking is needed.
type frame struct {
	parent   *frame
	domain   *ProtectionDomain
	elev     elevation
	restrict *Context // non-nil only when elev == elevRestricted
}

type frameCtxKey struct{}

type inheritedCtxKey struct{}

// WithDomain enters a plain (non-elevated) protection-domain scope: checks
// made through the returned context require d to hold the permission, in
// addition to every domain already on the chain. A nil domain returns ctx
// unchanged.
func WithDomain(ctx context.Context, d *ProtectionDomain) context.Context {
	if d == nil {
		return ctx
	}
	return context.WithValue(ctx, frameCtxKey{}, &frame{
		parent: currentFrame(ctx),
		domain: d,
		elev:   elevNone,
	})
}

// pushElevated derives a context whose innermost frame elevates privilege on
// behalf of the caller's domain (the domain of the innermost frame at the
// call site, possibly nil for boot-level code).
func pushElevated(ctx context.Context, elev elevation, restrict *Context) context.Context {
	top := currentFrame(ctx)
	var caller *ProtectionDomain
	if top != nil {
		caller = top.domain
	}
	return context.WithValue(ctx, frameCtxKey{}, &frame{
		parent:   top,
		domain:   caller,
		elev:     elev,
		restrict: restrict,
	})
}

// currentFrame returns the innermost frame recorded on ctx, or nil.
func currentFrame(ctx context.Context) *frame {
	f, _ := ctx.Value(frameCtxKey{}).(*frame)
	return f
}

// callerDomain returns the protection domain of the innermost frame, or nil
// when the chain is empty (boot-level code).
func callerDomain(ctx context.Context) *ProtectionDomain {
	if f := currentFrame(ctx); f != nil {
		return f.domain
	}
	return nil
}

// SpawnContext prepares a context for a newly spawned goroutine. The current
// chain is frozen via GetContext and becomes the child's inherited context:
// it is consulted only when a check on the child exhausts the child's own
// live chain without hitting an elevation point. The child starts with an
// empty live chain; cancellation and other values of ctx are preserved.
//
// The inherited context is set exactly once, here, by the spawning
// goroutine, and is read-only thereafter.
func SpawnContext(ctx context.Context) context.Context {
	inherited := GetContext(ctx)
	ctx = context.WithValue(ctx, inheritedCtxKey{}, inherited)
	return context.WithValue(ctx, frameCtxKey{}, (*frame)(nil))
}

// Go runs fn on a new goroutine with a context prepared by SpawnContext.
func Go(ctx context.Context, fn func(context.Context)) {
	child := SpawnContext(ctx)
	go fn(child)
}

// inheritedContext returns the context captured when this execution was
// spawned, or nil when none was recorded (boot-level execution).
func inheritedContext(ctx context.Context) *Context {
	acc, _ := ctx.Value(inheritedCtxKey{}).(*Context)
	return acc
}
