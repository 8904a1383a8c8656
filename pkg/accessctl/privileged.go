package accessctl

import "context"

// Action is a privileged computation that cannot fail with a recoverable
// error. It receives the derived context carrying the elevated frame; checks
// made through any other context are unaffected by the elevation.
type Action[T any] func(ctx context.Context) T

// ActionWithError is a privileged computation that may fail. A non-nil
// error is re-signaled by the DoPrivileged*WithError variants as a
// *PrivilegedActionError carrying it as the cause.
type ActionWithError[T any] func(ctx context.Context) (T, error)

// DoPrivileged runs action with privilege elevated on behalf of the
// caller's domain: permission checks made through the action's context stop
// walking the chain at this elevation point, so outer callers' domains are
// never consulted. The elevation ends when action returns, on every exit
// path; a panic propagates untouched and leaves the caller's context exactly
// as it was.
//
// Any combiner on the current chain is ignored while action runs; use
// DoPrivilegedWithCombiner to preserve it.
//
// A nil action panics with ErrNilAction.
func DoPrivileged[T any](ctx context.Context, action Action[T]) T {
	if action == nil {
		panic(ErrNilAction)
	}
	return action(pushElevated(ctx, elevPrivileged, nil))
}

// DoPrivilegedRestricted is DoPrivileged with an additional restriction:
// every permission checked inside action must be authorized by acc as well
// as by the caller's domain. A nil acc applies no restriction and behaves
// exactly like DoPrivileged.
//
// A nil action panics with ErrNilAction.
func DoPrivilegedRestricted[T any](ctx context.Context, action Action[T], acc *Context) T {
	if action == nil {
		panic(ErrNilAction)
	}
	if acc == nil {
		return action(pushElevated(ctx, elevPrivileged, nil))
	}
	return action(pushElevated(ctx, elevRestricted, acc))
}

// DoPrivilegedWithCombiner runs action with privilege elevated while
// preserving the combiner active on the current chain, so checks inside the
// action still reflect it. It manufactures a restricting context for the
// immediate caller's domain: combiner.Combine([caller], nil) when a combiner
// is active, the plain single-domain context otherwise, then delegates to
// DoPrivilegedRestricted.
//
// A nil action panics with ErrNilAction.
func DoPrivilegedWithCombiner[T any](ctx context.Context, action Action[T]) T {
	if action == nil {
		panic(ErrNilAction)
	}

	snap := snapshotContext(ctx)
	if snap == nil {
		return DoPrivileged(ctx, action)
	}
	return DoPrivilegedRestricted(ctx, action, preserveCombiner(ctx, snap.combiner))
}

// DoPrivilegedWithError is the checked-failure counterpart of DoPrivileged:
// a non-nil error from action is captured and re-signaled as a
// *PrivilegedActionError with the original cause retrievable via Unwrap.
// Panics propagate untouched through the unwound elevation.
//
// A nil action returns ErrNilAction.
func DoPrivilegedWithError[T any](ctx context.Context, action ActionWithError[T]) (T, error) {
	var zero T
	if action == nil {
		return zero, ErrNilAction
	}

	v, err := action(pushElevated(ctx, elevPrivileged, nil))
	if err != nil {
		return zero, &PrivilegedActionError{cause: err}
	}
	return v, nil
}

// DoPrivilegedRestrictedWithError is the checked-failure counterpart of
// DoPrivilegedRestricted.
//
// A nil action returns ErrNilAction.
func DoPrivilegedRestrictedWithError[T any](ctx context.Context, action ActionWithError[T], acc *Context) (T, error) {
	var zero T
	if action == nil {
		return zero, ErrNilAction
	}

	elev, restrict := elevRestricted, acc
	if acc == nil {
		elev, restrict = elevPrivileged, nil
	}

	v, err := action(pushElevated(ctx, elev, restrict))
	if err != nil {
		return zero, &PrivilegedActionError{cause: err}
	}
	return v, nil
}

// DoPrivilegedWithCombinerAndError is the checked-failure counterpart of
// DoPrivilegedWithCombiner.
//
// A nil action returns ErrNilAction.
func DoPrivilegedWithCombinerAndError[T any](ctx context.Context, action ActionWithError[T]) (T, error) {
	var zero T
	if action == nil {
		return zero, ErrNilAction
	}

	snap := snapshotContext(ctx)
	if snap == nil {
		return DoPrivilegedWithError(ctx, action)
	}
	return DoPrivilegedRestrictedWithError(ctx, action, preserveCombiner(ctx, snap.combiner))
}

// preserveCombiner builds the single-domain restricting context for the
// immediate caller of a with-combiner elevation. The combiner, when present,
// is applied to the caller's domain alone and carried on the result.
func preserveCombiner(ctx context.Context, combiner DomainCombiner) *Context {
	var callers []*ProtectionDomain
	if pd := callerDomain(ctx); pd != nil {
		callers = []*ProtectionDomain{pd}
	}

	if combiner == nil {
		if len(callers) == 0 {
			// Boot-level caller with no domain: nothing to restrict by.
			return nil
		}
		return NewContext(callers...)
	}
	return NewContextWithCombiner(combiner.Combine(callers, nil), combiner)
}
