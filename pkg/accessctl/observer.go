package accessctl

import (
	"context"
	"sync/atomic"

	"github.com/dmitrymomot/guardkit/pkg/permission"
)

// Observer receives the outcome of permission decisions for diagnostics.
// It is consulted strictly after the decision is made and cannot alter it;
// err is nil when access was allowed. Implementations must be safe for
// concurrent use and must not block.
type Observer interface {
	Decision(ctx context.Context, p permission.Permission, err error)
}

// observerHolder wraps the interface value so atomic.Value sees one
// consistent concrete type across stores.
type observerHolder struct {
	o Observer
}

var currentObserver atomic.Value // observerHolder

// SetObserver installs the process-wide decision observer. Passing nil
// removes it. There is at most one observer, mirroring the single static
// debug switch of the original design.
func SetObserver(o Observer) {
	currentObserver.Store(observerHolder{o: o})
}

func notifyObserver(ctx context.Context, p permission.Permission, err error) {
	h, ok := currentObserver.Load().(observerHolder)
	if !ok || h.o == nil {
		return
	}
	h.o.Decision(ctx, p, err)
}
