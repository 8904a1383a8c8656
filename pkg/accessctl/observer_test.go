package accessctl_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/pkg/accessctl"
	"github.com/dmitrymomot/guardkit/pkg/permission"
)

// recordingObserver collects decisions for a single permission name so
// unrelated tests running in parallel cannot pollute the assertions.
type recordingObserver struct {
	mu     sync.Mutex
	filter string
	seen   []error
}

func (o *recordingObserver) Decision(ctx context.Context, p permission.Permission, err error) {
	if p.Name() != o.filter {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, err)
}

func TestObserver(t *testing.T) {
	// Not parallel: the observer is a process-wide singleton.
	perm := permission.Scope("observer.test.unique")
	obs := &recordingObserver{filter: perm.Name()}

	accessctl.SetObserver(obs)
	defer accessctl.SetObserver(nil)

	holder := newDomain("holder", "observer.test.unique")
	lacker := newDomain("lacker", "something.else")

	assert.NoError(t, accessctl.CheckPermission(accessctl.WithDomain(context.Background(), holder), perm))
	assert.Error(t, accessctl.CheckPermission(accessctl.WithDomain(context.Background(), lacker), perm))

	obs.mu.Lock()
	defer obs.mu.Unlock()
	require.Len(t, obs.seen, 2)
	assert.NoError(t, obs.seen[0])
	assert.ErrorIs(t, obs.seen[1], accessctl.ErrAccessDenied)
}

func TestObserverCannotAlterOutcome(t *testing.T) {
	// Not parallel: the observer is a process-wide singleton.
	// The observer sees the decision after the fact; whatever it does, the
	// caller already has the result.
	perm := permission.Scope("observer.outcome.unique")
	obs := &recordingObserver{filter: perm.Name()}

	accessctl.SetObserver(obs)
	defer accessctl.SetObserver(nil)

	lacker := newDomain("lacker", "nothing.relevant")
	err := accessctl.CheckPermission(accessctl.WithDomain(context.Background(), lacker), perm)
	assert.ErrorIs(t, err, accessctl.ErrAccessDenied)
}
