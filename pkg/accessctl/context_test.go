package accessctl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/pkg/accessctl"
	"github.com/dmitrymomot/guardkit/pkg/permission"
)

var (
	permRead  = permission.Scope("file.read")
	permWrite = permission.Scope("file.write")
	permConn  = permission.Scope("net.connect")
)

func newDomain(name string, scopes ...string) *accessctl.ProtectionDomain {
	return accessctl.NewDomain(name, permission.NewScopeSet(scopes...))
}

func TestDomainHolds(t *testing.T) {
	t.Parallel()

	d := newDomain("app", "file.read", "net.*")

	assert.True(t, d.Holds(permRead))
	assert.True(t, d.Holds(permConn))
	assert.False(t, d.Holds(permWrite))
	assert.False(t, d.Holds(nil))
}

func TestContextCheck(t *testing.T) {
	t.Parallel()

	reader := newDomain("reader", "file.read")
	writer := newDomain("writer", "file.read", "file.write")

	t.Run("passes when every domain holds the permission", func(t *testing.T) {
		t.Parallel()
		acc := accessctl.NewContext(reader, writer)
		assert.NoError(t, acc.Check(permRead))
	})

	t.Run("fails on the first unauthorized domain in order", func(t *testing.T) {
		t.Parallel()
		acc := accessctl.NewContext(writer, reader)
		err := acc.Check(permWrite)
		require.Error(t, err)
		require.ErrorIs(t, err, accessctl.ErrAccessDenied)

		var denial *accessctl.AccessError
		require.ErrorAs(t, err, &denial)
		assert.Equal(t, permWrite, denial.Permission)
		assert.Same(t, reader, denial.Domain)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		acc := accessctl.NewContext(reader)
		assert.NoError(t, acc.Check(permRead))
		assert.NoError(t, acc.Check(permRead))
		assert.Error(t, acc.Check(permWrite))
		assert.Error(t, acc.Check(permWrite))
	})

	t.Run("empty unprivileged context denies everything", func(t *testing.T) {
		t.Parallel()
		acc := accessctl.NewContext()
		err := acc.Check(permRead)
		require.ErrorIs(t, err, accessctl.ErrAccessDenied)
	})

	t.Run("nil permission is a programming error", func(t *testing.T) {
		t.Parallel()
		acc := accessctl.NewContext(reader)
		err := acc.Check(nil)
		require.ErrorIs(t, err, accessctl.ErrNilPermission)
		assert.False(t, errors.Is(err, accessctl.ErrAccessDenied))
	})
}

func TestContextDedup(t *testing.T) {
	t.Parallel()

	reader := newDomain("reader", "file.read")
	acc := accessctl.NewContext(reader, reader, nil, reader)
	assert.Len(t, acc.Domains(), 1)
}

func TestContextOptimize(t *testing.T) {
	t.Parallel()

	reader := newDomain("reader", "file.read")
	writer := newDomain("writer", "file.write")
	trusted := newDomain("trusted", "*")

	t.Run("drops fully trusted domains", func(t *testing.T) {
		t.Parallel()
		acc := accessctl.NewContext(reader, trusted)
		opt := acc.Optimize()
		assert.Len(t, opt.Domains(), 1)
		assert.Same(t, reader, opt.Domains()[0])
	})

	t.Run("all-trusted context collapses to fully privileged", func(t *testing.T) {
		t.Parallel()
		acc := accessctl.NewContext(trusted)
		opt := acc.Optimize()
		assert.True(t, opt.Privileged())
		assert.NoError(t, opt.Check(permRead))
		assert.NoError(t, opt.Check(permWrite))
	})

	t.Run("preserves check outcomes", func(t *testing.T) {
		t.Parallel()

		contexts := []*accessctl.Context{
			accessctl.NewContext(),
			accessctl.NewContext(reader),
			accessctl.NewContext(reader, writer),
			accessctl.NewContext(reader, trusted),
			accessctl.NewContext(trusted),
		}
		perms := []permission.Permission{permRead, permWrite, permConn}

		for _, acc := range contexts {
			opt := acc.Optimize()
			for _, p := range perms {
				before := acc.Check(p)
				after := opt.Check(p)
				assert.Equal(t, before == nil, after == nil,
					"optimize changed outcome for %q", p.Name())
			}
		}
	})
}

func TestContextEqual(t *testing.T) {
	t.Parallel()

	reader := newDomain("reader", "file.read")
	writer := newDomain("writer", "file.write")

	concat := accessctl.CombinerFunc(func(current, assigned []*accessctl.ProtectionDomain) []*accessctl.ProtectionDomain {
		return append(current, assigned...)
	})

	tests := []struct {
		name     string
		a, b     *accessctl.Context
		expected bool
	}{
		{
			name:     "same domains same order",
			a:        accessctl.NewContext(reader, writer),
			b:        accessctl.NewContext(reader, writer),
			expected: true,
		},
		{
			name:     "order matters",
			a:        accessctl.NewContext(reader, writer),
			b:        accessctl.NewContext(writer, reader),
			expected: false,
		},
		{
			name:     "different lengths",
			a:        accessctl.NewContext(reader),
			b:        accessctl.NewContext(reader, writer),
			expected: false,
		},
		{
			name:     "combiner presence matters",
			a:        accessctl.NewContext(reader),
			b:        accessctl.NewContextWithCombiner([]*accessctl.ProtectionDomain{reader}, concat),
			expected: false,
		},
		{
			name:     "both with combiner",
			a:        accessctl.NewContextWithCombiner([]*accessctl.ProtectionDomain{reader}, concat),
			b:        accessctl.NewContextWithCombiner([]*accessctl.ProtectionDomain{reader}, concat),
			expected: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
			assert.Equal(t, tt.expected, tt.b.Equal(tt.a))
		})
	}
}
