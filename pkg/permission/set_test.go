package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/pkg/permission"
)

func TestNewSet(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates by name keeping first-seen order", func(t *testing.T) {
		t.Parallel()
		s := permission.NewSet(
			permission.Scope("file.read"),
			permission.Scope("net.connect"),
			permission.Scope("file.read"),
		)
		require.Equal(t, 2, s.Len())

		perms := s.Permissions()
		assert.Equal(t, "file.read", perms[0].Name())
		assert.Equal(t, "net.connect", perms[1].Name())
	})

	t.Run("drops nils", func(t *testing.T) {
		t.Parallel()
		s := permission.NewSet(nil, permission.Scope("read"), nil)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()
		var s permission.Set
		assert.Equal(t, 0, s.Len())
		assert.Nil(t, s.Permissions())
		assert.False(t, s.Implies(permission.Scope("read")))
	})
}

func TestSetImplies(t *testing.T) {
	t.Parallel()

	s := permission.NewScopeSet("file.read", "net.*")

	assert.True(t, s.Implies(permission.Scope("file.read")))
	assert.True(t, s.Implies(permission.Scope("net.connect")))
	assert.False(t, s.Implies(permission.Scope("file.write")))
	assert.False(t, s.Implies(nil))
}

func TestSetGrantsAll(t *testing.T) {
	t.Parallel()

	assert.False(t, permission.NewScopeSet("file.read").GrantsAll())
	assert.False(t, permission.NewScopeSet("file.*").GrantsAll())
	assert.True(t, permission.NewScopeSet("*").GrantsAll())
	assert.True(t, permission.NewSet(permission.All()).GrantsAll())
}

func TestSetImmutability(t *testing.T) {
	t.Parallel()

	s := permission.NewScopeSet("file.read")
	perms := s.Permissions()
	perms[0] = permission.Scope("file.write")

	// Mutating the returned copy must not affect the set.
	assert.True(t, s.Implies(permission.Scope("file.read")))
	assert.False(t, s.Implies(permission.Scope("file.write")))
}
