package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleLevelOrder(t *testing.T) {
	ordered := []string{
		RoleAnonymous, RoleSubscriber, RoleContributor, RoleAuthor, RoleEditor, RoleAdministrator,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, RoleLevel(ordered[i-1]), RoleLevel(ordered[i]))
	}
	// Unknown roles rank as anonymous.
	assert.Equal(t, RoleLevel(RoleAnonymous), RoleLevel("superhero"))
}

func TestCanManage(t *testing.T) {
	assert.True(t, CanManage(RoleAdministrator))
	assert.False(t, CanManage(RoleEditor))
	assert.False(t, CanManage(RoleSubscriber))
	assert.False(t, CanManage(RoleAnonymous))
	assert.False(t, CanManage(""))
}

func TestCanView(t *testing.T) {
	t.Run("role at or above minimum passes", func(t *testing.T) {
		assert.True(t, CanView(RoleEditor, RoleEditor))
		assert.True(t, CanView(RoleAdministrator, RoleEditor))
		assert.False(t, CanView(RoleAuthor, RoleEditor))
	})

	t.Run("anonymous passes only when minimum is subscriber", func(t *testing.T) {
		assert.True(t, CanView(RoleAnonymous, RoleSubscriber))
		assert.False(t, CanView(RoleAnonymous, RoleContributor))
		assert.False(t, CanView(RoleAnonymous, RoleAdministrator))
	})

	t.Run("unknown minimum falls back to subscriber", func(t *testing.T) {
		assert.True(t, CanView(RoleAnonymous, "bogus"))
		assert.True(t, CanView(RoleSubscriber, ""))
	})
}
