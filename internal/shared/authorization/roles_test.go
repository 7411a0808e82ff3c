package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleSupervisor, ParseUserRole(" Supervisor "))
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleAgent, ParseUserRole("root"))
}

func TestCanManageRouting(t *testing.T) {
	assert.True(t, RoleAdmin.CanManageRouting())
	assert.True(t, RoleSupervisor.CanManageRouting())
	assert.False(t, RoleAgent.CanManageRouting())
}
