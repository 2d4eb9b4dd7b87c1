package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerCanRecordButNotDelete(t *testing.T) {
	assert.True(t, RoleHasPermission(RoleWorker, PermAddLogs))
	assert.True(t, RoleHasPermission(RoleWorker, PermAddShifts))
	assert.True(t, RoleHasPermission(RoleWorker, PermAddExpenses))

	assert.False(t, RoleHasPermission(RoleWorker, PermDeleteLogs))
	assert.False(t, RoleHasPermission(RoleWorker, PermDeleteShifts))
	assert.False(t, RoleHasPermission(RoleWorker, PermDeleteExpenses))
	assert.False(t, RoleHasPermission(RoleWorker, PermAddUserFarms))
	assert.False(t, RoleHasPermission(RoleWorker, PermEditUserFarms))
}

func TestManagementRolesHaveFullScopes(t *testing.T) {
	for _, role := range []int{RoleOwner, RoleManager, RoleExtensionOfficer} {
		assert.True(t, RoleHasPermission(role, PermDeleteExpenses), "role %d", role)
		assert.True(t, RoleHasPermission(role, PermDeleteLogs), "role %d", role)
		assert.True(t, RoleHasPermission(role, PermAddUserFarms), "role %d", role)
	}
}

func TestUnknownRoleHasNothing(t *testing.T) {
	assert.False(t, RoleHasPermission(0, PermGetLogs))
	assert.False(t, RoleHasPermission(4, PermGetLogs))
	assert.False(t, RoleHasPermission(99, PermAddLogs))
}
