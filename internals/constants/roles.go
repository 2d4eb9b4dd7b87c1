package constants

// Role ids as stored on user_farm rows. The gap at 4 is historical: the
// original schema reserved it before the extension-officer role landed.
const (
	RoleOwner            = 1
	RoleManager          = 2
	RoleWorker           = 3
	RoleExtensionOfficer = 5
)

// user_farm.status values
const (
	FarmStatusActive   = "Active"
	FarmStatusInvited  = "Invited"
	FarmStatusInactive = "Inactive"
)

// users.status values
const (
	UserStatusActive       = 1
	UserStatusInvited      = 2
	UserStatusResetPending = 3
)

/* =========================
   Permission scopes
   ========================= */

const (
	PermAddLogs    = "add:logs"
	PermGetLogs    = "get:logs"
	PermEditLogs   = "edit:logs"
	PermDeleteLogs = "delete:logs"

	PermAddExpenses    = "add:expenses"
	PermGetExpenses    = "get:expenses"
	PermDeleteExpenses = "delete:expenses"

	PermAddExpenseTypes = "add:expense_types"
	PermGetExpenseTypes = "get:expense_types"

	PermAddShifts    = "add:shifts"
	PermGetShifts    = "get:shifts"
	PermDeleteShifts = "delete:shifts"

	PermAddFields = "add:fields"
	PermGetFields = "get:fields"

	PermAddFieldCrops = "add:field_crops"
	PermGetFieldCrops = "get:field_crops"

	PermGetUserFarms  = "get:user_farms"
	PermAddUserFarms  = "add:user_farms"
	PermEditUserFarms = "edit:user_farms"
)

// rolePermissions maps each farm role to the scopes it is granted.
// Workers can record their own work (logs, shifts, expenses) but cannot
// remove records or manage membership.
var rolePermissions = map[int]map[string]bool{
	RoleOwner: grant(
		PermAddLogs, PermGetLogs, PermEditLogs, PermDeleteLogs,
		PermAddExpenses, PermGetExpenses, PermDeleteExpenses,
		PermAddExpenseTypes, PermGetExpenseTypes,
		PermAddShifts, PermGetShifts, PermDeleteShifts,
		PermAddFields, PermGetFields, PermAddFieldCrops, PermGetFieldCrops,
		PermGetUserFarms, PermAddUserFarms, PermEditUserFarms,
	),
	RoleManager: grant(
		PermAddLogs, PermGetLogs, PermEditLogs, PermDeleteLogs,
		PermAddExpenses, PermGetExpenses, PermDeleteExpenses,
		PermAddExpenseTypes, PermGetExpenseTypes,
		PermAddShifts, PermGetShifts, PermDeleteShifts,
		PermAddFields, PermGetFields, PermAddFieldCrops, PermGetFieldCrops,
		PermGetUserFarms, PermAddUserFarms, PermEditUserFarms,
	),
	RoleWorker: grant(
		PermAddLogs, PermGetLogs, PermEditLogs,
		PermAddExpenses, PermGetExpenses,
		PermGetExpenseTypes,
		PermAddShifts, PermGetShifts,
		PermGetFields, PermGetFieldCrops,
		PermGetUserFarms,
	),
	RoleExtensionOfficer: grant(
		PermAddLogs, PermGetLogs, PermEditLogs, PermDeleteLogs,
		PermAddExpenses, PermGetExpenses, PermDeleteExpenses,
		PermAddExpenseTypes, PermGetExpenseTypes,
		PermAddShifts, PermGetShifts, PermDeleteShifts,
		PermAddFields, PermGetFields, PermAddFieldCrops, PermGetFieldCrops,
		PermGetUserFarms, PermAddUserFarms, PermEditUserFarms,
	),
}

func grant(perms ...string) map[string]bool {
	m := make(map[string]bool, len(perms))
	for _, p := range perms {
		m[p] = true
	}
	return m
}

// RoleHasPermission reports whether the given farm role is granted perm.
// Unknown roles have no permissions.
func RoleHasPermission(roleID int, perm string) bool {
	return rolePermissions[roleID][perm]
}
