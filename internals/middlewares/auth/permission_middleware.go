package auth

import (
	"github.com/gofiber/fiber/v2"

	"litefarm_backend/internals/constants"
)

// CheckScope gates a route on a permission string. The 403 body format is
// the one the web app matches on, so it stays plain text.
func CheckScope(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID, ok := c.Locals(LocalRoleID).(int)
		if !ok {
			return c.Status(fiber.StatusForbidden).
				SendString("User does not have the following permission(s): " + permission)
		}
		if !constants.RoleHasPermission(roleID, permission) {
			return c.Status(fiber.StatusForbidden).
				SendString("User does not have the following permission(s): " + permission)
		}
		return c.Next()
	}
}
