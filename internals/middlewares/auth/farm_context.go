package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"litefarm_backend/internals/constants"
)

type farmMembership struct {
	RoleID int    `gorm:"column:role_id"`
	Status string `gorm:"column:status"`
}

// FarmContext resolves the requesting user's membership on the farm named
// by the :farm_id param (or the farm_id header for routes keyed by another
// id) and stores farm_id + role_id in locals. Non-members get 403.
func FarmContext(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(LocalUserID).(string)
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing user context")
		}

		farmID := strings.TrimSpace(c.Params("farm_id"))
		if farmID == "" {
			farmID = strings.TrimSpace(c.Get("farm_id"))
		}
		if farmID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "No farm id defined")
		}

		var m farmMembership
		err := db.Table("user_farm").
			Select("role_id, status").
			Where("user_id = ? AND farm_id = ?", userID, farmID).
			Take(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusForbidden).SendString("user not authorized on farm " + farmID)
		}
		if err != nil {
			log.Printf("[ERROR] farm membership lookup: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if m.Status == constants.FarmStatusInactive {
			return c.Status(fiber.StatusForbidden).SendString("user not authorized on farm " + farmID)
		}

		c.Locals(LocalFarmID, farmID)
		c.Locals(LocalRoleID, m.RoleID)
		return c.Next()
	}
}
