// file: internals/features/shifts/route/shift_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"litefarm_backend/internals/constants"
	shiftController "litefarm_backend/internals/features/shifts/controller"
	authMw "litefarm_backend/internals/middlewares/auth"
)

func ShiftRoutes(api fiber.Router, db *gorm.DB) {
	ctl := shiftController.NewShiftController(db)

	grp := api.Group("/shift", authMw.AuthMiddleware(), authMw.FarmContext(db))
	{
		grp.Post("/", authMw.CheckScope(constants.PermAddShifts), ctl.AddShift)
		grp.Get("/farm/:farm_id", authMw.CheckScope(constants.PermGetShifts), ctl.GetShiftsByFarm)
		grp.Get("/user/:user_id", authMw.CheckScope(constants.PermGetShifts), ctl.GetShiftsByUser)
		grp.Get("/:shift_id", authMw.CheckScope(constants.PermGetShifts), ctl.GetShiftByID)
		grp.Delete("/:shift_id", authMw.CheckScope(constants.PermDeleteShifts), ctl.DeleteShift)
	}
}
