// file: internals/features/logs/route/log_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"litefarm_backend/internals/constants"
	logController "litefarm_backend/internals/features/logs/controller"
	authMw "litefarm_backend/internals/middlewares/auth"
)

// LogRoutes mounts the activity-log endpoints. Routes without a farm_id
// param resolve the farm from the farm_id header via FarmContext.
func LogRoutes(api fiber.Router, db *gorm.DB) {
	ctl := logController.NewLogController(db)

	grp := api.Group("/log", authMw.AuthMiddleware(), authMw.FarmContext(db))
	{
		grp.Post("/", authMw.CheckScope(constants.PermAddLogs), ctl.AddLog)
		grp.Get("/farm/:farm_id", authMw.CheckScope(constants.PermGetLogs), ctl.GetLogsByFarmID)
		grp.Get("/:activity_id", authMw.CheckScope(constants.PermGetLogs), ctl.GetLogByActivityID)
		grp.Put("/:activity_id?", authMw.CheckScope(constants.PermEditLogs), ctl.PutLog)
		grp.Delete("/:activity_id?", authMw.CheckScope(constants.PermDeleteLogs), ctl.DeleteLog)
	}
}
