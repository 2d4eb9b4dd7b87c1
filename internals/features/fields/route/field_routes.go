// file: internals/features/fields/route/field_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"litefarm_backend/internals/constants"
	fieldController "litefarm_backend/internals/features/fields/controller"
	authMw "litefarm_backend/internals/middlewares/auth"
)

// FieldRoutes mounts fields, the crop catalogue, and field crops. The
// crop catalogue shares the field scopes.
func FieldRoutes(api fiber.Router, db *gorm.DB) {
	ctl := fieldController.NewFieldController(db)

	field := api.Group("/field", authMw.AuthMiddleware(), authMw.FarmContext(db))
	{
		field.Post("/farm/:farm_id", authMw.CheckScope(constants.PermAddFields), ctl.AddField)
		field.Get("/farm/:farm_id", authMw.CheckScope(constants.PermGetFields), ctl.GetFarmFields)
	}

	crop := api.Group("/crop", authMw.AuthMiddleware(), authMw.FarmContext(db))
	{
		crop.Post("/farm/:farm_id", authMw.CheckScope(constants.PermAddFields), ctl.AddCrop)
		crop.Get("/farm/:farm_id", authMw.CheckScope(constants.PermGetFields), ctl.GetFarmCrops)
	}

	fieldCrop := api.Group("/field_crop", authMw.AuthMiddleware(), authMw.FarmContext(db))
	{
		fieldCrop.Post("/farm/:farm_id", authMw.CheckScope(constants.PermAddFieldCrops), ctl.AddFieldCrop)
		fieldCrop.Get("/farm/:farm_id", authMw.CheckScope(constants.PermGetFieldCrops), ctl.GetFarmFieldCrops)
		fieldCrop.Delete("/:field_crop_id", authMw.CheckScope(constants.PermAddFieldCrops), ctl.DeleteFieldCrop)
	}
}
