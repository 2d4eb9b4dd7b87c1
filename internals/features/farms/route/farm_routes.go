// file: internals/features/farms/route/farm_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"litefarm_backend/internals/constants"
	farmController "litefarm_backend/internals/features/farms/controller"
	authMiddleware "litefarm_backend/internals/middlewares/auth"
)

// FarmRoutes wires farms and membership. Farm creation only needs a
// bearer token (there is no farm to scope to yet); everything else goes
// through the farm-context + scope chain. The /user_farm mutations carry
// farm_id in the body, so the farm-context middleware picks it up from
// the farm_id header.
func FarmRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := farmController.NewFarmController(db)

	farm := api.Group("/farm", authMiddleware.AuthMiddleware())
	farm.Post("/", ctrl.CreateFarm)
	farm.Get("/:farm_id",
		authMiddleware.FarmContext(db),
		ctrl.GetFarm,
	)

	api.Get("/user/:user_id/farm",
		authMiddleware.AuthMiddleware(),
		ctrl.GetUserFarms,
	)

	userFarm := api.Group("/user_farm",
		authMiddleware.AuthMiddleware(),
		authMiddleware.FarmContext(db),
	)
	userFarm.Post("/",
		authMiddleware.CheckScope(constants.PermAddUserFarms),
		ctrl.InviteUser,
	)
	userFarm.Patch("/role",
		authMiddleware.CheckScope(constants.PermEditUserFarms),
		ctrl.UpdateRole,
	)
	userFarm.Patch("/status",
		authMiddleware.CheckScope(constants.PermEditUserFarms),
		ctrl.UpdateStatus,
	)
}
