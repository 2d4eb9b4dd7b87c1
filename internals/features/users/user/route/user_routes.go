// file: internals/features/users/user/route/user_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "litefarm_backend/internals/features/users/user/controller"
	authMiddleware "litefarm_backend/internals/middlewares/auth"
)

// UserRoutes wires the profile endpoints. These are farm-agnostic, so
// only the bearer token is required. The farms-of-a-user listing under
// /user/:user_id/farm is registered by the farms feature.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	user := api.Group("/user", authMiddleware.AuthMiddleware())
	user.Get("/:user_id", ctrl.GetUser)
	user.Put("/:user_id", ctrl.UpdateUser)
}
