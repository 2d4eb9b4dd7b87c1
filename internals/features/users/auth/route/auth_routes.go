// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "litefarm_backend/internals/features/users/auth/controller"
	"litefarm_backend/internals/middlewares"
)

// AuthRoutes wires the unauthenticated login endpoints. Credential
// attempts sit behind the tighter login rate limiter.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	login := api.Group("/login")
	login.Post("/", middlewares.LoginRateLimiter(), ctrl.Login)
	// SSO callback, id_token arrives as a query param (POST body also accepted)
	login.Get("/google", ctrl.LoginWithGoogle)
	login.Post("/google", ctrl.LoginWithGoogle)
	login.Get("/:email", ctrl.GetUserStatusByEmail)
}
