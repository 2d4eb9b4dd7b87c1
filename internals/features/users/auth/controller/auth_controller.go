// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"litefarm_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

// POST /login/google
func (ac *AuthController) LoginWithGoogle(c *fiber.Ctx) error {
	return service.LoginWithGoogle(ac.DB, c)
}

// GET /login/:email
func (ac *AuthController) GetUserStatusByEmail(c *fiber.Ctx) error {
	return service.GetUserStatusByEmail(ac.DB, c)
}
