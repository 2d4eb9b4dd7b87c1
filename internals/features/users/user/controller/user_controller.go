// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "litefarm_backend/internals/middlewares/auth"

	userDTO "litefarm_backend/internals/features/users/user/dto"
	userModel "litefarm_backend/internals/features/users/user/model"
	"litefarm_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /user/:user_id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No user id defined")
	}

	var user userModel.User
	err := uc.DB.Where("user_id = ?", userID).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonOK(c, "OK", user)
}

// PUT /user/:user_id
// Profile edits are self-service only.
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No user id defined")
	}
	if c.Locals(authMiddleware.LocalUserID) != userID {
		return helpers.JsonError(c, fiber.StatusForbidden, "Cannot update another user's profile")
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := uc.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	changes := req.Changes()
	if len(changes) == 0 {
		return helpers.JsonOK(c, "Nothing to update", nil)
	}

	res := uc.DB.Model(&userModel.User{}).
		Where("user_id = ?", userID).
		Updates(changes)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var user userModel.User
	if err := uc.DB.Where("user_id = ?", userID).Take(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonOK(c, "User updated", user)
}
