// file: internals/features/farms/controller/farm_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"litefarm_backend/internals/configs"
	"litefarm_backend/internals/constants"
	farmDTO "litefarm_backend/internals/features/farms/dto"
	farmModel "litefarm_backend/internals/features/farms/model"
	authService "litefarm_backend/internals/features/users/auth/service"
	userModel "litefarm_backend/internals/features/users/user/model"
	"litefarm_backend/internals/helpers"
	authMiddleware "litefarm_backend/internals/middlewares/auth"
)

type FarmController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFarmController(db *gorm.DB) *FarmController {
	return &FarmController{DB: db, Validate: validator.New()}
}

/* =========================================================
   FARM
   ========================================================= */

// POST /farm
// The creator becomes the farm's owner in the same transaction.
func (fc *FarmController) CreateFarm(c *fiber.Ctx) error {
	userID, _ := c.Locals(authMiddleware.LocalUserID).(string)

	var req farmDTO.CreateFarmRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	farm := req.ToModel()
	err := fc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&farm).Error; err != nil {
			return err
		}
		owner := farmModel.UserFarm{
			UserID:     userID,
			FarmID:     farm.FarmID,
			RoleID:     constants.RoleOwner,
			Status:     constants.FarmStatusActive,
			HasConsent: true,
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helpers.JsonCreated(c, "Farm created", farm)
}

// GET /farm/:farm_id
// Membership is already enforced by the farm-context middleware.
func (fc *FarmController) GetFarm(c *fiber.Ctx) error {
	farmID := c.Params("farm_id")

	var farm farmModel.Farm
	err := fc.DB.Where("farm_id = ? AND deleted = ?", farmID, false).Take(&farm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Farm not found")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonOK(c, "OK", farm)
}

// GET /user/:user_id/farm
// A user may only list their own memberships.
func (fc *FarmController) GetUserFarms(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No user id defined")
	}
	if c.Locals(authMiddleware.LocalUserID) != userID {
		return helpers.JsonError(c, fiber.StatusForbidden, "Cannot list another user's farms")
	}

	var rows []farmDTO.UserFarmResponse
	err := fc.DB.Table("user_farm").
		Select("user_farm.*, farm.farm_name").
		Joins("JOIN farm ON farm.farm_id = user_farm.farm_id AND farm.deleted = false").
		Where("user_farm.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if rows == nil {
		rows = []farmDTO.UserFarmResponse{}
	}
	return helpers.JsonOK(c, "OK", rows)
}

/* =========================================================
   MEMBERSHIP
   ========================================================= */

// POST /user_farm
// Invites a user to the caller's farm. An unknown address gets a stub
// account (status invited, uuid id) that the invitation link activates.
func (fc *FarmController) InviteUser(c *fiber.Ctx) error {
	var req farmDTO.InviteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var farm farmModel.Farm
	err := fc.DB.Where("farm_id = ? AND deleted = ?", req.FarmID, false).Take(&farm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Farm not found")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var invitee userModel.User
	var membership farmModel.UserFarm
	err = fc.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", req.Email).Take(&invitee).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			invitee = userModel.User{
				UserID:             uuid.NewString(),
				FirstName:          req.FirstName,
				LastName:           req.LastName,
				Email:              req.Email,
				LanguagePreference: "en",
				Status:             constants.UserStatusInvited,
			}
			if err := tx.Create(&invitee).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var existing farmModel.UserFarm
		err = tx.Where("user_id = ? AND farm_id = ?", invitee.UserID, req.FarmID).
			Take(&existing).Error
		if err == nil {
			return errors.New("User is already on this farm")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		membership = farmModel.UserFarm{
			UserID: invitee.UserID,
			FarmID: req.FarmID,
			RoleID: req.RoleID,
			Status: constants.FarmStatusInvited,
			Wage:   req.Wage,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// mail outside the tx, a delivery hiccup must not undo the invite
	token, err := authService.CreateInvitationToken(invitee.UserID, req.FarmID.String())
	if err == nil {
		base := configs.GetEnv("APP_BASE_URL", "http://localhost:3000")
		joinLink := base + "/callback/?invite_token=" + token
		err = authService.Mail.SendInvitation(invitee.Email, invitee.FirstName, farm.FarmName, joinLink)
	}
	if err != nil {
		log.Printf("[ERROR] invitation mail to %s: %v", invitee.Email, err)
	}

	return helpers.JsonCreated(c, "Invitation sent", membership)
}

// PATCH /user_farm/role
func (fc *FarmController) UpdateRole(c *fiber.Ctx) error {
	var req farmDTO.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	if c.Locals(authMiddleware.LocalUserID) == req.UserID {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Cannot change own role")
	}

	res := fc.DB.Model(&farmModel.UserFarm{}).
		Where("user_id = ? AND farm_id = ?", req.UserID, req.FarmID).
		Update("role_id", req.RoleID)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Membership not found")
	}
	return helpers.JsonOK(c, "Role updated", nil)
}

// PATCH /user_farm/status
func (fc *FarmController) UpdateStatus(c *fiber.Ctx) error {
	var req farmDTO.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	res := fc.DB.Model(&farmModel.UserFarm{}).
		Where("user_id = ? AND farm_id = ?", req.UserID, req.FarmID).
		Update("status", req.Status)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Membership not found")
	}
	return helpers.JsonOK(c, "Status updated", nil)
}
