// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"litefarm_backend/internals/configs"
	"litefarm_backend/internals/constants"
	authDTO "litefarm_backend/internals/features/users/auth/dto"
	authHelper "litefarm_backend/internals/features/users/auth/helper"
	authModel "litefarm_backend/internals/features/users/auth/model"
	userModel "litefarm_backend/internals/features/users/user/model"
	"litefarm_backend/internals/helpers"
)

// Mail is the outbound mail sink. Tests replace it with a recorder.
var Mail authHelper.Mailer = authHelper.SMTPMailer{}

/* =========================================================
   PASSWORD LOGIN
   ========================================================= */

// Login authenticates email+password. The audit context is assembled
// before any lookup so every failure branch can write a complete row.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.User.Email == "" || req.User.Password == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	audit := BuildLoginAudit(c, req.ScreenSize.ScreenWidth, req.ScreenSize.ScreenHeight)

	var user userModel.User
	err := db.Where("email = ?", req.User.Email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		WriteLoginAudit(db, "", audit, authModel.ReasonPasswordMismatch)
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}
	if err != nil {
		WriteLoginAudit(db, "", audit, authModel.ReasonOther)
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var pw userModel.Password
	err = db.Where("user_id = ?", user.UserID).Take(&pw).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// SSO-only account, no password credential to compare against
		WriteLoginAudit(db, user.UserID, audit, authModel.ReasonPasswordMismatch)
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}
	if err != nil {
		WriteLoginAudit(db, user.UserID, audit, authModel.ReasonOther)
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if bcrypt.CompareHashAndPassword([]byte(pw.PasswordHash), []byte(req.User.Password)) != nil {
		WriteLoginAudit(db, user.UserID, audit, authModel.ReasonPasswordMismatch)
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := CreateAccessToken(user.UserID)
	if err != nil {
		WriteLoginAudit(db, user.UserID, audit, authModel.ReasonOther)
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id_token": token,
		"user":     user,
	})
}

/* =========================================================
   GOOGLE SSO
   ========================================================= */

// LoginWithGoogle verifies a Google id_token and resolves it to a local
// account: first by the provider subject, then by email against an
// existing password account, provisioning a fresh user as a last resort.
// An email match on a password account that has never linked Google gets
// an empty id_token back: the client must confirm the link explicitly.
func LoginWithGoogle(db *gorm.DB, c *fiber.Ctx) error {
	idToken := c.Query("id_token")
	if idToken == "" {
		var req authDTO.GoogleLoginRequest
		if err := c.BodyParser(&req); err != nil || req.IDToken == "" {
			return helpers.JsonError(c, fiber.StatusBadRequest, "id_token is required")
		}
		idToken = req.IDToken
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	var user userModel.User
	passwordNeedsLink := false

	err = db.Where("user_id = ?", claimSet.Sub).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// fall back to a password account with the same address
		err = db.Where("email = ?", claimSet.Email).Take(&user).Error
		if err == nil {
			passwordNeedsLink = !user.IsSSO()
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			user = userModel.User{
				UserID:             claimSet.Sub,
				FirstName:          claimSet.GivenName,
				LastName:           claimSet.FamilyName,
				Email:              claimSet.Email,
				LanguagePreference: "en",
				Status:             constants.UserStatusActive,
			}
			if createErr := db.Create(&user).Error; createErr != nil {
				return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
			}
			err = nil
		}
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token := ""
	if !passwordNeedsLink {
		token, err = CreateAccessToken(user.UserID)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id_token": token,
		"user": fiber.Map{
			"user_id":    user.UserID,
			"email":      user.Email,
			"first_name": user.FirstName,
		},
	})
}

/* =========================================================
   EMAIL STATUS PROBE
   ========================================================= */

// GetUserStatusByEmail tells the login screen which flow to start for an
// address, and kicks the matching side effect: re-sends pending farm
// invitations for invited accounts, issues a fresh reset credential for
// accounts stuck mid password reset.
func GetUserStatusByEmail(db *gorm.DB, c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No email defined")
	}

	var user userModel.User
	err := db.Where("email = ?", email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonOK(c, "OK", authDTO.EmailStatusResponse{Exists: false})
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	resp := authDTO.EmailStatusResponse{
		FirstName: &user.FirstName,
		Email:     &user.Email,
		Exists:    true,
		SSO:       user.IsSSO(),
		Language:  user.LanguagePreference,
	}

	switch user.Status {
	case constants.UserStatusInvited:
		// invited accounts have never signed in, the client treats them
		// as not-yet-existing and shows the accept-invitation screen
		resp.Exists = false
		resp.Invited = true
		if err := resendPendingInvitations(db, &user); err != nil {
			log.Printf("[ERROR] resend invitations for %s: %v", user.UserID, err)
		}
	case constants.UserStatusResetPending:
		resp.Expired = true
		if err := beginPasswordReset(db, &user); err != nil {
			log.Printf("[ERROR] password reset for %s: %v", user.UserID, err)
		}
	}

	return helpers.JsonOK(c, "OK", resp)
}

// resendPendingInvitations mails one join link per farm the user is
// still Invited to.
func resendPendingInvitations(db *gorm.DB, user *userModel.User) error {
	var rows []struct {
		FarmID   string `gorm:"column:farm_id"`
		FarmName string `gorm:"column:farm_name"`
	}
	err := db.Table("user_farm").
		Select("user_farm.farm_id, farm.farm_name").
		Joins("JOIN farm ON farm.farm_id = user_farm.farm_id").
		Where("user_farm.user_id = ? AND user_farm.status = ?", user.UserID, constants.FarmStatusInvited).
		Scan(&rows).Error
	if err != nil {
		return err
	}

	base := configs.GetEnv("APP_BASE_URL", "http://localhost:3000")
	for _, row := range rows {
		token, err := CreateInvitationToken(user.UserID, row.FarmID)
		if err != nil {
			return err
		}
		joinLink := base + "/callback/?invite_token=" + token
		if err := Mail.SendInvitation(user.Email, user.FirstName, row.FarmName, joinLink); err != nil {
			return err
		}
	}
	return nil
}

// beginPasswordReset bumps the reset version (invalidating any token
// issued before) and mails a fresh reset link.
func beginPasswordReset(db *gorm.DB, user *userModel.User) error {
	now := time.Now().UTC()

	var pw userModel.Password
	err := db.Where("user_id = ?", user.UserID).Take(&pw).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// placeholder hash, unusable until the reset completes
		placeholder, hashErr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		pw = userModel.Password{
			UserID:            user.UserID,
			PasswordHash:      string(placeholder),
			ResetTokenVersion: 1,
			CreatedAt:         now,
		}
		if err := db.Create(&pw).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		pw.ResetTokenVersion++
		pw.CreatedAt = now
		err = db.Model(&userModel.Password{}).
			Where("user_id = ?", user.UserID).
			Updates(map[string]interface{}{
				"reset_token_version": pw.ResetTokenVersion,
				"created_at":          now,
			}).Error
		if err != nil {
			return err
		}
	}

	token, err := CreatePasswordResetToken(user, pw.ResetTokenVersion, pw.CreatedAt)
	if err != nil {
		return err
	}
	base := configs.GetEnv("APP_BASE_URL", "http://localhost:3000")
	return Mail.SendPasswordReset(user.Email, user.FirstName, base+"/callback/?reset_token="+token)
}
