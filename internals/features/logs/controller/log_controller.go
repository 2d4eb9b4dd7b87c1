// file: internals/features/logs/controller/log_controller.go
package controller

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "litefarm_backend/internals/features/logs/dto"
	model "litefarm_backend/internals/features/logs/model"
	service "litefarm_backend/internals/features/logs/service"
	helpers "litefarm_backend/internals/helpers"
	authMw "litefarm_backend/internals/middlewares/auth"
)

type LogController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLogController(db *gorm.DB) *LogController {
	return &LogController{DB: db, Validate: validator.New()}
}

/* =========================
   POST /log
   ========================= */

// AddLog inserts a polymorphic activity log. An empty body is a no-op
// that still answers 200, matching the original API contract.
func (ctl *LogController) AddLog(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("{}")) {
		return helpers.JsonOK(c, "OK", nil)
	}

	var req dto.LogRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	userID, _ := c.Locals(authMw.LocalUserID).(string)

	var activityID int64
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		id, err := service.InsertLog(tx, userID, &req)
		activityID = id
		return err
	})
	if err != nil {
		return mapLogError(c, err)
	}
	return helpers.JsonOK(c, "Log created", fiber.Map{"activity_id": activityID})
}

/* =========================
   GET /log/:activity_id
   ========================= */

func (ctl *LogController) GetLogByActivityID(c *fiber.Ctx) error {
	activityID, ok := parseActivityID(c)
	if !ok {
		return helpers.JsonOK(c, "OK", []any{})
	}
	log, err := service.GetLogByID(ctl.DB, activityID)
	if err != nil {
		return mapLogError(c, err)
	}
	return helpers.JsonOK(c, "OK", log)
}

/* =========================
   GET /log/farm/:farm_id
   ========================= */

func (ctl *LogController) GetLogsByFarmID(c *fiber.Ctx) error {
	farmID := c.Params("farm_id")
	if farmID == "" {
		return helpers.JsonOK(c, "OK", []any{})
	}
	logs, err := service.GetLogsByFarm(ctl.DB, farmID)
	if err != nil {
		return mapLogError(c, err)
	}
	return helpers.JsonOK(c, "OK", logs)
}

/* =========================
   PUT /log/:activity_id
   ========================= */

func (ctl *LogController) PutLog(c *fiber.Ctx) error {
	activityID, ok := parseActivityID(c)
	if !ok {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No log id defined")
	}

	var req dto.LogRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	userID, _ := c.Locals(authMw.LocalUserID).(string)
	farmID, _ := c.Locals(authMw.LocalFarmID).(string)

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		return service.PatchLog(tx, activityID, userID, farmID, &req)
	})
	if err != nil {
		return mapLogError(c, err)
	}
	return helpers.JsonOK(c, "Log updated", nil)
}

/* =========================
   DELETE /log/:activity_id
   ========================= */

func (ctl *LogController) DeleteLog(c *fiber.Ctx) error {
	activityID, ok := parseActivityID(c)
	if !ok {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No log id defined")
	}
	farmID, _ := c.Locals(authMw.LocalFarmID).(string)
	if err := service.DeleteLog(ctl.DB, activityID, farmID); err != nil {
		return mapLogError(c, err)
	}
	return helpers.JsonOK(c, "Log deleted", nil)
}

/* ========================= helpers ========================= */

func parseActivityID(c *fiber.Ctx) (int64, bool) {
	raw := c.Params("activity_id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func mapLogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrLogNotFound):
		return helpers.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrUnknownKind):
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
}
