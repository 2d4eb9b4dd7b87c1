// file: internals/features/shifts/controller/shift_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "litefarm_backend/internals/features/shifts/dto"
	model "litefarm_backend/internals/features/shifts/model"
	helpers "litefarm_backend/internals/helpers"
	authMw "litefarm_backend/internals/middlewares/auth"
)

type ShiftController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewShiftController(db *gorm.DB) *ShiftController {
	return &ShiftController{DB: db, Validate: validator.New()}
}

/* =========================
   POST /shift
   ========================= */

// AddShift creates the shift and its tasks in one transaction.
func (ctl *ShiftController) AddShift(c *fiber.Ctx) error {
	var req dto.CreateShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	userID, _ := c.Locals(authMw.LocalUserID).(string)
	shift := req.ToModel(userID)

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&shift).Error; err != nil {
			return err
		}
		tasks := make([]model.ShiftTask, 0, len(req.Tasks))
		for _, t := range req.Tasks {
			tasks = append(tasks, model.ShiftTask{
				ShiftID:     shift.ShiftID,
				TaskID:      t.TaskID,
				FieldID:     t.FieldID,
				FieldCropID: t.FieldCropID,
				Duration:    t.Duration,
			})
		}
		return tx.Create(&tasks).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonCreated(c, "Shift created", fiber.Map{"shift_id": shift.ShiftID})
}

/* =========================
   GET /shift/:shift_id
   ========================= */

func (ctl *ShiftController) GetShiftByID(c *fiber.Ctx) error {
	shiftID, err := strconv.ParseInt(c.Params("shift_id"), 10, 64)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No shift id defined")
	}

	var shift model.Shift
	err = ctl.DB.Where("shift_id = ? AND deleted = ?", shiftID, false).Take(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Shift not found")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var tasks []model.ShiftTask
	if err := ctl.DB.Where("shift_id = ? AND deleted = ?", shiftID, false).Find(&tasks).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonOK(c, "OK", dto.ShiftResponse{Shift: shift, Tasks: tasks})
}

/* =========================
   GET /shift/user/:user_id
   ========================= */

func (ctl *ShiftController) GetShiftsByUser(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No user id defined")
	}

	var shifts []model.Shift
	if err := ctl.DB.
		Where("user_id = ? AND deleted = ?", userID, false).
		Order("start_time DESC").
		Find(&shifts).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonOK(c, "OK", shifts)
}

/* =========================
   GET /shift/farm/:farm_id
   ========================= */

// GetShiftsByFarm lists shifts scoped to the farm through the fields
// their tasks touch. A user's shifts on another farm never show up here.
func (ctl *ShiftController) GetShiftsByFarm(c *fiber.Ctx) error {
	farmID := c.Params("farm_id")
	if farmID == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No farm id defined")
	}

	var shifts []model.Shift
	err := ctl.DB.Table("shift").
		Select("DISTINCT shift.*").
		Joins("JOIN shift_task ON shift_task.shift_id = shift.shift_id").
		Joins("JOIN field ON field.field_id = shift_task.field_id").
		Where("field.farm_id = ? AND shift.deleted = ?", farmID, false).
		Scan(&shifts).Error
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if shifts == nil {
		shifts = []model.Shift{}
	}
	return helpers.JsonOK(c, "OK", shifts)
}

/* =========================
   DELETE /shift/:shift_id
   ========================= */

// DeleteShift soft-deletes. Scoped through task-linked fields like the
// farm listing, so another farm's shift ids read as not found.
func (ctl *ShiftController) DeleteShift(c *fiber.Ctx) error {
	shiftID, err := strconv.ParseInt(c.Params("shift_id"), 10, 64)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No shift id defined")
	}

	farmID, _ := c.Locals(authMw.LocalFarmID).(string)
	res := ctl.DB.Model(&model.Shift{}).
		Where("shift_id = ? AND deleted = ? AND EXISTS (SELECT 1 FROM shift_task JOIN field ON field.field_id = shift_task.field_id WHERE shift_task.shift_id = shift.shift_id AND field.farm_id = ?)",
			shiftID, false, farmID).
		Update("deleted", true)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Shift not found")
	}
	return helpers.JsonOK(c, "Shift deleted", nil)
}
