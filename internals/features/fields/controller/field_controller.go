// file: internals/features/fields/controller/field_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	fieldDTO "litefarm_backend/internals/features/fields/dto"
	fieldModel "litefarm_backend/internals/features/fields/model"
	"litefarm_backend/internals/helpers"
)

type FieldController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFieldController(db *gorm.DB) *FieldController {
	return &FieldController{DB: db, Validate: validator.New()}
}

func parseFarmID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("farm_id"))
}

/* =========================================================
   FIELDS
   ========================================================= */

// POST /field/farm/:farm_id
func (fc *FieldController) AddField(c *fiber.Ctx) error {
	farmID, err := parseFarmID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid farm id")
	}

	var req fieldDTO.CreateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	field := req.ToModel(farmID)
	if err := fc.DB.Create(&field).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonCreated(c, "Field created", field)
}

// GET /field/farm/:farm_id
func (fc *FieldController) GetFarmFields(c *fiber.Ctx) error {
	farmID, err := parseFarmID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid farm id")
	}

	var fields []fieldModel.Field
	err = fc.DB.
		Where("farm_id = ? AND deleted = ?", farmID, false).
		Order("field_name ASC").
		Find(&fields).Error
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonOK(c, "OK", fields)
}

/* =========================================================
   CROP CATALOGUE
   ========================================================= */

// POST /crop/farm/:farm_id
func (fc *FieldController) AddCrop(c *fiber.Ctx) error {
	farmID, err := parseFarmID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid farm id")
	}

	var req fieldDTO.CreateCropRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	crop := req.ToModel(farmID)
	if err := fc.DB.Create(&crop).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonCreated(c, "Crop created", crop)
}

// GET /crop/farm/:farm_id
// Returns the default catalogue plus the farm's custom crops.
func (fc *FieldController) GetFarmCrops(c *fiber.Ctx) error {
	farmID, err := parseFarmID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid farm id")
	}

	var crops []fieldModel.Crop
	err = fc.DB.
		Where("(farm_id IS NULL OR farm_id = ?) AND deleted = ?", farmID, false).
		Order("crop_common_name ASC").
		Find(&crops).Error
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonOK(c, "OK", crops)
}

/* =========================================================
   FIELD CROPS
   ========================================================= */

// POST /field_crop/farm/:farm_id
// The target field must belong to the scoped farm.
func (fc *FieldController) AddFieldCrop(c *fiber.Ctx) error {
	farmID, err := parseFarmID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid farm id")
	}

	var req fieldDTO.CreateFieldCropRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var field fieldModel.Field
	err = fc.DB.
		Where("field_id = ? AND farm_id = ? AND deleted = ?", req.FieldID, farmID, false).
		Take(&field).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusNotFound, "Field not found on farm")
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	fieldCrop := req.ToModel()
	if err := fc.DB.Create(&fieldCrop).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonCreated(c, "Field crop created", fieldCrop)
}

// GET /field_crop/farm/:farm_id
func (fc *FieldController) GetFarmFieldCrops(c *fiber.Ctx) error {
	farmID, err := parseFarmID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid farm id")
	}

	var rows []fieldModel.FieldCrop
	err = fc.DB.Table("field_crop").
		Select("field_crop.*").
		Joins("JOIN field ON field.field_id = field_crop.field_id").
		Where("field.farm_id = ? AND field_crop.deleted = ?", farmID, false).
		Scan(&rows).Error
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if rows == nil {
		rows = []fieldModel.FieldCrop{}
	}
	return helpers.JsonOK(c, "OK", rows)
}

// DELETE /field_crop/:field_crop_id
func (fc *FieldController) DeleteFieldCrop(c *fiber.Ctx) error {
	id, err := c.ParamsInt("field_crop_id")
	if err != nil || id <= 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid field crop id")
	}

	res := fc.DB.Model(&fieldModel.FieldCrop{}).
		Where("field_crop_id = ? AND deleted = ?", id, false).
		Update("deleted", true)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Field crop not found")
	}
	return helpers.JsonOK(c, "Field crop deleted", nil)
}
