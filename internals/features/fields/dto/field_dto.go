// file: internals/features/fields/dto/field_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "litefarm_backend/internals/features/fields/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type CreateFieldRequest struct {
	FieldName  string         `json:"field_name" validate:"required,max=255"`
	GridPoints datatypes.JSON `json:"grid_points"`
}

func (r *CreateFieldRequest) ToModel(farmID uuid.UUID) model.Field {
	return model.Field{
		FarmID:     farmID,
		FieldName:  r.FieldName,
		GridPoints: r.GridPoints,
	}
}

type CreateCropRequest struct {
	CropCommonName string  `json:"crop_common_name" validate:"required,max=255"`
	CropGenus      *string `json:"crop_genus"`
	CropSpecie     *string `json:"crop_specie"`
}

func (r *CreateCropRequest) ToModel(farmID uuid.UUID) model.Crop {
	return model.Crop{
		CropCommonName: r.CropCommonName,
		CropGenus:      r.CropGenus,
		CropSpecie:     r.CropSpecie,
		FarmID:         &farmID,
	}
}

type CreateFieldCropRequest struct {
	FieldID        int64      `json:"field_id" validate:"required"`
	CropID         int64      `json:"crop_id" validate:"required"`
	Area           *float64   `json:"area_used" validate:"omitempty,gte=0"`
	EstimatedYield *float64   `json:"estimated_production" validate:"omitempty,gte=0"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
}

func (r *CreateFieldCropRequest) ToModel() model.FieldCrop {
	return model.FieldCrop{
		FieldID:        r.FieldID,
		CropID:         r.CropID,
		Area:           r.Area,
		EstimatedYield: r.EstimatedYield,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}
}
