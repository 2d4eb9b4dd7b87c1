// file: internals/features/fields/model/field_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================
   Model: field
   ========================= */

type Field struct {
	FieldID   int64     `json:"field_id" gorm:"column:field_id;primaryKey;autoIncrement"`
	FarmID    uuid.UUID `json:"farm_id" gorm:"column:farm_id;type:uuid;not null;index"`
	FieldName string    `json:"field_name" gorm:"column:field_name;not null"`

	// polygon vertices, [{lat,lng}, ...]
	GridPoints datatypes.JSON `json:"grid_points,omitempty" gorm:"column:grid_points;type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
	Deleted   bool      `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (Field) TableName() string { return "field" }

/* =========================
   Model: crop
   ========================= */

// Crop is the catalogue entry. farm_id is null for the default catalogue
// shipped with the app and set for farm-specific custom crops.
type Crop struct {
	CropID         int64      `json:"crop_id" gorm:"column:crop_id;primaryKey;autoIncrement"`
	CropCommonName string     `json:"crop_common_name" gorm:"column:crop_common_name;not null"`
	CropGenus      *string    `json:"crop_genus,omitempty" gorm:"column:crop_genus"`
	CropSpecie     *string    `json:"crop_specie,omitempty" gorm:"column:crop_specie"`
	FarmID         *uuid.UUID `json:"farm_id,omitempty" gorm:"column:farm_id;type:uuid;index"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	Deleted   bool      `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (Crop) TableName() string { return "crop" }

/* =========================
   Model: field_crop
   ========================= */

type FieldCrop struct {
	FieldCropID int64 `json:"field_crop_id" gorm:"column:field_crop_id;primaryKey;autoIncrement"`
	FieldID     int64 `json:"field_id" gorm:"column:field_id;not null;index"`
	CropID      int64 `json:"crop_id" gorm:"column:crop_id;not null;index"`

	Area           *float64   `json:"area_used,omitempty" gorm:"column:area_used"`
	EstimatedYield *float64   `json:"estimated_production,omitempty" gorm:"column:estimated_production"`
	StartDate      *time.Time `json:"start_date,omitempty" gorm:"column:start_date;type:date"`
	EndDate        *time.Time `json:"end_date,omitempty" gorm:"column:end_date;type:date"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	Deleted   bool      `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (FieldCrop) TableName() string { return "field_crop" }
