// file: internals/features/farms/model/farm_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================
   Model: farm
   ========================= */

type Farm struct {
	FarmID   uuid.UUID `json:"farm_id" gorm:"column:farm_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FarmName string    `json:"farm_name" gorm:"column:farm_name;not null"`
	Address  *string   `json:"address,omitempty" gorm:"column:address"`

	// {lat, lng} as stored by the onboarding flow
	GridPoints datatypes.JSON `json:"grid_points,omitempty" gorm:"column:grid_points;type:jsonb"`

	Units    string `json:"units" gorm:"column:units;default:metric"`
	Currency string `json:"currency" gorm:"column:currency;default:USD"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
	Deleted   bool      `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (Farm) TableName() string { return "farm" }

/* =========================
   Model: user_farm
   ========================= */

// UserFarm is the membership row gating every farm-scoped read and write.
// role_id: 1 owner, 2 manager, 3 worker, 5 extension officer.
type UserFarm struct {
	UserID string    `json:"user_id" gorm:"column:user_id;primaryKey"`
	FarmID uuid.UUID `json:"farm_id" gorm:"column:farm_id;type:uuid;primaryKey"`
	RoleID int       `json:"role_id" gorm:"column:role_id;not null;default:3"`

	// Active | Invited | Inactive
	Status string `json:"status" gorm:"column:status;not null;default:Invited"`

	Wage       *float64 `json:"wage,omitempty" gorm:"column:wage"`
	WageUnit   string   `json:"wage_unit" gorm:"column:wage_unit;default:hourly"`
	HasConsent bool     `json:"has_consent" gorm:"column:has_consent;not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (UserFarm) TableName() string { return "user_farm" }
