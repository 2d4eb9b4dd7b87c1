// file: internals/features/farms/dto/farm_dto.go
package dto

import (
	"github.com/google/uuid"

	model "litefarm_backend/internals/features/farms/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type CreateFarmRequest struct {
	FarmName string  `json:"farm_name" validate:"required,max=255"`
	Address  *string `json:"address"`
	Units    string  `json:"units" validate:"omitempty,oneof=metric imperial"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

func (r *CreateFarmRequest) ToModel() model.Farm {
	f := model.Farm{
		FarmName: r.FarmName,
		Address:  r.Address,
		Units:    "metric",
		Currency: "USD",
	}
	if r.Units != "" {
		f.Units = r.Units
	}
	if r.Currency != "" {
		f.Currency = r.Currency
	}
	return f
}

type InviteUserRequest struct {
	FarmID uuid.UUID `json:"farm_id" validate:"required"`
	Email  string    `json:"email" validate:"required,email"`
	RoleID int       `json:"role_id" validate:"required,oneof=1 2 3 5"`

	FirstName string   `json:"first_name" validate:"required,max=100"`
	LastName  string   `json:"last_name" validate:"max=100"`
	Wage      *float64 `json:"wage" validate:"omitempty,gte=0"`
}

type UpdateRoleRequest struct {
	FarmID uuid.UUID `json:"farm_id" validate:"required"`
	UserID string    `json:"user_id" validate:"required"`
	RoleID int       `json:"role_id" validate:"required,oneof=1 2 3 5"`
}

type UpdateStatusRequest struct {
	FarmID uuid.UUID `json:"farm_id" validate:"required"`
	UserID string    `json:"user_id" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=Active Invited Inactive"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

// UserFarmResponse is a user_farm row joined with the farm it points to.
type UserFarmResponse struct {
	model.UserFarm
	FarmName string `json:"farm_name" gorm:"column:farm_name"`
}
