// file: internals/features/shifts/dto/shift_dto.go
package dto

import (
	"time"

	model "litefarm_backend/internals/features/shifts/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type ShiftTaskRequest struct {
	TaskID      int64  `json:"task_id" validate:"required"`
	FieldID     *int64 `json:"field_id"`
	FieldCropID *int64 `json:"field_crop_id"`
	Duration    int    `json:"duration" validate:"gte=0"`
}

type CreateShiftRequest struct {
	StartTime     time.Time          `json:"start_time" validate:"required"`
	EndTime       time.Time          `json:"end_time" validate:"required,gtfield=StartTime"`
	BreakDuration int                `json:"break_duration" validate:"gte=0"`
	Mood          *string            `json:"mood"`
	WageAtMoment  *float64           `json:"wage_at_moment"`
	Tasks         []ShiftTaskRequest `json:"tasks" validate:"required,min=1,dive"`
}

func (r *CreateShiftRequest) ToModel(userID string) model.Shift {
	return model.Shift{
		UserID:        userID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		BreakDuration: r.BreakDuration,
		Mood:          r.Mood,
		WageAtMoment:  r.WageAtMoment,
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type ShiftResponse struct {
	model.Shift
	Tasks []model.ShiftTask `json:"tasks"`
}
