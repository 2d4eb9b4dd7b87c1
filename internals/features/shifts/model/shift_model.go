// file: internals/features/shifts/model/shift_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: task_type
   ========================= */

// TaskType rows with a null farm_id are the built-in task catalogue;
// farm-scoped rows are custom tasks.
type TaskType struct {
	TaskID   int64      `json:"task_id" gorm:"column:task_id;primaryKey;autoIncrement"`
	TaskName string     `json:"task_name" gorm:"column:task_name;not null"`
	FarmID   *uuid.UUID `json:"farm_id,omitempty" gorm:"column:farm_id;type:uuid;index"`
	Deleted  bool       `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (TaskType) TableName() string { return "task_type" }

/* =========================
   Model: shift
   ========================= */

// A shift is attributed to a user, not a farm; farm scoping happens
// through the fields its tasks touch.
type Shift struct {
	ShiftID       int64     `json:"shift_id" gorm:"column:shift_id;primaryKey;autoIncrement"`
	UserID        string    `json:"user_id" gorm:"column:user_id;not null;index"`
	StartTime     time.Time `json:"start_time" gorm:"column:start_time;type:timestamptz;not null"`
	EndTime       time.Time `json:"end_time" gorm:"column:end_time;type:timestamptz;not null"`
	BreakDuration int       `json:"break_duration" gorm:"column:break_duration;not null;default:0"` // minutes
	Mood          *string   `json:"mood,omitempty" gorm:"column:mood"`
	WageAtMoment  *float64  `json:"wage_at_moment,omitempty" gorm:"column:wage_at_moment"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	Deleted   bool      `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (Shift) TableName() string { return "shift" }

/* =========================
   Model: shift_task
   ========================= */

type ShiftTask struct {
	ShiftTaskID int64  `json:"shift_task_id" gorm:"column:shift_task_id;primaryKey;autoIncrement"`
	ShiftID     int64  `json:"shift_id" gorm:"column:shift_id;not null;index"`
	TaskID      int64  `json:"task_id" gorm:"column:task_id;not null"`
	FieldID     *int64 `json:"field_id,omitempty" gorm:"column:field_id;index"`
	FieldCropID *int64 `json:"field_crop_id,omitempty" gorm:"column:field_crop_id"`
	Duration    int    `json:"duration" gorm:"column:duration;not null;default:0"` // minutes

	Deleted bool `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (ShiftTask) TableName() string { return "shift_task" }
