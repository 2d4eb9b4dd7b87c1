// file: internals/features/logs/model/activity_log_model.go
package model

import (
	"time"
)

/* =========================
   Model: activity_log
   ========================= */

// ActivityLog is the base row of every farm-operation event. Kind-specific
// attributes live in a one-to-one extension table resolved through the
// kind registry (see kind.go).
//
// Visibility rule: a log is soft-deleted by flipping `deleted` on this row
// only. Extension and link rows are never touched on delete; every read
// path goes through an alive base row, which is what makes them
// unreachable. This is an explicit rule, not a side effect of joins.
type ActivityLog struct {
	ActivityID   int64        `json:"activity_id" gorm:"column:activity_id;primaryKey;autoIncrement"`
	ActivityKind ActivityKind `json:"activity_kind" gorm:"column:activity_kind;not null"`
	Date         time.Time    `json:"date" gorm:"column:date;type:timestamptz;not null"`
	UserID       string       `json:"user_id" gorm:"column:user_id;not null;index"`
	Notes        string       `json:"notes" gorm:"column:notes"`
	ActionNeeded bool         `json:"action_needed" gorm:"column:action_needed;not null;default:false"`
	Photo        *string      `json:"photo,omitempty" gorm:"column:photo"`
	Deleted      bool         `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (ActivityLog) TableName() string { return "activity_log" }

/* =========================
   Link rows
   ========================= */

type ActivityCrops struct {
	ActivityID  int64 `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	FieldCropID int64 `json:"field_crop_id" gorm:"column:field_crop_id;primaryKey"`
}

func (ActivityCrops) TableName() string { return "activity_crops" }

type ActivityFields struct {
	ActivityID int64 `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	FieldID    int64 `json:"field_id" gorm:"column:field_id;primaryKey"`
}

func (ActivityFields) TableName() string { return "activity_fields" }
