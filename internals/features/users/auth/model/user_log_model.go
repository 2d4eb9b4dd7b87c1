// file: internals/features/users/auth/model/user_log_model.go
package model

import (
	"time"

	"github.com/lib/pq"
)

// Failure reason codes written on login attempts.
const (
	ReasonPasswordMismatch = "password_mismatch"
	ReasonOther            = "other"
)

/* =========================
   Model: user_log
   ========================= */

// UserLog is the audit row written on every failed login attempt: who,
// from where, on what device, and why it failed.
type UserLog struct {
	UserLogID int64  `json:"user_log_id" gorm:"column:user_log_id;primaryKey;autoIncrement"`
	UserID    string `json:"user_id" gorm:"column:user_id;index"`
	IP        string `json:"ip" gorm:"column:ip"`

	// Accept-Language offers, most preferred first
	Languages pq.StringArray `json:"languages" gorm:"column:languages;type:text[]"`

	Browser        string `json:"browser" gorm:"column:browser"`
	BrowserVersion string `json:"browser_version" gorm:"column:browser_version"`
	OS             string `json:"os" gorm:"column:os"`
	OSVersion      string `json:"os_version" gorm:"column:os_version"`

	// The UA parser yields one device string ("iPhone", "Kindle", ...);
	// vendor and model are not split into separate columns.
	DeviceModel *string `json:"device_model,omitempty" gorm:"column:device_model"`
	DeviceType  string  `json:"device_type" gorm:"column:device_type"`

	ScreenWidth  int `json:"screen_width" gorm:"column:screen_width"`
	ScreenHeight int `json:"screen_height" gorm:"column:screen_height"`

	// password_mismatch | other
	ReasonForFailure string `json:"reason_for_failure" gorm:"column:reason_for_failure"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (UserLog) TableName() string { return "user_log" }
