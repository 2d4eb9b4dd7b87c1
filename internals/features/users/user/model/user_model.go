// file: internals/features/users/user/model/user_model.go
package model

import (
	"regexp"
	"time"
)

/* =========================
   Model: users
   ========================= */

// User ids are text on purpose: accounts provisioned through Google SSO
// keep the numeric provider subject as their id, invited accounts get a
// generated uuid string. SSOness is inferred from the id shape.
type User struct {
	UserID             string `json:"user_id" gorm:"column:user_id;primaryKey"`
	FirstName          string `json:"first_name" gorm:"column:first_name"`
	LastName           string `json:"last_name" gorm:"column:last_name"`
	Email              string `json:"email" gorm:"column:email;uniqueIndex;not null"`
	Phone              *string `json:"phone_number,omitempty" gorm:"column:phone_number"`
	LanguagePreference string `json:"language_preference" gorm:"column:language_preference;default:en"`

	// 1 active, 2 invited, 3 password-reset pending
	Status int `json:"status" gorm:"column:status;not null;default:1"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (User) TableName() string { return "users" }

var numericID = regexp.MustCompile(`^\d+$`)

// IsSSO reports whether the account was provisioned by a federated
// identity provider (purely numeric user id).
func (u *User) IsSSO() bool { return numericID.MatchString(u.UserID) }

/* =========================
   Model: password
   ========================= */

type Password struct {
	UserID            string    `json:"user_id" gorm:"column:user_id;primaryKey"`
	PasswordHash      string    `json:"-" gorm:"column:password_hash;not null"`
	ResetTokenVersion int       `json:"reset_token_version" gorm:"column:reset_token_version;not null;default:0"`
	CreatedAt         time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (Password) TableName() string { return "password" }
