// file: internals/features/expenses/model/expense_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: farm_expense_type
   ========================= */

// ExpenseType rows with a null farm_id are the default categories shipped
// with the app; farm-scoped rows are user-defined categories.
type ExpenseType struct {
	ExpenseTypeID uuid.UUID  `json:"expense_type_id" gorm:"column:expense_type_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ExpenseName   string     `json:"expense_name" gorm:"column:expense_name;not null"`
	FarmID        *uuid.UUID `json:"farm_id,omitempty" gorm:"column:farm_id;type:uuid;index"`
	Deleted       bool       `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (ExpenseType) TableName() string { return "farm_expense_type" }

/* =========================
   Model: farm_expense
   ========================= */

type FarmExpense struct {
	FarmExpenseID uuid.UUID `json:"farm_expense_id" gorm:"column:farm_expense_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FarmID        uuid.UUID `json:"farm_id" gorm:"column:farm_id;type:uuid;not null;index"`
	ExpenseDate   time.Time `json:"expense_date" gorm:"column:expense_date;type:timestamptz;not null"`
	ExpenseTypeID uuid.UUID `json:"expense_type_id" gorm:"column:expense_type_id;type:uuid;not null"`
	Picture       *string   `json:"picture,omitempty" gorm:"column:picture"`
	Note          string    `json:"note" gorm:"column:note"`
	Value         float64   `json:"value" gorm:"column:value;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	Deleted   bool      `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (FarmExpense) TableName() string { return "farm_expense" }
