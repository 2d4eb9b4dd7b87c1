// file: internals/features/expenses/dto/expense_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "litefarm_backend/internals/features/expenses/model"
)

/* =========================================================
   REQUEST: Create (the endpoint takes an array of these)
   ========================================================= */

type CreateExpenseRequest struct {
	ExpenseDate   time.Time `json:"expense_date" validate:"required"`
	ExpenseTypeID uuid.UUID `json:"expense_type_id" validate:"required"`
	Note          string    `json:"note" validate:"max=250"`
	Picture       *string   `json:"picture"`
	Value         float64   `json:"value" validate:"required,gt=0"`
}

func (r *CreateExpenseRequest) ToModel(farmID uuid.UUID) model.FarmExpense {
	return model.FarmExpense{
		FarmID:        farmID,
		ExpenseDate:   r.ExpenseDate,
		ExpenseTypeID: r.ExpenseTypeID,
		Note:          r.Note,
		Picture:       r.Picture,
		Value:         r.Value,
	}
}

type CreateExpenseTypeRequest struct {
	ExpenseName string `json:"expense_name" validate:"required,max=100"`
}
