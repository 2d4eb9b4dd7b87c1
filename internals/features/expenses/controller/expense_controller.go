// file: internals/features/expenses/controller/expense_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "litefarm_backend/internals/features/expenses/dto"
	model "litefarm_backend/internals/features/expenses/model"
	helpers "litefarm_backend/internals/helpers"
	authMw "litefarm_backend/internals/middlewares/auth"
)

type ExpenseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db, Validate: validator.New()}
}

/* =========================
   POST /expense/farm/:farm_id
   ========================= */

// AddExpenses inserts a batch of expenses for the farm in one transaction.
func (ctl *ExpenseController) AddExpenses(c *fiber.Ctx) error {
	farmID, err := uuid.Parse(c.Params("farm_id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No farm id defined")
	}

	var reqs []dto.CreateExpenseRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(reqs) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No expenses to add")
	}
	for i := range reqs {
		if err := ctl.Validate.Struct(&reqs[i]); err != nil {
			return helpers.JsonValidationError(c, err)
		}
	}

	expenses := make([]model.FarmExpense, 0, len(reqs))
	for i := range reqs {
		expenses = append(expenses, reqs[i].ToModel(farmID))
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&expenses).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonCreated(c, "Expenses created", expenses)
}

/* =========================
   GET /expense/farm/:farm_id
   ========================= */

func (ctl *ExpenseController) GetFarmExpenses(c *fiber.Ctx) error {
	farmID, err := uuid.Parse(c.Params("farm_id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No farm id defined")
	}

	paging := helpers.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctl.DB.Model(&model.FarmExpense{}).
		Where("farm_id = ? AND deleted = ?", farmID, false).
		Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var expenses []model.FarmExpense
	if err := ctl.DB.
		Where("farm_id = ? AND deleted = ?", farmID, false).
		Order("expense_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&expenses).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonList(c, "OK", expenses, helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

/* =========================
   DELETE /expense/:farm_expense_id
   ========================= */

// DeleteExpense soft-deletes; the row stays for audit history. The row
// must belong to the caller's farm; other farms' ids answer 404.
func (ctl *ExpenseController) DeleteExpense(c *fiber.Ctx) error {
	expenseID, err := uuid.Parse(c.Params("farm_expense_id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No expense id defined")
	}

	farmID, _ := c.Locals(authMw.LocalFarmID).(string)
	res := ctl.DB.Model(&model.FarmExpense{}).
		Where("farm_expense_id = ? AND deleted = ? AND farm_id = ?", expenseID, false, farmID).
		Update("deleted", true)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Expense not found")
	}
	return helpers.JsonOK(c, "Expense deleted", nil)
}

/* =========================
   Expense types
   ========================= */

// GetExpenseTypes lists the default categories plus the farm's own.
func (ctl *ExpenseController) GetExpenseTypes(c *fiber.Ctx) error {
	farmID, err := uuid.Parse(c.Params("farm_id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No farm id defined")
	}

	var types []model.ExpenseType
	if err := ctl.DB.
		Where("(farm_id IS NULL OR farm_id = ?) AND deleted = ?", farmID, false).
		Order("expense_name ASC").
		Find(&types).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonOK(c, "OK", types)
}

func (ctl *ExpenseController) AddExpenseType(c *fiber.Ctx) error {
	farmID, err := uuid.Parse(c.Params("farm_id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No farm id defined")
	}

	var req dto.CreateExpenseTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	t := model.ExpenseType{ExpenseName: req.ExpenseName, FarmID: &farmID}
	if err := ctl.DB.Create(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.JsonError(c, fiber.StatusConflict, "Expense type already exists")
		}
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helpers.JsonCreated(c, "Expense type created", t)
}
