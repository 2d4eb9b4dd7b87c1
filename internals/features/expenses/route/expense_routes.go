// file: internals/features/expenses/route/expense_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"litefarm_backend/internals/constants"
	expenseController "litefarm_backend/internals/features/expenses/controller"
	authMw "litefarm_backend/internals/middlewares/auth"
)

func ExpenseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := expenseController.NewExpenseController(db)

	expense := api.Group("/expense", authMw.AuthMiddleware(), authMw.FarmContext(db))
	{
		expense.Post("/farm/:farm_id", authMw.CheckScope(constants.PermAddExpenses), ctl.AddExpenses)
		expense.Get("/farm/:farm_id", authMw.CheckScope(constants.PermGetExpenses), ctl.GetFarmExpenses)
		expense.Delete("/:farm_expense_id", authMw.CheckScope(constants.PermDeleteExpenses), ctl.DeleteExpense)
	}

	expenseType := api.Group("/expense_type", authMw.AuthMiddleware(), authMw.FarmContext(db))
	{
		expenseType.Post("/farm/:farm_id", authMw.CheckScope(constants.PermAddExpenseTypes), ctl.AddExpenseType)
		expenseType.Get("/farm/:farm_id", authMw.CheckScope(constants.PermGetExpenseTypes), ctl.GetExpenseTypes)
	}
}
