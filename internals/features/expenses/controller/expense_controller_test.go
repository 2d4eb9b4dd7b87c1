// file: internals/features/expenses/controller/expense_controller_test.go
package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authMw "litefarm_backend/internals/middlewares/auth"
)

const testFarmID = "3a0c2b9e-9a56-4c6e-8a1f-111111111111"

func newExpenseTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	ctl := NewExpenseController(db)
	app := fiber.New()
	app.Get("/expense/farm/:farm_id", ctl.GetFarmExpenses)
	// farm context local as the middleware chain would set it
	app.Delete("/expense/:farm_expense_id", func(c *fiber.Ctx) error {
		c.Locals(authMw.LocalFarmID, testFarmID)
		return ctl.DeleteExpense(c)
	})
	return app, mock
}

func TestGetFarmExpensesFiltersDeleted(t *testing.T) {
	app, mock := newExpenseTestApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "farm_expense" WHERE farm_id = \$1 AND deleted = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(`SELECT .* FROM "farm_expense" WHERE farm_id = \$1 AND deleted = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"farm_expense_id", "farm_id", "note", "value"}).
			AddRow("5f8d7c6b-0000-4000-8000-222222222222", testFarmID, "seed order", 120.50).
			AddRow("5f8d7c6b-0000-4000-8000-333333333333", testFarmID, "fuel", 60.00))

	resp, err := app.Test(httptest.NewRequest("GET", "/expense/farm/"+testFarmID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFarmExpensesRejectsBadFarmID(t *testing.T) {
	app, mock := newExpenseTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/expense/farm/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The delete statement must bind the caller's farm alongside the id, so
// a member of another farm cannot soft-delete this farm's rows.
func TestDeleteExpenseSoftDeletesWithinFarm(t *testing.T) {
	app, mock := newExpenseTestApp(t)

	mock.ExpectExec(`UPDATE "farm_expense" SET "deleted"=\$1 WHERE farm_expense_id = \$2 AND deleted = \$3 AND farm_id = \$4`).
		WithArgs(true, "5f8d7c6b-0000-4000-8000-222222222222", false, testFarmID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest("DELETE", "/expense/5f8d7c6b-0000-4000-8000-222222222222", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Another farm's expense id matches nothing and reads as not found.
func TestDeleteExpenseNotFound(t *testing.T) {
	app, mock := newExpenseTestApp(t)

	mock.ExpectExec(`UPDATE "farm_expense" SET "deleted".*AND farm_id = \$4`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest("DELETE", "/expense/5f8d7c6b-0000-4000-8000-222222222222", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddExpensesRejectsEmptyBatch(t *testing.T) {
	app, mock := newExpenseTestApp(t)
	// route registered ad hoc, the empty-batch check fires before any SQL
	app.Post("/expense/farm/:farm_id", func(c *fiber.Ctx) error {
		return NewExpenseController(nil).AddExpenses(c)
	})

	req := httptest.NewRequest("POST", "/expense/farm/"+testFarmID, strings.NewReader(`[]`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
