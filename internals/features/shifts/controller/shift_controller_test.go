// file: internals/features/shifts/controller/shift_controller_test.go
package controller

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authMw "litefarm_backend/internals/middlewares/auth"
)

func newShiftTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
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

	ctl := NewShiftController(db)
	app := fiber.New()
	app.Get("/shift/farm/:farm_id", ctl.GetShiftsByFarm)
	// farm context local as the middleware chain would set it
	app.Delete("/shift/:shift_id", func(c *fiber.Ctx) error {
		c.Locals(authMw.LocalFarmID, "farm-a")
		return ctl.DeleteShift(c)
	})
	return app, mock
}

// The farm listing must go through shift_task -> field to scope shifts,
// so work recorded on another farm's fields never leaks in.
func TestGetShiftsByFarmScopesThroughFields(t *testing.T) {
	app, mock := newShiftTestApp(t)

	mock.ExpectQuery(`SELECT DISTINCT shift\.\* FROM "shift" `+
		`JOIN shift_task ON shift_task\.shift_id = shift\.shift_id `+
		`JOIN field ON field\.field_id = shift_task\.field_id `+
		`WHERE field\.farm_id = \$1 AND shift\.deleted = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"shift_id", "user_id", "start_time", "end_time"}).
			AddRow(int64(3), "user-1", time.Now(), time.Now().Add(4*time.Hour)))

	resp, err := app.Test(httptest.NewRequest("GET", "/shift/farm/some-farm", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetShiftsByFarmEmpty(t *testing.T) {
	app, mock := newShiftTestApp(t)

	mock.ExpectQuery(`SELECT DISTINCT shift\.\*`).
		WillReturnRows(sqlmock.NewRows([]string{"shift_id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/shift/farm/some-farm", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Deletes carry the same field-reachability scoping as the farm
// listing; the caller's farm is bound into the EXISTS predicate.
func TestDeleteShiftScopedToFarm(t *testing.T) {
	app, mock := newShiftTestApp(t)

	mock.ExpectExec(`UPDATE "shift" SET "deleted"=\$1 WHERE shift_id = \$2 AND deleted = \$3 AND EXISTS \(SELECT 1 FROM shift_task JOIN field`).
		WithArgs(true, int64(42), false, "farm-a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/shift/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteShiftNotFound(t *testing.T) {
	app, mock := newShiftTestApp(t)

	mock.ExpectExec(`UPDATE "shift" SET "deleted"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/shift/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
