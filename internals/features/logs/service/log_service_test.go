// file: internals/features/logs/service/log_service_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dto "litefarm_backend/internals/features/logs/dto"
	model "litefarm_backend/internals/features/logs/model"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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
	return db, mock
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestInsertLogFertilizingWritesExtension(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`INSERT INTO "activity_log"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id", "action_needed", "deleted"}).
			AddRow(int64(42), false, false))
	mock.ExpectExec(`INSERT INTO "activity_crops"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "activity_fields"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "fertilizer_log"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}).AddRow(int64(42)))

	date := time.Date(2019, 3, 15, 0, 0, 0, 0, time.UTC)
	req := &dto.LogRequest{
		ActivityKind:   model.KindFertilizing,
		Date:           &date,
		Notes:          strPtr("spring application"),
		Crops:          []int64{5},
		Fields:         []int64{7},
		FertilizerType: strPtr("manure"),
		QuantityKg:     f64Ptr(10),
	}

	id, err := InsertLog(db, "user-1", req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertLogSentinelKindSkipsExtension(t *testing.T) {
	db, mock := newTestDB(t)

	for _, kind := range []model.ActivityKind{model.KindOther, model.KindOthers} {
		// only the base row, no link or extension statements
		mock.ExpectQuery(`INSERT INTO "activity_log"`).
			WillReturnRows(sqlmock.NewRows([]string{"activity_id", "action_needed", "deleted"}).
				AddRow(int64(9), false, false))

		req := &dto.LogRequest{ActivityKind: kind}
		id, err := InsertLog(db, "user-1", req)
		require.NoError(t, err, string(kind))
		assert.Equal(t, int64(9), id)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertLogUnknownKind(t *testing.T) {
	db, mock := newTestDB(t)

	req := &dto.LogRequest{ActivityKind: "watering"}
	_, err := InsertLog(db, "user-1", req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnknownKind))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchLogUsesStoredKind(t *testing.T) {
	db, mock := newTestDB(t)

	// stored row is a harvest log; the body claims fertilizing
	mock.ExpectQuery(`SELECT .* FROM "activity_log"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"activity_id", "activity_kind", "date", "user_id", "notes", "action_needed", "photo", "deleted",
		}).AddRow(int64(7), "harvest", time.Now(), "user-1", "", false, nil, false))

	mock.ExpectExec(`UPDATE "activity_log"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "activity_crops"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "activity_fields"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "harvest_log"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := &dto.LogRequest{
		ActivityKind: model.KindFertilizing,
		QuantityKg:   f64Ptr(3.5),
	}
	err := PatchLog(db, 7, "user-2", "farm-1", req)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchLogNotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT .* FROM "activity_log"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}))

	req := &dto.LogRequest{ActivityKind: model.KindHarvest}
	err := PatchLog(db, 99, "user-1", "farm-1", req)
	assert.True(t, errors.Is(err, ErrLogNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The stored-row lookup carries the farm reachability predicate, so a
// patch aimed at another farm's log id reads as not found.
func TestPatchLogOtherFarmNotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT .* FROM "activity_log" WHERE activity_id = \$1 AND deleted = \$2 AND EXISTS \(SELECT 1 FROM activity_fields`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}))

	req := &dto.LogRequest{ActivityKind: model.KindHarvest}
	err := PatchLog(db, 7, "user-1", "farm-b", req)
	assert.True(t, errors.Is(err, ErrLogNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteLogSoftDeletesBaseRowOnly(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(`UPDATE "activity_log" SET "deleted"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, DeleteLog(db, 7, "farm-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteLogAlreadyDeleted(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(`UPDATE "activity_log" SET "deleted"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := DeleteLog(db, 7, "farm-1")
	assert.True(t, errors.Is(err, ErrLogNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The delete statement must bind the caller's farm into the field
// reachability predicate; another farm's id affects zero rows.
func TestDeleteLogScopedToFarm(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(`UPDATE "activity_log" SET "deleted"=\$1 WHERE activity_id = \$2 AND deleted = \$3 AND EXISTS \(SELECT 1 FROM activity_fields JOIN field`).
		WithArgs(true, int64(7), false, "farm-b").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := DeleteLog(db, 7, "farm-b")
	assert.True(t, errors.Is(err, ErrLogNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLogByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT .* FROM "activity_log"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}))

	_, err := GetLogByID(db, 123)
	assert.True(t, errors.Is(err, ErrLogNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLogByIDAttachesExtension(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT .* FROM "activity_log"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"activity_id", "activity_kind", "date", "user_id", "notes", "action_needed", "photo", "deleted",
		}).AddRow(int64(7), "harvest", time.Now(), "user-1", "first picking", false, nil, false))
	mock.ExpectQuery(`SELECT \* FROM "harvest_log" WHERE activity_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id", "quantity_kg"}).
			AddRow(int64(7), 3.5))
	mock.ExpectQuery(`FROM "activity_crops" JOIN field_crop`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id", "field_crop_id", "field_id", "crop_id", "crop_common_name"}))
	mock.ExpectQuery(`FROM "activity_fields" JOIN field`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id", "field_id", "field_name"}))

	resp, err := GetLogByID(db, 7)
	require.NoError(t, err)

	ext, ok := resp.Extension.(*model.HarvestLog)
	require.True(t, ok, "extension must be the harvest row")
	assert.Equal(t, 3.5, ext.QuantityKg)
	assert.NotNil(t, resp.FieldCrops)
	assert.Empty(t, resp.FieldCrops)
	assert.NotNil(t, resp.Fields)
	assert.Empty(t, resp.Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Sentinel kinds carry no extension table, so the by-id read must skip
// straight from the base row to the link fetches.
func TestGetLogByIDSentinelKind(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT .* FROM "activity_log"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"activity_id", "activity_kind", "date", "user_id", "notes", "action_needed", "photo", "deleted",
		}).AddRow(int64(9), "other", time.Now(), "user-1", "", false, nil, false))
	mock.ExpectQuery(`FROM "activity_crops" JOIN field_crop`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id", "field_crop_id", "field_id", "crop_id", "crop_common_name"}))
	mock.ExpectQuery(`FROM "activity_fields" JOIN field`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id", "field_id", "field_name"}))

	resp, err := GetLogByID(db, 9)
	require.NoError(t, err)
	assert.Nil(t, resp.Extension)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A mixed farm listing: the fertilizing row gets its extension and its
// crop/field links attached, the sentinel row gets a nil extension and
// empty (not nil) link slices. One extension query serves the whole
// fertilizing batch.
func TestGetLogsByFarmBatchesExtensionsAndLinks(t *testing.T) {
	db, mock := newTestDB(t)

	date := time.Date(2019, 3, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT DISTINCT users\.first_name`).
		WillReturnRows(sqlmock.NewRows([]string{
			"first_name", "last_name", "activity_id", "activity_kind", "date",
			"user_id", "notes", "action_needed", "photo", "deleted",
		}).
			AddRow("Ada", "Lovelace", int64(1), "fertilizing", date, "user-1", "spring application", false, nil, false).
			AddRow("Grace", "Hopper", int64(2), "other", date, "user-2", "", false, nil, false))

	mock.ExpectQuery(`SELECT \* FROM "fertilizer_log" WHERE activity_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id", "fertilizer_type", "quantity_kg"}).
			AddRow(int64(1), "manure", 12.5))
	mock.ExpectQuery(`FROM "activity_crops" JOIN field_crop`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id", "field_crop_id", "field_id", "crop_id", "crop_common_name"}).
			AddRow(int64(1), int64(7), int64(3), int64(9), "Corn"))
	mock.ExpectQuery(`FROM "activity_fields" JOIN field`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id", "field_id", "field_name"}).
			AddRow(int64(1), int64(3), "North field"))

	out, err := GetLogsByFarm(db, "farm-1")
	require.NoError(t, err)
	require.Len(t, out, 2)

	fert := out[0]
	assert.Equal(t, "Ada", fert.FirstName)
	ext, ok := fert.Extension.(*model.FertilizerLog)
	require.True(t, ok, "extension must be the fertilizer row")
	assert.Equal(t, "manure", ext.FertilizerType)
	assert.Equal(t, 12.5, ext.QuantityKg)
	require.Len(t, fert.FieldCrops, 1)
	assert.Equal(t, int64(7), fert.FieldCrops[0].FieldCropID)
	assert.Equal(t, "Corn", fert.FieldCrops[0].CropCommonName)
	require.Len(t, fert.Fields, 1)
	assert.Equal(t, "North field", fert.Fields[0].FieldName)

	sentinel := out[1]
	assert.Equal(t, "Grace", sentinel.FirstName)
	assert.Nil(t, sentinel.Extension)
	assert.NotNil(t, sentinel.FieldCrops)
	assert.Empty(t, sentinel.FieldCrops)
	assert.NotNil(t, sentinel.Fields)
	assert.Empty(t, sentinel.Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLogsByFarmEmpty(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT DISTINCT users\.first_name`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id"}))

	out, err := GetLogsByFarm(db, "farm-1")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
