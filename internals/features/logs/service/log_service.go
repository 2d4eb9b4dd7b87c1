// file: internals/features/logs/service/log_service.go
package service

import (
	"errors"
	"reflect"

	"gorm.io/gorm"

	dto "litefarm_backend/internals/features/logs/dto"
	model "litefarm_backend/internals/features/logs/model"
)

// ErrLogNotFound is returned whenever an activity id does not resolve to
// an alive base row. Soft-deleted rows are invisible here by rule.
var ErrLogNotFound = errors.New("Log not found")

/* =========================
   INSERT
   ========================= */

// InsertLog writes the base row, its crop/field links, and the extension
// row (unless the kind is a sentinel) on the given transaction. The caller
// owns commit/rollback.
func InsertLog(tx *gorm.DB, userID string, req *dto.LogRequest) (int64, error) {
	spec, err := model.ResolveKind(req.ActivityKind)
	if err != nil {
		return 0, err
	}

	base := req.ToBase(userID)
	if err := tx.Create(&base).Error; err != nil {
		return 0, err
	}

	if err := relink(tx, base.ActivityID, req.Crops, req.Fields); err != nil {
		return 0, err
	}

	if spec != nil {
		ext, err := req.Extension(req.ActivityKind, base.ActivityID)
		if err != nil {
			return 0, err
		}
		if err := tx.Create(ext).Error; err != nil {
			return 0, err
		}
	}
	return base.ActivityID, nil
}

/* =========================
   READ BY ID
   ========================= */

func GetLogByID(db *gorm.DB, activityID int64) (*dto.LogResponse, error) {
	var base model.ActivityLog
	err := db.Where("activity_id = ? AND deleted = ?", activityID, false).Take(&base).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.LogResponse{ActivityLog: base}

	spec, err := model.ResolveKind(base.ActivityKind)
	if err != nil {
		return nil, err
	}
	if spec != nil {
		ext := spec.New()
		err := db.Table(spec.Table).Where("activity_id = ?", activityID).Take(ext).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			resp.Extension = ext
		}
	}

	crops, fields, err := fetchLinks(db, []int64{activityID})
	if err != nil {
		return nil, err
	}
	resp.FieldCrops = crops[activityID]
	resp.Fields = fields[activityID]
	if resp.FieldCrops == nil {
		resp.FieldCrops = []dto.CropLink{}
	}
	if resp.Fields == nil {
		resp.Fields = []dto.FieldLink{}
	}
	return resp, nil
}

/* =========================
   READ BY FARM (batched)
   ========================= */

// GetLogsByFarm lists every alive log reachable through a field of the
// farm, enriched with the logger's name, links and extension rows. The
// original walked each row with per-row queries; here the extension and
// link fetches are batched on the collected id set.
func GetLogsByFarm(db *gorm.DB, farmID string) ([]dto.FarmLogResponse, error) {
	type baseRow struct {
		model.ActivityLog
		FirstName string `gorm:"column:first_name"`
		LastName  string `gorm:"column:last_name"`
	}

	var rows []baseRow
	err := db.Table("activity_log").
		Select(`DISTINCT users.first_name, users.last_name,
			activity_log.activity_id, activity_log.activity_kind, activity_log.date,
			activity_log.user_id, activity_log.notes, activity_log.action_needed,
			activity_log.photo, activity_log.deleted`).
		Joins("JOIN activity_fields ON activity_fields.activity_id = activity_log.activity_id").
		Joins("JOIN field ON field.field_id = activity_fields.field_id").
		Joins("JOIN user_farm ON user_farm.farm_id = field.farm_id").
		Joins("JOIN users ON users.user_id = activity_log.user_id").
		Where("user_farm.farm_id = ? AND activity_log.deleted = ?", farmID, false).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []dto.FarmLogResponse{}, nil
	}

	ids := make([]int64, 0, len(rows))
	idsByKind := make(map[model.ActivityKind][]int64)
	for _, r := range rows {
		ids = append(ids, r.ActivityID)
		idsByKind[r.ActivityKind] = append(idsByKind[r.ActivityKind], r.ActivityID)
	}

	extensions, err := fetchExtensions(db, idsByKind)
	if err != nil {
		return nil, err
	}
	crops, fields, err := fetchLinks(db, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.FarmLogResponse, 0, len(rows))
	for _, r := range rows {
		resp := dto.FarmLogResponse{
			LogResponse: dto.LogResponse{
				ActivityLog: r.ActivityLog,
				Extension:   extensions[r.ActivityID],
				FieldCrops:  crops[r.ActivityID],
				Fields:      fields[r.ActivityID],
			},
			FirstName: r.FirstName,
			LastName:  r.LastName,
		}
		if resp.FieldCrops == nil {
			resp.FieldCrops = []dto.CropLink{}
		}
		if resp.Fields == nil {
			resp.Fields = []dto.FieldLink{}
		}
		out = append(out, resp)
	}
	return out, nil
}

// fetchExtensions bulk-loads extension rows, one query per kind present.
func fetchExtensions(db *gorm.DB, idsByKind map[model.ActivityKind][]int64) (map[int64]model.ExtensionRow, error) {
	out := make(map[int64]model.ExtensionRow)
	for kind, ids := range idsByKind {
		spec, err := model.ResolveKind(kind)
		if err != nil {
			return nil, err
		}
		if spec == nil {
			continue
		}
		slice := spec.NewSlice()
		if err := db.Table(spec.Table).Where("activity_id IN ?", ids).Find(slice).Error; err != nil {
			return nil, err
		}
		rv := reflect.ValueOf(slice).Elem()
		for i := 0; i < rv.Len(); i++ {
			ext := rv.Index(i).Addr().Interface().(model.ExtensionRow)
			out[ext.ActivityRef()] = ext
		}
	}
	return out, nil
}

// fetchLinks bulk-loads crop and field associations keyed by activity id.
func fetchLinks(db *gorm.DB, ids []int64) (map[int64][]dto.CropLink, map[int64][]dto.FieldLink, error) {
	var cropRows []dto.CropLink
	err := db.Table("activity_crops").
		Select(`activity_crops.activity_id, field_crop.field_crop_id, field_crop.field_id,
			field_crop.crop_id, crop.crop_common_name`).
		Joins("JOIN field_crop ON field_crop.field_crop_id = activity_crops.field_crop_id").
		Joins("JOIN crop ON crop.crop_id = field_crop.crop_id").
		Where("activity_crops.activity_id IN ?", ids).
		Scan(&cropRows).Error
	if err != nil {
		return nil, nil, err
	}

	var fieldRows []dto.FieldLink
	err = db.Table("activity_fields").
		Select("activity_fields.activity_id, field.field_id, field.field_name").
		Joins("JOIN field ON field.field_id = activity_fields.field_id").
		Where("activity_fields.activity_id IN ?", ids).
		Scan(&fieldRows).Error
	if err != nil {
		return nil, nil, err
	}

	crops := make(map[int64][]dto.CropLink, len(cropRows))
	for _, r := range cropRows {
		crops[r.ActivityID] = append(crops[r.ActivityID], r)
	}
	fields := make(map[int64][]dto.FieldLink, len(fieldRows))
	for _, r := range fieldRows {
		fields[r.ActivityID] = append(fields[r.ActivityID], r)
	}
	return crops, fields, nil
}

/* =========================
   PATCH
   ========================= */

// farmScope restricts an activity_log statement to rows reachable
// through a field of the given farm, the same reachability rule the
// farm listing uses. Ids belonging to another farm read as not found.
const farmScope = `EXISTS (SELECT 1 FROM activity_fields JOIN field ON field.field_id = activity_fields.field_id WHERE activity_fields.activity_id = activity_log.activity_id AND field.farm_id = ?)`

// PatchLog updates base fields, fully re-links crops/fields from the
// body, and patches the extension row of the STORED kind. The body's
// activity_kind is never trusted to re-route the extension.
func PatchLog(tx *gorm.DB, activityID int64, userID, farmID string, req *dto.LogRequest) error {
	var stored model.ActivityLog
	err := tx.Where("activity_id = ? AND deleted = ? AND "+farmScope, activityID, false, farmID).Take(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrLogNotFound
	}
	if err != nil {
		return err
	}

	spec, err := model.ResolveKind(stored.ActivityKind)
	if err != nil {
		return err
	}

	updates := map[string]any{"user_id": userID}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.ActionNeeded != nil {
		updates["action_needed"] = *req.ActionNeeded
	}
	if req.Photo != nil {
		updates["photo"] = *req.Photo
	}
	if err := tx.Model(&model.ActivityLog{}).Where("activity_id = ?", activityID).Updates(updates).Error; err != nil {
		return err
	}

	if err := tx.Where("activity_id = ?", activityID).Delete(&model.ActivityCrops{}).Error; err != nil {
		return err
	}
	if err := tx.Where("activity_id = ?", activityID).Delete(&model.ActivityFields{}).Error; err != nil {
		return err
	}
	if err := relink(tx, activityID, req.Crops, req.Fields); err != nil {
		return err
	}

	if spec != nil {
		ext, err := req.Extension(stored.ActivityKind, activityID)
		if err != nil {
			return err
		}
		if err := tx.Table(spec.Table).Where("activity_id = ?", activityID).Updates(ext).Error; err != nil {
			return err
		}
	}
	return nil
}

/* =========================
   DELETE (soft)
   ========================= */

// DeleteLog flips the soft-delete flag on the base row only; extension
// and link rows stay put and become unreachable through reads. The row
// must belong to the caller's farm.
func DeleteLog(db *gorm.DB, activityID int64, farmID string) error {
	res := db.Model(&model.ActivityLog{}).
		Where("activity_id = ? AND deleted = ? AND "+farmScope, activityID, false, farmID).
		Update("deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}

func relink(tx *gorm.DB, activityID int64, cropIDs, fieldIDs []int64) error {
	if len(cropIDs) > 0 {
		links := make([]model.ActivityCrops, 0, len(cropIDs))
		for _, id := range cropIDs {
			links = append(links, model.ActivityCrops{ActivityID: activityID, FieldCropID: id})
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}
	}
	if len(fieldIDs) > 0 {
		links := make([]model.ActivityFields, 0, len(fieldIDs))
		for _, id := range fieldIDs {
			links = append(links, model.ActivityFields{ActivityID: activityID, FieldID: id})
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}
	}
	return nil
}
