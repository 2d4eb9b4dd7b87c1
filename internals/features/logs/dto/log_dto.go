// file: internals/features/logs/dto/log_dto.go
package dto

import (
	"time"

	model "litefarm_backend/internals/features/logs/model"
)

/* =========================================================
   REQUEST: Create / Patch
   The body stays flat like the original API: base fields,
   crop/field link ids, and the kind-specific attributes of
   whichever kind is being written.
   ========================================================= */

type LogRequest struct {
	ActivityKind model.ActivityKind `json:"activity_kind" validate:"required"`
	Date         *time.Time         `json:"date"`
	Notes        *string            `json:"notes"`
	ActionNeeded *bool              `json:"action_needed"`
	Photo        *string            `json:"photo"`

	// link ids: field_crop ids and field ids
	Crops  []int64 `json:"crops"`
	Fields []int64 `json:"fields"`

	// fertilizing
	FertilizerType  *string  `json:"fertilizer_type"`
	QuantityKg      *float64 `json:"quantity_kg"`
	MoistureContent *float64 `json:"moisture_content"`
	NPercentage     *float64 `json:"n_percentage"`
	PPercentage     *float64 `json:"p_percentage"`
	KPercentage     *float64 `json:"k_percentage"`

	// pestControl / scouting / irrigation / fieldWork share "type"
	Type   *string `json:"type"`
	Target *string `json:"target"`

	// irrigation
	FlowRateLPerMin *float64 `json:"flow_rate_l/min"`
	Hours           *float64 `json:"hours"`

	// soilData
	StartDepthCm    *float64 `json:"start_depth"`
	EndDepthCm      *float64 `json:"end_depth"`
	Texture         *string  `json:"texture"`
	K               *float64 `json:"k"`
	P               *float64 `json:"p"`
	N               *float64 `json:"n"`
	OM              *float64 `json:"om"`
	PH              *float64 `json:"ph"`
	BulkDensityKgM3 *float64 `json:"bulk_density_kg/m3"`
	DepthUnit       *string  `json:"depth_unit"`

	// seeding
	SpaceDepthCm   *float64 `json:"space_depth_cm"`
	SpaceLengthCm  *float64 `json:"space_length_cm"`
	SpaceWidthCm   *float64 `json:"space_width_cm"`
	RateSeedsPerM2 *float64 `json:"rate_seeds/m2"`
}

// ToBase builds the base row. The owner is always the authenticated user,
// never whatever the body claims.
func (r *LogRequest) ToBase(userID string) model.ActivityLog {
	base := model.ActivityLog{
		ActivityKind: r.ActivityKind,
		UserID:       userID,
		Date:         time.Now().UTC(),
	}
	if r.Date != nil {
		base.Date = *r.Date
	}
	if r.Notes != nil {
		base.Notes = *r.Notes
	}
	if r.ActionNeeded != nil {
		base.ActionNeeded = *r.ActionNeeded
	}
	base.Photo = r.Photo
	return base
}

// Extension materializes the kind-specific row for activityID. Returns
// nil for the sentinel kinds and ErrUnknownKind for anything outside the
// closed set.
func (r *LogRequest) Extension(kind model.ActivityKind, activityID int64) (model.ExtensionRow, error) {
	if !kind.Valid() {
		_, err := model.ResolveKind(kind)
		return nil, err
	}

	switch kind {
	case model.KindFertilizing:
		ext := &model.FertilizerLog{ActivityID: activityID}
		if r.FertilizerType != nil {
			ext.FertilizerType = *r.FertilizerType
		}
		if r.QuantityKg != nil {
			ext.QuantityKg = *r.QuantityKg
		}
		ext.MoistureContent = r.MoistureContent
		ext.NPercentage = r.NPercentage
		ext.PPercentage = r.PPercentage
		ext.KPercentage = r.KPercentage
		return ext, nil

	case model.KindPestControl:
		ext := &model.PestControlLog{ActivityID: activityID}
		if r.QuantityKg != nil {
			ext.PesticideQuantityKg = *r.QuantityKg
		}
		if r.Type != nil {
			ext.PestControlType = *r.Type
		}
		if r.Target != nil {
			ext.TargetDiseaseOrPest = *r.Target
		}
		return ext, nil

	case model.KindScouting:
		ext := &model.ScoutingLog{ActivityID: activityID}
		if r.Type != nil {
			ext.Type = *r.Type
		}
		return ext, nil

	case model.KindIrrigation:
		ext := &model.IrrigationLog{ActivityID: activityID}
		if r.Type != nil {
			ext.Type = *r.Type
		}
		ext.FlowRateLPerMin = r.FlowRateLPerMin
		ext.Hours = r.Hours
		return ext, nil

	case model.KindFieldWork:
		ext := &model.FieldWorkLog{ActivityID: activityID}
		if r.Type != nil {
			ext.Type = *r.Type
		}
		return ext, nil

	case model.KindSoilData:
		return &model.SoilDataLog{
			ActivityID:      activityID,
			StartDepthCm:    r.StartDepthCm,
			EndDepthCm:      r.EndDepthCm,
			Texture:         r.Texture,
			K:               r.K,
			P:               r.P,
			N:               r.N,
			OM:              r.OM,
			PH:              r.PH,
			BulkDensityKgM3: r.BulkDensityKgM3,
			DepthUnit:       r.DepthUnit,
		}, nil

	case model.KindSeeding:
		return &model.SeedLog{
			ActivityID:     activityID,
			SpaceDepthCm:   r.SpaceDepthCm,
			SpaceLengthCm:  r.SpaceLengthCm,
			SpaceWidthCm:   r.SpaceWidthCm,
			RateSeedsPerM2: r.RateSeedsPerM2,
		}, nil

	case model.KindHarvest:
		ext := &model.HarvestLog{ActivityID: activityID}
		if r.QuantityKg != nil {
			ext.QuantityKg = *r.QuantityKg
		}
		return ext, nil
	}

	// sentinel kinds
	return nil, nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type CropLink struct {
	ActivityID     int64  `json:"-" gorm:"column:activity_id"`
	FieldCropID    int64  `json:"field_crop_id" gorm:"column:field_crop_id"`
	FieldID        int64  `json:"field_id" gorm:"column:field_id"`
	CropID         int64  `json:"crop_id" gorm:"column:crop_id"`
	CropCommonName string `json:"crop_common_name" gorm:"column:crop_common_name"`
}

type FieldLink struct {
	ActivityID int64  `json:"-" gorm:"column:activity_id"`
	FieldID    int64  `json:"field_id" gorm:"column:field_id"`
	FieldName  string `json:"field_name" gorm:"column:field_name"`
}

type LogResponse struct {
	model.ActivityLog
	Extension  model.ExtensionRow `json:"extension,omitempty"`
	FieldCrops []CropLink         `json:"fieldCrop"`
	Fields     []FieldLink        `json:"field"`
}

// FarmLogResponse adds the logger's name, matching the farm listing of
// the original API.
type FarmLogResponse struct {
	LogResponse
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
