// file: internals/features/logs/model/extension_models.go
package model

// Extension rows share the base row's activity_id as their primary key.
// All of them satisfy ExtensionRow so the service can bulk-index fetched
// rows without knowing the concrete type.

type ExtensionRow interface {
	ActivityRef() int64
}

/* ========================= fertilizing ========================= */

type FertilizerLog struct {
	ActivityID      int64    `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	FertilizerType  string   `json:"fertilizer_type" gorm:"column:fertilizer_type"`
	QuantityKg      float64  `json:"quantity_kg" gorm:"column:quantity_kg"`
	MoistureContent *float64 `json:"moisture_content,omitempty" gorm:"column:moisture_content"`
	NPercentage     *float64 `json:"n_percentage,omitempty" gorm:"column:n_percentage"`
	PPercentage     *float64 `json:"p_percentage,omitempty" gorm:"column:p_percentage"`
	KPercentage     *float64 `json:"k_percentage,omitempty" gorm:"column:k_percentage"`
}

func (FertilizerLog) TableName() string     { return "fertilizer_log" }
func (l *FertilizerLog) ActivityRef() int64 { return l.ActivityID }

/* ========================= pestControl ========================= */

type PestControlLog struct {
	ActivityID          int64   `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	PesticideQuantityKg float64 `json:"quantity_kg" gorm:"column:quantity_kg"`
	PestControlType     string  `json:"type" gorm:"column:type"`
	TargetDiseaseOrPest string  `json:"target" gorm:"column:target"`
}

func (PestControlLog) TableName() string     { return "pest_control_log" }
func (l *PestControlLog) ActivityRef() int64 { return l.ActivityID }

/* ========================= scouting ========================= */

type ScoutingLog struct {
	ActivityID int64  `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	Type       string `json:"type" gorm:"column:type"`
}

func (ScoutingLog) TableName() string     { return "scouting_log" }
func (l *ScoutingLog) ActivityRef() int64 { return l.ActivityID }

/* ========================= irrigation ========================= */

type IrrigationLog struct {
	ActivityID      int64    `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	Type            string   `json:"type" gorm:"column:type"`
	FlowRateLPerMin *float64 `json:"flow_rate_l/min,omitempty" gorm:"column:flow_rate_l_min"`
	Hours           *float64 `json:"hours,omitempty" gorm:"column:hours"`
}

func (IrrigationLog) TableName() string     { return "irrigation_log" }
func (l *IrrigationLog) ActivityRef() int64 { return l.ActivityID }

/* ========================= fieldWork ========================= */

type FieldWorkLog struct {
	ActivityID int64  `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	Type       string `json:"type" gorm:"column:type"`
}

func (FieldWorkLog) TableName() string     { return "field_work_log" }
func (l *FieldWorkLog) ActivityRef() int64 { return l.ActivityID }

/* ========================= soilData ========================= */

type SoilDataLog struct {
	ActivityID       int64    `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	StartDepthCm     *float64 `json:"start_depth,omitempty" gorm:"column:start_depth"`
	EndDepthCm       *float64 `json:"end_depth,omitempty" gorm:"column:end_depth"`
	Texture          *string  `json:"texture,omitempty" gorm:"column:texture"`
	K                *float64 `json:"k,omitempty" gorm:"column:k"`
	P                *float64 `json:"p,omitempty" gorm:"column:p"`
	N                *float64 `json:"n,omitempty" gorm:"column:n"`
	OM               *float64 `json:"om,omitempty" gorm:"column:om"`
	PH               *float64 `json:"ph,omitempty" gorm:"column:ph"`
	BulkDensityKgM3  *float64 `json:"bulk_density_kg/m3,omitempty" gorm:"column:bulk_density_kg_m3"`
	DepthUnit        *string  `json:"depth_unit,omitempty" gorm:"column:depth_unit"`
}

func (SoilDataLog) TableName() string     { return "soil_data_log" }
func (l *SoilDataLog) ActivityRef() int64 { return l.ActivityID }

/* ========================= seeding ========================= */

type SeedLog struct {
	ActivityID     int64    `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	SpaceDepthCm   *float64 `json:"space_depth_cm,omitempty" gorm:"column:space_depth_cm"`
	SpaceLengthCm  *float64 `json:"space_length_cm,omitempty" gorm:"column:space_length_cm"`
	SpaceWidthCm   *float64 `json:"space_width_cm,omitempty" gorm:"column:space_width_cm"`
	RateSeedsPerM2 *float64 `json:"rate_seeds/m2,omitempty" gorm:"column:rate_seeds_m2"`
}

func (SeedLog) TableName() string     { return "seed_log" }
func (l *SeedLog) ActivityRef() int64 { return l.ActivityID }

/* ========================= harvest ========================= */

type HarvestLog struct {
	ActivityID int64   `json:"activity_id" gorm:"column:activity_id;primaryKey"`
	QuantityKg float64 `json:"quantity_kg" gorm:"column:quantity_kg"`
}

func (HarvestLog) TableName() string     { return "harvest_log" }
func (l *HarvestLog) ActivityRef() int64 { return l.ActivityID }
