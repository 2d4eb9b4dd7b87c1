// file: internals/features/logs/model/kind.go
package model

import (
	"errors"
	"fmt"
)

// ActivityKind is the closed discriminator of activity_log rows. The JS
// ancestor routed kinds through an if/else chain that threw a bare string
// on unknown values; here the set is closed and an unknown kind is a typed
// error the handler maps to 400.
type ActivityKind string

const (
	KindFertilizing ActivityKind = "fertilizing"
	KindPestControl ActivityKind = "pestControl"
	KindScouting    ActivityKind = "scouting"
	KindIrrigation  ActivityKind = "irrigation"
	KindHarvest     ActivityKind = "harvest"
	KindFieldWork   ActivityKind = "fieldWork"
	KindSoilData    ActivityKind = "soilData"
	KindSeeding     ActivityKind = "seeding"

	// Sentinel kinds: recognized, but they persist no extension row.
	KindOther  ActivityKind = "other"
	KindOthers ActivityKind = "others"
)

var ErrUnknownKind = errors.New("unknown activity kind")

// ExtensionSpec describes where a kind's extension row lives and how to
// materialize it. Kinds without an extension map to a nil spec.
type ExtensionSpec struct {
	Table    string
	New      func() ExtensionRow
	NewSlice func() any // *[]T for bulk fetches
}

var kindRegistry = map[ActivityKind]*ExtensionSpec{
	KindFertilizing: {
		Table:    FertilizerLog{}.TableName(),
		New:      func() ExtensionRow { return &FertilizerLog{} },
		NewSlice: func() any { return &[]FertilizerLog{} },
	},
	KindPestControl: {
		Table:    PestControlLog{}.TableName(),
		New:      func() ExtensionRow { return &PestControlLog{} },
		NewSlice: func() any { return &[]PestControlLog{} },
	},
	KindScouting: {
		Table:    ScoutingLog{}.TableName(),
		New:      func() ExtensionRow { return &ScoutingLog{} },
		NewSlice: func() any { return &[]ScoutingLog{} },
	},
	KindIrrigation: {
		Table:    IrrigationLog{}.TableName(),
		New:      func() ExtensionRow { return &IrrigationLog{} },
		NewSlice: func() any { return &[]IrrigationLog{} },
	},
	KindHarvest: {
		Table:    HarvestLog{}.TableName(),
		New:      func() ExtensionRow { return &HarvestLog{} },
		NewSlice: func() any { return &[]HarvestLog{} },
	},
	KindFieldWork: {
		Table:    FieldWorkLog{}.TableName(),
		New:      func() ExtensionRow { return &FieldWorkLog{} },
		NewSlice: func() any { return &[]FieldWorkLog{} },
	},
	KindSoilData: {
		Table:    SoilDataLog{}.TableName(),
		New:      func() ExtensionRow { return &SoilDataLog{} },
		NewSlice: func() any { return &[]SoilDataLog{} },
	},
	KindSeeding: {
		Table:    SeedLog{}.TableName(),
		New:      func() ExtensionRow { return &SeedLog{} },
		NewSlice: func() any { return &[]SeedLog{} },
	},

	// no extension table for the sentinels
	KindOther:  nil,
	KindOthers: nil,
}

// ResolveKind returns the extension spec for a kind. A nil spec with a nil
// error means the kind is valid but carries no extension row.
func ResolveKind(kind ActivityKind) (*ExtensionSpec, error) {
	spec, ok := kindRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	return spec, nil
}

// Valid reports whether the kind is a member of the closed set.
func (k ActivityKind) Valid() bool {
	_, ok := kindRegistry[k]
	return ok
}

// HasExtension reports whether the kind persists a one-to-one extension row.
func (k ActivityKind) HasExtension() bool {
	spec, ok := kindRegistry[k]
	return ok && spec != nil
}
