// viewmodel/profile.go
package viewmodel

import (
	"github.com/evgrid/console/model"
)

// profileRecord unwraps the optional {profile:{...}} envelope some
// backend generations put around the current-user payload.
func profileRecord(data map[string]interface{}) Record {
	if inner, ok := data["profile"].(map[string]interface{}); ok {
		return Record(inner)
	}
	return Record(data)
}

// ProfileFrom flattens a raw current-user payload into the canonical
// profile shape.
func ProfileFrom(data map[string]interface{}) model.Profile {
	rec := profileRecord(data)
	return model.Profile{
		Email:      StringField(rec, "email", "Email"),
		FullName:   StringField(rec, "fullName", "FullName", "name"),
		Phone:      StringField(rec, "phone", "Phone"),
		Role:       StringField(rec, "role", "Role"),
		StationIDs: stringSlice(rec, "stationIds", "StationIds"),
	}
}

// ProfileStationIDs resolves an operator's assigned stations from a raw
// current-user payload.
func ProfileStationIDs(data map[string]interface{}) []string {
	return stringSlice(profileRecord(data), "stationIds", "StationIds")
}
