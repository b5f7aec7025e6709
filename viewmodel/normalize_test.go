// viewmodel/normalize_test.go
package viewmodel_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evgrid/console/viewmodel"
)

func rec(t *testing.T, s string) viewmodel.Record {
	t.Helper()
	r := viewmodel.DecodeRecord(json.RawMessage(s))
	assert.NotNil(t, r)
	return r
}

func TestField(t *testing.T) {
	r := rec(t, `{"_id":"abc","id":"def","nullish":null}`)

	t.Run("FirstDefinedWins", func(t *testing.T) {
		assert.Equal(t, "abc", viewmodel.StringField(r, "_id", "id"))
		assert.Equal(t, "def", viewmodel.StringField(r, "id", "_id"))
	})

	t.Run("NullCountsAsAbsent", func(t *testing.T) {
		assert.Equal(t, "def", viewmodel.StringField(r, "nullish", "id"))
	})

	t.Run("AllMissing", func(t *testing.T) {
		assert.Equal(t, "", viewmodel.StringField(r, "nope", "alsoNope"))
	})

	t.Run("NumericCoercion", func(t *testing.T) {
		n := rec(t, `{"totalSlots":"12"}`)
		assert.Equal(t, "12", viewmodel.StringField(n, "totalSlots"))
	})
}

func TestActiveFlag(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name string
		json string
		want *bool
	}{
		{"BoolTrue", `{"isActive":true}`, boolPtr(true)},
		{"BoolFalse", `{"isActive":false}`, boolPtr(false)},
		{"StringTrue", `{"active":"true"}`, boolPtr(true)},
		{"PascalCase", `{"IsActive":false}`, boolPtr(false)},
		{"EnabledAlias", `{"enabled":true}`, boolPtr(true)},
		{"StatusActive", `{"status":"Active"}`, boolPtr(true)},
		{"StatusOther", `{"status":"Suspended"}`, boolPtr(false)},
		{"Unknown", `{"name":"x"}`, nil},
		{"ProbeOrder", `{"isActive":false,"status":"active"}`, boolPtr(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := viewmodel.ActiveFlag(rec(t, tt.json))
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}

	t.Run("DefaultOnlyWhenAbsent", func(t *testing.T) {
		assert.True(t, viewmodel.ActiveOrDefault(rec(t, `{"name":"x"}`), true))
		assert.False(t, viewmodel.ActiveOrDefault(rec(t, `{"isActive":false}`), true))
	})
}

func TestFormatTimeField(t *testing.T) {
	t.Run("ParsesCommonLayouts", func(t *testing.T) {
		for _, s := range []string{
			`{"startTime":"2025-10-04T08:30:00Z"}`,
			`{"startTime":"2025-10-04T08:30:00"}`,
			`{"startTime":"2025-10-04 08:30:00"}`,
		} {
			got := viewmodel.FormatTimeField(rec(t, s), "startTime")
			assert.NotEqual(t, viewmodel.Placeholder, got, s)
		}
	})

	t.Run("PlaceholderNotInvalidDate", func(t *testing.T) {
		assert.Equal(t, viewmodel.Placeholder, viewmodel.FormatTimeField(rec(t, `{"startTime":"whenever"}`), "startTime"))
		assert.Equal(t, viewmodel.Placeholder, viewmodel.FormatTimeField(rec(t, `{}`), "startTime"))
	})
}

func TestLookup(t *testing.T) {
	owners := []json.RawMessage{
		json.RawMessage(`{"nic":" 991234567V ","fullName":"Nimal Perera"}`),
		json.RawMessage(`{"nic":"887654321V"}`),
		json.RawMessage(`{"fullName":"keyless"}`),
	}
	table := viewmodel.BuildLookup(owners, []string{"nic", "Nic"}, []string{"fullName", "FullName", "name"})

	t.Run("TrimmedKeys", func(t *testing.T) {
		assert.Equal(t, "Nimal Perera", table.Get("991234567V"))
		assert.Equal(t, "Nimal Perera", table.Get(" 991234567V "))
	})

	t.Run("MissingValueStoresPlaceholder", func(t *testing.T) {
		assert.Equal(t, viewmodel.Placeholder, table.Get("887654321V"))
	})

	t.Run("DanglingKeyRendersPlaceholder", func(t *testing.T) {
		assert.Equal(t, viewmodel.Placeholder, table.Get("000000000V"))
	})

	t.Run("EmptyKeySkipped", func(t *testing.T) {
		assert.Len(t, table, 2)
	})
}

func TestTodayAvailability(t *testing.T) {
	const today = "2025-10-04"

	t.Run("ExactMatch", func(t *testing.T) {
		station := rec(t, `{"totalSlots":10,"schedule":[
			{"date":"2025-10-03","availableSlots":4},
			{"date":"2025-10-04","availableSlots":7}]}`)
		assert.Equal(t, 7, viewmodel.TodayAvailability(station, today))
	})

	t.Run("PrefixMatchForTimestampedDates", func(t *testing.T) {
		station := rec(t, `{"totalSlots":10,"schedule":[
			{"date":"2025-10-04T00:00:00Z","availableSlots":3}]}`)
		assert.Equal(t, 3, viewmodel.TodayAvailability(station, today))
	})

	t.Run("ExactBeatsPrefix", func(t *testing.T) {
		station := rec(t, `{"totalSlots":10,"schedule":[
			{"date":"2025-10-04T00:00:00Z","availableSlots":3},
			{"date":"2025-10-04","availableSlots":5}]}`)
		assert.Equal(t, 5, viewmodel.TodayAvailability(station, today))
	})

	t.Run("NoEntryFallsBackToTotal", func(t *testing.T) {
		station := rec(t, `{"totalSlots":10,"schedule":[{"date":"2025-10-01","availableSlots":1}]}`)
		assert.Equal(t, 10, viewmodel.TodayAvailability(station, today))
	})

	t.Run("NoScheduleFallsBackToTotal", func(t *testing.T) {
		assert.Equal(t, 8, viewmodel.TodayAvailability(rec(t, `{"totalSlots":8}`), today))
	})
}
