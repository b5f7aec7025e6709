// validation/forms_test.go
package validation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/evgrid/console/model"
	"github.com/evgrid/console/validation"
)

func fieldErrors(t *testing.T, err error) validation.FieldErrors {
	t.Helper()
	var fe validation.FieldErrors
	assert.True(t, errors.As(err, &fe), "expected FieldErrors, got %v", err)
	return fe
}

func TestOwnerCreateForm(t *testing.T) {
	val := validation.New()

	valid := validation.OwnerCreateForm{
		NIC:      "991234567V",
		FullName: "Nimal Perera",
		Email:    "n@p.lk",
		Phone:    "0771234567",
		Password: "secret1",
	}
	assert.NoError(t, val.Struct(valid))

	t.Run("OneMessagePerField", func(t *testing.T) {
		fe := fieldErrors(t, val.Struct(validation.OwnerCreateForm{
			NIC:      "99",
			FullName: "N",
			Email:    "not-an-email",
			Phone:    "077",
			Password: "abc",
		}))
		assert.Len(t, fe, 5)
		assert.Equal(t, "Valid email required", fe["Email"])
		assert.Contains(t, fe["NIC"], "at least 5")
	})

	t.Run("MissingRequired", func(t *testing.T) {
		fe := fieldErrors(t, val.Struct(validation.OwnerCreateForm{}))
		assert.Contains(t, fe["NIC"], "required")
	})
}

func TestStationForm(t *testing.T) {
	val := validation.New()

	valid := validation.StationForm{
		Name:       "Fort AC",
		Type:       "AC",
		TotalSlots: 4,
		Location:   "Colombo Fort",
		Lat:        6.9344,
		Lng:        79.8428,
	}
	assert.NoError(t, val.Struct(valid))

	t.Run("TypeEnum", func(t *testing.T) {
		bad := valid
		bad.Type = "Tesla"
		fe := fieldErrors(t, val.Struct(bad))
		assert.Contains(t, fe["Type"], "AC DC")
	})

	t.Run("CoordinateRange", func(t *testing.T) {
		bad := valid
		bad.Lat = 91
		fe := fieldErrors(t, val.Struct(bad))
		assert.Contains(t, fe["Lat"], "out of range")
	})

	t.Run("SlotsAtLeastOne", func(t *testing.T) {
		bad := valid
		bad.TotalSlots = 0
		fe := fieldErrors(t, val.Struct(bad))
		assert.NotEmpty(t, fe["TotalSlots"])
	})
}

func TestStaffRegisterForm(t *testing.T) {
	val := validation.New()

	valid := validation.StaffRegisterForm{
		FullName: "Operator One",
		Email:    "op@b.lk",
		Password: "secret1",
		Role:     "Operator",
		Phone:    "0771234567",
	}

	t.Run("OperatorNeedsStations", func(t *testing.T) {
		fe := fieldErrors(t, val.Struct(valid))
		assert.Contains(t, fe["StationIDs"], "required")
	})

	t.Run("OperatorWithStations", func(t *testing.T) {
		form := valid
		form.StationIDs = []string{"s1"}
		assert.NoError(t, val.Struct(form))
	})

	t.Run("BackofficeWithoutStations", func(t *testing.T) {
		form := valid
		form.Role = "Backoffice"
		assert.NoError(t, val.Struct(form))
	})

	t.Run("UnknownRole", func(t *testing.T) {
		form := valid
		form.Role = "Owner"
		form.StationIDs = []string{"s1"}
		fe := fieldErrors(t, val.Struct(form))
		assert.NotEmpty(t, fe["Role"])
	})
}

func TestPasswordChangeForm(t *testing.T) {
	val := validation.New()

	t.Run("ConfirmationMustMatch", func(t *testing.T) {
		fe := fieldErrors(t, val.Struct(validation.PasswordChangeForm{
			CurrentPassword: "old-pass",
			NewPassword:     "new-pass",
			ConfirmPassword: "different",
		}))
		assert.Equal(t, "Passwords do not match", fe["ConfirmPassword"])
	})

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, val.Struct(validation.PasswordChangeForm{
			CurrentPassword: "old-pass",
			NewPassword:     "new-pass",
			ConfirmPassword: "new-pass",
		}))
	})
}

func TestBookingFormPayload(t *testing.T) {
	loc := time.FixedZone("UTC+5:30", 5*3600+1800)
	form := validation.BookingForm{
		StationID: "s1",
		StartTime: time.Date(2025, 10, 5, 10, 0, 0, 0, loc),
		EndTime:   time.Date(2025, 10, 5, 12, 0, 0, 0, loc),
	}

	p := form.Payload()
	assert.Equal(t, time.UTC, p.StartTime.Location())
	assert.Equal(t, "s1", p.StationID)
	assert.Empty(t, p.OwnerNIC)
}

func TestNormalizeSchedule(t *testing.T) {
	days := []model.ScheduleDay{
		{Date: "2025-10-06", AvailableSlots: 15}, // above capacity
		{Date: "2025-10-05", AvailableSlots: -2}, // below zero
		{Date: "", AvailableSlots: 3},            // dropped
		{Date: "2025-10-05", AvailableSlots: 4},  // duplicate keeps last
	}

	out := validation.NormalizeSchedule(days, 10)
	assert.Equal(t, []model.ScheduleDay{
		{Date: "2025-10-05", AvailableSlots: 4},
		{Date: "2025-10-06", AvailableSlots: 10},
	}, out)
}
