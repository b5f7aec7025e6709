// validation/booking_rules_test.go
package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/evgrid/console/validation"
)

var now = time.Date(2025, 10, 4, 12, 0, 0, 0, time.UTC)

func TestCheckBookingTimes(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       error
	}{
		{
			"Valid",
			now.Add(24 * time.Hour),
			now.Add(26 * time.Hour),
			nil,
		},
		{
			"EndBeforeStart",
			now.Add(24 * time.Hour),
			now.Add(23 * time.Hour),
			validation.ErrEndBeforeStart,
		},
		{
			"EndEqualsStart",
			now.Add(24 * time.Hour),
			now.Add(24 * time.Hour),
			validation.ErrEndBeforeStart,
		},
		{
			"ThirtyMinutesTooShort",
			now.Add(24 * time.Hour),
			now.Add(24*time.Hour + 30*time.Minute),
			validation.ErrTooShort,
		},
		{
			"ExactlySixtyMinutes",
			now.Add(24 * time.Hour),
			now.Add(25 * time.Hour),
			nil,
		},
		{
			"EightDaysOut",
			now.AddDate(0, 0, 8),
			now.AddDate(0, 0, 8).Add(2 * time.Hour),
			validation.ErrBeyondWindow,
		},
		{
			"ExactlySevenDaysOut",
			now.AddDate(0, 0, 7),
			now.AddDate(0, 0, 7).Add(2 * time.Hour),
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.CheckBookingTimes(now, tt.start, tt.end)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheckBookingEdit(t *testing.T) {
	start := now.Add(24 * time.Hour)
	end := start.Add(2 * time.Hour)

	t.Run("AllowedWhileOutsideCutoff", func(t *testing.T) {
		assert.NoError(t, validation.CheckBookingEdit(now, start, end, now.Add(13*time.Hour)))
	})

	t.Run("CutoffUsesOriginalStart", func(t *testing.T) {
		// The edited start is far away; the original start six hours out
		// is what blocks the change.
		err := validation.CheckBookingEdit(now, start, end, now.Add(6*time.Hour))
		assert.ErrorIs(t, err, validation.ErrPastEditCutoff)
	})

	t.Run("TimeRulesStillApply", func(t *testing.T) {
		err := validation.CheckBookingEdit(now, start, start.Add(30*time.Minute), now.Add(48*time.Hour))
		assert.ErrorIs(t, err, validation.ErrTooShort)
	})
}

func TestIsRuleError(t *testing.T) {
	assert.True(t, validation.IsRuleError(validation.ErrTooShort))
	assert.True(t, validation.IsRuleError(validation.ErrPastEditCutoff))
	assert.False(t, validation.IsRuleError(assert.AnError))
	assert.False(t, validation.IsRuleError(nil))
}

func TestRuleMessages(t *testing.T) {
	// These messages surface verbatim in the UI; keep them stable.
	assert.Equal(t, "End must be after start.", validation.ErrEndBeforeStart.Error())
	assert.Equal(t, "Reservation must be at least 60 minutes.", validation.ErrTooShort.Error())
	assert.Equal(t, "Reservation must be within 7 days from now.", validation.ErrBeyondWindow.Error())
	assert.Equal(t, "Changes allowed only until 12 hours before the original start time.", validation.ErrPastEditCutoff.Error())
}
