// validation/schedule.go
package validation

import (
	"sort"

	"github.com/evgrid/console/model"
)

// NormalizeSchedule prepares a schedule edit for submission: slots are
// clamped to [0, totalSlots], days without a date are dropped, duplicate
// dates keep the last entry, and the result is date-ordered. The backend
// still answers 409 when it disagrees.
func NormalizeSchedule(days []model.ScheduleDay, totalSlots int) []model.ScheduleDay {
	byDate := make(map[string]int, len(days))
	order := make([]string, 0, len(days))

	for _, d := range days {
		if d.Date == "" {
			continue
		}
		slots := d.AvailableSlots
		if slots < 0 {
			slots = 0
		}
		if slots > totalSlots {
			slots = totalSlots
		}
		if _, seen := byDate[d.Date]; !seen {
			order = append(order, d.Date)
		}
		byDate[d.Date] = slots
	}

	sort.Strings(order)
	out := make([]model.ScheduleDay, 0, len(order))
	for _, date := range order {
		out = append(out, model.ScheduleDay{Date: date, AvailableSlots: byDate[date]})
	}
	return out
}
