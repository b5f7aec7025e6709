package model

// ScheduleDay is a single calendar day of advertised capacity.
type ScheduleDay struct {
	Date           string `json:"date"` // ISO calendar date, yyyy-mm-dd
	AvailableSlots int    `json:"availableSlots"`
}

// Station is a charging station record.
type Station struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Type       string        `json:"type"` // "AC" or "DC"
	TotalSlots int           `json:"totalSlots"`
	Location   string        `json:"location"`
	Lat        float64       `json:"lat"`
	Lng        float64       `json:"lng"`
	IsActive   bool          `json:"isActive"`
	Schedule   []ScheduleDay `json:"schedule,omitempty"`
}

// SchedulePayload is the body of the schedule replacement call.
type SchedulePayload struct {
	ReplaceAll bool          `json:"replaceAll"`
	Days       []ScheduleDay `json:"days"`
}
