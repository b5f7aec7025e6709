package model

import "time"

// Booking statuses as the console understands them. The upstream backend
// is free to send variants ("PendingApproval"); the network-wide KPI
// window matches by substring, the per-station counts by exact value.
const (
	BookingPending   = "Pending"
	BookingApproved  = "Approved"
	BookingCompleted = "Completed"
)

// BookingPayload is the create/update body forwarded upstream.
type BookingPayload struct {
	OwnerNIC  string    `json:"ownerNic,omitempty"`
	StationID string    `json:"stationId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}
