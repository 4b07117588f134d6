package models

import "time"

// Slot is a bookable time range for a provider on a specific date.
// Labels carry the "HH:MM" display form the booking UI renders directly.
type Slot struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	StartLabel string    `json:"startLabel"`
	EndLabel   string    `json:"endLabel"`
}

// CalendarAvailability is the per-day slot map for a date range, used by
// the booking calendar picker.
type CalendarAvailability struct {
	ProviderID     string            `json:"providerId"`
	ServiceID      string            `json:"serviceId"`
	StartDate      string            `json:"startDate"`
	EndDate        string            `json:"endDate"`
	Days           int               `json:"days"`
	AvailableDates []string          `json:"availableDates"`
	SlotsByDate    map[string][]Slot `json:"slotsByDate"`
	DefaultDate    string            `json:"defaultDate,omitempty"`
	GeneratedAt    time.Time         `json:"generatedAt"`
}
