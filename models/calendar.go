package models

// LayoutBlock positions one appointment inside a day column. LaneIndex
// and LaneCount let overlapping appointments render side-by-side without
// collision; offsets and heights are in minutes so the renderer can scale
// them to any pixel density.
type LayoutBlock struct {
	AppointmentID      string `json:"appointmentId"`
	ProviderID         string `json:"providerId"`
	StartOffsetMinutes int    `json:"startOffsetMinutes"` // minutes since midnight of the containing day
	HeightMinutes      int    `json:"heightMinutes"`
	LaneIndex          int    `json:"laneIndex"`
	LaneCount          int    `json:"laneCount"`
}

// ProviderColumn holds the laid-out blocks for one provider on one day.
type ProviderColumn struct {
	ProviderID string        `json:"providerId"`
	Blocks     []LayoutBlock `json:"blocks"`
}

// DayLayout is the render model for a single calendar day.
type DayLayout struct {
	Date              string           `json:"date"`
	Columns           []ProviderColumn `json:"columns"`
	TotalAppointments int              `json:"totalAppointments"`
}

// MonthCell is one cell of the 6x7 month grid. Chips holds at most the
// first few appointments by start time; the rest collapse into OverflowCount.
type MonthCell struct {
	Date             string        `json:"date"`
	DayNumber        int           `json:"dayNumber"`
	Weekday          int           `json:"weekday"` // 0 = Sunday
	IsCurrentMonth   bool          `json:"isCurrentMonth"`
	IsToday          bool          `json:"isToday"`
	IsPast           bool          `json:"isPast"`
	Chips            []Appointment `json:"chips"`
	AppointmentCount int           `json:"appointmentCount"`
	OverflowCount    int           `json:"overflowCount"`
	HasAvailability  bool          `json:"hasAvailability"`
}

// MonthView is the full render model for the month grid.
type MonthView struct {
	Year              int           `json:"year"`
	Month             int           `json:"month"`
	MonthLabel        string        `json:"monthLabel"`
	StartDate         string        `json:"startDate"` // first cell, may fall in the prior month
	EndDate           string        `json:"endDate"`   // last cell, may fall in the next month
	Weeks             [][]MonthCell `json:"weeks"`
	TotalAppointments int           `json:"totalAppointments"`
}
