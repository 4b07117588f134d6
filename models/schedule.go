package models

// ProviderSchedule is one weekday row of a provider's recurring weekly
// schedule. It overrides any business-hours record for the same weekday
// and carries at most a single break.
type ProviderSchedule struct {
	ID         string `bson:"id" json:"id"`
	ProviderID string `bson:"providerId" json:"providerId"`
	Weekday    string `bson:"weekday" json:"weekday"`                           // lowercase English day name, e.g. "monday"
	StartTime  string `bson:"startTime" json:"startTime"`                       // "HH:MM"
	EndTime    string `bson:"endTime" json:"endTime"`                           // "HH:MM"
	BreakStart string `bson:"breakStart,omitempty" json:"breakStart,omitempty"` // empty when the day has no break
	BreakEnd   string `bson:"breakEnd,omitempty" json:"breakEnd,omitempty"`
	Active     bool   `bson:"active" json:"active"`
}

// BreakWindow is a single break inside a business-hours record.
type BreakWindow struct {
	Start string `bson:"start" json:"start"` // "HH:MM"
	End   string `bson:"end" json:"end"`     // "HH:MM"
}

// BusinessHour is the opening window for one weekday. ProviderID is nil
// for the record that applies to all providers without one of their own.
type BusinessHour struct {
	ID         string        `bson:"id" json:"id"`
	ProviderID *string       `bson:"providerId" json:"providerId"` // nil = all providers
	Weekday    int           `bson:"weekday" json:"weekday"`       // 0 = Sunday .. 6 = Saturday
	StartTime  string        `bson:"startTime" json:"startTime"`   // "HH:MM"
	EndTime    string        `bson:"endTime" json:"endTime"`       // "HH:MM"
	Breaks     []BreakWindow `bson:"breaks,omitempty" json:"breaks,omitempty"`
}
