package scheduleRepo

import "xscheduler/models"

// ScheduleRepository defines persistence operations for provider weekly
// schedules and business-hours records. These are the two sources the
// availability cascade consults, in that order.
type ScheduleRepository interface {
	// GetProviderDay returns the active weekly-schedule entry for the
	// weekday (lowercase English day name), or nil when the provider has
	// no override for that day.
	GetProviderDay(providerID, weekday string) (*models.ProviderSchedule, error)
	UpsertProviderDay(entry *models.ProviderSchedule) error
	ListProviderWeek(providerID string) ([]models.ProviderSchedule, error)

	// GetBusinessHours returns the business-hours record for the weekday
	// (0 = Sunday). A nil providerID selects the all-providers record.
	GetBusinessHours(providerID *string, weekday int) (*models.BusinessHour, error)
	UpsertBusinessHours(entry *models.BusinessHour) error
}
