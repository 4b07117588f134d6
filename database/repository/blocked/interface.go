package blockedRepo

import (
	"time"

	"xscheduler/models"
)

// BlockedTimeRepository defines persistence operations for one-off
// provider unavailability periods.
type BlockedTimeRepository interface {
	GetByID(id string) (*models.BlockedTime, error)
	Create(block *models.BlockedTime) error
	Delete(id string) error

	// FindOverlapping returns blocked times for the provider overlapping
	// [start, end).
	FindOverlapping(providerID string, start, end time.Time) ([]models.BlockedTime, error)
}
