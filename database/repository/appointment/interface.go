package appointmentRepo

import (
	"time"

	"xscheduler/models"
)

// AppointmentRepository defines persistence operations for appointments.
// Find methods exclude cancelled appointments; a cancelled appointment
// never blocks availability or conflicts with a new booking.
type AppointmentRepository interface {
	GetByID(id string) (*models.Appointment, error)
	Create(appt *models.Appointment) error
	Update(appt *models.Appointment) error
	UpdateStatus(id, status string) error

	// FindForProviderBetween returns non-cancelled appointments whose
	// start falls within [from, to] inclusive.
	FindForProviderBetween(providerID string, from, to time.Time) ([]models.Appointment, error)

	// FindBetween is the multi-provider variant used by calendar views.
	// An empty providerIDs slice means all providers.
	FindBetween(providerIDs []string, from, to time.Time) ([]models.Appointment, error)

	// FindOverlapping returns non-cancelled appointments overlapping
	// [start, end), excluding excludeID when non-empty.
	FindOverlapping(providerID string, start, end time.Time, excludeID string) ([]models.Appointment, error)
}
