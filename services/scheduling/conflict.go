package scheduling

import (
	"fmt"
	"time"

	appointmentRepo "xscheduler/database/repository/appointment"
	blockedRepo "xscheduler/database/repository/blocked"
	"xscheduler/models"
)

// ConflictService answers whether a proposed appointment window clashes
// with existing records for a provider, and returns the clashing records
// for diagnostic display.
type ConflictService interface {
	// HasConflict reports whether any non-cancelled appointment overlaps
	// [start, end). excludeAppointmentID lets an edit ignore its own
	// prior version.
	HasConflict(providerID string, start, end time.Time, excludeAppointmentID string) (bool, error)

	// GetConflictingAppointments returns the overlapping appointments.
	GetConflictingAppointments(providerID string, start, end time.Time, excludeAppointmentID string) ([]models.Appointment, error)

	// GetBlockedTimesForPeriod returns blocked times overlapping [start, end).
	GetBlockedTimesForPeriod(providerID string, start, end time.Time) ([]models.BlockedTime, error)
}

// DefaultConflictService is a concrete implementation backed by the
// storage repositories.
type DefaultConflictService struct {
	Appointments appointmentRepo.AppointmentRepository
	Blocked      blockedRepo.BlockedTimeRepository
}

func (s *DefaultConflictService) HasConflict(providerID string, start, end time.Time, excludeAppointmentID string) (bool, error) {
	conflicts, err := s.GetConflictingAppointments(providerID, start, end, excludeAppointmentID)
	if err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}

func (s *DefaultConflictService) GetConflictingAppointments(providerID string, start, end time.Time, excludeAppointmentID string) ([]models.Appointment, error) {
	rows, err := s.Appointments.FindOverlapping(providerID, start, end, excludeAppointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overlapping appointments: %w", err)
	}

	window := TimeInterval{Start: start, End: end}
	conflicts := []models.Appointment{}
	for _, apt := range rows {
		if apt.Status == models.StatusCancelled {
			continue
		}
		if excludeAppointmentID != "" && apt.ID == excludeAppointmentID {
			continue
		}
		if window.Overlaps(TimeInterval{Start: apt.Start, End: apt.End}) {
			conflicts = append(conflicts, apt)
		}
	}
	return conflicts, nil
}

func (s *DefaultConflictService) GetBlockedTimesForPeriod(providerID string, start, end time.Time) ([]models.BlockedTime, error) {
	rows, err := s.Blocked.FindOverlapping(providerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked times: %w", err)
	}

	window := TimeInterval{Start: start, End: end}
	blocks := []models.BlockedTime{}
	for _, block := range rows {
		if window.Overlaps(TimeInterval{Start: block.Start, End: block.End}) {
			blocks = append(blocks, block)
		}
	}
	return blocks, nil
}
