package appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"xscheduler/config"
	"xscheduler/models"
	"xscheduler/services/tasks"
	"xscheduler/utils"
)

func (s *DefaultAppointmentService) Book(req models.BookAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if !req.End.After(req.Start) {
		return nil, fmt.Errorf("appointment end must be after start")
	}

	svc, err := s.Services.GetByID(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	if err := s.checkWindow(req.ProviderID, req.Start, req.End, ""); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		CustomerID: req.CustomerID,
		Start:      req.Start,
		End:        req.End,
		Status:     models.StatusConfirmed,
		Notes:      req.Notes,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(appt); err != nil {
		return nil, err
	}

	s.scheduleReminder(appt)

	logger.Info("appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("providerId", appt.ProviderID),
		zap.Time("start", appt.Start))
	return appt, nil
}

func (s *DefaultAppointmentService) Reschedule(id string, req models.RescheduleAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if !req.End.After(req.Start) {
		return nil, fmt.Errorf("appointment end must be after start")
	}

	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrNotFound
	}

	// Excluding the appointment's own id keeps an edit from conflicting
	// with its prior version.
	if err := s.checkWindow(appt.ProviderID, req.Start, req.End, id); err != nil {
		return nil, err
	}

	appt.Start = req.Start
	appt.End = req.End
	appt.UpdatedAt = time.Now()
	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}

	s.scheduleReminder(appt)

	logger.Info("appointment rescheduled",
		zap.String("appointmentId", appt.ID),
		zap.Time("start", appt.Start))
	return appt, nil
}

func (s *DefaultAppointmentService) Cancel(id string) error {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return ErrNotFound
	}
	return s.Repo.UpdateStatus(id, models.StatusCancelled)
}

func (s *DefaultAppointmentService) GetByID(id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	return appt, nil
}

func (s *DefaultAppointmentService) List(providerID string, from, to time.Time) ([]models.Appointment, error) {
	return s.Repo.FindForProviderBetween(providerID, from, to)
}

// checkWindow runs the proposed window through the conflict detector and
// returns a ConflictError listing the clashing records.
func (s *DefaultAppointmentService) checkWindow(providerID string, start, end time.Time, excludeID string) error {
	conflicts, err := s.Conflicts.GetConflictingAppointments(providerID, start, end, excludeID)
	if err != nil {
		return err
	}
	blocked, err := s.Conflicts.GetBlockedTimesForPeriod(providerID, start, end)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 || len(blocked) > 0 {
		return &ConflictError{Conflicts: conflicts, Blocked: blocked}
	}
	return nil
}

// scheduleReminder enqueues the reminder task ahead of the appointment
// start. Failures are logged and never fail the booking.
func (s *DefaultAppointmentService) scheduleReminder(appt *models.Appointment) {
	if s.AsynqClient == nil {
		return
	}
	logger := utils.GetLogger()

	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := appt.Start.Add(-lead)
	if !fireAt.After(time.Now()) {
		return
	}

	payload := tasks.ReminderPayload{
		AppointmentID: appt.ID,
		ProviderID:    appt.ProviderID,
		CustomerID:    appt.CustomerID,
		ServiceID:     appt.ServiceID,
		Start:         appt.Start.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewAppointmentReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder task",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
