package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	appointmentRepo "xscheduler/database/repository/appointment"
	blockedRepo "xscheduler/database/repository/blocked"
	scheduleRepo "xscheduler/database/repository/schedule"
	serviceRepo "xscheduler/database/repository/service"
	"xscheduler/models"
	"xscheduler/utils"
)

// AvailabilityService computes bookable slots from calendar facts:
// business hours, provider schedules, existing appointments and blocked
// times. All "nothing available" outcomes are empty results, never errors.
type AvailabilityService interface {
	// AvailableSlots returns the bookable slots for a provider, service
	// and date ("2006-01-02"). excludeAppointmentID lets a reschedule
	// ignore the appointment being moved.
	AvailableSlots(providerID, serviceID, date, excludeAppointmentID string) ([]models.Slot, error)

	// CalendarAvailability maps each day of a bounded range to its slots.
	CalendarAvailability(providerID, serviceID, startDate string, days int, excludeAppointmentID string) (*models.CalendarAvailability, error)

	// HasWorkingHours reports whether any working window resolves for the
	// date. An empty providerID checks the all-providers record only.
	HasWorkingHours(providerID, date string) (bool, error)
}

// DefaultAvailabilityService is a concrete implementation backed by the
// storage repositories. Cache is optional; when set, calendar range
// results are cached for a few minutes.
type DefaultAvailabilityService struct {
	Services     serviceRepo.ServiceRepository
	Schedules    scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository
	Blocked      blockedRepo.BlockedTimeRepository
	Cache        *redis.Client
}

const dateLayout = "2006-01-02"

// Calendar range bounds, matching the booking picker's horizon.
const (
	minCalendarDays = 1
	maxCalendarDays = 120
)

func (s *DefaultAvailabilityService) AvailableSlots(providerID, serviceID, date, excludeAppointmentID string) ([]models.Slot, error) {
	logger := utils.GetLogger()

	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		// A service that does not exist has no availability.
		return []models.Slot{}, nil
	}
	if svc.DurationMinutes <= 0 {
		logger.Warn("service has non-positive duration, no slots generated",
			zap.String("serviceId", serviceID), zap.Int("durationMinutes", svc.DurationMinutes))
		return []models.Slot{}, nil
	}

	window, err := s.resolveWorkingWindow(providerID, day)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return []models.Slot{}, nil
	}

	busy, err := s.collectBusyIntervals(providerID, excludeAppointmentID, window)
	if err != nil {
		return nil, err
	}
	merged := MergeIntervals(busy)

	return enumerateSlots(window, svc.DurationMinutes, merged), nil
}

// collectBusyIntervals gathers appointments starting inside the window,
// blocked times overlapping it, and the window's own breaks. Malformed
// stored intervals contribute no constraint.
func (s *DefaultAvailabilityService) collectBusyIntervals(providerID, excludeAppointmentID string, window *WorkingWindow) ([]TimeInterval, error) {
	logger := utils.GetLogger()
	var busy []TimeInterval

	appts, err := s.Appointments.FindForProviderBetween(providerID, window.DayStart, window.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	for _, apt := range appts {
		if apt.Status == models.StatusCancelled {
			continue
		}
		if excludeAppointmentID != "" && apt.ID == excludeAppointmentID {
			continue
		}
		iv := TimeInterval{Start: apt.Start, End: apt.End}
		if !iv.IsValid() {
			logger.Warn("appointment has end before start, ignoring",
				zap.String("appointmentId", apt.ID))
			continue
		}
		busy = append(busy, iv)
	}

	blocks, err := s.Blocked.FindOverlapping(providerID, window.DayStart, window.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked times: %w", err)
	}
	for _, block := range blocks {
		iv := TimeInterval{Start: block.Start, End: block.End}
		if !iv.IsValid() {
			logger.Warn("blocked time has end before start, ignoring",
				zap.String("blockedTimeId", block.ID))
			continue
		}
		busy = append(busy, iv)
	}

	busy = append(busy, window.Breaks...)
	return busy, nil
}

// enumerateSlots steps through the window in service-duration increments
// starting exactly at dayStart. Slot starts are deliberately not aligned
// to wall-clock grid boundaries: a 25-minute service opening at 09:00
// yields 09:25, 09:50 and so on. A final partial step is dropped.
func enumerateSlots(window *WorkingWindow, durationMinutes int, mergedBusy []TimeInterval) []models.Slot {
	step := time.Duration(durationMinutes) * time.Minute
	slots := []models.Slot{}

	for cur := window.DayStart; !cur.Add(step).After(window.DayEnd); cur = cur.Add(step) {
		candidate := TimeInterval{Start: cur, End: cur.Add(step)}
		if OverlapsAny(candidate, mergedBusy) {
			continue
		}
		slots = append(slots, models.Slot{
			Start:      candidate.Start,
			End:        candidate.End,
			StartLabel: candidate.Start.Format("15:04"),
			EndLabel:   candidate.End.Format("15:04"),
		})
	}
	return slots
}

func (s *DefaultAvailabilityService) CalendarAvailability(providerID, serviceID, startDate string, days int, excludeAppointmentID string) (*models.CalendarAvailability, error) {
	logger := utils.GetLogger()

	if days < minCalendarDays {
		days = minCalendarDays
	}
	if days > maxCalendarDays {
		days = maxCalendarDays
	}

	start, err := time.ParseInLocation(dateLayout, startDate, time.Local)
	if err != nil {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		startDate = start.Format(dateLayout)
	}

	cacheKey := fmt.Sprintf("%s%s:%s:%s:%d:%s",
		utils.AvailabilityCachePrefix, providerID, serviceID, startDate, days, excludeAppointmentID)
	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		cached, err := s.Cache.Get(ctx, cacheKey).Result()
		cancel()
		if err == nil {
			var result models.CalendarAvailability
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
		}
	}

	result := &models.CalendarAvailability{
		ProviderID:     providerID,
		ServiceID:      serviceID,
		StartDate:      startDate,
		EndDate:        start.AddDate(0, 0, days-1).Format(dateLayout),
		Days:           days,
		AvailableDates: []string{},
		SlotsByDate:    map[string][]models.Slot{},
		GeneratedAt:    time.Now(),
	}

	for i := 0; i < days; i++ {
		dateStr := start.AddDate(0, 0, i).Format(dateLayout)
		slots, err := s.AvailableSlots(providerID, serviceID, dateStr, excludeAppointmentID)
		if err != nil {
			return nil, err
		}
		if len(slots) == 0 {
			continue
		}
		result.AvailableDates = append(result.AvailableDates, dateStr)
		result.SlotsByDate[dateStr] = slots
	}
	if len(result.AvailableDates) > 0 {
		result.DefaultDate = result.AvailableDates[0]
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := s.Cache.Set(ctx, cacheKey, payload, utils.AvailabilityCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache calendar availability", zap.Error(err))
			}
			cancel()
		}
	}
	return result, nil
}

func (s *DefaultAvailabilityService) HasWorkingHours(providerID, date string) (bool, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if providerID == "" {
		hours, err := s.Schedules.GetBusinessHours(nil, int(day.Weekday()))
		if err != nil {
			return false, fmt.Errorf("failed to fetch global business hours: %w", err)
		}
		return hours != nil, nil
	}

	window, err := s.resolveWorkingWindow(providerID, day)
	if err != nil {
		return false, err
	}
	return window != nil, nil
}
