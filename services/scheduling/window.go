package scheduling

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"xscheduler/utils"
)

// WindowSource identifies which record in the fallback cascade produced
// a working window.
type WindowSource string

const (
	SourceProviderSchedule WindowSource = "provider-schedule"
	SourceProviderHours    WindowSource = "provider-hours"
	SourceGlobalHours      WindowSource = "global-hours"
)

// WorkingWindow is the resolved bookable span for one provider on one
// date, with its breaks. Breaks come exclusively from the source that
// won the cascade; sources are never blended.
type WorkingWindow struct {
	DayStart time.Time
	DayEnd   time.Time
	Breaks   []TimeInterval
	Source   WindowSource
}

// resolveWorkingWindow walks the fallback cascade: the provider's weekly
// schedule entry for the weekday, then a provider-scoped business-hours
// record, then the all-providers record. A nil result with nil error
// means the provider simply is not working that day.
func (s *DefaultAvailabilityService) resolveWorkingWindow(providerID string, day time.Time) (*WorkingWindow, error) {
	logger := utils.GetLogger()
	weekdayName := strings.ToLower(day.Weekday().String())
	weekdayNum := int(day.Weekday())

	entry, err := s.Schedules.GetProviderDay(providerID, weekdayName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider schedule: %w", err)
	}
	if entry != nil {
		w, ok := windowFromClock(day, entry.StartTime, entry.EndTime, SourceProviderSchedule)
		if ok {
			if br, ok := breakFromClock(day, entry.BreakStart, entry.BreakEnd); ok {
				w.Breaks = append(w.Breaks, br)
			}
			return w, nil
		}
		logger.Warn("provider schedule entry has malformed times, falling through",
			zap.String("providerId", providerID), zap.String("weekday", weekdayName))
	}

	hours, err := s.Schedules.GetBusinessHours(&providerID, weekdayNum)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider business hours: %w", err)
	}
	if hours == nil {
		hours, err = s.Schedules.GetBusinessHours(nil, weekdayNum)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch global business hours: %w", err)
		}
	}
	if hours == nil {
		return nil, nil
	}

	source := SourceProviderHours
	if hours.ProviderID == nil {
		source = SourceGlobalHours
	}
	w, ok := windowFromClock(day, hours.StartTime, hours.EndTime, source)
	if !ok {
		logger.Warn("business hours record has malformed times, treating day as closed",
			zap.String("providerId", providerID), zap.Int("weekday", weekdayNum))
		return nil, nil
	}
	for _, b := range hours.Breaks {
		if br, ok := breakFromClock(day, b.Start, b.End); ok {
			w.Breaks = append(w.Breaks, br)
		} else {
			logger.Warn("skipping malformed break window",
				zap.String("providerId", providerID), zap.String("start", b.Start), zap.String("end", b.End))
		}
	}
	return w, nil
}

func windowFromClock(day time.Time, start, end string, source WindowSource) (*WorkingWindow, bool) {
	dayStart, okStart := clockOnDay(day, start)
	dayEnd, okEnd := clockOnDay(day, end)
	if !okStart || !okEnd || dayEnd.Before(dayStart) {
		return nil, false
	}
	return &WorkingWindow{DayStart: dayStart, DayEnd: dayEnd, Source: source}, true
}

func breakFromClock(day time.Time, start, end string) (TimeInterval, bool) {
	if start == "" || end == "" {
		return TimeInterval{}, false
	}
	bs, okStart := clockOnDay(day, start)
	be, okEnd := clockOnDay(day, end)
	if !okStart || !okEnd || be.Before(bs) {
		return TimeInterval{}, false
	}
	return TimeInterval{Start: bs, End: be}, true
}

// clockOnDay anchors an "HH:MM" or "HH:MM:SS" wall-clock string onto the
// given calendar day.
func clockOnDay(day time.Time, clock string) (time.Time, bool) {
	layout := "15:04"
	if strings.Count(clock, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, day.Location()), true
}
