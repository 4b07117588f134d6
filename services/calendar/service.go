package calendar

import (
	"fmt"
	"sort"
	"time"

	appointmentRepo "xscheduler/database/repository/appointment"
	"xscheduler/models"
	"xscheduler/services/scheduling"
)

// CalendarService builds presentation-ready layout structures for the
// month, week and day calendar views.
type CalendarService interface {
	// DayView lays out one day. An empty providerIDs slice shows all providers.
	DayView(date string, providerIDs []string) (*models.DayLayout, error)

	// WeekView lays out the Sunday-to-Saturday week containing date.
	WeekView(date string, providerIDs []string) ([]models.DayLayout, error)

	// MonthView builds the 6x7 month grid with capped per-cell chip lists.
	MonthView(year, month int, providerIDs []string) (*models.MonthView, error)
}

// DefaultCalendarService fetches appointment snapshots and delegates the
// layout math to the pure builders below.
type DefaultCalendarService struct {
	Appointments appointmentRepo.AppointmentRepository
	Availability scheduling.AvailabilityService
}

// MaxChipsPerCell caps the appointments shown in a month cell before
// collapsing the rest into an overflow count.
const MaxChipsPerCell = 3

func (s *DefaultCalendarService) DayView(date string, providerIDs []string) (*models.DayLayout, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	appts, err := s.Appointments.FindBetween(providerIDs, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}

	layout := BuildDayLayout(day, appts, providerIDs)
	return &layout, nil
}

func (s *DefaultCalendarService) WeekView(date string, providerIDs []string) ([]models.DayLayout, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	start := weekStart(day)

	appts, err := s.Appointments.FindBetween(providerIDs, start, start.AddDate(0, 0, 7))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}

	days := make([]models.DayLayout, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, BuildDayLayout(start.AddDate(0, 0, i), appts, providerIDs))
	}
	return days, nil
}

func (s *DefaultCalendarService) MonthView(year, month int, providerIDs []string) (*models.MonthView, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	gridStart := monthGridStart(year, time.Month(month))

	appts, err := s.Appointments.FindBetween(providerIDs, gridStart, gridStart.AddDate(0, 0, 42))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}

	view := BuildMonthView(year, time.Month(month), appts, providerIDs, MaxChipsPerCell, time.Now())

	// Flag bookable cells. The probe is scoped to a single provider when
	// exactly one is selected, otherwise to the all-providers hours.
	if s.Availability != nil {
		probeProvider := ""
		if len(providerIDs) == 1 {
			probeProvider = providerIDs[0]
		}
		for wi := range view.Weeks {
			for ci := range view.Weeks[wi] {
				cell := &view.Weeks[wi][ci]
				ok, err := s.Availability.HasWorkingHours(probeProvider, cell.Date)
				if err != nil {
					return nil, err
				}
				cell.HasAvailability = ok
			}
		}
	}
	return view, nil
}

// filterByProviders drops appointments whose provider is not visible.
// Hidden providers never occupy a lane or count toward overflow, so this
// runs before any grouping.
func filterByProviders(appointments []models.Appointment, visible []string) []models.Appointment {
	if len(visible) == 0 {
		return appointments
	}
	allowed := make(map[string]bool, len(visible))
	for _, id := range visible {
		allowed[id] = true
	}
	kept := make([]models.Appointment, 0, len(appointments))
	for _, apt := range appointments {
		if allowed[apt.ProviderID] {
			kept = append(kept, apt)
		}
	}
	return kept
}

// BuildDayLayout buckets one day's appointments per provider and assigns
// lanes within each provider column.
func BuildDayLayout(day time.Time, appointments []models.Appointment, visibleProviders []string) models.DayLayout {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dateStr := midnight.Format(dateLayout)

	byProvider := map[string][]models.Appointment{}
	total := 0
	for _, apt := range filterByProviders(appointments, visibleProviders) {
		if apt.Start.In(midnight.Location()).Format(dateLayout) != dateStr {
			continue
		}
		byProvider[apt.ProviderID] = append(byProvider[apt.ProviderID], apt)
		total++
	}

	providerIDs := make([]string, 0, len(byProvider))
	for id := range byProvider {
		providerIDs = append(providerIDs, id)
	}
	sort.Strings(providerIDs)

	columns := make([]models.ProviderColumn, 0, len(providerIDs))
	for _, id := range providerIDs {
		columns = append(columns, models.ProviderColumn{
			ProviderID: id,
			Blocks:     AssignLanes(byProvider[id], midnight),
		})
	}

	return models.DayLayout{
		Date:              dateStr,
		Columns:           columns,
		TotalAppointments: total,
	}
}

// BuildMonthView produces the 42-cell grid with per-cell chip lists.
// HasAvailability is left false; the service fills it from schedule data.
func BuildMonthView(year int, month time.Month, appointments []models.Appointment, visibleProviders []string, maxPerCell int, now time.Time) *models.MonthView {
	gridStart := monthGridStart(year, month)
	todayStr := now.Format(dateLayout)

	byDate := map[string][]models.Appointment{}
	total := 0
	for _, apt := range filterByProviders(appointments, visibleProviders) {
		key := apt.Start.In(time.Local).Format(dateLayout)
		byDate[key] = append(byDate[key], apt)
		total++
	}
	for _, list := range byDate {
		sort.Slice(list, func(i, j int) bool { return list[i].Start.Before(list[j].Start) })
	}

	weeks := make([][]models.MonthCell, 0, 6)
	for w := 0; w < 6; w++ {
		row := make([]models.MonthCell, 0, 7)
		for d := 0; d < 7; d++ {
			cellDay := gridStart.AddDate(0, 0, w*7+d)
			dateStr := cellDay.Format(dateLayout)
			cellAppts := byDate[dateStr]

			chips := cellAppts
			if len(chips) > maxPerCell {
				chips = chips[:maxPerCell]
			}
			overflow := len(cellAppts) - len(chips)

			row = append(row, models.MonthCell{
				Date:             dateStr,
				DayNumber:        cellDay.Day(),
				Weekday:          int(cellDay.Weekday()),
				IsCurrentMonth:   cellDay.Month() == month,
				IsToday:          dateStr == todayStr,
				IsPast:           dateStr < todayStr,
				Chips:            append([]models.Appointment{}, chips...),
				AppointmentCount: len(cellAppts),
				OverflowCount:    overflow,
			})
		}
		weeks = append(weeks, row)
	}

	return &models.MonthView{
		Year:              year,
		Month:             int(month),
		MonthLabel:        fmt.Sprintf("%s %d", month.String(), year),
		StartDate:         gridStart.Format(dateLayout),
		EndDate:           gridStart.AddDate(0, 0, 41).Format(dateLayout),
		Weeks:             weeks,
		TotalAppointments: total,
	}
}
