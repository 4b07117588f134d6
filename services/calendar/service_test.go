package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xscheduler/models"
)

type fakeAppointmentRepo struct {
	appointments []models.Appointment
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) { return nil, nil }
func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error          { return nil }
func (f *fakeAppointmentRepo) Update(appt *models.Appointment) error          { return nil }
func (f *fakeAppointmentRepo) UpdateStatus(id, status string) error           { return nil }

func (f *fakeAppointmentRepo) FindForProviderBetween(providerID string, from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindBetween(providerIDs []string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, apt := range f.appointments {
		if apt.Status == models.StatusCancelled {
			continue
		}
		if apt.Start.Before(from) || apt.Start.After(to) {
			continue
		}
		if len(providerIDs) > 0 {
			found := false
			for _, id := range providerIDs {
				if apt.ProviderID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, apt)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindOverlapping(providerID string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	return nil, nil
}

// fakeAvailability marks weekdays Monday through Friday as bookable.
type fakeAvailability struct{}

func (fakeAvailability) AvailableSlots(providerID, serviceID, date, excludeAppointmentID string) ([]models.Slot, error) {
	return nil, nil
}

func (fakeAvailability) CalendarAvailability(providerID, serviceID, startDate string, days int, excludeAppointmentID string) (*models.CalendarAvailability, error) {
	return nil, nil
}

func (fakeAvailability) HasWorkingHours(providerID, date string) (bool, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return false, err
	}
	wd := day.Weekday()
	return wd != time.Saturday && wd != time.Sunday, nil
}

func TestCalendarServiceDayView(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []models.Appointment{
		apt("a", at(9, 0), 60),
		apt("b", at(9, 30), 60),
		{ID: "gone", ProviderID: "prov-1", Start: at(11, 0), End: at(12, 0), Status: models.StatusCancelled},
	}}
	svc := &DefaultCalendarService{Appointments: repo}

	t.Run("Lays Out The Requested Day", func(t *testing.T) {
		layout, err := svc.DayView("2026-03-10", nil)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-10", layout.Date)
		assert.Equal(t, 2, layout.TotalAppointments, "cancelled appointments never render")
		require.Len(t, layout.Columns, 1)
		assert.Len(t, layout.Columns[0].Blocks, 2)
	})

	t.Run("Rejects Malformed Date", func(t *testing.T) {
		_, err := svc.DayView("March 10", nil)
		assert.Error(t, err)
	})
}

func TestCalendarServiceWeekView(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []models.Appointment{
		apt("tue", at(9, 0), 60),
		apt("thu", time.Date(2026, 3, 12, 14, 0, 0, 0, time.Local), 30),
	}}
	svc := &DefaultCalendarService{Appointments: repo}

	layouts, err := svc.WeekView("2026-03-10", nil)
	require.NoError(t, err)
	require.Len(t, layouts, 7)

	assert.Equal(t, "2026-03-08", layouts[0].Date, "week starts on Sunday")
	assert.Equal(t, "2026-03-14", layouts[6].Date)
	assert.Equal(t, 1, layouts[2].TotalAppointments)
	assert.Equal(t, 1, layouts[4].TotalAppointments)
	assert.Equal(t, 0, layouts[0].TotalAppointments)
}

func TestCalendarServiceMonthView(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []models.Appointment{
		apt("a", at(9, 0), 60),
	}}
	svc := &DefaultCalendarService{Appointments: repo, Availability: fakeAvailability{}}

	t.Run("Availability Flags Filled From Schedule Probe", func(t *testing.T) {
		view, err := svc.MonthView(2026, 3, nil)
		require.NoError(t, err)

		// Week row 1 covers March 8-14: Sunday closed, Tuesday open.
		assert.False(t, view.Weeks[1][0].HasAvailability)
		assert.True(t, view.Weeks[1][2].HasAvailability)
		assert.Equal(t, 1, view.Weeks[1][2].AppointmentCount)
	})

	t.Run("Rejects Out Of Range Month", func(t *testing.T) {
		_, err := svc.MonthView(2026, 13, nil)
		assert.Error(t, err)
	})
}
