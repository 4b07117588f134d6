package scheduling

import (
	"time"

	"xscheduler/models"
)

// In-memory repository fakes shared by the availability and conflict tests.

type fakeServiceRepo struct {
	services map[string]models.Service
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	return &svc, nil
}

func (f *fakeServiceRepo) Create(svc *models.Service) error { return nil }
func (f *fakeServiceRepo) Update(svc *models.Service) error { return nil }
func (f *fakeServiceRepo) Delete(id string) error           { return nil }
func (f *fakeServiceRepo) List() ([]models.Service, error)  { return nil, nil }

type fakeScheduleRepo struct {
	providerDays []models.ProviderSchedule
	hours        []models.BusinessHour
}

func (f *fakeScheduleRepo) GetProviderDay(providerID, weekday string) (*models.ProviderSchedule, error) {
	for _, entry := range f.providerDays {
		if entry.ProviderID == providerID && entry.Weekday == weekday && entry.Active {
			e := entry
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) UpsertProviderDay(entry *models.ProviderSchedule) error { return nil }

func (f *fakeScheduleRepo) ListProviderWeek(providerID string) ([]models.ProviderSchedule, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) GetBusinessHours(providerID *string, weekday int) (*models.BusinessHour, error) {
	for _, entry := range f.hours {
		if entry.Weekday != weekday {
			continue
		}
		if providerID == nil && entry.ProviderID == nil {
			e := entry
			return &e, nil
		}
		if providerID != nil && entry.ProviderID != nil && *entry.ProviderID == *providerID {
			e := entry
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) UpsertBusinessHours(entry *models.BusinessHour) error { return nil }

type fakeAppointmentRepo struct {
	appointments []models.Appointment
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	for _, apt := range f.appointments {
		if apt.ID == id {
			a := apt
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error { return nil }
func (f *fakeAppointmentRepo) Update(appt *models.Appointment) error { return nil }
func (f *fakeAppointmentRepo) UpdateStatus(id, status string) error  { return nil }

func (f *fakeAppointmentRepo) FindForProviderBetween(providerID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, apt := range f.appointments {
		if apt.ProviderID != providerID || apt.Status == models.StatusCancelled {
			continue
		}
		if apt.Start.Before(from) || apt.Start.After(to) {
			continue
		}
		out = append(out, apt)
	}
	return out, nil
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
	var out []models.Appointment
	for _, apt := range f.appointments {
		if apt.ProviderID != providerID || apt.Status == models.StatusCancelled {
			continue
		}
		if excludeID != "" && apt.ID == excludeID {
			continue
		}
		if apt.Start.Before(end) && apt.End.After(start) {
			out = append(out, apt)
		}
	}
	return out, nil
}

type fakeBlockedRepo struct {
	blocks []models.BlockedTime
}

func (f *fakeBlockedRepo) GetByID(id string) (*models.BlockedTime, error) { return nil, nil }
func (f *fakeBlockedRepo) Create(block *models.BlockedTime) error         { return nil }
func (f *fakeBlockedRepo) Delete(id string) error                         { return nil }

func (f *fakeBlockedRepo) FindOverlapping(providerID string, start, end time.Time) ([]models.BlockedTime, error) {
	var out []models.BlockedTime
	for _, block := range f.blocks {
		if block.ProviderID != providerID {
			continue
		}
		if block.Start.Before(end) && block.End.After(start) {
			out = append(out, block)
		}
	}
	return out, nil
}
