package appointment

import (
	"time"

	appointmentRepo "xscheduler/database/repository/appointment"
	serviceRepo "xscheduler/database/repository/service"
	"xscheduler/models"
	"xscheduler/services/scheduling"

	"github.com/hibiken/asynq"
)

// AppointmentService is the booking surface. Every write path is
// validated through the conflict detector before it touches storage.
type AppointmentService interface {
	Book(req models.BookAppointmentRequest) (*models.Appointment, error)
	Reschedule(id string, req models.RescheduleAppointmentRequest) (*models.Appointment, error)
	Cancel(id string) error
	GetByID(id string) (*models.Appointment, error)
	List(providerID string, from, to time.Time) ([]models.Appointment, error)
}

// DefaultAppointmentService implements AppointmentService. AsynqClient is
// optional; when set, a reminder task is enqueued after each booking.
type DefaultAppointmentService struct {
	Repo        appointmentRepo.AppointmentRepository
	Services    serviceRepo.ServiceRepository
	Conflicts   scheduling.ConflictService
	AsynqClient *asynq.Client
}
