package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "appointment:reminder"

// ReminderPayload carries everything the worker needs to notify about an
// upcoming appointment without a database round trip.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ProviderID    string `json:"providerId"`
	CustomerID    string `json:"customerId,omitempty"`
	ServiceID     string `json:"serviceId"`
	Start         string `json:"start"` // RFC 3339
}

// NewAppointmentReminderTask builds the asynq task scheduled to fire at
// the given time.
func NewAppointmentReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
