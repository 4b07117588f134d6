package models

import "time"

// Appointment statuses. Cancelled appointments never block availability.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// Appointment is a booked time range for a provider and service.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	ServiceID  string    `bson:"serviceId" json:"serviceId"`
	CustomerID string    `bson:"customerId,omitempty" json:"customerId,omitempty"`
	Start      time.Time `bson:"start" json:"start"`
	End        time.Time `bson:"end" json:"end"`
	Status     string    `bson:"status" json:"status"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// BookAppointmentRequest defines the payload for booking an appointment.
type BookAppointmentRequest struct {
	ProviderID string    `json:"providerId" binding:"required"`
	ServiceID  string    `json:"serviceId" binding:"required"`
	CustomerID string    `json:"customerId"`
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required"`
	Notes      string    `json:"notes"`
}

// RescheduleAppointmentRequest defines the payload for moving an existing appointment.
type RescheduleAppointmentRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}
