package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"xscheduler/models"
	appointmentSvc "xscheduler/services/appointment"
	"xscheduler/utils"
)

var ApptSvc appointmentSvc.AppointmentService

// SetAppointmentService wires the appointment service used by these handlers.
func SetAppointmentService(svc appointmentSvc.AppointmentService) {
	ApptSvc = svc
}

// BookAppointment creates a new appointment after conflict validation.
func BookAppointment(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := ApptSvc.Book(req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// RescheduleAppointment moves an existing appointment, excluding its own
// prior version from conflict checks.
func RescheduleAppointment(c *gin.Context) {
	var req models.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := ApptSvc.Reschedule(c.Param("id"), req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointment sets the appointment status to cancelled.
func CancelAppointment(c *gin.Context) {
	if err := ApptSvc.Cancel(c.Param("id")); err != nil {
		if errors.Is(err, appointmentSvc.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "appointment not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusCancelled})
}

// GetAppointment returns a single appointment by id.
func GetAppointment(c *gin.Context) {
	appt, err := ApptSvc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, appointmentSvc.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "appointment not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListAppointments returns a provider's appointments within a time range.
func ListAppointments(c *gin.Context) {
	providerID := c.Query("providerId")
	if providerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "providerId is required")
		return
	}
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from parameter", err.Error())
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to parameter", err.Error())
		return
	}

	appts, err := ApptSvc.List(providerID, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// respondBookingError maps conflict errors to 409 with the clashing
// records attached, everything else to the usual buckets.
func respondBookingError(c *gin.Context, err error) {
	var conflictErr *appointmentSvc.ConflictError
	switch {
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"message":      conflictErr.Error(),
			"conflicts":    conflictErr.Conflicts,
			"blockedTimes": conflictErr.Blocked,
		})
	case errors.Is(err, appointmentSvc.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "appointment not found", err.Error())
	default:
		utils.JSONError(c, http.StatusBadRequest, "booking failed", err.Error())
	}
}
