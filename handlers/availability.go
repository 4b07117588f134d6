package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"xscheduler/services/scheduling"
	"xscheduler/utils"
)

var AvailabilitySvc scheduling.AvailabilityService

// SetAvailabilityService wires the availability service used by these handlers.
func SetAvailabilityService(svc scheduling.AvailabilityService) {
	AvailabilitySvc = svc
}

// GetAvailableSlots returns bookable slots for a provider/service/date.
func GetAvailableSlots(c *gin.Context) {
	providerID := c.Query("providerId")
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	if providerID == "" || serviceID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "providerId, serviceId and date are required")
		return
	}

	slots, err := AvailabilitySvc.AvailableSlots(providerID, serviceID, date, c.Query("excludeAppointmentId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to compute availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"providerId": providerID,
		"serviceId":  serviceID,
		"date":       date,
		"slots":      slots,
	})
}

// GetCalendarAvailability returns the per-day slot map for a date range.
func GetCalendarAvailability(c *gin.Context) {
	providerID := c.Query("providerId")
	serviceID := c.Query("serviceId")
	if providerID == "" || serviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "providerId and serviceId are required")
		return
	}

	days := 60
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid days parameter", err.Error())
			return
		}
		days = parsed
	}

	result, err := AvailabilitySvc.CalendarAvailability(providerID, serviceID, c.Query("startDate"), days, c.Query("excludeAppointmentId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute calendar availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
