package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	scheduleRepo "xscheduler/database/repository/schedule"
	"xscheduler/models"
	"xscheduler/utils"
)

var ScheduleRepo scheduleRepo.ScheduleRepository

// SetScheduleRepo wires the schedule repository used by these handlers.
func SetScheduleRepo(repo scheduleRepo.ScheduleRepository) {
	ScheduleRepo = repo
}

var weekdayNames = map[string]bool{
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
}

// GetProviderSchedule returns a provider's weekly schedule entries.
func GetProviderSchedule(c *gin.Context) {
	entries, err := ScheduleRepo.ListProviderWeek(c.Param("providerId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch provider schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": entries})
}

// UpsertProviderSchedule creates or replaces one weekday entry of a
// provider's weekly schedule.
func UpsertProviderSchedule(c *gin.Context) {
	var entry models.ProviderSchedule
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	entry.ProviderID = c.Param("providerId")
	entry.Weekday = strings.ToLower(entry.Weekday)
	if !weekdayNames[entry.Weekday] {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "weekday must be a lowercase English day name")
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	if err := ScheduleRepo.UpsertProviderDay(&entry); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save provider schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpsertBusinessHours creates or replaces the business-hours record for
// one weekday. A null providerId targets the all-providers record.
func UpsertBusinessHours(c *gin.Context) {
	var entry models.BusinessHour
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if entry.Weekday < 0 || entry.Weekday > 6 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "weekday must be 0-6 (Sunday = 0)")
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	if err := ScheduleRepo.UpsertBusinessHours(&entry); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save business hours", err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}
