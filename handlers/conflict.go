package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"xscheduler/services/scheduling"
	"xscheduler/utils"
)

var ConflictSvc scheduling.ConflictService

// SetConflictService wires the conflict service used by these handlers.
func SetConflictService(svc scheduling.ConflictService) {
	ConflictSvc = svc
}

// CheckSlot verifies whether a proposed window is free and, when it is
// not, lists the clashing records for display.
func CheckSlot(c *gin.Context) {
	var input struct {
		ProviderID           string    `json:"providerId" binding:"required"`
		Start                time.Time `json:"start" binding:"required"`
		End                  time.Time `json:"end" binding:"required"`
		ExcludeAppointmentID string    `json:"excludeAppointmentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !input.End.After(input.Start) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "end must be after start")
		return
	}

	conflicts, err := ConflictSvc.GetConflictingAppointments(input.ProviderID, input.Start, input.End, input.ExcludeAppointmentID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check conflicts", err.Error())
		return
	}
	blocked, err := ConflictSvc.GetBlockedTimesForPeriod(input.ProviderID, input.Start, input.End)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check blocked times", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available":    len(conflicts) == 0 && len(blocked) == 0,
		"conflicts":    conflicts,
		"blockedTimes": blocked,
	})
}
