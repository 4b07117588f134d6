package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	blockedRepo "xscheduler/database/repository/blocked"
	"xscheduler/models"
	"xscheduler/utils"
)

var BlockedRepo blockedRepo.BlockedTimeRepository

// SetBlockedRepo wires the blocked-time repository used by these handlers.
func SetBlockedRepo(repo blockedRepo.BlockedTimeRepository) {
	BlockedRepo = repo
}

// CreateBlockedTime marks a provider as unavailable for a period.
func CreateBlockedTime(c *gin.Context) {
	var input struct {
		ProviderID string    `json:"providerId" binding:"required"`
		Start      time.Time `json:"start" binding:"required"`
		End        time.Time `json:"end" binding:"required"`
		Reason     string    `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !input.End.After(input.Start) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "end must be after start")
		return
	}

	block := &models.BlockedTime{
		ID:         uuid.New().String(),
		ProviderID: input.ProviderID,
		Start:      input.Start,
		End:        input.End,
		Reason:     input.Reason,
		CreatedAt:  time.Now(),
	}
	if err := BlockedRepo.Create(block); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create blocked time", err.Error())
		return
	}
	c.JSON(http.StatusCreated, block)
}

// ListBlockedTimes returns a provider's blocked times overlapping a range.
func ListBlockedTimes(c *gin.Context) {
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

	blocks, err := BlockedRepo.FindOverlapping(providerID, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch blocked times", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"blockedTimes": blocks})
}

// DeleteBlockedTime removes a blocked time entry.
func DeleteBlockedTime(c *gin.Context) {
	if err := BlockedRepo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete blocked time", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
