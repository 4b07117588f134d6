package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	serviceRepo "xscheduler/database/repository/service"
	"xscheduler/models"
	"xscheduler/utils"
)

var ServiceRepo serviceRepo.ServiceRepository

// SetServiceRepo wires the service-catalogue repository used by these handlers.
func SetServiceRepo(repo serviceRepo.ServiceRepository) {
	ServiceRepo = repo
}

// ListServices returns the full service catalogue.
func ListServices(c *gin.Context) {
	services, err := ServiceRepo.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateService adds a service to the catalogue.
func CreateService(c *gin.Context) {
	var input struct {
		Name            string  `json:"name" binding:"required"`
		DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
		Price           float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc := &models.Service{
		ID:              uuid.New().String(),
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		Active:          true,
		CreatedAt:       time.Now(),
	}
	if err := ServiceRepo.Create(svc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService replaces a catalogue entry.
func UpdateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	svc.ID = c.Param("id")
	if svc.DurationMinutes <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "durationMinutes must be positive")
		return
	}

	if err := ServiceRepo.Update(&svc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteService removes a catalogue entry.
func DeleteService(c *gin.Context) {
	if err := ServiceRepo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
