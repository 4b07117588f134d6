package serviceRepo

import "xscheduler/models"

// ServiceRepository defines persistence operations for the service catalogue.
type ServiceRepository interface {
	// GetByID returns nil without error when the service does not exist;
	// an unknown service simply has no availability.
	GetByID(id string) (*models.Service, error)
	Create(svc *models.Service) error
	Update(svc *models.Service) error
	Delete(id string) error
	List() ([]models.Service, error)
}
