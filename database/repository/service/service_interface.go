package serviceRepo

import "agendly/models"

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves the full service catalog.
	GetAll() ([]models.Service, error)
	// Create inserts a new service record.
	Create(service *models.Service) error
	// Update modifies an existing service record.
	Update(service *models.Service) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
