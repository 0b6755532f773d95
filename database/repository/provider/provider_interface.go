package providerRepo

import (
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetByEmail retrieves a provider by its email address. Returns
	// (nil, nil) when no provider matches.
	GetByEmail(email string) (*models.Provider, error)
	// GetAll retrieves all providers.
	GetAll() ([]models.Provider, error)
	// Create inserts a new provider record.
	Create(provider *models.Provider) error
	// Delete removes a provider record by its ID.
	Delete(id string) error
	// SetWorkingWindows replaces the provider's declared working windows.
	SetWorkingWindows(id string, windows []models.WorkingWindow) error
	// GetWorkingWindows lists the provider's declared working windows.
	GetWorkingWindows(id string) ([]models.WorkingWindow, error)
	// UpdateWithDocument patches a provider document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
}
