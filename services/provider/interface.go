package provider

import (
	providerRepo "agendly/database/repository/provider"
	"agendly/models"
)

// AuthResponse is returned after registration or authentication.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ProviderService manages provider accounts and their declared working
// windows. Window mutation is the only place window invariants are checked;
// the booking core trusts stored windows.
type ProviderService interface {
	Register(provider models.Provider) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.Provider, error)
	GetAll() ([]models.Provider, error)
	Update(provider *models.Provider) (*models.Provider, error)
	Delete(id string) error
	SetWorkingWindows(id string, windows []models.WorkingWindow) (*models.Provider, error)
	GetWorkingWindows(id string) ([]models.WorkingWindow, error)
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}
