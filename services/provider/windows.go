package provider

import (
	"fmt"

	"agendly/models"
)

// SetWorkingWindows validates and replaces a provider's declared weekly
// windows. A window with start after end, or a weekday outside 0-6, is
// rejected here and never reaches the store; the booking core does not
// re-validate.
func (s *DefaultProviderService) SetWorkingWindows(id string, windows []models.WorkingWindow) (*models.Provider, error) {
	for i, w := range windows {
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("window %d: %w", i+1, err)
		}
	}

	if err := s.Repo.SetWorkingWindows(id, windows); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// GetWorkingWindows lists a provider's declared weekly windows.
func (s *DefaultProviderService) GetWorkingWindows(id string) ([]models.WorkingWindow, error) {
	return s.Repo.GetWorkingWindows(id)
}
