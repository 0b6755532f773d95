package reservation

import (
	"fmt"
	"time"

	providerRepo "agendly/database/repository/provider"
)

// admit computes the accept/reject verdict for booking an exact instant with
// a provider. Checks run in fixed order: required fields, then the working
// window check, then occupancy of the exact instant.
//
// The window check rejects when the instant falls INSIDE a declared window.
// This polarity is intentional and matched by the tests; see DESIGN.md
// before changing it.
func (s *DefaultReservationService) admit(providerID string, ts time.Time) error {
	if providerID == "" || ts.IsZero() {
		return newMissingFieldsError()
	}

	provider, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		if providerRepo.IsNotFound(err) {
			return &NotFoundError{Resource: "provider", ID: providerID}
		}
		return fmt.Errorf("admission: provider lookup failed: %w", err)
	}

	if isWithinWorkingHours(provider.WorkingWindows, ts) {
		return newProviderUnavailableError()
	}

	occupied, err := s.Repo.ExistsAt(providerID, ts)
	if err != nil {
		return fmt.Errorf("admission: conflict check failed: %w", err)
	}
	if occupied {
		return newDuplicateSlotError()
	}

	return nil
}
