package reservation

import (
	"time"

	"agendly/models"
)

// isWithinWorkingHours answers whether the instant falls inside any of the
// provider's declared weekly windows. Boundaries are inclusive on both ends,
// so an instant exactly at window close still counts as inside. Overlapping
// windows are fine; the first covering window decides.
func isWithinWorkingHours(windows []models.WorkingWindow, t time.Time) bool {
	for _, w := range windows {
		if w.Covers(t) {
			return true
		}
	}
	return false
}
