package booking

import (
	"time"

	"github.com/studiohair/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus moves an appointment into the given status. There is no
// transition graph: staff may correct any state into any other. The
// cancelled/completed timestamps always reflect the current status, so
// a correction clears whatever the previous status had stamped.
func ApplyStatus(ap *models.Appointment, status Status, now time.Time) {
	ap.Status = string(status)

	switch status {
	case StatusCompleted:
		ap.CompletedAt = &now
		ap.CancelledAt = nil
	case StatusCancelled:
		ap.CancelledAt = &now
		ap.CompletedAt = nil
	default:
		ap.CompletedAt = nil
		ap.CancelledAt = nil
	}
}
