package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusAwaiting  Status = "awaiting_confirmation"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
	StatusCancelled Status = "cancelled"
)

var allStatuses = []Status{
	StatusAwaiting,
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
	StatusCancelled,
}

// IsValidStatus reports whether s is one of the five known statuses.
// Staff may move an appointment freely between them.
func IsValidStatus(s string) bool {
	for _, st := range allStatuses {
		if Status(s) == st {
			return true
		}
	}
	return false
}

// OccupiesSlot reports whether an appointment in this status still
// blocks its time interval. Cancelled and no-show free the slot.
func OccupiesSlot(s string) bool {
	return Status(s) != StatusCancelled && Status(s) != StatusNoShow
}

// InitialStatus is the state every new appointment starts in.
func InitialStatus() Status {
	return StatusAwaiting
}

// RevenueStatus reports whether an appointment in this status counts
// towards expected revenue.
func RevenueStatus(s string) bool {
	return Status(s) == StatusConfirmed || Status(s) == StatusCompleted
}
