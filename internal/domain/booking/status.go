package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusBooked    Status = "booked"
	StatusArchived  Status = "archived"
)

// IsValid reports whether s is one of the known statuses. Transitions are
// deliberately unconstrained: an admin may move an inquiry between any two
// statuses in any order.
func IsValid(s Status) bool {
	switch s {
	case StatusNew, StatusContacted, StatusBooked, StatusArchived:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusNew
}
