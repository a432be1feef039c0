package tickets

type Status string

const (
	StatusConfirmed  Status = "CONFIRMED"
	StatusWaitlisted Status = "WAITLISTED"
	StatusCancelled  Status = "CANCELLED"
)

// IsValid checks if the ticket status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusWaitlisted, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Code returns the short display code for the status
func (s Status) Code() string {
	switch s {
	case StatusConfirmed:
		return "CNF"
	case StatusWaitlisted:
		return "WL"
	case StatusCancelled:
		return "CNL"
	}
	return "?"
}

// CanBeCancelled checks if a ticket with this status can be cancelled
func (s Status) CanBeCancelled() bool {
	return s == StatusConfirmed || s == StatusWaitlisted
}

// IsActive checks if the ticket is active (not cancelled)
func (s Status) IsActive() bool {
	return s != StatusCancelled
}
