package tickets

import "time"

// Ticket represents a passenger reservation on a train. Tickets are never
// removed from the ledger; cancellation is a status flip.
type Ticket struct {
	PNR           int       `json:"pnr"`
	TrainID       int       `json:"train_id"`
	PassengerName string    `json:"passenger_name"`
	Age           int       `json:"age"`
	SeatNo        int       `json:"seat_no"` // 0 unless confirmed
	Status        Status    `json:"status"`
	BookedAt      time.Time `json:"booked_at"`
}

// IsConfirmed returns true if the ticket holds a seat
func (t *Ticket) IsConfirmed() bool {
	return t.Status == StatusConfirmed
}

// IsWaitlisted returns true if the ticket is queued for a seat
func (t *Ticket) IsWaitlisted() bool {
	return t.Status == StatusWaitlisted
}

// IsCancelled returns true if the ticket has been cancelled
func (t *Ticket) IsCancelled() bool {
	return t.Status == StatusCancelled
}
