package waitlist

// Entry represents a waitlisted booking's position in the queue. Exactly one
// entry exists for each ticket currently in WAITLISTED status; the entry is
// removed when that ticket's status changes.
type Entry struct {
	PNR           int    `json:"pnr"`
	TrainID       int    `json:"train_id"`
	PassengerName string `json:"passenger_name"`
	Age           int    `json:"age"`
}
