package trains

// Train represents a train in the reservation catalog
type Train struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	From        string `json:"from"`
	To          string `json:"to"`
	TotalSeats  int    `json:"total_seats"`
	BookedSeats int    `json:"booked_seats"`
}

// SeatsLeft returns the number of unbooked seats
func (t *Train) SeatsLeft() int {
	return t.TotalSeats - t.BookedSeats
}

// HasFreeSeat checks if at least one seat is available for booking
func (t *Train) HasFreeSeat() bool {
	return t.BookedSeats < t.TotalSeats
}
