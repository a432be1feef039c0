package reservation

import "railway/internal/tickets"

// BookingResult is returned from a successful booking attempt. The ticket is
// either CONFIRMED with a seat or WAITLISTED with seat 0. SaveErr carries a
// persistence failure that happened after the booking took effect in memory;
// the booking stands either way.
type BookingResult struct {
	Ticket  tickets.Ticket
	SaveErr error
}

// CancelResult describes what a cancellation did
type CancelResult struct {
	Ticket tickets.Ticket

	// AlreadyCancelled is set when the ticket was cancelled before this
	// call; nothing else changed.
	AlreadyCancelled bool

	// FreedSeat is the seat number released by cancelling a confirmed
	// ticket, 0 otherwise.
	FreedSeat int

	// Promoted is the waitlisted ticket upgraded into the freed seat, if
	// any.
	Promoted *tickets.Ticket

	// RemovedFromQueue is set when a waitlisted ticket's queue entry was
	// found and removed.
	RemovedFromQueue bool

	SaveErr error
}

// TicketView pairs a ticket with the display name of its train, which may be
// empty when the train is no longer resolvable
type TicketView struct {
	Ticket    tickets.Ticket
	TrainName string
	TrainFrom string
	TrainTo   string
}
