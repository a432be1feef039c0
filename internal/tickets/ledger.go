package tickets

import "errors"

var ErrLedgerFull = errors.New("ticket ledger is full")

// Ledger is the append-only collection of tickets, keyed by PNR
type Ledger struct {
	tickets []*Ticket
	max     int
}

// NewLedger creates a ledger with the given capacity ceiling
func NewLedger(maxTickets int) *Ledger {
	return &Ledger{
		tickets: make([]*Ticket, 0, 64),
		max:     maxTickets,
	}
}

// Append adds a ticket to the ledger
func (l *Ledger) Append(t *Ticket) error {
	if len(l.tickets) >= l.max {
		return ErrLedgerFull
	}
	l.tickets = append(l.tickets, t)
	return nil
}

// FindByPNR returns the ticket with the given PNR, or nil if absent
func (l *Ledger) FindByPNR(pnr int) *Ticket {
	for _, t := range l.tickets {
		if t.PNR == pnr {
			return t
		}
	}
	return nil
}

// All returns a snapshot of every ticket in booking order
func (l *Ledger) All() []Ticket {
	out := make([]Ticket, 0, len(l.tickets))
	for _, t := range l.tickets {
		out = append(out, *t)
	}
	return out
}

// Len returns the number of tickets ever booked
func (l *Ledger) Len() int {
	return len(l.tickets)
}

// HasRoom reports whether another ticket can be appended
func (l *Ledger) HasRoom() bool {
	return len(l.tickets) < l.max
}
