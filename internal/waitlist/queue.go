package waitlist

import "errors"

var ErrWaitingListFull = errors.New("waiting list is full")

// Queue is a single global FIFO of waitlisted bookings across all trains.
// Dequeueing for a train scans from the head and removes the first matching
// entry, preserving the relative order of everything else. Booking order
// across trains carries no fairness meaning here, so one filtered queue is
// simpler than per-train queues.
type Queue struct {
	entries []Entry
	max     int
}

// NewQueue creates a queue with the given capacity ceiling
func NewQueue(maxWaiting int) *Queue {
	return &Queue{
		entries: make([]Entry, 0, 16),
		max:     maxWaiting,
	}
}

// Enqueue appends an entry at the tail
func (q *Queue) Enqueue(e Entry) error {
	if len(q.entries) >= q.max {
		return ErrWaitingListFull
	}
	q.entries = append(q.entries, e)
	return nil
}

// DequeueFirstForTrain removes and returns the first entry for the given
// train, scanning from the head. Returns nil if no entry matches.
func (q *Queue) DequeueFirstForTrain(trainID int) *Entry {
	for i, e := range q.entries {
		if e.TrainID == trainID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return &e
		}
	}
	return nil
}

// RemoveByPNR removes the entry with the given PNR regardless of position,
// returning whether it was found
func (q *Queue) RemoveByPNR(pnr int) bool {
	for i, e := range q.entries {
		if e.PNR == pnr {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of queued entries
func (q *Queue) Len() int {
	return len(q.entries)
}

// HasRoom reports whether another entry can be enqueued
func (q *Queue) HasRoom() bool {
	return len(q.entries) < q.max
}

// Snapshot returns a head-to-tail copy of the queue for display
func (q *Queue) Snapshot() []Entry {
	out := make([]Entry, len(q.entries))
	copy(out, q.entries)
	return out
}
