package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"railway/internal/auth"
	"railway/internal/shared/config"
	"railway/internal/tickets"
	"railway/internal/trains"
	"railway/internal/waitlist"
	"railway/pkg/logger"
)

var (
	ErrUnknownTrain  = errors.New("train not found")
	ErrUnknownTicket = errors.New("ticket not found")
	ErrInvalidInput  = errors.New("invalid input")
)

// Gateway is the persistence contract the engine depends on. Loads default to
// empty state; saves are whole-collection overwrites.
type Gateway interface {
	LoadAll(ctx context.Context) ([]trains.Train, []tickets.Ticket, []waitlist.Entry, int, error)
	SaveAll(ctx context.Context, trainList []trains.Train, ticketList []tickets.Ticket, entries []waitlist.Entry, lastPNR int) error
}

// Service interface defines the contract for reservation business logic
type Service interface {
	// Load populates the engine from persisted state, seeding the default
	// catalog on first run.
	Load(ctx context.Context) error

	// Save persists the full engine state.
	Save(ctx context.Context) error

	AddTrain(ctx context.Context, req AddTrainRequest) (*trains.Train, error)
	Book(ctx context.Context, req BookingRequest) (*BookingResult, error)
	Cancel(ctx context.Context, pnr int) (*CancelResult, error)

	Ticket(ctx context.Context, pnr int) (*TicketView, error)
	Trains(ctx context.Context) []trains.Train
	WaitingList(ctx context.Context) []waitlist.Entry
	AllTickets(ctx context.Context) ([]TicketView, error)
}

// service implements the Service interface. It owns the catalog, the ledger,
// the waiting queue and the PNR counter; no state lives outside it.
type service struct {
	catalog *trains.Catalog
	ledger  *tickets.Ledger
	queue   *waitlist.Queue
	lastPNR int

	gateway  Gateway
	session  auth.Session
	validate *validator.Validate
	limits   config.LimitConfig
	logger   *logger.Logger
	now      func() time.Time
}

// NewService creates a new reservation engine instance
func NewService(gateway Gateway, session auth.Session, limits config.LimitConfig, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		catalog:  trains.NewCatalog(limits.MaxTrains),
		ledger:   tickets.NewLedger(limits.MaxTickets),
		queue:    waitlist.NewQueue(limits.MaxWaiting),
		lastPNR:  limits.PNRFloor,
		gateway:  gateway,
		session:  session,
		validate: validator.New(),
		limits:   limits,
		logger:   log,
		now:      time.Now,
	}
}

// Load populates the in-memory collections from the gateway. Entries beyond
// the configured ceilings are dropped with a warning rather than failing the
// whole load. An empty catalog is seeded with the two default trains.
func (s *service) Load(ctx context.Context) error {
	trainList, ticketList, entries, lastPNR, err := s.gateway.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	for i := range trainList {
		t := trainList[i]
		if err := s.catalog.Restore(&t); err != nil {
			s.logger.WarnContext(ctx, "Dropping persisted train beyond catalog capacity",
				"train_id", t.ID)
		}
	}
	for i := range ticketList {
		tk := ticketList[i]
		if err := s.ledger.Append(&tk); err != nil {
			s.logger.WarnContext(ctx, "Dropping persisted ticket beyond ledger capacity",
				"pnr", tk.PNR)
		}
	}
	for _, e := range entries {
		if err := s.queue.Enqueue(e); err != nil {
			s.logger.WarnContext(ctx, "Dropping persisted waiting entry beyond queue capacity",
				"pnr", e.PNR)
		}
	}

	s.lastPNR = lastPNR
	if s.lastPNR < s.limits.PNRFloor {
		s.lastPNR = s.limits.PNRFloor
	}

	if s.catalog.Len() == 0 {
		s.seedDefaultTrains(ctx)
	}
	return nil
}

// seedDefaultTrains installs the two sample trains used on first run
func (s *service) seedDefaultTrains(ctx context.Context) {
	defaults := []*trains.Train{
		{ID: 101, Name: "Express A", From: "CITY1", To: "CITY2", TotalSeats: 5},
		{ID: 102, Name: "Express B", From: "CITY2", To: "CITY3", TotalSeats: 5},
	}
	for _, t := range defaults {
		if err := s.catalog.Add(t); err != nil {
			s.logger.ErrorWithContext(ctx, "Failed to seed default train", err,
				map[string]interface{}{"train_id": t.ID})
		}
	}
	s.logger.InfoContext(ctx, "Seeded default train catalog", "trains", s.catalog.Len())
	if err := s.Save(ctx); err != nil {
		s.logger.WithError(err).WarnContext(ctx, "Failed to persist seeded catalog")
	}
}

// Save persists the four state pieces as one unit
func (s *service) Save(ctx context.Context) error {
	return s.gateway.SaveAll(ctx, s.catalog.List(), s.ledger.All(), s.queue.Snapshot(), s.lastPNR)
}

// AddTrain adds a train to the catalog. Admin only.
func (s *service) AddTrain(ctx context.Context, req AddTrainRequest) (*trains.Train, error) {
	if !s.session.IsActive() {
		return nil, auth.ErrAdminRequired
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if s.catalog.FindByID(req.TrainID) != nil {
		return nil, fmt.Errorf("%w: train id %d already exists", ErrInvalidInput, req.TrainID)
	}

	t := &trains.Train{
		ID:         req.TrainID,
		Name:       req.Name,
		From:       req.From,
		To:         req.To,
		TotalSeats: req.TotalSeats,
	}
	if err := s.catalog.Add(t); err != nil {
		return nil, err
	}

	s.logger.LogTrainAdded(ctx, t.ID, t.Name, t.TotalSeats)
	if err := s.Save(ctx); err != nil {
		s.logger.WithError(err).WarnContext(ctx, "Failed to persist catalog after add")
	}

	result := *t
	return &result, nil
}

// Book creates a ticket on the given train. When a seat is free the ticket is
// confirmed with the next seat number; when the train is full the ticket is
// waitlisted and queued. All capacity checks happen before any state is
// touched, so a rejected booking burns nothing, including the PNR.
func (s *service) Book(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	train := s.catalog.FindByID(req.TrainID)
	if train == nil {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownTrain, req.TrainID)
	}
	if !s.ledger.HasRoom() {
		return nil, tickets.ErrLedgerFull
	}
	if !train.HasFreeSeat() && !s.queue.HasRoom() {
		return nil, waitlist.ErrWaitingListFull
	}

	s.lastPNR++
	ticket := &tickets.Ticket{
		PNR:           s.lastPNR,
		TrainID:       train.ID,
		PassengerName: req.PassengerName,
		Age:           req.Age,
		BookedAt:      s.now(),
	}

	if train.HasFreeSeat() {
		train.BookedSeats++
		ticket.SeatNo = train.BookedSeats
		ticket.Status = tickets.StatusConfirmed
	} else {
		ticket.SeatNo = 0
		ticket.Status = tickets.StatusWaitlisted
		if err := s.queue.Enqueue(waitlist.Entry{
			PNR:           ticket.PNR,
			TrainID:       train.ID,
			PassengerName: req.PassengerName,
			Age:           req.Age,
		}); err != nil {
			// Unreachable after the capacity pre-check.
			return nil, err
		}
	}

	if err := s.ledger.Append(ticket); err != nil {
		// Unreachable after the capacity pre-check.
		return nil, err
	}

	s.logger.LogTicketBooked(ctx, ticket.PNR, train.ID, ticket.Status.String())

	result := &BookingResult{Ticket: *ticket}
	if err := s.Save(ctx); err != nil {
		s.logger.WithError(err).WarnContext(ctx, "Failed to persist state after booking")
		result.SaveErr = err
	}
	return result, nil
}

// Cancel cancels a ticket by PNR. Cancelling a confirmed ticket frees its
// seat and attempts exactly one promotion from the waiting queue; cancelling
// a waitlisted ticket removes its queue entry. Cancelling an already
// cancelled ticket is a no-op.
func (s *service) Cancel(ctx context.Context, pnr int) (*CancelResult, error) {
	ticket := s.ledger.FindByPNR(pnr)
	if ticket == nil {
		return nil, fmt.Errorf("%w: pnr %d", ErrUnknownTicket, pnr)
	}

	train := s.catalog.FindByID(ticket.TrainID)
	if train == nil {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownTrain, ticket.TrainID)
	}

	result := &CancelResult{}

	switch ticket.Status {
	case tickets.StatusCancelled:
		result.Ticket = *ticket
		result.AlreadyCancelled = true
		return result, nil

	case tickets.StatusConfirmed:
		freedSeat := ticket.SeatNo
		ticket.SeatNo = 0
		ticket.Status = tickets.StatusCancelled
		if train.BookedSeats > 0 {
			train.BookedSeats--
		}
		result.FreedSeat = freedSeat
		s.logger.LogTicketCancelled(ctx, ticket.PNR, train.ID)

		// Upgrade the first waiting passenger for this train. The freed
		// seat number is handed over verbatim; seat numbers are never
		// renumbered, so they stop being contiguous once cancellations
		// accumulate.
		if entry := s.queue.DequeueFirstForTrain(train.ID); entry != nil {
			waiting := s.ledger.FindByPNR(entry.PNR)
			if waiting != nil && waiting.Status == tickets.StatusWaitlisted {
				waiting.SeatNo = freedSeat
				waiting.Status = tickets.StatusConfirmed
				train.BookedSeats++
				promoted := *waiting
				result.Promoted = &promoted
				s.logger.LogWaitlistPromoted(ctx, waiting.PNR, train.ID, freedSeat)
			} else {
				s.logger.WarnContext(ctx, "Dequeued waiting entry has no waitlisted ticket",
					"pnr", entry.PNR, "train_id", train.ID)
			}
		}

	case tickets.StatusWaitlisted:
		result.RemovedFromQueue = s.queue.RemoveByPNR(ticket.PNR)
		if !result.RemovedFromQueue {
			s.logger.WarnContext(ctx, "Waitlisted ticket had no queue entry",
				"pnr", ticket.PNR)
		}
		ticket.Status = tickets.StatusCancelled
		s.logger.LogTicketCancelled(ctx, ticket.PNR, train.ID)
	}

	result.Ticket = *ticket
	if err := s.Save(ctx); err != nil {
		s.logger.WithError(err).WarnContext(ctx, "Failed to persist state after cancellation")
		result.SaveErr = err
	}
	return result, nil
}

// Ticket returns the ticket with the given PNR together with its train's
// display details
func (s *service) Ticket(ctx context.Context, pnr int) (*TicketView, error) {
	ticket := s.ledger.FindByPNR(pnr)
	if ticket == nil {
		return nil, fmt.Errorf("%w: pnr %d", ErrUnknownTicket, pnr)
	}
	return s.view(ticket), nil
}

// Trains returns the catalog snapshot in insertion order
func (s *service) Trains(ctx context.Context) []trains.Train {
	return s.catalog.List()
}

// WaitingList returns the queue snapshot, head first
func (s *service) WaitingList(ctx context.Context) []waitlist.Entry {
	return s.queue.Snapshot()
}

// AllTickets returns every ticket ever booked. Admin only.
func (s *service) AllTickets(ctx context.Context) ([]TicketView, error) {
	if !s.session.IsActive() {
		return nil, auth.ErrAdminRequired
	}
	all := s.ledger.All()
	views := make([]TicketView, 0, len(all))
	for i := range all {
		views = append(views, *s.view(&all[i]))
	}
	return views, nil
}

// view resolves a ticket's train details for display
func (s *service) view(ticket *tickets.Ticket) *TicketView {
	v := &TicketView{Ticket: *ticket}
	if train := s.catalog.FindByID(ticket.TrainID); train != nil {
		v.TrainName = train.Name
		v.TrainFrom = train.From
		v.TrainTo = train.To
	}
	return v
}
