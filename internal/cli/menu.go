package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"railway/internal/auth"
	"railway/internal/reservation"
	"railway/internal/tickets"
	"railway/internal/trains"
	"railway/internal/waitlist"
	"railway/pkg/logger"
)

// Shell is the interactive menu surface over the reservation engine. It
// gathers input, builds requests, and renders results; all reservation rules
// live in the engine.
type Shell struct {
	engine  reservation.Service
	session auth.Session
	logger  *logger.Logger

	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewShell creates a shell reading from in and writing to out. interactive
// controls whether the password prompt may switch the terminal to no-echo
// mode.
func NewShell(engine reservation.Service, session auth.Session, log *logger.Logger, in io.Reader, out io.Writer, interactive bool) *Shell {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Shell{
		engine:      engine,
		session:     session,
		logger:      log,
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Run drives the menu loop until the user exits or input ends
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printMenu()
		choice, err := s.promptInt("Enter your choice: ")
		if err != nil {
			if s.inputClosed(err) {
				return s.shutdown(ctx)
			}
			fmt.Fprintln(s.out, errorStyle.Render("Invalid choice. Try again."))
			continue
		}

		done, err := s.dispatch(ctx, choice)
		if err != nil {
			if s.inputClosed(err) {
				return s.shutdown(ctx)
			}
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, titleStyle.Render("Railway Reservation System"))
	fmt.Fprintln(s.out, "1. List Trains")
	if s.session.IsActive() {
		fmt.Fprintln(s.out, "2. Add Train (Admin)")
		fmt.Fprintln(s.out, "3. Book Ticket")
		fmt.Fprintln(s.out, "4. Show Ticket")
		fmt.Fprintln(s.out, "5. Cancel Ticket")
		fmt.Fprintln(s.out, "6. Show Waiting List")
		fmt.Fprintln(s.out, "7. View All Tickets (Admin)")
		fmt.Fprintln(s.out, "8. Admin Logout")
		fmt.Fprintln(s.out, "9. Exit")
	} else {
		fmt.Fprintln(s.out, "2. Book Ticket")
		fmt.Fprintln(s.out, "3. Show Ticket")
		fmt.Fprintln(s.out, "4. Cancel Ticket")
		fmt.Fprintln(s.out, "5. Show Waiting List")
		fmt.Fprintln(s.out, "6. Admin Login")
		fmt.Fprintln(s.out, "7. Exit")
	}
}

// dispatch runs one menu action; the bool result reports a clean exit
func (s *Shell) dispatch(ctx context.Context, choice int) (bool, error) {
	opLog := s.logger.WithRequestID(uuid.New().String())
	opLog.DebugContext(ctx, "Menu action", "choice", choice, "admin", s.session.IsActive())

	if s.session.IsActive() {
		switch choice {
		case 1:
			s.listTrains(ctx)
		case 2:
			s.addTrain(ctx)
		case 3:
			s.bookTicket(ctx)
		case 4:
			s.showTicket(ctx)
		case 5:
			s.cancelTicket(ctx)
		case 6:
			s.showWaitingList(ctx)
		case 7:
			s.viewAllTickets(ctx)
		case 8:
			s.session.Logout(ctx)
			fmt.Fprintln(s.out, "Admin logged out.")
		case 9:
			return true, s.shutdown(ctx)
		default:
			fmt.Fprintln(s.out, errorStyle.Render("Invalid choice. Try again."))
			return false, nil
		}
	} else {
		switch choice {
		case 1:
			s.listTrains(ctx)
		case 2:
			s.bookTicket(ctx)
		case 3:
			s.showTicket(ctx)
		case 4:
			s.cancelTicket(ctx)
		case 5:
			s.showWaitingList(ctx)
		case 6:
			s.adminLogin(ctx)
		case 7:
			return true, s.shutdown(ctx)
		default:
			fmt.Fprintln(s.out, errorStyle.Render("Invalid choice. Try again."))
			return false, nil
		}
	}

	s.pressEnter()
	return false, nil
}

func (s *Shell) listTrains(ctx context.Context) {
	fmt.Fprint(s.out, renderTrains(s.engine.Trains(ctx)))
}

func (s *Shell) addTrain(ctx context.Context) {
	var req reservation.AddTrainRequest
	var err error

	if req.TrainID, err = s.promptInt("Enter train id: "); err != nil {
		s.showError(err)
		return
	}
	if req.Name, err = s.promptLine("Enter train name: "); err != nil {
		s.showError(err)
		return
	}
	if req.From, err = s.promptLine("From station: "); err != nil {
		s.showError(err)
		return
	}
	if req.To, err = s.promptLine("To station: "); err != nil {
		s.showError(err)
		return
	}
	if req.TotalSeats, err = s.promptInt("Total seats: "); err != nil {
		s.showError(err)
		return
	}

	if _, err := s.engine.AddTrain(ctx, req); err != nil {
		s.showError(err)
		return
	}
	fmt.Fprintln(s.out, successStyle.Render("Train added successfully!"))
}

func (s *Shell) bookTicket(ctx context.Context) {
	trainList := s.engine.Trains(ctx)
	if len(trainList) == 0 {
		fmt.Fprintln(s.out, "No trains available to book.")
		return
	}
	fmt.Fprint(s.out, renderTrains(trainList))

	var req reservation.BookingRequest
	var err error

	if req.TrainID, err = s.promptInt("\nEnter Train ID to book: "); err != nil {
		s.showError(err)
		return
	}
	if req.PassengerName, err = s.promptLine("Enter passenger name: "); err != nil {
		s.showError(err)
		return
	}
	if req.Age, err = s.promptInt("Enter age: "); err != nil {
		s.showError(err)
		return
	}

	result, err := s.engine.Book(ctx, req)
	if err != nil {
		s.showError(err)
		return
	}

	if result.Ticket.IsConfirmed() {
		fmt.Fprintln(s.out, successStyle.Render(
			fmt.Sprintf("\nTicket Confirmed! Seat No: %d", result.Ticket.SeatNo)))
	} else {
		fmt.Fprintln(s.out, "\nNo seats available. Added to Waiting List.")
	}
	fmt.Fprintf(s.out, "Your PNR: %d\n", result.Ticket.PNR)
	s.showSaveWarning(result.SaveErr)
}

func (s *Shell) showTicket(ctx context.Context) {
	pnr, err := s.promptInt("Enter PNR: ")
	if err != nil {
		s.showError(err)
		return
	}
	view, err := s.engine.Ticket(ctx, pnr)
	if err != nil {
		s.showError(err)
		return
	}
	fmt.Fprint(s.out, renderTicket(view))
}

func (s *Shell) cancelTicket(ctx context.Context) {
	pnr, err := s.promptInt("Enter PNR to cancel: ")
	if err != nil {
		s.showError(err)
		return
	}
	result, err := s.engine.Cancel(ctx, pnr)
	if err != nil {
		s.showError(err)
		return
	}

	switch {
	case result.AlreadyCancelled:
		fmt.Fprintln(s.out, "Ticket already cancelled.")
	case result.FreedSeat > 0:
		fmt.Fprintf(s.out, "Confirmed ticket cancelled. Freed Seat No: %d\n", result.FreedSeat)
		if result.Promoted != nil {
			fmt.Fprintln(s.out, successStyle.Render(
				fmt.Sprintf("Waiting passenger %s upgraded to Confirmed (Seat %d).",
					result.Promoted.PassengerName, result.Promoted.SeatNo)))
		}
	case result.RemovedFromQueue:
		fmt.Fprintln(s.out, "Waiting list ticket cancelled and removed from queue.")
	default:
		fmt.Fprintln(s.out, "Waiting list ticket cancelled (entry not found in queue).")
	}
	s.showSaveWarning(result.SaveErr)
}

func (s *Shell) showWaitingList(ctx context.Context) {
	fmt.Fprint(s.out, renderWaitingList(s.engine.WaitingList(ctx)))
}

func (s *Shell) viewAllTickets(ctx context.Context) {
	views, err := s.engine.AllTickets(ctx)
	if err != nil {
		s.showError(err)
		return
	}
	fmt.Fprint(s.out, renderAllTickets(views))
}

func (s *Shell) adminLogin(ctx context.Context) {
	password, err := s.promptPassword("Enter admin password: ")
	if err != nil {
		s.showError(err)
		return
	}
	if s.session.Login(ctx, password) {
		fmt.Fprintln(s.out, successStyle.Render("Admin login successful."))
	} else {
		fmt.Fprintln(s.out, errorStyle.Render("Incorrect password."))
	}
}

// shutdown saves state before exit
func (s *Shell) shutdown(ctx context.Context) error {
	if err := s.engine.Save(ctx); err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Warning: could not save state: "+err.Error()))
	}
	fmt.Fprintln(s.out, "Exiting...")
	return nil
}

// showError renders an engine error as a user-facing message
func (s *Shell) showError(err error) {
	fmt.Fprintln(s.out, errorStyle.Render(userMessage(err)))
}

func (s *Shell) showSaveWarning(err error) {
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Warning: changes may not be saved: "+err.Error()))
	}
}

func (s *Shell) inputClosed(err error) bool {
	return errors.Is(err, io.EOF)
}

// userMessage maps engine errors to the messages shown at the menu
func userMessage(err error) string {
	switch {
	case errors.Is(err, reservation.ErrUnknownTrain):
		return "Invalid train id."
	case errors.Is(err, reservation.ErrUnknownTicket):
		return "Ticket not found."
	case errors.Is(err, reservation.ErrInvalidInput):
		return "Invalid input."
	case errors.Is(err, trains.ErrCatalogFull):
		return "Cannot add more trains."
	case errors.Is(err, tickets.ErrLedgerFull):
		return "Ticket system full; cannot book more."
	case errors.Is(err, waitlist.ErrWaitingListFull):
		return "Waiting list full; cannot add."
	case errors.Is(err, auth.ErrAdminRequired):
		return "Admin privileges required."
	}
	return err.Error()
}
