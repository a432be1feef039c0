package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railway/internal/auth"
	"railway/internal/cli"
	"railway/internal/reservation"
	"railway/internal/shared/config"
	"railway/internal/tickets"
	"railway/internal/trains"
	"railway/internal/waitlist"
)

type memGateway struct {
	trains  []trains.Train
	tickets []tickets.Ticket
	entries []waitlist.Entry
	lastPNR int
}

func (g *memGateway) LoadAll(ctx context.Context) ([]trains.Train, []tickets.Ticket, []waitlist.Entry, int, error) {
	return g.trains, g.tickets, g.entries, g.lastPNR, nil
}

func (g *memGateway) SaveAll(ctx context.Context, trainList []trains.Train, ticketList []tickets.Ticket, entries []waitlist.Entry, lastPNR int) error {
	g.trains = trainList
	g.tickets = ticketList
	g.entries = entries
	g.lastPNR = lastPNR
	return nil
}

// runShell drives the menu loop with scripted input and returns the output
func runShell(t *testing.T, input string) (string, reservation.Service) {
	t.Helper()
	session, err := auth.NewSession("admin123", nil)
	require.NoError(t, err)

	limits := config.LimitConfig{MaxTrains: 20, MaxTickets: 1000, MaxWaiting: 1000, PNRFloor: 1000}
	engine := reservation.NewService(&memGateway{}, session, limits, nil)
	require.NoError(t, engine.Load(context.Background()))

	var out bytes.Buffer
	shell := cli.NewShell(engine, session, nil, strings.NewReader(input), &out, false)
	require.NoError(t, shell.Run(context.Background()))
	return out.String(), engine
}

func TestShell_ListTrainsAndExit(t *testing.T) {
	out, _ := runShell(t, "1\n\n7\n")

	assert.Contains(t, out, "Available Trains")
	assert.Contains(t, out, "Express A")
	assert.Contains(t, out, "Express B")
	assert.Contains(t, out, "Exiting...")
}

func TestShell_BookAndShowTicket(t *testing.T) {
	// Book on train 101, then show PNR 1001, then exit.
	out, engine := runShell(t, "2\n101\nAsha\n30\n\n3\n1001\n\n7\n")

	assert.Contains(t, out, "Ticket Confirmed! Seat No: 1")
	assert.Contains(t, out, "Your PNR: 1001")
	assert.Contains(t, out, "Ticket Details")
	assert.Contains(t, out, "Passenger: Asha")

	view, err := engine.Ticket(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, tickets.StatusConfirmed, view.Ticket.Status)
}

func TestShell_CancelTicket(t *testing.T) {
	out, engine := runShell(t, "2\n101\nAsha\n30\n\n4\n1001\n\n7\n")

	assert.Contains(t, out, "Confirmed ticket cancelled. Freed Seat No: 1")

	view, err := engine.Ticket(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, tickets.StatusCancelled, view.Ticket.Status)
}

func TestShell_AdminGateAndLogin(t *testing.T) {
	// Option 6 in the guest menu is admin login; afterwards option 7 is
	// the admin-only full ticket listing and 9 exits.
	out, _ := runShell(t, "6\nadmin123\n\n7\n\n9\n")

	assert.Contains(t, out, "Admin login successful.")
	assert.Contains(t, out, "All Tickets")
}

func TestShell_RejectsWrongPassword(t *testing.T) {
	out, _ := runShell(t, "6\nnope\n\n7\n")

	assert.Contains(t, out, "Incorrect password.")
	assert.NotContains(t, out, "Admin login successful.")
}

func TestShell_UnknownTicketMessage(t *testing.T) {
	out, _ := runShell(t, "3\n4242\n\n7\n")

	assert.Contains(t, out, "Ticket not found.")
}

func TestShell_InvalidMenuChoice(t *testing.T) {
	out, _ := runShell(t, "42\n\n7\n")

	assert.Contains(t, out, "Invalid choice. Try again.")
}

func TestShell_EOFSavesAndExits(t *testing.T) {
	out, _ := runShell(t, "1\n\n")

	assert.Contains(t, out, "Exiting...")
}
