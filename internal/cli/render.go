package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"railway/internal/reservation"
	"railway/internal/tickets"
	"railway/internal/trains"
	"railway/internal/waitlist"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	statusStyles = map[tickets.Status]lipgloss.Style{
		tickets.StatusConfirmed:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		tickets.StatusWaitlisted: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		tickets.StatusCancelled:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

func renderStatus(s tickets.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(s.Code())
	}
	return s.Code()
}

func renderTrains(list []trains.Train) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("---- Available Trains ----"))
	b.WriteString("\n")
	if len(list) == 0 {
		b.WriteString(dimStyle.Render("No trains available."))
		b.WriteString("\n")
		return b.String()
	}
	for _, t := range list {
		fmt.Fprintf(&b, "ID: %d | %s | %s -> %s | Seats: %d | Booked: %d\n",
			t.ID, t.Name, t.From, t.To, t.TotalSeats, t.BookedSeats)
	}
	return b.String()
}

func renderTicket(v *reservation.TicketView) string {
	var b strings.Builder
	t := v.Ticket
	b.WriteString(headerStyle.Render("---- Ticket Details ----"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "PNR: %d\n", t.PNR)
	if v.TrainName != "" {
		fmt.Fprintf(&b, "Train: %d - %s (%s -> %s)\n", t.TrainID, v.TrainName, v.TrainFrom, v.TrainTo)
	} else {
		fmt.Fprintf(&b, "Train ID: %d (details unavailable)\n", t.TrainID)
	}
	fmt.Fprintf(&b, "Passenger: %s\nAge: %d\n", t.PassengerName, t.Age)
	fmt.Fprintf(&b, "Status: %s\n", renderStatus(t.Status))
	if t.IsConfirmed() {
		fmt.Fprintf(&b, "Seat No: %d\n", t.SeatNo)
	}
	return b.String()
}

func renderWaitingList(entries []waitlist.Entry) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("---- Waiting List ----"))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(dimStyle.Render("No passengers in waiting list."))
		b.WriteString("\n")
		return b.String()
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "%d) PNR: %d | Train: %d | %s | Age: %d\n",
			i+1, e.PNR, e.TrainID, e.PassengerName, e.Age)
	}
	return b.String()
}

func renderAllTickets(views []reservation.TicketView) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("---- All Tickets (%d) ----", len(views))))
	b.WriteString("\n")
	if len(views) == 0 {
		b.WriteString(dimStyle.Render("No tickets booked yet."))
		b.WriteString("\n")
		return b.String()
	}
	for _, v := range views {
		t := v.Ticket
		if v.TrainName != "" {
			fmt.Fprintf(&b, "PNR: %d | Train: %d - %s | Name: %s | Age: %d | Status: %s",
				t.PNR, t.TrainID, v.TrainName, t.PassengerName, t.Age, renderStatus(t.Status))
		} else {
			fmt.Fprintf(&b, "PNR: %d | Train: %d | Name: %s | Age: %d | Status: %s",
				t.PNR, t.TrainID, t.PassengerName, t.Age, renderStatus(t.Status))
		}
		if t.IsConfirmed() {
			fmt.Fprintf(&b, " | Seat: %d", t.SeatNo)
		}
		b.WriteString("\n")
	}
	return b.String()
}
