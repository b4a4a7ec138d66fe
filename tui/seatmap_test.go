package tui

import (
	"strings"
	"testing"

	"cineplus-cli/model"
)

func TestRenderSeatGrid_RowsOfTen(t *testing.T) {
	seats := make([]model.Seat, 0, 12)
	for i := 1; i <= 12; i++ {
		seats = append(seats, model.Seat{Id: i, Number: i, Status: model.SeatAvailable})
	}
	s := newReservationSession(model.ShowtimeView{Id: 1}, "Dune")
	s.seatsLoaded(seats)

	grid := s.renderSeatGrid()
	if !strings.Contains(grid, "PANTALLA") {
		t.Fatal("expected screen bar")
	}

	var rows []string
	for _, line := range strings.Split(grid, "\n") {
		if strings.Contains(line, "12") || strings.Contains(line, "10") {
			rows = append(rows, line)
		}
	}
	if len(rows) != 2 {
		t.Fatalf("expected 12 seats on 2 rows, got %d matching lines:\n%s", len(rows), grid)
	}
}

func TestRenderSeatGrid_Empty(t *testing.T) {
	s := newReservationSession(model.ShowtimeView{Id: 1}, "Dune")
	s.seatsLoaded(nil)
	if got := s.renderSeatGrid(); !strings.Contains(got, "No hay asientos") {
		t.Fatalf("expected empty message, got %q", got)
	}
}

func TestRenderSeatGrid_SummaryListsSelection(t *testing.T) {
	s := newReservationSession(model.ShowtimeView{Id: 1}, "Dune")
	s.seatsLoaded(seatFixture())
	_ = s.toggleSeat()

	grid := s.renderSeatGrid()
	if !strings.Contains(grid, "Asientos seleccionados: 1") {
		t.Fatalf("expected selection summary, got:\n%s", grid)
	}
}

func TestPadCell(t *testing.T) {
	if got := padCell("7", 3); got != " 7 " {
		t.Fatalf("expected centered cell, got %q", got)
	}
	if got := padCell("1234", 2); got != "12" {
		t.Fatalf("expected truncated cell, got %q", got)
	}
	if got := padCell("", 2); got != "  " {
		t.Fatalf("expected blank cell, got %q", got)
	}
}
