package tui

import (
	"strconv"
	"strings"

	"cineplus-cli/model"
)

// reservationStep is the explicit step of the seat-selection flow. The
// transition methods below are the only way to move between steps;
// illegal moves are rejected instead of relying on the view to hide
// controls.
type reservationStep int

const (
	stepLoadingSeats reservationStep = iota
	stepSelectSeats
	stepConfirm
	stepDone
	stepFailed
)

const seatGridColumns = 10

// reservationSession holds all state of one open reservation dialog.
// It is constructed when the dialog opens and discarded when it closes;
// nothing survives across opens, and seats are fetched fresh every
// time.
type reservationSession struct {
	showtime   model.ShowtimeView
	movieTitle string

	step     reservationStep
	seats    []model.Seat
	selected map[int]bool
	cursor   int

	name      string
	email     string
	loadErr   string
	submitErr string
}

func newReservationSession(showtime model.ShowtimeView, movieTitle string) *reservationSession {
	return &reservationSession{
		showtime:   showtime,
		movieTitle: movieTitle,
		step:       stepLoadingSeats,
		selected:   map[int]bool{},
	}
}

// seatsLoaded moves loading → select-seats. Seat ordering is kept
// exactly as the backend returned it.
func (s *reservationSession) seatsLoaded(seats []model.Seat) bool {
	if s.step != stepLoadingSeats {
		return false
	}
	s.seats = seats
	s.step = stepSelectSeats
	return true
}

// loadFailed moves loading → failed. The dialog must be closed and
// reopened to retry.
func (s *reservationSession) loadFailed(message string) bool {
	if s.step != stepLoadingSeats {
		return false
	}
	s.loadErr = message
	s.step = stepFailed
	return true
}

// toggleSeat flips membership of the seat under the cursor in the
// selected set. Reserved seats are inert.
func (s *reservationSession) toggleSeat() bool {
	if s.step != stepSelectSeats {
		return false
	}
	if s.cursor < 0 || s.cursor >= len(s.seats) {
		return false
	}
	seat := s.seats[s.cursor]
	if !seat.Available() {
		return false
	}
	if s.selected[seat.Id] {
		delete(s.selected, seat.Id)
	} else {
		s.selected[seat.Id] = true
	}
	return true
}

// moveCursor shifts the cursor over the fixed-column grid, clamped to
// the seat list.
func (s *reservationSession) moveCursor(dx int, dy int) {
	if s.step != stepSelectSeats || len(s.seats) == 0 {
		return
	}
	next := s.cursor + dx + dy*seatGridColumns
	if next < 0 || next >= len(s.seats) {
		return
	}
	s.cursor = next
}

// advance moves select-seats → confirm, allowed only with at least one
// seat picked.
func (s *reservationSession) advance() bool {
	if s.step != stepSelectSeats || len(s.selected) == 0 {
		return false
	}
	s.step = stepConfirm
	return true
}

// back returns confirm → select-seats. The selection is preserved.
func (s *reservationSession) back() bool {
	if s.step != stepConfirm {
		return false
	}
	s.step = stepSelectSeats
	return true
}

// canSubmit reports whether the confirmation form is complete: name,
// email and a non-empty selection.
func (s *reservationSession) canSubmit() bool {
	return s.step == stepConfirm &&
		strings.TrimSpace(s.name) != "" &&
		strings.TrimSpace(s.email) != "" &&
		len(s.selected) > 0
}

// submitted moves confirm → done after the backend accepted the
// reservation.
func (s *reservationSession) submitted() bool {
	if s.step != stepConfirm {
		return false
	}
	s.submitErr = ""
	s.step = stepDone
	return true
}

// submitFailed keeps the session on confirm with an inline error; the
// user may fix the form or pick other seats and retry.
func (s *reservationSession) submitFailed(message string) bool {
	if s.step != stepConfirm {
		return false
	}
	s.submitErr = message
	return true
}

// selectedIds returns the chosen seat ids in backend seat order.
func (s *reservationSession) selectedIds() []int {
	ids := make([]int, 0, len(s.selected))
	for _, seat := range s.seats {
		if s.selected[seat.Id] {
			ids = append(ids, seat.Id)
		}
	}
	return ids
}

// selectedNumbers returns the chosen seat numbers for display, in seat
// order.
func (s *reservationSession) selectedNumbers() []string {
	numbers := make([]string, 0, len(s.selected))
	for _, seat := range s.seats {
		if s.selected[seat.Id] {
			numbers = append(numbers, strconv.Itoa(seat.Number))
		}
	}
	return numbers
}

// payload builds the POST /reservations body.
func (s *reservationSession) payload() model.ReservationPayload {
	return model.ReservationPayload{
		Name:       strings.TrimSpace(s.name),
		Email:      strings.TrimSpace(s.email),
		FunctionId: strconv.Itoa(s.showtime.Id),
		Seats:      s.selectedIds(),
	}
}
