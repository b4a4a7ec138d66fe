package tui

import (
	"reflect"
	"testing"

	"cineplus-cli/model"
)

func seatFixture() []model.Seat {
	return []model.Seat{
		{Id: 31, Number: 1, Status: model.SeatAvailable},
		{Id: 32, Number: 2, Status: model.SeatReserved},
		{Id: 33, Number: 3, Status: model.SeatAvailable},
	}
}

func newLoadedSession(t *testing.T) *reservationSession {
	t.Helper()
	s := newReservationSession(model.ShowtimeView{Id: 42, Theater: "Sala 1", Date: "2026-09-12", Time: "19:30"}, "Dune")
	if !s.seatsLoaded(seatFixture()) {
		t.Fatal("expected seats to load")
	}
	return s
}

func TestSession_ToggleSkipsReservedSeats(t *testing.T) {
	s := newLoadedSession(t)

	if !s.toggleSeat() {
		t.Fatal("expected available seat to toggle")
	}
	s.moveCursor(1, 0)
	if s.toggleSeat() {
		t.Fatal("expected reserved seat to stay inert")
	}
	if !reflect.DeepEqual(s.selectedIds(), []int{31}) {
		t.Fatalf("expected only seat 31 selected, got %v", s.selectedIds())
	}
}

func TestSession_ToggleTwiceDeselects(t *testing.T) {
	s := newLoadedSession(t)

	_ = s.toggleSeat()
	_ = s.toggleSeat()
	if len(s.selectedIds()) != 0 {
		t.Fatalf("expected empty selection, got %v", s.selectedIds())
	}
}

func TestSession_AdvanceNeedsSelection(t *testing.T) {
	s := newLoadedSession(t)

	if s.advance() {
		t.Fatal("expected advance to fail with no seats selected")
	}
	_ = s.toggleSeat()
	if !s.advance() {
		t.Fatal("expected advance with a selection")
	}
	if s.step != stepConfirm {
		t.Fatalf("expected confirm step, got %d", s.step)
	}
}

func TestSession_BackPreservesSelection(t *testing.T) {
	s := newLoadedSession(t)
	_ = s.toggleSeat()
	_ = s.advance()

	if !s.back() {
		t.Fatal("expected back from confirm")
	}
	if s.step != stepSelectSeats {
		t.Fatalf("expected select step, got %d", s.step)
	}
	if !reflect.DeepEqual(s.selectedIds(), []int{31}) {
		t.Fatalf("expected selection kept, got %v", s.selectedIds())
	}
}

func TestSession_IllegalTransitionsRejected(t *testing.T) {
	s := newLoadedSession(t)

	if s.seatsLoaded(nil) {
		t.Fatal("expected seatsLoaded rejected outside loading step")
	}
	if s.loadFailed("late") {
		t.Fatal("expected loadFailed rejected outside loading step")
	}
	if s.back() {
		t.Fatal("expected back rejected outside confirm step")
	}
	if s.submitted() {
		t.Fatal("expected submitted rejected outside confirm step")
	}
}

func TestSession_LoadFailure(t *testing.T) {
	s := newReservationSession(model.ShowtimeView{Id: 42}, "Dune")

	if !s.loadFailed("connection refused") {
		t.Fatal("expected loadFailed from loading step")
	}
	if s.step != stepFailed || s.loadErr != "connection refused" {
		t.Fatalf("unexpected session state: %+v", s)
	}
	if s.toggleSeat() || s.advance() {
		t.Fatal("expected failed session to reject interaction")
	}
}

func TestSession_CanSubmit(t *testing.T) {
	s := newLoadedSession(t)
	_ = s.toggleSeat()
	_ = s.advance()

	if s.canSubmit() {
		t.Fatal("expected canSubmit false without contact details")
	}
	s.name = "Ana"
	s.email = " "
	if s.canSubmit() {
		t.Fatal("expected canSubmit false with blank email")
	}
	s.email = "ana@example.com"
	if !s.canSubmit() {
		t.Fatal("expected canSubmit true with full form")
	}
}

func TestSession_SubmitFailureKeepsConfirm(t *testing.T) {
	s := newLoadedSession(t)
	_ = s.toggleSeat()
	_ = s.advance()

	if !s.submitFailed("asiento ya reservado") {
		t.Fatal("expected submitFailed on confirm step")
	}
	if s.step != stepConfirm || s.submitErr != "asiento ya reservado" {
		t.Fatalf("unexpected session state: %+v", s)
	}
	if !s.submitted() {
		t.Fatal("expected retry submit to succeed")
	}
	if s.step != stepDone || s.submitErr != "" {
		t.Fatalf("expected done step with cleared error, got %+v", s)
	}
}

func TestSession_Payload(t *testing.T) {
	s := newLoadedSession(t)
	_ = s.toggleSeat()
	s.moveCursor(2, 0)
	_ = s.toggleSeat()
	_ = s.advance()
	s.name = " Ana "
	s.email = "ana@example.com"

	payload := s.payload()
	want := model.ReservationPayload{
		Name:       "Ana",
		Email:      "ana@example.com",
		FunctionId: "42",
		Seats:      []int{31, 33},
	}
	if !reflect.DeepEqual(payload, want) {
		t.Fatalf("expected %+v, got %+v", want, payload)
	}
}

func TestSession_MoveCursorClamped(t *testing.T) {
	s := newLoadedSession(t)

	s.moveCursor(-1, 0)
	if s.cursor != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", s.cursor)
	}
	s.moveCursor(0, 1)
	if s.cursor != 0 {
		t.Fatalf("expected vertical move past the grid rejected, got %d", s.cursor)
	}
	s.moveCursor(2, 0)
	if s.cursor != 2 {
		t.Fatalf("expected cursor at 2, got %d", s.cursor)
	}
	s.moveCursor(1, 0)
	if s.cursor != 2 {
		t.Fatalf("expected cursor clamped at last seat, got %d", s.cursor)
	}
}

func TestSession_SelectedNumbersFollowSeatOrder(t *testing.T) {
	s := newLoadedSession(t)

	// Select the last seat first; display order still follows the grid.
	s.moveCursor(2, 0)
	_ = s.toggleSeat()
	s.moveCursor(-2, 0)
	_ = s.toggleSeat()

	if !reflect.DeepEqual(s.selectedNumbers(), []string{"1", "3"}) {
		t.Fatalf("expected numbers in seat order, got %v", s.selectedNumbers())
	}
}
