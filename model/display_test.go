package model

import (
	"reflect"
	"testing"
)

func TestDisplayDate(t *testing.T) {
	if got := DisplayDate("2026-09-12T00:00:00.000Z"); got != "2026-09-12" {
		t.Fatalf("expected %q, got %q", "2026-09-12", got)
	}
	if got := DisplayDate("2026-09-12"); got != "2026-09-12" {
		t.Fatalf("expected plain date unchanged, got %q", got)
	}
}

func TestDisplayTime(t *testing.T) {
	if got := DisplayTime("19:30:00"); got != "19:30" {
		t.Fatalf("expected %q, got %q", "19:30", got)
	}
	if got := DisplayTime("19:30"); got != "19:30" {
		t.Fatalf("expected short time unchanged, got %q", got)
	}
}

func TestDisplayCategory_Placeholder(t *testing.T) {
	if got := DisplayCategory("  "); got != "Sin categoría" {
		t.Fatalf("expected placeholder, got %q", got)
	}
	if got := DisplayCategory("Drama"); got != "Drama" {
		t.Fatalf("expected category unchanged, got %q", got)
	}
}

func scheduleFixture() []Function {
	return []Function{
		{Id: 1, Date: "2026-09-12T00:00:00.000Z", Time: "19:30:00", MovieId: 1, RoomId: 1,
			Movie: Movie{Id: 1, Title: "Dune"}, Room: Room{Id: 1, Name: "Sala 1"}},
		{Id: 2, Date: "2026-09-13T00:00:00.000Z", Time: "16:00:00", MovieId: 2, RoomId: 1,
			Movie: Movie{Id: 2, Title: "Coco"}, Room: Room{Id: 1, Name: "Sala 1"}},
		{Id: 3, Date: "2026-09-12T00:00:00.000Z", Time: "22:00:00", MovieId: 1, RoomId: 2,
			Movie: Movie{Id: 1, Title: "Dune"}, Room: Room{Id: 2, Name: "Sala IMAX"}},
	}
}

func TestShowtimesForMovie_FiltersAndTruncates(t *testing.T) {
	showtimes := ShowtimesForMovie(scheduleFixture(), 1)
	if len(showtimes) != 2 {
		t.Fatalf("expected 2 showtimes, got %d", len(showtimes))
	}
	if showtimes[0].Id != 1 || showtimes[1].Id != 3 {
		t.Fatalf("expected backend order preserved, got %+v", showtimes)
	}
	if showtimes[0].Date != "2026-09-12" || showtimes[0].Time != "19:30" {
		t.Fatalf("expected truncated date and time, got %+v", showtimes[0])
	}
	if showtimes[1].Theater != "Sala IMAX" {
		t.Fatalf("expected embedded room name, got %q", showtimes[1].Theater)
	}
}

func TestGroupShowtimesByDate_FirstSeenOrder(t *testing.T) {
	showtimes := []ShowtimeView{
		{Id: 1, Date: "2026-09-13", Time: "16:00"},
		{Id: 2, Date: "2026-09-12", Time: "19:30"},
		{Id: 3, Date: "2026-09-13", Time: "22:00"},
	}
	groups := GroupShowtimesByDate(showtimes)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Date != "2026-09-13" || groups[1].Date != "2026-09-12" {
		t.Fatalf("expected first-seen date order, got %+v", groups)
	}
	if len(groups[0].Showtimes) != 2 || groups[0].Showtimes[1].Id != 3 {
		t.Fatalf("expected both 09-13 slots in one group, got %+v", groups[0])
	}
}

func TestBuildTheaterViews_JoinsScheduleAndTitles(t *testing.T) {
	rooms := []Room{
		{Id: 1, Name: "Sala 1", Capacity: 80},
		{Id: 3, Name: "Sala 3", Capacity: 50},
	}
	// No embedded movie record: the title must come from the catalog.
	functions := []Function{
		{Id: 9, Date: "2026-09-12T00:00:00.000Z", Time: "19:30:00", MovieId: 2, RoomId: 1},
	}
	movies := []Movie{{Id: 2, Title: "Coco"}}

	views := BuildTheaterViews(rooms, functions, movies)
	if len(views) != 2 {
		t.Fatalf("expected a view per room, got %d", len(views))
	}
	if len(views[0].Schedule) != 1 || views[0].Schedule[0].MovieTitle != "Coco" {
		t.Fatalf("expected title from catalog, got %+v", views[0].Schedule)
	}
	if views[1].Schedule != nil {
		t.Fatalf("expected empty schedule for room 3, got %+v", views[1].Schedule)
	}
	if views[0].Capacity != 80 {
		t.Fatalf("expected capacity 80, got %d", views[0].Capacity)
	}
}

func TestBuildReservationViews_SortsByDate(t *testing.T) {
	reservations := []Reservation{
		{Id: 1, Name: "Ana", Email: "ana@example.com", Function: Function{
			Date: "2026-09-14T00:00:00.000Z", Time: "20:00:00",
			Movie: Movie{Title: "Dune"}, Room: Room{Name: "Sala 1"},
		}, Seats: []Seat{{Id: 31, Number: 4}, {Id: 32, Number: 5}}},
		{Id: 2, Name: "Luis", Email: "luis@example.com", Function: Function{
			Date: "2026-09-12T00:00:00.000Z", Time: "19:30:00",
			Movie: Movie{Title: "Coco"}, Room: Room{Name: "Sala 2"},
		}},
	}

	views := BuildReservationViews(reservations)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].Id != 2 || views[1].Id != 1 {
		t.Fatalf("expected date order, got %+v", views)
	}
	if !reflect.DeepEqual(views[1].Seats, []string{"4", "5"}) {
		t.Fatalf("expected seat numbers as strings, got %v", views[1].Seats)
	}
	if views[0].Date != "2026-09-12" || views[0].Time != "19:30" {
		t.Fatalf("expected truncated date and time, got %+v", views[0])
	}
}
