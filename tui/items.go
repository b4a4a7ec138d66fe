package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"cineplus-cli/model"
)

type movieItem struct {
	movie model.Movie
}

func (m movieItem) Title() string {
	return m.movie.Title
}

func (m movieItem) Description() string {
	return fmt.Sprintf("%s • %d min • %s",
		m.movie.Classification,
		m.movie.Duration.Int(),
		model.DisplayCategory(m.movie.Category))
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{m.movie.Title, m.movie.Category, m.movie.Classification}, " "))
}

func buildMovieItems(movies []model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

type theaterItem struct {
	theater model.TheaterView
}

func (t theaterItem) Title() string {
	return t.theater.Name
}

func (t theaterItem) Description() string {
	count := len(t.theater.Schedule)
	label := fmt.Sprintf("%d horarios", count)
	if count == 1 {
		label = "1 horario"
	}
	if count == 0 {
		label = "sin horarios programados"
	}
	return fmt.Sprintf("Capacidad: %d • %s", t.theater.Capacity, label)
}

func (t theaterItem) FilterValue() string {
	return strings.ToLower(t.theater.Name)
}

func buildTheaterItems(theaters []model.TheaterView) []list.Item {
	items := make([]list.Item, 0, len(theaters))
	for _, theater := range theaters {
		items = append(items, theaterItem{theater: theater})
	}
	return items
}

type reservationItem struct {
	reservation model.ReservationView
}

func (r reservationItem) Title() string {
	return fmt.Sprintf("%s • Reserva #%d", r.reservation.MovieTitle, r.reservation.Id)
}

func (r reservationItem) Description() string {
	parts := []string{
		r.reservation.Theater,
		fmt.Sprintf("%s %s", r.reservation.Date, r.reservation.Time),
	}
	if len(r.reservation.Seats) > 0 {
		parts = append(parts, "asientos "+strings.Join(r.reservation.Seats, " "))
	}
	parts = append(parts, fmt.Sprintf("%s (%s)", r.reservation.Name, r.reservation.Email))
	return strings.Join(parts, " • ")
}

func (r reservationItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{
		r.reservation.MovieTitle,
		r.reservation.Theater,
		r.reservation.Name,
		r.reservation.Email,
	}, " "))
}

func buildReservationItems(reservations []model.ReservationView) []list.Item {
	items := make([]list.Item, 0, len(reservations))
	for _, reservation := range reservations {
		items = append(items, reservationItem{reservation: reservation})
	}
	return items
}
