package model

import (
	"sort"
	"strconv"
	"strings"
)

// This file is the one place backend shapes are reshaped for display.
// The backend stores dates as "YYYY-MM-DDTHH:MM:SS" and times as
// "HH:MM:SS"; every view truncates them the same way.

// DisplayDate returns the calendar part of a backend date.
func DisplayDate(date string) string {
	if i := strings.Index(date, "T"); i >= 0 {
		return date[:i]
	}
	return date
}

// DisplayTime returns the "HH:MM" part of a backend time.
func DisplayTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// DisplayCategory substitutes the placeholder for movies saved without
// a category.
func DisplayCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return "Sin categoría"
	}
	return category
}

// ShowtimeView is one screening slot as the lists present it.
type ShowtimeView struct {
	Id         int
	MovieId    int
	MovieTitle string
	Theater    string
	Date       string // "YYYY-MM-DD"
	Time       string // "HH:MM"
}

func newShowtimeView(fn Function, titles map[int]string, rooms map[int]string) ShowtimeView {
	title := fn.Movie.Title
	if title == "" {
		title = titles[fn.MovieId]
	}
	theater := fn.Room.Name
	if theater == "" {
		theater = rooms[fn.RoomId]
	}
	return ShowtimeView{
		Id:         fn.Id,
		MovieId:    fn.MovieId,
		MovieTitle: title,
		Theater:    theater,
		Date:       DisplayDate(fn.Date),
		Time:       DisplayTime(fn.Time),
	}
}

// ShowtimesForMovie filters the full function list down to one movie.
// Backend ordering is preserved.
func ShowtimesForMovie(functions []Function, movieId int) []ShowtimeView {
	var views []ShowtimeView
	for _, fn := range functions {
		if fn.MovieId != movieId {
			continue
		}
		views = append(views, newShowtimeView(fn, nil, nil))
	}
	return views
}

// DateGroup collects the showtimes of one calendar date, in first-seen
// date order.
type DateGroup struct {
	Date      string
	Showtimes []ShowtimeView
}

func GroupShowtimesByDate(showtimes []ShowtimeView) []DateGroup {
	index := map[string]int{}
	var groups []DateGroup
	for _, st := range showtimes {
		i, ok := index[st.Date]
		if !ok {
			i = len(groups)
			index[st.Date] = i
			groups = append(groups, DateGroup{Date: st.Date})
		}
		groups[i].Showtimes = append(groups[i].Showtimes, st)
	}
	return groups
}

// TheaterView is a room joined with its scheduled showtimes.
type TheaterView struct {
	Id       int
	Name     string
	Capacity int
	Schedule []ShowtimeView
}

// BuildTheaterViews joins rooms with their functions. Movie titles come
// from the embedded record when present, otherwise from the fetched
// movie list.
func BuildTheaterViews(rooms []Room, functions []Function, movies []Movie) []TheaterView {
	titles := make(map[int]string, len(movies))
	for _, m := range movies {
		titles[m.Id] = m.Title
	}

	views := make([]TheaterView, 0, len(rooms))
	for _, room := range rooms {
		view := TheaterView{
			Id:       room.Id,
			Name:     room.Name,
			Capacity: room.Capacity.Int(),
		}
		for _, fn := range functions {
			if fn.RoomId != room.Id {
				continue
			}
			view.Schedule = append(view.Schedule, newShowtimeView(fn, titles, nil))
		}
		views = append(views, view)
	}
	return views
}

// ReservationView is one booking joined with its showtime for display.
type ReservationView struct {
	Id         int
	Name       string
	Email      string
	MovieTitle string
	Theater    string
	Date       string
	Time       string
	Seats      []string
}

// BuildReservationViews reshapes and sorts the reservation list by
// date.
func BuildReservationViews(reservations []Reservation) []ReservationView {
	views := make([]ReservationView, 0, len(reservations))
	for _, r := range reservations {
		view := ReservationView{
			Id:         r.Id,
			Name:       r.Name,
			Email:      r.Email,
			MovieTitle: r.Function.Movie.Title,
			Theater:    r.Function.Room.Name,
			Date:       DisplayDate(r.Function.Date),
			Time:       DisplayTime(r.Function.Time),
		}
		for _, seat := range r.Seats {
			view.Seats = append(view.Seats, strconv.Itoa(seat.Number))
		}
		views = append(views, view)
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Date < views[j].Date
	})
	return views
}
