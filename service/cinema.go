package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cineplus-cli/model"
)

// GetMovies fetches the movie catalog.
func (c *Client) GetMovies(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.getJSON(ctx, c.baseURL+"/movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// CreateMovie posts a new movie and returns the created record.
func (c *Client) CreateMovie(ctx context.Context, payload model.MoviePayload) (model.Movie, error) {
	if strings.TrimSpace(payload.Title) == "" {
		return model.Movie{}, errors.New("movie title is required")
	}
	var created model.Movie
	if err := c.postJSON(ctx, c.baseURL+"/movies", payload, &created); err != nil {
		return model.Movie{}, err
	}
	return created, nil
}

// GetRooms fetches all rooms.
func (c *Client) GetRooms(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := c.getJSON(ctx, c.baseURL+"/rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom posts a new room and returns the created record.
func (c *Client) CreateRoom(ctx context.Context, payload model.RoomPayload) (model.Room, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return model.Room{}, errors.New("room name is required")
	}
	var created model.Room
	if err := c.postJSON(ctx, c.baseURL+"/rooms", payload, &created); err != nil {
		return model.Room{}, err
	}
	return created, nil
}

// GetFunctions fetches every scheduled function with its embedded movie
// and room.
func (c *Client) GetFunctions(ctx context.Context) ([]model.Function, error) {
	var functions []model.Function
	if err := c.getJSON(ctx, c.baseURL+"/functions", &functions); err != nil {
		return nil, err
	}
	return functions, nil
}

// GetFunction fetches one function with its embedded seats. Seats are
// never cached; the reservation dialog calls this on every open.
func (c *Client) GetFunction(ctx context.Context, id int) (model.Function, error) {
	if id <= 0 {
		return model.Function{}, errors.New("function id is required")
	}
	var fn model.Function
	if err := c.getJSON(ctx, fmt.Sprintf("%s/functions/%d", c.baseURL, id), &fn); err != nil {
		return model.Function{}, err
	}
	return fn, nil
}

// CreateFunction posts a new function and returns the created record.
func (c *Client) CreateFunction(ctx context.Context, payload model.FunctionPayload) (model.Function, error) {
	if payload.Date == "" || payload.Time == "" || payload.MovieId == "" || payload.RoomId == "" {
		return model.Function{}, errors.New("date, time, movie id and room id are required")
	}
	var created model.Function
	if err := c.postJSON(ctx, c.baseURL+"/functions", payload, &created); err != nil {
		return model.Function{}, err
	}
	return created, nil
}

// GetReservations fetches all reservations with their joined function,
// movie, room and seats.
func (c *Client) GetReservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := c.getJSON(ctx, c.baseURL+"/reservations", &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// CreateReservation submits a reservation. The backend is the sole
// arbiter of seat conflicts; a rejected seat comes back as an APIError
// carrying the backend's error message.
func (c *Client) CreateReservation(ctx context.Context, payload model.ReservationPayload) (model.Reservation, error) {
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Email) == "" {
		return model.Reservation{}, errors.New("name and email are required")
	}
	if len(payload.Seats) == 0 {
		return model.Reservation{}, errors.New("at least one seat is required")
	}
	var created model.Reservation
	if err := c.postJSON(ctx, c.baseURL+"/reservations", payload, &created); err != nil {
		return model.Reservation{}, err
	}
	return created, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, endpoint, out)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, endpoint, out)
}

func (c *Client) do(req *http.Request, endpoint string, out any) error {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Message:    backendError(snippet),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

// backendError extracts the backend's {"error": "..."} body when the
// response carried one.
func backendError(snippet []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(snippet, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return ""
}
