package model

// Function is a scheduled screening of one movie in one room. The
// backend embeds the joined records under capitalized keys, and seats
// only on the single-function endpoint.
type Function struct {
	Id      int    `json:"id"`
	Date    string `json:"date"` // "YYYY-MM-DDTHH:MM:SS"
	Time    string `json:"time"` // "HH:MM:SS"
	MovieId int    `json:"movieId"`
	RoomId  int    `json:"roomId"`
	Movie   Movie  `json:"Movie"`
	Room    Room   `json:"Room"`
	Seats   []Seat `json:"Seats"`
}

const (
	SeatAvailable = "available"
	SeatReserved  = "reserved"
)

type Seat struct {
	Id     int    `json:"id"`
	Number int    `json:"number"`
	Status string `json:"status"`
}

// Available reports whether the seat can still be selected.
func (s Seat) Available() bool {
	return s.Status == SeatAvailable
}

// FunctionPayload is the POST /functions body. Ids travel as strings
// and time carries seconds.
type FunctionPayload struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	MovieId string `json:"movieId"`
	RoomId  string `json:"roomId"`
}
