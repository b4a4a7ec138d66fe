package model

type Reservation struct {
	Id         int      `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	FunctionId int      `json:"functionId"`
	Function   Function `json:"Function"`
	Seats      []Seat   `json:"Seats"`
}

// ReservationPayload is the POST /reservations body. The function id
// travels as a string, seats as the numeric seat ids.
type ReservationPayload struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	FunctionId string `json:"functionId"`
	Seats      []int  `json:"seats"`
}
