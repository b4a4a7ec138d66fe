package model

type Room struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Capacity FlexInt `json:"capacity"`
}

// RoomPayload is the POST /rooms body. Capacity travels as a string.
type RoomPayload struct {
	Name     string `json:"name"`
	Capacity string `json:"capacity"`
}
