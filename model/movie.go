package model

type Movie struct {
	Id             int     `json:"id"`
	Title          string  `json:"title"`
	Classification string  `json:"classification"`
	Duration       FlexInt `json:"duration"`
	Category       string  `json:"category"`
}

// Classifications the backend accepts, in the order the add-movie form
// cycles through them.
var Classifications = []string{"G", "PG", "PG-13", "R", "18+"}

// MoviePayload is the POST /movies body. The backend expects duration
// as a string.
type MoviePayload struct {
	Title          string `json:"title"`
	Category       string `json:"category"`
	Duration       string `json:"duration"`
	Classification string `json:"classification"`
}
