package dto

// CinemaDto is the wire shape of a cinema. Rooms is only filled when the
// caller asked for nested expansion.
type CinemaDto struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name,omitempty"`
	Location string    `json:"location,omitempty"`
	Rooms    []RoomDto `json:"rooms,omitempty"`
}

type RoomDto struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name,omitempty"`
	CinemaID string   `json:"cinemaId,omitempty"`
	Seats    []string `json:"seats,omitempty"`
}
