package entity

// Cinema owns a set of rooms. Rooms is only populated when the caller asked
// for nested expansion.
type Cinema struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Rooms    []Room `db:"-"`
}

// Room belongs to exactly one cinema; its name is unique within that cinema.
// Seats holds the ordered seat labels ("A1" .. "K12").
type Room struct {
	ID       int64    `db:"id"`
	Name     string   `db:"name"`
	CinemaID int64    `db:"cinema_id"`
	Seats    []string `db:"seats"`
}
