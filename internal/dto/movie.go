package dto

// Numeric fields are pointers so that a missing field is distinguishable
// from a zero value during create validation.
type MovieDto struct {
	ID            string     `json:"id,omitempty"`
	Title         string     `json:"title,omitempty"`
	PosterURL     string     `json:"posterUrl,omitempty"`
	MovieDuration *int       `json:"movieDuration,omitempty"`
	AgeLimit      *int       `json:"ageLimit,omitempty"`
	Genre         []GenreDto `json:"genre,omitempty"`
	NowPlayingID  string     `json:"nowPlayingId,omitempty"`
}

type GenreDto struct {
	ID     string     `json:"id,omitempty"`
	Name   string     `json:"name,omitempty"`
	Movies []MovieDto `json:"movies,omitempty"`
}

type NowPlayingDto struct {
	ID                string `json:"id,omitempty"`
	MovieID           string `json:"movieId,omitempty"`
	MovieTitle        string `json:"movieTitle,omitempty"`
	TimeWhenMoviePlay string `json:"time,omitempty"`
}
