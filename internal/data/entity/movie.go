package entity

import "time"

type Movie struct {
	ID            int64   `db:"id"`
	Title         string  `db:"title"`
	PosterURL     string  `db:"poster_url"`
	MovieDuration int     `db:"movie_duration"`
	AgeLimit      int     `db:"age_limit"`
	NowPlayingID  *int64  `db:"nowplaying_id"`
	Genres        []Genre `db:"-"`
}

type Genre struct {
	ID     int64   `db:"id"`
	Name   string  `db:"name"`
	Movies []Movie `db:"-"`
}

// NowPlaying is a scheduled screening of a movie at a specific time.
type NowPlaying struct {
	ID                int64     `db:"id"`
	MovieID           int64     `db:"movie_id"`
	TimeWhenMoviePlay time.Time `db:"time_when_movie_play"`
	MovieTitle        string    `db:"-"`
}
