package converter

import (
	"strconv"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/dto"
	"cinema-platform/pkg/validation"
)

func MovieToDto(e *entity.Movie, loadGenres bool) dto.MovieDto {
	duration := e.MovieDuration
	ageLimit := e.AgeLimit

	movie := dto.MovieDto{
		ID:            strconv.FormatInt(e.ID, 10),
		Title:         e.Title,
		PosterURL:     e.PosterURL,
		MovieDuration: &duration,
		AgeLimit:      &ageLimit,
	}

	if e.NowPlayingID != nil {
		movie.NowPlayingID = strconv.FormatInt(*e.NowPlayingID, 10)
	}

	if loadGenres {
		movie.Genre = make([]dto.GenreDto, len(e.Genres))
		for i := range e.Genres {
			movie.Genre[i] = GenreToDto(&e.Genres[i], false)
		}
	}

	return movie
}

// MovieToEntity assumes the dto was validated upstream; required numeric
// fields must be present by the time conversion runs.
func MovieToEntity(d dto.MovieDto) *entity.Movie {
	return &entity.Movie{
		Title:         d.Title,
		PosterURL:     d.PosterURL,
		MovieDuration: *d.MovieDuration,
		AgeLimit:      *d.AgeLimit,
	}
}

func MovieListToDtoList(entities []*entity.Movie, loadGenres bool) []dto.MovieDto {
	dtos := make([]dto.MovieDto, len(entities))
	for i, e := range entities {
		dtos[i] = MovieToDto(e, loadGenres)
	}
	return dtos
}

func GenreToDto(e *entity.Genre, loadMovies bool) dto.GenreDto {
	genre := dto.GenreDto{
		ID:   strconv.FormatInt(e.ID, 10),
		Name: e.Name,
	}

	if loadMovies {
		genre.Movies = make([]dto.MovieDto, len(e.Movies))
		for i := range e.Movies {
			genre.Movies[i] = MovieToDto(&e.Movies[i], false)
		}
	}

	return genre
}

func GenreToEntity(d dto.GenreDto) *entity.Genre {
	return &entity.Genre{
		Name: d.Name,
	}
}

func GenreListToDtoList(entities []*entity.Genre, loadMovies bool) []dto.GenreDto {
	dtos := make([]dto.GenreDto, len(entities))
	for i, e := range entities {
		dtos[i] = GenreToDto(e, loadMovies)
	}
	return dtos
}

func NowPlayingToDto(e *entity.NowPlaying) dto.NowPlayingDto {
	return dto.NowPlayingDto{
		ID:                strconv.FormatInt(e.ID, 10),
		MovieID:           strconv.FormatInt(e.MovieID, 10),
		MovieTitle:        e.MovieTitle,
		TimeWhenMoviePlay: e.TimeWhenMoviePlay.Format(validation.TimestampLayout),
	}
}

func NowPlayingListToDtoList(entities []*entity.NowPlaying) []dto.NowPlayingDto {
	dtos := make([]dto.NowPlayingDto, len(entities))
	for i, e := range entities {
		dtos[i] = NowPlayingToDto(e)
	}
	return dtos
}
