package repository

import (
	"context"
	"fmt"

	"cinema-platform/internal/data/entity"
	"cinema-platform/pkg/database"

	"go.uber.org/zap"
)

// MovieGenreRepository manages the many-to-many join between movies and
// genres. Severing these rows before deleting either side is the caller's
// responsibility.
type MovieGenreRepository interface {
	Attach(ctx context.Context, movieID, genreID int64) error
	DetachByMovieID(ctx context.Context, movieID int64) error
	DetachByGenreID(ctx context.Context, genreID int64) error
	FindGenresByMovieID(ctx context.Context, movieID int64) ([]entity.Genre, error)
	FindMoviesByGenreID(ctx context.Context, genreID int64) ([]entity.Movie, error)
}

type movieGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieGenreRepository(db database.PgxIface, log *zap.Logger) MovieGenreRepository {
	return &movieGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_genre")),
	}
}

func (r *movieGenreRepository) Attach(ctx context.Context, movieID, genreID int64) error {
	query := `
		INSERT INTO movie_genres (movie_id, genre_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, movieID, genreID); err != nil {
		r.log.Error("Failed to attach genre to movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.Int64("genre_id", genreID),
		)
		return fmt.Errorf("attach genre %d to movie %d: %w", genreID, movieID, err)
	}

	return nil
}

func (r *movieGenreRepository) DetachByMovieID(ctx context.Context, movieID int64) error {
	query := `DELETE FROM movie_genres WHERE movie_id = $1`

	if _, err := r.db.Exec(ctx, query, movieID); err != nil {
		r.log.Error("Failed to detach genres from movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("detach genres from movie %d: %w", movieID, err)
	}

	return nil
}

func (r *movieGenreRepository) DetachByGenreID(ctx context.Context, genreID int64) error {
	query := `DELETE FROM movie_genres WHERE genre_id = $1`

	if _, err := r.db.Exec(ctx, query, genreID); err != nil {
		r.log.Error("Failed to detach movies from genre",
			zap.Error(err),
			zap.Int64("genre_id", genreID),
		)
		return fmt.Errorf("detach movies from genre %d: %w", genreID, err)
	}

	return nil
}

func (r *movieGenreRepository) FindGenresByMovieID(ctx context.Context, movieID int64) ([]entity.Genre, error) {
	query := `
		SELECT g.id, g.name
		FROM genres g
		INNER JOIN movie_genres mg ON g.id = mg.genre_id
		WHERE mg.movie_id = $1
		ORDER BY g.name
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find genres by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find genres for movie %d: %w", movieID, err)
	}
	defer rows.Close()

	var genres []entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}

func (r *movieGenreRepository) FindMoviesByGenreID(ctx context.Context, genreID int64) ([]entity.Movie, error) {
	query := `
		SELECT m.id, m.title, m.poster_url, m.movie_duration, m.age_limit, m.nowplaying_id
		FROM movies m
		INNER JOIN movie_genres mg ON m.id = mg.movie_id
		WHERE mg.genre_id = $1
		ORDER BY m.title
	`

	rows, err := r.db.Query(ctx, query, genreID)
	if err != nil {
		r.log.Error("Failed to find movies by genre ID",
			zap.Error(err),
			zap.Int64("genre_id", genreID),
		)
		return nil, fmt.Errorf("find movies for genre %d: %w", genreID, err)
	}
	defer rows.Close()

	var movies []entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.PosterURL,
			&movie.MovieDuration,
			&movie.AgeLimit,
			&movie.NowPlayingID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}
