package repository

import (
	"context"
	"fmt"

	"cinema-platform/internal/data/entity"
	"cinema-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error)
	FindByTitleContains(ctx context.Context, title string, offset, limit int) ([]*entity.Movie, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByTitleAndPosterURL(ctx context.Context, title, posterURL string) (bool, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) (int64, error) {
	query := `
		INSERT INTO movies (title, poster_url, movie_duration, age_limit, nowplaying_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.PosterURL,
		movie.MovieDuration,
		movie.AgeLimit,
		movie.NowPlayingID,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return 0, fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return id, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, poster_url, movie_duration, age_limit, nowplaying_id
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.PosterURL,
		&movie.MovieDuration,
		&movie.AgeLimit,
		&movie.NowPlayingID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by id %d: %w", id, err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, poster_url, movie_duration, age_limit, nowplaying_id
		FROM movies
		ORDER BY title
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find all movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (r *movieRepository) FindByTitleContains(ctx context.Context, title string, offset, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, poster_url, movie_duration, age_limit, nowplaying_id
		FROM movies
		WHERE title ILIKE $1
		ORDER BY title
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, "%"+title+"%", limit, offset)
	if err != nil {
		r.log.Error("Failed to find movies by title",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("find movies by title %s: %w", title, err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func scanMovies(rows pgx.Rows) ([]*entity.Movie, error) {
	var movies []*entity.Movie
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
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM movies WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check movie existence",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return false, fmt.Errorf("check movie %d: %w", id, err)
	}

	return exists, nil
}

func (r *movieRepository) ExistsByTitleAndPosterURL(ctx context.Context, title, posterURL string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM movies WHERE LOWER(title) = LOWER($1) AND LOWER(poster_url) = LOWER($2))`

	var exists bool
	if err := r.db.QueryRow(ctx, query, title, posterURL).Scan(&exists); err != nil {
		r.log.Error("Failed to check movie uniqueness",
			zap.Error(err),
			zap.String("title", title),
		)
		return false, fmt.Errorf("check movie %s: %w", title, err)
	}

	return exists, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, poster_url = $3, movie_duration = $4, age_limit = $5, nowplaying_id = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.PosterURL,
		movie.MovieDuration,
		movie.AgeLimit,
		movie.NowPlayingID,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
