package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-platform/internal/data/entity"
	"cinema-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NowPlayingRepository interface {
	Create(ctx context.Context, nowPlaying *entity.NowPlaying) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.NowPlaying, error)
	FindAll(ctx context.Context) ([]*entity.NowPlaying, error)
	FindByMovieTitleContains(ctx context.Context, title string) ([]*entity.NowPlaying, error)
	FindByTimeBetween(ctx context.Context, start, end time.Time) ([]*entity.NowPlaying, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type nowPlayingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNowPlayingRepository(db database.PgxIface, log *zap.Logger) NowPlayingRepository {
	return &nowPlayingRepository{
		db:  db,
		log: log.With(zap.String("repository", "nowplaying")),
	}
}

const nowPlayingSelect = `
	SELECT np.id, np.movie_id, np.time_when_movie_play, m.title
	FROM now_playings np
	INNER JOIN movies m ON m.id = np.movie_id
`

func (r *nowPlayingRepository) Create(ctx context.Context, nowPlaying *entity.NowPlaying) (int64, error) {
	query := `
		INSERT INTO now_playings (movie_id, time_when_movie_play)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, nowPlaying.MovieID, nowPlaying.TimeWhenMoviePlay).Scan(&id)
	if err != nil {
		r.log.Error("Failed to create now playing",
			zap.Error(err),
			zap.Int64("movie_id", nowPlaying.MovieID),
		)
		return 0, fmt.Errorf("create now playing for movie %d: %w", nowPlaying.MovieID, err)
	}

	return id, nil
}

func (r *nowPlayingRepository) FindByID(ctx context.Context, id int64) (*entity.NowPlaying, error) {
	query := nowPlayingSelect + ` WHERE np.id = $1`

	var nowPlaying entity.NowPlaying
	err := r.db.QueryRow(ctx, query, id).Scan(
		&nowPlaying.ID,
		&nowPlaying.MovieID,
		&nowPlaying.TimeWhenMoviePlay,
		&nowPlaying.MovieTitle,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find now playing by ID",
			zap.Error(err),
			zap.Int64("nowplaying_id", id),
		)
		return nil, fmt.Errorf("find now playing by id %d: %w", id, err)
	}

	return &nowPlaying, nil
}

func (r *nowPlayingRepository) FindAll(ctx context.Context) ([]*entity.NowPlaying, error) {
	query := nowPlayingSelect + ` ORDER BY np.time_when_movie_play`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all now playings", zap.Error(err))
		return nil, fmt.Errorf("find all now playings: %w", err)
	}
	defer rows.Close()

	return scanNowPlayings(rows)
}

func (r *nowPlayingRepository) FindByMovieTitleContains(ctx context.Context, title string) ([]*entity.NowPlaying, error) {
	query := nowPlayingSelect + ` WHERE m.title ILIKE $1 ORDER BY np.time_when_movie_play`

	rows, err := r.db.Query(ctx, query, "%"+title+"%")
	if err != nil {
		r.log.Error("Failed to find now playings by title",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("find now playings by title %s: %w", title, err)
	}
	defer rows.Close()

	return scanNowPlayings(rows)
}

func (r *nowPlayingRepository) FindByTimeBetween(ctx context.Context, start, end time.Time) ([]*entity.NowPlaying, error) {
	// Half-open window so a screening at the upper bound belongs to the
	// next window only.
	query := nowPlayingSelect + `
		WHERE np.time_when_movie_play >= $1 AND np.time_when_movie_play < $2
		ORDER BY np.time_when_movie_play DESC
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		r.log.Error("Failed to find now playings by time window",
			zap.Error(err),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return nil, fmt.Errorf("find now playings between %s and %s: %w", start, end, err)
	}
	defer rows.Close()

	return scanNowPlayings(rows)
}

func scanNowPlayings(rows pgx.Rows) ([]*entity.NowPlaying, error) {
	var nowPlayings []*entity.NowPlaying
	for rows.Next() {
		var nowPlaying entity.NowPlaying
		err := rows.Scan(
			&nowPlaying.ID,
			&nowPlaying.MovieID,
			&nowPlaying.TimeWhenMoviePlay,
			&nowPlaying.MovieTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("scan now playing row: %w", err)
		}
		nowPlayings = append(nowPlayings, &nowPlaying)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate now playing rows: %w", err)
	}

	return nowPlayings, nil
}

func (r *nowPlayingRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM now_playings WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check now playing existence",
			zap.Error(err),
			zap.Int64("nowplaying_id", id),
		)
		return false, fmt.Errorf("check now playing %d: %w", id, err)
	}

	return exists, nil
}

func (r *nowPlayingRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM now_playings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete now playing",
			zap.Error(err),
			zap.Int64("nowplaying_id", id),
		)
		return fmt.Errorf("delete now playing %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	r.log.Info("Now playing deleted", zap.Int64("nowplaying_id", id))
	return nil
}
