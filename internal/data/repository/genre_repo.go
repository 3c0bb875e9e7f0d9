package repository

import (
	"context"
	"fmt"

	"cinema-platform/internal/data/entity"
	"cinema-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *entity.Genre) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Genre, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Genre, error)
	FindByNameContains(ctx context.Context, name string, offset, limit int) ([]*entity.Genre, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, genre *entity.Genre) error
	Delete(ctx context.Context, id int64) error
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) (int64, error) {
	query := `INSERT INTO genres (name) VALUES ($1) RETURNING id`

	var id int64
	if err := r.db.QueryRow(ctx, query, genre.Name).Scan(&id); err != nil {
		r.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return 0, fmt.Errorf("create genre %s: %w", genre.Name, err)
	}

	return id, nil
}

func (r *genreRepository) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	query := `SELECT id, name FROM genres WHERE id = $1`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(&genre.ID, &genre.Name)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return nil, fmt.Errorf("find genre by id %d: %w", id, err)
	}

	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Genre, error) {
	query := `SELECT id, name FROM genres ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all genres", zap.Error(err))
		return nil, fmt.Errorf("find all genres: %w", err)
	}
	defer rows.Close()

	return scanGenres(rows)
}

func (r *genreRepository) FindByNameContains(ctx context.Context, name string, offset, limit int) ([]*entity.Genre, error) {
	query := `SELECT id, name FROM genres WHERE name ILIKE $1 ORDER BY name LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, "%"+name+"%", limit, offset)
	if err != nil {
		r.log.Error("Failed to find genres by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find genres by name %s: %w", name, err)
	}
	defer rows.Close()

	return scanGenres(rows)
}

func scanGenres(rows pgx.Rows) ([]*entity.Genre, error) {
	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}

func (r *genreRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM genres WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check genre existence",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return false, fmt.Errorf("check genre %d: %w", id, err)
	}

	return exists, nil
}

func (r *genreRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM genres WHERE LOWER(name) = LOWER($1))`

	var exists bool
	if err := r.db.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		r.log.Error("Failed to check genre name",
			zap.Error(err),
			zap.String("name", name),
		)
		return false, fmt.Errorf("check genre %s: %w", name, err)
	}

	return exists, nil
}

func (r *genreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	query := `UPDATE genres SET name = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, genre.ID, genre.Name)
	if err != nil {
		r.log.Error("Failed to update genre",
			zap.Error(err),
			zap.Int64("genre_id", genre.ID),
		)
		return fmt.Errorf("update genre %d: %w", genre.ID, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM genres WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete genre",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return fmt.Errorf("delete genre %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	r.log.Info("Genre deleted", zap.Int64("genre_id", id))
	return nil
}
