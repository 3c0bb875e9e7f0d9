package repository

import (
	"context"
	"fmt"
	"strings"

	"cinema-platform/internal/data/entity"
	"cinema-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CinemaRepository interface {
	Create(ctx context.Context, cinema *entity.Cinema) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Cinema, error)
	FindAll(ctx context.Context, nameFilter *string, offset, limit int) ([]*entity.Cinema, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, cinema *entity.Cinema) error
	Delete(ctx context.Context, id int64) error
}

type cinemaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCinemaRepository(db database.PgxIface, log *zap.Logger) CinemaRepository {
	return &cinemaRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema")),
	}
}

func (r *cinemaRepository) Create(ctx context.Context, cinema *entity.Cinema) (int64, error) {
	query := `
		INSERT INTO cinemas (name, location)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, cinema.Name, cinema.Location).Scan(&id)
	if err != nil {
		r.log.Error("Failed to create cinema",
			zap.Error(err),
			zap.String("name", cinema.Name),
		)
		return 0, fmt.Errorf("create cinema %s: %w", cinema.Name, err)
	}

	return id, nil
}

func (r *cinemaRepository) FindByID(ctx context.Context, id int64) (*entity.Cinema, error) {
	query := `SELECT id, name, location FROM cinemas WHERE id = $1`

	var cinema entity.Cinema
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cinema.ID,
		&cinema.Name,
		&cinema.Location,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cinema by ID",
			zap.Error(err),
			zap.Int64("cinema_id", id),
		)
		return nil, fmt.Errorf("find cinema by id %d: %w", id, err)
	}

	return &cinema, nil
}

func (r *cinemaRepository) FindAll(ctx context.Context, nameFilter *string, offset, limit int) ([]*entity.Cinema, error) {
	// Build query with optional filter
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, name, location FROM cinemas`)

	args := []interface{}{}

	if nameFilter != nil && *nameFilter != "" {
		queryBuilder.WriteString(" WHERE name ILIKE $1")
		args = append(args, "%"+*nameFilter+"%")
	}

	queryBuilder.WriteString(" ORDER BY name")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all cinemas",
			zap.Error(err),
			zap.Stringp("name_filter", nameFilter),
		)
		return nil, fmt.Errorf("find all cinemas: %w", err)
	}
	defer rows.Close()

	var cinemas []*entity.Cinema
	for rows.Next() {
		var cinema entity.Cinema
		if err := rows.Scan(&cinema.ID, &cinema.Name, &cinema.Location); err != nil {
			r.log.Error("Failed to scan cinema row", zap.Error(err))
			return nil, fmt.Errorf("scan cinema row: %w", err)
		}
		cinemas = append(cinemas, &cinema)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cinema rows: %w", err)
	}

	return cinemas, nil
}

func (r *cinemaRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM cinemas WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check cinema existence",
			zap.Error(err),
			zap.Int64("cinema_id", id),
		)
		return false, fmt.Errorf("check cinema %d: %w", id, err)
	}

	return exists, nil
}

func (r *cinemaRepository) Update(ctx context.Context, cinema *entity.Cinema) error {
	query := `UPDATE cinemas SET name = $2, location = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, cinema.ID, cinema.Name, cinema.Location)
	if err != nil {
		r.log.Error("Failed to update cinema",
			zap.Error(err),
			zap.Int64("cinema_id", cinema.ID),
		)
		return fmt.Errorf("update cinema %d: %w", cinema.ID, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *cinemaRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM cinemas WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete cinema",
			zap.Error(err),
			zap.Int64("cinema_id", id),
		)
		return fmt.Errorf("delete cinema %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	r.log.Info("Cinema deleted", zap.Int64("cinema_id", id))
	return nil
}
