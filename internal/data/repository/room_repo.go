package repository

import (
	"context"
	"fmt"

	"cinema-platform/internal/data/entity"
	"cinema-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Room, error)
	FindByIDAndCinemaID(ctx context.Context, id, cinemaID int64) (*entity.Room, error)
	FindAllByCinemaID(ctx context.Context, cinemaID int64) ([]entity.Room, error)
	ExistsByCinemaIDAndName(ctx context.Context, cinemaID int64, name string) (bool, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id int64) error
	DeleteByCinemaID(ctx context.Context, cinemaID int64) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) (int64, error) {
	query := `
		INSERT INTO rooms (name, cinema_id, seats)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, room.Name, room.CinemaID, room.Seats).Scan(&id)
	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("name", room.Name),
			zap.Int64("cinema_id", room.CinemaID),
		)
		return 0, fmt.Errorf("create room %s: %w", room.Name, err)
	}

	return id, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	query := `SELECT id, name, cinema_id, seats FROM rooms WHERE id = $1`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.CinemaID,
		&room.Seats,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return nil, fmt.Errorf("find room by id %d: %w", id, err)
	}

	return &room, nil
}

func (r *roomRepository) FindByIDAndCinemaID(ctx context.Context, id, cinemaID int64) (*entity.Room, error) {
	query := `SELECT id, name, cinema_id, seats FROM rooms WHERE id = $1 AND cinema_id = $2`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id, cinemaID).Scan(
		&room.ID,
		&room.Name,
		&room.CinemaID,
		&room.Seats,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room in cinema",
			zap.Error(err),
			zap.Int64("room_id", id),
			zap.Int64("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("find room %d in cinema %d: %w", id, cinemaID, err)
	}

	return &room, nil
}

func (r *roomRepository) FindAllByCinemaID(ctx context.Context, cinemaID int64) ([]entity.Room, error) {
	query := `SELECT id, name, cinema_id, seats FROM rooms WHERE cinema_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, cinemaID)
	if err != nil {
		r.log.Error("Failed to find rooms by cinema ID",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("find rooms for cinema %d: %w", cinemaID, err)
	}
	defer rows.Close()

	var rooms []entity.Room
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.CinemaID, &room.Seats); err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) ExistsByCinemaIDAndName(ctx context.Context, cinemaID int64, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM rooms WHERE cinema_id = $1 AND LOWER(name) = LOWER($2))`

	var exists bool
	if err := r.db.QueryRow(ctx, query, cinemaID, name).Scan(&exists); err != nil {
		r.log.Error("Failed to check room existence",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
			zap.String("name", name),
		)
		return false, fmt.Errorf("check room %s in cinema %d: %w", name, cinemaID, err)
	}

	return exists, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `UPDATE rooms SET name = $2, seats = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, room.ID, room.Name, room.Seats)
	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.Int64("room_id", room.ID),
		)
		return fmt.Errorf("update room %d: %w", room.ID, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return fmt.Errorf("delete room %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	r.log.Info("Room deleted", zap.Int64("room_id", id))
	return nil
}

func (r *roomRepository) DeleteByCinemaID(ctx context.Context, cinemaID int64) error {
	query := `DELETE FROM rooms WHERE cinema_id = $1`

	if _, err := r.db.Exec(ctx, query, cinemaID); err != nil {
		r.log.Error("Failed to delete rooms for cinema",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
		)
		return fmt.Errorf("delete rooms for cinema %d: %w", cinemaID, err)
	}

	return nil
}
