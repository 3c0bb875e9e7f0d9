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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context, usernameFilter *string) ([]*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, username string) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, name, email, date_of_birth, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		user.Username,
		user.Name,
		user.Email,
		user.DateOfBirth,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT username, name, email, date_of_birth, password, role, created_at, updated_at
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.Username,
		&user.Name,
		&user.Email,
		&user.DateOfBirth,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user %s: %w", username, err)
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context, usernameFilter *string) ([]*entity.User, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT username, name, email, date_of_birth, password, role, created_at, updated_at
		FROM users
	`)

	args := []interface{}{}

	if usernameFilter != nil && *usernameFilter != "" {
		queryBuilder.WriteString(" WHERE username ILIKE $1")
		args = append(args, "%"+*usernameFilter+"%")
	}

	queryBuilder.WriteString(" ORDER BY username")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all users",
			zap.Error(err),
			zap.Stringp("username_filter", usernameFilter),
		)
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.Username,
			&user.Name,
			&user.Email,
			&user.DateOfBirth,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(username) = LOWER($1))`

	var exists bool
	if err := r.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		r.log.Error("Failed to check user existence",
			zap.Error(err),
			zap.String("username", username),
		)
		return false, fmt.Errorf("check user %s: %w", username, err)
	}

	return exists, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, date_of_birth = $4, updated_at = $5
		WHERE LOWER(username) = LOWER($1)
	`

	result, err := r.db.Exec(ctx, query,
		user.Username,
		user.Name,
		user.Email,
		user.DateOfBirth,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("update user %s: %w", user.Username, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE LOWER(username) = LOWER($1)`

	result, err := r.db.Exec(ctx, query, username)
	if err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("username", username),
		)
		return fmt.Errorf("delete user %s: %w", username, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	r.log.Info("User deleted", zap.String("username", username))
	return nil
}
