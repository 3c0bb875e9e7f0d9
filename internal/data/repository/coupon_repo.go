package repository

import (
	"context"
	"fmt"

	"cinema-platform/internal/data/entity"
	"cinema-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Coupon, error)
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
	FindAll(ctx context.Context) ([]*entity.Coupon, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id int64) error
}

type couponRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCouponRepository(db database.PgxIface, log *zap.Logger) CouponRepository {
	return &couponRepository{
		db:  db,
		log: log.With(zap.String("repository", "coupon")),
	}
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) (int64, error) {
	query := `
		INSERT INTO coupons (code, description, expire_at, percentage)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		coupon.Code,
		coupon.Description,
		coupon.ExpireAt,
		coupon.Percentage,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create coupon",
			zap.Error(err),
			zap.String("code", coupon.Code),
		)
		return 0, fmt.Errorf("create coupon %s: %w", coupon.Code, err)
	}

	return id, nil
}

func (r *couponRepository) FindByID(ctx context.Context, id int64) (*entity.Coupon, error) {
	query := `SELECT id, code, description, expire_at, percentage FROM coupons WHERE id = $1`

	var coupon entity.Coupon
	err := r.db.QueryRow(ctx, query, id).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.Description,
		&coupon.ExpireAt,
		&coupon.Percentage,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find coupon by ID",
			zap.Error(err),
			zap.Int64("coupon_id", id),
		)
		return nil, fmt.Errorf("find coupon by id %d: %w", id, err)
	}

	return &coupon, nil
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	query := `SELECT id, code, description, expire_at, percentage FROM coupons WHERE code = $1`

	var coupon entity.Coupon
	err := r.db.QueryRow(ctx, query, code).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.Description,
		&coupon.ExpireAt,
		&coupon.Percentage,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find coupon by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find coupon by code %s: %w", code, err)
	}

	return &coupon, nil
}

func (r *couponRepository) FindAll(ctx context.Context) ([]*entity.Coupon, error) {
	query := `SELECT id, code, description, expire_at, percentage FROM coupons ORDER BY code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all coupons", zap.Error(err))
		return nil, fmt.Errorf("find all coupons: %w", err)
	}
	defer rows.Close()

	var coupons []*entity.Coupon
	for rows.Next() {
		var coupon entity.Coupon
		err := rows.Scan(
			&coupon.ID,
			&coupon.Code,
			&coupon.Description,
			&coupon.ExpireAt,
			&coupon.Percentage,
		)
		if err != nil {
			return nil, fmt.Errorf("scan coupon row: %w", err)
		}
		coupons = append(coupons, &coupon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coupon rows: %w", err)
	}

	return coupons, nil
}

func (r *couponRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM coupons WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check coupon existence",
			zap.Error(err),
			zap.Int64("coupon_id", id),
		)
		return false, fmt.Errorf("check coupon %d: %w", id, err)
	}

	return exists, nil
}

func (r *couponRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM coupons WHERE code = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		r.log.Error("Failed to check coupon code",
			zap.Error(err),
			zap.String("code", code),
		)
		return false, fmt.Errorf("check coupon code %s: %w", code, err)
	}

	return exists, nil
}

func (r *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	query := `
		UPDATE coupons
		SET code = $2, description = $3, expire_at = $4, percentage = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		coupon.ID,
		coupon.Code,
		coupon.Description,
		coupon.ExpireAt,
		coupon.Percentage,
	)

	if err != nil {
		r.log.Error("Failed to update coupon",
			zap.Error(err),
			zap.Int64("coupon_id", coupon.ID),
		)
		return fmt.Errorf("update coupon %d: %w", coupon.ID, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *couponRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM coupons WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete coupon",
			zap.Error(err),
			zap.Int64("coupon_id", id),
		)
		return fmt.Errorf("delete coupon %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	r.log.Info("Coupon deleted", zap.Int64("coupon_id", id))
	return nil
}
