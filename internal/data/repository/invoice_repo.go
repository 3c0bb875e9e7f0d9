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

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Invoice, error)
	FindAll(ctx context.Context, username *string, nowPlayingID *int64, paid *bool) ([]*entity.Invoice, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	SetPaid(ctx context.Context, id int64, paid bool) error
	Delete(ctx context.Context, id int64) error
}

type invoiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInvoiceRepository(db database.PgxIface, log *zap.Logger) InvoiceRepository {
	return &invoiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "invoice")),
	}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) (int64, error) {
	query := `
		INSERT INTO invoices (username, order_date, nowplaying_id, paid, total_price, coupon_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		invoice.Username,
		invoice.OrderDate,
		invoice.NowPlayingID,
		invoice.Paid,
		invoice.TotalPrice,
		invoice.CouponID,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create invoice",
			zap.Error(err),
			zap.String("username", invoice.Username),
		)
		return 0, fmt.Errorf("create invoice for %s: %w", invoice.Username, err)
	}

	return id, nil
}

func (r *invoiceRepository) FindByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `
		SELECT id, username, order_date, nowplaying_id, paid, total_price, coupon_id
		FROM invoices
		WHERE id = $1
	`

	var invoice entity.Invoice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.Username,
		&invoice.OrderDate,
		&invoice.NowPlayingID,
		&invoice.Paid,
		&invoice.TotalPrice,
		&invoice.CouponID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find invoice by ID",
			zap.Error(err),
			zap.Int64("invoice_id", id),
		)
		return nil, fmt.Errorf("find invoice by id %d: %w", id, err)
	}

	return &invoice, nil
}

func (r *invoiceRepository) FindAll(ctx context.Context, username *string, nowPlayingID *int64, paid *bool) ([]*entity.Invoice, error) {
	// Build query with optional filters
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, username, order_date, nowplaying_id, paid, total_price, coupon_id
		FROM invoices
	`)

	args := []interface{}{}
	conditions := []string{}

	if username != nil && *username != "" {
		args = append(args, *username)
		conditions = append(conditions, fmt.Sprintf("LOWER(username) = LOWER($%d)", len(args)))
	}

	if nowPlayingID != nil {
		args = append(args, *nowPlayingID)
		conditions = append(conditions, fmt.Sprintf("nowplaying_id = $%d", len(args)))
	}

	if paid != nil {
		args = append(args, *paid)
		conditions = append(conditions, fmt.Sprintf("paid = $%d", len(args)))
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY order_date DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find invoices",
			zap.Error(err),
			zap.Stringp("username", username),
		)
		return nil, fmt.Errorf("find invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		var invoice entity.Invoice
		err := rows.Scan(
			&invoice.ID,
			&invoice.Username,
			&invoice.OrderDate,
			&invoice.NowPlayingID,
			&invoice.Paid,
			&invoice.TotalPrice,
			&invoice.CouponID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice rows: %w", err)
	}

	return invoices, nil
}

func (r *invoiceRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM invoices WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check invoice existence",
			zap.Error(err),
			zap.Int64("invoice_id", id),
		)
		return false, fmt.Errorf("check invoice %d: %w", id, err)
	}

	return exists, nil
}

func (r *invoiceRepository) SetPaid(ctx context.Context, id int64, paid bool) error {
	query := `UPDATE invoices SET paid = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, paid)
	if err != nil {
		r.log.Error("Failed to set invoice paid flag",
			zap.Error(err),
			zap.Int64("invoice_id", id),
		)
		return fmt.Errorf("set paid on invoice %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM invoices WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete invoice",
			zap.Error(err),
			zap.Int64("invoice_id", id),
		)
		return fmt.Errorf("delete invoice %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	r.log.Info("Invoice deleted", zap.Int64("invoice_id", id))
	return nil
}
