package repository

import (
	"context"
	"fmt"

	"cinema-platform/internal/data/entity"
	"cinema-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Ticket, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Ticket, error)
	FindByInvoiceID(ctx context.Context, invoiceID int64) ([]entity.Ticket, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	Delete(ctx context.Context, id int64) error
	DeleteByInvoiceID(ctx context.Context, invoiceID int64) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) (int64, error) {
	query := `
		INSERT INTO tickets (price, seat, invoice_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, ticket.Price, ticket.Seat, ticket.InvoiceID).Scan(&id)
	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("seat", ticket.Seat),
			zap.Int64("invoice_id", ticket.InvoiceID),
		)
		return 0, fmt.Errorf("create ticket for invoice %d: %w", ticket.InvoiceID, err)
	}

	return id, nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	query := `SELECT id, price, seat, invoice_id FROM tickets WHERE id = $1`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Price,
		&ticket.Seat,
		&ticket.InvoiceID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.Int64("ticket_id", id),
		)
		return nil, fmt.Errorf("find ticket by id %d: %w", id, err)
	}

	return &ticket, nil
}

func (r *ticketRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Ticket, error) {
	query := `SELECT id, price, seat, invoice_id FROM tickets ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all tickets",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find all tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		if err := rows.Scan(&ticket.ID, &ticket.Price, &ticket.Seat, &ticket.InvoiceID); err != nil {
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

func (r *ticketRepository) FindByInvoiceID(ctx context.Context, invoiceID int64) ([]entity.Ticket, error) {
	query := `SELECT id, price, seat, invoice_id FROM tickets WHERE invoice_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		r.log.Error("Failed to find tickets by invoice ID",
			zap.Error(err),
			zap.Int64("invoice_id", invoiceID),
		)
		return nil, fmt.Errorf("find tickets for invoice %d: %w", invoiceID, err)
	}
	defer rows.Close()

	var tickets []entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		if err := rows.Scan(&ticket.ID, &ticket.Price, &ticket.Seat, &ticket.InvoiceID); err != nil {
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

func (r *ticketRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tickets WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check ticket existence",
			zap.Error(err),
			zap.Int64("ticket_id", id),
		)
		return false, fmt.Errorf("check ticket %d: %w", id, err)
	}

	return exists, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	query := `UPDATE tickets SET price = $2, seat = $3, invoice_id = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, ticket.ID, ticket.Price, ticket.Seat, ticket.InvoiceID)
	if err != nil {
		r.log.Error("Failed to update ticket",
			zap.Error(err),
			zap.Int64("ticket_id", ticket.ID),
		)
		return fmt.Errorf("update ticket %d: %w", ticket.ID, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tickets WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.Int64("ticket_id", id),
		)
		return fmt.Errorf("delete ticket %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	r.log.Info("Ticket deleted", zap.Int64("ticket_id", id))
	return nil
}

func (r *ticketRepository) DeleteByInvoiceID(ctx context.Context, invoiceID int64) error {
	query := `DELETE FROM tickets WHERE invoice_id = $1`

	if _, err := r.db.Exec(ctx, query, invoiceID); err != nil {
		r.log.Error("Failed to delete tickets for invoice",
			zap.Error(err),
			zap.Int64("invoice_id", invoiceID),
		)
		return fmt.Errorf("delete tickets for invoice %d: %w", invoiceID, err)
	}

	return nil
}
