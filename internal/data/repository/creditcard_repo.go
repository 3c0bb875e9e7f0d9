package repository

import (
	"context"
	"fmt"

	"cinema-platform/internal/data/entity"
	"cinema-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CreditCardRepository interface {
	Create(ctx context.Context, card *entity.CreditCard) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.CreditCard, error)
	FindByUsername(ctx context.Context, username string) ([]*entity.CreditCard, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type creditCardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCreditCardRepository(db database.PgxIface, log *zap.Logger) CreditCardRepository {
	return &creditCardRepository{
		db:  db,
		log: log.With(zap.String("repository", "creditcard")),
	}
}

func (r *creditCardRepository) Create(ctx context.Context, card *entity.CreditCard) (int64, error) {
	query := `
		INSERT INTO credit_cards (card_number, expiration_date, cvc, username)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		card.CardNumber,
		card.ExpirationDate,
		card.CVC,
		card.Username,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create credit card",
			zap.Error(err),
			zap.String("username", card.Username),
		)
		return 0, fmt.Errorf("create credit card for %s: %w", card.Username, err)
	}

	return id, nil
}

func (r *creditCardRepository) FindByID(ctx context.Context, id int64) (*entity.CreditCard, error) {
	query := `SELECT id, card_number, expiration_date, cvc, username FROM credit_cards WHERE id = $1`

	var card entity.CreditCard
	err := r.db.QueryRow(ctx, query, id).Scan(
		&card.ID,
		&card.CardNumber,
		&card.ExpirationDate,
		&card.CVC,
		&card.Username,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find credit card by ID",
			zap.Error(err),
			zap.Int64("card_id", id),
		)
		return nil, fmt.Errorf("find credit card by id %d: %w", id, err)
	}

	return &card, nil
}

func (r *creditCardRepository) FindByUsername(ctx context.Context, username string) ([]*entity.CreditCard, error) {
	query := `
		SELECT id, card_number, expiration_date, cvc, username
		FROM credit_cards
		WHERE LOWER(username) = LOWER($1)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		r.log.Error("Failed to find credit cards by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find credit cards for %s: %w", username, err)
	}
	defer rows.Close()

	var cards []*entity.CreditCard
	for rows.Next() {
		var card entity.CreditCard
		err := rows.Scan(
			&card.ID,
			&card.CardNumber,
			&card.ExpirationDate,
			&card.CVC,
			&card.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("scan credit card row: %w", err)
		}
		cards = append(cards, &card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credit card rows: %w", err)
	}

	return cards, nil
}

func (r *creditCardRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM credit_cards WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check credit card existence",
			zap.Error(err),
			zap.Int64("card_id", id),
		)
		return false, fmt.Errorf("check credit card %d: %w", id, err)
	}

	return exists, nil
}

func (r *creditCardRepository) ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM credit_cards WHERE card_number = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, cardNumber).Scan(&exists); err != nil {
		r.log.Error("Failed to check card number", zap.Error(err))
		return false, fmt.Errorf("check card number: %w", err)
	}

	return exists, nil
}

func (r *creditCardRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM credit_cards WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete credit card",
			zap.Error(err),
			zap.Int64("card_id", id),
		)
		return fmt.Errorf("delete credit card %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	r.log.Info("Credit card deleted", zap.Int64("card_id", id))
	return nil
}
