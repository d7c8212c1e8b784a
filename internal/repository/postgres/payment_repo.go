package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencehub/internal/domain"
)

type paymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) domain.PaymentRepository {
	return &paymentRepository{
		DB: db,
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (ticket_id, value, card_issuer, card_last_digits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		payment.TicketID, payment.Value, payment.CardIssuer, payment.CardLastDigits,
		payment.CreatedAt, payment.UpdatedAt).
		Scan(&payment.ID)
}

func (r *paymentRepository) GetByTicketID(ctx context.Context, ticketID int64) (*domain.Payment, error) {
	query := `
		SELECT id, ticket_id, value, card_issuer, card_last_digits, created_at, updated_at
		FROM payments
		WHERE ticket_id = $1
	`
	payment := &domain.Payment{}
	err := r.DB.QueryRowContext(ctx, query, ticketID).
		Scan(&payment.ID, &payment.TicketID, &payment.Value, &payment.CardIssuer,
			&payment.CardLastDigits, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return payment, nil
}
