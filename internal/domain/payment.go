package domain

import (
	"context"
	"time"
)

// Payment records a processed card payment for a ticket.
// swagger:model Payment
type Payment struct {
	ID             int64     `json:"id"`
	TicketID       int64     `json:"ticket_id"`
	Value          int64     `json:"value"`
	CardIssuer     string    `json:"card_issuer"`
	CardLastDigits string    `json:"card_last_digits"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CardPaymentParams is the card data submitted for a payment. The number is
// never stored; only the last four digits are kept on the payment row.
type CardPaymentParams struct {
	Issuer         string `json:"issuer"`
	Number         string `json:"number"`
	Name           string `json:"name"`
	ExpirationDate string `json:"expiration_date"`
	CVV            string `json:"cvv"`
}

// PaymentRepository defines the interface for payment storage.
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByTicketID(ctx context.Context, ticketID int64) (*Payment, error)
}

// PaymentService defines payment business logic.
type PaymentService interface {
	// GetByTicket returns the ticket's payment after checking the ticket
	// belongs to the requesting user.
	GetByTicket(ctx context.Context, userID, ticketID int64) (*Payment, error)
	// Process captures the payment, marks the ticket PAID, and sends a
	// confirmation email.
	Process(ctx context.Context, userID, ticketID int64, card CardPaymentParams) (*Payment, error)
}
