package domain

import (
	"context"
	"time"
)

// TicketStatus is the payment state of a ticket.
type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// TicketType is an admission tier shared by many tickets.
// swagger:model TicketType
type TicketType struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	IsRemote      bool      `json:"is_remote"`
	IncludesHotel bool      `json:"includes_hotel"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Ticket is a purchased admission instance. It belongs to one enrollment and
// references one ticket type.
// swagger:model Ticket
type Ticket struct {
	ID           int64        `json:"id"`
	EnrollmentID int64        `json:"enrollment_id"`
	TicketTypeID int64        `json:"ticket_type_id"`
	Status       TicketStatus `json:"status"`
	TicketType   *TicketType  `json:"ticket_type,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewTicket returns a reserved Ticket. ID is set by the repository on create.
func NewTicket(enrollmentID, ticketTypeID int64, createdAt, updatedAt time.Time) *Ticket {
	return &Ticket{
		EnrollmentID: enrollmentID,
		TicketTypeID: ticketTypeID,
		Status:       TicketStatusReserved,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// TicketRepository defines the interface for ticket and ticket type storage.
type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	// GetByEnrollmentID returns the enrollment's ticket with its type loaded.
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*Ticket, error)
	GetByID(ctx context.Context, id int64) (*Ticket, error)
	GetTicketType(ctx context.Context, id int64) (*TicketType, error)
	ListTicketTypes(ctx context.Context) ([]*TicketType, error)
	// MarkPaid flips the ticket status to PAID.
	MarkPaid(ctx context.Context, ticketID int64) error
}

// TicketService defines ticket purchase business logic.
type TicketService interface {
	ListTypes(ctx context.Context) ([]*TicketType, error)
	GetByUser(ctx context.Context, userID int64) (*Ticket, error)
	Create(ctx context.Context, userID, ticketTypeID int64) (*Ticket, error)
}
