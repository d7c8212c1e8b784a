package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencehub/internal/domain"
)

type ticketRepository struct {
	DB *sql.DB
}

func NewTicketRepository(db *sql.DB) domain.TicketRepository {
	return &ticketRepository{
		DB: db,
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		INSERT INTO tickets (enrollment_id, ticket_type_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		ticket.EnrollmentID, ticket.TicketTypeID, string(ticket.Status), ticket.CreatedAt, ticket.UpdatedAt).
		Scan(&ticket.ID)
}

func (r *ticketRepository) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	query := `
		SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1
		ORDER BY t.created_at
		LIMIT 1
	`
	ticket := &domain.Ticket{TicketType: &domain.TicketType{}}
	tt := ticket.TicketType
	err := r.DB.QueryRowContext(ctx, query, enrollmentID).
		Scan(&ticket.ID, &ticket.EnrollmentID, &ticket.TicketTypeID, &ticket.Status,
			&ticket.CreatedAt, &ticket.UpdatedAt,
			&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel, &tt.CreatedAt, &tt.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	query := `
		SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.id = $1
	`
	ticket := &domain.Ticket{TicketType: &domain.TicketType{}}
	tt := ticket.TicketType
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&ticket.ID, &ticket.EnrollmentID, &ticket.TicketTypeID, &ticket.Status,
			&ticket.CreatedAt, &ticket.UpdatedAt,
			&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel, &tt.CreatedAt, &tt.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (r *ticketRepository) GetTicketType(ctx context.Context, id int64) (*domain.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		WHERE id = $1
	`
	tt := &domain.TicketType{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel, &tt.CreatedAt, &tt.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return tt, nil
}

func (r *ticketRepository) ListTicketTypes(ctx context.Context) ([]*domain.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*domain.TicketType
	for rows.Next() {
		tt := &domain.TicketType{}
		if err := rows.Scan(&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel,
			&tt.CreatedAt, &tt.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, tt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if types == nil {
		types = []*domain.TicketType{}
	}
	return types, nil
}

func (r *ticketRepository) MarkPaid(ctx context.Context, ticketID int64) error {
	query := `
		UPDATE tickets
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	result, err := r.DB.ExecContext(ctx, query, string(domain.TicketStatusPaid), ticketID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
