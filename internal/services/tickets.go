package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

type ticketService struct {
	ticketRepo     domain.TicketRepository
	enrollmentRepo domain.EnrollmentRepository
}

// NewTicketService creates a TicketService with the given repositories.
func NewTicketService(ticketRepo domain.TicketRepository, enrollmentRepo domain.EnrollmentRepository) domain.TicketService {
	return &ticketService{
		ticketRepo:     ticketRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *ticketService) ListTypes(ctx context.Context) ([]*domain.TicketType, error) {
	types, err := s.ticketRepo.ListTicketTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	if types == nil {
		types = []*domain.TicketType{}
	}
	return types, nil
}

func (s *ticketService) GetByUser(ctx context.Context, userID int64) (*domain.Ticket, error) {
	enrollment, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	ticket, err := s.ticketRepo.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return ticket, nil
}

func (s *ticketService) Create(ctx context.Context, userID, ticketTypeID int64) (*domain.Ticket, error) {
	// Enrollment first; a ticket always hangs off the attendee profile.
	enrollment, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	ticketType, err := s.ticketRepo.GetTicketType(ctx, ticketTypeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get ticket type: %w", err)
	}

	now := time.Now()
	ticket := domain.NewTicket(enrollment.ID, ticketType.ID, now, now)
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	ticket.TicketType = ticketType
	return ticket, nil
}
