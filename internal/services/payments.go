package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"conferencehub/internal/domain"
)

type paymentService struct {
	paymentRepo    domain.PaymentRepository
	ticketRepo     domain.TicketRepository
	enrollmentRepo domain.EnrollmentRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	logger         *slog.Logger
}

// NewPaymentService creates a PaymentService. emailService may be nil; payment
// capture then skips the confirmation email.
func NewPaymentService(
	paymentRepo domain.PaymentRepository,
	ticketRepo domain.TicketRepository,
	enrollmentRepo domain.EnrollmentRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.PaymentService {
	return &paymentService{
		paymentRepo:    paymentRepo,
		ticketRepo:     ticketRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		logger:         logger,
	}
}

// verifyTicketOwnership checks the ticket exists and belongs to the user's
// enrollment, returning the ticket with its type loaded.
func (s *paymentService) verifyTicketOwnership(ctx context.Context, userID, ticketID int64) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	enrollment, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	if ticket.EnrollmentID != enrollment.ID {
		return nil, domain.ErrUnauthorized
	}
	return ticket, nil
}

func (s *paymentService) GetByTicket(ctx context.Context, userID, ticketID int64) (*domain.Payment, error) {
	if _, err := s.verifyTicketOwnership(ctx, userID, ticketID); err != nil {
		return nil, err
	}
	payment, err := s.paymentRepo.GetByTicketID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) Process(ctx context.Context, userID, ticketID int64, card domain.CardPaymentParams) (*domain.Payment, error) {
	ticket, err := s.verifyTicketOwnership(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}

	ticketType := ticket.TicketType
	if ticketType == nil {
		ticketType, err = s.ticketRepo.GetTicketType(ctx, ticket.TicketTypeID)
		if err != nil {
			return nil, fmt.Errorf("get ticket type: %w", err)
		}
	}

	lastDigits := card.Number
	if len(lastDigits) > 4 {
		lastDigits = lastDigits[len(lastDigits)-4:]
	}

	now := time.Now()
	payment := &domain.Payment{
		TicketID:       ticketID,
		Value:          ticketType.Price,
		CardIssuer:     card.Issuer,
		CardLastDigits: lastDigits,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if err := s.ticketRepo.MarkPaid(ctx, ticketID); err != nil {
		return nil, fmt.Errorf("mark ticket paid: %w", err)
	}

	s.sendConfirmation(ctx, userID, ticketType)

	return payment, nil
}

// sendConfirmation emails the attendee about the captured payment. Failures
// are logged, not surfaced; the payment already went through.
func (s *paymentService) sendConfirmation(ctx context.Context, userID int64, ticketType *domain.TicketType) {
	if s.emailService == nil {
		return
	}
	enrollment, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "payment confirmation email skipped", "user_id", userID, "err", err)
		return
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "payment confirmation email skipped", "user_id", userID, "err", err)
		return
	}
	data := &domain.PaymentConfirmationEmailData{
		Email:          user.Email,
		AttendeeName:   enrollment.Name,
		TicketTypeName: ticketType.Name,
		IsRemote:       ticketType.IsRemote,
		IncludesHotel:  ticketType.IncludesHotel,
	}
	if err := s.emailService.SendPaymentConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "payment confirmation email failed", "user_id", userID, "err", err)
	}
}
