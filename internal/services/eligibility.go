package services

import (
	"context"
	"errors"
	"fmt"

	"conferencehub/internal/domain"
)

// eligibilityChecker holds the gate chain shared by the registration engine
// and the schedule read model: the user must have an enrollment with a paid,
// hotel-inclusive ticket and a room booking before touching activities.
type eligibilityChecker struct {
	enrollmentRepo domain.EnrollmentRepository
	ticketRepo     domain.TicketRepository
	bookingRepo    domain.BookingRepository
}

// checkActivityAccess runs the eligibility gates in order and returns the
// first failure. Each gate is a pure read.
func (c *eligibilityChecker) checkActivityAccess(ctx context.Context, userID int64) error {
	enrollment, err := c.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get enrollment: %w", err)
	}

	ticket, err := c.ticketRepo.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get ticket: %w", err)
	}

	if ticket.Status != domain.TicketStatusPaid {
		return domain.ErrPaymentRequired
	}

	ticketType := ticket.TicketType
	if ticketType == nil {
		ticketType, err = c.ticketRepo.GetTicketType(ctx, ticket.TicketTypeID)
		if err != nil {
			return fmt.Errorf("get ticket type: %w", err)
		}
	}

	// Remote attendees and full-access in-person tiers have nothing to book
	// on site.
	if ticketType.IsRemote || !ticketType.IncludesHotel {
		return domain.ErrForbidden
	}

	if _, err := c.bookingRepo.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrBookingRequired
		}
		return fmt.Errorf("get booking: %w", err)
	}

	return nil
}
