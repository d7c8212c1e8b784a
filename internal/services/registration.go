package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

type registrationService struct {
	eligibility      eligibilityChecker
	activityRepo     domain.ActivityRepository
	registrationRepo domain.RegistrationRepository
}

// NewRegistrationService creates the activity registration engine with the
// given repositories.
func NewRegistrationService(
	enrollmentRepo domain.EnrollmentRepository,
	ticketRepo domain.TicketRepository,
	bookingRepo domain.BookingRepository,
	activityRepo domain.ActivityRepository,
	registrationRepo domain.RegistrationRepository,
) domain.RegistrationService {
	return &registrationService{
		eligibility: eligibilityChecker{
			enrollmentRepo: enrollmentRepo,
			ticketRepo:     ticketRepo,
			bookingRepo:    bookingRepo,
		},
		activityRepo:     activityRepo,
		registrationRepo: registrationRepo,
	}
}

func (s *registrationService) Create(ctx context.Context, userID, activityID int64) (*domain.Registration, error) {
	if err := s.eligibility.checkActivityAccess(ctx, userID); err != nil {
		return nil, err
	}

	target, err := s.activityRepo.GetWithRegistrations(ctx, activityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}

	if len(target.Registrations) >= target.Activity.Capacity {
		return nil, domain.ErrActivityFull
	}

	registered, err := s.activityRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user activities: %w", err)
	}
	for _, existing := range registered {
		// Times are day-local, so only same-day activities can collide.
		if existing.EventDateID == target.Activity.EventDateID && existing.Overlaps(target.Activity) {
			return nil, domain.ErrTimeConflict
		}
	}

	now := time.Now()
	reg := domain.NewRegistration(userID, activityID, now, now)
	// The repository re-checks capacity inside the insert, so two attempts
	// racing past the gate above cannot both land.
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrActivityFull) {
			return nil, domain.ErrActivityFull
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}
