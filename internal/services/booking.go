package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

type bookingService struct {
	eligibility eligibilityChecker
	hotelRepo   domain.HotelRepository
	bookingRepo domain.BookingRepository
}

// NewBookingService creates a BookingService with the given repositories.
func NewBookingService(
	enrollmentRepo domain.EnrollmentRepository,
	ticketRepo domain.TicketRepository,
	hotelRepo domain.HotelRepository,
	bookingRepo domain.BookingRepository,
) domain.BookingService {
	return &bookingService{
		eligibility: eligibilityChecker{
			enrollmentRepo: enrollmentRepo,
			ticketRepo:     ticketRepo,
			bookingRepo:    bookingRepo,
		},
		hotelRepo:   hotelRepo,
		bookingRepo: bookingRepo,
	}
}

// checkBookingAccess requires a paid, hotel-inclusive ticket. The booking
// itself is what is being created here, so its absence is not a failure.
func (s *bookingService) checkBookingAccess(ctx context.Context, userID int64) error {
	err := s.eligibility.checkActivityAccess(ctx, userID)
	if errors.Is(err, domain.ErrBookingRequired) {
		return nil
	}
	return err
}

// checkRoom verifies the room exists and still has a free bed.
func (s *bookingService) checkRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := s.hotelRepo.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	occupied, err := s.hotelRepo.CountBookingsByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("count room bookings: %w", err)
	}
	if occupied >= room.Capacity {
		return nil, domain.ErrRoomFull
	}
	return room, nil
}

func (s *bookingService) GetByUser(ctx context.Context, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) Create(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	if err := s.checkBookingAccess(ctx, userID); err != nil {
		return nil, err
	}
	room, err := s.checkRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := domain.NewBooking(userID, roomID, now, now)
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	booking.Room = room
	return booking, nil
}

func (s *bookingService) ChangeRoom(ctx context.Context, userID, bookingID, roomID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.ID != bookingID {
		return nil, domain.ErrForbidden
	}

	room, err := s.checkRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.UpdateRoom(ctx, bookingID, roomID); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	booking.RoomID = roomID
	booking.Room = room
	return booking, nil
}
