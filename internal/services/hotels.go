package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

type hotelService struct {
	eligibility eligibilityChecker
	hotelRepo   domain.HotelRepository
	cache       domain.Cache
	cacheTTL    time.Duration
}

// NewHotelService creates a HotelService. The cache holds hotel listings for
// cacheTTL; pass a nil cache to always hit storage.
func NewHotelService(
	enrollmentRepo domain.EnrollmentRepository,
	ticketRepo domain.TicketRepository,
	bookingRepo domain.BookingRepository,
	hotelRepo domain.HotelRepository,
	cache domain.Cache,
	cacheTTL time.Duration,
) domain.HotelService {
	return &hotelService{
		eligibility: eligibilityChecker{
			enrollmentRepo: enrollmentRepo,
			ticketRepo:     ticketRepo,
			bookingRepo:    bookingRepo,
		},
		hotelRepo: hotelRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// checkHotelAccess mirrors the activity gates except for the booking
// requirement: listing hotels is what lets the user book in the first place.
func (s *hotelService) checkHotelAccess(ctx context.Context, userID int64) error {
	err := s.eligibility.checkActivityAccess(ctx, userID)
	if errors.Is(err, domain.ErrBookingRequired) {
		return nil
	}
	return err
}

func (s *hotelService) List(ctx context.Context, userID int64, params domain.PaginationParams) ([]*domain.Hotel, int, error) {
	if err := s.checkHotelAccess(ctx, userID); err != nil {
		return nil, 0, err
	}

	type page struct {
		Hotels []*domain.Hotel `json:"hotels"`
		Total  int             `json:"total"`
	}

	key := fmt.Sprintf("hotels:page=%d:size=%d", params.Page, params.PageSize)
	if s.cache != nil {
		if raw, ok := s.cache.Get(key); ok {
			var cached page
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached.Hotels, cached.Total, nil
			}
		}
	}

	hotels, total, err := s.hotelRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list hotels: %w", err)
	}
	if len(hotels) == 0 {
		return nil, 0, domain.ErrNotFound
	}

	if s.cache != nil {
		if raw, err := json.Marshal(page{Hotels: hotels, Total: total}); err == nil {
			s.cache.SetEx(key, raw, s.cacheTTL)
		}
	}
	return hotels, total, nil
}

func (s *hotelService) GetWithRooms(ctx context.Context, userID, hotelID int64) (*domain.Hotel, error) {
	if err := s.checkHotelAccess(ctx, userID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("hotel:id=%d", hotelID)
	if s.cache != nil {
		if raw, ok := s.cache.Get(key); ok {
			var cached domain.Hotel
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	hotel, err := s.hotelRepo.GetWithRooms(ctx, hotelID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(hotel); err == nil {
			s.cache.SetEx(key, raw, s.cacheTTL)
		}
	}
	return hotel, nil
}
