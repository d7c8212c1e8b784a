package services

import (
	"context"
	"errors"
	"testing"

	"conferencehub/internal/domain"
)

func bookableRoom(id int64, capacity, occupied int) *mockHotelRepository {
	return &mockHotelRepository{
		rooms: map[int64]*domain.Room{
			id: {ID: id, HotelID: 1, Name: "101", Capacity: capacity},
		},
		bookingsByRoom: map[int64]int{id: occupied},
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		hotelRepo *mockHotelRepository
		roomID    int64
		hasTicket bool
		wantErr   error
	}{
		{
			name:      "success",
			hotelRepo: bookableRoom(7, 3, 1),
			roomID:    7,
			hasTicket: true,
		},
		{
			name:      "unknown room",
			hotelRepo: bookableRoom(7, 3, 0),
			roomID:    99,
			hasTicket: true,
			wantErr:   domain.ErrNotFound,
		},
		{
			name:      "room full",
			hotelRepo: bookableRoom(7, 2, 2),
			roomID:    7,
			hasTicket: true,
			wantErr:   domain.ErrRoomFull,
		},
		{
			name:      "unpaid ticket",
			hotelRepo: bookableRoom(7, 3, 0),
			roomID:    7,
			wantErr:   domain.ErrPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enrollmentRepo, ticketRepo, _ := eligibleFixtures()
			if !tt.hasTicket {
				ticketRepo.byEnrollmentID[10].Status = domain.TicketStatusReserved
			}
			// No existing booking; creating one is the point.
			bookingRepo := &mockBookingRepository{}

			svc := NewBookingService(enrollmentRepo, ticketRepo, tt.hotelRepo, bookingRepo)
			booking, err := svc.Create(context.Background(), 1, tt.roomID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				if len(bookingRepo.created) != 0 {
					t.Fatal("failed create must not persist a booking")
				}
				return
			}
			if booking.RoomID != tt.roomID || booking.Room == nil {
				t.Fatalf("booking not bound to room: %+v", booking)
			}
		})
	}
}

func TestBookingService_ChangeRoom(t *testing.T) {
	tests := []struct {
		name      string
		bookingID int64
		roomID    int64
		occupied  int
		wantErr   error
	}{
		{name: "success", bookingID: 1000, roomID: 8},
		{name: "not the owner's booking", bookingID: 555, roomID: 8, wantErr: domain.ErrForbidden},
		{name: "new room full", bookingID: 1000, roomID: 8, occupied: 2, wantErr: domain.ErrRoomFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enrollmentRepo, ticketRepo, bookingRepo := eligibleFixtures()
			hotelRepo := bookableRoom(8, 2, tt.occupied)

			svc := NewBookingService(enrollmentRepo, ticketRepo, hotelRepo, bookingRepo)
			booking, err := svc.ChangeRoom(context.Background(), 1, tt.bookingID, tt.roomID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && booking.RoomID != tt.roomID {
				t.Fatalf("room not updated: %+v", booking)
			}
		})
	}
}
