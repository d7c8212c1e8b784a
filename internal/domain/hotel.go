package domain

import (
	"context"
	"time"
)

// Hotel is a partner hotel offered to in-person attendees.
// swagger:model Hotel
type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Rooms     []*Room   `json:"rooms,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Room is a bookable hotel room with a fixed bed capacity.
// swagger:model Room
type Room struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotel_id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Booking links a user to a room. Its existence signals "hotel secured" for
// the activity registration gates.
// swagger:model Booking
type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RoomID    int64     `json:"room_id"`
	Room      *Room     `json:"room,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBooking returns a new Booking. ID is set by the repository on create.
func NewBooking(userID, roomID int64, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		UserID:    userID,
		RoomID:    roomID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// HotelRepository defines the interface for hotel and room storage.
type HotelRepository interface {
	List(ctx context.Context, params PaginationParams) ([]*Hotel, int, error)
	GetWithRooms(ctx context.Context, hotelID int64) (*Hotel, error)
	GetRoom(ctx context.Context, roomID int64) (*Room, error)
	CountBookingsByRoom(ctx context.Context, roomID int64) (int, error)
}

// BookingRepository defines the interface for booking storage.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByUserID(ctx context.Context, userID int64) (*Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int64) error
}

// HotelService defines hotel listing business logic.
type HotelService interface {
	List(ctx context.Context, userID int64, params PaginationParams) ([]*Hotel, int, error)
	GetWithRooms(ctx context.Context, userID, hotelID int64) (*Hotel, error)
}

// BookingService defines room booking business logic.
type BookingService interface {
	GetByUser(ctx context.Context, userID int64) (*Booking, error)
	Create(ctx context.Context, userID, roomID int64) (*Booking, error)
	ChangeRoom(ctx context.Context, userID, bookingID, roomID int64) (*Booking, error)
}
