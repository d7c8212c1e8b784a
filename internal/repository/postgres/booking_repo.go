package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencehub/internal/domain"
)

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{
		DB: db,
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		booking.UserID, booking.RoomID, booking.CreatedAt, booking.UpdatedAt).
		Scan(&booking.ID)
}

func (r *bookingRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.hotel_id, r.name, r.capacity, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
	`
	booking := &domain.Booking{Room: &domain.Room{}}
	room := booking.Room
	err := r.DB.QueryRowContext(ctx, query, userID).
		Scan(&booking.ID, &booking.UserID, &booking.RoomID, &booking.CreatedAt, &booking.UpdatedAt,
			&room.ID, &room.HotelID, &room.Name, &room.Capacity, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (r *bookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int64) error {
	query := `
		UPDATE bookings
		SET room_id = $1, updated_at = NOW()
		WHERE id = $2
	`
	result, err := r.DB.ExecContext(ctx, query, roomID, bookingID)
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
