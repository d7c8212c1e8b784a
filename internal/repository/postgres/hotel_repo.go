package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencehub/internal/domain"
)

type hotelRepository struct {
	DB *sql.DB
}

func NewHotelRepository(db *sql.DB) domain.HotelRepository {
	return &hotelRepository{
		DB: db,
	}
}

func (r *hotelRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Hotel, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM hotels`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var hotels []*domain.Hotel
	for rows.Next() {
		h := &domain.Hotel{}
		if err := rows.Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, 0, err
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if hotels == nil {
		hotels = []*domain.Hotel{}
	}
	return hotels, total, nil
}

func (r *hotelRepository) GetWithRooms(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	hotelQuery := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`
	hotel := &domain.Hotel{}
	err := r.DB.QueryRowContext(ctx, hotelQuery, hotelID).
		Scan(&hotel.ID, &hotel.Name, &hotel.Image, &hotel.CreatedAt, &hotel.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	roomsQuery := `
		SELECT id, hotel_id, name, capacity, created_at, updated_at
		FROM rooms
		WHERE hotel_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, roomsQuery, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		room := &domain.Room{}
		if err := rows.Scan(&room.ID, &room.HotelID, &room.Name, &room.Capacity,
			&room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		hotel.Rooms = append(hotel.Rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if hotel.Rooms == nil {
		hotel.Rooms = []*domain.Room{}
	}
	return hotel, nil
}

func (r *hotelRepository) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	query := `
		SELECT id, hotel_id, name, capacity, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`
	room := &domain.Room{}
	err := r.DB.QueryRowContext(ctx, query, roomID).
		Scan(&room.ID, &room.HotelID, &room.Name, &room.Capacity, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (r *hotelRepository) CountBookingsByRoom(ctx context.Context, roomID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1
	`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, roomID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
