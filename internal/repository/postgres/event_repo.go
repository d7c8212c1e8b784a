package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencehub/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) GetFirst(ctx context.Context) (*domain.Event, error) {
	query := `
		SELECT id, title, logo_image_url, background_image_url, starts_at, ends_at, created_at, updated_at
		FROM events
		ORDER BY id
		LIMIT 1
	`
	event := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query).
		Scan(&event.ID, &event.Title, &event.LogoImageURL, &event.BackgroundImageURL,
			&event.StartsAt, &event.EndsAt, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}
