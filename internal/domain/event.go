package domain

import (
	"context"
	"time"
)

// Event represents the conference itself. The system serves a single event;
// reads always resolve the first one.
// swagger:model Event
type Event struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	LogoImageURL       string    `json:"logo_image_url"`
	BackgroundImageURL string    `json:"background_image_url"`
	StartsAt           time.Time `json:"starts_at"`
	EndsAt             time.Time `json:"ends_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	GetFirst(ctx context.Context) (*Event, error)
}

// EventService defines event read business logic.
type EventService interface {
	GetFirst(ctx context.Context) (*Event, error)
	// IsActive reports whether now falls inside the event's date window.
	IsActive(ctx context.Context, now time.Time) (bool, error)
}

// PaginationParams carries page and page size for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
