package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"conferencehub/internal/domain"
)

const eventCacheKey = "event:first"

type eventService struct {
	eventRepo domain.EventRepository
	cache     domain.Cache
	cacheTTL  time.Duration
}

// NewEventService creates an EventService. The first-event read is served
// from cache for cacheTTL; pass a nil cache to always hit storage.
func NewEventService(eventRepo domain.EventRepository, cache domain.Cache, cacheTTL time.Duration) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

func (s *eventService) GetFirst(ctx context.Context) (*domain.Event, error) {
	if s.cache != nil {
		if raw, ok := s.cache.Get(eventCacheKey); ok {
			var cached domain.Event
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	event, err := s.eventRepo.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(event); err == nil {
			s.cache.SetEx(eventCacheKey, raw, s.cacheTTL)
		}
	}
	return event, nil
}

func (s *eventService) IsActive(ctx context.Context, now time.Time) (bool, error) {
	event, err := s.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return now.After(event.StartsAt) && now.Before(event.EndsAt), nil
}
