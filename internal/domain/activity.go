package domain

import (
	"context"
	"time"
)

// EventDate is a calendar day on which activities happen.
// swagger:model EventDate
type EventDate struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Venue is a physical or virtual location that hosts activities.
// swagger:model Venue
type Venue struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Activity is a scheduled, capacity-bounded session at a venue on an event
// date. StartTime and EndTime are zero-padded "HH:MM" strings; the day is
// given by the event date, so windows never cross midnight and compare
// lexically.
// swagger:model Activity
type Activity struct {
	ID          int64     `json:"id"`
	EventDateID int64     `json:"event_date_id"`
	VenueID     int64     `json:"venue_id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Overlaps reports whether the two activities' time windows overlap: either
// endpoint of the other window falls inside this one, or the other window
// contains this one entirely.
func (a *Activity) Overlaps(other *Activity) bool {
	if other.StartTime >= a.StartTime && other.StartTime < a.EndTime {
		return true
	}
	if other.EndTime > a.StartTime && other.EndTime <= a.EndTime {
		return true
	}
	return other.StartTime <= a.StartTime && other.EndTime >= a.EndTime
}

// Registration is a user's claim on one seat in one activity. Registrations
// are created once and never updated; there is no cancellation path.
// swagger:model Registration
type Registration struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ActivityID int64     `json:"activity_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewRegistration returns a new Registration. ID is set by the repository on
// create.
func NewRegistration(userID, activityID int64, createdAt, updatedAt time.Time) *Registration {
	return &Registration{
		UserID:     userID,
		ActivityID: activityID,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// ActivityWithRegistrations bundles an activity with the venue that hosts it
// and everyone registered so far.
type ActivityWithRegistrations struct {
	Activity      *Activity
	VenueName     string
	Registrations []*Registration
}

// EventDateWithActivities is one calendar day with every activity scheduled
// on it, in storage order.
type EventDateWithActivities struct {
	EventDate  *EventDate
	Activities []*ActivityWithRegistrations
}

// ActivityRepository defines read access to the activity schedule.
type ActivityRepository interface {
	// ListEventDates returns all event dates with their nested activities,
	// venues, and registrations.
	ListEventDates(ctx context.Context) ([]*EventDateWithActivities, error)
	// GetWithRegistrations returns the activity and its current registrations.
	GetWithRegistrations(ctx context.Context, activityID int64) (*ActivityWithRegistrations, error)
	// ListByUserID returns every activity the user is registered for.
	ListByUserID(ctx context.Context, userID int64) ([]*Activity, error)
}

// RegistrationRepository is the sole writer of registration records.
type RegistrationRepository interface {
	// Create inserts the registration only while the activity still has a free
	// seat, atomically; it returns ErrActivityFull otherwise.
	Create(ctx context.Context, reg *Registration) error
}

// ActivityView is one activity as presented in the schedule listing.
type ActivityView struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Capacity          int    `json:"capacity"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	RegistrationCount int    `json:"registration_count"`
	RegisteredByUser  bool   `json:"registered_by_user"`
}

// VenueSchedule groups a day's activities under one venue, preserving
// first-seen order.
type VenueSchedule struct {
	VenueName  string          `json:"venue_name"`
	Activities []*ActivityView `json:"activities"`
}

// DaySchedule is the listing entry for one event day.
type DaySchedule struct {
	EventDay string           `json:"event_day"`
	Venues   []*VenueSchedule `json:"venues"`
}

// RegistrationService is the activity registration decision engine.
type RegistrationService interface {
	// Create validates eligibility, capacity, and schedule feasibility, then
	// commits exactly one registration. Every failing gate aborts with one of
	// the sentinel errors and writes nothing.
	Create(ctx context.Context, userID, activityID int64) (*Registration, error)
}

// ActivityService is the eligibility-gated schedule read model.
type ActivityService interface {
	// List returns the full schedule grouped by day and venue for an eligible
	// user. It fails with ErrNotFound when no event dates exist.
	List(ctx context.Context, userID int64) ([]*DaySchedule, error)
}
