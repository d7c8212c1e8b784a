package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencehub/internal/domain"
)

type activityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) domain.ActivityRepository {
	return &activityRepository{
		DB: db,
	}
}

func (r *activityRepository) ListEventDates(ctx context.Context) ([]*domain.EventDateWithActivities, error) {
	datesQuery := `
		SELECT id, date, created_at, updated_at
		FROM event_dates
		ORDER BY date, id
	`
	rows, err := r.DB.QueryContext(ctx, datesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []*domain.EventDateWithActivities
	byDateID := make(map[int64]*domain.EventDateWithActivities)
	for rows.Next() {
		date := &domain.EventDate{}
		if err := rows.Scan(&date.ID, &date.Date, &date.CreatedAt, &date.UpdatedAt); err != nil {
			return nil, err
		}
		day := &domain.EventDateWithActivities{
			EventDate:  date,
			Activities: []*domain.ActivityWithRegistrations{},
		}
		days = append(days, day)
		byDateID[date.ID] = day
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return []*domain.EventDateWithActivities{}, nil
	}

	activities, byActivityID, err := r.listActivitiesWithVenues(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range activities {
		if day, ok := byDateID[a.Activity.EventDateID]; ok {
			day.Activities = append(day.Activities, a)
		}
	}

	if err := r.attachRegistrations(ctx, byActivityID); err != nil {
		return nil, err
	}
	return days, nil
}

func (r *activityRepository) listActivitiesWithVenues(ctx context.Context) ([]*domain.ActivityWithRegistrations, map[int64]*domain.ActivityWithRegistrations, error) {
	query := `
		SELECT a.id, a.event_date_id, a.venue_id, a.name, a.capacity, a.start_time, a.end_time,
		       a.created_at, a.updated_at, v.name
		FROM activities a
		JOIN venues v ON v.id = a.venue_id
		ORDER BY a.event_date_id, a.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var activities []*domain.ActivityWithRegistrations
	byID := make(map[int64]*domain.ActivityWithRegistrations)
	for rows.Next() {
		activity := &domain.Activity{}
		var venueName string
		if err := rows.Scan(&activity.ID, &activity.EventDateID, &activity.VenueID, &activity.Name,
			&activity.Capacity, &activity.StartTime, &activity.EndTime,
			&activity.CreatedAt, &activity.UpdatedAt, &venueName); err != nil {
			return nil, nil, err
		}
		a := &domain.ActivityWithRegistrations{
			Activity:      activity,
			VenueName:     venueName,
			Registrations: []*domain.Registration{},
		}
		activities = append(activities, a)
		byID[activity.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return activities, byID, nil
}

func (r *activityRepository) attachRegistrations(ctx context.Context, byActivityID map[int64]*domain.ActivityWithRegistrations) error {
	query := `
		SELECT id, user_id, activity_id, created_at, updated_at
		FROM registrations
		ORDER BY activity_id, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.UserID, &reg.ActivityID, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return err
		}
		if a, ok := byActivityID[reg.ActivityID]; ok {
			a.Registrations = append(a.Registrations, reg)
		}
	}
	return rows.Err()
}

func (r *activityRepository) GetWithRegistrations(ctx context.Context, activityID int64) (*domain.ActivityWithRegistrations, error) {
	activityQuery := `
		SELECT a.id, a.event_date_id, a.venue_id, a.name, a.capacity, a.start_time, a.end_time,
		       a.created_at, a.updated_at, v.name
		FROM activities a
		JOIN venues v ON v.id = a.venue_id
		WHERE a.id = $1
	`
	activity := &domain.Activity{}
	var venueName string
	err := r.DB.QueryRowContext(ctx, activityQuery, activityID).
		Scan(&activity.ID, &activity.EventDateID, &activity.VenueID, &activity.Name,
			&activity.Capacity, &activity.StartTime, &activity.EndTime,
			&activity.CreatedAt, &activity.UpdatedAt, &venueName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	regsQuery := `
		SELECT id, user_id, activity_id, created_at, updated_at
		FROM registrations
		WHERE activity_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, regsQuery, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []*domain.Registration{}
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.UserID, &reg.ActivityID, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.ActivityWithRegistrations{
		Activity:      activity,
		VenueName:     venueName,
		Registrations: regs,
	}, nil
}

func (r *activityRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Activity, error) {
	query := `
		SELECT a.id, a.event_date_id, a.venue_id, a.name, a.capacity, a.start_time, a.end_time,
		       a.created_at, a.updated_at
		FROM activities a
		JOIN registrations r ON r.activity_id = a.id
		WHERE r.user_id = $1
		ORDER BY a.id
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		activity := &domain.Activity{}
		if err := rows.Scan(&activity.ID, &activity.EventDateID, &activity.VenueID, &activity.Name,
			&activity.Capacity, &activity.StartTime, &activity.EndTime,
			&activity.CreatedAt, &activity.UpdatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []*domain.Activity{}
	}
	return activities, nil
}
