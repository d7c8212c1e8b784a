package services

import (
	"context"
	"fmt"

	"conferencehub/internal/domain"
)

// eventDayLayout renders an event date as weekday plus day/month,
// e.g. "Friday, 22/10".
const eventDayLayout = "Monday, 02/01"

type activityService struct {
	eligibility  eligibilityChecker
	activityRepo domain.ActivityRepository
}

// NewActivityService creates the schedule read model with the given
// repositories. It shares the registration engine's eligibility gates.
func NewActivityService(
	enrollmentRepo domain.EnrollmentRepository,
	ticketRepo domain.TicketRepository,
	bookingRepo domain.BookingRepository,
	activityRepo domain.ActivityRepository,
) domain.ActivityService {
	return &activityService{
		eligibility: eligibilityChecker{
			enrollmentRepo: enrollmentRepo,
			ticketRepo:     ticketRepo,
			bookingRepo:    bookingRepo,
		},
		activityRepo: activityRepo,
	}
}

func (s *activityService) List(ctx context.Context, userID int64) ([]*domain.DaySchedule, error) {
	if err := s.eligibility.checkActivityAccess(ctx, userID); err != nil {
		return nil, err
	}

	days, err := s.activityRepo.ListEventDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list event dates: %w", err)
	}
	if len(days) == 0 {
		return nil, domain.ErrNotFound
	}

	schedule := make([]*domain.DaySchedule, 0, len(days))
	for _, day := range days {
		schedule = append(schedule, &domain.DaySchedule{
			EventDay: day.EventDate.Date.Format(eventDayLayout),
			Venues:   groupByVenue(day.Activities, userID),
		})
	}
	return schedule, nil
}

// groupByVenue buckets a day's activities by venue name, keeping first-seen
// venue order and first-seen activity order within each venue.
func groupByVenue(activities []*domain.ActivityWithRegistrations, userID int64) []*domain.VenueSchedule {
	venues := []*domain.VenueSchedule{}
	byName := make(map[string]*domain.VenueSchedule)

	for _, a := range activities {
		venue, ok := byName[a.VenueName]
		if !ok {
			venue = &domain.VenueSchedule{VenueName: a.VenueName}
			byName[a.VenueName] = venue
			venues = append(venues, venue)
		}
		venue.Activities = append(venue.Activities, &domain.ActivityView{
			ID:                a.Activity.ID,
			Name:              a.Activity.Name,
			Capacity:          a.Activity.Capacity,
			StartTime:         a.Activity.StartTime,
			EndTime:           a.Activity.EndTime,
			RegistrationCount: len(a.Registrations),
			RegisteredByUser:  registeredBy(a.Registrations, userID),
		})
	}
	return venues
}

func registeredBy(regs []*domain.Registration, userID int64) bool {
	for _, r := range regs {
		if r.UserID == userID {
			return true
		}
	}
	return false
}
