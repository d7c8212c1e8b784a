package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"conferencehub/internal/domain"
)

func scheduleDay(date time.Time, activities ...*domain.ActivityWithRegistrations) *domain.EventDateWithActivities {
	return &domain.EventDateWithActivities{
		EventDate:  &domain.EventDate{ID: 1, Date: date},
		Activities: activities,
	}
}

func scheduledActivity(id int64, venue, name, start, end string, regs ...*domain.Registration) *domain.ActivityWithRegistrations {
	return &domain.ActivityWithRegistrations{
		Activity: &domain.Activity{
			ID:          id,
			EventDateID: 1,
			Name:        name,
			Capacity:    30,
			StartTime:   start,
			EndTime:     end,
		},
		VenueName:     venue,
		Registrations: regs,
	}
}

func TestActivityService_List_GroupsByDayAndVenue(t *testing.T) {
	enrollmentRepo, ticketRepo, bookingRepo := eligibleFixtures()
	// Friday 2023-10-27; interleaved venues to prove first-seen ordering.
	date := time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC)
	activityRepo := &mockActivityRepository{
		days: []*domain.EventDateWithActivities{
			scheduleDay(date,
				scheduledActivity(1, "Auditório Principal", "Abertura", "09:00", "10:00",
					&domain.Registration{ID: 1, UserID: 1, ActivityID: 1},
					&domain.Registration{ID: 2, UserID: 2, ActivityID: 1},
				),
				scheduledActivity(2, "Sala de Workshop", "Go na prática", "09:00", "11:00"),
				scheduledActivity(3, "Auditório Principal", "Palestra x", "10:00", "11:00"),
			),
		},
	}

	svc := NewActivityService(enrollmentRepo, ticketRepo, bookingRepo, activityRepo)
	schedule, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedule) != 1 {
		t.Fatalf("expected 1 day, got %d", len(schedule))
	}
	day := schedule[0]
	if day.EventDay != "Friday, 27/10" {
		t.Fatalf("unexpected day label: %q", day.EventDay)
	}
	if len(day.Venues) != 2 {
		t.Fatalf("expected 2 venues, got %d", len(day.Venues))
	}
	if day.Venues[0].VenueName != "Auditório Principal" || day.Venues[1].VenueName != "Sala de Workshop" {
		t.Fatalf("venues out of first-seen order: %q, %q", day.Venues[0].VenueName, day.Venues[1].VenueName)
	}
	if got := len(day.Venues[0].Activities); got != 2 {
		t.Fatalf("expected 2 activities in first venue, got %d", got)
	}

	opening := day.Venues[0].Activities[0]
	if opening.RegistrationCount != 2 {
		t.Fatalf("expected 2 registrations, got %d", opening.RegistrationCount)
	}
	if !opening.RegisteredByUser {
		t.Fatal("expected user 1 to be flagged as registered for the opening")
	}
	if day.Venues[0].Activities[1].RegisteredByUser {
		t.Fatal("user 1 is not registered for the second activity")
	}
}

func TestActivityService_List_Errors(t *testing.T) {
	t.Run("no event dates", func(t *testing.T) {
		enrollmentRepo, ticketRepo, bookingRepo := eligibleFixtures()
		svc := NewActivityService(enrollmentRepo, ticketRepo, bookingRepo, &mockActivityRepository{})
		if _, err := svc.List(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("same gates as registration", func(t *testing.T) {
		enrollmentRepo, ticketRepo, bookingRepo := eligibleFixtures()
		ticketRepo.byEnrollmentID[10].Status = domain.TicketStatusReserved
		svc := NewActivityService(enrollmentRepo, ticketRepo, bookingRepo, &mockActivityRepository{})
		if _, err := svc.List(context.Background(), 1); !errors.Is(err, domain.ErrPaymentRequired) {
			t.Fatalf("expected ErrPaymentRequired, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		enrollmentRepo, ticketRepo, bookingRepo := eligibleFixtures()
		svc := NewActivityService(enrollmentRepo, ticketRepo, bookingRepo, &mockActivityRepository{err: errors.New("db down")})
		if _, err := svc.List(context.Background(), 1); err == nil {
			t.Fatal("expected an error")
		}
	})
}
