package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"conferencehub/internal/domain"
)

func targetActivity(id int64, capacity int, start, end string, regs ...*domain.Registration) *domain.ActivityWithRegistrations {
	return &domain.ActivityWithRegistrations{
		Activity: &domain.Activity{
			ID:          id,
			EventDateID: 1,
			VenueID:     1,
			Name:        "Minecraft: montando o PC ideal",
			Capacity:    capacity,
			StartTime:   start,
			EndTime:     end,
		},
		VenueName:     "Auditório Principal",
		Registrations: regs,
	}
}

func TestRegistrationService_Create_Gates(t *testing.T) {
	tests := []struct {
		name    string
		setup   func() (*mockEnrollmentRepository, *mockTicketRepository, *mockBookingRepository)
		wantErr error
	}{
		{
			name: "no enrollment",
			setup: func() (*mockEnrollmentRepository, *mockTicketRepository, *mockBookingRepository) {
				_, ticketRepo, bookingRepo := eligibleFixtures()
				return &mockEnrollmentRepository{}, ticketRepo, bookingRepo
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "no ticket",
			setup: func() (*mockEnrollmentRepository, *mockTicketRepository, *mockBookingRepository) {
				enrollmentRepo, _, bookingRepo := eligibleFixtures()
				return enrollmentRepo, &mockTicketRepository{}, bookingRepo
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "ticket not paid",
			setup: func() (*mockEnrollmentRepository, *mockTicketRepository, *mockBookingRepository) {
				enrollmentRepo, ticketRepo, bookingRepo := eligibleFixtures()
				ticketRepo.byEnrollmentID[10].Status = domain.TicketStatusReserved
				return enrollmentRepo, ticketRepo, bookingRepo
			},
			wantErr: domain.ErrPaymentRequired,
		},
		{
			name: "remote ticket",
			setup: func() (*mockEnrollmentRepository, *mockTicketRepository, *mockBookingRepository) {
				enrollmentRepo, ticketRepo, bookingRepo := eligibleFixtures()
				ticketRepo.byEnrollmentID[10].TicketType.IsRemote = true
				return enrollmentRepo, ticketRepo, bookingRepo
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name: "ticket without hotel is full access",
			setup: func() (*mockEnrollmentRepository, *mockTicketRepository, *mockBookingRepository) {
				enrollmentRepo, ticketRepo, bookingRepo := eligibleFixtures()
				ticketRepo.byEnrollmentID[10].TicketType.IncludesHotel = false
				return enrollmentRepo, ticketRepo, bookingRepo
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name: "no booking",
			setup: func() (*mockEnrollmentRepository, *mockTicketRepository, *mockBookingRepository) {
				enrollmentRepo, ticketRepo, _ := eligibleFixtures()
				return enrollmentRepo, ticketRepo, &mockBookingRepository{}
			},
			wantErr: domain.ErrBookingRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enrollmentRepo, ticketRepo, bookingRepo := tt.setup()
			activityRepo := &mockActivityRepository{
				byActivityID: map[int64]*domain.ActivityWithRegistrations{
					1: targetActivity(1, 10, "09:00", "10:00"),
				},
			}
			regRepo := &mockRegistrationRepository{capacity: map[int64]int{1: 10}}

			svc := NewRegistrationService(enrollmentRepo, ticketRepo, bookingRepo, activityRepo, regRepo)
			_, err := svc.Create(context.Background(), 1, 1)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(regRepo.created) != 0 {
				t.Fatalf("failing gate must not write, got %d registrations", len(regRepo.created))
			}
		})
	}
}

func TestRegistrationService_Create_ActivityChecks(t *testing.T) {
	tests := []struct {
		name           string
		target         *domain.ActivityWithRegistrations
		userActivities []*domain.Activity
		activityID     int64
		wantErr        error
	}{
		{
			name:       "unknown activity",
			target:     targetActivity(1, 10, "09:00", "10:00"),
			activityID: 99,
			wantErr:    domain.ErrNotFound,
		},
		{
			name: "activity at capacity",
			target: targetActivity(1, 2, "09:00", "10:00",
				&domain.Registration{ID: 1, UserID: 2, ActivityID: 1},
				&domain.Registration{ID: 2, UserID: 3, ActivityID: 1},
			),
			activityID: 1,
			wantErr:    domain.ErrActivityFull,
		},
		{
			name:   "overlapping start",
			target: targetActivity(1, 10, "09:00", "10:00"),
			userActivities: []*domain.Activity{
				{ID: 2, EventDateID: 1, StartTime: "09:30", EndTime: "11:00"},
			},
			activityID: 1,
			wantErr:    domain.ErrTimeConflict,
		},
		{
			name:   "existing window contains target",
			target: targetActivity(1, 10, "09:00", "10:00"),
			userActivities: []*domain.Activity{
				{ID: 2, EventDateID: 1, StartTime: "08:00", EndTime: "12:00"},
			},
			activityID: 1,
			wantErr:    domain.ErrTimeConflict,
		},
		{
			name:   "same slot on another day is fine",
			target: targetActivity(1, 10, "09:00", "10:00"),
			userActivities: []*domain.Activity{
				{ID: 2, EventDateID: 2, StartTime: "09:00", EndTime: "10:00"},
			},
			activityID: 1,
			wantErr:    nil,
		},
		{
			name:   "back to back is fine",
			target: targetActivity(1, 10, "10:00", "11:00"),
			userActivities: []*domain.Activity{
				{ID: 2, EventDateID: 1, StartTime: "09:00", EndTime: "10:00"},
			},
			activityID: 1,
			wantErr:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enrollmentRepo, ticketRepo, bookingRepo := eligibleFixtures()
			activityRepo := &mockActivityRepository{
				byActivityID: map[int64]*domain.ActivityWithRegistrations{
					tt.target.Activity.ID: tt.target,
				},
				userActivities: map[int64][]*domain.Activity{1: tt.userActivities},
			}
			regRepo := &mockRegistrationRepository{
				capacity: map[int64]int{tt.target.Activity.ID: tt.target.Activity.Capacity},
				counts:   map[int64]int{tt.target.Activity.ID: len(tt.target.Registrations)},
			}

			svc := NewRegistrationService(enrollmentRepo, ticketRepo, bookingRepo, activityRepo, regRepo)
			reg, err := svc.Create(context.Background(), 1, tt.activityID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil {
				if reg == nil || reg.ID == 0 {
					t.Fatalf("expected a persisted registration, got %+v", reg)
				}
				if reg.UserID != 1 || reg.ActivityID != tt.activityID {
					t.Fatalf("registration has wrong keys: %+v", reg)
				}
			}
		})
	}
}

func TestRegistrationService_Create_RaceNeverOversells(t *testing.T) {
	const capacity = 3
	const attempts = 20

	activityRepo := &mockActivityRepository{
		byActivityID: map[int64]*domain.ActivityWithRegistrations{
			// Stale read: the listing shows zero registrations to everyone.
			1: targetActivity(1, capacity, "09:00", "10:00"),
		},
	}
	regRepo := &mockRegistrationRepository{capacity: map[int64]int{1: capacity}}

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes, fulls := 0, 0
	for i := 0; i < attempts; i++ {
		userID := int64(i + 1)
		enrollmentRepo, ticketRepo, bookingRepo := eligibleFixtures()
		enrollmentRepo.byUserID[userID] = &domain.Enrollment{ID: 10, UserID: userID}
		bookingRepo.byUserID[userID] = &domain.Booking{ID: 1000, UserID: userID, RoomID: 7}
		svc := NewRegistrationService(enrollmentRepo, ticketRepo, bookingRepo, activityRepo, regRepo)

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), userID, 1)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrActivityFull):
				fulls++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != capacity {
		t.Fatalf("expected exactly %d seats granted, got %d (%d rejected)", capacity, successes, fulls)
	}
	if successes+fulls != attempts {
		t.Fatalf("lost attempts: %d successes + %d fulls != %d", successes, fulls, attempts)
	}
}
