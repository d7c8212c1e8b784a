package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeActivityService implements domain.ActivityService for handler tests.
type fakeActivityService struct {
	listErr    error
	listResult []*domain.DaySchedule
	lastUserID int64
}

func (f *fakeActivityService) List(ctx context.Context, userID int64) ([]*domain.DaySchedule, error) {
	f.lastUserID = userID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func TestActivityController_List(t *testing.T) {
	schedule := []*domain.DaySchedule{
		{
			EventDay: "Friday, 27/10",
			Venues: []*domain.VenueSchedule{
				{
					VenueName: "Auditório Principal",
					Activities: []*domain.ActivityView{
						{ID: 1, Name: "Abertura", Capacity: 30, StartTime: "09:00", EndTime: "10:00", RegistrationCount: 2, RegisteredByUser: true},
					},
				},
			},
		},
	}

	tests := []struct {
		name       string
		authed     bool
		svc        *fakeActivityService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			authed:     true,
			svc:        &fakeActivityService{listResult: schedule},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing auth",
			svc:        &fakeActivityService{},
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
		{
			name:       "payment required",
			authed:     true,
			svc:        &fakeActivityService{listErr: domain.ErrPaymentRequired},
			wantStatus: http.StatusPaymentRequired,
			wantCode:   helpers.ErrCodePaymentRequired,
		},
		{
			name:       "booking required",
			authed:     true,
			svc:        &fakeActivityService{listErr: domain.ErrBookingRequired},
			wantStatus: http.StatusPreconditionFailed,
			wantCode:   helpers.ErrCodePreconditionFailed,
		},
		{
			name:       "no event dates",
			authed:     true,
			svc:        &fakeActivityService{listErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewActivityController(testLogger, tt.svc)

			req := httptest.NewRequest(http.MethodGet, "/activity", nil)
			if tt.authed {
				req = req.WithContext(middleware.SetUserID(req.Context(), 42))
			}
			rr := httptest.NewRecorder()
			controller.List(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")

			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var days []*domain.DaySchedule
				require.NoError(t, json.Unmarshal(dataBytes, &days))
				require.Len(t, days, 1)
				assert.Equal(t, "Friday, 27/10", days[0].EventDay)
				require.Len(t, days[0].Venues, 1)
				assert.True(t, days[0].Venues[0].Activities[0].RegisteredByUser)
				assert.Equal(t, int64(42), tt.svc.lastUserID)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}
