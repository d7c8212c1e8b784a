package services

import (
	"context"
	"sync"
	"time"

	"conferencehub/internal/domain"
)

// Shared hand-rolled repository mocks for the service tests. Each mock keeps
// its fixtures in maps keyed by ID and returns domain.ErrNotFound on a miss,
// like the real repositories do.

type mockEnrollmentRepository struct {
	byUserID map[int64]*domain.Enrollment
	err      error
}

func (m *mockEnrollmentRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.byUserID[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *mockEnrollmentRepository) GetWithAddressByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	return m.GetByUserID(ctx, userID)
}

func (m *mockEnrollmentRepository) Upsert(ctx context.Context, enrollment *domain.Enrollment) error {
	if m.err != nil {
		return m.err
	}
	if m.byUserID == nil {
		m.byUserID = map[int64]*domain.Enrollment{}
	}
	m.byUserID[enrollment.UserID] = enrollment
	return nil
}

type mockTicketRepository struct {
	byEnrollmentID map[int64]*domain.Ticket
	byID           map[int64]*domain.Ticket
	types          map[int64]*domain.TicketType
	paid           []int64
	err            error
}

func (m *mockTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	if m.err != nil {
		return m.err
	}
	ticket.ID = int64(len(m.byEnrollmentID) + 1)
	if m.byEnrollmentID == nil {
		m.byEnrollmentID = map[int64]*domain.Ticket{}
	}
	m.byEnrollmentID[ticket.EnrollmentID] = ticket
	return nil
}

func (m *mockTicketRepository) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	if m.err != nil {
		return nil, m.err
	}
	t, ok := m.byEnrollmentID[enrollmentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	if m.err != nil {
		return nil, m.err
	}
	t, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (m *mockTicketRepository) GetTicketType(ctx context.Context, id int64) (*domain.TicketType, error) {
	if m.err != nil {
		return nil, m.err
	}
	tt, ok := m.types[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return tt, nil
}

func (m *mockTicketRepository) ListTicketTypes(ctx context.Context) ([]*domain.TicketType, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.TicketType, 0, len(m.types))
	for _, tt := range m.types {
		out = append(out, tt)
	}
	return out, nil
}

func (m *mockTicketRepository) MarkPaid(ctx context.Context, ticketID int64) error {
	if m.err != nil {
		return m.err
	}
	m.paid = append(m.paid, ticketID)
	if t, ok := m.byID[ticketID]; ok {
		t.Status = domain.TicketStatusPaid
	}
	return nil
}

type mockBookingRepository struct {
	byUserID map[int64]*domain.Booking
	created  []*domain.Booking
	err      error
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.err != nil {
		return m.err
	}
	booking.ID = int64(len(m.created) + 1)
	m.created = append(m.created, booking)
	if m.byUserID == nil {
		m.byUserID = map[int64]*domain.Booking{}
	}
	m.byUserID[booking.UserID] = booking
	return nil
}

func (m *mockBookingRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	b, ok := m.byUserID[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (m *mockBookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int64) error {
	if m.err != nil {
		return m.err
	}
	for _, b := range m.byUserID {
		if b.ID == bookingID {
			b.RoomID = roomID
			return nil
		}
	}
	return domain.ErrNotFound
}

type mockHotelRepository struct {
	hotels         []*domain.Hotel
	byID           map[int64]*domain.Hotel
	rooms          map[int64]*domain.Room
	bookingsByRoom map[int64]int
	err            error
}

func (m *mockHotelRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Hotel, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.hotels, len(m.hotels), nil
}

func (m *mockHotelRepository) GetWithRooms(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	if m.err != nil {
		return nil, m.err
	}
	h, ok := m.byID[hotelID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return h, nil
}

func (m *mockHotelRepository) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.rooms[roomID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (m *mockHotelRepository) CountBookingsByRoom(ctx context.Context, roomID int64) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.bookingsByRoom[roomID], nil
}

type mockActivityRepository struct {
	days           []*domain.EventDateWithActivities
	byActivityID   map[int64]*domain.ActivityWithRegistrations
	userActivities map[int64][]*domain.Activity
	err            error
}

func (m *mockActivityRepository) ListEventDates(ctx context.Context) ([]*domain.EventDateWithActivities, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.days, nil
}

func (m *mockActivityRepository) GetWithRegistrations(ctx context.Context, activityID int64) (*domain.ActivityWithRegistrations, error) {
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.byActivityID[activityID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (m *mockActivityRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Activity, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.userActivities[userID], nil
}

// mockRegistrationRepository mimics the conditional insert of the real
// repository: it tracks seat counts per activity under a mutex and refuses
// inserts past capacity, so it is safe for the concurrency test.
type mockRegistrationRepository struct {
	mu       sync.Mutex
	capacity map[int64]int
	counts   map[int64]int
	created  []*domain.Registration
	err      error
}

func (m *mockRegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = map[int64]int{}
	}
	if limit, ok := m.capacity[reg.ActivityID]; ok && m.counts[reg.ActivityID] >= limit {
		return domain.ErrActivityFull
	}
	m.counts[reg.ActivityID]++
	reg.ID = int64(len(m.created) + 1)
	m.created = append(m.created, reg)
	return nil
}

type mockUserRepository struct {
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
	err     error
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	user.ID = int64(len(m.byEmail) + 1)
	if m.byEmail == nil {
		m.byEmail = map[string]*domain.User{}
	}
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

type mockSessionRepository struct {
	byToken map[string]*domain.Session
	err     error
}

func (m *mockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.err != nil {
		return m.err
	}
	if m.byToken == nil {
		m.byToken = map[string]*domain.Session{}
	}
	m.byToken[session.Token] = session
	return nil
}

func (m *mockSessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.byToken[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

type mockEventRepository struct {
	event *domain.Event
	calls int
	err   error
}

func (m *mockEventRepository) GetFirst(ctx context.Context) (*domain.Event, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.event == nil {
		return nil, domain.ErrNotFound
	}
	return m.event, nil
}

type mockCache struct {
	entries map[string][]byte
}

func (m *mockCache) Get(key string) ([]byte, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *mockCache) SetEx(key string, value []byte, ttl time.Duration) {
	if m.entries == nil {
		m.entries = map[string][]byte{}
	}
	m.entries[key] = value
}

type mockHasher struct{ failCompare bool }

func (m *mockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (m *mockHasher) Compare(hash, password string) error {
	if m.failCompare || hash != "hashed:"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

type mockTokenIssuer struct{ token string }

func (m *mockTokenIssuer) Issue(userID int64, email string, expiry time.Duration) (string, error) {
	return m.token, nil
}

type mockTokenVerifier struct {
	userID int64
	err    error
}

func (m *mockTokenVerifier) Verify(token string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.userID, nil
}

// eligibleFixtures returns repositories set up so that user 1 passes every
// activity access gate: enrollment 10, paid hotel-inclusive ticket, booking.
func eligibleFixtures() (*mockEnrollmentRepository, *mockTicketRepository, *mockBookingRepository) {
	enrollmentRepo := &mockEnrollmentRepository{
		byUserID: map[int64]*domain.Enrollment{
			1: {ID: 10, UserID: 1, Name: "Ada Lovelace"},
		},
	}
	ticketRepo := &mockTicketRepository{
		byEnrollmentID: map[int64]*domain.Ticket{
			10: {
				ID:           100,
				EnrollmentID: 10,
				TicketTypeID: 5,
				Status:       domain.TicketStatusPaid,
				TicketType:   &domain.TicketType{ID: 5, Name: "Presencial + Hotel", IncludesHotel: true},
			},
		},
	}
	bookingRepo := &mockBookingRepository{
		byUserID: map[int64]*domain.Booking{
			1: {ID: 1000, UserID: 1, RoomID: 7},
		},
	}
	return enrollmentRepo, ticketRepo, bookingRepo
}
