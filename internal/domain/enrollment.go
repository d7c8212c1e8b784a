package domain

import (
	"context"
	"time"
)

// Enrollment is a user's attendee profile. A user has at most one enrollment,
// and the enrollment gates ticket ownership.
// swagger:model Enrollment
type Enrollment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Birthday  time.Time `json:"birthday"`
	Phone     string    `json:"phone"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address belongs to exactly one enrollment.
// swagger:model Address
type Address struct {
	ID           int64     `json:"id"`
	EnrollmentID int64     `json:"enrollment_id"`
	PostalCode   string    `json:"postal_code"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Detail       string    `json:"detail"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EnrollmentRepository defines the interface for enrollment storage.
type EnrollmentRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*Enrollment, error)
	GetWithAddressByUserID(ctx context.Context, userID int64) (*Enrollment, error)
	// Upsert creates the user's enrollment and address or updates them in
	// place, keeping the one-enrollment-per-user invariant.
	Upsert(ctx context.Context, enrollment *Enrollment) error
}

// EnrollmentService defines enrollment profile business logic.
type EnrollmentService interface {
	GetByUser(ctx context.Context, userID int64) (*Enrollment, error)
	Upsert(ctx context.Context, enrollment *Enrollment) (*Enrollment, error)
}
