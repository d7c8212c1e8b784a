package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"conferencehub/internal/domain"
)

type enrollmentService struct {
	enrollmentRepo domain.EnrollmentRepository
}

// NewEnrollmentService creates an EnrollmentService with the given repository.
func NewEnrollmentService(enrollmentRepo domain.EnrollmentRepository) domain.EnrollmentService {
	return &enrollmentService{enrollmentRepo: enrollmentRepo}
}

func (s *enrollmentService) GetByUser(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetWithAddressByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return enrollment, nil
}

func (s *enrollmentService) Upsert(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	if strings.TrimSpace(enrollment.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(enrollment.Document) == "" {
		return nil, fmt.Errorf("%w: document is required", domain.ErrInvalidInput)
	}
	if enrollment.Address == nil {
		return nil, fmt.Errorf("%w: address is required", domain.ErrInvalidInput)
	}

	now := time.Now()
	enrollment.CreatedAt = now
	enrollment.UpdatedAt = now
	if err := s.enrollmentRepo.Upsert(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("upsert enrollment: %w", err)
	}
	return enrollment, nil
}
