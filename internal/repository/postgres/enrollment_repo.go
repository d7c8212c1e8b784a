package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"conferencehub/internal/domain"
)

type enrollmentRepository struct {
	DB *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) domain.EnrollmentRepository {
	return &enrollmentRepository{
		DB: db,
	}
}

func (r *enrollmentRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	query := `
		SELECT id, user_id, name, document, birthday, phone, created_at, updated_at
		FROM enrollments
		WHERE user_id = $1
	`
	enrollment := &domain.Enrollment{}
	err := r.DB.QueryRowContext(ctx, query, userID).
		Scan(&enrollment.ID, &enrollment.UserID, &enrollment.Name, &enrollment.Document,
			&enrollment.Birthday, &enrollment.Phone, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return enrollment, nil
}

func (r *enrollmentRepository) GetWithAddressByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	query := `
		SELECT e.id, e.user_id, e.name, e.document, e.birthday, e.phone, e.created_at, e.updated_at,
		       a.id, a.postal_code, a.street, a.number, a.neighborhood, a.city, a.state, a.detail,
		       a.created_at, a.updated_at
		FROM enrollments e
		JOIN addresses a ON a.enrollment_id = e.id
		WHERE e.user_id = $1
	`
	enrollment := &domain.Enrollment{Address: &domain.Address{}}
	addr := enrollment.Address
	err := r.DB.QueryRowContext(ctx, query, userID).
		Scan(&enrollment.ID, &enrollment.UserID, &enrollment.Name, &enrollment.Document,
			&enrollment.Birthday, &enrollment.Phone, &enrollment.CreatedAt, &enrollment.UpdatedAt,
			&addr.ID, &addr.PostalCode, &addr.Street, &addr.Number, &addr.Neighborhood,
			&addr.City, &addr.State, &addr.Detail, &addr.CreatedAt, &addr.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	addr.EnrollmentID = enrollment.ID
	return enrollment, nil
}

// Upsert writes the enrollment and its address in one transaction, keyed on
// the one-enrollment-per-user unique constraint.
func (r *enrollmentRepository) Upsert(ctx context.Context, enrollment *domain.Enrollment) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	enrollmentQuery := `
		INSERT INTO enrollments (user_id, name, document, birthday, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name, document = EXCLUDED.document, birthday = EXCLUDED.birthday,
		    phone = EXCLUDED.phone, updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, enrollmentQuery,
		enrollment.UserID, enrollment.Name, enrollment.Document, enrollment.Birthday,
		enrollment.Phone, enrollment.CreatedAt, enrollment.UpdatedAt).
		Scan(&enrollment.ID)
	if err != nil {
		return err
	}

	addr := enrollment.Address
	addressQuery := `
		INSERT INTO addresses (enrollment_id, postal_code, street, number, neighborhood, city, state, detail, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (enrollment_id) DO UPDATE
		SET postal_code = EXCLUDED.postal_code, street = EXCLUDED.street, number = EXCLUDED.number,
		    neighborhood = EXCLUDED.neighborhood, city = EXCLUDED.city, state = EXCLUDED.state,
		    detail = EXCLUDED.detail, updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, addressQuery,
		enrollment.ID, addr.PostalCode, addr.Street, addr.Number, addr.Neighborhood,
		addr.City, addr.State, addr.Detail, enrollment.CreatedAt, enrollment.UpdatedAt).
		Scan(&addr.ID)
	if err != nil {
		return err
	}
	addr.EnrollmentID = enrollment.ID

	return tx.Commit()
}
