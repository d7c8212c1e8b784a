package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencehub/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Create inserts the registration only while the activity still has a free
// seat. The capacity check runs inside the INSERT, so concurrent attempts
// against the same activity cannot push the count past capacity.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (user_id, activity_id, created_at, updated_at)
		SELECT $1, $2, $3, $4
		WHERE (SELECT COUNT(*) FROM registrations WHERE activity_id = $2)
		    < (SELECT capacity FROM activities WHERE id = $2)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, reg.UserID, reg.ActivityID, reg.CreatedAt, reg.UpdatedAt).
		Scan(&reg.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrActivityFull
		}
		return err
	}
	return nil
}
